package internal

import (
	"fmt"
	"os"
)

// ParseStatementXLSX reads a financial statement from an Excel workbook.
// Expects label/value rows: column A holds the line item name, column B the
// amount (either a number cell or text like "$150,000"). Only the first
// sheet is read. Row-level problems never fail the parse; unmatched or
// unparseable rows simply leave their field at 0.
func ParseStatementXLSX(path string, matchers []FieldMatcher) (FinancialRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return FinancialRecord{}, fmt.Errorf("reading file: %w", err)
	}
	return ExtractWith(data, matchers), nil
}
