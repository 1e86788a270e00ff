package internal

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// FieldMatcher maps row labels to one record field. Matching is
// case-insensitive substring containment against any of the keywords.
type FieldMatcher struct {
	Field    string
	Keywords []string
	assign   func(*FinancialRecord, float64)
}

// DefaultMatchers returns the built-in label matchers in priority order.
// The order matters: per row, the first matcher whose keyword is contained
// in the label wins and the rest are not consulted.
func DefaultMatchers() []FieldMatcher {
	return []FieldMatcher{
		{Field: "total_assets", Keywords: []string{"activo total"},
			assign: func(r *FinancialRecord, v float64) { r.TotalAssets = v }},
		{Field: "current_assets", Keywords: []string{"activo corriente", "activos circulantes"},
			assign: func(r *FinancialRecord, v float64) { r.CurrentAssets = v }},
		{Field: "inventory", Keywords: []string{"inventario"},
			assign: func(r *FinancialRecord, v float64) { r.Inventory = v }},
		{Field: "total_liabilities", Keywords: []string{"pasivo total"},
			assign: func(r *FinancialRecord, v float64) { r.TotalLiabilities = v }},
		{Field: "current_liabilities", Keywords: []string{"pasivo corriente", "pasivos circulantes"},
			assign: func(r *FinancialRecord, v float64) { r.CurrentLiabilities = v }},
		{Field: "total_equity", Keywords: []string{"patrimonio", "capital contable"},
			assign: func(r *FinancialRecord, v float64) { r.TotalEquity = v }},
		{Field: "net_sales", Keywords: []string{"ventas", "ingresos operacionales"},
			assign: func(r *FinancialRecord, v float64) { r.NetSales = v }},
		{Field: "cost_of_goods_sold", Keywords: []string{"costo de venta"},
			assign: func(r *FinancialRecord, v float64) { r.CostOfGoodsSold = v }},
		{Field: "net_income", Keywords: []string{"utilidad neta", "resultado neto"},
			assign: func(r *FinancialRecord, v float64) { r.NetIncome = v }},
		{Field: "operating_income", Keywords: []string{"utilidad operativa"},
			assign: func(r *FinancialRecord, v float64) { r.OperatingIncome = v }},
		{Field: "interest_expense", Keywords: []string{"gastos financieros", "intereses"},
			assign: func(r *FinancialRecord, v float64) { r.InterestExpense = v }},
	}
}

// FieldKeys returns the canonical field names, in matcher priority order.
// Used to validate config synonym keys.
func FieldKeys() []string {
	matchers := DefaultMatchers()
	keys := make([]string, len(matchers))
	for i, m := range matchers {
		keys[i] = m.Field
	}
	return keys
}

// Extract reads the first sheet of an xlsx workbook and maps its rows onto
// a FinancialRecord using the built-in matchers. It never fails: garbage
// bytes, a sheetless workbook or unreadable rows all produce a zero record,
// and the caller decides what to do via IsValid.
func Extract(data []byte) FinancialRecord {
	return ExtractWith(data, DefaultMatchers())
}

// ExtractWith is Extract with a custom matcher list (see Config.Matchers).
func ExtractWith(data []byte, matchers []FieldMatcher) FinancialRecord {
	var rec FinancialRecord

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return rec
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return rec
	}

	// Only the first sheet is read; statements exported from accounting
	// tools put the summary there.
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return rec
	}

	for _, row := range rows {
		if len(row) < 2 || row[1] == "" {
			continue
		}
		assignRow(&rec, matchers, row[0], CoerceValue(row[1]))
	}

	return rec
}

// assignRow matches a label against the matchers in priority order and
// assigns the value to the first matching field. Assignment is a plain
// overwrite, so a later row with the same label wins.
func assignRow(rec *FinancialRecord, matchers []FieldMatcher, label string, value float64) {
	label = strings.ToLower(label)
	for _, m := range matchers {
		for _, kw := range m.Keywords {
			if strings.Contains(label, kw) {
				m.assign(rec, value)
				return
			}
		}
	}
}

// CoerceValue turns a raw cell value into a number. Thousand separators
// and dollar signs are stripped; anything that still does not parse as a
// float counts as 0.
func CoerceValue(raw string) float64 {
	s := strings.ReplaceAll(raw, ",", "")
	s = strings.ReplaceAll(s, "$", "")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
