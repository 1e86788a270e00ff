package internal

import (
	"encoding/json"
	"fmt"
	"os"
)

// SimpleJSONFormat is a minimal JSON format for importing statements
// Example:
//
//	{
//	  "rows": [
//	    {"label": "Activo Total", "value": 150000},
//	    {"label": "Ventas", "value": "$200,000"}
//	  ]
//	}
//
// This format is easy to convert to from any spreadsheet or data source.
// Rows go through the same label matching and value coercion as xlsx input.
type SimpleJSONFormat struct {
	Rows []SimpleJSONRow `json:"rows"`
}

type SimpleJSONRow struct {
	Label string `json:"label"` // Statement line item name
	Value any    `json:"value"` // Number, or text like "150,000"
}

// ParseSimpleJSON parses a JSON file in the simple JSON format
func ParseSimpleJSON(path string, matchers []FieldMatcher) (FinancialRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return FinancialRecord{}, fmt.Errorf("reading file: %w", err)
	}

	var jsonData SimpleJSONFormat
	if err := json.Unmarshal(data, &jsonData); err != nil {
		return FinancialRecord{}, fmt.Errorf("parsing JSON: %w", err)
	}

	var rec FinancialRecord
	for _, row := range jsonData.Rows {
		var value float64
		switch v := row.Value.(type) {
		case float64:
			value = v
		case string:
			if v == "" {
				continue
			}
			value = CoerceValue(v)
		default:
			continue // null or unsupported type, skip the row
		}
		assignRow(&rec, matchers, row.Label, value)
	}

	return rec, nil
}

func init() {
	RegisterParser("simple-json", ParserFunc(ParseSimpleJSON))
}
