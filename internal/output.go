package internal

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// JSONOutput is the root JSON output object
type JSONOutput struct {
	Record     JSONRecord      `json:"record"`
	Indicators []JSONIndicator `json:"indicators"`
	Summary    JSONSummary     `json:"summary"`
}

// JSONRecord mirrors the extracted FinancialRecord
type JSONRecord struct {
	TotalAssets        float64 `json:"total_assets"`
	CurrentAssets      float64 `json:"current_assets"`
	Inventory          float64 `json:"inventory"`
	TotalLiabilities   float64 `json:"total_liabilities"`
	CurrentLiabilities float64 `json:"current_liabilities"`
	TotalEquity        float64 `json:"total_equity"`
	NetSales           float64 `json:"net_sales"`
	CostOfGoodsSold    float64 `json:"cost_of_goods_sold"`
	NetIncome          float64 `json:"net_income"`
	OperatingIncome    float64 `json:"operating_income"`
	InterestExpense    float64 `json:"interest_expense"`
	Valid              bool    `json:"valid"`
}

// JSONIndicator is the JSON output format for one indicator
type JSONIndicator struct {
	Category       string  `json:"category"`
	Name           string  `json:"name"`
	Value          float64 `json:"value"`
	Interpretation string  `json:"interpretation"`
	Recommendation string  `json:"recommendation"`
	Score          string  `json:"score"`
}

// JSONSummary counts indicators per score
type JSONSummary struct {
	Good    int `json:"good"`
	Warning int `json:"warning"`
	Bad     int `json:"bad"`
	Neutral int `json:"neutral"`
}

// PrintAnalysisJSON outputs the record and its indicators in JSON format
func PrintAnalysisJSON(w io.Writer, rec FinancialRecord, indicators []Indicator) {
	output := JSONOutput{
		Record: JSONRecord{
			TotalAssets:        rec.TotalAssets,
			CurrentAssets:      rec.CurrentAssets,
			Inventory:          rec.Inventory,
			TotalLiabilities:   rec.TotalLiabilities,
			CurrentLiabilities: rec.CurrentLiabilities,
			TotalEquity:        rec.TotalEquity,
			NetSales:           rec.NetSales,
			CostOfGoodsSold:    rec.CostOfGoodsSold,
			NetIncome:          rec.NetIncome,
			OperatingIncome:    rec.OperatingIncome,
			InterestExpense:    rec.InterestExpense,
			Valid:              rec.IsValid(),
		},
	}

	for _, ind := range indicators {
		output.Indicators = append(output.Indicators, JSONIndicator{
			Category:       string(ind.Category),
			Name:           ind.Name,
			Value:          ind.Value,
			Interpretation: ind.Interpretation,
			Recommendation: ind.Recommendation,
			Score:          string(ind.Score),
		})
		switch ind.Score {
		case ScoreGood:
			output.Summary.Good++
		case ScoreWarning:
			output.Summary.Warning++
		case ScoreBad:
			output.Summary.Bad++
		case ScoreNeutral:
			output.Summary.Neutral++
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.Encode(output)
}

// percentIndicators lists the indicators whose value is a percentage
// (already scaled ×100 by the evaluator).
var percentIndicators = map[string]bool{
	"Nivel de Endeudamiento": true,
	"Margen Neto":            true,
	"ROA":                    true,
	"ROE":                    true,
}

// FormatIndicatorValue renders an indicator value the way the narrative
// text does: percentages to one decimal, ratios to two.
func FormatIndicatorValue(ind Indicator) string {
	if percentIndicators[ind.Name] {
		return fmt.Sprintf("%.1f%%", ind.Value)
	}
	return fmt.Sprintf("%.2f", ind.Value)
}

// PrintIndicatorsTable outputs indicators as a formatted table with
// traffic-light colored scores
func PrintIndicatorsTable(w io.Writer, indicators []Indicator) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Categoría", "Indicador", "Valor", "Estado", "Interpretación", "Recomendación"})

	for _, ind := range indicators {
		t.AppendRow(table.Row{
			string(ind.Category),
			ind.Name,
			FormatIndicatorValue(ind),
			scoreCell(ind.Score),
			ind.Interpretation,
			ind.Recommendation,
		})
	}

	t.SetStyle(table.StyleRounded)
	t.Style().Format.Header = text.FormatDefault
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, Align: text.AlignRight},
		{Number: 5, WidthMax: 45},
		{Number: 6, WidthMax: 45},
	})

	t.Render()
}

func scoreCell(s Score) string {
	switch s {
	case ScoreGood:
		return text.FgGreen.Sprint("BUENO")
	case ScoreWarning:
		return text.FgYellow.Sprint("ALERTA")
	case ScoreBad:
		return text.FgRed.Sprint("CRÍTICO")
	default:
		return text.FgHiBlack.Sprint("NEUTRO")
	}
}

// PrintRecordTable outputs the extracted figures as a formatted table
func PrintRecordTable(w io.Writer, rec FinancialRecord, cur Currency) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Cuenta", "Valor"})

	rows := []struct {
		label string
		value float64
	}{
		{"Activo Total", rec.TotalAssets},
		{"Activo Corriente", rec.CurrentAssets},
		{"Inventario", rec.Inventory},
		{"Pasivo Total", rec.TotalLiabilities},
		{"Pasivo Corriente", rec.CurrentLiabilities},
		{"Patrimonio", rec.TotalEquity},
		{"Ventas Netas", rec.NetSales},
		{"Costo de Ventas", rec.CostOfGoodsSold},
		{"Utilidad Neta", rec.NetIncome},
		{"Utilidad Operativa", rec.OperatingIncome},
		{"Gastos Financieros", rec.InterestExpense},
	}
	for _, row := range rows {
		t.AppendRow(table.Row{row.label, cur.Format(row.value)})
	}

	t.SetStyle(table.StyleRounded)
	t.Style().Format.Header = text.FormatDefault
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
	})

	t.Render()
}
