package internal

import "fmt"

// Evaluate computes the seven standard indicators for a record. The result
// always contains the same indicators in the same order; only value, text
// and score depend on the input. Evaluate is a pure function and never
// fails: every division is zero-guarded to yield 0 instead of Inf/NaN.
func Evaluate(rec FinancialRecord) []Indicator {
	indicators := make([]Indicator, 0, 7)

	// Razón Corriente
	current := ratio(rec.CurrentAssets, rec.CurrentLiabilities)
	interp := fmt.Sprintf("Los activos corrientes no alcanzan a cubrir las deudas de corto plazo ($%.2f por cada $1).", current)
	if current > 1 {
		interp = fmt.Sprintf("Por cada $1 de deuda a corto plazo la empresa cuenta con $%.2f para cubrirla.", current)
	}
	advice := "Mantener la política actual de capital de trabajo."
	if current < 1 {
		advice = "Aumentar la liquidez o renegociar los pasivos de corto plazo."
	}
	indicators = append(indicators, Indicator{
		Category:       CategoryLiquidity,
		Name:           "Razón Corriente",
		Value:          current,
		Interpretation: interp,
		Recommendation: advice,
		Score:          scoreByFloor(current, 1.5, 1.0),
	})

	// Prueba Ácida
	acid := ratio(rec.CurrentAssets-rec.Inventory, rec.CurrentLiabilities)
	interp = fmt.Sprintf("Sin el inventario, la empresa solo dispone de $%.2f por cada $1 de deuda corriente.", acid)
	if acid > 1 {
		interp = fmt.Sprintf("Sin depender del inventario, la empresa cubre %.2f veces sus pasivos corrientes.", acid)
	}
	advice = "La liquidez inmediata es adecuada."
	if acid < 1 {
		advice = "Reducir la dependencia del inventario para cumplir obligaciones inmediatas."
	}
	indicators = append(indicators, Indicator{
		Category:       CategoryLiquidity,
		Name:           "Prueba Ácida",
		Value:          acid,
		Interpretation: interp,
		Recommendation: advice,
		Score:          scoreByFloor(acid, 1.0, 0.8),
	})

	// Nivel de Endeudamiento (reported as a percentage, scored on the fraction)
	debt := ratio(rec.TotalLiabilities, rec.TotalAssets)
	advice = "El nivel de deuda es manejable."
	if debt > 0.7 {
		advice = "Riesgo alto: considerar reducir deuda o capitalizar la empresa."
	}
	score := ScoreBad
	switch {
	case debt <= 0.5:
		score = ScoreGood
	case debt <= 0.7:
		score = ScoreWarning
	}
	indicators = append(indicators, Indicator{
		Category:       CategoryLeverage,
		Name:           "Nivel de Endeudamiento",
		Value:          debt * 100,
		Interpretation: fmt.Sprintf("El %.1f%% de los activos está financiado por terceros.", debt*100),
		Recommendation: advice,
		Score:          score,
	})

	// Margen Neto
	margin := ratio(rec.NetIncome, rec.NetSales)
	advice = "Buen control de costos y gastos."
	if margin < 0.05 {
		advice = "Revisar la estructura de costos y gastos."
	}
	score = ScoreBad
	switch {
	case margin > 0.10:
		score = ScoreGood
	case margin > 0:
		score = ScoreWarning
	}
	indicators = append(indicators, Indicator{
		Category:       CategoryProfitability,
		Name:           "Margen Neto",
		Value:          margin * 100,
		Interpretation: fmt.Sprintf("Por cada $1 vendido la empresa gana %.1f%% de utilidad neta.", margin*100),
		Recommendation: advice,
		Score:          score,
	})

	// ROA
	roa := ratio(rec.NetIncome, rec.TotalAssets)
	advice = "Uso eficiente de los activos."
	if roa < 0.05 {
		advice = "Optimizar el uso de los activos para generar más utilidad."
	}
	score = ScoreWarning
	if roa > 0.05 {
		score = ScoreGood
	}
	indicators = append(indicators, Indicator{
		Category:       CategoryProfitability,
		Name:           "ROA",
		Value:          roa * 100,
		Interpretation: fmt.Sprintf("Los activos generan un rendimiento del %.1f%%.", roa*100),
		Recommendation: advice,
		Score:          score,
	})

	// ROE, compared against the net margin to judge leverage
	roe := ratio(rec.NetIncome, rec.TotalEquity)
	advice = "Buen rendimiento para los accionistas."
	if roe < margin {
		advice = "El apalancamiento no está favoreciendo al accionista."
	}
	score = ScoreWarning
	if roe > 0.10 {
		score = ScoreGood
	}
	indicators = append(indicators, Indicator{
		Category:       CategoryProfitability,
		Name:           "ROE",
		Value:          roe * 100,
		Interpretation: fmt.Sprintf("Los accionistas obtienen un rendimiento del %.1f%% sobre su inversión.", roe*100),
		Recommendation: advice,
		Score:          score,
	})

	// Rotación de Activos
	turnover := ratio(rec.NetSales, rec.TotalAssets)
	advice = "Buena eficiencia en el uso de los activos."
	if turnover < 1 {
		advice = "Impulsar las ventas o desinvertir activos improductivos."
	}
	score = ScoreWarning
	if turnover > 1 {
		score = ScoreGood
	}
	indicators = append(indicators, Indicator{
		Category:       CategoryActivity,
		Name:           "Rotación de Activos",
		Value:          turnover,
		Interpretation: fmt.Sprintf("Los activos rotan %.2f veces al año.", turnover),
		Recommendation: advice,
		Score:          score,
	})

	return indicators
}

// ratio divides num by den, yielding 0 when the denominator is 0.
func ratio(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}

// scoreByFloor scores a value against two lower bounds: >= good is good,
// >= warn is warning, anything below is bad.
func scoreByFloor(v, good, warn float64) Score {
	switch {
	case v >= good:
		return ScoreGood
	case v >= warn:
		return ScoreWarning
	default:
		return ScoreBad
	}
}
