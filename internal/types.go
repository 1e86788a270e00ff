package internal

// FinancialRecord holds the figures extracted from a financial statement.
// Fields that never appear in the input stay at 0.
type FinancialRecord struct {
	TotalAssets        float64
	CurrentAssets      float64
	Inventory          float64
	TotalLiabilities   float64
	CurrentLiabilities float64
	TotalEquity        float64
	NetSales           float64
	CostOfGoodsSold    float64
	NetIncome          float64
	OperatingIncome    float64
	InterestExpense    float64
}

// IsValid reports whether the record carries enough data to be worth
// evaluating. Everything except total assets and net sales may
// legitimately be zero.
func (r FinancialRecord) IsValid() bool {
	return r.TotalAssets > 0 && r.NetSales > 0
}

// Score is the traffic-light classification of an indicator.
type Score string

const (
	ScoreGood    Score = "good"
	ScoreWarning Score = "warning"
	ScoreBad     Score = "bad"
	ScoreNeutral Score = "neutral"
)

// Category groups indicators by what they measure.
type Category string

const (
	CategoryLiquidity     Category = "Liquidez"
	CategoryLeverage      Category = "Endeudamiento"
	CategoryProfitability Category = "Rentabilidad"
	CategoryActivity      Category = "Actividad"
)

// Indicator is one computed ratio plus its narrative text and score.
// Indicators are immutable once produced.
type Indicator struct {
	Category       Category
	Name           string
	Value          float64
	Interpretation string
	Recommendation string
	Score          Score
}
