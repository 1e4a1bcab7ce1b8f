package model

// CategoryTotal is one row of a summary breakdown.
type CategoryTotal struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
	Count    int     `json:"count"`
}

// Timeframe echoes the requested bounds; "all time"/"now" when unbounded.
type Timeframe struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// ExpenseSummary is the aggregate view over a filtered expense set.
type ExpenseSummary struct {
	TotalSpent        float64         `json:"totalSpent"`
	ExpenseCount      int             `json:"expenseCount"`
	CategoryBreakdown []CategoryTotal `json:"categoryBreakdown"`
	Timeframe         Timeframe       `json:"timeframe"`
}

// TopCategory is one entry of the AI insight bundle.
type TopCategory struct {
	Category   string  `json:"category"`
	Amount     float64 `json:"amount"`
	Percentage float64 `json:"percentage"`
}

// FinancialInsights is ephemeral model output, never persisted.
type FinancialInsights struct {
	Insights        []string      `json:"insights"`
	Recommendations []string      `json:"recommendations"`
	TopCategories   []TopCategory `json:"topCategories"`
}

// TrendPoint is summed spend for one bucket key.
type TrendPoint struct {
	Period string  `json:"period"`
	Amount float64 `json:"amount"`
}

// SpendingTrends is the bucketed series for one granularity.
type SpendingTrends struct {
	Period string       `json:"period"`
	Trends []TrendPoint `json:"trends"`
}
