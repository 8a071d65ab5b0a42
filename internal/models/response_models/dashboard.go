package response_models

type StatusBreakdown struct {
	Count int64   `json:"count"`
	Total float64 `json:"total"`
}

type SeriesPoint struct {
	Bucket string  `json:"bucket"`
	Value  float64 `json:"value"`
}

type DashboardSummary struct {
	ByStatus map[string]StatusBreakdown `json:"by_status"`

	// Average price across all of the user's deals, and how the deals
	// split across platforms.
	AvgDealSize float64          `json:"avg_deal_size"`
	ByPlatform  map[string]int64 `json:"by_platform"`

	// Paid revenue for the current calendar month against the profile goal.
	MonthRevenue float64 `json:"month_revenue"`
	RevenueGoal  float64 `json:"revenue_goal"`

	// Monthly paid-revenue series, oldest bucket first.
	RevenueSeries []SeriesPoint `json:"revenue_series"`
}
