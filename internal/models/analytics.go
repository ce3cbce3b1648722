package models

// VendorAnalytics is the payload of GET /vendor/analytics.
type VendorAnalytics struct {
	AllTime       AllTimeStats   `json:"all_time"`
	Last7Days     WeeklyStats    `json:"last_7_days"`
	MonthlyTrends []MonthlyTrend `json:"monthly_trends"`
	Year          int            `json:"year"`
}

type AllTimeStats struct {
	TotalOrders  int   `json:"total_orders"`
	TotalRevenue Money `json:"total_revenue"`
}

type WeeklyStats struct {
	Orders  int   `json:"orders_last_7_days"`
	Revenue Money `json:"revenue_last_7_days"`
}

// MonthlyTrend is one point of the monthly revenue series; Month is "YYYY-MM".
type MonthlyTrend struct {
	Month   string  `json:"month"`
	Revenue float64 `json:"revenue"`
}
