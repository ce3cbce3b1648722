package console

import (
	"context"

	"github.com/nexodus-tech/vendor-console/internal/api"
	"github.com/nexodus-tech/vendor-console/internal/metrics"
)

// Dashboard is the reconciled metrics view: all-time and last-7-days figures
// with their comparison trends.
type Dashboard struct {
	TotalOrders      int           `json:"total_orders"`
	OrdersLast7Days  int           `json:"orders_last_7_days"`
	OrdersTrend      metrics.Trend `json:"orders_trend"`
	TotalRevenue     float64       `json:"total_revenue"`
	RevenueLast7Days float64       `json:"revenue_last_7_days"`
	RevenueTrend     metrics.Trend `json:"revenue_trend"`
}

// Dashboard fetches the analytics aggregate and derives the metric cards.
func (c *Console) Dashboard(ctx context.Context, year int) (*Dashboard, error) {
	a, err := c.API.Analytics(ctx, year)
	if err != nil {
		return nil, err
	}

	revenue := metrics.ParseCurrency(string(a.AllTime.TotalRevenue))
	revenue7 := metrics.ParseCurrency(string(a.Last7Days.Revenue))

	return &Dashboard{
		TotalOrders:      a.AllTime.TotalOrders,
		OrdersLast7Days:  a.Last7Days.Orders,
		OrdersTrend:      metrics.WeeklyTrend(float64(a.Last7Days.Orders), float64(a.AllTime.TotalOrders)),
		TotalRevenue:     revenue,
		RevenueLast7Days: revenue7,
		RevenueTrend:     metrics.WeeklyTrend(revenue7, revenue),
	}, nil
}

// MonthlyRevenue fetches the 12-month revenue series for a year. A payload
// without monthly trends is a data-format error for this panel only.
func (c *Console) MonthlyRevenue(ctx context.Context, year int) ([12]float64, error) {
	a, err := c.API.Analytics(ctx, year)
	if err != nil {
		return [12]float64{}, err
	}
	if a.MonthlyTrends == nil {
		return [12]float64{}, &api.DataFormatError{Endpoint: "/vendor/analytics", Detail: "monthly_trends missing"}
	}
	return metrics.MonthlySeries(a.MonthlyTrends, year), nil
}
