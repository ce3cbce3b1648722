package cmd

import (
	"fmt"
	"time"

	"github.com/nexodus-tech/vendor-console/internal/metrics"
	"github.com/spf13/cobra"
)

var dashboardYear int

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show the vendor sales dashboard",
	RunE:  runDashboard,
}

func init() {
	dashboardCmd.Flags().IntVar(&dashboardYear, "year", time.Now().Year(), "year for the monthly revenue series")
	rootCmd.AddCommand(dashboardCmd)
}

func runDashboard(cmd *cobra.Command, args []string) error {
	app, _, err := newConsole()
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	dashboard, err := app.Dashboard(ctx, dashboardYear)
	if err != nil {
		return fmt.Errorf("failed to fetch analytics: %w", err)
	}

	fmt.Printf("Total Orders:   %d (last 7 days: %d) %s\n",
		dashboard.TotalOrders, dashboard.OrdersLast7Days, trendArrow(dashboard.OrdersTrend))
	fmt.Printf("Total Revenue:  $%.2f (last 7 days: $%.2f) %s\n",
		dashboard.TotalRevenue, dashboard.RevenueLast7Days, trendArrow(dashboard.RevenueTrend))

	series, err := app.MonthlyRevenue(ctx, dashboardYear)
	if err != nil {
		// The metric cards still rendered; the series is its own panel.
		fmt.Printf("Monthly revenue unavailable: %v\n", err)
		return nil
	}

	fmt.Printf("\nMonthly revenue %d:\n", dashboardYear)
	for month := time.January; month <= time.December; month++ {
		fmt.Printf("  %-9s $%.2f\n", month.String(), series[month-1])
	}
	return nil
}

func trendArrow(t metrics.Trend) string {
	if t.Up {
		return fmt.Sprintf("↑ %.2f%%", t.Change)
	}
	return fmt.Sprintf("↓ %.2f%%", t.Change)
}
