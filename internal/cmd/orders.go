package cmd

import (
	"fmt"

	"github.com/nexodus-tech/vendor-console/internal/models"
	"github.com/nexodus-tech/vendor-console/internal/status"
	"github.com/spf13/cobra"
)

var (
	ordersPage      int
	ordersSortBy    string
	ordersSortOrder string
)

var ordersCmd = &cobra.Command{
	Use:   "orders",
	Short: "List orders, one row per line item",
	RunE:  runOrders,
}

func init() {
	ordersCmd.Flags().IntVar(&ordersPage, "page", 1, "page to show")
	ordersCmd.Flags().StringVar(&ordersSortBy, "sort-by", "created_at", "sort column")
	ordersCmd.Flags().StringVar(&ordersSortOrder, "sort-order", "desc", "asc or desc")
	rootCmd.AddCommand(ordersCmd)
}

func runOrders(cmd *cobra.Command, args []string) error {
	app, _, err := newConsole()
	if err != nil {
		return err
	}

	ctrl := app.Orders
	if err := ctrl.SetSort(cmd.Context(), ordersSortBy, ordersSortOrder); err != nil {
		return fmt.Errorf("failed to fetch orders: %w", err)
	}
	if ordersPage > 1 {
		if err := ctrl.GoToPage(cmd.Context(), ordersPage); err != nil {
			return fmt.Errorf("failed to fetch orders: %w", err)
		}
	}

	rows := models.FlattenOrders(ctrl.Items())
	if len(rows) == 0 {
		fmt.Println("No orders found")
		return nil
	}

	for _, r := range rows {
		orderBadge := status.Order(r.Status)
		paymentBadge := status.Payment(r.PaymentStatus)
		fmt.Printf("%-12s %-32s x%-3d $%-9s %-10s %-10s %s\n",
			r.OrderNumber, r.Item.ProductName, r.Item.Quantity, r.Item.TotalPrice,
			orderBadge.Label, paymentBadge.Label, r.CreatedAt)
	}
	fmt.Printf("\nPage %d of %d (%d orders)\n", ctrl.Page(), ctrl.TotalPages(), ctrl.TotalCount())
	return nil
}
