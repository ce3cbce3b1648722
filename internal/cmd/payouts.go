package cmd

import (
	"fmt"

	"github.com/nexodus-tech/vendor-console/internal/models"
	"github.com/nexodus-tech/vendor-console/internal/payouts"
	"github.com/nexodus-tech/vendor-console/internal/status"
	"github.com/spf13/cobra"
)

var payoutsCmd = &cobra.Command{
	Use:   "payouts",
	Short: "View the balance and manage payout requests",
}

var payoutsListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the current balance and payout history",
	RunE:  runPayoutsList,
}

var (
	requestAmount  string
	requestMethod  string
	requestDetails string
)

var payoutsRequestCmd = &cobra.Command{
	Use:   "request",
	Short: "Request a payout against the available balance",
	RunE:  runPayoutsRequest,
}

func init() {
	payoutsRequestCmd.Flags().StringVar(&requestAmount, "amount", "", "amount to withdraw, e.g. 125.00")
	payoutsRequestCmd.Flags().StringVar(&requestMethod, "method", models.PayoutMethodBankTransfer, "payment method: bank_transfer, paypal, stripe or other")
	payoutsRequestCmd.Flags().StringVar(&requestDetails, "details", "", "payment details, e.g. an IBAN or PayPal address")

	payoutsCmd.AddCommand(payoutsListCmd, payoutsRequestCmd)
	rootCmd.AddCommand(payoutsCmd)
}

func runPayoutsList(cmd *cobra.Command, args []string) error {
	app, _, err := newConsole()
	if err != nil {
		return err
	}

	if err := app.Payouts.Refresh(cmd.Context()); err != nil {
		return fmt.Errorf("failed to fetch payouts: %w", err)
	}

	balance := app.Payouts.Balance()
	fmt.Printf("Available balance: $%.2f\n", balance.Available)
	fmt.Printf("Pending balance:   $%.2f\n\n", balance.Pending)

	list := app.Payouts.List()
	items := list.Items()
	if len(items) == 0 {
		fmt.Println("No payouts yet")
		return nil
	}

	for _, p := range items {
		badge := status.Payout(p.Status)
		processed := "-"
		if p.ProcessedAt != nil {
			processed = *p.ProcessedAt
		}
		fmt.Printf("#%-6d $%-9.2f %-10s %-14s requested %s processed %s\n",
			p.ID, p.Amount, badge.Label, models.PayoutMethodLabel(p.PaymentMethod),
			p.CreatedAt, processed)
	}
	fmt.Printf("\nPage %d of %d (%d payouts)\n", list.Page(), list.TotalPages(), list.TotalCount())
	return nil
}

func runPayoutsRequest(cmd *cobra.Command, args []string) error {
	app, _, err := newConsole()
	if err != nil {
		return err
	}

	req := payouts.Request{
		Amount:         requestAmount,
		PaymentMethod:  requestMethod,
		PaymentDetails: requestDetails,
	}
	if err := app.Payouts.Submit(cmd.Context(), req); err != nil {
		return fmt.Errorf("payout request rejected: %w", err)
	}

	balance := app.Payouts.Balance()
	fmt.Printf("Payout requested. Available balance is now $%.2f\n", balance.Available)
	return nil
}
