package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var vendorsCmd = &cobra.Command{
	Use:   "vendors",
	Short: "Review pending vendor accounts",
}

var vendorsPendingCmd = &cobra.Command{
	Use:   "pending",
	Short: "List vendor accounts awaiting review",
	RunE:  runVendorsPending,
}

var reviewNotes string

var vendorsApproveCmd = &cobra.Command{
	Use:   "approve <id>",
	Short: "Approve a pending vendor",
	Args:  cobra.ExactArgs(1),
	RunE:  runVendorReview,
}

var vendorsRejectCmd = &cobra.Command{
	Use:   "reject <id>",
	Short: "Reject a pending vendor",
	Args:  cobra.ExactArgs(1),
	RunE:  runVendorReview,
}

func init() {
	vendorsApproveCmd.Flags().StringVar(&reviewNotes, "notes", "", "admin notes recorded with the decision")
	vendorsRejectCmd.Flags().StringVar(&reviewNotes, "notes", "", "admin notes recorded with the decision")

	vendorsCmd.AddCommand(vendorsPendingCmd, vendorsApproveCmd, vendorsRejectCmd)
	rootCmd.AddCommand(vendorsCmd)
}

func runVendorsPending(cmd *cobra.Command, args []string) error {
	app, _, err := newConsole()
	if err != nil {
		return err
	}

	pending := app.Approvals.Pending()
	if err := pending.Refresh(cmd.Context()); err != nil {
		return fmt.Errorf("failed to fetch pending vendors: %w", err)
	}

	items := pending.Items()
	if len(items) == 0 {
		fmt.Println("No vendors awaiting review")
		return nil
	}

	for _, v := range items {
		verified := "unverified"
		if v.EmailVerified != 0 {
			verified = "verified"
		}
		fmt.Printf("#%-6d %-24s %-32s %-12s %-10s applied %s\n",
			v.ID, v.FirstName+" "+v.LastName, v.Email, v.BusinessName,
			verified, v.CreatedAt)
	}
	fmt.Printf("\nPage %d of %d (%d vendors)\n", pending.Page(), pending.TotalPages(), pending.TotalCount())
	return nil
}

func runVendorReview(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid vendor id: %s", args[0])
	}

	app, _, err := newConsole()
	if err != nil {
		return err
	}

	if err := app.Approvals.Pending().Refresh(cmd.Context()); err != nil {
		return fmt.Errorf("failed to fetch pending vendors: %w", err)
	}

	if cmd.Name() == "approve" {
		if err := app.Approvals.Approve(cmd.Context(), id, reviewNotes); err != nil {
			return fmt.Errorf("failed to approve vendor %d: %w", id, err)
		}
		fmt.Printf("Vendor %d approved\n", id)
		return nil
	}

	if err := app.Approvals.Reject(cmd.Context(), id, reviewNotes); err != nil {
		return fmt.Errorf("failed to reject vendor %d: %w", id, err)
	}
	fmt.Printf("Vendor %d rejected\n", id)
	return nil
}
