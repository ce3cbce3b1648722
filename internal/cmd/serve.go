package cmd

import (
	"fmt"

	"github.com/nexodus-tech/vendor-console/internal/server"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the console web server",
	Long: `Start the console web server which provides:
- JSON views over products, orders, payouts and pending vendors
- The vendor dashboard metrics
- Mutating actions (add/delete product, request payout, review vendor)`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	fmt.Println("Loading configuration...")
	app, cfg, err := newConsole()
	if err != nil {
		return err
	}

	fmt.Println("Setting up server...")
	srv := server.NewServer(app)

	fmt.Printf("Starting server on %s...\n", cfg.Server.Addr)
	if err := srv.Start(cfg.Server.Addr); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
