package cmd

import (
	"fmt"
	"os"

	"github.com/nexodus-tech/vendor-console/internal/api"
	"github.com/nexodus-tech/vendor-console/internal/config"
	"github.com/nexodus-tech/vendor-console/internal/console"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "console",
	Short: "Vendor Console - Nexodus marketplace operations",
	Long: `Vendor Console is the operations tool for Nexodus marketplace vendors
and administrators: manage product listings, review orders, request payouts
and approve pending vendor accounts.

The console talks to the remote commerce API; it keeps no local data beyond
the view being rendered.`,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newConsole loads configuration and wires the API client and controllers.
func newConsole() (*console.Console, *config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	client, err := api.New(&cfg.API)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create API client: %w", err)
	}

	return console.New(cfg, client), cfg, nil
}
