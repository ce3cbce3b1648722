package api

import (
	"fmt"

	"github.com/nexodus-tech/vendor-console/internal/config"
)

// New creates a Commerce client based on configuration.
func New(cfg *config.APIConfig) (Commerce, error) {
	switch cfg.Mode {
	case "", "live":
		return NewClient(cfg.BaseURL, cfg.BearerToken(), cfg.VendorID, cfg.Timeout), nil
	case "mock":
		return NewMockClient(), nil
	default:
		return nil, fmt.Errorf("unsupported api mode: %s", cfg.Mode)
	}
}
