package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"github.com/nexodus-tech/vendor-console/internal/models"
)

// Analytics fetches the vendor's aggregate sales figures for a year.
func (c *Client) Analytics(ctx context.Context, year int) (*models.VendorAnalytics, error) {
	values := url.Values{}
	if c.vendorID != "" {
		values.Set("vendor_id", c.vendorID)
	}
	if year > 0 {
		values.Set("year", strconv.Itoa(year))
	}

	raw, err := c.do(ctx, http.MethodGet, "/vendor/analytics", values, nil)
	if err != nil {
		return nil, err
	}

	var env struct {
		Data *models.VendorAnalytics `json:"data"`
	}
	if err := json.Unmarshal(raw, &env); err != nil || env.Data == nil {
		return nil, &DataFormatError{Endpoint: "/vendor/analytics", Detail: "missing analytics data"}
	}
	return env.Data, nil
}
