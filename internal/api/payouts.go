package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/nexodus-tech/vendor-console/internal/models"
)

// ListPayouts fetches the vendor's payout history.
func (c *Client) ListPayouts(ctx context.Context, q ListQuery) ([]models.Payout, int, error) {
	raw, err := c.do(ctx, http.MethodGet, "/vendor/payouts", nil, nil)
	if err != nil {
		return nil, 0, err
	}
	return decodeCollection[models.Payout]("/vendor/payouts", raw, "payouts")
}

// Balance reads the vendor's current ledger position.
func (c *Client) Balance(ctx context.Context) (models.Balance, error) {
	raw, err := c.do(ctx, http.MethodGet, "/vendor/balance", nil, nil)
	if err != nil {
		return models.Balance{}, err
	}

	var env struct {
		Data *models.Balance `json:"data"`
	}
	if err := json.Unmarshal(raw, &env); err != nil || env.Data == nil {
		return models.Balance{}, &DataFormatError{Endpoint: "/vendor/balance", Detail: "missing balance data"}
	}
	return *env.Data, nil
}

// RequestPayout submits a withdrawal request against the accrued balance.
func (c *Client) RequestPayout(ctx context.Context, req PayoutRequest) error {
	_, err := c.do(ctx, http.MethodPost, "/vendor/payouts/request", nil, req)
	return err
}
