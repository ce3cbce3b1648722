package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/nexodus-tech/vendor-console/internal/models"
)

// PendingVendors fetches seller accounts awaiting admin review.
func (c *Client) PendingVendors(ctx context.Context, q ListQuery) ([]models.PendingVendor, int, error) {
	raw, err := c.do(ctx, http.MethodGet, "/admin/vendors/pending", nil, nil)
	if err != nil {
		return nil, 0, err
	}
	return decodeCollection[models.PendingVendor]("/admin/vendors/pending", raw, "vendors")
}

type reviewVendorBody struct {
	Status     string `json:"status"`
	AdminNotes string `json:"adminNotes"`
	RequestKey string `json:"request_key,omitempty"`
}

// ReviewVendor resolves a pending vendor to approved or rejected with the
// admin's notes. The request carries an idempotency key so a retried call
// cannot apply the transition twice.
func (c *Client) ReviewVendor(ctx context.Context, vendorID int64, vendorStatus, notes string) error {
	path := fmt.Sprintf("/admin/vendors/%d/approve", vendorID)
	body := reviewVendorBody{
		Status:     vendorStatus,
		AdminNotes: notes,
		RequestKey: uuid.NewString(),
	}
	_, err := c.do(ctx, http.MethodPatch, path, nil, body)
	return err
}
