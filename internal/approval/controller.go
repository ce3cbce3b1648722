// Package approval drives the admin review of pending vendor accounts:
// pending -> approved or pending -> rejected, with free-text notes.
package approval

import (
	"context"
	"fmt"
	"sync"

	"github.com/nexodus-tech/vendor-console/internal/api"
	"github.com/nexodus-tech/vendor-console/internal/collection"
	"github.com/nexodus-tech/vendor-console/internal/models"
)

// Reviewer is the remote call that applies a vendor status transition.
type Reviewer interface {
	ReviewVendor(ctx context.Context, vendorID int64, vendorStatus, notes string) error
}

// Controller applies one-way vendor transitions. Approved and rejected are
// terminal: once a vendor is resolved in this session, further review
// attempts are refused locally before any network call.
type Controller struct {
	reviewer Reviewer
	pending  *collection.Controller[models.PendingVendor]

	mu       sync.Mutex
	resolved map[int64]string
}

func New(reviewer Reviewer, pending *collection.Controller[models.PendingVendor]) *Controller {
	return &Controller{
		reviewer: reviewer,
		pending:  pending,
		resolved: make(map[int64]string),
	}
}

// Pending exposes the pending-vendor list controller.
func (c *Controller) Pending() *collection.Controller[models.PendingVendor] {
	return c.pending
}

// Approve resolves a pending vendor to approved with the admin's notes.
func (c *Controller) Approve(ctx context.Context, vendorID int64, notes string) error {
	return c.review(ctx, vendorID, models.VendorStatusApproved, notes)
}

// Reject resolves a pending vendor to rejected with the admin's notes.
func (c *Controller) Reject(ctx context.Context, vendorID int64, notes string) error {
	return c.review(ctx, vendorID, models.VendorStatusRejected, notes)
}

func (c *Controller) review(ctx context.Context, vendorID int64, vendorStatus, notes string) error {
	c.mu.Lock()
	if prior, ok := c.resolved[vendorID]; ok {
		c.mu.Unlock()
		return &api.BusinessRuleError{
			Rule:    "vendor_already_resolved",
			Message: fmt.Sprintf("vendor %d is already %s", vendorID, prior),
		}
	}
	c.mu.Unlock()

	// On failure the vendor stays pending; no automatic retry.
	if err := c.reviewer.ReviewVendor(ctx, vendorID, vendorStatus, notes); err != nil {
		return err
	}

	c.mu.Lock()
	c.resolved[vendorID] = vendorStatus
	c.mu.Unlock()

	// The resolved vendor drops out of the pending list on this refetch.
	return c.pending.Refresh(ctx)
}
