// Package console wires the API client and the per-resource controllers into
// one operations console. Dependencies are passed in at construction; there
// are no ambient singletons.
package console

import (
	"context"

	"github.com/nexodus-tech/vendor-console/internal/api"
	"github.com/nexodus-tech/vendor-console/internal/approval"
	"github.com/nexodus-tech/vendor-console/internal/collection"
	"github.com/nexodus-tech/vendor-console/internal/config"
	"github.com/nexodus-tech/vendor-console/internal/models"
	"github.com/nexodus-tech/vendor-console/internal/payouts"
)

// Console bundles the controllers of the four resource collections. Each
// controller fetches independently; one failing never blocks the others.
type Console struct {
	API       api.Commerce
	Products  *collection.Controller[models.Product]
	Orders    *collection.Controller[models.Order]
	Payouts   *payouts.Service
	Approvals *approval.Controller
}

func New(cfg *config.Config, client api.Commerce) *Console {
	pageSize := cfg.Lists.PageSize

	products := collection.New(pageSize, func(ctx context.Context, q collection.Query) (collection.Page[models.Product], error) {
		items, total, err := client.ListProducts(ctx, api.ListQuery{
			Limit:  q.PageSize,
			Offset: (q.Page - 1) * q.PageSize,
			Search: q.Search,
			Status: q.Status,
		})
		return collection.Page[models.Product]{Items: items, TotalCount: total}, err
	})

	orders := collection.New(pageSize, func(ctx context.Context, q collection.Query) (collection.Page[models.Order], error) {
		sortBy, sortOrder := q.SortBy, q.SortOrder
		if sortBy == "" {
			sortBy, sortOrder = "created_at", "desc"
		}
		items, total, err := client.ListOrders(ctx, api.ListQuery{
			Limit:     q.PageSize,
			Page:      q.Page,
			SortBy:    sortBy,
			SortOrder: sortOrder,
		})
		return collection.Page[models.Order]{Items: items, TotalCount: total}, err
	})

	payoutList := collection.New(pageSize, func(ctx context.Context, q collection.Query) (collection.Page[models.Payout], error) {
		items, total, err := client.ListPayouts(ctx, api.ListQuery{Limit: q.PageSize, Page: q.Page})
		return collection.Page[models.Payout]{Items: items, TotalCount: total}, err
	})

	pendingVendors := collection.New(pageSize, func(ctx context.Context, q collection.Query) (collection.Page[models.PendingVendor], error) {
		items, total, err := client.PendingVendors(ctx, api.ListQuery{Limit: q.PageSize, Page: q.Page})
		return collection.Page[models.PendingVendor]{Items: items, TotalCount: total}, err
	})

	return &Console{
		API:       client,
		Products:  products,
		Orders:    orders,
		Payouts:   payouts.NewService(client, payoutList),
		Approvals: approval.New(client, pendingVendors),
	}
}
