package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/nexodus-tech/vendor-console/internal/models"
)

// ListOrders fetches one page of the vendor's orders with nested line items.
func (c *Client) ListOrders(ctx context.Context, q ListQuery) ([]models.Order, int, error) {
	values := url.Values{}
	values.Set("limit", strconv.Itoa(q.Limit))
	values.Set("page", strconv.Itoa(q.Page))
	if q.SortBy != "" {
		values.Set("sortBy", q.SortBy)
		values.Set("sortOrder", q.SortOrder)
	}

	raw, err := c.do(ctx, http.MethodGet, "/vendor/orders", values, nil)
	if err != nil {
		return nil, 0, err
	}
	return decodeCollection[models.Order]("/vendor/orders", raw, "orders")
}
