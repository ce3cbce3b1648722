package api

import (
	"context"
	"io"

	"github.com/nexodus-tech/vendor-console/internal/models"
)

// ListQuery carries the pagination, filter and sort parameters of a list
// request. Products paginate by limit/offset, orders by limit/page; each
// endpoint reads the fields it understands.
type ListQuery struct {
	Limit     int
	Offset    int
	Page      int
	Search    string
	Status    string
	SortBy    string
	SortOrder string
}

// Asset is the result of uploading a file through POST /product/upload.
type Asset struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

// PayoutRequest is the body of POST /vendor/payouts/request. The amount is
// assumed to be pre-validated against the available balance.
type PayoutRequest struct {
	Amount         float64 `json:"amount"`
	PaymentMethod  string  `json:"payment_method"`
	PaymentDetails string  `json:"payment_details"`
}

// Commerce is the remote service surface the console depends on. Client is
// the live implementation; MockClient serves offline development and tests.
type Commerce interface {
	Analytics(ctx context.Context, year int) (*models.VendorAnalytics, error)

	ListProducts(ctx context.Context, q ListQuery) ([]models.Product, int, error)
	CreateProduct(ctx context.Context, p models.NewProduct) error
	DeleteProduct(ctx context.Context, id int64) error
	UploadAsset(ctx context.Context, name, mimeType, assetType string, r io.Reader) (*Asset, error)
	ListCategories(ctx context.Context) ([]models.Category, error)

	ListOrders(ctx context.Context, q ListQuery) ([]models.Order, int, error)

	ListPayouts(ctx context.Context, q ListQuery) ([]models.Payout, int, error)
	Balance(ctx context.Context) (models.Balance, error)
	RequestPayout(ctx context.Context, req PayoutRequest) error

	PendingVendors(ctx context.Context, q ListQuery) ([]models.PendingVendor, int, error)
	ReviewVendor(ctx context.Context, vendorID int64, vendorStatus, notes string) error
}

// Compile-time interface checks
var (
	_ Commerce = (*Client)(nil)
	_ Commerce = (*MockClient)(nil)
)
