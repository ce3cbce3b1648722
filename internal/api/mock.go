package api

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/nexodus-tech/vendor-console/internal/models"
)

// MockClient is an in-memory Commerce implementation for offline development
// and tests. It honors the same pagination, filtering and lifecycle rules as
// the live service so controllers behave identically against it.
type MockClient struct {
	mu       sync.Mutex
	nextID   int64
	products []models.Product
	orders   []models.Order
	payouts  []models.Payout
	vendors  []models.PendingVendor
	balance  models.Balance
}

func NewMockClient() *MockClient {
	compareAt := 49.99
	rating := 4.5
	return &MockClient{
		nextID: 100,
		products: []models.Product{
			{ID: 1, Name: "Mixing Masterclass", Description: "Video course on mixing", Price: 39.99, CompareAtPrice: &compareAt, Categories: "Courses", IsPublished: true, IsActive: true, AverageRating: &rating, ReviewsCount: 12, CreatedAt: "2025-01-12T10:00:00Z"},
			{ID: 2, Name: "Drum Sample Pack", Description: "300 one-shots", Price: 19.99, Categories: "Samples", IsPublished: false, IsActive: true, CreatedAt: "2025-02-03T10:00:00Z"},
			{ID: 3, Name: "Legacy Preset Bank", Description: "Retired product", Price: 9.99, Categories: "Presets", IsPublished: false, IsActive: false, CreatedAt: "2024-11-20T10:00:00Z"},
		},
		orders: []models.Order{
			{
				OrderID: 501, OrderNumber: "ORD-2025-0501", CustomerName: "Ada Smith",
				CustomerEmail: "ada@example.com", Status: models.OrderStatusCompleted,
				PaymentStatus: models.PaymentStatusPaid, TotalAmount: "59.98",
				CreatedAt: "2025-03-01T09:30:00Z",
				Items: []models.OrderItem{
					{OrderItemID: 1, ProductID: 1, ProductName: "Mixing Masterclass", Quantity: 1, Price: "39.99", TotalPrice: "39.99"},
					{OrderItemID: 2, ProductID: 2, ProductName: "Drum Sample Pack", Quantity: 1, Price: "19.99", TotalPrice: "19.99"},
				},
			},
			{
				OrderID: 502, OrderNumber: "ORD-2025-0502", CustomerName: "Ben Okoro",
				CustomerEmail: "ben@example.com", Status: models.OrderStatusPending,
				PaymentStatus: models.PaymentStatusPending, TotalAmount: "19.99",
				CreatedAt: "2025-03-04T14:10:00Z",
				Items: []models.OrderItem{
					{OrderItemID: 3, ProductID: 2, ProductName: "Drum Sample Pack", Quantity: 1, Price: "19.99", TotalPrice: "19.99"},
				},
			},
		},
		payouts: []models.Payout{
			{ID: 9001, Amount: 120, Status: models.PayoutStatusCompleted, PaymentMethod: models.PayoutMethodBankTransfer, PaymentDetails: "****4242", CreatedAt: "2025-02-10T08:00:00Z", ProcessedAt: strPtr("2025-02-12T08:00:00Z")},
		},
		vendors: []models.PendingVendor{
			{ID: 71, FirstName: "Mara", LastName: "Lopez", Email: "mara@example.com", BusinessName: "Mara Audio", PayoutMethod: models.PayoutMethodPayPal, CreatedAt: "2025-03-02T11:00:00Z"},
			{ID: 72, FirstName: "Tom", LastName: "Nagy", Email: "tom@example.com", BusinessName: "Nagy Samples", PayoutMethod: models.PayoutMethodBankTransfer, CreatedAt: "2025-03-05T16:45:00Z"},
		},
		balance: models.Balance{Available: 500, Pending: 80},
	}
}

func strPtr(s string) *string { return &s }

func (m *MockClient) Analytics(ctx context.Context, year int) (*models.VendorAnalytics, error) {
	return &models.VendorAnalytics{
		AllTime:   models.AllTimeStats{TotalOrders: 248, TotalRevenue: "$4,960.00"},
		Last7Days: models.WeeklyStats{Orders: 70, Revenue: "1,400.00"},
		MonthlyTrends: []models.MonthlyTrend{
			{Month: fmt.Sprintf("%d-01", year), Revenue: 410},
			{Month: fmt.Sprintf("%d-02", year), Revenue: 385},
			{Month: fmt.Sprintf("%d-03", year), Revenue: 520},
		},
		Year: year,
	}, nil
}

func (m *MockClient) ListProducts(ctx context.Context, q ListQuery) ([]models.Product, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var matched []models.Product
	for _, p := range m.products {
		if q.Search != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(q.Search)) {
			continue
		}
		switch q.Status {
		case models.ProductFilterPublished:
			if !(p.IsPublished && p.IsActive) {
				continue
			}
		case models.ProductFilterDraft:
			if !(!p.IsPublished && p.IsActive) {
				continue
			}
		}
		matched = append(matched, p)
	}
	return pageSlice(matched, q.Offset, q.Limit), len(matched), nil
}

func (m *MockClient) CreateProduct(ctx context.Context, p models.NewProduct) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextID++
	product := models.Product{
		ID:             m.nextID,
		Name:           p.Name,
		Description:    p.Description,
		Price:          p.Price,
		CompareAtPrice: p.CompareAtPrice,
		IsActive:       true,
	}
	if p.SKU != nil {
		product.SKU = *p.SKU
	}
	if p.ThumbnailURL != nil {
		product.ThumbnailURL = *p.ThumbnailURL
	}
	m.products = append(m.products, product)
	return nil
}

func (m *MockClient) DeleteProduct(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, p := range m.products {
		if p.ID == id {
			m.products = append(m.products[:i], m.products[i+1:]...)
			return nil
		}
	}
	return &NetworkError{Endpoint: fmt.Sprintf("/product/%d", id), StatusCode: 404, Message: "product not found"}
}

func (m *MockClient) UploadAsset(ctx context.Context, name, mimeType, assetType string, r io.Reader) (*Asset, error) {
	if _, err := io.Copy(io.Discard, r); err != nil {
		return nil, &NetworkError{Endpoint: "/product/upload", Err: err}
	}
	key := fmt.Sprintf("%s/%s", assetType, name)
	return &Asset{Key: key, URL: "https://cdn.example.com/" + key}, nil
}

func (m *MockClient) ListCategories(ctx context.Context) ([]models.Category, error) {
	return []models.Category{
		{ID: "cat-courses", Name: "Courses"},
		{ID: "cat-samples", Name: "Samples"},
		{ID: "cat-presets", Name: "Presets"},
	}, nil
}

func (m *MockClient) ListOrders(ctx context.Context, q ListQuery) ([]models.Order, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	offset := 0
	if q.Page > 1 {
		offset = (q.Page - 1) * q.Limit
	}
	return pageSlice(m.orders, offset, q.Limit), len(m.orders), nil
}

func (m *MockClient) ListPayouts(ctx context.Context, q ListQuery) ([]models.Payout, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := append([]models.Payout(nil), m.payouts...)
	return out, len(out), nil
}

func (m *MockClient) Balance(ctx context.Context) (models.Balance, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.balance, nil
}

// RequestPayout moves the requested amount from available to pending and
// records a pending payout, mimicking the ledger side effect of the real
// service.
func (m *MockClient) RequestPayout(ctx context.Context, req PayoutRequest) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if req.Amount > m.balance.Available {
		return &NetworkError{Endpoint: "/vendor/payouts/request", StatusCode: 422, Message: "amount exceeds available balance"}
	}
	m.balance.Available -= req.Amount
	m.balance.Pending += req.Amount
	m.nextID++
	m.payouts = append(m.payouts, models.Payout{
		ID:             m.nextID,
		Amount:         req.Amount,
		Status:         models.PayoutStatusPending,
		PaymentMethod:  req.PaymentMethod,
		PaymentDetails: req.PaymentDetails,
		CreatedAt:      "2025-03-10T00:00:00Z",
	})
	return nil
}

func (m *MockClient) PendingVendors(ctx context.Context, q ListQuery) ([]models.PendingVendor, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := append([]models.PendingVendor(nil), m.vendors...)
	return out, len(out), nil
}

// ReviewVendor removes the vendor from the pending set. Reviewing a vendor
// that is no longer pending is a no-op, matching the idempotent remote call.
func (m *MockClient) ReviewVendor(ctx context.Context, vendorID int64, vendorStatus, notes string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, v := range m.vendors {
		if v.ID == vendorID {
			m.vendors = append(m.vendors[:i], m.vendors[i+1:]...)
			return nil
		}
	}
	return nil
}

func pageSlice[T any](items []T, offset, limit int) []T {
	if offset >= len(items) || offset < 0 {
		return []T{}
	}
	end := len(items)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return append([]T(nil), items[offset:end]...)
}
