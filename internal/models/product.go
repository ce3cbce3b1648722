package models

// Product is a vendor product listing as returned by GET /vendor/products.
type Product struct {
	ID             int64    `json:"id"`
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	Price          float64  `json:"price"`
	CompareAtPrice *float64 `json:"compare_at_price"`
	SKU            string   `json:"sku,omitempty"`
	Categories     string   `json:"categories"`
	VendorName     string   `json:"vendor_name,omitempty"`
	ThumbnailURL   string   `json:"thumbnail_url"`
	IsPublished    bool     `json:"is_published"`
	IsActive       bool     `json:"is_active"`
	AverageRating  *float64 `json:"average_rating"`
	ReviewsCount   int      `json:"reviews_count"`
	CreatedAt      string   `json:"created_at"`
}

// NewProduct is the creation payload for POST /product. File and thumbnail
// references must already be uploaded; only their keys/URLs travel here.
type NewProduct struct {
	Name             string   `json:"name" validate:"required"`
	Description      string   `json:"description"`
	Price            float64  `json:"price" validate:"required,gt=0"`
	CompareAtPrice   *float64 `json:"compare_at_price"`
	SKU              *string  `json:"sku"`
	CategoryID       string   `json:"category_id" validate:"required"`
	VendorID         string   `json:"vendor_id,omitempty"`
	FileKey          string   `json:"file_key" validate:"required"`
	OriginalFileName string   `json:"original_file_name"`
	FileSize         string   `json:"file_size"`
	FileType         string   `json:"file_type"`
	Duration         *string  `json:"duration"`
	PreviewURL       *string  `json:"preview_url"`
	ThumbnailURL     *string  `json:"thumbnail_url"`
}

// Category is read-only reference data from GET /category.
type Category struct {
	ID   string `json:"category_id"`
	Name string `json:"name"`
}

const (
	ProductFilterAll       = "all"
	ProductFilterPublished = "published"
	ProductFilterDraft     = "draft"
)
