package console

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/nexodus-tech/vendor-console/internal/api"
	"github.com/nexodus-tech/vendor-console/internal/models"
	"github.com/nexodus-tech/vendor-console/internal/upload"
)

var validate = validator.New()

// ProductForm is a product creation as entered by the vendor. Numeric fields
// stay strings until validation. The digital file is mandatory, the
// thumbnail optional.
type ProductForm struct {
	Name           string
	Description    string
	Price          string
	CompareAtPrice string
	SKU            string
	CategoryID     string
	Duration       string
	PreviewURL     string

	File        upload.File
	FileContent io.Reader

	Thumbnail        *upload.File
	ThumbnailContent io.Reader
}

// AddProduct validates the form, runs the pre-flight upload checks, uploads
// the assets and creates the product, then refreshes the product list.
// Validation failures never reach the network.
func (c *Console) AddProduct(ctx context.Context, form ProductForm) error {
	if form.Name == "" || form.Price == "" || form.CategoryID == "" || form.FileContent == nil {
		return &api.ValidationError{Message: "Please fill all required fields"}
	}

	price, err := strconv.ParseFloat(strings.TrimSpace(form.Price), 64)
	if err != nil || price <= 0 {
		return &api.ValidationError{Field: "price", Message: "Price must be a positive number"}
	}

	var compareAt *float64
	if form.CompareAtPrice != "" {
		v, err := strconv.ParseFloat(strings.TrimSpace(form.CompareAtPrice), 64)
		if err != nil || v <= price {
			return &api.ValidationError{Field: "compare_at_price", Message: "Compare price must be greater than regular price"}
		}
		compareAt = &v
	}

	if err := upload.ValidateDigitalSubmission(form.File); err != nil {
		return err
	}
	if form.Thumbnail != nil {
		if err := upload.ValidateThumbnail(*form.Thumbnail); err != nil {
			return err
		}
	}

	fileAsset, err := c.API.UploadAsset(ctx, form.File.Name, form.File.MIME, "product", form.FileContent)
	if err != nil {
		return err
	}

	var thumbnailURL *string
	if form.Thumbnail != nil {
		thumbAsset, err := c.API.UploadAsset(ctx, form.Thumbnail.Name, form.Thumbnail.MIME, "thumbnail", form.ThumbnailContent)
		if err != nil {
			return err
		}
		thumbnailURL = &thumbAsset.URL
	}

	product := models.NewProduct{
		Name:             form.Name,
		Description:      form.Description,
		Price:            price,
		CompareAtPrice:   compareAt,
		CategoryID:       form.CategoryID,
		FileKey:          fileAsset.Key,
		OriginalFileName: form.File.Name,
		FileSize:         fmt.Sprintf("%.2fMB", float64(form.File.Size)/(1<<20)),
		FileType:         fileType(form.File),
		ThumbnailURL:     thumbnailURL,
	}
	if form.SKU != "" {
		product.SKU = &form.SKU
	}
	if form.Duration != "" {
		product.Duration = &form.Duration
	}
	if form.PreviewURL != "" {
		product.PreviewURL = &form.PreviewURL
	}

	if err := validate.Struct(product); err != nil {
		return &api.ValidationError{Message: err.Error()}
	}

	if err := c.API.CreateProduct(ctx, product); err != nil {
		return err
	}
	return c.Products.Refresh(ctx)
}

// DeleteProduct removes a listing and refreshes the product list.
func (c *Console) DeleteProduct(ctx context.Context, id int64) error {
	if err := c.API.DeleteProduct(ctx, id); err != nil {
		return err
	}
	return c.Products.Refresh(ctx)
}

// fileType reports the MIME type when the picker supplied one, otherwise the
// bare file extension.
func fileType(f upload.File) string {
	if f.MIME != "" {
		return f.MIME
	}
	if i := strings.LastIndex(f.Name, "."); i >= 0 {
		return f.Name[i+1:]
	}
	return ""
}
