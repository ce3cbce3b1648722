package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"

	"github.com/nexodus-tech/vendor-console/internal/models"
)

// ListProducts fetches one page of the vendor's product listings.
func (c *Client) ListProducts(ctx context.Context, q ListQuery) ([]models.Product, int, error) {
	values := url.Values{}
	values.Set("limit", strconv.Itoa(q.Limit))
	values.Set("offset", strconv.Itoa(q.Offset))
	if q.Search != "" {
		values.Set("search", q.Search)
	}
	if q.Status != "" && q.Status != models.ProductFilterAll {
		values.Set("status", q.Status)
	}

	raw, err := c.do(ctx, http.MethodGet, "/vendor/products", values, nil)
	if err != nil {
		return nil, 0, err
	}
	return decodeCollection[models.Product]("/vendor/products", raw, "products")
}

// CreateProduct submits a new product. Asset uploads must already be done.
func (c *Client) CreateProduct(ctx context.Context, p models.NewProduct) error {
	_, err := c.do(ctx, http.MethodPost, "/product", nil, p)
	return err
}

// DeleteProduct removes a product listing. The server reports logical
// failures in a success flag even on 200 responses.
func (c *Client) DeleteProduct(ctx context.Context, id int64) error {
	path := fmt.Sprintf("/product/%d", id)
	raw, err := c.do(ctx, http.MethodDelete, path, nil, nil)
	if err != nil {
		return err
	}

	var resp struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		return &DataFormatError{Endpoint: path, Detail: err.Error()}
	}
	if !resp.Success {
		msg := resp.Message
		if msg == "" {
			msg = "failed to delete product"
		}
		return &NetworkError{Endpoint: path, StatusCode: http.StatusOK, Message: msg}
	}
	return nil
}

// UploadAsset streams a file to the platform's asset store. assetType is
// "product" for digital files and "thumbnail" for images.
func (c *Client) UploadAsset(ctx context.Context, name, mimeType, assetType string, r io.Reader) (*Asset, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile("file", name)
	if err != nil {
		return nil, fmt.Errorf("failed to build upload form: %w", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return nil, fmt.Errorf("failed to read upload content: %w", err)
	}
	_ = writer.WriteField("type", assetType)
	_ = writer.WriteField("originalFileName", name)
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize upload form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/product/upload", body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.token))

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &NetworkError{Endpoint: "/product/upload", Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{Endpoint: "/product/upload", Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &NetworkError{
			Endpoint:   "/product/upload",
			StatusCode: resp.StatusCode,
			Message:    serverMessage(raw),
		}
	}

	var asset Asset
	if err := json.Unmarshal(raw, &asset); err != nil {
		return nil, &DataFormatError{Endpoint: "/product/upload", Detail: err.Error()}
	}
	if asset.Key == "" {
		return nil, &DataFormatError{Endpoint: "/product/upload", Detail: "missing asset key"}
	}
	return &asset, nil
}

// ListCategories fetches the read-only category reference data. The endpoint
// historically returned a bare top-level array; a data envelope is tolerated.
func (c *Client) ListCategories(ctx context.Context) ([]models.Category, error) {
	raw, err := c.do(ctx, http.MethodGet, "/category", nil, nil)
	if err != nil {
		return nil, err
	}

	var categories []models.Category
	if err := json.Unmarshal(raw, &categories); err == nil {
		return categories, nil
	}

	var env struct {
		Data []models.Category `json:"data"`
	}
	if err := json.Unmarshal(raw, &env); err != nil || env.Data == nil {
		return nil, &DataFormatError{Endpoint: "/category", Detail: "expected a category array"}
	}
	return env.Data, nil
}
