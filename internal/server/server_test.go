package server_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/nexodus-tech/vendor-console/internal/api"
	"github.com/nexodus-tech/vendor-console/internal/config"
	"github.com/nexodus-tech/vendor-console/internal/console"
	"github.com/nexodus-tech/vendor-console/internal/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) http.Handler {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{Lists: config.ListsConfig{PageSize: 5}}
	app := console.New(cfg, api.NewMockClient())
	return server.NewServer(app).Router()
}

func doJSON(t *testing.T, handler http.Handler, method, target string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var reader *bytes.Buffer
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewBuffer(data)
	} else {
		reader = &bytes.Buffer{}
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	var payload map[string]any
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	}
	return rec, payload
}

func TestHealthCheck(t *testing.T) {
	handler := newTestServer(t)
	rec, payload := doJSON(t, handler, http.MethodGet, "/api/health", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", payload["status"])
	assert.Equal(t, "vendor-console", payload["service"])
}

func TestListProducts(t *testing.T) {
	handler := newTestServer(t)
	rec, payload := doJSON(t, handler, http.MethodGet, "/api/products", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	data := payload["data"].([]any)
	assert.Len(t, data, 3)

	first := data[0].(map[string]any)
	badge := first["display_status"].(map[string]any)
	assert.Equal(t, "Published", badge["label"])

	pagination := payload["pagination"].(map[string]any)
	assert.EqualValues(t, 3, pagination["total"])
	assert.EqualValues(t, 1, pagination["page"])
}

func TestListProductsFiltered(t *testing.T) {
	handler := newTestServer(t)
	rec, payload := doJSON(t, handler, http.MethodGet, "/api/products?status=draft", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	data := payload["data"].([]any)
	require.Len(t, data, 1)
	row := data[0].(map[string]any)
	assert.Equal(t, "Drum Sample Pack", row["name"])
}

func TestListOrdersFlattened(t *testing.T) {
	handler := newTestServer(t)
	rec, payload := doJSON(t, handler, http.MethodGet, "/api/orders", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	// Two orders with 2 + 1 items produce three rows.
	data := payload["data"].([]any)
	assert.Len(t, data, 3)

	row := data[0].(map[string]any)
	assert.NotNil(t, row["item"])
	assert.NotNil(t, row["status_badge"])
	assert.NotNil(t, row["payment_status_badge"])
}

func TestRequestPayout(t *testing.T) {
	handler := newTestServer(t)

	rec, _ := doJSON(t, handler, http.MethodPost, "/api/payouts", map[string]any{
		"amount":          "150",
		"payment_method":  "paypal",
		"payment_details": "mara@example.com",
	})
	require.Equal(t, http.StatusAccepted, rec.Code)

	rec, payload := doJSON(t, handler, http.MethodGet, "/api/payouts", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	data := payload["data"].(map[string]any)
	balance := data["balance"].(map[string]any)
	assert.EqualValues(t, 350, balance["available_balance"])
}

func TestRequestPayoutRejected(t *testing.T) {
	handler := newTestServer(t)

	rec, payload := doJSON(t, handler, http.MethodPost, "/api/payouts", map[string]any{
		"amount":          "9999",
		"payment_method":  "paypal",
		"payment_details": "mara@example.com",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "Amount exceeds available balance", payload["error"])
}

func TestReviewVendor(t *testing.T) {
	handler := newTestServer(t)

	rec, _ := doJSON(t, handler, http.MethodPost, "/api/vendors/71/review", map[string]any{
		"status": "approved",
		"notes":  "verified business records",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec, payload := doJSON(t, handler, http.MethodGet, "/api/vendors/pending", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 1, payload["total"])

	// A second review of the same vendor is refused.
	rec, payload = doJSON(t, handler, http.MethodPost, "/api/vendors/71/review", map[string]any{
		"status": "rejected",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, payload["error"], "already approved")
}

func TestReviewVendorBadStatus(t *testing.T) {
	handler := newTestServer(t)
	rec, _ := doJSON(t, handler, http.MethodPost, "/api/vendors/71/review", map[string]any{
		"status": "banned",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDashboard(t *testing.T) {
	handler := newTestServer(t)
	rec, payload := doJSON(t, handler, http.MethodGet, "/api/dashboard?year=2025", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	data := payload["data"].(map[string]any)
	assert.EqualValues(t, 248, data["total_orders"])
	// "$4,960.00" parses to a plain number.
	assert.EqualValues(t, 4960, data["total_revenue"])
}
