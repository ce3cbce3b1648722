package server

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/nexodus-tech/vendor-console/internal/api"
	"github.com/nexodus-tech/vendor-console/internal/console"
	"github.com/nexodus-tech/vendor-console/internal/models"
	"github.com/nexodus-tech/vendor-console/internal/payouts"
	"github.com/nexodus-tech/vendor-console/internal/status"
	"github.com/nexodus-tech/vendor-console/internal/upload"
)

func (s *Server) getDashboard(c *gin.Context) {
	year := queryInt(c, "year", currentYear())
	dashboard, err := s.app.Dashboard(c.Request.Context(), year)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": dashboard})
}

func (s *Server) getMonthlyRevenue(c *gin.Context) {
	year := queryInt(c, "year", currentYear())
	series, err := s.app.MonthlyRevenue(c.Request.Context(), year)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": gin.H{"year": year, "revenue": series}})
}

type productRow struct {
	models.Product
	Status status.Badge `json:"display_status"`
}

func (s *Server) listProducts(c *gin.Context) {
	ctrl := s.app.Products
	err := ctrl.Sync(c.Request.Context(), queryInt(c, "page", 0), c.Query("search"), c.Query("status"))
	if err != nil {
		writeError(c, err)
		return
	}

	items := ctrl.Items()
	rows := make([]productRow, 0, len(items))
	for _, p := range items {
		rows = append(rows, productRow{Product: p, Status: status.Product(p.IsPublished, p.IsActive)})
	}
	c.JSON(http.StatusOK, gin.H{
		"data": rows,
		"pagination": gin.H{
			"page":  ctrl.Page(),
			"pages": ctrl.TotalPages(),
			"total": ctrl.TotalCount(),
			"limit": ctrl.PageSize(),
		},
	})
}

func (s *Server) createProduct(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		writeError(c, &api.ValidationError{Field: "file", Message: "Please fill all required fields"})
		return
	}

	form := console.ProductForm{
		Name:           c.PostForm("name"),
		Description:    c.PostForm("description"),
		Price:          c.PostForm("price"),
		CompareAtPrice: c.PostForm("compare_at_price"),
		SKU:            c.PostForm("sku"),
		CategoryID:     c.PostForm("category_id"),
		Duration:       c.PostForm("duration"),
		PreviewURL:     c.PostForm("preview_url"),
		File: upload.File{
			Name: fileHeader.Filename,
			MIME: fileHeader.Header.Get("Content-Type"),
			Size: fileHeader.Size,
		},
	}

	file, err := fileHeader.Open()
	if err != nil {
		writeError(c, err)
		return
	}
	defer file.Close()
	form.FileContent = file

	if thumbHeader, err := c.FormFile("thumbnail"); err == nil {
		thumb, err := thumbHeader.Open()
		if err != nil {
			writeError(c, err)
			return
		}
		defer thumb.Close()
		form.Thumbnail = &upload.File{
			Name: thumbHeader.Filename,
			MIME: thumbHeader.Header.Get("Content-Type"),
			Size: thumbHeader.Size,
		}
		form.ThumbnailContent = thumb
	}

	if err := s.app.AddProduct(c.Request.Context(), form); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"status": "created"})
}

func (s *Server) deleteProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}
	if err := s.app.DeleteProduct(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

func (s *Server) listCategories(c *gin.Context) {
	categories, err := s.app.API.ListCategories(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": categories})
}

type orderRow struct {
	models.OrderRow
	Status        status.Badge `json:"status_badge"`
	PaymentStatus status.Badge `json:"payment_status_badge"`
}

func (s *Server) listOrders(c *gin.Context) {
	ctrl := s.app.Orders
	if err := ctrl.Sync(c.Request.Context(), queryInt(c, "page", 0), "", ""); err != nil {
		writeError(c, err)
		return
	}

	rows := make([]orderRow, 0)
	for _, r := range models.FlattenOrders(ctrl.Items()) {
		rows = append(rows, orderRow{
			OrderRow:      r,
			Status:        status.Order(r.Status),
			PaymentStatus: status.Payment(r.PaymentStatus),
		})
	}
	c.JSON(http.StatusOK, gin.H{
		"data": rows,
		"pagination": gin.H{
			"page":  ctrl.Page(),
			"pages": ctrl.TotalPages(),
			"total": ctrl.TotalCount(),
			"limit": ctrl.PageSize(),
		},
	})
}

type payoutRow struct {
	models.Payout
	Status      status.Badge `json:"status_badge"`
	MethodLabel string       `json:"method_label"`
}

func (s *Server) listPayouts(c *gin.Context) {
	if err := s.app.Payouts.Refresh(c.Request.Context()); err != nil {
		writeError(c, err)
		return
	}

	items := s.app.Payouts.List().Items()
	rows := make([]payoutRow, 0, len(items))
	for _, p := range items {
		rows = append(rows, payoutRow{
			Payout:      p,
			Status:      status.Payout(p.Status),
			MethodLabel: models.PayoutMethodLabel(p.PaymentMethod),
		})
	}
	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"balance": s.app.Payouts.Balance(),
			"payouts": rows,
		},
	})
}

type payoutRequestBody struct {
	Amount         string `json:"amount"`
	PaymentMethod  string `json:"payment_method"`
	PaymentDetails string `json:"payment_details"`
}

func (s *Server) requestPayout(c *gin.Context) {
	var body payoutRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	err := s.app.Payouts.Submit(c.Request.Context(), payouts.Request{
		Amount:         body.Amount,
		PaymentMethod:  body.PaymentMethod,
		PaymentDetails: body.PaymentDetails,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"status": "requested"})
}

type vendorRow struct {
	models.PendingVendor
	Status status.Badge `json:"status_badge"`
}

func (s *Server) listPendingVendors(c *gin.Context) {
	ctrl := s.app.Approvals.Pending()
	if err := ctrl.Refresh(c.Request.Context()); err != nil {
		writeError(c, err)
		return
	}

	items := ctrl.Items()
	rows := make([]vendorRow, 0, len(items))
	for _, v := range items {
		rows = append(rows, vendorRow{PendingVendor: v, Status: status.Vendor(models.VendorStatusPending)})
	}
	c.JSON(http.StatusOK, gin.H{"data": rows, "total": ctrl.TotalCount()})
}

type reviewBody struct {
	Status string `json:"status"`
	Notes  string `json:"notes"`
}

func (s *Server) reviewVendor(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid vendor id"})
		return
	}

	var body reviewBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	ctx := c.Request.Context()
	switch body.Status {
	case models.VendorStatusApproved:
		err = s.app.Approvals.Approve(ctx, id, body.Notes)
	case models.VendorStatusRejected:
		err = s.app.Approvals.Reject(ctx, id, body.Notes)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "status must be approved or rejected"})
		return
	}
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": body.Status})
}

func queryInt(c *gin.Context, key string, fallback int) int {
	raw := c.Query(key)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}
