// Package server exposes the reconciled console state as a local JSON API
// for the web dashboard.
package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nexodus-tech/vendor-console/internal/api"
	"github.com/nexodus-tech/vendor-console/internal/console"
)

type Server struct {
	router *gin.Engine
	app    *console.Console
}

// NewServer creates a new server instance
func NewServer(app *console.Console) *Server {
	router := gin.Default()

	server := &Server{
		router: router,
		app:    app,
	}

	server.setupRoutes()
	return server
}

// setupRoutes configures all API routes
func (s *Server) setupRoutes() {
	root := s.router.Group("/api")
	{
		root.GET("/health", s.healthCheck)
		root.GET("/dashboard", s.getDashboard)
		root.GET("/dashboard/monthly", s.getMonthlyRevenue)

		root.GET("/products", s.listProducts)
		root.POST("/products", s.createProduct)
		root.DELETE("/products/:id", s.deleteProduct)
		root.GET("/categories", s.listCategories)

		root.GET("/orders", s.listOrders)

		root.GET("/payouts", s.listPayouts)
		root.POST("/payouts", s.requestPayout)

		root.GET("/vendors/pending", s.listPendingVendors)
		root.POST("/vendors/:id/review", s.reviewVendor)
	}
}

// healthCheck endpoint for monitoring
func (s *Server) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "vendor-console",
		"version": "0.1.0",
	})
}

// Start starts the HTTP server
func (s *Server) Start(addr string) error {
	return s.router.Run(addr)
}

// Router exposes the gin engine for tests.
func (s *Server) Router() http.Handler {
	return s.router
}

// writeError maps the error taxonomy onto HTTP statuses: validation and
// business-rule failures are the caller's problem, format and network
// failures are the upstream's.
func writeError(c *gin.Context, err error) {
	var (
		validationErr   *api.ValidationError
		businessRuleErr *api.BusinessRuleError
		dataFormatErr   *api.DataFormatError
	)
	switch {
	case errors.As(err, &validationErr), errors.As(err, &businessRuleErr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.As(err, &dataFormatErr):
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	}
}

func currentYear() int {
	return time.Now().Year()
}
