package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/elesfuerzo/pos-api/internal/application/service"
	"github.com/elesfuerzo/pos-api/internal/presentation/http/dto/response"
)

// CatalogHandler serves the cashier-facing product catalog
type CatalogHandler struct {
	catalog *service.CatalogService
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalog *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// List returns the catalog, optionally narrowed by a search term
func (h *CatalogHandler) List(c *gin.Context) {
	products := h.catalog.Products(c.Query("search"))
	response.OK(c, "Catalog retrieved successfully", products)
}

// LowStock returns products at or below their minimum stock
func (h *CatalogHandler) LowStock(c *gin.Context) {
	response.OK(c, "Low stock products retrieved successfully", h.catalog.LowStock())
}
