package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/elesfuerzo/pos-api/internal/application/service"
	"github.com/elesfuerzo/pos-api/internal/presentation/http/dto/request"
	"github.com/elesfuerzo/pos-api/internal/presentation/http/dto/response"
)

// ProductHandler handles inventory management HTTP requests
type ProductHandler struct {
	productService *service.ProductService
}

// NewProductHandler creates a new product handler
func NewProductHandler(productService *service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// List returns the inventory, filtered and ordered per query parameters
func (h *ProductHandler) List(c *gin.Context) {
	var filter request.ProductFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	products, err := h.productService.ListProducts(c.Request.Context(), service.ProductFilter{
		Search:   filter.Search,
		Category: filter.Category,
		Supplier: filter.Supplier,
		SortBy:   filter.SortBy,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Products retrieved successfully", products)
}

// Create registers a new product
func (h *ProductHandler) Create(c *gin.Context) {
	var req request.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Barcode, name and a non-negative price are required")
		return
	}

	product, err := h.productService.CreateProduct(c.Request.Context(), &service.CreateProductInput{
		Barcode:    req.Barcode,
		Name:       req.Name,
		Price:      req.Price,
		Quantity:   req.Quantity,
		MinStock:   req.MinStock,
		Category:   req.Category,
		SupplierID: req.SupplierID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Product created successfully", product)
}

// Get returns a product by its barcode ID
func (h *ProductHandler) Get(c *gin.Context) {
	product, err := h.productService.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Product retrieved successfully", product)
}

// AdjustStock applies a signed stock delta
func (h *ProductHandler) AdjustStock(c *gin.Context) {
	var req request.AdjustStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "A non-zero delta is required")
		return
	}

	product, err := h.productService.AdjustStock(c.Request.Context(), c.Param("id"), req.Delta)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Stock adjusted successfully", product)
}
