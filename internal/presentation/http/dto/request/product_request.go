package request

// CreateProductRequest represents the create product payload. Price is in
// whole pesos.
type CreateProductRequest struct {
	Barcode    string `json:"barcode" binding:"required"`
	Name       string `json:"name" binding:"required"`
	Price      int64  `json:"price" binding:"required,min=0"`
	Quantity   int    `json:"quantity" binding:"min=0"`
	MinStock   int    `json:"min_stock" binding:"min=0"`
	Category   string `json:"category"`
	SupplierID string `json:"supplier_id"`
}

// AdjustStockRequest applies a signed stock delta
type AdjustStockRequest struct {
	Delta int `json:"delta" binding:"required"`
}

// ProductFilterRequest narrows the inventory listing
type ProductFilterRequest struct {
	Search   string `form:"search"`
	Category string `form:"category"`
	Supplier string `form:"supplier"`
	SortBy   string `form:"sort_by"`
}
