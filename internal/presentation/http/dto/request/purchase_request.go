package request

// AddOrderItemRequest adds a product to the restock order draft
type AddOrderItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

// UpdateOrderItemRequest replaces a drafted quantity
type UpdateOrderItemRequest struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}
