package request

// CreateSupplierRequest represents the create supplier payload
type CreateSupplierRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone" binding:"required"`
	Email string `json:"email" binding:"omitempty,email"`
}
