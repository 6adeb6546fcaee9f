package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/elesfuerzo/pos-api/internal/application/service"
	"github.com/elesfuerzo/pos-api/internal/presentation/http/dto/request"
	"github.com/elesfuerzo/pos-api/internal/presentation/http/dto/response"
)

// PurchaseHandler handles restock order draft HTTP requests
type PurchaseHandler struct {
	purchaseService *service.PurchaseService
}

// NewPurchaseHandler creates a new purchase order handler
func NewPurchaseHandler(purchaseService *service.PurchaseService) *PurchaseHandler {
	return &PurchaseHandler{purchaseService: purchaseService}
}

// Get returns the operator's draft
func (h *PurchaseHandler) Get(c *gin.Context) {
	response.OK(c, "Purchase order draft", h.purchaseService.GetDraft(GetUID(c)))
}

// Clear discards the draft
func (h *PurchaseHandler) Clear(c *gin.Context) {
	h.purchaseService.ClearDraft(GetUID(c))
	response.NoContent(c)
}

// AddItem adds a product to the draft
func (h *PurchaseHandler) AddItem(c *gin.Context) {
	var req request.AddOrderItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Product ID and a positive quantity are required")
		return
	}

	po, err := h.purchaseService.AddItem(c.Request.Context(), GetUID(c), &service.AddItemInput{
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Item added to purchase order", po)
}

// UpdateItem replaces a drafted quantity
func (h *PurchaseHandler) UpdateItem(c *gin.Context) {
	var req request.UpdateOrderItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "A positive quantity is required")
		return
	}

	po, err := h.purchaseService.UpdateItemQuantity(GetUID(c), c.Param("productId"), req.Quantity)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Purchase order updated", po)
}

// RemoveItem drops a product from the draft
func (h *PurchaseHandler) RemoveItem(c *gin.Context) {
	po, err := h.purchaseService.RemoveItem(GetUID(c), c.Param("productId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Item removed from purchase order", po)
}

// Message returns the formatted order with delivery shortcuts
func (h *PurchaseHandler) Message(c *gin.Context) {
	msg, err := h.purchaseService.GetMessage(c.Request.Context(), GetUID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Purchase order message", msg)
}

// Send emails the order to its suppliers and clears the draft
func (h *PurchaseHandler) Send(c *gin.Context) {
	result, err := h.purchaseService.Send(c.Request.Context(), GetUID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Purchase order sent", result)
}
