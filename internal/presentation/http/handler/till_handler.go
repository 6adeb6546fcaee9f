package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/elesfuerzo/pos-api/internal/application/service"
	"github.com/elesfuerzo/pos-api/internal/application/till"
	"github.com/elesfuerzo/pos-api/internal/domain/enum"
	"github.com/elesfuerzo/pos-api/internal/presentation/http/dto/request"
	"github.com/elesfuerzo/pos-api/internal/presentation/http/dto/response"
)

// TillHandler drives an operator's checkout session
type TillHandler struct {
	manager  *till.Manager
	checkout *service.CheckoutService
}

// NewTillHandler creates a new till handler
func NewTillHandler(manager *till.Manager, checkout *service.CheckoutService) *TillHandler {
	return &TillHandler{manager: manager, checkout: checkout}
}

func (h *TillHandler) session(c *gin.Context) (*till.Session, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid session ID")
		return nil, false
	}

	session, err := h.manager.Get(id, GetUID(c))
	if err != nil {
		response.Error(c, err)
		return nil, false
	}
	return session, true
}

// Open returns the operator's session, creating one if needed
func (h *TillHandler) Open(c *gin.Context) {
	session := h.manager.Open(GetUID(c))
	response.Created(c, "Till session ready", session.Projection())
}

// Get returns the session projection for rendering
func (h *TillHandler) Get(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}
	response.OK(c, "Till session", session.Projection())
}

// Close discards the session
func (h *TillHandler) Close(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid session ID")
		return
	}

	if err := h.manager.Close(id, GetUID(c)); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// AddItem adds product units to the cart
func (h *TillHandler) AddItem(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	var req request.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Product ID is required")
		return
	}
	if req.Quantity <= 0 {
		req.Quantity = 1
	}

	if err := session.AddItem(req.ProductID, req.Quantity); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Cart updated", session.Projection())
}

// SelectLine selects a cart line
func (h *TillHandler) SelectLine(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	var req request.SelectLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Product ID is required")
		return
	}

	if err := session.SelectLine(req.ProductID); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Line selected", session.Projection())
}

// EnterEditMode switches the selected line into quantity editing
func (h *TillHandler) EnterEditMode(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	session.EnterQuantityEdit()
	response.OK(c, "Edit mode", session.Projection())
}

// InputDigit sends one keypad digit
func (h *TillHandler) InputDigit(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	var req request.DigitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "A single digit is required")
		return
	}

	if err := session.InputDigit(req.Digit[0]); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Digit applied", session.Projection())
}

// ClearCart empties the cart
func (h *TillHandler) ClearCart(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	session.ClearCart()
	response.OK(c, "Cart cleared", session.Projection())
}

// SetPayment records the payment method and tendered amount
func (h *TillHandler) SetPayment(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	var req request.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Payment method is required")
		return
	}

	if err := session.SetPayment(enum.PaymentMethod(req.Method), req.Tendered); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Payment updated", session.Projection())
}

// Checkout finalizes the sale
func (h *TillHandler) Checkout(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	var req request.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid checkout payload")
		return
	}

	sale, receipt, err := h.checkout.Finalize(c.Request.Context(), session, &service.CheckoutInput{
		ReceiptNumber: req.ReceiptNumber,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Sale registered successfully", gin.H{
		"sale":    sale,
		"receipt": receipt,
		"session": session.Projection(),
	})
}
