package request

// AddItemRequest adds product units to the cart. Quantity defaults to a
// single scan when omitted.
type AddItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity"`
}

// SelectLineRequest selects a cart line
type SelectLineRequest struct {
	ProductID string `json:"product_id" binding:"required"`
}

// DigitRequest sends one keypad digit
type DigitRequest struct {
	Digit string `json:"digit" binding:"required,len=1"`
}

// PaymentRequest sets the payment method and, for cash, the tendered amount
type PaymentRequest struct {
	Method   string `json:"method" binding:"required"`
	Tendered int64  `json:"tendered"`
}

// CheckoutRequest finalizes the sale under an operator-entered receipt number
type CheckoutRequest struct {
	ReceiptNumber string `json:"receipt_number"`
}
