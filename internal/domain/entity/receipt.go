package entity

// ReceiptHeader holds the store header printed at the top of a receipt.
type ReceiptHeader struct {
	StoreName string `json:"store_name"`
	Address   string `json:"address,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

// ReceiptItem represents a single line item on a receipt.
type ReceiptItem struct {
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice int64  `json:"unit_price"`
	Total     int64  `json:"total"`
}

// Receipt is a value object representing a printable receipt. It is not
// persisted; it is composed from a finalized sale at checkout time.
type Receipt struct {
	Header        ReceiptHeader `json:"header"`
	ReceiptNumber string        `json:"receipt_number"`
	Date          string        `json:"date"`
	PaymentMethod string        `json:"payment_method"`
	Items         []ReceiptItem `json:"items"`
	Subtotal      int64         `json:"subtotal"`
	Tax           int64         `json:"tax"`
	Total         int64         `json:"total"`
	Tendered      int64         `json:"tendered"`
	Change        int64         `json:"change"`
}
