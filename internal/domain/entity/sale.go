package entity

import (
	"time"

	"github.com/elesfuerzo/pos-api/internal/domain/enum"
)

// SaleItem is an immutable line snapshot on a persisted sale.
type SaleItem struct {
	ProductID string `firestore:"id" json:"product_id"`
	Name      string `firestore:"nombre" json:"name"`
	Quantity  int    `firestore:"cantidad" json:"quantity"`
	UnitPrice int64  `firestore:"precio" json:"unit_price"`
}

// Total returns the line total.
func (i SaleItem) Total() int64 {
	return i.UnitPrice * int64(i.Quantity)
}

// Sale is a finalized transaction, immutable once written. The receipt number
// is typed in by the operator from the physical receipt, never generated.
type Sale struct {
	ID             string             `firestore:"-" json:"id"`
	ReceiptNumber  string             `firestore:"boletaId" json:"receipt_number"`
	PaymentMethod  enum.PaymentMethod `firestore:"metodoPago" json:"payment_method"`
	Subtotal       int64              `firestore:"subtotal" json:"subtotal"`
	Tax            int64              `firestore:"iva" json:"tax"`
	Total          int64              `firestore:"total" json:"total"`
	AmountTendered int64              `firestore:"pagoCliente" json:"amount_tendered"`
	ChangeDue      int64              `firestore:"vuelto" json:"change_due"`
	Items          []SaleItem         `firestore:"items" json:"items"`
	CreatedAt      time.Time          `firestore:"createdAt,serverTimestamp" json:"created_at"`
}
