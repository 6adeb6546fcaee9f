package entity

import (
	"strings"
	"time"
)

// DefaultMinStock is applied when a product record carries no minimum stock
// threshold. Applied once at the document-store boundary, never at read sites.
const DefaultMinStock = 5

// Product represents a product in the inventory. The Firestore document ID is
// the store's barcode; field names match the records the store already holds.
type Product struct {
	ID           string    `firestore:"-" json:"id"`
	Barcode      string    `firestore:"codigoBarras" json:"barcode"`
	Name         string    `firestore:"nombre" json:"name"`
	Price        int64     `firestore:"precio" json:"price"` // whole CLP
	Quantity     int       `firestore:"cantidad" json:"quantity"`
	MinStock     int       `firestore:"minStock" json:"min_stock"`
	Category     string    `firestore:"categoria" json:"category,omitempty"`
	SupplierID   string    `firestore:"proveedorId" json:"supplier_id,omitempty"`
	SupplierName string    `firestore:"proveedor" json:"supplier_name,omitempty"`
	SalesCount   int       `firestore:"ventas" json:"sales_count"`
	CreatedAt    time.Time `firestore:"creado,serverTimestamp" json:"created_at"`
}

// ApplyDefaults fills the implicit defaults of older records.
func (p *Product) ApplyDefaults() {
	if p.MinStock <= 0 {
		p.MinStock = DefaultMinStock
	}
	if p.Quantity < 0 {
		p.Quantity = 0
	}
}

// LowStock reports whether the product is at or below its minimum stock.
func (p *Product) LowStock() bool {
	return p.Quantity <= p.MinStock
}

// OutOfStock reports whether the product has no sellable units left.
func (p *Product) OutOfStock() bool {
	return p.Quantity <= 0
}

// MatchesSearch reports whether the product matches a case-insensitive
// substring search over name and barcode.
func (p *Product) MatchesSearch(term string) bool {
	if term == "" {
		return true
	}
	haystack := strings.ToLower(p.Name + " " + p.Barcode)
	return strings.Contains(haystack, strings.ToLower(term))
}

// InventoryValue returns price times units in stock.
func (p *Product) InventoryValue() int64 {
	return p.Price * int64(p.Quantity)
}
