package entity

import (
	"fmt"
	"net/url"
	"strings"
)

// PurchaseOrderLine is one product on a restock order draft.
type PurchaseOrderLine struct {
	SupplierID   string `json:"supplier_id,omitempty"`
	SupplierName string `json:"supplier_name"`
	ProductID    string `json:"product_id"`
	ProductName  string `json:"product_name"`
	Quantity     int    `json:"quantity"`
}

// PurchaseOrder is an operator's restock order draft. It is transient: it
// lives in memory until the operator sends or clears it.
type PurchaseOrder struct {
	Lines []PurchaseOrderLine `json:"lines"`
}

// Empty reports whether the draft has no lines.
func (po *PurchaseOrder) Empty() bool {
	return len(po.Lines) == 0
}

// Message formats the order for delivery, grouping lines by supplier in
// first-appearance order.
func (po *PurchaseOrder) Message() string {
	var b strings.Builder
	b.WriteString("Hola, necesito abastecer los siguientes productos:\n\n")

	var order []string
	groups := make(map[string][]PurchaseOrderLine)
	for _, line := range po.Lines {
		name := line.SupplierName
		if name == "" {
			name = "Sin proveedor"
		}
		if _, seen := groups[name]; !seen {
			order = append(order, name)
		}
		groups[name] = append(groups[name], line)
	}

	for _, supplier := range order {
		fmt.Fprintf(&b, "Proveedor: %s\n", supplier)
		for _, line := range groups[supplier] {
			fmt.Fprintf(&b, "• %s x%d\n", line.ProductName, line.Quantity)
		}
		b.WriteString("\n")
	}

	b.WriteString("Gracias.\n— Almacén El Esfuerzo")
	return b.String()
}

// WhatsAppURL returns a wa.me link that opens the order message in a chat
// with the given phone number (digits only; empty opens the chooser).
func (po *PurchaseOrder) WhatsAppURL(phone string) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, phone)

	return "https://wa.me/" + digits + "?text=" + url.QueryEscape(po.Message())
}
