package entity

import "time"

// Supplier represents a restock supplier.
type Supplier struct {
	ID        string    `firestore:"-" json:"id"`
	Name      string    `firestore:"nombre" json:"name"`
	Email     string    `firestore:"email" json:"email,omitempty"`
	Phone     string    `firestore:"telefono" json:"phone"`
	CreatedAt time.Time `firestore:"creado,serverTimestamp" json:"created_at"`
}
