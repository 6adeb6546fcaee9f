package repository

import (
	"context"

	"github.com/elesfuerzo/pos-api/internal/domain/entity"
)

// ProductRepository defines the interface for product data operations. The
// backing store keys products by barcode.
type ProductRepository interface {
	// Create persists a new product using its barcode as the document ID.
	// Returns a conflict error when the barcode is already registered.
	Create(ctx context.Context, product *entity.Product) error
	// GetByID returns (nil, nil) when the product does not exist.
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	// List returns all products ordered by name.
	List(ctx context.Context) ([]entity.Product, error)
	// ListBySupplier returns the products referencing a supplier.
	ListBySupplier(ctx context.Context, supplierID string) ([]entity.Product, error)
	// AdjustQuantity applies a signed stock increment.
	AdjustQuantity(ctx context.Context, id string, delta int) error
	// RegisterSale decrements stock by qty and increments the running sales
	// counter by the same amount, as a single field-delta update.
	RegisterSale(ctx context.Context, id string, qty int) error
	// Watch streams full catalog snapshots, ordered by name, on every change
	// until ctx is done.
	Watch(ctx context.Context) (<-chan []entity.Product, error)
}
