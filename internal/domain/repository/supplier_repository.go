package repository

import (
	"context"

	"github.com/elesfuerzo/pos-api/internal/domain/entity"
)

// SupplierRepository defines the interface for supplier data operations.
type SupplierRepository interface {
	// Create persists a new supplier and returns its generated ID.
	Create(ctx context.Context, supplier *entity.Supplier) (string, error)
	// GetByID returns (nil, nil) when the supplier does not exist.
	GetByID(ctx context.Context, id string) (*entity.Supplier, error)
	// List returns all suppliers ordered by name.
	List(ctx context.Context) ([]entity.Supplier, error)
}
