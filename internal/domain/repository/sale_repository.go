package repository

import (
	"context"

	"github.com/elesfuerzo/pos-api/internal/domain/entity"
)

// SaleRepository defines the interface for sale records. Sales are immutable
// once written; there is no update or delete.
type SaleRepository interface {
	// Create persists the sale and returns its generated ID. The creation
	// timestamp is assigned by the store server.
	Create(ctx context.Context, sale *entity.Sale) (string, error)
	// GetByID returns (nil, nil) when the sale does not exist.
	GetByID(ctx context.Context, id string) (*entity.Sale, error)
	// List returns all sales, most recent first.
	List(ctx context.Context) ([]entity.Sale, error)
}
