package service

import (
	"context"

	"github.com/elesfuerzo/pos-api/internal/domain/entity"
	"github.com/elesfuerzo/pos-api/internal/domain/repository"
	"github.com/elesfuerzo/pos-api/pkg/apperror"
)

// SalesService exposes the immutable sales history.
type SalesService struct {
	saleRepo repository.SaleRepository
}

// NewSalesService creates a new sales service.
func NewSalesService(saleRepo repository.SaleRepository) *SalesService {
	return &SalesService{saleRepo: saleRepo}
}

// ListSales returns all sales, most recent first.
func (s *SalesService) ListSales(ctx context.Context) ([]entity.Sale, error) {
	return s.saleRepo.List(ctx)
}

// GetSale retrieves a sale by ID.
func (s *SalesService) GetSale(ctx context.Context, id string) (*entity.Sale, error) {
	sale, err := s.saleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, apperror.NewNotFoundError("Sale")
	}
	return sale, nil
}
