package service

import (
	"context"
	"strings"

	"github.com/elesfuerzo/pos-api/internal/domain/entity"
	"github.com/elesfuerzo/pos-api/internal/domain/repository"
	"github.com/elesfuerzo/pos-api/pkg/apperror"
)

// SupplierService handles supplier directory operations.
type SupplierService struct {
	supplierRepo repository.SupplierRepository
	productRepo  repository.ProductRepository
}

// NewSupplierService creates a new supplier service.
func NewSupplierService(
	supplierRepo repository.SupplierRepository,
	productRepo repository.ProductRepository,
) *SupplierService {
	return &SupplierService{
		supplierRepo: supplierRepo,
		productRepo:  productRepo,
	}
}

// CreateSupplierInput represents the create supplier input.
type CreateSupplierInput struct {
	Name  string
	Email string
	Phone string
}

// CreateSupplier registers a supplier. The phone is required because restock
// orders go out over WhatsApp; email is optional.
func (s *SupplierService) CreateSupplier(ctx context.Context, input *CreateSupplierInput) (*entity.Supplier, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, apperror.NewBadRequestError("Supplier name is required")
	}
	phone := strings.TrimSpace(input.Phone)
	if phone == "" {
		return nil, apperror.NewBadRequestError("Supplier phone is required")
	}

	supplier := &entity.Supplier{
		Name:  name,
		Email: strings.TrimSpace(input.Email),
		Phone: phone,
	}

	id, err := s.supplierRepo.Create(ctx, supplier)
	if err != nil {
		return nil, err
	}
	supplier.ID = id
	return supplier, nil
}

// GetSupplier retrieves a supplier by ID.
func (s *SupplierService) GetSupplier(ctx context.Context, id string) (*entity.Supplier, error) {
	supplier, err := s.supplierRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, apperror.NewNotFoundError("Supplier")
	}
	return supplier, nil
}

// ListSuppliers lists all suppliers.
func (s *SupplierService) ListSuppliers(ctx context.Context) ([]entity.Supplier, error) {
	return s.supplierRepo.List(ctx)
}

// ListSupplierProducts returns the products sourced from a supplier.
func (s *SupplierService) ListSupplierProducts(ctx context.Context, supplierID string) ([]entity.Product, error) {
	if _, err := s.GetSupplier(ctx, supplierID); err != nil {
		return nil, err
	}
	return s.productRepo.ListBySupplier(ctx, supplierID)
}
