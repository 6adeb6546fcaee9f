package service

import (
	"context"
	"strings"

	"github.com/elesfuerzo/pos-api/internal/domain/entity"
	"github.com/elesfuerzo/pos-api/internal/domain/repository"
	"github.com/elesfuerzo/pos-api/pkg/apperror"
)

// ProductService handles inventory management operations.
type ProductService struct {
	productRepo  repository.ProductRepository
	supplierRepo repository.SupplierRepository
	catalog      *CatalogService
}

// NewProductService creates a new product service.
func NewProductService(
	productRepo repository.ProductRepository,
	supplierRepo repository.SupplierRepository,
	catalog *CatalogService,
) *ProductService {
	return &ProductService{
		productRepo:  productRepo,
		supplierRepo: supplierRepo,
		catalog:      catalog,
	}
}

// CreateProductInput represents the create product input.
type CreateProductInput struct {
	Barcode    string
	Name       string
	Price      int64
	Quantity   int
	MinStock   int
	Category   string
	SupplierID string
}

// CreateProduct registers a new product under its barcode.
func (s *ProductService) CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error) {
	barcode := strings.TrimSpace(input.Barcode)
	if barcode == "" {
		return nil, apperror.NewBadRequestError("Barcode is required")
	}
	if strings.TrimSpace(input.Name) == "" {
		return nil, apperror.NewBadRequestError("Name is required")
	}
	if input.Price <= 0 {
		return nil, apperror.NewBadRequestError("Price must be greater than zero")
	}
	if input.Quantity < 0 {
		return nil, apperror.NewBadRequestError("Quantity cannot be negative")
	}

	product := &entity.Product{
		ID:       barcode,
		Barcode:  barcode,
		Name:     strings.TrimSpace(input.Name),
		Price:    input.Price,
		Quantity: input.Quantity,
		MinStock: input.MinStock,
		Category: strings.TrimSpace(input.Category),
	}
	product.ApplyDefaults()

	if input.SupplierID != "" {
		supplier, err := s.supplierRepo.GetByID(ctx, input.SupplierID)
		if err != nil {
			return nil, err
		}
		if supplier == nil {
			return nil, apperror.NewNotFoundError("Supplier")
		}
		product.SupplierID = supplier.ID
		product.SupplierName = supplier.Name
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	return s.GetProduct(ctx, product.ID)
}

// GetProduct retrieves a product by its barcode ID.
func (s *ProductService) GetProduct(ctx context.Context, id string) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	product.ApplyDefaults()
	return product, nil
}

// ListProducts lists inventory filtered and ordered per the request. Reads
// are served from the catalog cache.
func (s *ProductService) ListProducts(ctx context.Context, filter ProductFilter) ([]entity.Product, error) {
	return s.catalog.Filter(filter), nil
}

// Stats summarizes the inventory.
func (s *ProductService) Stats(ctx context.Context) InventoryStats {
	return s.catalog.Stats()
}

// AdjustStock applies a signed stock delta to a product. Used by the quick
// plus/minus controls on the inventory screen.
func (s *ProductService) AdjustStock(ctx context.Context, id string, delta int) (*entity.Product, error) {
	product, err := s.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	if product.Quantity+delta < 0 {
		return nil, apperror.NewBadRequestError("Stock cannot go below zero")
	}

	if err := s.productRepo.AdjustQuantity(ctx, id, delta); err != nil {
		return nil, err
	}
	return s.GetProduct(ctx, id)
}

// GetLowStockProducts returns products at or below their minimum stock.
func (s *ProductService) GetLowStockProducts(ctx context.Context) ([]entity.Product, error) {
	return s.catalog.LowStock(), nil
}
