package service

import (
	"context"
	"log"
	"sort"
	"strings"
	"sync"

	"github.com/elesfuerzo/pos-api/internal/domain/entity"
	"github.com/elesfuerzo/pos-api/internal/domain/repository"
)

// CatalogService holds an in-memory snapshot of the product catalog, kept
// fresh by the repository's change stream. Till sessions read stock from this
// snapshot instead of hitting the store on every scan.
type CatalogService struct {
	productRepo repository.ProductRepository

	mu       sync.RWMutex
	products []entity.Product
	byID     map[string]*entity.Product

	subMu       sync.Mutex
	subscribers []func([]entity.Product)
}

// NewCatalogService creates a catalog service with an empty snapshot.
func NewCatalogService(productRepo repository.ProductRepository) *CatalogService {
	return &CatalogService{
		productRepo: productRepo,
		byID:        make(map[string]*entity.Product),
	}
}

// Start loads the initial snapshot and then consumes the change stream until
// ctx is done. Subscribers are notified after every snapshot swap.
func (s *CatalogService) Start(ctx context.Context) error {
	initial, err := s.productRepo.List(ctx)
	if err != nil {
		return err
	}
	s.swap(initial)

	updates, err := s.productRepo.Watch(ctx)
	if err != nil {
		return err
	}

	go func() {
		for snapshot := range updates {
			s.swap(snapshot)
		}
		log.Println("catalog: change stream closed")
	}()

	return nil
}

func (s *CatalogService) swap(products []entity.Product) {
	byID := make(map[string]*entity.Product, len(products))
	for i := range products {
		products[i].ApplyDefaults()
		byID[products[i].ID] = &products[i]
	}

	s.mu.Lock()
	s.products = products
	s.byID = byID
	s.mu.Unlock()

	s.subMu.Lock()
	subs := make([]func([]entity.Product), len(s.subscribers))
	copy(subs, s.subscribers)
	s.subMu.Unlock()

	for _, notify := range subs {
		notify(products)
	}
}

// Subscribe registers a callback invoked with every new catalog snapshot.
// Used by the till manager to reconcile open carts against live stock.
func (s *CatalogService) Subscribe(fn func([]entity.Product)) {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

// Product returns the cached product for an ID. Part of the lookup contract
// the till package depends on.
func (s *CatalogService) Product(id string) (*entity.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.byID[id]
	if !ok {
		return nil, false
	}
	out := *p
	return &out, true
}

// Products returns the cached catalog filtered by a case-insensitive search
// over name and barcode. An empty term returns everything.
func (s *CatalogService) Products(search string) []entity.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entity.Product, 0, len(s.products))
	for _, p := range s.products {
		if p.MatchesSearch(search) {
			out = append(out, p)
		}
	}
	return out
}

// ProductFilter narrows and orders an inventory listing.
type ProductFilter struct {
	Search   string // substring over name and barcode
	Category string // exact category match
	Supplier string // substring over the supplier name
	SortBy   string // "name" (default) or "quantity"
}

// Filter returns the cached catalog narrowed by the filter, ordered by name
// or by quantity ascending.
func (s *CatalogService) Filter(f ProductFilter) []entity.Product {
	s.mu.RLock()
	out := make([]entity.Product, 0, len(s.products))
	for _, p := range s.products {
		if !p.MatchesSearch(f.Search) {
			continue
		}
		if f.Category != "" && p.Category != f.Category {
			continue
		}
		if f.Supplier != "" && !strings.Contains(strings.ToLower(p.SupplierName), strings.ToLower(f.Supplier)) {
			continue
		}
		out = append(out, p)
	}
	s.mu.RUnlock()

	if f.SortBy == "quantity" {
		sort.SliceStable(out, func(i, j int) bool { return out[i].Quantity < out[j].Quantity })
	}
	// Snapshots arrive ordered by name already.
	return out
}

// InventoryStats summarizes the cached catalog.
type InventoryStats struct {
	TotalProducts  int             `json:"total_products"`
	TotalUnits     int             `json:"total_units"`
	LowStockCount  int             `json:"low_stock_count"`
	LowStockUnits  int             `json:"low_stock_units"`
	InventoryValue int64           `json:"inventory_value"`
	TopSeller      *entity.Product `json:"top_seller,omitempty"`
}

// Stats computes inventory totals over the cached catalog. The top seller is
// the product with the highest running sales counter.
func (s *CatalogService) Stats() InventoryStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var stats InventoryStats
	stats.TotalProducts = len(s.products)

	var top *entity.Product
	for i := range s.products {
		p := &s.products[i]
		stats.TotalUnits += p.Quantity
		stats.InventoryValue += p.InventoryValue()
		if p.LowStock() {
			stats.LowStockCount++
			stats.LowStockUnits += p.Quantity
		}
		if p.SalesCount > 0 && (top == nil || p.SalesCount > top.SalesCount) {
			top = p
		}
	}
	if top != nil {
		t := *top
		stats.TopSeller = &t
	}
	return stats
}

// LowStock returns the products at or below their minimum stock threshold,
// lowest stock first.
func (s *CatalogService) LowStock() []entity.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []entity.Product
	for _, p := range s.products {
		if p.LowStock() {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Quantity < out[j].Quantity })
	return out
}

// Snapshot returns a copy of the full cached catalog.
func (s *CatalogService) Snapshot() []entity.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entity.Product, len(s.products))
	copy(out, s.products)
	return out
}
