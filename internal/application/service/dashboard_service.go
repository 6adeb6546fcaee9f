package service

import (
	"context"
	"fmt"
	"time"

	"github.com/elesfuerzo/pos-api/internal/domain/entity"
	"github.com/elesfuerzo/pos-api/internal/domain/enum"
	"github.com/elesfuerzo/pos-api/internal/domain/repository"
	"github.com/elesfuerzo/pos-api/pkg/currency"
)

// DashboardService composes the admin overview and the notification feed.
type DashboardService struct {
	catalog  *CatalogService
	saleRepo repository.SaleRepository
}

// NewDashboardService creates a new dashboard service.
func NewDashboardService(catalog *CatalogService, saleRepo repository.SaleRepository) *DashboardService {
	return &DashboardService{catalog: catalog, saleRepo: saleRepo}
}

// Dashboard is the admin overview payload.
type Dashboard struct {
	Inventory    InventoryStats `json:"inventory"`
	SalesToday   int            `json:"sales_today"`
	RevenueToday int64          `json:"revenue_today"`
	SalesTotal   int            `json:"sales_total"`
	RecentSales  []entity.Sale  `json:"recent_sales"`
}

// GetDashboard builds the overview: inventory stats plus sales activity.
func (s *DashboardService) GetDashboard(ctx context.Context) (*Dashboard, error) {
	sales, err := s.saleRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	d := &Dashboard{
		Inventory:  s.catalog.Stats(),
		SalesTotal: len(sales),
	}

	today := time.Now().Truncate(24 * time.Hour)
	for _, sale := range sales {
		if !sale.CreatedAt.Before(today) {
			d.SalesToday++
			d.RevenueToday += sale.Total
		}
	}

	if len(sales) > 5 {
		sales = sales[:5]
	}
	d.RecentSales = sales
	return d, nil
}

// Notification is one entry on the admin notification feed.
type Notification struct {
	Type     string        `json:"type"` // low_stock, missing_supplier, sale
	Message  string        `json:"message"`
	Severity enum.Severity `json:"severity"`
}

// GetNotifications builds the feed: one low-stock entry per product at or
// below its threshold, a missing-supplier entry for low-stock products with
// no supplier on file, and the five most recent sales.
func (s *DashboardService) GetNotifications(ctx context.Context) ([]Notification, error) {
	var feed []Notification

	for _, p := range s.catalog.LowStock() {
		severity := enum.SeverityWarning
		if p.OutOfStock() {
			severity = enum.SeverityError
		}
		feed = append(feed, Notification{
			Type:     "low_stock",
			Message:  fmt.Sprintf("%s has %d units left (minimum %d)", p.Name, p.Quantity, p.MinStock),
			Severity: severity,
		})
		if p.SupplierID == "" {
			feed = append(feed, Notification{
				Type:     "missing_supplier",
				Message:  fmt.Sprintf("%s is low on stock and has no supplier on file", p.Name),
				Severity: enum.SeverityWarning,
			})
		}
	}

	sales, err := s.saleRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(sales) > 5 {
		sales = sales[:5]
	}
	for _, sale := range sales {
		feed = append(feed, Notification{
			Type:     "sale",
			Message:  fmt.Sprintf("Receipt %s: %s paid by %s", sale.ReceiptNumber, currency.CLP(sale.Total), sale.PaymentMethod),
			Severity: enum.SeverityInfo,
		})
	}

	return feed, nil
}
