package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elesfuerzo/pos-api/internal/domain/entity"
)

func TestCatalogFilter(t *testing.T) {
	catalog := seededCatalog(
		&entity.Product{ID: "1", Barcode: "1", Name: "Aceite 1L", Category: "Abarrotes", SupplierName: "Distribuidora Sur", Quantity: 6, MinStock: 5},
		&entity.Product{ID: "2", Barcode: "2", Name: "Harina 1kg", Category: "Abarrotes", SupplierName: "Molinos Norte", Quantity: 2, MinStock: 5},
		&entity.Product{ID: "3", Barcode: "3", Name: "Detergente", Category: "Aseo", SupplierName: "Distribuidora Sur", Quantity: 9, MinStock: 5},
	)

	all := catalog.Filter(ProductFilter{})
	assert.Len(t, all, 3)

	byCategory := catalog.Filter(ProductFilter{Category: "Aseo"})
	require.Len(t, byCategory, 1)
	assert.Equal(t, "Detergente", byCategory[0].Name)

	bySupplier := catalog.Filter(ProductFilter{Supplier: "sur"})
	assert.Len(t, bySupplier, 2)

	bySearch := catalog.Filter(ProductFilter{Search: "harina"})
	require.Len(t, bySearch, 1)
	assert.Equal(t, "2", bySearch[0].ID)

	byQuantity := catalog.Filter(ProductFilter{SortBy: "quantity"})
	require.Len(t, byQuantity, 3)
	assert.Equal(t, "Harina 1kg", byQuantity[0].Name)
	assert.Equal(t, "Detergente", byQuantity[2].Name)
}

func TestCatalogLowStock(t *testing.T) {
	catalog := seededCatalog(
		&entity.Product{ID: "1", Barcode: "1", Name: "Aceite", Quantity: 6, MinStock: 5},
		&entity.Product{ID: "2", Barcode: "2", Name: "Harina", Quantity: 2, MinStock: 5},
		&entity.Product{ID: "3", Barcode: "3", Name: "Arroz", Quantity: 0, MinStock: 5},
	)

	low := catalog.LowStock()
	require.Len(t, low, 2)
	assert.Equal(t, "Arroz", low[0].Name)
	assert.Equal(t, "Harina", low[1].Name)
}

func TestCatalogStats(t *testing.T) {
	catalog := seededCatalog(
		&entity.Product{ID: "1", Barcode: "1", Name: "Aceite", Price: 2490, Quantity: 6, MinStock: 5, SalesCount: 12},
		&entity.Product{ID: "2", Barcode: "2", Name: "Harina", Price: 1190, Quantity: 2, MinStock: 5, SalesCount: 30},
		&entity.Product{ID: "3", Barcode: "3", Name: "Arroz", Price: 1590, Quantity: 15, MinStock: 5, SalesCount: 7},
	)

	stats := catalog.Stats()
	assert.Equal(t, 3, stats.TotalProducts)
	assert.Equal(t, 23, stats.TotalUnits)
	assert.Equal(t, 1, stats.LowStockCount)
	assert.Equal(t, 2, stats.LowStockUnits)
	assert.Equal(t, int64(6*2490+2*1190+15*1590), stats.InventoryValue)
	require.NotNil(t, stats.TopSeller)
	assert.Equal(t, "Harina", stats.TopSeller.Name)
}

func TestCatalogStatsEmpty(t *testing.T) {
	catalog := seededCatalog()

	stats := catalog.Stats()
	assert.Equal(t, 0, stats.TotalProducts)
	assert.Nil(t, stats.TopSeller)
}

func TestCatalogProductLookupCopies(t *testing.T) {
	catalog := seededCatalog(
		&entity.Product{ID: "1", Barcode: "1", Name: "Aceite", Quantity: 6, MinStock: 5},
	)

	p, ok := catalog.Product("1")
	require.True(t, ok)
	p.Quantity = 0

	again, ok := catalog.Product("1")
	require.True(t, ok)
	assert.Equal(t, 6, again.Quantity)

	_, ok = catalog.Product("missing")
	assert.False(t, ok)
}

func TestCatalogSubscribeReceivesSnapshots(t *testing.T) {
	repo := newFakeProductRepo()
	catalog := NewCatalogService(repo)

	var got [][]entity.Product
	catalog.Subscribe(func(products []entity.Product) {
		got = append(got, products)
	})

	catalog.swap([]entity.Product{{ID: "1", Barcode: "1", Name: "Aceite", Quantity: 6}})
	require.Len(t, got, 1)
	assert.Equal(t, "Aceite", got[0][0].Name)
}

func TestCatalogSwapAppliesDefaults(t *testing.T) {
	catalog := seededCatalog(
		&entity.Product{ID: "1", Barcode: "1", Name: "Aceite", Quantity: 6},
	)

	p, ok := catalog.Product("1")
	require.True(t, ok)
	assert.Equal(t, entity.DefaultMinStock, p.MinStock)
}
