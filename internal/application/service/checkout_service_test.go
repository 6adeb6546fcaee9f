package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elesfuerzo/pos-api/internal/application/till"
	"github.com/elesfuerzo/pos-api/internal/domain/entity"
	"github.com/elesfuerzo/pos-api/internal/domain/enum"
	"github.com/elesfuerzo/pos-api/pkg/apperror"
)

func checkoutFixture(t *testing.T) (*CheckoutService, *till.Session, *fakeProductRepo, *fakeSaleRepo, *fakePrinter) {
	t.Helper()

	repo := newFakeProductRepo(
		&entity.Product{ID: "p1", Barcode: "p1", Name: "Harina 1kg", Price: 1190, Quantity: 10, MinStock: 5},
		&entity.Product{ID: "p2", Barcode: "p2", Name: "Aceite 1L", Price: 2490, Quantity: 6, MinStock: 5},
	)
	catalog := NewCatalogService(repo)
	snapshot, _ := repo.List(context.Background())
	catalog.swap(snapshot)

	saleRepo := &fakeSaleRepo{}
	prn := &fakePrinter{}
	svc := NewCheckoutService(saleRepo, repo, entity.ReceiptHeader{StoreName: "El Esfuerzo"}, prn)

	session := till.NewSession("op-1", catalog)
	return svc, session, repo, saleRepo, prn
}

func TestFinalizeRejectsEmptyCart(t *testing.T) {
	svc, session, _, saleRepo, _ := checkoutFixture(t)

	_, _, err := svc.Finalize(context.Background(), session, &CheckoutInput{ReceiptNumber: "B-100"})
	assert.ErrorIs(t, err, apperror.ErrEmptyCart)
	assert.Empty(t, saleRepo.sales)
}

func TestFinalizeRejectsInsufficientCash(t *testing.T) {
	svc, session, _, _, _ := checkoutFixture(t)

	require.NoError(t, session.AddItem("p1", 2))
	require.NoError(t, session.SetPayment(enum.PaymentMethodCash, 1000))

	_, _, err := svc.Finalize(context.Background(), session, &CheckoutInput{ReceiptNumber: "B-100"})
	assert.ErrorIs(t, err, apperror.ErrInsufficientPayment)
}

func TestFinalizeRejectsMissingReceiptNumber(t *testing.T) {
	svc, session, _, _, _ := checkoutFixture(t)

	require.NoError(t, session.AddItem("p1", 1))
	require.NoError(t, session.SetPayment(enum.PaymentMethodCash, 5000))

	_, _, err := svc.Finalize(context.Background(), session, &CheckoutInput{ReceiptNumber: "   "})
	assert.ErrorIs(t, err, apperror.ErrInvalidReceiptNumber)
}

func TestFinalizePrecedenceEmptyCartBeforePayment(t *testing.T) {
	svc, session, _, _, _ := checkoutFixture(t)

	// Empty cart and insufficient cash at once: the cart check wins.
	require.NoError(t, session.SetPayment(enum.PaymentMethodCash, 0))

	_, _, err := svc.Finalize(context.Background(), session, &CheckoutInput{ReceiptNumber: ""})
	assert.ErrorIs(t, err, apperror.ErrEmptyCart)
}

func TestFinalizeCashSale(t *testing.T) {
	svc, session, repo, saleRepo, prn := checkoutFixture(t)

	require.NoError(t, session.AddItem("p1", 2))
	require.NoError(t, session.AddItem("p2", 1))
	require.NoError(t, session.SetPayment(enum.PaymentMethodCash, 10000))

	sale, receipt, err := svc.Finalize(context.Background(), session, &CheckoutInput{ReceiptNumber: "B-100"})
	require.NoError(t, err)

	// 2*1190 + 2490 = 4870; IVA 925; total 5795; change 4205.
	assert.Equal(t, "B-100", sale.ReceiptNumber)
	assert.Equal(t, int64(4870), sale.Subtotal)
	assert.Equal(t, int64(925), sale.Tax)
	assert.Equal(t, int64(5795), sale.Total)
	assert.Equal(t, int64(10000), sale.AmountTendered)
	assert.Equal(t, int64(4205), sale.ChangeDue)
	require.Len(t, sale.Items, 2)

	stored, err := saleRepo.GetByID(context.Background(), sale.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)

	p1, _ := repo.GetByID(context.Background(), "p1")
	assert.Equal(t, 8, p1.Quantity)
	assert.Equal(t, 2, p1.SalesCount)

	assert.Empty(t, session.Projection().Lines)
	require.NotNil(t, receipt)
	assert.Equal(t, "El Esfuerzo", receipt.Header.StoreName)
	assert.Len(t, prn.jobs, 1)
}

func TestFinalizeCardSaleIgnoresTendered(t *testing.T) {
	svc, session, _, _, _ := checkoutFixture(t)

	require.NoError(t, session.AddItem("p1", 1))
	require.NoError(t, session.SetPayment(enum.PaymentMethodCard, 0))

	sale, _, err := svc.Finalize(context.Background(), session, &CheckoutInput{ReceiptNumber: "B-101"})
	require.NoError(t, err)
	assert.Equal(t, sale.Total, sale.AmountTendered)
	assert.Equal(t, int64(0), sale.ChangeDue)
}

func TestFinalizeKeepsCartOnPersistFailure(t *testing.T) {
	svc, session, _, saleRepo, _ := checkoutFixture(t)
	saleRepo.createErr = errors.New("store unavailable")

	require.NoError(t, session.AddItem("p1", 3))
	require.NoError(t, session.SetPayment(enum.PaymentMethodCard, 0))

	_, _, err := svc.Finalize(context.Background(), session, &CheckoutInput{ReceiptNumber: "B-102"})
	require.Error(t, err)
	assert.Len(t, session.Projection().Lines, 1)
}

func TestFinalizeReportsPartialCommit(t *testing.T) {
	svc, session, repo, saleRepo, _ := checkoutFixture(t)
	repo.saleErr["p2"] = errors.New("store unavailable")

	require.NoError(t, session.AddItem("p1", 1))
	require.NoError(t, session.AddItem("p2", 1))
	require.NoError(t, session.SetPayment(enum.PaymentMethodCard, 0))

	_, _, err := svc.Finalize(context.Background(), session, &CheckoutInput{ReceiptNumber: "B-103"})
	assert.ErrorIs(t, err, apperror.ErrSaleRegistration)

	// The sale record stands even though a decrement failed.
	assert.Len(t, saleRepo.sales, 1)
	// The applied decrement is not rolled back.
	p1, _ := repo.GetByID(context.Background(), "p1")
	assert.Equal(t, 9, p1.Quantity)
	// The cart is preserved for retry or manual correction.
	assert.Len(t, session.Projection().Lines, 2)
}

func TestFinalizeSurvivesPrinterFailure(t *testing.T) {
	svc, session, _, _, prn := checkoutFixture(t)
	prn.err = errors.New("printer offline")

	require.NoError(t, session.AddItem("p1", 1))
	require.NoError(t, session.SetPayment(enum.PaymentMethodCard, 0))

	sale, receipt, err := svc.Finalize(context.Background(), session, &CheckoutInput{ReceiptNumber: "B-104"})
	require.NoError(t, err)
	assert.NotNil(t, sale)
	assert.NotNil(t, receipt)
}
