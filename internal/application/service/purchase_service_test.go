package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elesfuerzo/pos-api/internal/domain/entity"
)

func purchaseFixture() (*PurchaseService, *fakeMailer) {
	suppliers := newFakeSupplierRepo(
		&entity.Supplier{ID: "sup-1", Name: "Distribuidora Sur", Email: "ventas@sur.cl", Phone: "+56 9 1234 5678"},
		&entity.Supplier{ID: "sup-2", Name: "Molinos Norte", Phone: "+56 9 8765 4321"},
	)
	products := newFakeProductRepo(
		&entity.Product{ID: "p1", Barcode: "p1", Name: "Aceite 1L", SupplierID: "sup-1", SupplierName: "Distribuidora Sur", Quantity: 2},
		&entity.Product{ID: "p2", Barcode: "p2", Name: "Harina 1kg", SupplierID: "sup-2", SupplierName: "Molinos Norte", Quantity: 1},
		&entity.Product{ID: "p3", Barcode: "p3", Name: "Velas", Quantity: 0},
	)
	mailer := newFakeMailer()
	return NewPurchaseService(suppliers, products, mailer), mailer
}

func TestPurchaseDraftAccumulates(t *testing.T) {
	svc, _ := purchaseFixture()
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "op-1", &AddItemInput{ProductID: "p1", Quantity: 5})
	require.NoError(t, err)
	po, err := svc.AddItem(ctx, "op-1", &AddItemInput{ProductID: "p1", Quantity: 3})
	require.NoError(t, err)

	require.Len(t, po.Lines, 1)
	assert.Equal(t, 8, po.Lines[0].Quantity)
	assert.Equal(t, "Distribuidora Sur", po.Lines[0].SupplierName)
}

func TestPurchaseDraftIsPerOperator(t *testing.T) {
	svc, _ := purchaseFixture()
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "op-1", &AddItemInput{ProductID: "p1", Quantity: 1})
	require.NoError(t, err)

	assert.True(t, svc.GetDraft("op-2").Empty())
	assert.False(t, svc.GetDraft("op-1").Empty())
}

func TestPurchaseUpdateAndRemove(t *testing.T) {
	svc, _ := purchaseFixture()
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "op-1", &AddItemInput{ProductID: "p1", Quantity: 5})
	require.NoError(t, err)

	po, err := svc.UpdateItemQuantity("op-1", "p1", 2)
	require.NoError(t, err)
	assert.Equal(t, 2, po.Lines[0].Quantity)

	_, err = svc.UpdateItemQuantity("op-1", "missing", 2)
	require.Error(t, err)

	po, err = svc.RemoveItem("op-1", "p1")
	require.NoError(t, err)
	assert.True(t, po.Empty())
}

func TestPurchaseAddValidation(t *testing.T) {
	svc, _ := purchaseFixture()
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "op-1", &AddItemInput{ProductID: "p1", Quantity: 0})
	require.Error(t, err)

	_, err = svc.AddItem(ctx, "op-1", &AddItemInput{ProductID: "missing", Quantity: 1})
	require.Error(t, err)
}

func TestPurchaseMessageGroupsBySupplier(t *testing.T) {
	svc, _ := purchaseFixture()
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "op-1", &AddItemInput{ProductID: "p1", Quantity: 5})
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, "op-1", &AddItemInput{ProductID: "p2", Quantity: 10})
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, "op-1", &AddItemInput{ProductID: "p3", Quantity: 2})
	require.NoError(t, err)

	msg, err := svc.GetMessage(ctx, "op-1")
	require.NoError(t, err)

	assert.Contains(t, msg.Message, "Hola, necesito abastecer los siguientes productos:")
	assert.Contains(t, msg.Message, "Proveedor: Distribuidora Sur\n• Aceite 1L x5")
	assert.Contains(t, msg.Message, "Proveedor: Molinos Norte\n• Harina 1kg x10")
	assert.Contains(t, msg.Message, "Proveedor: Sin proveedor\n• Velas x2")
	assert.Contains(t, msg.Message, "— Almacén El Esfuerzo")

	// The link targets the first drafted supplier with a phone.
	assert.Contains(t, msg.WhatsAppURL, "https://wa.me/56912345678?text=")
}

func TestPurchaseMessageEmptyDraft(t *testing.T) {
	svc, _ := purchaseFixture()

	_, err := svc.GetMessage(context.Background(), "op-1")
	require.Error(t, err)
}

func TestPurchaseSendEmailsAndClears(t *testing.T) {
	svc, mailer := purchaseFixture()
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "op-1", &AddItemInput{ProductID: "p1", Quantity: 5})
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, "op-1", &AddItemInput{ProductID: "p2", Quantity: 10})
	require.NoError(t, err)

	result, err := svc.Send(ctx, "op-1")
	require.NoError(t, err)

	// sup-1 has an email, sup-2 does not.
	assert.Equal(t, []string{"ventas@sur.cl"}, result.SentTo)
	assert.Equal(t, []string{"Molinos Norte"}, result.Skipped)
	assert.Contains(t, mailer.orders["ventas@sur.cl"], "Aceite 1L x5")

	assert.True(t, svc.GetDraft("op-1").Empty())
}

func TestPurchaseSendFailsWithoutDeliverableSupplier(t *testing.T) {
	svc, _ := purchaseFixture()
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "op-1", &AddItemInput{ProductID: "p2", Quantity: 10})
	require.NoError(t, err)

	_, err = svc.Send(ctx, "op-1")
	require.Error(t, err)

	// The draft survives a failed send.
	assert.False(t, svc.GetDraft("op-1").Empty())
}
