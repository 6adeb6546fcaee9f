package service

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/elesfuerzo/pos-api/internal/application/till"
	"github.com/elesfuerzo/pos-api/internal/domain/entity"
	"github.com/elesfuerzo/pos-api/internal/domain/enum"
	"github.com/elesfuerzo/pos-api/internal/domain/repository"
	"github.com/elesfuerzo/pos-api/pkg/apperror"
	"github.com/elesfuerzo/pos-api/pkg/currency"
	"github.com/elesfuerzo/pos-api/pkg/printer"
)

// CheckoutService finalizes a till session's cart into a persisted sale,
// decrements stock and prints the receipt.
type CheckoutService struct {
	saleRepo    repository.SaleRepository
	productRepo repository.ProductRepository
	header      entity.ReceiptHeader
	printer     printer.Printer
}

// NewCheckoutService creates a new checkout service.
func NewCheckoutService(
	saleRepo repository.SaleRepository,
	productRepo repository.ProductRepository,
	header entity.ReceiptHeader,
	p printer.Printer,
) *CheckoutService {
	return &CheckoutService{
		saleRepo:    saleRepo,
		productRepo: productRepo,
		header:      header,
		printer:     p,
	}
}

// CheckoutInput carries the operator-entered checkout fields.
type CheckoutInput struct {
	ReceiptNumber string
}

// Finalize validates the cart, persists the sale, applies the stock
// decrements and resets the session. The returned receipt reflects what was
// sent to the printer.
func (s *CheckoutService) Finalize(ctx context.Context, session *till.Session, input *CheckoutInput) (*entity.Sale, *entity.Receipt, error) {
	lines, totals := session.Checkout()

	if len(lines) == 0 {
		return nil, nil, apperror.ErrEmptyCart
	}
	if totals.Method == enum.PaymentMethodCash && totals.Tendered < totals.Total {
		return nil, nil, apperror.ErrInsufficientPayment
	}
	receiptNumber := strings.TrimSpace(input.ReceiptNumber)
	if receiptNumber == "" {
		return nil, nil, apperror.ErrInvalidReceiptNumber
	}

	items := make([]entity.SaleItem, len(lines))
	for i, line := range lines {
		items[i] = entity.SaleItem{
			ProductID: line.ProductID,
			Name:      line.Name,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
		}
	}

	sale := &entity.Sale{
		ReceiptNumber:  receiptNumber,
		PaymentMethod:  totals.Method,
		Subtotal:       totals.Subtotal,
		Tax:            totals.Tax,
		Total:          totals.Total,
		AmountTendered: totals.Tendered,
		ChangeDue:      totals.Change,
		Items:          items,
	}

	saleID, err := s.saleRepo.Create(ctx, sale)
	if err != nil {
		return nil, nil, err
	}
	sale.ID = saleID

	// The sale record is authoritative once written. Stock decrements follow
	// per line; any failure here is reported for manual correction rather
	// than rolled back.
	var failed []string
	for _, item := range items {
		if err := s.productRepo.RegisterSale(ctx, item.ProductID, item.Quantity); err != nil {
			log.Printf("checkout: sale %s: stock decrement failed for product %s: %v", saleID, item.ProductID, err)
			failed = append(failed, item.ProductID)
		}
	}
	if len(failed) > 0 {
		log.Printf("checkout: sale %s persisted with unapplied stock decrements: %s", saleID, strings.Join(failed, ", "))
		return nil, nil, apperror.ErrSaleRegistration
	}

	session.Reset()

	receipt := s.buildReceipt(sale)
	if err := s.printReceipt(receipt); err != nil {
		// Printing is best effort; the sale already stands.
		log.Printf("checkout: sale %s: receipt print failed: %v", saleID, err)
	}

	return sale, receipt, nil
}

func (s *CheckoutService) buildReceipt(sale *entity.Sale) *entity.Receipt {
	items := make([]entity.ReceiptItem, len(sale.Items))
	for i, item := range sale.Items {
		items[i] = entity.ReceiptItem{
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Total:     item.Total(),
		}
	}

	return &entity.Receipt{
		Header:        s.header,
		ReceiptNumber: sale.ReceiptNumber,
		Date:          time.Now().Format("02/01/2006 15:04"),
		PaymentMethod: sale.PaymentMethod.String(),
		Items:         items,
		Subtotal:      sale.Subtotal,
		Tax:           sale.Tax,
		Total:         sale.Total,
		Tendered:      sale.AmountTendered,
		Change:        sale.ChangeDue,
	}
}

func (s *CheckoutService) printReceipt(r *entity.Receipt) error {
	doc := printer.NewDocument(32)

	doc.SetAlign(printer.AlignCenter).
		SetFontSize(printer.FontDouble).
		Text(r.Header.StoreName).
		SetFontSize(printer.FontNormal)
	if r.Header.Address != "" {
		doc.Text(r.Header.Address)
	}
	if r.Header.Phone != "" {
		doc.Text(r.Header.Phone)
	}
	doc.FeedLines(1).
		SetAlign(printer.AlignLeft).
		KeyValue("Boleta", r.ReceiptNumber).
		KeyValue("Fecha", r.Date).
		KeyValue("Pago", r.PaymentMethod).
		Separator('-')

	for _, item := range r.Items {
		doc.ItemLine(item.Quantity, item.Name, currency.CLP(item.Total))
	}

	doc.Separator('-').
		KeyValue("Subtotal", currency.CLP(r.Subtotal)).
		KeyValue("IVA 19%", currency.CLP(r.Tax)).
		SetBold(true).
		KeyValue("TOTAL", currency.CLP(r.Total)).
		SetBold(false)

	if r.Tendered > 0 {
		doc.KeyValue("Efectivo", currency.CLP(r.Tendered)).
			KeyValue("Vuelto", currency.CLP(r.Change))
	}

	doc.FeedLines(1).
		SetAlign(printer.AlignCenter).
		Text("¡Gracias por su compra!").
		FeedLines(3).
		Cut()

	return s.printer.Print(doc.Bytes())
}
