package service

import (
	"context"
	"log"
	"sync"

	"github.com/elesfuerzo/pos-api/internal/domain/entity"
	"github.com/elesfuerzo/pos-api/internal/domain/repository"
	"github.com/elesfuerzo/pos-api/pkg/apperror"
	"github.com/elesfuerzo/pos-api/pkg/email"
)

// OrderSender delivers a purchase order message to a supplier email address.
type OrderSender interface {
	SendPurchaseOrderEmail(toEmail, body string) error
}

// PurchaseService manages per-operator restock order drafts. Drafts are held
// in memory only; sending or clearing discards them.
type PurchaseService struct {
	supplierRepo repository.SupplierRepository
	productRepo  repository.ProductRepository
	sender       OrderSender

	mu     sync.Mutex
	drafts map[string]*entity.PurchaseOrder // keyed by operator UID
}

// NewPurchaseService creates a new purchase order service.
func NewPurchaseService(
	supplierRepo repository.SupplierRepository,
	productRepo repository.ProductRepository,
	sender OrderSender,
) *PurchaseService {
	return &PurchaseService{
		supplierRepo: supplierRepo,
		productRepo:  productRepo,
		sender:       sender,
		drafts:       make(map[string]*entity.PurchaseOrder),
	}
}

var _ OrderSender = (*email.EmailService)(nil)

func (s *PurchaseService) draft(uid string) *entity.PurchaseOrder {
	po, ok := s.drafts[uid]
	if !ok {
		po = &entity.PurchaseOrder{}
		s.drafts[uid] = po
	}
	return po
}

// GetDraft returns the operator's current draft, creating an empty one.
func (s *PurchaseService) GetDraft(uid string) *entity.PurchaseOrder {
	s.mu.Lock()
	defer s.mu.Unlock()

	po := s.draft(uid)
	out := &entity.PurchaseOrder{Lines: make([]entity.PurchaseOrderLine, len(po.Lines))}
	copy(out.Lines, po.Lines)
	return out
}

// AddItemInput represents an add-to-draft request.
type AddItemInput struct {
	ProductID string
	Quantity  int
}

// AddItem adds a product to the operator's draft. Adding an already drafted
// product accumulates its quantity. The supplier is resolved from the product
// record at add time.
func (s *PurchaseService) AddItem(ctx context.Context, uid string, input *AddItemInput) (*entity.PurchaseOrder, error) {
	if input.Quantity <= 0 {
		return nil, apperror.NewBadRequestError("Quantity must be positive")
	}

	product, err := s.productRepo.GetByID(ctx, input.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	po := s.draft(uid)
	for i := range po.Lines {
		if po.Lines[i].ProductID == product.ID {
			po.Lines[i].Quantity += input.Quantity
			return s.copyLocked(po), nil
		}
	}

	po.Lines = append(po.Lines, entity.PurchaseOrderLine{
		SupplierID:   product.SupplierID,
		SupplierName: product.SupplierName,
		ProductID:    product.ID,
		ProductName:  product.Name,
		Quantity:     input.Quantity,
	})
	return s.copyLocked(po), nil
}

// UpdateItemQuantity replaces the quantity of a drafted product.
func (s *PurchaseService) UpdateItemQuantity(uid, productID string, quantity int) (*entity.PurchaseOrder, error) {
	if quantity <= 0 {
		return nil, apperror.NewBadRequestError("Quantity must be positive")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	po := s.draft(uid)
	for i := range po.Lines {
		if po.Lines[i].ProductID == productID {
			po.Lines[i].Quantity = quantity
			return s.copyLocked(po), nil
		}
	}
	return nil, apperror.NewNotFoundError("Draft item")
}

// RemoveItem drops a product from the draft.
func (s *PurchaseService) RemoveItem(uid, productID string) (*entity.PurchaseOrder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	po := s.draft(uid)
	for i := range po.Lines {
		if po.Lines[i].ProductID == productID {
			po.Lines = append(po.Lines[:i], po.Lines[i+1:]...)
			return s.copyLocked(po), nil
		}
	}
	return nil, apperror.NewNotFoundError("Draft item")
}

// ClearDraft discards the operator's draft.
func (s *PurchaseService) ClearDraft(uid string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.drafts, uid)
}

// OrderMessage holds the formatted order with its delivery shortcuts.
type OrderMessage struct {
	Message     string `json:"message"`
	WhatsAppURL string `json:"whatsapp_url"`
}

// GetMessage formats the draft for delivery. The WhatsApp link targets the
// first drafted supplier that has a phone on file.
func (s *PurchaseService) GetMessage(ctx context.Context, uid string) (*OrderMessage, error) {
	po := s.GetDraft(uid)
	if po.Empty() {
		return nil, apperror.NewBadRequestError("Purchase order draft is empty")
	}

	phone := ""
	for _, line := range po.Lines {
		if line.SupplierID == "" {
			continue
		}
		supplier, err := s.supplierRepo.GetByID(ctx, line.SupplierID)
		if err != nil {
			return nil, err
		}
		if supplier != nil && supplier.Phone != "" {
			phone = supplier.Phone
			break
		}
	}

	return &OrderMessage{
		Message:     po.Message(),
		WhatsAppURL: po.WhatsAppURL(phone),
	}, nil
}

// SendResult reports the outcome of emailing the order to its suppliers.
type SendResult struct {
	SentTo  []string `json:"sent_to"`
	Skipped []string `json:"skipped,omitempty"`
}

// Send emails the order message to every supplier on the draft that has an
// email on file, then clears the draft. Suppliers without an email are
// reported as skipped; at least one delivery is required.
func (s *PurchaseService) Send(ctx context.Context, uid string) (*SendResult, error) {
	po := s.GetDraft(uid)
	if po.Empty() {
		return nil, apperror.NewBadRequestError("Purchase order draft is empty")
	}

	body := po.Message()
	result := &SendResult{}
	seen := make(map[string]bool)

	for _, line := range po.Lines {
		name := line.SupplierName
		if name == "" {
			name = "Sin proveedor"
		}
		if line.SupplierID == "" {
			if !seen[name] {
				seen[name] = true
				result.Skipped = append(result.Skipped, name)
			}
			continue
		}
		if seen[line.SupplierID] {
			continue
		}
		seen[line.SupplierID] = true

		supplier, err := s.supplierRepo.GetByID(ctx, line.SupplierID)
		if err != nil {
			return nil, err
		}
		if supplier == nil || supplier.Email == "" {
			result.Skipped = append(result.Skipped, name)
			continue
		}

		if err := s.sender.SendPurchaseOrderEmail(supplier.Email, body); err != nil {
			log.Printf("purchase: order email to %s failed: %v", supplier.Email, err)
			result.Skipped = append(result.Skipped, name)
			continue
		}
		result.SentTo = append(result.SentTo, supplier.Email)
	}

	if len(result.SentTo) == 0 {
		return nil, apperror.NewBadRequestError("No supplier on the draft has an email on file")
	}

	s.ClearDraft(uid)
	return result, nil
}

func (s *PurchaseService) copyLocked(po *entity.PurchaseOrder) *entity.PurchaseOrder {
	out := &entity.PurchaseOrder{Lines: make([]entity.PurchaseOrderLine, len(po.Lines))}
	copy(out.Lines, po.Lines)
	return out
}
