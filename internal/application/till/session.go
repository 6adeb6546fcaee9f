package till

import (
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/elesfuerzo/pos-api/internal/domain/entity"
	"github.com/elesfuerzo/pos-api/internal/domain/enum"
	"github.com/elesfuerzo/pos-api/pkg/apperror"
)

// TaxRate is the fixed IVA rate applied to every sale.
const TaxRate = 0.19

// State identifies the checkout interaction state.
type State string

const (
	StateIdle            State = "idle"
	StateLineSelected    State = "line_selected"
	StateQuantityEditing State = "quantity_editing"
)

// ProductLookup provides the current catalog snapshot for stock checks.
// Implemented by the catalog cache.
type ProductLookup interface {
	Product(id string) (*entity.Product, bool)
}

// Line is a product entry in the cart. The unit price is snapshotted when the
// line is created; quantity never exceeds the product's live stock.
type Line struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	UnitPrice int64  `json:"unit_price"`
	Quantity  int    `json:"quantity"`
}

// Total returns the line total.
func (l Line) Total() int64 {
	return l.UnitPrice * int64(l.Quantity)
}

// Totals are the computed amounts for the cart under the active payment
// method. Card payments force the tendered amount to the total.
type Totals struct {
	Subtotal int64              `json:"subtotal"`
	Tax      int64              `json:"tax"`
	Total    int64              `json:"total"`
	Method   enum.PaymentMethod `json:"payment_method"`
	Tendered int64              `json:"tendered"`
	Change   int64              `json:"change"`
}

// Session is one operator's active checkout context, holding exactly one
// cart. All mutations are synchronous; the mutex only guards against catalog
// reconciliation arriving while a user action runs.
type Session struct {
	id      uuid.UUID
	uid     string
	catalog ProductLookup

	mu       sync.Mutex
	lines    []Line
	selected string // product ID of the selected line, "" when idle
	editMode bool
	buffer   string // pending digits while editing a quantity
	method   enum.PaymentMethod
	tendered int64
	notice   *Notice

	now func() time.Time
}

// NewSession creates an empty session for an operator.
func NewSession(operatorUID string, catalog ProductLookup) *Session {
	return &Session{
		id:      uuid.New(),
		uid:     operatorUID,
		catalog: catalog,
		method:  enum.PaymentMethodCash,
		now:     time.Now,
	}
}

// ID returns the session identifier.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// OperatorUID returns the UID of the operator who opened the session.
func (s *Session) OperatorUID() string {
	return s.uid
}

func (s *Session) state() State {
	switch {
	case s.selected == "":
		return StateIdle
	case s.editMode:
		return StateQuantityEditing
	default:
		return StateLineSelected
	}
}

func (s *Session) setNotice(msg string, severity enum.Severity) {
	s.notice = &Notice{
		Message:   msg,
		Severity:  severity,
		ExpiresAt: s.now().Add(NoticeDisplayDuration),
	}
}

func (s *Session) lineIndex(productID string) int {
	for i := range s.lines {
		if s.lines[i].ProductID == productID {
			return i
		}
	}
	return -1
}

// AddItem adds qty units of a product to the cart, clamped so the line never
// exceeds the product's live stock. When quantity-edit mode is active for the
// same product, the buffered digits replace the line quantity instead.
func (s *Session) AddItem(productID string, qty int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	product, ok := s.catalog.Product(productID)
	if !ok {
		return apperror.NewNotFoundError("Product")
	}

	if s.editMode && s.selected == productID {
		s.replaceQuantityFromBuffer(product)
		return nil
	}

	available := product.Quantity
	idx := s.lineIndex(productID)
	inCart := 0
	if idx >= 0 {
		inCart = s.lines[idx].Quantity
	}

	maxAddable := available - inCart
	if maxAddable <= 0 {
		s.setNotice("No more stock available for this product.", enum.SeverityWarning)
		return nil
	}
	if qty > maxAddable {
		s.setNotice(fmt.Sprintf("Only %d available units were added.", maxAddable), enum.SeverityWarning)
		qty = maxAddable
	}

	if idx >= 0 {
		s.lines[idx].Quantity += qty
	} else {
		s.lines = append(s.lines, Line{
			ProductID: productID,
			Name:      product.Name,
			UnitPrice: product.Price,
			Quantity:  qty,
		})
	}
	return nil
}

// replaceQuantityFromBuffer applies the buffered digits as the absolute line
// quantity. On success or rejection the session leaves quantity-edit mode.
func (s *Session) replaceQuantityFromBuffer(product *entity.Product) {
	defer func() {
		s.editMode = false
		s.buffer = ""
	}()

	n, err := strconv.Atoi(s.buffer)
	if err != nil || n <= 0 {
		s.setNotice("Invalid quantity.", enum.SeverityError)
		return
	}

	idx := s.lineIndex(product.ID)
	if idx < 0 {
		return
	}

	if n > product.Quantity {
		s.setNotice(fmt.Sprintf("Quantity adjusted to available stock (%d).", product.Quantity), enum.SeverityWarning)
		s.lines[idx].Quantity = product.Quantity
		return
	}
	s.lines[idx].Quantity = n
}

// SelectLine selects a cart line. Selecting always exits quantity-edit mode;
// edit mode must be re-entered explicitly.
func (s *Session) SelectLine(productID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.lineIndex(productID) < 0 {
		return apperror.NewNotFoundError("Cart line")
	}

	s.selected = productID
	s.editMode = false
	s.buffer = ""
	return nil
}

// EnterQuantityEdit switches the selected line into quantity-edit mode.
func (s *Session) EnterQuantityEdit() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.selected == "" {
		s.setNotice("Select a product before changing the quantity.", enum.SeverityInfo)
		return
	}

	s.editMode = true
	s.buffer = ""
	s.setNotice("Quantity mode enabled. Enter the new value with the keypad.", enum.SeverityInfo)
}

// InputDigit appends one digit to the quantity buffer. While editing, the
// buffered value is applied to the selected line immediately, clamped to the
// available stock. Outside edit mode digits accumulate with no effect.
func (s *Session) InputDigit(digit byte) error {
	if digit < '0' || digit > '9' {
		return apperror.NewBadRequestError("Digit must be 0-9")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.buffer += string(digit)

	if !s.editMode || s.selected == "" {
		return nil
	}

	idx := s.lineIndex(s.selected)
	product, ok := s.catalog.Product(s.selected)
	if idx < 0 || !ok {
		return nil
	}

	n, err := strconv.Atoi(s.buffer)
	if err != nil || n <= 0 {
		// Not a usable quantity yet; leave the line untouched.
		return nil
	}

	if n > product.Quantity {
		s.setNotice(fmt.Sprintf("Quantity adjusted to available stock (%d).", product.Quantity), enum.SeverityWarning)
		s.lines[idx].Quantity = product.Quantity
		s.buffer = strconv.Itoa(product.Quantity)
		return nil
	}

	s.lines[idx].Quantity = n
	return nil
}

// ClearCart discards every line and returns the session to idle.
func (s *Session) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.lines) == 0 {
		s.setNotice("Cart is already empty.", enum.SeverityInfo)
		return
	}

	s.lines = nil
	s.selected = ""
	s.editMode = false
	s.buffer = ""
	s.setNotice("Cart cleared.", enum.SeverityInfo)
}

// SetPayment records the payment method and, for cash, the tendered amount.
// The tendered amount is unconstrained until checkout validates it.
func (s *Session) SetPayment(method enum.PaymentMethod, tendered int64) error {
	if !method.Valid() {
		return apperror.NewBadRequestError("Unknown payment method")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.method = method
	s.tendered = tendered
	return nil
}

// Reconcile clamps cart lines down to the stock levels of a fresh catalog
// snapshot. Lines whose product dropped to zero stock (or disappeared) are
// removed. This runs on every catalog push and is deliberately silent.
func (s *Session) Reconcile(products []entity.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stock := make(map[string]int, len(products))
	for i := range products {
		stock[products[i].ID] = products[i].Quantity
	}

	kept := s.lines[:0]
	for _, line := range s.lines {
		available := stock[line.ProductID]
		if available <= 0 {
			if s.selected == line.ProductID {
				s.selected = ""
				s.editMode = false
				s.buffer = ""
			}
			continue
		}
		if line.Quantity > available {
			line.Quantity = available
		}
		kept = append(kept, line)
	}
	s.lines = kept
}

func (s *Session) computeTotals() Totals {
	var subtotal int64
	for _, line := range s.lines {
		subtotal += line.Total()
	}

	tax := int64(float64(subtotal) * TaxRate)
	total := subtotal + tax

	t := Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    total,
		Method:   s.method,
	}

	if s.method == enum.PaymentMethodCard {
		// Card is an exact payment: no manual entry, no change.
		t.Tendered = total
		t.Change = 0
		return t
	}

	t.Tendered = s.tendered
	if s.tendered > total {
		t.Change = s.tendered - total
	}
	return t
}

// Totals recomputes the cart totals under the active payment method.
func (s *Session) Totals() Totals {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.computeTotals()
}

// Checkout captures the lines and totals the finalizer will persist. The
// snapshot is taken at call time and is not re-validated afterwards.
func (s *Session) Checkout() ([]Line, Totals) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := make([]Line, len(s.lines))
	copy(lines, s.lines)
	return lines, s.computeTotals()
}

// Reset empties the cart after a successful sale. The payment method is kept
// for the next customer; the tendered amount is cleared.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lines = nil
	s.selected = ""
	s.editMode = false
	s.buffer = ""
	s.tendered = 0
	s.setNotice("Sale registered successfully.", enum.SeverityInfo)
}

// Projection is the read-only view of the session handed to the render layer.
type Projection struct {
	ID         uuid.UUID `json:"id"`
	State      State     `json:"state"`
	Lines      []Line    `json:"lines"`
	SelectedID string    `json:"selected_id,omitempty"`
	EditMode   bool      `json:"edit_mode"`
	Buffer     string    `json:"buffer,omitempty"`
	Totals     Totals    `json:"totals"`
	Notice     *Notice   `json:"notice,omitempty"`
}

// Projection returns the current view of the session.
func (s *Session) Projection() Projection {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := make([]Line, len(s.lines))
	copy(lines, s.lines)

	var notice *Notice
	if s.notice != nil && !s.notice.Expired(s.now()) {
		n := *s.notice
		notice = &n
	}

	return Projection{
		ID:         s.id,
		State:      s.state(),
		Lines:      lines,
		SelectedID: s.selected,
		EditMode:   s.editMode,
		Buffer:     s.buffer,
		Totals:     s.computeTotals(),
		Notice:     notice,
	}
}
