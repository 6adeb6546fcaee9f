package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	fbauth "firebase.google.com/go/v4/auth"

	"github.com/elesfuerzo/pos-api/internal/domain/entity"
	"github.com/elesfuerzo/pos-api/internal/domain/enum"
	"github.com/elesfuerzo/pos-api/pkg/apperror"
)

type fakeProductRepo struct {
	mu       sync.Mutex
	products map[string]*entity.Product
	saleErr  map[string]error // product ID -> forced RegisterSale failure
}

func newFakeProductRepo(products ...*entity.Product) *fakeProductRepo {
	r := &fakeProductRepo{
		products: make(map[string]*entity.Product),
		saleErr:  make(map[string]error),
	}
	for _, p := range products {
		r.products[p.ID] = p
	}
	return r
}

func (r *fakeProductRepo) Create(_ context.Context, product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.products[product.ID]; exists {
		return apperror.NewConflictError("Barcode already registered")
	}
	p := *product
	r.products[p.ID] = &p
	return nil
}

func (r *fakeProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	out := *p
	return &out, nil
}

func (r *fakeProductRepo) List(_ context.Context) ([]entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entity.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeProductRepo) ListBySupplier(_ context.Context, supplierID string) ([]entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entity.Product
	for _, p := range r.products {
		if p.SupplierID == supplierID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) AdjustQuantity(_ context.Context, id string, delta int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[id]
	if !ok {
		return apperror.NewNotFoundError("Product")
	}
	p.Quantity += delta
	return nil
}

func (r *fakeProductRepo) RegisterSale(_ context.Context, id string, qty int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err, forced := r.saleErr[id]; forced {
		return err
	}
	p, ok := r.products[id]
	if !ok {
		return apperror.NewNotFoundError("Product")
	}
	p.Quantity -= qty
	p.SalesCount += qty
	return nil
}

func (r *fakeProductRepo) Watch(_ context.Context) (<-chan []entity.Product, error) {
	ch := make(chan []entity.Product)
	close(ch)
	return ch, nil
}

type fakeSaleRepo struct {
	mu        sync.Mutex
	sales     []entity.Sale
	createErr error
}

func (r *fakeSaleRepo) Create(_ context.Context, sale *entity.Sale) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return "", r.createErr
	}
	id := fmt.Sprintf("sale-%d", len(r.sales)+1)
	s := *sale
	s.ID = id
	r.sales = append(r.sales, s)
	return id, nil
}

func (r *fakeSaleRepo) GetByID(_ context.Context, id string) (*entity.Sale, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.sales {
		if r.sales[i].ID == id {
			out := r.sales[i]
			return &out, nil
		}
	}
	return nil, nil
}

func (r *fakeSaleRepo) List(_ context.Context) ([]entity.Sale, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entity.Sale, len(r.sales))
	for i := range r.sales {
		out[len(r.sales)-1-i] = r.sales[i]
	}
	return out, nil
}

type fakeSupplierRepo struct {
	mu        sync.Mutex
	suppliers map[string]*entity.Supplier
	nextID    int
}

func newFakeSupplierRepo(suppliers ...*entity.Supplier) *fakeSupplierRepo {
	r := &fakeSupplierRepo{suppliers: make(map[string]*entity.Supplier)}
	for _, s := range suppliers {
		r.suppliers[s.ID] = s
	}
	return r
}

func (r *fakeSupplierRepo) Create(_ context.Context, supplier *entity.Supplier) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	id := fmt.Sprintf("sup-%d", r.nextID)
	s := *supplier
	s.ID = id
	r.suppliers[id] = &s
	return id, nil
}

func (r *fakeSupplierRepo) GetByID(_ context.Context, id string) (*entity.Supplier, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.suppliers[id]
	if !ok {
		return nil, nil
	}
	out := *s
	return &out, nil
}

func (r *fakeSupplierRepo) List(_ context.Context) ([]entity.Supplier, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entity.Supplier, 0, len(r.suppliers))
	for _, s := range r.suppliers {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*entity.UserProfile
}

func newFakeUserRepo(users ...*entity.UserProfile) *fakeUserRepo {
	r := &fakeUserRepo{users: make(map[string]*entity.UserProfile)}
	for _, u := range users {
		r.users[u.UID] = u
	}
	return r
}

func (r *fakeUserRepo) Create(_ context.Context, profile *entity.UserProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u := *profile
	r.users[u.UID] = &u
	return nil
}

func (r *fakeUserRepo) GetByUID(_ context.Context, uid string) (*entity.UserProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[uid]
	if !ok {
		return nil, nil
	}
	out := *u
	return &out, nil
}

func (r *fakeUserRepo) List(_ context.Context) ([]entity.UserProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entity.UserProfile, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *fakeUserRepo) UpdateRole(_ context.Context, uid string, role enum.UserRole) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[uid]
	if !ok {
		return apperror.NewNotFoundError("User")
	}
	u.Role = role
	return nil
}

type fakePrinter struct {
	mu   sync.Mutex
	jobs [][]byte
	err  error
}

func (p *fakePrinter) Print(data []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.jobs = append(p.jobs, data)
	return nil
}

func (p *fakePrinter) Close() error { return nil }

type fakeMailer struct {
	mu     sync.Mutex
	orders map[string]string // to -> body
	links  map[string]string // to -> link
	err    error
}

func newFakeMailer() *fakeMailer {
	return &fakeMailer{orders: make(map[string]string), links: make(map[string]string)}
}

func (m *fakeMailer) SendPurchaseOrderEmail(to, body string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.orders[to] = body
	return nil
}

func (m *fakeMailer) SendVerificationEmail(to, link string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.links[to] = link
	return nil
}

func (m *fakeMailer) SendPasswordResetEmail(to, link string) error {
	return m.SendVerificationEmail(to, link)
}

type fakeIdentity struct {
	tokens    map[string]string // idToken -> UID
	createErr error
	nextUID   int
}

func newFakeIdentity() *fakeIdentity {
	return &fakeIdentity{tokens: make(map[string]string)}
}

func (f *fakeIdentity) VerifyIDToken(_ context.Context, idToken string) (*fbauth.Token, error) {
	uid, ok := f.tokens[idToken]
	if !ok {
		return nil, errors.New("invalid ID token")
	}
	return &fbauth.Token{UID: uid}, nil
}

func (f *fakeIdentity) CreateUser(_ context.Context, _ *fbauth.UserToCreate) (*fbauth.UserRecord, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.nextUID++
	return &fbauth.UserRecord{UserInfo: &fbauth.UserInfo{UID: fmt.Sprintf("uid-%d", f.nextUID)}}, nil
}

func (f *fakeIdentity) EmailVerificationLink(_ context.Context, email string) (string, error) {
	return "https://example.test/verify/" + email, nil
}

func (f *fakeIdentity) PasswordResetLink(_ context.Context, email string) (string, error) {
	return "https://example.test/reset/" + email, nil
}

func seededCatalog(products ...*entity.Product) *CatalogService {
	repo := newFakeProductRepo(products...)
	catalog := NewCatalogService(repo)
	snapshot, _ := repo.List(context.Background())
	catalog.swap(snapshot)
	return catalog
}
