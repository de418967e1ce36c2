package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/DRSN-tech/storefront-backend/internal/domain"
	"github.com/DRSN-tech/storefront-backend/pkg/e"
)

// Тестовые дублеры хранилищ: та же семантика, что у боевых реализаций,
// но без Redis и MinIO.

type nopLogger struct{}

func (nopLogger) Debugf(string, ...interface{})        {}
func (nopLogger) Infof(string, ...interface{})         {}
func (nopLogger) Warnf(string, ...interface{})         {}
func (nopLogger) Errorf(error, string, ...interface{}) {}

type stubCatalogRepo struct {
	order    []string
	products map[string]*domain.Product

	createErr error
}

func newStubCatalogRepo(products ...domain.Product) *stubCatalogRepo {
	repo := &stubCatalogRepo{products: make(map[string]*domain.Product)}
	for i := range products {
		p := products[i]
		repo.order = append(repo.order, p.ID)
		repo.products[p.ID] = &p
	}
	return repo
}

func (r *stubCatalogRepo) GetByID(_ context.Context, id string) (*domain.Product, bool) {
	p, ok := r.products[id]
	if !ok {
		return nil, false
	}
	cp := *p
	return &cp, true
}

func (r *stubCatalogRepo) GetByCategory(_ context.Context, category string) []domain.Product {
	result := make([]domain.Product, 0)
	for _, id := range r.order {
		p := r.products[id]
		if !p.IsArchived && string(p.Category) == category {
			result = append(result, *p)
		}
	}
	return result
}

func (r *stubCatalogRepo) Search(_ context.Context, _ string) []domain.Product {
	return []domain.Product{}
}

func (r *stubCatalogRepo) List(_ context.Context) []domain.Product {
	result := make([]domain.Product, 0, len(r.order))
	for _, id := range r.order {
		result = append(result, *r.products[id])
	}
	return result
}

func (r *stubCatalogRepo) Create(_ context.Context, product *domain.Product) error {
	if r.createErr != nil {
		return r.createErr
	}
	if _, exists := r.products[product.ID]; exists {
		return e.ErrProductExists
	}
	cp := *product
	r.order = append(r.order, cp.ID)
	r.products[cp.ID] = &cp
	return nil
}

func (r *stubCatalogRepo) Update(_ context.Context, product *domain.Product) error {
	if _, ok := r.products[product.ID]; !ok {
		return e.ErrProductNotFound
	}
	cp := *product
	r.products[cp.ID] = &cp
	return nil
}

func (r *stubCatalogRepo) Archive(_ context.Context, id string) error {
	p, ok := r.products[id]
	if !ok {
		return e.ErrProductNotFound
	}
	p.IsArchived = true
	return nil
}

type stubCartRepo struct {
	mu      sync.Mutex
	carts   map[string]*domain.Cart
	upserts int
	deletes int

	getErr error
}

func newStubCartRepo() *stubCartRepo {
	return &stubCartRepo{carts: make(map[string]*domain.Cart)}
}

func (r *stubCartRepo) GetCart(_ context.Context, userID string) (*domain.Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.getErr != nil {
		return nil, r.getErr
	}
	cart, ok := r.carts[userID]
	if !ok {
		return nil, e.ErrCartNotFound
	}
	cp := *cart
	cp.Lines = append([]domain.CartLine(nil), cart.Lines...)
	return &cp, nil
}

func (r *stubCartRepo) UpsertCart(_ context.Context, cart *domain.Cart) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *cart
	cp.Lines = append([]domain.CartLine(nil), cart.Lines...)
	r.carts[cart.UserID] = &cp
	r.upserts++
	return nil
}

func (r *stubCartRepo) DeleteCart(_ context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.carts, userID)
	r.deletes++
	return nil
}

type stubOrderRepo struct {
	mu     sync.Mutex
	orders []domain.Order

	createErr error
}

func (r *stubOrderRepo) Create(_ context.Context, order *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	r.orders = append(r.orders, *order)
	return nil
}

func (r *stubOrderRepo) ListByUser(_ context.Context, userID string) ([]domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]domain.Order, 0)
	for i := len(r.orders) - 1; i >= 0; i-- {
		if r.orders[i].UserID == userID {
			result = append(result, r.orders[i])
		}
	}
	return result, nil
}

type stubUserRepo struct {
	mu    sync.Mutex
	users map[string]*domain.User // по ID
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email {
			return e.ErrEmailTaken
		}
	}
	cp := *user
	r.users[cp.ID] = &cp
	return nil
}

func (r *stubUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, e.ErrUserNotFound
}

func (r *stubUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, e.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *stubUserRepo) UpdatePassword(_ context.Context, userID string, hash []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[userID]
	if !ok {
		return e.ErrUserNotFound
	}
	u.PasswordHash = hash
	return nil
}

type stubTokenRepo struct {
	mu     sync.Mutex
	tokens map[string]string // token -> userID
}

func newStubTokenRepo() *stubTokenRepo {
	return &stubTokenRepo{tokens: make(map[string]string)}
}

func (r *stubTokenRepo) SaveResetToken(_ context.Context, token, userID string, _ time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tokens[token] = userID
	return nil
}

func (r *stubTokenRepo) ConsumeResetToken(_ context.Context, token string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	userID, ok := r.tokens[token]
	if !ok {
		return "", e.ErrInvalidToken
	}
	delete(r.tokens, token)
	return userID, nil
}

type stubWishlistRepo struct {
	mu    sync.Mutex
	items map[string][]string
}

func newStubWishlistRepo() *stubWishlistRepo {
	return &stubWishlistRepo{items: make(map[string][]string)}
}

func (r *stubWishlistRepo) Add(_ context.Context, userID, productID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, id := range r.items[userID] {
		if id == productID {
			return nil
		}
	}
	r.items[userID] = append(r.items[userID], productID)
	return nil
}

func (r *stubWishlistRepo) Remove(_ context.Context, userID, productID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	ids := r.items[userID]
	for i, id := range ids {
		if id == productID {
			r.items[userID] = append(ids[:i], ids[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *stubWishlistRepo) List(_ context.Context, userID string) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.items[userID]...), nil
}

type stubTryOnRepo struct {
	mu       sync.Mutex
	requests []domain.TryOnRequest
}

func (r *stubTryOnRepo) Save(_ context.Context, req *domain.TryOnRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.requests = append(r.requests, *req)
	return nil
}

func (r *stubTryOnRepo) ListByUser(_ context.Context, userID string) ([]domain.TryOnRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]domain.TryOnRequest, 0)
	for i := len(r.requests) - 1; i >= 0; i-- {
		if r.requests[i].UserID == userID {
			result = append(result, r.requests[i])
		}
	}
	return result, nil
}

type stubProducer struct {
	mu        sync.Mutex
	published []domain.Order
	err       error
	done      chan struct{} // закрывается после первой публикации
}

func newStubProducer() *stubProducer {
	return &stubProducer{done: make(chan struct{})}
}

func (p *stubProducer) PublishOrderPlaced(_ context.Context, order *domain.Order) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.published = append(p.published, *order)
	if len(p.published) == 1 {
		close(p.done)
	}
	return nil
}

func (p *stubProducer) Close() error { return nil }

type stubMailer struct {
	mu          sync.Mutex
	resetSent   []string // токены
	ordersSent  []string // order IDs
	resetErr    error
	confirmDone chan struct{}
}

func newStubMailer() *stubMailer {
	return &stubMailer{confirmDone: make(chan struct{})}
}

func (m *stubMailer) SendPasswordReset(_ context.Context, _ string, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.resetErr != nil {
		return m.resetErr
	}
	m.resetSent = append(m.resetSent, token)
	return nil
}

func (m *stubMailer) SendOrderConfirmation(_ context.Context, _ string, order *domain.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ordersSent = append(m.ordersSent, order.ID)
	if len(m.ordersSent) == 1 {
		close(m.confirmDone)
	}
	return nil
}

type stubTokenManager struct{}

func (stubTokenManager) Generate(user *domain.User) (string, error) {
	return "token-" + user.ID, nil
}

func (stubTokenManager) Parse(token string) (*TokenClaims, error) {
	return nil, e.ErrInvalidToken
}

type stubImagesInfra struct {
	mu        sync.Mutex
	uploaded  [][]ProductImage
	cleaned   [][]string
	uploadErr error
}

func (s *stubImagesInfra) UploadImages(_ context.Context, req *UploadImagesReq) (*UploadImagesRes, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.uploadErr != nil {
		return nil, s.uploadErr
	}
	s.uploaded = append(s.uploaded, req.Images)
	keys := make([]string, 0, len(req.Images))
	for _, img := range req.Images {
		keys = append(keys, req.Name+"/"+img.Name)
	}
	return NewUploadImagesRes(keys), nil
}

func (s *stubImagesInfra) CleanupImages(keys []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cleaned = append(s.cleaned, keys)
}

func (s *stubImagesInfra) PublicURL(key string) string {
	return "http://cdn.local/products/" + key
}
