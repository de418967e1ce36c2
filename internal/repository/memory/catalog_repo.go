package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/DRSN-tech/storefront-backend/internal/domain"
	"github.com/DRSN-tech/storefront-backend/pkg/e"
)

// CatalogRepo реализует хранилище каталога в памяти. Каталог маленький
// и фиксированный, поэтому все чтения — линейный проход без индексов;
// порядок добавления товаров сохраняется.
type CatalogRepo struct {
	mu       sync.RWMutex
	order    []string // идентификаторы в порядке добавления
	products map[string]*domain.Product
}

// NewCatalogRepo создает хранилище, засеянное переданными товарами.
// Набор передается явно, а не глобальной переменной: тесты подставляют
// синтетические каталоги.
func NewCatalogRepo(seed []domain.Product) *CatalogRepo {
	r := &CatalogRepo{
		order:    make([]string, 0, len(seed)),
		products: make(map[string]*domain.Product, len(seed)),
	}

	for i := range seed {
		p := seed[i]
		r.order = append(r.order, p.ID)
		r.products[p.ID] = &p
	}

	return r
}

// GetByID возвращает товар по идентификатору, включая архивные.
func (r *CatalogRepo) GetByID(_ context.Context, id string) (*domain.Product, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[id]
	if !ok {
		return nil, false
	}

	cp := *product
	return &cp, true
}

// GetByCategory возвращает неархивные товары категории в порядке добавления.
// Неизвестная категория дает пустой срез, а не ошибку.
func (r *CatalogRepo) GetByCategory(_ context.Context, category string) []domain.Product {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]domain.Product, 0)
	for _, id := range r.order {
		p := r.products[id]
		if p.IsArchived {
			continue
		}
		if string(p.Category) == category {
			result = append(result, *p)
		}
	}

	return result
}

// Search возвращает неархивные товары, у которых хотя бы одно из пяти
// полей содержит запрос как подстроку без учета регистра. Порядок — порядок
// каталога: ранжирования нет, это намеренно наивный проход.
func (r *CatalogRepo) Search(_ context.Context, query string) []domain.Product {
	r.mu.RLock()
	defer r.mu.RUnlock()

	lowered := strings.ToLower(query)

	result := make([]domain.Product, 0)
	for _, id := range r.order {
		p := r.products[id]
		if p.IsArchived {
			continue
		}
		for _, field := range p.SearchableFields() {
			if strings.Contains(strings.ToLower(field), lowered) {
				result = append(result, *p)
				break
			}
		}
	}

	return result
}

// List возвращает все товары, включая архивные, в порядке добавления.
func (r *CatalogRepo) List(_ context.Context) []domain.Product {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]domain.Product, 0, len(r.order))
	for _, id := range r.order {
		result = append(result, *r.products[id])
	}

	return result
}

// Create добавляет новый товар в конец каталога.
func (r *CatalogRepo) Create(_ context.Context, product *domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.products[product.ID]; exists {
		return e.ErrProductExists
	}

	product.CreatedAt = time.Now()

	cp := *product
	r.order = append(r.order, cp.ID)
	r.products[cp.ID] = &cp

	return nil
}

// Update заменяет существующий товар, сохраняя его позицию в каталоге.
func (r *CatalogRepo) Update(_ context.Context, product *domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.products[product.ID]
	if !ok {
		return e.ErrProductNotFound
	}

	now := time.Now()

	cp := *product
	cp.CreatedAt = existing.CreatedAt
	cp.UpdatedAt = &now
	r.products[cp.ID] = &cp

	return nil
}

// Archive помечает товар архивным, не удаляя его физически.
func (r *CatalogRepo) Archive(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	product, ok := r.products[id]
	if !ok {
		return e.ErrProductNotFound
	}

	now := time.Now()
	product.IsArchived = true
	product.UpdatedAt = &now

	return nil
}
