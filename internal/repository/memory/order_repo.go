package memory

import (
	"context"
	"sync"

	"github.com/DRSN-tech/storefront-backend/internal/domain"
)

// OrderRepo реализует историю заказов в памяти.
type OrderRepo struct {
	mu     sync.RWMutex
	byUser map[string][]domain.Order
}

func NewOrderRepo() *OrderRepo {
	return &OrderRepo{
		byUser: make(map[string][]domain.Order),
	}
}

func (r *OrderRepo) Create(_ context.Context, order *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byUser[order.UserID] = append(r.byUser[order.UserID], *order)

	return nil
}

// ListByUser возвращает заказы пользователя, новые первыми.
func (r *OrderRepo) ListByUser(_ context.Context, userID string) ([]domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orders := r.byUser[userID]
	result := make([]domain.Order, 0, len(orders))
	for i := len(orders) - 1; i >= 0; i-- {
		result = append(result, orders[i])
	}

	return result, nil
}
