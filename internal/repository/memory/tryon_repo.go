package memory

import (
	"context"
	"sync"

	"github.com/DRSN-tech/storefront-backend/internal/domain"
)

// TryOnRepo хранит анкеты виртуальной примерки в памяти.
type TryOnRepo struct {
	mu     sync.RWMutex
	byUser map[string][]domain.TryOnRequest
}

func NewTryOnRepo() *TryOnRepo {
	return &TryOnRepo{
		byUser: make(map[string][]domain.TryOnRequest),
	}
}

func (r *TryOnRepo) Save(_ context.Context, req *domain.TryOnRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byUser[req.UserID] = append(r.byUser[req.UserID], *req)

	return nil
}

// ListByUser возвращает анкеты пользователя, новые первыми.
func (r *TryOnRepo) ListByUser(_ context.Context, userID string) ([]domain.TryOnRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	requests := r.byUser[userID]
	result := make([]domain.TryOnRequest, 0, len(requests))
	for i := len(requests) - 1; i >= 0; i-- {
		result = append(result, requests[i])
	}

	return result, nil
}
