package memory

import (
	"context"
	"sync"

	"github.com/DRSN-tech/storefront-backend/internal/domain"
	"github.com/DRSN-tech/storefront-backend/pkg/e"
)

// UserRepo реализует хранилище учетных записей в памяти.
type UserRepo struct {
	mu      sync.RWMutex
	byID    map[string]*domain.User
	byEmail map[string]*domain.User
}

func NewUserRepo() *UserRepo {
	return &UserRepo{
		byID:    make(map[string]*domain.User),
		byEmail: make(map[string]*domain.User),
	}
}

// Create добавляет учетную запись. Почта уникальна.
func (r *UserRepo) Create(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byEmail[user.Email]; exists {
		return e.ErrEmailTaken
	}

	cp := *user
	r.byID[cp.ID] = &cp
	r.byEmail[cp.Email] = &cp

	return nil
}

func (r *UserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byEmail[email]
	if !ok {
		return nil, e.ErrUserNotFound
	}

	cp := *user
	return &cp, nil
}

func (r *UserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byID[id]
	if !ok {
		return nil, e.ErrUserNotFound
	}

	cp := *user
	return &cp, nil
}

// UpdatePassword заменяет bcrypt-хэш пароля пользователя.
func (r *UserRepo) UpdatePassword(_ context.Context, userID string, passwordHash []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.byID[userID]
	if !ok {
		return e.ErrUserNotFound
	}

	user.PasswordHash = passwordHash

	return nil
}
