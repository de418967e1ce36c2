package usecase

import (
	"context"
	"time"

	"github.com/DRSN-tech/storefront-backend/internal/domain"
)

// CatalogRepository владеет списком товаров. Чтения возвращают товары
// в порядке добавления в каталог; отсутствие совпадений — пустой срез,
// а не ошибка.
type CatalogRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Product, bool)
	GetByCategory(ctx context.Context, category string) []domain.Product
	Search(ctx context.Context, query string) []domain.Product
	List(ctx context.Context) []domain.Product
	Create(ctx context.Context, product *domain.Product) error
	Update(ctx context.Context, product *domain.Product) error
	Archive(ctx context.Context, id string) error
}

type CartRepository interface {
	GetCart(ctx context.Context, userID string) (*domain.Cart, error)
	UpsertCart(ctx context.Context, cart *domain.Cart) error
	DeleteCart(ctx context.Context, userID string) error
}

type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) error
	ListByUser(ctx context.Context, userID string) ([]domain.Order, error)
}

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	UpdatePassword(ctx context.Context, userID string, passwordHash []byte) error
}

type WishlistRepository interface {
	Add(ctx context.Context, userID, productID string) error
	Remove(ctx context.Context, userID, productID string) error
	List(ctx context.Context, userID string) ([]string, error)
}

// TokenRepository хранит одноразовые токены сброса пароля с TTL.
type TokenRepository interface {
	SaveResetToken(ctx context.Context, token, userID string, ttl time.Duration) error
	ConsumeResetToken(ctx context.Context, token string) (string, error)
}

type TryOnRepository interface {
	Save(ctx context.Context, req *domain.TryOnRequest) error
	ListByUser(ctx context.Context, userID string) ([]domain.TryOnRequest, error)
}

type ImageRepository interface {
	Upload(ctx context.Context, image *domain.Image) (string, error)
	Delete(ctx context.Context, key string) error
}
