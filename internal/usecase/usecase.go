package usecase

import (
	"context"

	"github.com/DRSN-tech/storefront-backend/internal/domain"
)

// CatalogUC — операции каталога: чтение витрины и административный CRUD.
type CatalogUC interface {
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
	ListProducts(ctx context.Context, category string) ([]domain.Product, error)
	Search(ctx context.Context, query string) ([]domain.Product, error)
	CreateProduct(ctx context.Context, req *SaveProductReq) (*domain.Product, error)
	UpdateProduct(ctx context.Context, id string, req *SaveProductReq) (*domain.Product, error)
	ArchiveProduct(ctx context.Context, id string) error
}

// CartUC — операции корзины покупателя.
type CartUC interface {
	GetCart(ctx context.Context, userID string) (*CartRes, error)
	AddToCart(ctx context.Context, userID string, req *CartLineReq) (*CartRes, error)
	UpdateQuantity(ctx context.Context, userID, productID string, quantity int) (*CartRes, error)
	RemoveFromCart(ctx context.Context, userID, productID string) (*CartRes, error)
}

// CheckoutUC — оформление заказа и история покупок.
type CheckoutUC interface {
	ShippingOptions() []domain.ShippingOption
	PaymentMethods() []domain.PaymentMethod
	PlaceOrder(ctx context.Context, userID string, req *PlaceOrderReq) (*domain.Order, error)
	ListOrders(ctx context.Context, userID string) ([]domain.Order, error)
}

// AuthUC — регистрация, вход и восстановление пароля.
type AuthUC interface {
	Register(ctx context.Context, req *RegisterReq) (*AuthRes, error)
	Login(ctx context.Context, req *LoginReq) (*AuthRes, error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
	GetProfile(ctx context.Context, userID string) (*domain.User, error)
}

// TryOnUC — анкеты виртуальной примерки.
type TryOnUC interface {
	Submit(ctx context.Context, userID string, req *TryOnReq) (*TryOnRes, error)
	History(ctx context.Context, userID string) ([]domain.TryOnRequest, error)
}

// WishlistUC — список желаемого.
type WishlistUC interface {
	Add(ctx context.Context, userID, productID string) error
	Remove(ctx context.Context, userID, productID string) error
	List(ctx context.Context, userID string) ([]domain.Product, error)
}
