package usecase

import (
	"context"

	"github.com/DRSN-tech/storefront-backend/internal/domain"
)

type ImagesInfra interface {
	UploadImages(ctx context.Context, req *UploadImagesReq) (*UploadImagesRes, error)
	CleanupImages(keys []string)
	PublicURL(key string) string
}

// EventProducer публикует события заказов. Публикация выполняется
// по принципу best effort: отказ брокера не должен ронять оформление заказа.
type EventProducer interface {
	PublishOrderPlaced(ctx context.Context, order *domain.Order) error
	Close() error
}

type Mailer interface {
	SendPasswordReset(ctx context.Context, email, token string) error
	SendOrderConfirmation(ctx context.Context, email string, order *domain.Order) error
}

// TokenManager выпускает и проверяет токены доступа.
type TokenManager interface {
	Generate(user *domain.User) (string, error)
	Parse(token string) (*TokenClaims, error)
}
