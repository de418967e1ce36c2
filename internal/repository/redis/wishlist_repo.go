package redis

import (
	"context"
	"fmt"

	"github.com/DRSN-tech/storefront-backend/pkg/clients"
	"github.com/DRSN-tech/storefront-backend/pkg/e"
	"github.com/DRSN-tech/storefront-backend/pkg/logger"
	"github.com/jimlawless/whereami"
)

// WishlistRepo хранит избранное пользователя как Redis-множество.
type WishlistRepo struct {
	client *clients.RedisClient
	logger logger.Logger
}

func NewWishlistRepo(client *clients.RedisClient, logger logger.Logger) *WishlistRepo {
	return &WishlistRepo{
		client: client,
		logger: logger,
	}
}

func (r *WishlistRepo) Add(ctx context.Context, userID, productID string) error {
	if err := r.client.Client.SAdd(ctx, r.wishlistKey(userID), productID).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

// Remove удаляет товар из избранного. Отсутствие товара не является ошибкой.
func (r *WishlistRepo) Remove(ctx context.Context, userID, productID string) error {
	if err := r.client.Client.SRem(ctx, r.wishlistKey(userID), productID).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

func (r *WishlistRepo) List(ctx context.Context, userID string) ([]string, error) {
	ids, err := r.client.Client.SMembers(ctx, r.wishlistKey(userID)).Result()
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return ids, nil
}

// wishlistKey возвращает Redis-ключ избранного пользователя
func (r *WishlistRepo) wishlistKey(userID string) string {
	return fmt.Sprintf("wishlist:%s", userID)
}
