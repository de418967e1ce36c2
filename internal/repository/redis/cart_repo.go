package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/DRSN-tech/storefront-backend/internal/cfg"
	"github.com/DRSN-tech/storefront-backend/internal/domain"
	"github.com/DRSN-tech/storefront-backend/internal/repository/redis/converter"
	"github.com/DRSN-tech/storefront-backend/pkg/clients"
	"github.com/DRSN-tech/storefront-backend/pkg/e"
	"github.com/DRSN-tech/storefront-backend/pkg/logger"
	"github.com/jimlawless/whereami"
	goredis "github.com/redis/go-redis/v9"
)

// CartRepo хранит корзины в Redis. Корзина сериализуется в JSON целиком:
// она маленькая, а запись строки всегда идет через полную перезапись,
// поэтому частичные обновления не нужны.
type CartRepo struct {
	client *clients.RedisClient
	conv   converter.CartConverter
	cfg    *cfg.RedisCfg
	logger logger.Logger
}

func NewCartRepo(client *clients.RedisClient, conv converter.CartConverter,
	cfg *cfg.RedisCfg, logger logger.Logger) *CartRepo {
	return &CartRepo{
		client: client,
		conv:   conv,
		cfg:    cfg,
		logger: logger,
	}
}

// GetCart возвращает корзину пользователя или e.ErrCartNotFound.
func (r *CartRepo) GetCart(ctx context.Context, userID string) (*domain.Cart, error) {
	data, err := r.client.Client.Get(ctx, r.cartKey(userID)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, e.ErrCartNotFound
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	var model converter.CartRedisModel
	if err := json.Unmarshal(data, &model); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return r.conv.ToDomain(&model), nil
}

// UpsertCart перезаписывает корзину и продлевает TTL неактивности.
func (r *CartRepo) UpsertCart(ctx context.Context, cart *domain.Cart) error {
	data, err := json.Marshal(r.conv.ToRedisModel(cart))
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if err := r.client.Client.Set(ctx, r.cartKey(cart.UserID), data, r.cfg.CartTTL).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

// DeleteCart удаляет корзину. Отсутствие ключа не является ошибкой.
func (r *CartRepo) DeleteCart(ctx context.Context, userID string) error {
	if err := r.client.Client.Del(ctx, r.cartKey(userID)).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

// cartKey возвращает Redis-ключ корзины пользователя
func (r *CartRepo) cartKey(userID string) string {
	return fmt.Sprintf("cart:%s", userID)
}
