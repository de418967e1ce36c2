package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/DRSN-tech/storefront-backend/pkg/clients"
	"github.com/DRSN-tech/storefront-backend/pkg/e"
	"github.com/DRSN-tech/storefront-backend/pkg/logger"
	"github.com/jimlawless/whereami"
	goredis "github.com/redis/go-redis/v9"
)

// TokenRepo хранит одноразовые токены сброса пароля.
// Значение ключа — идентификатор пользователя; TTL делает токен временным.
type TokenRepo struct {
	client *clients.RedisClient
	logger logger.Logger
}

func NewTokenRepo(client *clients.RedisClient, logger logger.Logger) *TokenRepo {
	return &TokenRepo{
		client: client,
		logger: logger,
	}
}

func (r *TokenRepo) SaveResetToken(ctx context.Context, token, userID string, ttl time.Duration) error {
	if err := r.client.Client.Set(ctx, r.resetKey(token), userID, ttl).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

// ConsumeResetToken атомарно читает и удаляет токен, возвращая ID пользователя.
// Повторное использование того же токена дает e.ErrInvalidToken.
func (r *TokenRepo) ConsumeResetToken(ctx context.Context, token string) (string, error) {
	userID, err := r.client.Client.GetDel(ctx, r.resetKey(token)).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return "", e.ErrInvalidToken
		}
		return "", e.Wrap(whereami.WhereAmI(), err)
	}

	return userID, nil
}

// resetKey возвращает Redis-ключ токена сброса пароля
func (r *TokenRepo) resetKey(token string) string {
	return fmt.Sprintf("pwreset:%s", token)
}
