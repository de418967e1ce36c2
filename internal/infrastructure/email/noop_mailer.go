package email

import (
	"context"

	"github.com/DRSN-tech/storefront-backend/internal/domain"
	"github.com/DRSN-tech/storefront-backend/pkg/logger"
)

// NoopMailer используется, когда SENDGRID_API_KEY не задан:
// письма логируются, но не отправляются. Удобно для локальной разработки.
type NoopMailer struct {
	logger logger.Logger
}

func NewNoopMailer(logger logger.Logger) *NoopMailer {
	return &NoopMailer{logger: logger}
}

func (m *NoopMailer) SendPasswordReset(_ context.Context, email, token string) error {
	m.logger.Infof("email disabled, password reset token for %s: %s", email, token)
	return nil
}

func (m *NoopMailer) SendOrderConfirmation(_ context.Context, email string, order *domain.Order) error {
	m.logger.Infof("email disabled, skipping order confirmation: order_id=%s to=%s", order.ID, email)
	return nil
}
