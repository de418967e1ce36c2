package email

import (
	"context"
	"fmt"

	"github.com/DRSN-tech/storefront-backend/internal/cfg"
	"github.com/DRSN-tech/storefront-backend/internal/domain"
	"github.com/DRSN-tech/storefront-backend/pkg/e"
	"github.com/DRSN-tech/storefront-backend/pkg/logger"
	"github.com/jimlawless/whereami"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/shopspring/decimal"
)

// SendGridMailer отправляет транзакционные письма через SendGrid.
type SendGridMailer struct {
	client *sendgrid.Client
	cfg    *cfg.EmailCfg
	logger logger.Logger
}

func NewSendGridMailer(cfg *cfg.EmailCfg, logger logger.Logger) *SendGridMailer {
	return &SendGridMailer{
		client: sendgrid.NewSendClient(cfg.SendGridAPIKey),
		cfg:    cfg,
		logger: logger,
	}
}

// SendPasswordReset отправляет письмо с одноразовым токеном сброса пароля.
func (m *SendGridMailer) SendPasswordReset(ctx context.Context, email, token string) error {
	subject := "Reset your password"
	body := fmt.Sprintf("Use this token to reset your password: %s\n\nIf you did not request a reset, ignore this message.", token)

	return m.send(ctx, email, subject, body)
}

// SendOrderConfirmation отправляет подтверждение оформленного заказа.
func (m *SendGridMailer) SendOrderConfirmation(ctx context.Context, email string, order *domain.Order) error {
	subject := fmt.Sprintf("Order %s confirmed", order.ID)
	body := fmt.Sprintf(
		"Thank you for your order!\n\nOrder ID: %s\nItems: %d\nTotal: $%s\nShipping: %s (%s business days)\n",
		order.ID,
		len(order.Items),
		formatCents(order.Total),
		order.ShippingOption.Name,
		order.ShippingOption.EstimatedDays,
	)

	return m.send(ctx, email, subject, body)
}

func (m *SendGridMailer) send(_ context.Context, to, subject, body string) error {
	from := mail.NewEmail(m.cfg.SenderName, m.cfg.Sender)
	message := mail.NewSingleEmail(from, subject, mail.NewEmail("", to), body, fmt.Sprintf("<pre>%s</pre>", body))

	response, err := m.client.Send(message)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if response.StatusCode >= 400 {
		return e.Wrap(whereami.WhereAmI(), fmt.Errorf("sendgrid send failed: status=%d, body=%s", response.StatusCode, response.Body))
	}

	m.logger.Infof("mail sent: status=%d to=%s subject=%q", response.StatusCode, to, subject)

	return nil
}

// formatCents переводит цену в центах в строку вида "145.97".
func formatCents(cents int64) string {
	return decimal.New(cents, -2).StringFixed(2)
}
