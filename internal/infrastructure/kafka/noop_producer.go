package kafka

import (
	"context"

	"github.com/DRSN-tech/storefront-backend/internal/domain"
	"github.com/DRSN-tech/storefront-backend/pkg/logger"
)

// NoopProducer используется, когда KAFKA_BROKERS не задан:
// события заказов логируются, но никуда не отправляются.
type NoopProducer struct {
	logger logger.Logger
}

func NewNoopProducer(logger logger.Logger) *NoopProducer {
	return &NoopProducer{logger: logger}
}

func (p *NoopProducer) PublishOrderPlaced(_ context.Context, order *domain.Order) error {
	p.logger.Debugf("kafka disabled, skipping order event: order_id=%s", order.ID)
	return nil
}

func (p *NoopProducer) Close() error {
	return nil
}
