package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/DRSN-tech/storefront-backend/internal/cfg"
	"github.com/DRSN-tech/storefront-backend/internal/domain"
	"github.com/DRSN-tech/storefront-backend/pkg/e"
	"github.com/DRSN-tech/storefront-backend/pkg/logger"
	"github.com/google/uuid"
	"github.com/jimlawless/whereami"
	"github.com/segmentio/kafka-go"
)

// orderPlacedEvent — полезная нагрузка события оформления заказа.
type orderPlacedEvent struct {
	EventID        string           `json:"event_id"`
	EventTimestamp int64            `json:"event_timestamp"`
	OrderID        string           `json:"order_id"`
	UserID         string           `json:"user_id"`
	Items          []orderItemEvent `json:"items"`
	Subtotal       int64            `json:"subtotal"`
	ShippingID     string           `json:"shipping_id"`
	PaymentMethod  string           `json:"payment_method"`
	Total          int64            `json:"total"`
	Status         string           `json:"status"`
}

type orderItemEvent struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Quantity  int    `json:"quantity"`
}

type Producer struct {
	writer *kafka.Writer
	logger logger.Logger
	cfg    *cfg.KafkaCfg
}

func NewProducer(logger logger.Logger, cfg *cfg.KafkaCfg) (*Producer, error) {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		BatchSize:    10,
		BatchTimeout: 500 * time.Millisecond,
		WriteTimeout: 10 * time.Second,
		Completion: func(messages []kafka.Message, err error) {
			if err != nil {
				logger.Warnf("Kafka producer error: %s", err.Error())
			}
		},
	}

	return &Producer{
		writer: writer,
		logger: logger,
		cfg:    cfg,
	}, nil
}

// PublishOrderPlaced отправляет событие оформления заказа.
// Ключ сообщения — ID пользователя: все заказы покупателя попадают в одну партицию.
func (p *Producer) PublishOrderPlaced(ctx context.Context, order *domain.Order) error {
	value, err := p.getPayloadBytes(order)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(order.UserID),
		Value: value,
	})
}

func (p *Producer) EnsureTopic(timeout time.Duration) error {
	conn, err := kafka.Dial(p.cfg.NetworkMode, p.cfg.Brokers[0])
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}
	defer conn.Close()

	partitions, err := conn.ReadPartitions(p.cfg.Topic)
	if err == nil && len(partitions) > 0 {
		return nil
	}

	done := make(chan error, 1)
	go func() {
		err := conn.CreateTopics(kafka.TopicConfig{
			Topic:             p.cfg.Topic,
			NumPartitions:     p.cfg.Partitions,
			ReplicationFactor: p.cfg.ReplicationFactor,
		})
		done <- err
	}()

	select {
	case err := <-done:
		if err != nil {
			return e.Wrap(whereami.WhereAmI(), fmt.Errorf("failed to create topic %s: %w", p.cfg.Topic, err))
		}
		return nil
	case <-time.After(timeout):
		_ = conn.Close()
		return e.Wrap(whereami.WhereAmI(), fmt.Errorf("timeout: %v, topic: %s", timeout, p.cfg.Topic))
	}
}

func (p *Producer) Close() error {
	return p.writer.Close()
}

func (p *Producer) getPayloadBytes(order *domain.Order) ([]byte, error) {
	items := make([]orderItemEvent, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, orderItemEvent{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
		})
	}

	event := orderPlacedEvent{
		EventID:        uuid.NewString(),
		EventTimestamp: time.Now().UnixNano(),
		OrderID:        order.ID,
		UserID:         order.UserID,
		Items:          items,
		Subtotal:       order.Subtotal,
		ShippingID:     order.ShippingOption.ID,
		PaymentMethod:  order.PaymentMethod,
		Total:          order.Total,
		Status:         string(order.Status),
	}

	return json.Marshal(event)
}
