package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/DRSN-tech/storefront-backend/internal/domain"
	"github.com/DRSN-tech/storefront-backend/pkg/e"
	"github.com/DRSN-tech/storefront-backend/pkg/logger"
	"github.com/google/uuid"
)

// CheckoutUseCase оформляет заказы: проверяет выбор оплаты и доставки,
// снимает снимок корзины, считает итог и сохраняет заказ в историю.
type CheckoutUseCase struct {
	cartRepo    CartRepository
	catalogRepo CatalogRepository
	orderRepo   OrderRepository
	userRepo    UserRepository
	producer    EventProducer
	mailer      Mailer
	logger      logger.Logger
}

func NewCheckoutUC(
	cartRepo CartRepository,
	catalogRepo CatalogRepository,
	orderRepo OrderRepository,
	userRepo UserRepository,
	producer EventProducer,
	mailer Mailer,
	logger logger.Logger,
) *CheckoutUseCase {
	return &CheckoutUseCase{
		cartRepo:    cartRepo,
		catalogRepo: catalogRepo,
		orderRepo:   orderRepo,
		userRepo:    userRepo,
		producer:    producer,
		mailer:      mailer,
		logger:      logger,
	}
}

// ShippingOptions возвращает фиксированный набор тарифов доставки.
func (c *CheckoutUseCase) ShippingOptions() []domain.ShippingOption {
	return domain.ShippingOptions()
}

// PaymentMethods возвращает фиксированный набор способов оплаты.
func (c *CheckoutUseCase) PaymentMethods() []domain.PaymentMethod {
	return domain.PaymentMethods()
}

// PlaceOrder оформляет заказ по текущей корзине пользователя.
// Строки с исчезнувшими товарами в заказ не попадают. После сохранения
// заказа корзина очищается, событие и письмо отправляются best effort.
func (c *CheckoutUseCase) PlaceOrder(ctx context.Context, userID string, req *PlaceOrderReq) (*domain.Order, error) {
	const op = "CheckoutUseCase.PlaceOrder"

	opt, err := c.validateOrder(req)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	cart, err := c.cartRepo.GetCart(ctx, userID)
	if err != nil {
		if errors.Is(err, e.ErrCartNotFound) {
			return nil, e.Wrap(op, e.ErrEmptyCart)
		}
		return nil, e.Wrap(op, err)
	}

	items, subtotal := c.snapshotCart(ctx, cart)
	if len(items) == 0 {
		return nil, e.Wrap(op, e.ErrEmptyCart)
	}

	order := domain.NewOrder(uuid.NewString(), userID, items, subtotal, opt, req.PaymentMethod, req.Address)

	if err := c.orderRepo.Create(ctx, order); err != nil {
		return nil, e.Wrap(op, err)
	}

	if err := c.cartRepo.DeleteCart(ctx, userID); err != nil {
		c.logger.Warnf("Failed to clear cart after checkout, user_id: %s: %v", userID, e.Wrap(op, err))
	}

	c.notify(order)

	return order, nil
}

// ListOrders возвращает заказы пользователя, новые первыми.
func (c *CheckoutUseCase) ListOrders(ctx context.Context, userID string) ([]domain.Order, error) {
	const op = "CheckoutUseCase.ListOrders"

	orders, err := c.orderRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return orders, nil
}

// validateOrder проверяет выбор оплаты, доставки и полноту адреса.
func (c *CheckoutUseCase) validateOrder(req *PlaceOrderReq) (domain.ShippingOption, error) {
	if req.PaymentMethod == "" {
		return domain.ShippingOption{}, e.ErrPaymentMethodRequired
	}
	if !domain.ValidPaymentMethod(req.PaymentMethod) {
		return domain.ShippingOption{}, e.ErrUnknownPaymentMethod
	}

	if req.ShippingOptionID == "" {
		return domain.ShippingOption{}, e.ErrShippingOptionRequired
	}
	opt, ok := domain.FindShippingOption(req.ShippingOptionID)
	if !ok {
		return domain.ShippingOption{}, e.ErrUnknownShippingOption
	}

	if !req.Address.Complete() {
		return domain.ShippingOption{}, e.ErrAddressRequired
	}

	return opt, nil
}

// snapshotCart фиксирует название и цену каждой разрешенной строки корзины
// на момент покупки и возвращает подытог в центах.
func (c *CheckoutUseCase) snapshotCart(ctx context.Context, cart *domain.Cart) ([]domain.OrderItem, int64) {
	items := make([]domain.OrderItem, 0, len(cart.Lines))
	var subtotal int64
	for _, line := range cart.Lines {
		product, ok := c.catalogRepo.GetByID(ctx, line.ProductID)
		if !ok {
			c.logger.Debugf("dropping orphaned cart line at checkout, user_id: %s, product_id: %s", cart.UserID, line.ProductID)
			continue
		}

		items = append(items, domain.OrderItem{
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price,
			Quantity:  line.Quantity,
		})
		subtotal += product.Price * int64(line.Quantity)
	}

	return items, subtotal
}

// notify в фоне публикует событие о заказе и отправляет письмо-подтверждение.
// Оба действия best effort: их отказ не влияет на уже сохраненный заказ.
func (c *CheckoutUseCase) notify(order *domain.Order) {
	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := c.producer.PublishOrderPlaced(bgCtx, order); err != nil {
			c.logger.Warnf("Failed to publish order event, order_id: %s: %v", order.ID, err)
		}

		user, err := c.userRepo.GetByID(bgCtx, order.UserID)
		if err != nil {
			c.logger.Warnf("Failed to load user for confirmation email, order_id: %s: %v", order.ID, err)
			return
		}

		if err := c.mailer.SendOrderConfirmation(bgCtx, user.Email, order); err != nil {
			c.logger.Warnf("Failed to send confirmation email, order_id: %s: %v", order.ID, err)
		}
	}()
}
