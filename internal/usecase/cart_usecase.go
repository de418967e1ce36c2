package usecase

import (
	"context"
	"errors"

	"github.com/DRSN-tech/storefront-backend/internal/domain"
	"github.com/DRSN-tech/storefront-backend/pkg/e"
	"github.com/DRSN-tech/storefront-backend/pkg/logger"
)

// CartUseCase реализует корзину покупателя поверх хранилища корзин
// и каталога. Подытог считается в центах: точность не теряется
// до самого форматирования на границе HTTP.
type CartUseCase struct {
	cartRepo    CartRepository
	catalogRepo CatalogRepository
	logger      logger.Logger
}

func NewCartUC(cartRepo CartRepository, catalogRepo CatalogRepository, logger logger.Logger) *CartUseCase {
	return &CartUseCase{
		cartRepo:    cartRepo,
		catalogRepo: catalogRepo,
		logger:      logger,
	}
}

// GetCart возвращает корзину пользователя с разрешенными строками и подытогом.
// Отсутствие корзины в хранилище означает пустую корзину, а не ошибку.
func (c *CartUseCase) GetCart(ctx context.Context, userID string) (*CartRes, error) {
	const op = "CartUseCase.GetCart"

	cart, err := c.loadCart(ctx, userID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return c.resolve(ctx, cart), nil
}

// AddToCart добавляет товар в корзину или заменяет количество существующей строки.
// Товар должен существовать в каталоге. Количество меньше 1 корзину не меняет.
func (c *CartUseCase) AddToCart(ctx context.Context, userID string, req *CartLineReq) (*CartRes, error) {
	const op = "CartUseCase.AddToCart"

	product, ok := c.catalogRepo.GetByID(ctx, req.ProductID)
	if !ok || product.IsArchived {
		return nil, e.Wrap(op, e.ErrProductNotFound)
	}

	cart, err := c.loadCart(ctx, userID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if cart.AddOrUpdate(req.ProductID, req.Quantity) {
		if err := c.cartRepo.UpsertCart(ctx, cart); err != nil {
			return nil, e.Wrap(op, err)
		}
	}

	return c.resolve(ctx, cart), nil
}

// UpdateQuantity заменяет количество в существующей строке корзины.
// Количество меньше 1 игнорируется: уменьшение ниже единицы не удаляет
// строку неявно, для удаления есть RemoveFromCart.
func (c *CartUseCase) UpdateQuantity(ctx context.Context, userID, productID string, quantity int) (*CartRes, error) {
	const op = "CartUseCase.UpdateQuantity"

	cart, err := c.loadCart(ctx, userID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if cart.AddOrUpdate(productID, quantity) {
		if err := c.cartRepo.UpsertCart(ctx, cart); err != nil {
			return nil, e.Wrap(op, err)
		}
	}

	return c.resolve(ctx, cart), nil
}

// RemoveFromCart удаляет строку корзины. Отсутствие строки не является ошибкой.
func (c *CartUseCase) RemoveFromCart(ctx context.Context, userID, productID string) (*CartRes, error) {
	const op = "CartUseCase.RemoveFromCart"

	cart, err := c.loadCart(ctx, userID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if cart.Remove(productID) {
		if err := c.cartRepo.UpsertCart(ctx, cart); err != nil {
			return nil, e.Wrap(op, err)
		}
	}

	return c.resolve(ctx, cart), nil
}

// loadCart читает корзину из хранилища, превращая "не найдено" в пустую корзину.
func (c *CartUseCase) loadCart(ctx context.Context, userID string) (*domain.Cart, error) {
	cart, err := c.cartRepo.GetCart(ctx, userID)
	if err != nil {
		if errors.Is(err, e.ErrCartNotFound) {
			return domain.NewCart(userID), nil
		}
		return nil, err
	}

	return cart, nil
}

// resolve сопоставляет строки корзины с каталогом в порядке корзины.
// Строки, чей товар исчез из каталога, молча пропускаются: корзина
// со ссылкой на удаленный товар не должна ронять оформление заказа.
func (c *CartUseCase) resolve(ctx context.Context, cart *domain.Cart) *CartRes {
	lines := make([]ResolvedCartLine, 0, len(cart.Lines))
	for _, line := range cart.Lines {
		product, ok := c.catalogRepo.GetByID(ctx, line.ProductID)
		if !ok {
			c.logger.Debugf("dropping orphaned cart line, user_id: %s, product_id: %s", cart.UserID, line.ProductID)
			continue
		}

		lines = append(lines, NewResolvedCartLine(*product, line.Quantity))
	}

	return NewCartRes(lines)
}
