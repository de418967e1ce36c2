package usecase

import (
	"context"

	"github.com/DRSN-tech/storefront-backend/internal/domain"
	"github.com/DRSN-tech/storefront-backend/pkg/e"
	"github.com/DRSN-tech/storefront-backend/pkg/logger"
)

// WishlistUseCase реализует список желаемого поверх Redis-множества
// идентификаторов товаров. Исчезнувшие из каталога товары при чтении
// пропускаются так же, как осиротевшие строки корзины.
type WishlistUseCase struct {
	wishlistRepo WishlistRepository
	catalogRepo  CatalogRepository
	logger       logger.Logger
}

func NewWishlistUC(wishlistRepo WishlistRepository, catalogRepo CatalogRepository, logger logger.Logger) *WishlistUseCase {
	return &WishlistUseCase{
		wishlistRepo: wishlistRepo,
		catalogRepo:  catalogRepo,
		logger:       logger,
	}
}

// Add добавляет товар в список желаемого. Товар должен существовать в каталоге.
func (w *WishlistUseCase) Add(ctx context.Context, userID, productID string) error {
	const op = "WishlistUseCase.Add"

	product, ok := w.catalogRepo.GetByID(ctx, productID)
	if !ok || product.IsArchived {
		return e.Wrap(op, e.ErrProductNotFound)
	}

	if err := w.wishlistRepo.Add(ctx, userID, productID); err != nil {
		return e.Wrap(op, err)
	}

	return nil
}

// Remove убирает товар из списка желаемого. Отсутствие товара — не ошибка.
func (w *WishlistUseCase) Remove(ctx context.Context, userID, productID string) error {
	const op = "WishlistUseCase.Remove"

	if err := w.wishlistRepo.Remove(ctx, userID, productID); err != nil {
		return e.Wrap(op, err)
	}

	return nil
}

// List возвращает товары из списка желаемого, пропуская осиротевшие ссылки.
func (w *WishlistUseCase) List(ctx context.Context, userID string) ([]domain.Product, error) {
	const op = "WishlistUseCase.List"

	ids, err := w.wishlistRepo.List(ctx, userID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	products := make([]domain.Product, 0, len(ids))
	for _, id := range ids {
		product, ok := w.catalogRepo.GetByID(ctx, id)
		if !ok {
			w.logger.Debugf("dropping orphaned wishlist entry, user_id: %s, product_id: %s", userID, id)
			continue
		}
		products = append(products, *product)
	}

	return products, nil
}
