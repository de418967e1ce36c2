package usecase

import (
	"context"

	"github.com/DRSN-tech/storefront-backend/internal/domain"
	"github.com/DRSN-tech/storefront-backend/pkg/e"
	"github.com/DRSN-tech/storefront-backend/pkg/logger"
	"github.com/google/uuid"
)

// TryOnUseCase обрабатывает анкеты виртуальной примерки. Обработки
// изображений нет: в ответ уходит статичный рендер на основе
// изображения товара, как и в исходной витрине.
type TryOnUseCase struct {
	tryOnRepo   TryOnRepository
	catalogRepo CatalogRepository
	logger      logger.Logger
}

func NewTryOnUC(tryOnRepo TryOnRepository, catalogRepo CatalogRepository, logger logger.Logger) *TryOnUseCase {
	return &TryOnUseCase{
		tryOnRepo:   tryOnRepo,
		catalogRepo: catalogRepo,
		logger:      logger,
	}
}

// Submit сохраняет анкету примерки и возвращает ссылку на рендер.
func (t *TryOnUseCase) Submit(ctx context.Context, userID string, req *TryOnReq) (*TryOnRes, error) {
	const op = "TryOnUseCase.Submit"

	product, ok := t.catalogRepo.GetByID(ctx, req.ProductID)
	if !ok || product.IsArchived {
		return nil, e.Wrap(op, e.ErrProductNotFound)
	}

	request := domain.NewTryOnRequest(
		uuid.NewString(),
		userID,
		req.ProductID,
		req.HeightCm,
		req.WeightKg,
		req.BodyType,
		req.SkinTone,
		req.SizeLabel,
	)

	if err := t.tryOnRepo.Save(ctx, request); err != nil {
		return nil, e.Wrap(op, err)
	}

	return NewTryOnRes(request.ID, product.ID, product.Image), nil
}

// History возвращает прошлые анкеты пользователя.
func (t *TryOnUseCase) History(ctx context.Context, userID string) ([]domain.TryOnRequest, error) {
	const op = "TryOnUseCase.History"

	requests, err := t.tryOnRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return requests, nil
}
