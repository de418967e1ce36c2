package usecase

import (
	"context"
	"strings"

	"github.com/DRSN-tech/storefront-backend/internal/domain"
	"github.com/DRSN-tech/storefront-backend/pkg/e"
	"github.com/DRSN-tech/storefront-backend/pkg/logger"
	"github.com/google/uuid"
)

// CatalogUseCase реализует бизнес-логику каталога: витрину, поиск
// и административное управление товарами. Витрина и админка работают
// с одним и тем же хранилищем каталога.
type CatalogUseCase struct {
	catalogRepo CatalogRepository
	imagesInfra ImagesInfra
	logger      logger.Logger
}

func NewCatalogUC(catalogRepo CatalogRepository, imagesInfra ImagesInfra, logger logger.Logger) *CatalogUseCase {
	return &CatalogUseCase{
		catalogRepo: catalogRepo,
		imagesInfra: imagesInfra,
		logger:      logger,
	}
}

// GetProduct возвращает товар по идентификатору. Архивные товары для витрины не существуют.
func (c *CatalogUseCase) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	const op = "CatalogUseCase.GetProduct"

	product, ok := c.catalogRepo.GetByID(ctx, id)
	if !ok || product.IsArchived {
		return nil, e.Wrap(op, e.ErrProductNotFound)
	}

	return product, nil
}

// ListProducts возвращает товары категории в порядке добавления в каталог.
// Пустая категория означает всю витрину. Неизвестная категория — пустой список, не ошибка.
func (c *CatalogUseCase) ListProducts(ctx context.Context, category string) ([]domain.Product, error) {
	if category == "" {
		all := c.catalogRepo.List(ctx)
		result := make([]domain.Product, 0, len(all))
		for _, p := range all {
			if !p.IsArchived {
				result = append(result, p)
			}
		}
		return result, nil
	}

	return c.catalogRepo.GetByCategory(ctx, category), nil
}

// Search выполняет поиск по подстроке без учета регистра по пяти полям товара.
// Пустой или пробельный запрос означает "поиск не активен" и возвращает пустой
// список: вызывающая сторона полагается на это, чтобы не отрисовывать результаты.
func (c *CatalogUseCase) Search(ctx context.Context, query string) ([]domain.Product, error) {
	if strings.TrimSpace(query) == "" {
		return []domain.Product{}, nil
	}

	return c.catalogRepo.Search(ctx, query), nil
}

// CreateProduct добавляет новый товар из админки: валидация, загрузка
// изображений в MinIO и сохранение в каталог. При ошибке сохранения
// загруженные изображения зачищаются в фоне.
func (c *CatalogUseCase) CreateProduct(ctx context.Context, req *SaveProductReq) (*domain.Product, error) {
	const op = "CatalogUseCase.CreateProduct"

	if err := c.validateProduct(req); err != nil {
		return nil, e.Wrap(op, err)
	}

	product := domain.NewProduct(
		uuid.NewString(),
		req.Name,
		req.Brand,
		req.Description,
		domain.Category(req.Category),
		req.Subcategory,
		req.Price,
	)
	product.Rating = req.Rating
	product.Sizes = req.Sizes
	product.Colors = req.Colors
	product.Image = "/placeholder.svg"

	var uploadedKeys []string
	if len(req.Images) > 0 {
		imagesRes, err := c.imagesInfra.UploadImages(ctx, NewUploadImagesReq(req.Name, req.Images))
		if err != nil {
			return nil, e.Wrap(op, err)
		}
		uploadedKeys = imagesRes.ImagesKeys
		product.Image = c.imagesInfra.PublicURL(uploadedKeys[0])
	}

	if err := c.catalogRepo.Create(ctx, product); err != nil {
		if len(uploadedKeys) > 0 {
			c.logger.Warnf("Cleaning up orphaned images after catalog failure. product_name: %s", req.Name)
			c.imagesInfra.CleanupImages(uploadedKeys)
		}
		return nil, e.Wrap(op, err)
	}

	return product, nil
}

// UpdateProduct обновляет существующий товар из админки.
func (c *CatalogUseCase) UpdateProduct(ctx context.Context, id string, req *SaveProductReq) (*domain.Product, error) {
	const op = "CatalogUseCase.UpdateProduct"

	if err := c.validateProduct(req); err != nil {
		return nil, e.Wrap(op, err)
	}

	product, ok := c.catalogRepo.GetByID(ctx, id)
	if !ok {
		return nil, e.Wrap(op, e.ErrProductNotFound)
	}

	product.Name = req.Name
	product.Brand = req.Brand
	product.Description = req.Description
	product.Category = domain.Category(req.Category)
	product.Subcategory = req.Subcategory
	product.Price = req.Price
	product.Rating = req.Rating
	product.Sizes = req.Sizes
	product.Colors = req.Colors

	if len(req.Images) > 0 {
		imagesRes, err := c.imagesInfra.UploadImages(ctx, NewUploadImagesReq(req.Name, req.Images))
		if err != nil {
			return nil, e.Wrap(op, err)
		}
		product.Image = c.imagesInfra.PublicURL(imagesRes.ImagesKeys[0])
	}

	if err := c.catalogRepo.Update(ctx, product); err != nil {
		return nil, e.Wrap(op, err)
	}

	return product, nil
}

// ArchiveProduct помечает товар архивным вместо физического удаления:
// ссылки из старых заказов и корзин остаются валидными, а витрина и поиск
// товар больше не видят.
func (c *CatalogUseCase) ArchiveProduct(ctx context.Context, id string) error {
	const op = "CatalogUseCase.ArchiveProduct"

	if err := c.catalogRepo.Archive(ctx, id); err != nil {
		return e.Wrap(op, err)
	}

	return nil
}

// validateProduct проверяет корректность входных данных запроса админки.
func (c *CatalogUseCase) validateProduct(req *SaveProductReq) error {
	if strings.TrimSpace(req.Name) == "" {
		return e.ErrProductNameRequired
	}

	if !domain.ValidCategory(req.Category) {
		return e.ErrUnknownCategory
	}

	if req.Price < 0 {
		return e.ErrInvalidPrice
	}

	// Рейтинг опционален: ноль означает "не задан".
	if req.Rating != 0 && (req.Rating < 1.0 || req.Rating > 5.0) {
		return e.ErrInvalidRating
	}

	return nil
}
