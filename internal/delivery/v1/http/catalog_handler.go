package http

import (
	"net/http"

	"github.com/DRSN-tech/storefront-backend/internal/usecase"
	"github.com/DRSN-tech/storefront-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type CatalogHandler struct {
	catalogUsecase usecase.CatalogUC
	logger         logger.Logger
}

func NewCatalogHandler(catalogUsecase usecase.CatalogUC, logger logger.Logger) *CatalogHandler {
	return &CatalogHandler{catalogUsecase: catalogUsecase, logger: logger}
}

// listProducts
//
//	@Summary		Список товаров витрины
//	@Description	Возвращает товары в порядке каталога, опционально отфильтрованные по категории
//	@Tags			catalog
//	@Produce		json
//	@Param			category	query		string	false	"Категория (fashion, cosmetics, accessories)"
//	@Success		200			{array}		ProductResponse
//	@Router			/products [get]
func (h *CatalogHandler) listProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.catalogUsecase.ListProducts(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toArrProductResponse(products))
}

// getProduct
//
//	@Summary	Карточка товара
//	@Tags		catalog
//	@Produce	json
//	@Param		id	path		string	true	"ID товара"
//	@Success	200	{object}	ProductResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/products/{id} [get]
func (h *CatalogHandler) getProduct(w http.ResponseWriter, r *http.Request) {
	product, err := h.catalogUsecase.GetProduct(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toProductResponse(product))
}

// searchProducts
//
//	@Summary		Поиск по каталогу
//	@Description	Подстрочный поиск без учета регистра по названию, бренду, описанию и категориям
//	@Tags			catalog
//	@Produce		json
//	@Param			q	query		string	true	"Поисковый запрос"
//	@Success		200	{array}		ProductResponse
//	@Router			/products/search [get]
func (h *CatalogHandler) searchProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.catalogUsecase.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toArrProductResponse(products))
}
