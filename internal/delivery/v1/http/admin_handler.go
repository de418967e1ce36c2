package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/DRSN-tech/storefront-backend/internal/usecase"
	"github.com/DRSN-tech/storefront-backend/pkg/e"
	"github.com/DRSN-tech/storefront-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
)

// AdminHandler обслуживает административный CRUD каталога.
// Товар приходит как multipart/form-data: поля формы плюс изображения.
type AdminHandler struct {
	catalogUsecase usecase.CatalogUC
	logger         logger.Logger
}

func NewAdminHandler(catalogUsecase usecase.CatalogUC, logger logger.Logger) *AdminHandler {
	return &AdminHandler{catalogUsecase: catalogUsecase, logger: logger}
}

// createProduct
//
//	@Summary		Создание товара
//	@Tags			admin
//	@Accept			multipart/form-data
//	@Produce		json
//	@Security		BearerAuth
//	@Param			name		formData	string	true	"Название товара"
//	@Param			brand		formData	string	false	"Бренд"
//	@Param			description	formData	string	false	"Описание"
//	@Param			category	formData	string	true	"Категория"
//	@Param			subcategory	formData	string	false	"Подкатегория"
//	@Param			price		formData	number	true	"Цена (59.99)"
//	@Param			rating		formData	number	false	"Рейтинг 1.0-5.0"
//	@Param			sizes		formData	string	false	"Размеры через запятую"
//	@Param			colors		formData	string	false	"Цвета через запятую"
//	@Param			images		formData	file	false	"Изображения товара"
//	@Success		201			{object}	ProductResponse
//	@Failure		400			{object}	ErrorResponse
//	@Failure		403			{object}	ErrorResponse
//	@Router			/admin/products [post]
func (h *AdminHandler) createProduct(w http.ResponseWriter, r *http.Request) {
	req, err := h.parseSaveProductForm(w, r)
	if err != nil {
		h.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return
	}

	product, err := h.catalogUsecase.CreateProduct(r.Context(), req)
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, toProductResponse(product))
}

// updateProduct
//
//	@Summary	Обновление товара
//	@Tags		admin
//	@Accept		multipart/form-data
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		string	true	"ID товара"
//	@Success	200	{object}	ProductResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/admin/products/{id} [put]
func (h *AdminHandler) updateProduct(w http.ResponseWriter, r *http.Request) {
	req, err := h.parseSaveProductForm(w, r)
	if err != nil {
		h.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return
	}

	product, err := h.catalogUsecase.UpdateProduct(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toProductResponse(product))
}

// archiveProduct
//
//	@Summary		Архивация товара
//	@Description	Товар скрывается с витрины, но остается в истории заказов
//	@Tags			admin
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path	string	true	"ID товара"
//	@Success		204
//	@Failure		404	{object}	ErrorResponse
//	@Router			/admin/products/{id} [delete]
func (h *AdminHandler) archiveProduct(w http.ResponseWriter, r *http.Request) {
	if err := h.catalogUsecase.ArchiveProduct(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *AdminHandler) parseSaveProductForm(w http.ResponseWriter, r *http.Request) (*usecase.SaveProductReq, error) {
	const (
		maxTotalRequestSize = 150 << 20
		maxMemory           = 32 << 20
	)

	r.Body = http.MaxBytesReader(w, r.Body, maxTotalRequestSize)

	if err := ensureMultipartForm(r, maxMemory); err != nil {
		return nil, err
	}

	priceCents, err := parsePriceToCents(r.FormValue("price"))
	if err != nil {
		return nil, err
	}

	var rating float64
	if ratingStr := r.FormValue("rating"); ratingStr != "" {
		rating, err = strconv.ParseFloat(ratingStr, 64)
		if err != nil {
			return nil, e.ErrInvalidRating
		}
	}

	var images []usecase.ProductImage
	if files := r.MultipartForm.File["images"]; len(files) > 0 {
		images, err = parseImages(files)
		if err != nil && !errors.Is(err, e.ErrNoImages) {
			return nil, err
		}
	}

	return &usecase.SaveProductReq{
		Name:        r.FormValue("name"),
		Brand:       r.FormValue("brand"),
		Description: r.FormValue("description"),
		Category:    r.FormValue("category"),
		Subcategory: r.FormValue("subcategory"),
		Price:       priceCents,
		Rating:      rating,
		Sizes:       splitCommaList(r.FormValue("sizes")),
		Colors:      splitCommaList(r.FormValue("colors")),
		Images:      images,
	}, nil
}

// splitCommaList разбирает список через запятую, отбрасывая пустые элементы.
func splitCommaList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
