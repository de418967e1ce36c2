package http

import (
	"net/http"

	"github.com/DRSN-tech/storefront-backend/internal/usecase"
	"github.com/DRSN-tech/storefront-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type CartHandler struct {
	cartUsecase usecase.CartUC
	logger      logger.Logger
}

func NewCartHandler(cartUsecase usecase.CartUC, logger logger.Logger) *CartHandler {
	return &CartHandler{cartUsecase: cartUsecase, logger: logger}
}

// getCart
//
//	@Summary	Корзина текущего пользователя
//	@Tags		cart
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	CartResponse
//	@Router		/cart [get]
func (h *CartHandler) getCart(w http.ResponseWriter, r *http.Request) {
	cart, err := h.cartUsecase.GetCart(r.Context(), userIDFromContext(r.Context()))
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toCartResponse(cart))
}

// addToCart
//
//	@Summary		Добавление товара в корзину
//	@Description	Повторное добавление того же товара заменяет количество
//	@Tags			cart
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			line	body		CartLinePayload	true	"Товар и количество"
//	@Success		200		{object}	CartResponse
//	@Failure		404		{object}	ErrorResponse
//	@Router			/cart/items [post]
func (h *CartHandler) addToCart(w http.ResponseWriter, r *http.Request) {
	var payload CartLinePayload
	if err := decodeJSON(r, &payload); err != nil {
		WriteError(w, err)
		return
	}

	cart, err := h.cartUsecase.AddToCart(r.Context(), userIDFromContext(r.Context()),
		usecase.NewCartLineReq(payload.ProductID, payload.Quantity))
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toCartResponse(cart))
}

// updateQuantity
//
//	@Summary		Изменение количества товара в корзине
//	@Description	Количество меньше 1 игнорируется: строка остается без изменений
//	@Tags			cart
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			productID	path		string			true	"ID товара"
//	@Param			line		body		CartLinePayload	true	"Новое количество"
//	@Success		200			{object}	CartResponse
//	@Router			/cart/items/{productID} [put]
func (h *CartHandler) updateQuantity(w http.ResponseWriter, r *http.Request) {
	var payload CartLinePayload
	if err := decodeJSON(r, &payload); err != nil {
		WriteError(w, err)
		return
	}

	cart, err := h.cartUsecase.UpdateQuantity(r.Context(), userIDFromContext(r.Context()),
		chi.URLParam(r, "productID"), payload.Quantity)
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toCartResponse(cart))
}

// removeFromCart
//
//	@Summary		Удаление товара из корзины
//	@Description	Отсутствие товара в корзине не является ошибкой
//	@Tags			cart
//	@Produce		json
//	@Security		BearerAuth
//	@Param			productID	path		string	true	"ID товара"
//	@Success		200			{object}	CartResponse
//	@Router			/cart/items/{productID} [delete]
func (h *CartHandler) removeFromCart(w http.ResponseWriter, r *http.Request) {
	cart, err := h.cartUsecase.RemoveFromCart(r.Context(), userIDFromContext(r.Context()),
		chi.URLParam(r, "productID"))
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toCartResponse(cart))
}
