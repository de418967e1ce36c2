package http

import (
	"net/http"

	"github.com/DRSN-tech/storefront-backend/internal/usecase"
	"github.com/DRSN-tech/storefront-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type WishlistHandler struct {
	wishlistUsecase usecase.WishlistUC
	logger          logger.Logger
}

func NewWishlistHandler(wishlistUsecase usecase.WishlistUC, logger logger.Logger) *WishlistHandler {
	return &WishlistHandler{wishlistUsecase: wishlistUsecase, logger: logger}
}

// list
//
//	@Summary	Список желаемого
//	@Tags		wishlist
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{array}	ProductResponse
//	@Router		/wishlist [get]
func (h *WishlistHandler) list(w http.ResponseWriter, r *http.Request) {
	products, err := h.wishlistUsecase.List(r.Context(), userIDFromContext(r.Context()))
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toArrProductResponse(products))
}

// add
//
//	@Summary	Добавление товара в список желаемого
//	@Tags		wishlist
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		item	body	WishlistPayload	true	"Товар"
//	@Success	204
//	@Failure	404	{object}	ErrorResponse
//	@Router		/wishlist [post]
func (h *WishlistHandler) add(w http.ResponseWriter, r *http.Request) {
	var payload WishlistPayload
	if err := decodeJSON(r, &payload); err != nil {
		WriteError(w, err)
		return
	}

	if err := h.wishlistUsecase.Add(r.Context(), userIDFromContext(r.Context()), payload.ProductID); err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// remove
//
//	@Summary	Удаление товара из списка желаемого
//	@Tags		wishlist
//	@Produce	json
//	@Security	BearerAuth
//	@Param		productID	path	string	true	"ID товара"
//	@Success	204
//	@Router		/wishlist/{productID} [delete]
func (h *WishlistHandler) remove(w http.ResponseWriter, r *http.Request) {
	if err := h.wishlistUsecase.Remove(r.Context(), userIDFromContext(r.Context()), chi.URLParam(r, "productID")); err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
