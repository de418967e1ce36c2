package http

import (
	"net/http"
	"time"

	"github.com/DRSN-tech/storefront-backend/internal/domain"
	"github.com/DRSN-tech/storefront-backend/internal/usecase"
	"github.com/DRSN-tech/storefront-backend/pkg/logger"
)

type TryOnHandler struct {
	tryOnUsecase usecase.TryOnUC
	logger       logger.Logger
}

func NewTryOnHandler(tryOnUsecase usecase.TryOnUC, logger logger.Logger) *TryOnHandler {
	return &TryOnHandler{tryOnUsecase: tryOnUsecase, logger: logger}
}

type tryOnHistoryItem struct {
	RequestID string    `json:"request_id"`
	ProductID string    `json:"product_id"`
	HeightCm  int       `json:"height_cm"`
	WeightKg  int       `json:"weight_kg"`
	BodyType  string    `json:"body_type"`
	SkinTone  string    `json:"skin_tone"`
	SizeLabel string    `json:"size_label"`
	CreatedAt time.Time `json:"created_at"`
}

// submit
//
//	@Summary		Виртуальная примерка
//	@Description	Принимает анкету и возвращает ссылку на рендер товара
//	@Tags			try-on
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		TryOnPayload	true	"Анкета примерки"
//	@Success		200		{object}	TryOnResponse
//	@Failure		404		{object}	ErrorResponse
//	@Router			/try-on [post]
func (h *TryOnHandler) submit(w http.ResponseWriter, r *http.Request) {
	var payload TryOnPayload
	if err := decodeJSON(r, &payload); err != nil {
		WriteError(w, err)
		return
	}

	res, err := h.tryOnUsecase.Submit(r.Context(), userIDFromContext(r.Context()), &usecase.TryOnReq{
		ProductID: payload.ProductID,
		HeightCm:  payload.HeightCm,
		WeightKg:  payload.WeightKg,
		BodyType:  payload.BodyType,
		SkinTone:  payload.SkinTone,
		SizeLabel: payload.SizeLabel,
	})
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, TryOnResponse{
		RequestID: res.RequestID,
		ProductID: res.ProductID,
		RenderURL: res.RenderURL,
	})
}

// history
//
//	@Summary	История примерок пользователя
//	@Tags		try-on
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{array}	tryOnHistoryItem
//	@Router		/try-on/history [get]
func (h *TryOnHandler) history(w http.ResponseWriter, r *http.Request) {
	requests, err := h.tryOnUsecase.History(r.Context(), userIDFromContext(r.Context()))
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toArrTryOnHistory(requests))
}

func toArrTryOnHistory(requests []domain.TryOnRequest) []tryOnHistoryItem {
	result := make([]tryOnHistoryItem, 0, len(requests))
	for _, req := range requests {
		result = append(result, tryOnHistoryItem{
			RequestID: req.ID,
			ProductID: req.ProductID,
			HeightCm:  req.HeightCm,
			WeightKg:  req.WeightKg,
			BodyType:  req.BodyType,
			SkinTone:  req.SkinTone,
			SizeLabel: req.SizeLabel,
			CreatedAt: req.CreatedAt,
		})
	}
	return result
}
