package http

import (
	"net/http"

	"github.com/DRSN-tech/storefront-backend/internal/usecase"
	"github.com/DRSN-tech/storefront-backend/pkg/logger"
)

type CheckoutHandler struct {
	checkoutUsecase usecase.CheckoutUC
	logger          logger.Logger
}

func NewCheckoutHandler(checkoutUsecase usecase.CheckoutUC, logger logger.Logger) *CheckoutHandler {
	return &CheckoutHandler{checkoutUsecase: checkoutUsecase, logger: logger}
}

// shippingOptions
//
//	@Summary	Способы доставки
//	@Tags		checkout
//	@Produce	json
//	@Success	200	{array}	ShippingOptionResponse
//	@Router		/checkout/shipping-options [get]
func (h *CheckoutHandler) shippingOptions(w http.ResponseWriter, r *http.Request) {
	options := h.checkoutUsecase.ShippingOptions()

	result := make([]ShippingOptionResponse, 0, len(options))
	for _, opt := range options {
		result = append(result, toShippingOptionResponse(opt))
	}

	WriteSuccess(w, http.StatusOK, result)
}

// paymentMethods
//
//	@Summary	Способы оплаты
//	@Tags		checkout
//	@Produce	json
//	@Success	200	{array}	PaymentMethodResponse
//	@Router		/checkout/payment-methods [get]
func (h *CheckoutHandler) paymentMethods(w http.ResponseWriter, r *http.Request) {
	methods := h.checkoutUsecase.PaymentMethods()

	result := make([]PaymentMethodResponse, 0, len(methods))
	for _, m := range methods {
		result = append(result, PaymentMethodResponse{ID: m.ID, Name: m.Name})
	}

	WriteSuccess(w, http.StatusOK, result)
}

// placeOrder
//
//	@Summary		Оформление заказа
//	@Description	Создает заказ из текущей корзины и очищает её
//	@Tags			checkout
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			order	body		PlaceOrderRequest	true	"Параметры заказа"
//	@Success		201		{object}	OrderResponse
//	@Failure		400		{object}	ErrorResponse
//	@Router			/orders [post]
func (h *CheckoutHandler) placeOrder(w http.ResponseWriter, r *http.Request) {
	var payload PlaceOrderRequest
	if err := decodeJSON(r, &payload); err != nil {
		WriteError(w, err)
		return
	}

	order, err := h.checkoutUsecase.PlaceOrder(r.Context(), userIDFromContext(r.Context()), &usecase.PlaceOrderReq{
		PaymentMethod:    payload.PaymentMethod,
		ShippingOptionID: payload.ShippingOptionID,
		Address:          toDomainAddress(payload.Address),
	})
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, toOrderResponse(order))
}

// listOrders
//
//	@Summary	История заказов пользователя
//	@Tags		checkout
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{array}	OrderResponse
//	@Router		/orders [get]
func (h *CheckoutHandler) listOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.checkoutUsecase.ListOrders(r.Context(), userIDFromContext(r.Context()))
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toArrOrderResponse(orders))
}
