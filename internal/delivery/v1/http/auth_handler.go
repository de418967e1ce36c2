package http

import (
	"net/http"

	"github.com/DRSN-tech/storefront-backend/internal/usecase"
	"github.com/DRSN-tech/storefront-backend/pkg/logger"
)

type AuthHandler struct {
	authUsecase usecase.AuthUC
	logger      logger.Logger
}

func NewAuthHandler(authUsecase usecase.AuthUC, logger logger.Logger) *AuthHandler {
	return &AuthHandler{authUsecase: authUsecase, logger: logger}
}

// register
//
//	@Summary		Регистрация пользователя
//	@Description	Если имя не указано, используется часть почты до @
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			credentials	body		RegisterRequest	true	"Данные регистрации"
//	@Success		201			{object}	AuthResponse
//	@Failure		409			{object}	ErrorResponse
//	@Router			/auth/register [post]
func (h *AuthHandler) register(w http.ResponseWriter, r *http.Request) {
	var payload RegisterRequest
	if err := decodeJSON(r, &payload); err != nil {
		WriteError(w, err)
		return
	}

	res, err := h.authUsecase.Register(r.Context(), &usecase.RegisterReq{
		Email:    payload.Email,
		Name:     payload.Name,
		Password: payload.Password,
	})
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, toAuthResponse(res))
}

// login
//
//	@Summary	Вход пользователя
//	@Tags		auth
//	@Accept		json
//	@Produce	json
//	@Param		credentials	body		LoginRequest	true	"Почта и пароль"
//	@Success	200			{object}	AuthResponse
//	@Failure	401			{object}	ErrorResponse
//	@Router		/auth/login [post]
func (h *AuthHandler) login(w http.ResponseWriter, r *http.Request) {
	var payload LoginRequest
	if err := decodeJSON(r, &payload); err != nil {
		WriteError(w, err)
		return
	}

	res, err := h.authUsecase.Login(r.Context(), &usecase.LoginReq{
		Email:    payload.Email,
		Password: payload.Password,
	})
	if err != nil {
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toAuthResponse(res))
}

// forgotPassword
//
//	@Summary		Запрос сброса пароля
//	@Description	Всегда отвечает 202, чтобы не раскрывать существование почты
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			email	body	ForgotPasswordRequest	true	"Почта"
//	@Success		202
//	@Router			/auth/forgot-password [post]
func (h *AuthHandler) forgotPassword(w http.ResponseWriter, r *http.Request) {
	var payload ForgotPasswordRequest
	if err := decodeJSON(r, &payload); err != nil {
		WriteError(w, err)
		return
	}

	if err := h.authUsecase.ForgotPassword(r.Context(), payload.Email); err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusAccepted, map[string]string{"status": "accepted"})
}

// resetPassword
//
//	@Summary	Установка нового пароля по токену
//	@Tags		auth
//	@Accept		json
//	@Produce	json
//	@Param		reset	body	ResetPasswordRequest	true	"Токен и новый пароль"
//	@Success	204
//	@Failure	401	{object}	ErrorResponse
//	@Router		/auth/reset-password [post]
func (h *AuthHandler) resetPassword(w http.ResponseWriter, r *http.Request) {
	var payload ResetPasswordRequest
	if err := decodeJSON(r, &payload); err != nil {
		WriteError(w, err)
		return
	}

	if err := h.authUsecase.ResetPassword(r.Context(), payload.Token, payload.NewPassword); err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// profile
//
//	@Summary	Профиль текущего пользователя
//	@Tags		auth
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	UserResponse
//	@Router		/auth/profile [get]
func (h *AuthHandler) profile(w http.ResponseWriter, r *http.Request) {
	user, err := h.authUsecase.GetProfile(r.Context(), userIDFromContext(r.Context()))
	if err != nil {
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toUserResponse(user))
}
