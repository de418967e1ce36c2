package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/DRSN-tech/storefront-backend/internal/domain"
	"github.com/DRSN-tech/storefront-backend/internal/usecase"
	"github.com/DRSN-tech/storefront-backend/pkg/e"
	"github.com/DRSN-tech/storefront-backend/pkg/logger"
)

type ctxKey string

const claimsKey ctxKey = "claims"

// AuthMiddleware проверяет заголовок Authorization и кладет claims в контекст.
type AuthMiddleware struct {
	tokens usecase.TokenManager
	logger logger.Logger
}

func NewAuthMiddleware(tokens usecase.TokenManager, logger logger.Logger) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens, logger: logger}
}

// Authenticate требует валидный Bearer-токен.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			WriteError(w, e.ErrInvalidToken)
			return
		}

		claims, err := m.tokens.Parse(token)
		if err != nil {
			m.logger.Debugf("token rejected: %v", err)
			WriteError(w, e.ErrInvalidToken)
			return
		}

		ctx := context.WithValue(r.Context(), claimsKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin пускает дальше только пользователей с ролью admin.
// Должен стоять после Authenticate.
func (m *AuthMiddleware) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims := claimsFromContext(r.Context())
		if claims == nil || claims.Role != domain.RoleAdmin {
			WriteError(w, e.ErrForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func claimsFromContext(ctx context.Context) *usecase.TokenClaims {
	claims, _ := ctx.Value(claimsKey).(*usecase.TokenClaims)
	return claims
}

// userIDFromContext возвращает ID аутентифицированного пользователя.
// Пустая строка возможна только при неправильном порядке middleware.
func userIDFromContext(ctx context.Context) string {
	if claims := claimsFromContext(ctx); claims != nil {
		return claims.UserID
	}
	return ""
}
