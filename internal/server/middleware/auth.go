package middleware

import (
	"log/slog"
	"net/http"

	"github.com/iudanet/gophcal/internal/server/handlers"
	"github.com/iudanet/gophcal/internal/server/jwt"
	"github.com/iudanet/gophcal/pkg/api"
)

// AuthMiddleware создает middleware для проверки ID token.
// user_id из токена кладется в контекст запроса.
func AuthMiddleware(logger *slog.Logger, tokens *jwt.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Ожидаем формат: "Bearer <token>"
			tokenString, err := handlers.BearerToken(r)
			if err != nil {
				logger.Warn("Missing or malformed Authorization header", "error", err)
				handlers.WriteError(w, http.StatusUnauthorized, api.ErrCodeInvalidToken, err.Error())
				return
			}

			claims, err := tokens.ValidateIDToken(tokenString)
			if err != nil {
				logger.Warn("Invalid id token", "error", err)
				handlers.WriteError(w, http.StatusUnauthorized, api.ErrCodeInvalidToken, "invalid or expired id token")
				return
			}

			logger.Debug("User authenticated", "user_id", claims.UserID(), "provider", claims.Provider)

			next.ServeHTTP(w, r.WithContext(handlers.WithUserID(r.Context(), claims.UserID())))
		})
	}
}
