package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/iudanet/gophcal/internal/server/handlers"
	"github.com/iudanet/gophcal/pkg/api"
)

// RecoveryMiddleware превращает панику обработчика в 500 с телом api.ErrorResponse.
// http.ErrAbortHandler пробрасывается дальше: net/http обрывает соединение.
func RecoveryMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rvr := recover()
				if rvr == nil {
					return
				}
				if rvr == http.ErrAbortHandler {
					panic(rvr)
				}

				logger.Error("Panic recovered",
					"panic", rvr,
					"method", r.Method,
					"path", maskUserID(r.URL.Path),
					"request_id", chimw.GetReqID(r.Context()),
					"stack", string(debug.Stack()),
				)

				// детали паники клиенту не отдаем
				handlers.WriteError(w, http.StatusInternalServerError, api.ErrCodeInternal, "internal server error")
			}()

			next.ServeHTTP(w, r)
		})
	}
}
