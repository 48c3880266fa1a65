package middleware

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// statusRecorder запоминает статус и размер ответа
type statusRecorder struct {
	http.ResponseWriter
	statusCode int
	written    int64
}

// wrapResponseWriter не оборачивает повторно: logging и metrics делят один recorder
func wrapResponseWriter(w http.ResponseWriter) *statusRecorder {
	if rw, ok := w.(*statusRecorder); ok {
		return rw
	}
	return &statusRecorder{ResponseWriter: w, statusCode: http.StatusOK}
}

func (rw *statusRecorder) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *statusRecorder) Write(b []byte) (int, error) {
	n, err := rw.ResponseWriter.Write(b)
	rw.written += int64(n)
	return n, err
}

// LoggingOptions настройки журнала запросов
type LoggingOptions struct {
	SkipPaths []string // например health check и /metrics
}

// RequestLogger пишет одну запись на запрос. Уровень зависит от статуса:
// 5xx ERROR, 4xx WARN, остальное INFO. Идентификатор пользователя в пути
// маскируется, заголовки и тело не логируются.
func RequestLogger(logger *slog.Logger, opts LoggingOptions) func(http.Handler) http.Handler {
	skip := make(map[string]struct{}, len(opts.SkipPaths))
	for _, p := range opts.SkipPaths {
		skip[p] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := skip[r.URL.Path]; ok {
				next.ServeHTTP(w, r)
				return
			}

			start := time.Now()
			rec := wrapResponseWriter(w)
			next.ServeHTTP(rec, r)

			attrs := []slog.Attr{
				slog.String("method", r.Method),
				slog.String("path", maskUserID(r.URL.Path)),
				slog.Int("status", rec.statusCode),
				slog.Duration("duration", time.Since(start)),
				slog.Int64("bytes", rec.written),
				slog.String("client_ip", getClientIP(r)),
			}
			if id := chimw.GetReqID(r.Context()); id != "" {
				attrs = append(attrs, slog.String("request_id", id))
			}

			logger.LogAttrs(r.Context(), levelFor(rec.statusCode), "HTTP request", attrs...)
		})
	}
}

func levelFor(status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}

// maskUserID /api/v1/users/{uid}/events/{id} -> /api/v1/users/***/events/{id}
func maskUserID(path string) string {
	head, rest, found := strings.Cut(path, "/users/")
	if !found || rest == "" {
		return path
	}
	_, tail, hasTail := strings.Cut(rest, "/")
	if !hasTail {
		return head + "/users/***"
	}
	return head + "/users/***/" + tail
}
