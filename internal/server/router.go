package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/iudanet/gophcal/internal/metrics"
	"github.com/iudanet/gophcal/internal/server/handlers"
	"github.com/iudanet/gophcal/internal/server/jwt"
	"github.com/iudanet/gophcal/internal/server/middleware"
	"github.com/iudanet/gophcal/internal/server/storage"
)

// RouterDeps зависимости NewRouter
type RouterDeps struct {
	Logger *slog.Logger

	// хранилище
	Users  storage.UserStorage
	Tokens storage.TokenStorage
	Events storage.EventStorage
	DB     handlers.Pinger

	// авторизация
	JWT   *jwt.Service
	Kakao handlers.KakaoAPI

	// middleware
	RateLimiter     *middleware.RateLimiter
	AuthRateLimiter *middleware.RateLimiter
	Metrics         metrics.HTTPRecorder
	Gatherer        prometheus.Gatherer

	Version string
}

// NewRouter собирает маршруты API.
//
// Порядок middleware:
//
//	RequestID -> Recovery -> Logging -> Metrics -> RateLimit -> Auth (только /users/{uid}/events)
func NewRouter(deps *RouterDeps) http.Handler {
	r := chi.NewRouter()

	recorder := deps.Metrics
	if recorder == nil {
		recorder = metrics.Nop{}
	}

	r.Use(chimw.RequestID)
	r.Use(middleware.RecoveryMiddleware(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger, middleware.LoggingOptions{
		SkipPaths: []string{"/metrics", "/api/v1/health"},
	}))
	r.Use(middleware.MetricsMiddleware(recorder))

	authHandler := handlers.NewAuthHandler(deps.Logger, deps.Users, deps.Tokens, deps.JWT)
	eventsHandler := handlers.NewEventsHandler(deps.Logger, deps.Events)
	kakaoHandler := handlers.NewKakaoHandler(deps.Logger, deps.Kakao, deps.Users, deps.JWT)
	healthHandler := handlers.NewHealthHandler(deps.Logger, deps.DB, deps.Version)

	if deps.Gatherer != nil {
		r.Method(http.MethodGet, "/metrics", metrics.Handler(deps.Gatherer))
	}
	r.Get("/api/v1/health", healthHandler.Health)

	// --- вход и выпуск токенов: строгий лимит ---
	r.Group(func(r chi.Router) {
		if deps.AuthRateLimiter != nil {
			r.Use(deps.AuthRateLimiter.Middleware())
		}

		r.Route("/api/v1/auth", func(r chi.Router) {
			r.Post("/signup", authHandler.SignUp)
			r.Post("/signin", authHandler.SignIn)
			r.Post("/custom", authHandler.CustomSignIn)
			r.Post("/refresh", authHandler.Refresh)
			r.Post("/signout", authHandler.SignOut)
		})

		r.Post("/createCustomToken", kakaoHandler.CreateCustomToken)
	})

	// --- общий лимит ---
	r.Group(func(r chi.Router) {
		if deps.RateLimiter != nil {
			r.Use(deps.RateLimiter.Middleware())
		}

		r.Get("/getKakaoUserInfo", kakaoHandler.GetKakaoUserInfo)

		r.Route("/api/v1/users/{uid}/events", func(r chi.Router) {
			r.Use(middleware.AuthMiddleware(deps.Logger, deps.JWT))

			r.Get("/", eventsHandler.List)
			r.Post("/", eventsHandler.Create)
			r.Delete("/{id}", eventsHandler.Delete)
		})
	})

	return r
}
