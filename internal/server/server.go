// Package server собирает HTTP сервер календаря: маршруты, middleware,
// корректное завершение и фоновую очистку просроченных refresh tokens.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/iudanet/gophcal/internal/server/storage"
)

// Config параметры HTTP сервера
type Config struct {
	Addr                 string
	ReadTimeout          time.Duration
	WriteTimeout         time.Duration
	ShutdownTimeout      time.Duration
	TokenCleanupInterval time.Duration
}

// Server HTTP сервер с корректным завершением
type Server struct {
	logger     *slog.Logger
	httpServer *http.Server
	tokens     storage.TokenStorage
	cfg        Config
}

// New создает сервер
func New(cfg Config, handler http.Handler, tokens storage.TokenStorage, logger *slog.Logger) *Server {
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = 10 * time.Second
	}
	return &Server{
		logger: logger,
		tokens: tokens,
		cfg:    cfg,
		httpServer: &http.Server{
			Addr:              cfg.Addr,
			Handler:           handler,
			ReadTimeout:       cfg.ReadTimeout,
			ReadHeaderTimeout: 5 * time.Second,
			WriteTimeout:      cfg.WriteTimeout,
			IdleTimeout:       60 * time.Second,
		},
	}
}

// Run слушает cfg.Addr до отмены ctx
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.cfg.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve обслуживает запросы на ln. После отмены ctx новые соединения не
// принимаются, активные запросы дорабатывают в пределах ShutdownTimeout.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	serveErr := make(chan error, 1)
	go func() {
		s.logger.Info("HTTP server starting", "addr", ln.Addr().String())
		serveErr <- s.httpServer.Serve(ln)
	}()

	cleanupCtx, stopCleanup := context.WithCancel(ctx)
	defer stopCleanup()
	if s.tokens != nil && s.cfg.TokenCleanupInterval > 0 {
		go s.cleanupTokens(cleanupCtx)
	}

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server failed: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down HTTP server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	s.logger.Info("HTTP server stopped gracefully")
	return nil
}

// cleanupTokens периодически удаляет просроченные refresh tokens
func (s *Server) cleanupTokens(ctx context.Context) {
	ticker := time.NewTicker(s.cfg.TokenCleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			deleted, err := s.tokens.PurgeExpiredTokens(ctx, time.Now())
			if err != nil {
				if ctx.Err() == nil {
					s.logger.Error("Failed to delete expired tokens", "error", err)
				}
				continue
			}
			if deleted > 0 {
				s.logger.Info("Expired refresh tokens deleted", "count", deleted)
			}
		}
	}
}
