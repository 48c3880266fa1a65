package metrics

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
)

// Exporter serves /metrics on a dedicated listener. The client uses it to
// expose cache counters while a long-running command is active.
type Exporter struct {
	srv    *http.Server
	ln     net.Listener
	logger *slog.Logger
	done   chan struct{}
}

// Listen binds addr and starts serving the gatherer in the background.
// A bind error is returned at once.
func Listen(addr string, gatherer prometheus.Gatherer, logger *slog.Logger) (*Exporter, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("failed to listen for metrics on %s: %w", addr, err)
	}

	r := chi.NewRouter()
	r.Method(http.MethodGet, "/metrics", Handler(gatherer))

	e := &Exporter{
		srv: &http.Server{
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
		},
		ln:     ln,
		logger: logger,
		done:   make(chan struct{}),
	}

	go func() {
		defer close(e.done)
		if err := e.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Metrics exporter stopped", "error", err)
		}
	}()

	logger.Info("Serving metrics", "addr", ln.Addr().String())
	return e, nil
}

// Addr actual listen address, useful with port 0
func (e *Exporter) Addr() string {
	return e.ln.Addr().String()
}

// Shutdown stops the exporter and waits for the serve loop to exit
func (e *Exporter) Shutdown(ctx context.Context) error {
	err := e.srv.Shutdown(ctx)
	<-e.done
	return err
}
