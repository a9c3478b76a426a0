// Package httpapi is the HTTP adapter exposing the activity registry.
package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"mergington/internal/config"
	"mergington/internal/ports/input"
	"mergington/internal/ports/output"
)

const shutdownTimeout = 10 * time.Second

// Server hosts the activities API.
type Server struct {
	log  *zap.Logger
	http *http.Server
}

// NewServer wires the handler and middleware into an http.Server listening
// on the configured address.
func NewServer(cfg *config.Config, registry input.RegistryUseCase, translator output.T, log *zap.Logger) *Server {
	h := NewHandler(registry, translator, log)
	handler := withRequestLogging(log, withMetrics(newRouter(h)))
	return &Server{
		log: log,
		http: &http.Server{
			Addr:              cfg.ListenAddr,
			Handler:           handler,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

func newRouter(h *Handler) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /activities", h.ListActivities)
	mux.HandleFunc("POST /activities/{name}/signup", h.Signup)
	mux.HandleFunc("DELETE /activities/{name}/unregister", h.Unregister)
	mux.HandleFunc("GET /healthz", h.Health)
	mux.HandleFunc("GET /{$}", h.Root)
	mux.Handle("GET /metrics", promhttp.Handler())
	return mux
}

// Start runs the server until SIGINT/SIGTERM, then shuts down gracefully.
func (s *Server) Start() error {
	errCh := make(chan error, 1)
	go func() {
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	s.log.Info("server listening", zap.String("addr", s.http.Addr))

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("serve: %w", err)
	case <-stop:
	}

	s.log.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.http.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
