// Package server exposes the store CRUD and shipping resolution endpoints.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/tournevent/storelocator/internal/storage"
	"github.com/tournevent/storelocator/internal/telemetry"
	"github.com/tournevent/storelocator/pkg/locator"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

// Server is the HTTP server for the store locator service.
type Server struct {
	port         int
	repo         storage.Repository
	orchestrator *locator.Orchestrator
	logger       *otelzap.Logger
	metrics      *telemetry.Metrics

	defaultLimit    int64
	shippingTimeout time.Duration
}

// Config holds server configuration.
type Config struct {
	Port             int
	DefaultPageLimit int64
	ShippingTimeout  time.Duration
}

// New creates a new server instance.
func New(cfg Config, repo storage.Repository, orchestrator *locator.Orchestrator, logger *otelzap.Logger) *Server {
	if cfg.DefaultPageLimit <= 0 {
		cfg.DefaultPageLimit = 10
	}
	if cfg.ShippingTimeout <= 0 {
		cfg.ShippingTimeout = 30 * time.Second
	}

	return &Server{
		port:            cfg.Port,
		repo:            repo,
		orchestrator:    orchestrator,
		logger:          logger,
		metrics:         telemetry.NewMetrics(),
		defaultLimit:    cfg.DefaultPageLimit,
		shippingTimeout: cfg.ShippingTimeout,
	}
}

// Handler builds the route table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", s.handleHealth)
	mux.Handle("GET /metrics", promhttp.Handler())

	mux.HandleFunc("POST /api/v1/store", s.handleCreateStore)
	mux.HandleFunc("PUT /api/v1/store/{id}", s.handleUpdateStore)
	mux.HandleFunc("DELETE /api/v1/store/{id}", s.handleDeleteStore)

	mux.HandleFunc("GET /api/v1/store", s.handleListStores)
	mux.HandleFunc("GET /api/v1/store/{id}", s.handleGetStore)
	mux.HandleFunc("GET /api/v1/store/state/{state}", s.handleStoresByState)
	mux.HandleFunc("GET /api/v1/store/shipping/{postalCode}", s.handleStoreShipping)

	return s.withCorrelationID(mux)
}

// Run starts the HTTP server and blocks until context is cancelled.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", s.port),
		Handler:      s.Handler(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Starting server", zap.Int("port", s.port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"service": "storelocator",
	})
}
