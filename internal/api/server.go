// Package api serves the dashboard JSON API over HTTP.
package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/huangsam/moodtrack/internal/contract"
)

// maxBodyBytes caps POST bodies; a check-in is a few hundred bytes.
const maxBodyBytes = 64 << 10

// Server holds the dependencies shared by the handlers.
type Server struct {
	baseCfg *contract.Config
	mgr     contract.StoreManager
	now     func() time.Time
}

// NewServer creates the API handlers over the given store.
func NewServer(baseCfg *contract.Config, mgr contract.StoreManager) *Server {
	return &Server{baseCfg: baseCfg, mgr: mgr, now: time.Now}
}

// Router wires middleware and routes.
// Middleware order: RequestID, RealIP, request log, Recoverer.
func (s *Server) Router(logger *slog.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(NewSlogLogger(logger))
	r.Use(chimiddleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Route("/api", func(r chi.Router) {
		r.Get("/entries", s.handleListEntries)
		r.With(NewMaxBodySizeHandler(maxBodyBytes)).Post("/entries", s.handleCreateEntry)
		r.Get("/trend", s.handleTrend)
		r.Get("/summary", s.handleSummary)
		r.Get("/overview", s.handleOverview)
	})
	return r
}

// ListenAndServe runs the API until ctx is cancelled, then drains in-flight
// requests for up to 15 seconds.
func ListenAndServe(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager, logger *slog.Logger) error {
	srv := &http.Server{
		Addr:         cfg.Listen,
		Handler:      NewServer(cfg, mgr).Router(logger),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", "addr", srv.Addr, "backend", cfg.DBBackend)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	logger.Info("server stopped")
	return nil
}
