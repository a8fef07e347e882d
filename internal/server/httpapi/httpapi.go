// Package httpapi serves liveness and readiness checks for the notto server.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/notto/internal/buildinfo"
	"github.com/dmitrijs2005/notto/internal/logging"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

const readyTimeout = 2 * time.Second

type statusBody struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
	Error   string `json:"error,omitempty"`
}

// NewRouter mounts /healthz (process up) and /readyz (database reachable).
func NewRouter(db Pinger, logger logging.Logger) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, logger, http.StatusOK, statusBody{Status: "ok", Version: buildinfo.Version})
	})

	r.Get("/readyz", func(w http.ResponseWriter, req *http.Request) {
		ctx, cancel := context.WithTimeout(req.Context(), readyTimeout)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			logger.Warn(ctx, "readiness check failed", "error", err)
			writeJSON(w, logger, http.StatusServiceUnavailable, statusBody{Status: "unavailable", Error: "database unreachable"})
			return
		}
		writeJSON(w, logger, http.StatusOK, statusBody{Status: "ok"})
	})

	return r
}

func writeJSON(w http.ResponseWriter, logger logging.Logger, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error(context.Background(), "json encode failed", "error", err)
	}
}

// Server runs the health router until ctx is done.
type Server struct {
	srv    *http.Server
	logger logging.Logger
}

func NewServer(address string, db Pinger, logger logging.Logger) *Server {
	l := logger.With("module", "http_server")
	return &Server{
		srv: &http.Server{
			Addr:              address,
			Handler:           NewRouter(db, l),
			ReadHeaderTimeout: 5 * time.Second,
		},
		logger: l,
	}
}

// Run serves until ctx is done, then shuts down with a bounded grace period.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info(ctx, "Starting HTTP server", "address", s.srv.Addr)
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info(ctx, "Stopping HTTP server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.srv.Shutdown(shutdownCtx)
}
