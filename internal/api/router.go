package api

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/renato0307/punch/internal/logging"
)

const shutdownTimeout = 5 * time.Second

// RouterConfig configures the HTTP router
type RouterConfig struct {
	RateLimit RateLimitConfig
}

// NewRouter builds the time-tracking HTTP API
func NewRouter(timesheet Timesheet, cfg RouterConfig) *chi.Mux {
	h := &handlers{timesheet: timesheet}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(RateLimit(cfg.RateLimit))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeErrorMessage(w, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeErrorMessage(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	r.Route("/TimeEntry", func(r chi.Router) {
		r.Post("/clockin", h.clockIn)
		r.Post("/clockout", h.clockOut)
		r.Get("/current", h.current)
		r.Get("/entries", h.entries)
	})

	return r
}

// requestLogger logs one line per request through the punch logger
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		logging.Logger.Info("HTTP request",
			"method", r.Method,
			"path", r.URL.Path,
			"user_id", r.URL.Query().Get("userId"),
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()))
	})
}

// Serve runs handler on ln until ctx is canceled, then shuts down gracefully
func Serve(ctx context.Context, ln net.Listener, handler http.Handler) error {
	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	logging.Logger.Info("HTTP API listening", "address", ln.Addr().String())

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	logging.Logger.Info("HTTP API stopped")
	return nil
}
