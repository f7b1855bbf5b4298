// Package api provides the read-only HTTP surface over the loaded
// group-definition state.
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-logr/logr"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/installkit/netinstall/internal/model"
)

// StateProvider exposes the loaded state to the API handlers.
type StateProvider interface {
	// Snapshot returns a consistent view of the published records and
	// notification state.
	Snapshot() model.Snapshot
}

// ServerOption configures the API server.
type ServerOption func(*serverConfig)

// serverConfig holds the server configuration
type serverConfig struct {
	middlewares []func(http.Handler) http.Handler
}

// WithMiddlewares adds middleware to the server
func WithMiddlewares(mw ...func(http.Handler) http.Handler) ServerOption {
	return func(cfg *serverConfig) {
		cfg.middlewares = append(cfg.middlewares, mw...)
	}
}

// NewServer creates and configures the HTTP router over the given state
// provider.
func NewServer(provider StateProvider, opts ...ServerOption) *chi.Mux {
	cfg := &serverConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	for _, mw := range cfg.middlewares {
		r.Use(mw)
	}

	r.Get("/health", handleHealth)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/status", handleStatus(provider))
		r.Get("/groups", handleGroups(provider))
	})

	return r
}

// statusResponse reports the load outcome and notification state.
type statusResponse struct {
	// Status is the user-facing failure description; empty means the
	// last attempt did not fail.
	Status string `json:"status"`

	// Ready reports whether data (possibly empty) has been published.
	Ready bool `json:"ready"`

	SidebarLabel string `json:"sidebar_label,omitempty"`
	TitleLabel   string `json:"title_label,omitempty"`
}

// groupsResponse carries the published record sequence.
type groupsResponse struct {
	Groups []map[string]any `json:"groups"`
	Total  int              `json:"total"`
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

func handleStatus(provider StateProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		snap := provider.Snapshot()
		writeJSON(w, statusResponse{
			Status:       snap.StatusDescription,
			Ready:        snap.Ready,
			SidebarLabel: snap.SidebarLabel,
			TitleLabel:   snap.TitleLabel,
		})
	}
}

func handleGroups(provider StateProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		snap := provider.Snapshot()

		resp := groupsResponse{
			Groups: make([]map[string]any, 0, len(snap.Records)),
			Total:  len(snap.Records),
		}
		for _, rec := range snap.Records {
			resp.Groups = append(resp.Groups, rec)
		}
		writeJSON(w, resp)
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}

// LoggingMiddleware logs HTTP requests through the given logger.
func LoggingMiddleware(logger logr.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			logger.Info("http request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start).String(),
			)
		})
	}
}
