// Package router sets up the HTTP routes and middleware chains for the
// gallery server. The feed endpoints sit behind a rate limiter; static
// assets are served straight from the embedded filesystem.
package router

import (
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"

	"scrollery/internal/handlers"
	"scrollery/internal/middleware"
)

// New creates and returns the configured Chi router with all middleware
// and routes wired up.
func New(gallery *handlers.Gallery, limiter *middleware.RateLimiter, static fs.FS) chi.Router {
	r := chi.NewRouter()

	// Global middleware — applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)

	// Health check.
	r.Get("/health", healthHandler)

	// Shell — cheap cached render, no rate limit.
	r.Get("/", gallery.Index)

	// Feed endpoints — driven by client-side intersection observers and
	// clicks, so a runaway client gets throttled here.
	r.Group(func(r chi.Router) {
		r.Use(limiter.Middleware)
		r.Get("/more", gallery.More)
		r.Get("/modal/open", gallery.Modal)
	})

	// Static assets (stylesheets).
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(static))))

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
