// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package router sets up all HTTP routes and middleware chains for the
// recipe browser.
package router

import (
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"

	"recipebox/internal/handlers"
	"recipebox/internal/middleware"
	"recipebox/internal/visitor"
	"recipebox/web"
)

// Options carries the per-deployment middleware settings.
type Options struct {
	// SecureCookies marks visitor and CSRF cookies Secure (TLS deployments).
	SecureCookies bool
	// Limiter rate-limits state-changing requests. Nil disables limiting.
	Limiter *middleware.RateLimiter
}

// New creates the configured Chi router with all middleware and routes.
func New(recipes *handlers.Recipes, opts Options) chi.Router {
	r := chi.NewRouter()

	// Global middleware, applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.SecureHeaders)
	r.Use(middleware.Visitor(visitor.NewIdentifier(opts.SecureCookies)))
	r.Use(middleware.Logger)

	// Health check, no CSRF.
	r.Get("/health", healthHandler)

	static, err := fs.Sub(web.StaticFS, "static")
	if err == nil {
		r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(static))))
	}

	r.Get("/api/recipes", recipes.API)

	r.Group(func(r chi.Router) {
		r.Use(middleware.NewCSRF(opts.SecureCookies))

		r.Get("/", recipes.Index)
		r.Get("/recipes/{slug}", recipes.Detail)

		r.Group(func(r chi.Router) {
			if opts.Limiter != nil {
				r.Use(opts.Limiter.Middleware)
			}
			r.Post("/favorites/{id}", recipes.ToggleFavorite)
		})
	})

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
