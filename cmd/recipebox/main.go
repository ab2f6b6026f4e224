// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package main is the entry point for the recipebox web server.
// It loads configuration, connects to services, sets up routing, and starts
// the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/text/language"

	"recipebox/internal/app"
	"recipebox/internal/cache"
	"recipebox/internal/config"
	"recipebox/internal/favorites"
	"recipebox/internal/handlers"
	"recipebox/internal/middleware"
	"recipebox/internal/query"
	"recipebox/internal/render"
	"recipebox/internal/router"
)

func main() {
	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.SetDefault(app.NewLogger(cfg, os.Stdout))
	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
		"recipe_source", cfg.RecipeSource,
		"favorites_backend", cfg.FavoritesBackend,
	)

	ctx := context.Background()

	source, closeCatalog, err := app.OpenCatalog(ctx, cfg)
	if err != nil {
		slog.Error("failed to open recipe catalog", "error", err)
		os.Exit(1)
	}
	defer closeCatalog()

	// Valkey backs per-visitor favorites and the recipe page cache. Without
	// it favorites live in memory and pages are rendered on every request.
	var (
		favs      favorites.Scoped = favorites.NewMemoryScoped()
		pageCache *cache.PageCache
		valkey    *redis.Client
	)
	if cfg.UsesValkey() {
		valkey, err = cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
		if err != nil {
			slog.Error("failed to connect to valkey", "error", err)
			os.Exit(1)
		}
		defer valkey.Close()

		favs = favorites.NewValkey(valkey, favorites.DefaultTTL)
		pageCache = cache.NewPageCache(valkey, cache.DefaultPageTTL)
		pageCache.InvalidateAll(ctx)
	} else {
		slog.Warn("valkey not configured, favorites are kept in memory")
	}

	renderer, err := render.New(cfg.SearchDebounce)
	if err != nil {
		slog.Error("failed to initialize template renderer", "error", err)
		os.Exit(1)
	}

	recipes := handlers.NewRecipes(source, query.New(language.English), favs, renderer, pageCache)

	// Favorite toggles: 60 per minute per visitor.
	limiter := middleware.NewRateLimiter(60, time.Minute)
	defer limiter.Stop()

	r := router.New(recipes, router.Options{
		SecureCookies: !cfg.IsDev(),
		Limiter:       limiter,
	})

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start the server in a goroutine so we can listen for shutdown signals.
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
