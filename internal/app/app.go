// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package app wires configuration into the pieces shared by the server,
// CLI and TUI binaries: the logger and the recipe catalog.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"recipebox/internal/catalog"
	"recipebox/internal/config"
	"recipebox/internal/database"
	"recipebox/internal/store"
)

// NewLogger returns a text logger at the configured level writing to w.
func NewLogger(cfg *config.Config, w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))
}

// OpenCatalog returns the recipe source selected by RECIPE_SOURCE and a
// function releasing its resources. The postgres source is migrated and
// seeded on first use.
func OpenCatalog(ctx context.Context, cfg *config.Config) (catalog.Source, func(), error) {
	seed := catalog.Seed()
	if err := catalog.Validate(seed); err != nil {
		return nil, nil, fmt.Errorf("seed catalog: %w", err)
	}

	switch cfg.RecipeSource {
	case config.SourcePostgres:
		db, err := database.Connect(cfg.DSN())
		if err != nil {
			return nil, nil, err
		}
		if err := database.Migrate(db); err != nil {
			db.Close()
			return nil, nil, err
		}
		if err := database.Seed(ctx, db, seed); err != nil {
			db.Close()
			return nil, nil, err
		}
		slog.Info("recipe catalog ready", "source", config.SourcePostgres)
		return store.NewRecipeStore(db), func() { db.Close() }, nil

	default:
		slog.Info("recipe catalog ready", "source", config.SourceSeed, "recipes", len(seed))
		return catalog.NewStatic(seed), func() {}, nil
	}
}
