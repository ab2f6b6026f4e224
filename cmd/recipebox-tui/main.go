// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package main runs the terminal recipe browser.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/text/language"

	"recipebox/internal/app"
	"recipebox/internal/config"
	"recipebox/internal/debounce"
	"recipebox/internal/favorites"
	"recipebox/internal/query"
	"recipebox/internal/tui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// The screen belongs to the program, so logs go to a file beside the
	// favorites database.
	dir := filepath.Dir(cfg.FavoritesDB)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}
	logFile, err := os.OpenFile(filepath.Join(dir, "recipebox-tui.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	defer logFile.Close()

	logger := app.NewLogger(cfg, logFile)
	slog.SetDefault(logger)

	ctx := context.Background()

	source, closeCatalog, err := app.OpenCatalog(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeCatalog()

	recipes, err := source.List(ctx)
	if err != nil {
		return fmt.Errorf("loading recipes: %w", err)
	}

	store, err := favorites.OpenSQLite(cfg.FavoritesDB)
	if err != nil {
		return err
	}
	defer store.Close()

	debouncer := debounce.New(cfg.SearchDebounce)
	defer debouncer.Stop()

	m := tui.New(ctx, recipes, query.New(language.English), store, debouncer)
	p := tea.NewProgram(m, tea.WithAltScreen())
	m.SetSender(p.Send)

	logger.Info("tui started", "recipes", len(recipes), "favorites_db", cfg.FavoritesDB)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running tui: %w", err)
	}
	return nil
}
