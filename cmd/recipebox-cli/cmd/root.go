// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package cmd implements the recipebox-cli commands.
package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"recipebox/internal/app"
	"recipebox/internal/catalog"
	"recipebox/internal/config"
	"recipebox/internal/favorites"
	"recipebox/internal/models"
	"recipebox/internal/query"
)

// env holds what every command needs once the root pre-run has finished.
type env struct {
	cfg       *config.Config
	source    catalog.Source
	favorites *favorites.SQLite
	pipeline  *query.Pipeline
	closers   []func()
}

// recipes lists the catalog.
func (e *env) recipes(ctx context.Context) ([]models.Recipe, error) {
	return e.source.List(ctx)
}

func (e *env) close() {
	for i := len(e.closers) - 1; i >= 0; i-- {
		e.closers[i]()
	}
}

// NewRootCmd builds the command tree. Each call returns fresh flag state.
func NewRootCmd() *cobra.Command {
	e := &env{}
	var favoritesPath string

	root := &cobra.Command{
		Use:   "recipebox-cli",
		Short: "Browse recipes from the command line",
		Long: `recipebox-cli lists, searches and exports the recipe collection and
keeps a local set of favorite recipes.

The recipe source and other settings come from the same environment
variables as the web server (RECIPE_SOURCE, POSTGRES_*, S3_*).`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Skip initialization for help commands
			if cmd.Name() == "help" || cmd.Name() == "completion" {
				return nil
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if favoritesPath != "" {
				cfg.FavoritesDB = favoritesPath
			}
			// Command output goes to stdout; keep stderr quiet unless asked.
			if os.Getenv("LOG_LEVEL") == "" {
				cfg.LogLevel = "warn"
			}
			slog.SetDefault(app.NewLogger(cfg, cmd.ErrOrStderr()))
			e.cfg = cfg

			source, closeCatalog, err := app.OpenCatalog(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			e.source = source
			e.closers = append(e.closers, closeCatalog)

			favs, err := favorites.OpenSQLite(cfg.FavoritesDB)
			if err != nil {
				e.close()
				return err
			}
			e.favorites = favs
			e.closers = append(e.closers, func() { favs.Close() })

			e.pipeline = query.New(language.English)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			e.close()
		},
	}

	root.PersistentFlags().StringVar(&favoritesPath, "favorites-db", "", "path to the favorites database (default $FAVORITES_DB or ~/.recipebox/favorites.db)")

	root.AddCommand(
		newListCmd(e),
		newShowCmd(e),
		newFavCmd(e),
		newFavsCmd(e),
		newExportCmd(e),
	)
	return root
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// queryFlags are the filter/sort/search flags shared by list and export.
type queryFlags struct {
	filter string
	sort   string
	search string
}

func (f *queryFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.filter, "filter", "f", "all", "all, easy, medium, hard, quick or favorites")
	cmd.Flags().StringVar(&f.sort, "sort", "none", "none, name or time")
	cmd.Flags().StringVarP(&f.search, "search", "s", "", "case-insensitive text to search for")
}

// evaluate runs the flags' query over the catalog with the saved favorites.
func (f *queryFlags) evaluate(ctx context.Context, e *env) (query.Result, models.Query, error) {
	recipes, err := e.recipes(ctx)
	if err != nil {
		return query.Result{}, models.Query{}, err
	}

	q := models.Query{
		Filter:    models.ParseFilterKind(f.filter),
		Sort:      models.ParseSortKind(f.sort),
		Search:    f.search,
		Favorites: e.favorites.Load(ctx),
	}
	return e.pipeline.Evaluate(recipes, q), q, nil
}
