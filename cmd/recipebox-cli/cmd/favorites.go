// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"recipebox/internal/catalog"
	"recipebox/internal/favorites"
)

func newFavCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "fav <id|slug>",
		Short: "Toggle a recipe in the favorites",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			recipes, err := e.recipes(ctx)
			if err != nil {
				return err
			}
			r, err := catalog.Find(recipes, args[0])
			if err != nil {
				return err
			}

			on, err := favorites.Toggle(ctx, e.favorites, r.ID)
			if err != nil {
				return fmt.Errorf("save favorites: %w", err)
			}

			if on {
				fmt.Fprintf(cmd.OutOrStdout(), "★ %s added to favorites\n", r.Title)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "%s removed from favorites\n", r.Title)
			}
			return nil
		},
	}
}

func newFavsCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "favs",
		Short: "List favorite recipes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			recipes, err := e.recipes(ctx)
			if err != nil {
				return err
			}
			favs := e.favorites.Load(ctx)

			out := cmd.OutOrStdout()
			if len(favs) == 0 {
				fmt.Fprintln(out, "No favorites yet")
				return nil
			}
			for _, r := range recipes {
				if favs.Has(r.ID) {
					printLine(out, r, true)
				}
			}
			return nil
		},
	}
}
