// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"recipebox/internal/catalog"
	"recipebox/internal/models"
	"recipebox/internal/steps"
)

func newListCmd(e *env) *cobra.Command {
	var flags queryFlags

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recipes",
		Long: `List recipes matching a filter and search text, optionally sorted.

Examples:
  recipebox-cli list
  recipebox-cli list --filter quick --sort time
  recipebox-cli list --search choc`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, q, err := flags.evaluate(cmd.Context(), e)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, r := range res.Visible {
				printLine(out, r, q.Favorites.Has(r.ID))
			}
			fmt.Fprintf(out, "Showing %d of %d recipes\n", res.Count(), res.Total)
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

func newShowCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id|slug>",
		Short: "Show a recipe with its ingredients and steps",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			recipes, err := e.recipes(cmd.Context())
			if err != nil {
				return err
			}
			r, err := catalog.Find(recipes, args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fav := e.favorites.Load(cmd.Context()).Has(r.ID)
			printLine(out, *r, fav)
			fmt.Fprintf(out, "\n%s\n\nIngredients:\n", r.Description)
			for _, ing := range r.Ingredients {
				fmt.Fprintf(out, "  - %s\n", ing)
			}
			fmt.Fprintf(out, "\nSteps:\n")
			for _, line := range strings.Split(strings.TrimRight(steps.RenderText(r.Steps), "\n"), "\n") {
				fmt.Fprintf(out, "  %s\n", line)
			}
			return nil
		},
	}
}

// printLine writes the one-line summary of a recipe.
func printLine(out io.Writer, r models.Recipe, favorite bool) {
	mark := " "
	if favorite {
		mark = "★"
	}
	fmt.Fprintf(out, "%s %2d  %-28s %-6s %3d min\n", mark, r.ID, r.Title, r.Difficulty, r.Time)
}
