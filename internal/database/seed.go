// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	"recipebox/internal/catalog"
	"recipebox/internal/models"
)

// Seed inserts recipes when the recipes table is empty. It validates the
// collection first and inserts everything in one transaction.
func Seed(ctx context.Context, db *sql.DB, recipes []models.Recipe) error {
	var count int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM recipes").Scan(&count); err != nil {
		return fmt.Errorf("seed check recipes: %w", err)
	}

	if count > 0 {
		slog.Info("database already seeded, skipping", "recipes", count)
		return nil
	}

	if err := catalog.Validate(recipes); err != nil {
		return fmt.Errorf("seed validate: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("seed begin: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO recipes (id, slug, title, difficulty, time_mins, description, ingredients, steps)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`)
	if err != nil {
		return fmt.Errorf("seed prepare: %w", err)
	}
	defer stmt.Close()

	for _, r := range recipes {
		ingredients, err := json.Marshal(r.Ingredients)
		if err != nil {
			return fmt.Errorf("seed encode ingredients %d: %w", r.ID, err)
		}
		steps, err := json.Marshal(r.Steps)
		if err != nil {
			return fmt.Errorf("seed encode steps %d: %w", r.ID, err)
		}
		if _, err := stmt.ExecContext(ctx,
			r.ID, r.Slug, r.Title, r.Difficulty, r.Time, r.Description,
			string(ingredients), string(steps),
		); err != nil {
			return fmt.Errorf("seed insert recipe %d: %w", r.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed commit: %w", err)
	}

	slog.Info("database seeded with recipes", "recipes", len(recipes))
	return nil
}
