// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store provides the PostgreSQL-backed recipe catalog.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"recipebox/internal/catalog"
	"recipebox/internal/models"
)

var _ catalog.Source = (*RecipeStore)(nil)

// RecipeStore reads recipes from the recipes table. Ingredients and steps
// are stored as JSONB.
type RecipeStore struct {
	db *sql.DB
}

// NewRecipeStore creates a new RecipeStore with the given database connection.
func NewRecipeStore(db *sql.DB) *RecipeStore {
	return &RecipeStore{db: db}
}

// List returns every recipe ordered by id, which is the collection order.
func (s *RecipeStore) List(ctx context.Context) ([]models.Recipe, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, slug, title, difficulty, time_mins, description, ingredients, steps
		FROM recipes
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("list recipes: %w", err)
	}
	defer rows.Close()

	var recipes []models.Recipe
	for rows.Next() {
		r, err := scanRecipe(rows)
		if err != nil {
			return nil, err
		}
		recipes = append(recipes, *r)
	}
	return recipes, rows.Err()
}

// FindBySlug retrieves one recipe. Returns catalog.ErrNotFound if missing.
func (s *RecipeStore) FindBySlug(ctx context.Context, slug string) (*models.Recipe, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, slug, title, difficulty, time_mins, description, ingredients, steps
		FROM recipes WHERE slug = $1
	`, slug)

	r, err := scanRecipe(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("recipe %q: %w", slug, catalog.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return r, nil
}

// Count returns the number of stored recipes.
func (s *RecipeStore) Count(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM recipes`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count recipes: %w", err)
	}
	return count, nil
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanRecipe(sc scanner) (*models.Recipe, error) {
	var (
		r           models.Recipe
		ingredients []byte
		steps       []byte
	)
	err := sc.Scan(&r.ID, &r.Slug, &r.Title, &r.Difficulty, &r.Time, &r.Description, &ingredients, &steps)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("scan recipe: %w", err)
	}

	if err := json.Unmarshal(ingredients, &r.Ingredients); err != nil {
		return nil, fmt.Errorf("decode ingredients for recipe %d: %w", r.ID, err)
	}
	if err := json.Unmarshal(steps, &r.Steps); err != nil {
		return nil, fmt.Errorf("decode steps for recipe %d: %w", r.ID, err)
	}
	return &r, nil
}
