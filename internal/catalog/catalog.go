// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package catalog provides the recipe collection: the built-in seed list, the
// Source abstraction over where recipes come from, and load-time validation.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"recipebox/internal/models"
)

// ErrNotFound is returned when a recipe lookup matches nothing.
var ErrNotFound = errors.New("recipe not found")

// Source yields the full recipe collection in display order.
type Source interface {
	List(ctx context.Context) ([]models.Recipe, error)
}

// Static is a Source over an in-memory slice.
type Static struct {
	recipes []models.Recipe
}

// NewStatic returns a Source serving recipes as given.
func NewStatic(recipes []models.Recipe) *Static {
	return &Static{recipes: recipes}
}

// List returns a copy of the collection so callers cannot reorder it.
func (s *Static) List(_ context.Context) ([]models.Recipe, error) {
	out := make([]models.Recipe, len(s.recipes))
	copy(out, s.recipes)
	return out, nil
}

// Find looks a recipe up by numeric id or slug.
func Find(recipes []models.Recipe, ref string) (*models.Recipe, error) {
	ref = strings.TrimSpace(ref)
	if id, err := strconv.Atoi(ref); err == nil {
		for i := range recipes {
			if recipes[i].ID == id {
				return &recipes[i], nil
			}
		}
		return nil, fmt.Errorf("recipe %d: %w", id, ErrNotFound)
	}
	for i := range recipes {
		if recipes[i].Slug == ref {
			return &recipes[i], nil
		}
	}
	return nil, fmt.Errorf("recipe %q: %w", ref, ErrNotFound)
}

// Validate checks the collection invariants: unique positive ids, non-empty
// titles, known difficulties and positive cooking times.
func Validate(recipes []models.Recipe) error {
	seen := make(map[int]struct{}, len(recipes))
	for _, r := range recipes {
		if r.ID <= 0 {
			return fmt.Errorf("recipe %q: id must be positive, got %d", r.Title, r.ID)
		}
		if _, dup := seen[r.ID]; dup {
			return fmt.Errorf("recipe %q: duplicate id %d", r.Title, r.ID)
		}
		seen[r.ID] = struct{}{}

		if strings.TrimSpace(r.Title) == "" {
			return fmt.Errorf("recipe %d: title is required", r.ID)
		}
		if !r.Difficulty.Valid() {
			return fmt.Errorf("recipe %d: unknown difficulty %q", r.ID, r.Difficulty)
		}
		if r.Time <= 0 {
			return fmt.Errorf("recipe %d: time must be positive, got %d", r.ID, r.Time)
		}
	}
	return nil
}
