// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package favorites persists the set of favorite recipe ids. Persistence is
// best-effort: Load never fails outward and degrades to an empty set when
// the backend is unreachable or holds something unparsable.
package favorites

import (
	"context"
	"encoding/json"
	"fmt"

	"recipebox/internal/models"
)

// Key is the fixed identifier favorites are stored under.
const Key = "recipebox.favorites"

// Store loads and saves one favorite set.
type Store interface {
	// Load returns the stored set, or an empty set on any failure.
	Load(ctx context.Context) models.FavoriteSet
	// Save replaces the stored set.
	Save(ctx context.Context, set models.FavoriteSet) error
}

// Scoped hands out a Store per visitor so concurrent web visitors keep
// separate favorites.
type Scoped interface {
	ForVisitor(visitorID string) Store
}

// Toggle flips id in the stored set and saves it. It returns the new
// membership of id.
func Toggle(ctx context.Context, s Store, id int) (bool, error) {
	set := s.Load(ctx)
	added := set.Toggle(id)
	if err := s.Save(ctx, set); err != nil {
		return !added, fmt.Errorf("toggle favorite %d: %w", id, err)
	}
	return added, nil
}

// encode serializes a set as a JSON list of integers in ascending order.
func encode(set models.FavoriteSet) ([]byte, error) {
	return json.Marshal(set.IDs())
}

// decode parses a JSON list of integers.
func decode(data []byte) (models.FavoriteSet, error) {
	var ids []int
	if err := json.Unmarshal(data, &ids); err != nil {
		return nil, fmt.Errorf("decode favorites: %w", err)
	}
	return models.NewFavoriteSet(ids...), nil
}
