// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package models defines the data shapes shared by the recipe catalog, the
// query pipeline, the step renderer and every user-facing surface.
package models

// Difficulty is the effort level of a recipe.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Valid reports whether d is one of the known difficulty levels.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// Recipe is an immutable catalog entry. Recipes are created once at load
// time and never mutated afterwards; the ID is the stable identity key.
type Recipe struct {
	ID          int        `json:"id"`
	Slug        string     `json:"slug"`
	Title       string     `json:"title"`
	Difficulty  Difficulty `json:"difficulty"`
	Time        int        `json:"time"` // minutes
	Description string     `json:"description"`
	Ingredients []string   `json:"ingredients"`
	Steps       []Step     `json:"steps"`
}

// IsQuick reports whether the recipe fits the "quick" category.
func (r *Recipe) IsQuick() bool {
	return r.Time <= QuickThreshold
}
