// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"fmt"
	"strings"
)

// QuickThreshold is the inclusive upper bound, in minutes, of a quick recipe.
const QuickThreshold = 30

// FilterKind selects which recipes the filter stage keeps.
type FilterKind string

const (
	FilterAll       FilterKind = "all"
	FilterEasy      FilterKind = "easy"
	FilterMedium    FilterKind = "medium"
	FilterHard      FilterKind = "hard"
	FilterQuick     FilterKind = "quick"
	FilterFavorites FilterKind = "favorites"
)

// FilterKinds lists the filters in display order.
var FilterKinds = []FilterKind{FilterAll, FilterEasy, FilterMedium, FilterHard, FilterQuick, FilterFavorites}

// ParseFilterKind maps user input to a FilterKind, falling back to FilterAll.
func ParseFilterKind(s string) FilterKind {
	k := FilterKind(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range FilterKinds {
		if k == known {
			return k
		}
	}
	return FilterAll
}

// SortKind selects the ordering applied by the sort stage.
type SortKind string

const (
	SortNone SortKind = "none"
	SortName SortKind = "name"
	SortTime SortKind = "time"
)

// SortKinds lists the sort options in display order.
var SortKinds = []SortKind{SortNone, SortName, SortTime}

// Label is the human-readable button text for the filter.
func (k FilterKind) Label() string {
	switch k {
	case FilterEasy:
		return "Easy"
	case FilterMedium:
		return "Medium"
	case FilterHard:
		return "Hard"
	case FilterQuick:
		return fmt.Sprintf("Quick (≤%d min)", QuickThreshold)
	case FilterFavorites:
		return "Favorites"
	default:
		return "All"
	}
}

// Label is the human-readable button text for the sort order.
func (k SortKind) Label() string {
	switch k {
	case SortName:
		return "Name"
	case SortTime:
		return "Cooking time"
	default:
		return "Default"
	}
}

// ParseSortKind maps user input to a SortKind, falling back to SortNone.
func ParseSortKind(s string) SortKind {
	k := SortKind(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range SortKinds {
		if k == known {
			return k
		}
	}
	return SortNone
}

// Query is the user-selected view state. It is owned by whichever surface
// (web request, CLI invocation, TUI model) drives the pipeline and is passed
// by value.
type Query struct {
	Filter    FilterKind
	Search    string
	Sort      SortKind
	Favorites FavoriteSet
}

// DefaultQuery returns the initial state: everything, unsorted, no search.
func DefaultQuery() Query {
	return Query{Filter: FilterAll, Sort: SortNone, Favorites: NewFavoriteSet()}
}
