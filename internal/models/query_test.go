// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "testing"

// TestParseFilterKind verifies known filters parse and anything else falls
// back to FilterAll.
func TestParseFilterKind(t *testing.T) {
	tests := []struct {
		input string
		want  FilterKind
	}{
		{"all", FilterAll},
		{"easy", FilterEasy},
		{"medium", FilterMedium},
		{"hard", FilterHard},
		{"quick", FilterQuick},
		{"favorites", FilterFavorites},
		{" Quick ", FilterQuick},
		{"", FilterAll},
		{"vegan", FilterAll},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseFilterKind(tt.input); got != tt.want {
				t.Errorf("ParseFilterKind(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseSortKind(t *testing.T) {
	tests := []struct {
		input string
		want  SortKind
	}{
		{"none", SortNone},
		{"name", SortName},
		{"time", SortTime},
		{"NAME", SortName},
		{"", SortNone},
		{"rating", SortNone},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseSortKind(tt.input); got != tt.want {
				t.Errorf("ParseSortKind(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestDefaultQuery(t *testing.T) {
	q := DefaultQuery()
	if q.Filter != FilterAll || q.Sort != SortNone || q.Search != "" {
		t.Errorf("DefaultQuery: got %+v", q)
	}
	if q.Favorites == nil {
		t.Error("DefaultQuery should carry a usable favorite set")
	}
}

func TestKindLabels(t *testing.T) {
	if got := FilterQuick.Label(); got != "Quick (≤30 min)" {
		t.Errorf("FilterQuick.Label() = %q", got)
	}
	if got := FilterKind("bogus").Label(); got != "All" {
		t.Errorf("unknown filter label = %q, want All", got)
	}
	if got := SortTime.Label(); got != "Cooking time" {
		t.Errorf("SortTime.Label() = %q", got)
	}
}
