// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package query turns a recipe collection and a Query into the ordered list
// of visible recipes. Stages run as search → filter → sort; sort is always
// last because it reorders instead of excluding.
package query

import (
	"slices"
	"strings"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"recipebox/internal/models"
)

// Result is the output of one pipeline evaluation.
type Result struct {
	Visible []models.Recipe
	Total   int // size of the unfiltered collection
}

// Count returns the number of visible recipes.
func (r Result) Count() int {
	return len(r.Visible)
}

// Pipeline evaluates queries using a locale-aware collator for name sorting.
// A collate.Collator keeps internal buffers, so access is serialized.
type Pipeline struct {
	mu       sync.Mutex
	collator *collate.Collator
}

// New creates a Pipeline that sorts names using the rules of tag.
func New(tag language.Tag) *Pipeline {
	return &Pipeline{collator: collate.New(tag)}
}

var defaultPipeline = New(language.English)

// Evaluate runs the default English pipeline.
func Evaluate(recipes []models.Recipe, q models.Query) Result {
	return defaultPipeline.Evaluate(recipes, q)
}

// Evaluate applies the search, filter and sort stages to recipes. The input
// slice is never modified and the returned Visible slice is freshly
// allocated on every call.
func (p *Pipeline) Evaluate(recipes []models.Recipe, q models.Query) Result {
	visible := make([]models.Recipe, 0, len(recipes))
	needle := strings.ToLower(q.Search)

	for _, r := range recipes {
		if !matchesSearch(&r, needle) {
			continue
		}
		if !matchesFilter(&r, q.Filter, q.Favorites) {
			continue
		}
		visible = append(visible, r)
	}

	p.sort(visible, q.Sort)

	return Result{Visible: visible, Total: len(recipes)}
}

// matchesSearch reports whether needle (already lowercased) occurs in the
// title, description or any ingredient. An empty needle matches everything.
func matchesSearch(r *models.Recipe, needle string) bool {
	if needle == "" {
		return true
	}
	if strings.Contains(strings.ToLower(r.Title), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(r.Description), needle) {
		return true
	}
	for _, ing := range r.Ingredients {
		if strings.Contains(strings.ToLower(ing), needle) {
			return true
		}
	}
	return false
}

// matchesFilter dispatches on the filter kind. Unknown kinds keep everything.
func matchesFilter(r *models.Recipe, kind models.FilterKind, favorites models.FavoriteSet) bool {
	switch kind {
	case models.FilterEasy, models.FilterMedium, models.FilterHard:
		return r.Difficulty == models.Difficulty(kind)
	case models.FilterQuick:
		return r.IsQuick()
	case models.FilterFavorites:
		return favorites.Has(r.ID)
	default:
		return true
	}
}

// sort orders recipes in place. Both keyed sorts are stable so equal keys
// keep their collection order.
func (p *Pipeline) sort(recipes []models.Recipe, kind models.SortKind) {
	switch kind {
	case models.SortName:
		p.mu.Lock()
		defer p.mu.Unlock()
		slices.SortStableFunc(recipes, func(a, b models.Recipe) int {
			return p.collator.CompareString(a.Title, b.Title)
		})
	case models.SortTime:
		slices.SortStableFunc(recipes, func(a, b models.Recipe) int {
			return a.Time - b.Time
		})
	}
}
