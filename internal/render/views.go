// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package render

import (
	"html/template"

	"recipebox/internal/models"
	"recipebox/internal/query"
)

// ListView is the view model of the recipe list page and its card fragment.
type ListView struct {
	Query     models.Query
	Result    query.Result
	Favorites models.FavoriteSet
	Filters   []models.FilterKind
	Sorts     []models.SortKind
}

// NewListView fills in the button sets shown above the list.
func NewListView(q models.Query, res query.Result) ListView {
	return ListView{
		Query:     q,
		Result:    res,
		Favorites: q.Favorites,
		Filters:   models.FilterKinds,
		Sorts:     models.SortKinds,
	}
}

// DetailView is the view model of a single recipe page. Body holds the
// visitor-independent part, possibly served from the page cache.
type DetailView struct {
	Recipe   models.Recipe
	Favorite bool
	Body     template.HTML
}

// ErrorView is shown for 4xx/5xx pages.
type ErrorView struct {
	Status  int
	Message string
}
