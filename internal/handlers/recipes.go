// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers implements the HTTP handlers of the recipe browser: the
// list page with its HTMX fragment, recipe detail pages, favorite toggling
// and the JSON API.
package handlers

import (
	"encoding/json"
	"errors"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"recipebox/internal/cache"
	"recipebox/internal/catalog"
	"recipebox/internal/favorites"
	"recipebox/internal/models"
	"recipebox/internal/query"
	"recipebox/internal/render"
	"recipebox/internal/visitor"
)

// Recipes groups the recipe browser handlers. It checks the L2 Valkey page
// cache for detail bodies before rendering them.
type Recipes struct {
	source    catalog.Source
	pipeline  *query.Pipeline
	favorites favorites.Scoped
	renderer  *render.Renderer
	pageCache *cache.PageCache
}

// NewRecipes creates the handler group. pageCache may be nil when Valkey is
// not configured.
func NewRecipes(source catalog.Source, pipeline *query.Pipeline, favs favorites.Scoped, renderer *render.Renderer, pageCache *cache.PageCache) *Recipes {
	return &Recipes{
		source:    source,
		pipeline:  pipeline,
		favorites: favs,
		renderer:  renderer,
		pageCache: pageCache,
	}
}

// apiResponse is the JSON body of GET /api/recipes.
type apiResponse struct {
	Total     int             `json:"total"`
	Count     int             `json:"count"`
	Filter    string          `json:"filter"`
	Sort      string          `json:"sort"`
	Search    string          `json:"q"`
	Favorites []int           `json:"favorites"`
	Recipes   []models.Recipe `json:"recipes"`
}

// Index renders the recipe list. HTMX requests receive only the card list.
func (h *Recipes) Index(w http.ResponseWriter, r *http.Request) {
	res, q, err := h.evaluate(r)
	if err != nil {
		h.serverError(w, r, "list recipes failed", err)
		return
	}

	h.renderer.Page(w, r, "index", &render.PageData{
		Title: "Recipes",
		Data:  render.NewListView(q, res),
	})
}

// Detail renders one recipe by slug.
func (h *Recipes) Detail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	slug := chi.URLParam(r, "slug")

	recipes, err := h.source.List(ctx)
	if err != nil {
		h.serverError(w, r, "list recipes failed", err)
		return
	}

	recipe, err := catalog.Find(recipes, slug)
	if errors.Is(err, catalog.ErrNotFound) {
		h.notFound(w, r, "Recipe not found.")
		return
	}
	if err != nil {
		h.serverError(w, r, "find recipe failed", err)
		return
	}

	body, ok := h.pageCache.Get(ctx, recipe.Slug)
	if !ok {
		body, err = h.renderer.Block("detail", "recipe_body", *recipe)
		if err != nil {
			h.serverError(w, r, "render recipe body failed", err)
			return
		}
		h.pageCache.Set(ctx, recipe.Slug, body)
	}

	favs := h.visitorStore(r).Load(ctx)
	h.renderer.Page(w, r, "detail", &render.PageData{
		Title: recipe.Title,
		Data: render.DetailView{
			Recipe:   *recipe,
			Favorite: favs.Has(recipe.ID),
			Body:     template.HTML(body),
		},
	})
}

// ToggleFavorite flips a recipe's membership in the visitor's favorites.
// HTMX requests get the refreshed card list for the query carried in the
// form; plain form posts are redirected back.
func (h *Recipes) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := parseRecipeID(chi.URLParam(r, "id"))
	if err != nil {
		h.badRequest(w, r, "Invalid recipe id.")
		return
	}

	recipes, err := h.source.List(ctx)
	if err != nil {
		h.serverError(w, r, "list recipes failed", err)
		return
	}
	if !exists(recipes, id) {
		h.notFound(w, r, "Recipe not found.")
		return
	}

	store := h.visitorStore(r)
	on, err := favorites.Toggle(ctx, store, id)
	if err != nil {
		// Best effort: the list below re-reads the store, so it shows
		// whatever state actually persisted.
		slog.Warn("favorite toggle not persisted", "recipe_id", id, "error", err)
	} else {
		slog.Info("favorite toggled", "recipe_id", id, "favorite", on)
	}

	if !render.IsHTMX(r) {
		http.Redirect(w, r, safeReturn(r.FormValue("return")), http.StatusSeeOther)
		return
	}

	q := parseQuery(r)
	q.Favorites = store.Load(ctx)
	h.renderer.Page(w, r, "index", &render.PageData{
		Title: "Recipes",
		Data:  render.NewListView(q, h.pipeline.Evaluate(recipes, q)),
	})
}

// API returns the evaluated query as JSON.
func (h *Recipes) API(w http.ResponseWriter, r *http.Request) {
	res, q, err := h.evaluate(r)
	if err != nil {
		slog.Error("list recipes failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
		return
	}

	writeJSON(w, http.StatusOK, apiResponse{
		Total:     res.Total,
		Count:     res.Count(),
		Filter:    string(q.Filter),
		Sort:      string(q.Sort),
		Search:    q.Search,
		Favorites: q.Favorites.IDs(),
		Recipes:   res.Visible,
	})
}

// evaluate loads the catalog and runs the request's query over it.
func (h *Recipes) evaluate(r *http.Request) (query.Result, models.Query, error) {
	ctx := r.Context()

	recipes, err := h.source.List(ctx)
	if err != nil {
		return query.Result{}, models.Query{}, err
	}

	q := parseQuery(r)
	q.Favorites = h.visitorStore(r).Load(ctx)
	return h.pipeline.Evaluate(recipes, q), q, nil
}

// visitorStore returns the favorites store of the requesting visitor.
func (h *Recipes) visitorStore(r *http.Request) favorites.Store {
	id, ok := visitor.FromCtx(r.Context())
	if !ok {
		return h.favorites.ForVisitor("anonymous")
	}
	return h.favorites.ForVisitor(id.String())
}

// parseQuery reads filter, sort and q from the URL or form body.
func parseQuery(r *http.Request) models.Query {
	q := models.DefaultQuery()
	q.Filter = models.ParseFilterKind(r.FormValue("filter"))
	q.Sort = models.ParseSortKind(r.FormValue("sort"))
	q.Search = sanitizeSearch(r.FormValue("q"))
	return q
}

func exists(recipes []models.Recipe, id int) bool {
	for i := range recipes {
		if recipes[i].ID == id {
			return true
		}
	}
	return false
}

func (h *Recipes) notFound(w http.ResponseWriter, r *http.Request, msg string) {
	h.renderer.PageStatus(w, r, http.StatusNotFound, "error", &render.PageData{
		Title: "Not found",
		Data:  render.ErrorView{Status: http.StatusNotFound, Message: msg},
	})
}

func (h *Recipes) badRequest(w http.ResponseWriter, r *http.Request, msg string) {
	h.renderer.PageStatus(w, r, http.StatusBadRequest, "error", &render.PageData{
		Title: "Bad request",
		Data:  render.ErrorView{Status: http.StatusBadRequest, Message: msg},
	})
}

func (h *Recipes) serverError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	slog.Error(msg, "path", r.URL.Path, "error", err)
	h.renderer.PageStatus(w, r, http.StatusInternalServerError, "error", &render.PageData{
		Title: "Error",
		Data:  render.ErrorView{Status: http.StatusInternalServerError, Message: "Something went wrong."},
	})
}

// writeJSON encodes v as the response body.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Warn("json encode failed", "error", err)
	}
}
