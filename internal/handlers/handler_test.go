// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// handler_test.go provides shared test infrastructure for the handler
// tests. Everything runs in memory: the seed catalog, per-visitor memory
// favorites and no page cache.
package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"golang.org/x/text/language"

	"recipebox/internal/catalog"
	"recipebox/internal/debounce"
	"recipebox/internal/favorites"
	"recipebox/internal/models"
	"recipebox/internal/query"
	"recipebox/internal/render"
	"recipebox/internal/visitor"
)

// testEnv bundles a router over the handlers and the stores behind it.
type testEnv struct {
	router    chi.Router
	favorites *favorites.MemoryScoped
	visitor   uuid.UUID
}

// failingSource is a catalog that cannot be listed.
type failingSource struct{}

func (failingSource) List(context.Context) ([]models.Recipe, error) {
	return nil, errors.New("catalog offline")
}

// setupTestEnv wires the handlers onto a chi router. Every request is
// attributed to a single fixed visitor.
func setupTestEnv(t *testing.T, source catalog.Source) *testEnv {
	t.Helper()

	rn, err := render.New(debounce.DefaultDelay)
	if err != nil {
		t.Fatalf("render.New: %v", err)
	}

	env := &testEnv{
		favorites: favorites.NewMemoryScoped(),
		visitor:   uuid.New(),
	}
	h := NewRecipes(source, query.New(language.English), env.favorites, rn, nil)

	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			next.ServeHTTP(w, req.WithContext(visitor.WithID(req.Context(), env.visitor)))
		})
	})
	r.Get("/", h.Index)
	r.Get("/recipes/{slug}", h.Detail)
	r.Post("/favorites/{id}", h.ToggleFavorite)
	r.Get("/api/recipes", h.API)

	env.router = r
	return env
}

// do performs a request against the test router.
func (env *testEnv) do(t *testing.T, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	rr := httptest.NewRecorder()
	env.router.ServeHTTP(rr, req)
	return rr
}

// visitorFavorites loads the test visitor's favorites.
func (env *testEnv) visitorFavorites() models.FavoriteSet {
	return env.favorites.ForVisitor(env.visitor.String()).Load(context.Background())
}

func htmxRequest(method, target, body string) *http.Request {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	req.Header.Set("HX-Request", "true")
	return req
}

func parseDoc(t *testing.T, rr *httptest.ResponseRecorder) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(rr.Body)
	if err != nil {
		t.Fatalf("parse html: %v", err)
	}
	return doc
}

// cardIDs returns the id attributes of rendered cards in order.
func cardIDs(doc *goquery.Document) []string {
	var ids []string
	doc.Find("li.card").Each(func(_ int, s *goquery.Selection) {
		id, _ := s.Attr("id")
		ids = append(ids, id)
	})
	return ids
}
