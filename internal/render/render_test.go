// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package render

import (
	"html/template"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"

	"recipebox/internal/catalog"
	"recipebox/internal/models"
	"recipebox/internal/query"
)

// newRenderer builds a renderer with the default debounce window.
func newRenderer(t *testing.T) *Renderer {
	t.Helper()
	rn, err := New(300 * time.Millisecond)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return rn
}

// listData evaluates q over the seed catalog.
func listData(q models.Query) *PageData {
	return &PageData{Title: "Recipes", Data: NewListView(q, query.Evaluate(catalog.Seed(), q))}
}

func parse(t *testing.T, body string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		t.Fatalf("parse html: %v", err)
	}
	return doc
}

func TestNewParsesPages(t *testing.T) {
	rn := newRenderer(t)
	for _, name := range []string{"index", "detail", "error"} {
		if _, ok := rn.templates[name]; !ok {
			t.Errorf("expected template %q to be parsed", name)
		}
	}
	if _, ok := rn.templates["base"]; ok {
		t.Error("base.html should not be registered as a page")
	}
	if rn.debounce != "300ms" {
		t.Errorf("debounce: got %q, want %q", rn.debounce, "300ms")
	}
}

func TestIndexFullPage(t *testing.T) {
	rn := newRenderer(t)
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)

	q := models.DefaultQuery()
	q.Favorites = models.NewFavoriteSet(3)
	rn.Page(w, r, "index", listData(q))

	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "text/html; charset=utf-8" {
		t.Errorf("Content-Type: got %q", ct)
	}

	doc := parse(t, w.Body.String())

	if got := doc.Find("li.card").Length(); got != 8 {
		t.Errorf("cards: got %d, want 8", got)
	}
	if got := strings.TrimSpace(doc.Find("p.count").Text()); got != "Showing 8 of 8 recipes" {
		t.Errorf("count: got %q", got)
	}
	if got := doc.Find("input[name=filter]").Length(); got != len(models.FilterKinds) {
		t.Errorf("filter buttons: got %d, want %d", got, len(models.FilterKinds))
	}
	if v, _ := doc.Find("input[name=filter][checked]").Attr("value"); v != "all" {
		t.Errorf("checked filter: got %q, want all", v)
	}
	if trig, _ := doc.Find("#search").Attr("hx-trigger"); !strings.Contains(trig, "delay:300ms") {
		t.Errorf("search trigger: got %q", trig)
	}
	if got := doc.Find("#recipe-3 button.fav.on").Length(); got != 1 {
		t.Error("favorite recipe 3 should render an active star")
	}
	if got := doc.Find("#recipe-1 button.fav.on").Length(); got != 0 {
		t.Error("recipe 1 is not a favorite")
	}
	if got := doc.Find("#recipe-3 ol.steps ol.substeps").Length(); got == 0 {
		t.Error("nested steps should render as substeps lists")
	}
}

func TestIndexHTMXRendersCardsOnly(t *testing.T) {
	rn := newRenderer(t)
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/?filter=quick", nil)
	r.Header.Set("HX-Request", "true")

	q := models.DefaultQuery()
	q.Filter = models.FilterQuick
	rn.Page(w, r, "index", listData(q))

	body := w.Body.String()
	if strings.Contains(body, "<!DOCTYPE html>") {
		t.Error("HTMX response should not include the layout")
	}
	if strings.Contains(body, `id="query"`) {
		t.Error("HTMX response should not include the controls form")
	}

	doc := parse(t, body)
	if doc.Find("#recipe-list").Length() != 1 {
		t.Fatal("fragment should contain #recipe-list")
	}
	if got := strings.TrimSpace(doc.Find("p.count").Text()); got != "Showing 5 of 8 recipes" {
		t.Errorf("count: got %q", got)
	}
}

func TestIndexEmptyResult(t *testing.T) {
	rn := newRenderer(t)
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/?filter=favorites", nil)

	q := models.DefaultQuery()
	q.Filter = models.FilterFavorites
	rn.Page(w, r, "index", listData(q))

	doc := parse(t, w.Body.String())
	if doc.Find("li.card").Length() != 0 {
		t.Error("no cards expected")
	}
	if doc.Find("p.empty").Length() != 1 {
		t.Error("empty message expected")
	}
	if got := strings.TrimSpace(doc.Find("p.count").Text()); got != "Showing 0 of 8 recipes" {
		t.Errorf("count: got %q", got)
	}
}

func TestBlockAndDetail(t *testing.T) {
	rn := newRenderer(t)
	recipe := catalog.Seed()[2]

	body, err := rn.Block("detail", "recipe_body", recipe)
	if err != nil {
		t.Fatalf("Block: %v", err)
	}
	if !strings.Contains(string(body), `<ol class="steps">`) {
		t.Error("recipe body should contain the step tree")
	}

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/recipes/"+recipe.Slug, nil)
	rn.Page(w, r, "detail", &PageData{
		Title: recipe.Title,
		Data:  DetailView{Recipe: recipe, Favorite: true, Body: template.HTML(body)},
	})

	doc := parse(t, w.Body.String())
	if got := doc.Find("h1").Text(); got != recipe.Title {
		t.Errorf("h1: got %q, want %q", got, recipe.Title)
	}
	if doc.Find("article ol.steps").Length() != 1 {
		t.Error("cached body should be embedded unescaped")
	}
	if v, _ := doc.Find("input[name=return]").Attr("value"); v != "/recipes/"+recipe.Slug {
		t.Errorf("return field: got %q", v)
	}
}

func TestBlockUnknownTemplate(t *testing.T) {
	rn := newRenderer(t)
	if _, err := rn.Block("nope", "content", nil); err == nil {
		t.Error("expected error for unknown template")
	}
}

func TestPageStatusAndUnknownTemplate(t *testing.T) {
	rn := newRenderer(t)

	w := httptest.NewRecorder()
	rn.PageStatus(w, httptest.NewRequest(http.MethodGet, "/x", nil), http.StatusNotFound, "error",
		&PageData{Title: "Not found", Data: ErrorView{Status: 404, Message: "Recipe not found"}})
	if w.Code != http.StatusNotFound {
		t.Errorf("status: got %d, want 404", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Recipe not found") {
		t.Error("error message missing")
	}

	w = httptest.NewRecorder()
	rn.Page(w, httptest.NewRequest(http.MethodGet, "/", nil), "missing", &PageData{})
	if w.Code != http.StatusInternalServerError {
		t.Errorf("unknown template: got %d, want 500", w.Code)
	}
}
