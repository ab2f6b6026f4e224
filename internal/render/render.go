// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package render provides HTML template rendering for the recipe browser.
// It supports full-page and HTMX partial rendering, detecting the request
// type via the HX-Request header.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"recipebox/internal/markdown"
	"recipebox/internal/middleware"
	"recipebox/internal/models"
	"recipebox/internal/steps"
)

//go:embed templates/*.html templates/partials/*.html
var templateFS embed.FS

// PageData holds all data passed to page templates.
type PageData struct {
	Title     string // <title> text
	CSRFToken string // injected from the CSRF middleware
	Debounce  string // search debounce window in htmx syntax, e.g. "300ms"
	Data      any    // page-specific view model
}

// Renderer handles template parsing and execution.
type Renderer struct {
	templates map[string]*template.Template
	debounce  string
}

// htmxBlocks names the block sent to HTMX requests for each page. Pages
// not listed send their "content" block.
var htmxBlocks = map[string]string{
	"index": "cards",
}

// New parses every page template in the embedded filesystem together with
// the base layout and the shared partials. debounce is the search input
// delay advertised to htmx.
func New(debounce time.Duration) (*Renderer, error) {
	r := &Renderer{
		templates: make(map[string]*template.Template),
		debounce:  fmt.Sprintf("%dms", debounce.Milliseconds()),
	}

	funcs := template.FuncMap{
		"steps":     steps.RenderHTML,
		"stepCount": steps.Count,
		"markdown":  markdown.Safe,
		"isFav": func(set models.FavoriteSet, id int) bool {
			return set.Has(id)
		},
		"quick": func(rec models.Recipe) bool {
			return rec.IsQuick()
		},
	}

	entries, err := fs.ReadDir(templateFS, "templates")
	if err != nil {
		return nil, fmt.Errorf("read embedded templates: %w", err)
	}

	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || name == "base.html" {
			continue
		}

		tmpl, err := template.New("base.html").Funcs(funcs).ParseFS(
			templateFS, "templates/base.html", "templates/partials/*.html", "templates/"+name,
		)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		r.templates[strings.TrimSuffix(name, ".html")] = tmpl
	}

	return r, nil
}

// Page renders a full page, or for HTMX requests only the page's partial
// block.
func (rn *Renderer) Page(w http.ResponseWriter, r *http.Request, name string, data *PageData) {
	rn.PageStatus(w, r, http.StatusOK, name, data)
}

// PageStatus is Page with an explicit response status.
func (rn *Renderer) PageStatus(w http.ResponseWriter, r *http.Request, status int, name string, data *PageData) {
	tmpl, ok := rn.templates[name]
	if !ok {
		http.Error(w, fmt.Sprintf("template %q not found", name), http.StatusInternalServerError)
		return
	}

	data.CSRFToken = middleware.CSRFTokenFromCtx(r.Context())
	data.Debounce = rn.debounce

	block := "base.html"
	if IsHTMX(r) {
		block = "content"
		if b, ok := htmxBlocks[name]; ok {
			block = b
		}
	}

	// Render into a buffer so a template error never leaves a half-written page.
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, block, data); err != nil {
		slog.Error("template execution failed", "template", name, "block", block, "error", err)
		http.Error(w, "template error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(buf.Bytes())
}

// Block renders a single named block of a page template to bytes. Used for
// fragments that are cached independently of the surrounding page.
func (rn *Renderer) Block(name, block string, data any) ([]byte, error) {
	tmpl, ok := rn.templates[name]
	if !ok {
		return nil, fmt.Errorf("template %q not found", name)
	}
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, block, data); err != nil {
		return nil, fmt.Errorf("execute %s/%s: %w", name, block, err)
	}
	return buf.Bytes(), nil
}

// IsHTMX reports whether the request was made by HTMX.
func IsHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}
