// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package steps renders a recipe's instruction tree. Nesting depth is
// unbounded: composites recurse into their substeps one level deeper.
package steps

import (
	"fmt"
	"html/template"
	"strconv"
	"strings"

	"recipebox/internal/models"
)

const (
	// TopClass marks the outermost list.
	TopClass = "steps"
	// NestedClass marks every list below the top level.
	NestedClass = "substeps"
)

// Render returns the steps as nested HTML ordered lists. Text is escaped.
// An empty slice renders as an empty list container.
func Render(steps []models.Step) string {
	var b strings.Builder
	renderAt(&b, steps, 0)
	return b.String()
}

// RenderHTML is Render typed for embedding in html/template output.
func RenderHTML(steps []models.Step) template.HTML {
	return template.HTML(Render(steps))
}

func renderAt(b *strings.Builder, steps []models.Step, depth int) {
	class := NestedClass
	if depth == 0 {
		class = TopClass
	}

	b.WriteString(`<ol class="`)
	b.WriteString(class)
	b.WriteString(`">`)
	for _, s := range steps {
		b.WriteString("<li>")
		b.WriteString(template.HTMLEscapeString(s.Text))
		if s.Kind == models.StepComposite {
			renderAt(b, s.Substeps, depth+1)
		}
		b.WriteString("</li>")
	}
	b.WriteString("</ol>")
}

// RenderText returns the steps as numbered plain text for terminal output,
// one step per line, indented two spaces per level:
//
//	1. Boil water
//	2. Make sauce
//	  2.1. Melt butter
func RenderText(steps []models.Step) string {
	var b strings.Builder
	renderTextAt(&b, steps, "", 0)
	return b.String()
}

func renderTextAt(b *strings.Builder, steps []models.Step, prefix string, depth int) {
	indent := strings.Repeat("  ", depth)
	for i, s := range steps {
		number := prefix + strconv.Itoa(i+1)
		fmt.Fprintf(b, "%s%s. %s\n", indent, number, s.Text)
		if s.Kind == models.StepComposite {
			renderTextAt(b, s.Substeps, number+".", depth+1)
		}
	}
}

// Count returns the number of steps in the tree, substeps included.
func Count(steps []models.Step) int {
	n := 0
	for _, s := range steps {
		n++
		if s.Kind == models.StepComposite {
			n += Count(s.Substeps)
		}
	}
	return n
}
