// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package tui implements the terminal recipe browser on bubbletea. Search
// input is debounced: keystrokes schedule a search message through a
// debounce.Debouncer and only the newest scheduled search is applied.
package tui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"recipebox/internal/debounce"
	"recipebox/internal/favorites"
	"recipebox/internal/models"
	"recipebox/internal/query"
	"recipebox/internal/steps"
)

// searchMsg carries debounced search text. gen identifies the scheduling
// that produced it so superseded searches can be dropped.
type searchMsg struct {
	gen  uint64
	text string
}

// Model is the recipe browser model.
type Model struct {
	ctx       context.Context
	recipes   []models.Recipe
	pipeline  *query.Pipeline
	favorites favorites.Store
	debouncer *debounce.Debouncer
	send      func(tea.Msg)

	query    models.Query
	result   query.Result
	cursor   int
	expanded map[int]bool

	input     textinput.Model
	searching bool
	status    string

	width  int
	height int
}

// New creates the browser over recipes. Favorites are loaded from store.
func New(ctx context.Context, recipes []models.Recipe, pipeline *query.Pipeline, store favorites.Store, debouncer *debounce.Debouncer) *Model {
	input := textinput.New()
	input.Placeholder = "Search recipes..."
	input.Prompt = "/ "
	input.CharLimit = 200

	m := &Model{
		ctx:       ctx,
		recipes:   recipes,
		pipeline:  pipeline,
		favorites: store,
		debouncer: debouncer,
		query:     models.DefaultQuery(),
		expanded:  make(map[int]bool),
		input:     input,
	}
	m.query.Favorites = store.Load(ctx)
	m.refresh()
	return m
}

// SetSender installs the function used to deliver debounced searches,
// normally (*tea.Program).Send.
func (m *Model) SetSender(send func(tea.Msg)) {
	m.send = send
}

// Query returns the current query.
func (m *Model) Query() models.Query {
	return m.query
}

// Result returns the current pipeline result.
func (m *Model) Result() query.Result {
	return m.result
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case searchMsg:
		if !m.debouncer.Current(msg.gen) {
			return m, nil
		}
		m.applySearch(msg.text)
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.debouncer.Stop()
			return m, tea.Quit
		}
		if m.searching {
			return m.updateSearch(msg)
		}
		return m.updateList(msg)
	}

	return m, nil
}

// updateList handles keys while the list has focus.
func (m *Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""

	switch {
	case key.Matches(msg, Keys.Quit):
		m.debouncer.Stop()
		return m, tea.Quit

	case key.Matches(msg, Keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, Keys.Down):
		if m.cursor < m.result.Count()-1 {
			m.cursor++
		}

	case key.Matches(msg, Keys.Filter):
		idx := int(msg.Runes[0] - '1')
		m.query.Filter = models.FilterKinds[idx]
		m.refresh()

	case key.Matches(msg, Keys.SortName):
		m.query.Sort = models.SortName
		m.refresh()

	case key.Matches(msg, Keys.SortTime):
		m.query.Sort = models.SortTime
		m.refresh()

	case key.Matches(msg, Keys.SortNone):
		m.query.Sort = models.SortNone
		m.refresh()

	case key.Matches(msg, Keys.Search):
		m.searching = true
		return m, m.input.Focus()

	case key.Matches(msg, Keys.Favorite):
		m.toggleFavorite()

	case key.Matches(msg, Keys.Expand):
		if r, ok := m.selected(); ok {
			m.expanded[r.ID] = !m.expanded[r.ID]
		}
	}

	return m, nil
}

// updateSearch feeds keys to the search input and debounces the search.
func (m *Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, Keys.Done) {
		m.searching = false
		m.input.Blur()
		// Apply immediately; any pending debounced search is now stale.
		m.debouncer.Cancel()
		m.applySearch(m.input.Value())
		return m, nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	if text := m.input.Value(); text != before {
		m.scheduleSearch(text)
	}
	return m, cmd
}

// scheduleSearch delivers text as a searchMsg after the debounce window.
func (m *Model) scheduleSearch(text string) {
	if m.send == nil {
		m.applySearch(text)
		return
	}
	send := m.send
	ready := make(chan uint64, 1)
	ready <- m.debouncer.Schedule(func() {
		send(searchMsg{gen: <-ready, text: text})
	})
}

func (m *Model) applySearch(text string) {
	if text == m.query.Search {
		return
	}
	m.query.Search = text
	m.refresh()
}

func (m *Model) toggleFavorite() {
	r, ok := m.selected()
	if !ok {
		return
	}

	on, err := favorites.Toggle(m.ctx, m.favorites, r.ID)
	if err != nil {
		slog.Warn("favorite toggle not persisted", "recipe_id", r.ID, "error", err)
		m.status = "Could not save favorites"
	} else if on {
		m.status = "★ " + r.Title + " added to favorites"
	} else {
		m.status = r.Title + " removed from favorites"
	}

	m.query.Favorites = m.favorites.Load(m.ctx)
	m.refresh()
}

// refresh re-evaluates the query and keeps the cursor in range.
func (m *Model) refresh() {
	m.result = m.pipeline.Evaluate(m.recipes, m.query)
	if m.cursor >= m.result.Count() {
		m.cursor = max(m.result.Count()-1, 0)
	}
}

func (m *Model) selected() (models.Recipe, bool) {
	if m.cursor < 0 || m.cursor >= m.result.Count() {
		return models.Recipe{}, false
	}
	return m.result.Visible[m.cursor], true
}

// View renders the browser.
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Recipe Box"))
	b.WriteString("\n")
	b.WriteString(m.viewFilters())
	b.WriteString("\n")
	b.WriteString(m.viewSorts())
	b.WriteString("\n")
	if m.searching || m.query.Search != "" {
		b.WriteString(m.input.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if m.result.Count() == 0 {
		b.WriteString(helpStyle.Render("No recipes match your filters."))
		b.WriteString("\n")
	}
	for i, r := range m.result.Visible {
		b.WriteString(m.viewRow(i, r))
		b.WriteString("\n")
		if m.expanded[r.ID] {
			b.WriteString(detailStyle.Render(viewDetails(r)))
			b.WriteString("\n")
		}
	}

	b.WriteString(countStyle.Render(fmt.Sprintf("Showing %d of %d recipes", m.result.Count(), m.result.Total)))
	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(m.viewHelp())

	return appStyle.Render(b.String())
}

func (m *Model) viewFilters() string {
	pills := make([]string, 0, len(models.FilterKinds))
	for i, k := range models.FilterKinds {
		label := fmt.Sprintf("%d %s", i+1, k.Label())
		if k == m.query.Filter {
			pills = append(pills, activePillStyle.Render(label))
		} else {
			pills = append(pills, pillStyle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render("Filter"), strings.Join(pills, " "))
}

func (m *Model) viewSorts() string {
	keys := map[models.SortKind]string{models.SortNone: "o", models.SortName: "n", models.SortTime: "t"}
	pills := make([]string, 0, len(models.SortKinds))
	for _, k := range models.SortKinds {
		label := keys[k] + " " + k.Label()
		if k == m.query.Sort {
			pills = append(pills, activePillStyle.Render(label))
		} else {
			pills = append(pills, pillStyle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render("Sort"), strings.Join(pills, " "))
}

func (m *Model) viewRow(i int, r models.Recipe) string {
	cursor := "  "
	style := rowStyle
	if i == m.cursor && !m.searching {
		cursor = "> "
		style = selectedStyle
	}

	star := " "
	if m.query.Favorites.Has(r.ID) {
		star = favStyle.Render("★")
	}

	return fmt.Sprintf("%s%s %s %s %3d min",
		cursor,
		star,
		style.Width(28).Render(r.Title),
		difficultyStyle(string(r.Difficulty)).Render(string(r.Difficulty)),
		r.Time,
	)
}

// viewDetails renders the expanded section of a recipe.
func viewDetails(r models.Recipe) string {
	var b strings.Builder
	b.WriteString(r.Description)
	b.WriteString("\n\nIngredients:\n")
	for _, ing := range r.Ingredients {
		b.WriteString("  - " + ing + "\n")
	}
	b.WriteString("\nSteps:\n")
	for _, line := range strings.Split(strings.TrimRight(steps.RenderText(r.Steps), "\n"), "\n") {
		b.WriteString("  " + line + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m *Model) viewHelp() string {
	if m.searching {
		return helpStyle.Render("enter/esc done · ctrl+c quit")
	}
	parts := make([]string, 0, len(helpLine()))
	for _, b := range helpLine() {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return helpStyle.Render(strings.Join(parts, " · "))
}
