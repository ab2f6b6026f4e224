// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings of the recipe list.
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Filter   key.Binding
	SortName key.Binding
	SortTime key.Binding
	SortNone key.Binding
	Search   key.Binding
	Favorite key.Binding
	Expand   key.Binding
	Done     key.Binding
	Quit     key.Binding
}

// Keys is the default key map.
var Keys = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Filter: key.NewBinding(
		key.WithKeys("1", "2", "3", "4", "5", "6"),
		key.WithHelp("1-6", "filter"),
	),
	SortName: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "sort by name"),
	),
	SortTime: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "sort by time"),
	),
	SortNone: key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "original order"),
	),
	Search: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search"),
	),
	Favorite: key.NewBinding(
		key.WithKeys("f"),
		key.WithHelp("f", "favorite"),
	),
	Expand: key.NewBinding(
		key.WithKeys("enter", " "),
		key.WithHelp("enter", "details"),
	),
	Done: key.NewBinding(
		key.WithKeys("enter", "esc"),
		key.WithHelp("enter/esc", "done"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// helpLine lists the list-mode bindings.
func helpLine() []key.Binding {
	k := Keys
	return []key.Binding{k.Up, k.Down, k.Filter, k.SortName, k.SortTime, k.SortNone, k.Search, k.Favorite, k.Expand, k.Quit}
}
