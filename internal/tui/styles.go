// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package tui

import "github.com/charmbracelet/lipgloss"

var (
	accent = lipgloss.Color("#C2410C")
	muted  = lipgloss.Color("#7A6A5C")
	white  = lipgloss.Color("#FFFFFF")

	appStyle = lipgloss.NewStyle().Padding(1, 2)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			MarginBottom(1)

	pillStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(muted)

	activePillStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Background(accent).
			Foreground(white).
			Bold(true)

	labelStyle = lipgloss.NewStyle().Foreground(muted).Width(8)

	rowStyle      = lipgloss.NewStyle()
	selectedStyle = lipgloss.NewStyle().Foreground(accent).Bold(true)
	favStyle      = lipgloss.NewStyle().Foreground(accent)

	detailStyle = lipgloss.NewStyle().
			PaddingLeft(4).
			Foreground(lipgloss.Color("#4B3F35"))

	countStyle  = lipgloss.NewStyle().Foreground(muted).MarginTop(1)
	statusStyle = lipgloss.NewStyle().Foreground(accent).Italic(true)
	helpStyle   = lipgloss.NewStyle().Foreground(muted)

	difficultyColors = map[string]lipgloss.Color{
		"easy":   lipgloss.Color("#16A34A"),
		"medium": lipgloss.Color("#CA8A04"),
		"hard":   lipgloss.Color("#DC2626"),
	}
)

// difficultyStyle colors a difficulty label.
func difficultyStyle(d string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(difficultyColors[d]).Width(7)
}
