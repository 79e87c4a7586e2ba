// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/lipgloss"

type palette struct {
	text    lipgloss.Color
	muted   lipgloss.Color
	accent  lipgloss.Color
	success lipgloss.Color
	failure lipgloss.Color
	border  lipgloss.Color
}

var (
	darkPalette = palette{
		text:    lipgloss.Color("#E5E7EB"),
		muted:   lipgloss.Color("#9CA3AF"),
		accent:  lipgloss.Color("#60A5FA"),
		success: lipgloss.Color("#34D399"),
		failure: lipgloss.Color("#F87171"),
		border:  lipgloss.Color("#4B5563"),
	}
	lightPalette = palette{
		text:    lipgloss.Color("#111827"),
		muted:   lipgloss.Color("#6B7280"),
		accent:  lipgloss.Color("#2563EB"),
		success: lipgloss.Color("#047857"),
		failure: lipgloss.Color("#B91C1C"),
		border:  lipgloss.Color("#D1D5DB"),
	}
)

// theme holds every style used by the views for one palette.
type theme struct {
	dark bool

	app       lipgloss.Style
	title     lipgloss.Style
	text      lipgloss.Style
	muted     lipgloss.Style
	selected  lipgloss.Style
	completed lipgloss.Style
	success   lipgloss.Style
	failure   lipgloss.Style
	overlay   lipgloss.Style
}

func newTheme(dark bool) theme {
	p := lightPalette
	if dark {
		p = darkPalette
	}

	return theme{
		dark:      dark,
		app:       lipgloss.NewStyle().Padding(1, 2).Foreground(p.text),
		title:     lipgloss.NewStyle().Bold(true).Foreground(p.accent),
		text:      lipgloss.NewStyle().Foreground(p.text),
		muted:     lipgloss.NewStyle().Foreground(p.muted),
		selected:  lipgloss.NewStyle().Bold(true).Foreground(p.accent),
		completed: lipgloss.NewStyle().Strikethrough(true).Foreground(p.muted),
		success:   lipgloss.NewStyle().Bold(true).Foreground(p.success),
		failure:   lipgloss.NewStyle().Bold(true).Foreground(p.failure),
		overlay:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(p.border).Padding(1, 2),
	}
}
