package view

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/aretw0/cellar/pkg/core"
)

// palette holds the colors of one theme.
type palette struct {
	Accent lipgloss.Color
	Text   lipgloss.Color
	Muted  lipgloss.Color
	Border lipgloss.Color
	Chip   lipgloss.Color
}

var palettes = map[core.Theme]palette{
	core.ThemeLight: {
		Accent: lipgloss.Color("#722f37"),
		Text:   lipgloss.Color("#1a1a1a"),
		Muted:  lipgloss.Color("#626262"),
		Border: lipgloss.Color("#c9a9ad"),
		Chip:   lipgloss.Color("#8a4b52"),
	},
	core.ThemeDark: {
		Accent: lipgloss.Color("#e8a0a8"),
		Text:   lipgloss.Color("#dddddd"),
		Muted:  lipgloss.Color("#a8a8a8"),
		Border: lipgloss.Color("#5a3a3e"),
		Chip:   lipgloss.Color("#d4868f"),
	},
}

type styles struct {
	title   lipgloss.Style
	meta    lipgloss.Style
	label   lipgloss.Style
	value   lipgloss.Style
	muted   lipgloss.Style
	card    lipgloss.Style
	row     lipgloss.Style
	section lipgloss.Style
	modal   lipgloss.Style
}

func newStyles(t core.Theme) styles {
	p, ok := palettes[t]
	if !ok {
		p = palettes[core.ThemeLight]
	}

	return styles{
		title: lipgloss.NewStyle().
			Foreground(p.Accent).
			Bold(true),
		meta: lipgloss.NewStyle().
			Foreground(p.Muted),
		label: lipgloss.NewStyle().
			Foreground(p.Chip).
			Bold(true),
		value: lipgloss.NewStyle().
			Foreground(p.Text),
		muted: lipgloss.NewStyle().
			Foreground(p.Muted).
			Italic(true),
		card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Border).
			Padding(0, 1),
		row: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(p.Accent).
			PaddingLeft(1),
		section: lipgloss.NewStyle().
			MarginTop(1),
		modal: lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(p.Accent).
			Padding(1, 2),
	}
}
