package tui

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/tatianab/nightreign-notebook/internal/models"
)

type palette struct {
	accent lipgloss.Color
	text   lipgloss.Color
	muted  lipgloss.Color
	border lipgloss.Color
	cursor lipgloss.Color
	weak   lipgloss.Color
	strong lipgloss.Color
	normal lipgloss.Color
	err    lipgloss.Color

	resLow    lipgloss.Color
	resMedium lipgloss.Color
	resHigh   lipgloss.Color
}

var palettes = map[models.Theme]palette{
	models.ThemeDark: {
		accent: lipgloss.Color("#FFA500"),
		text:   lipgloss.Color("#EEEEEE"),
		muted:  lipgloss.Color("#888888"),
		border: lipgloss.Color("#3C3C3C"),
		cursor: lipgloss.Color("#5F5F87"),
		weak:   lipgloss.Color("#FF6B6B"),
		strong: lipgloss.Color("#4ECDC4"),
		normal: lipgloss.Color("#AAAAAA"),
		err:    lipgloss.Color("#FF5555"),

		resLow:    lipgloss.Color("#7BD88F"),
		resMedium: lipgloss.Color("#FFB347"),
		resHigh:   lipgloss.Color("#FF6B6B"),
	},
	models.ThemeLight: {
		accent: lipgloss.Color("#B35900"),
		text:   lipgloss.Color("#1F1F1F"),
		muted:  lipgloss.Color("#6C6C6C"),
		border: lipgloss.Color("#C8C8C8"),
		cursor: lipgloss.Color("#D7D7FF"),
		weak:   lipgloss.Color("#C0392B"),
		strong: lipgloss.Color("#16756F"),
		normal: lipgloss.Color("#555555"),
		err:    lipgloss.Color("#B00020"),

		resLow:    lipgloss.Color("#2E7D32"),
		resMedium: lipgloss.Color("#E65100"),
		resHigh:   lipgloss.Color("#C62828"),
	},
}

// styles is every lipgloss style the views use, built from one palette.
type styles struct {
	palette palette

	title     lipgloss.Style
	tab       lipgloss.Style
	activeTab lipgloss.Style
	heading   lipgloss.Style
	text      lipgloss.Style
	help      lipgloss.Style
	cursor    lipgloss.Style
	checked   lipgloss.Style
	button    lipgloss.Style
	panel     lipgloss.Style
	border    lipgloss.Style
	header    lipgloss.Style
	err       lipgloss.Style
}

func newStyles(theme models.Theme) styles {
	p, ok := palettes[theme]
	if !ok {
		p = palettes[models.ThemeDark]
	}

	return styles{
		palette: p,
		title: lipgloss.NewStyle().
			Foreground(p.accent).
			Bold(true).
			Underline(true),
		tab: lipgloss.NewStyle().
			Foreground(p.muted).
			Padding(0, 1),
		activeTab: lipgloss.NewStyle().
			Foreground(p.accent).
			Bold(true).
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(p.accent).
			Padding(0, 1),
		heading: lipgloss.NewStyle().
			Foreground(p.accent).
			Bold(true),
		text: lipgloss.NewStyle().
			Foreground(p.text),
		help: lipgloss.NewStyle().
			Foreground(p.muted).
			Italic(true),
		cursor: lipgloss.NewStyle().
			Foreground(p.text).
			Background(p.cursor).
			Bold(true),
		checked: lipgloss.NewStyle().
			Foreground(p.accent),
		button: lipgloss.NewStyle().
			Foreground(p.accent).
			Bold(true).
			Padding(0, 1),
		panel: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(p.border).
			PaddingLeft(2).
			Foreground(p.text),
		border: lipgloss.NewStyle().
			Foreground(p.border),
		header: lipgloss.NewStyle().
			Foreground(p.accent).
			Bold(true).
			Padding(0, 1),
		err: lipgloss.NewStyle().
			Foreground(p.err).
			Bold(true),
	}
}

func (s styles) cell() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(s.palette.text).Padding(0, 1)
}

// absorption returns the style for an absorption multiplier's class.
func (s styles) absorption(v float64) lipgloss.Style {
	switch models.AbsorptionClass(v) {
	case "weak":
		return lipgloss.NewStyle().Foreground(s.palette.weak).Bold(true)
	case "strong":
		return lipgloss.NewStyle().Foreground(s.palette.strong)
	default:
		return lipgloss.NewStyle().Foreground(s.palette.normal)
	}
}

// resistance returns the style for a status resistance's class.
func (s styles) resistance(value string) lipgloss.Style {
	switch models.ResistanceClass(value) {
	case "low":
		return lipgloss.NewStyle().Foreground(s.palette.resLow)
	case "medium":
		return lipgloss.NewStyle().Foreground(s.palette.resMedium)
	case "high":
		return lipgloss.NewStyle().Foreground(s.palette.resHigh).Bold(true)
	default:
		return lipgloss.NewStyle().Foreground(s.palette.muted)
	}
}

// tableStyles adapts the interactive table to the palette.
func (s styles) tableStyles() table.Styles {
	ts := table.DefaultStyles()
	ts.Header = ts.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(s.palette.border).
		BorderBottom(true).
		Foreground(s.palette.accent).
		Bold(true)
	ts.Cell = ts.Cell.Foreground(s.palette.text)
	ts.Selected = ts.Selected.
		Foreground(s.palette.text).
		Background(s.palette.cursor).
		Bold(false)
	return ts
}
