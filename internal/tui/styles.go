package tui

import (
	"charm.land/lipgloss/v2"
	"github.com/xonecas/scribe/internal/palette"
)

type styles struct {
	Text       lipgloss.Style
	Cursor     lipgloss.Style
	Track      lipgloss.Style
	Thumb      lipgloss.Style
	StatusBar  lipgloss.Style
	StatusText lipgloss.Style
	Modified   lipgloss.Style
	Prompt     lipgloss.Style
	Notice     lipgloss.Style
	Error      lipgloss.Style
}

func newStyles(p palette.Palette) styles {
	bg := lipgloss.Color(p.Bg)
	bar := lipgloss.Color(p.Bar)
	return styles{
		Text:       lipgloss.NewStyle().Foreground(lipgloss.Color(p.Fg)).Background(bg),
		Cursor:     lipgloss.NewStyle().Foreground(bg).Background(lipgloss.Color(p.Accent)),
		Track:      lipgloss.NewStyle().Foreground(lipgloss.Color(p.Border)).Background(bg),
		Thumb:      lipgloss.NewStyle().Foreground(lipgloss.Color(p.Muted)).Background(bg),
		StatusBar:  lipgloss.NewStyle().Background(bar),
		StatusText: lipgloss.NewStyle().Foreground(lipgloss.Color(p.Muted)).Background(bar),
		Modified:   lipgloss.NewStyle().Foreground(lipgloss.Color(p.Accent)).Background(bar),
		Prompt:     lipgloss.NewStyle().Foreground(lipgloss.Color(p.Accent)).Background(bg),
		Notice:     lipgloss.NewStyle().Foreground(lipgloss.Color(p.Dim)).Background(bg),
		Error:      lipgloss.NewStyle().Foreground(lipgloss.Color(p.Error)).Background(bg),
	}
}

// plainStyles renders without any escape sequences.
func plainStyles() styles {
	s := lipgloss.NewStyle()
	return styles{
		Text: s, Cursor: s, Track: s, Thumb: s,
		StatusBar: s, StatusText: s, Modified: s,
		Prompt: s, Notice: s, Error: s,
	}
}
