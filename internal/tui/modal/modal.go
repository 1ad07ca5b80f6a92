// Package modal provides the centered overlays used outside the text area:
// the launch menu and the filtered file picker.
package modal

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/xonecas/scribe/internal/palette"
)

// Action is the result of handling a message. nil means no action.
type Action any

// ActionClose signals the modal should be dismissed.
type ActionClose struct{}

// ActionSelect signals an item was chosen.
type ActionSelect struct{ Item Item }

// Item is a single entry in a list. Value is what the caller acts on; when
// empty, Name is used.
type Item struct {
	Name  string
	Desc  string
	Value string
}

// Target returns the value the item stands for.
func (it Item) Target() string {
	if it.Value != "" {
		return it.Value
	}
	return it.Name
}

// Colors holds the theme colors for a modal.
type Colors struct {
	Fg     string
	Bg     string
	Dim    string
	SelFg  string
	SelBg  string
	Border string
}

// ColorsFrom maps a UI palette onto modal colors.
func ColorsFrom(p palette.Palette) Colors {
	return Colors{
		Fg:     p.Fg,
		Bg:     p.Bg,
		Dim:    p.Dim,
		SelFg:  p.Bg,
		SelBg:  p.Accent,
		Border: p.Border,
	}
}

// box draws content inside a rounded border of width w and centers it in
// the app area.
func box(c Colors, w, appWidth, appHeight int, content string) string {
	bg := lipgloss.Color(c.Bg)
	rendered := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(c.Border)).
		BorderBackground(bg).
		Foreground(lipgloss.Color(c.Fg)).
		Background(bg).
		Padding(0, 1).
		Width(w - 2).
		Render(content)

	return lipgloss.Place(appWidth, appHeight, lipgloss.Center, lipgloss.Center, rendered,
		lipgloss.WithWhitespaceStyle(lipgloss.NewStyle().Background(bg)))
}

// renderRows draws items, highlighting selected when focused, padded to
// height rows of innerW cells. The window scrolls to keep selected visible.
func renderRows(c Colors, items []Item, selected int, focused bool, innerW, height int) []string {
	scrollOff := 0
	if selected >= height {
		scrollOff = selected - height + 1
	}

	bg := lipgloss.Color(c.Bg)
	dimStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.Dim)).
		Background(bg)
	selStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.SelFg)).
		Background(lipgloss.Color(c.SelBg))

	var lines []string
	for i := scrollOff; i < len(items) && len(lines) < height; i++ {
		item := items[i]
		if i == selected && focused {
			lines = append(lines, selStyle.Render(padRight(item.Name, innerW)))
			continue
		}
		line := item.Name
		if item.Desc != "" {
			line += dimStyle.Render("  " + item.Desc)
		}
		lines = append(lines, padRight(line, innerW))
	}

	for len(lines) < height {
		lines = append(lines, strings.Repeat(" ", innerW))
	}
	return lines
}

func padRight(s string, w int) string {
	n := lipgloss.Width(s)
	if n >= w {
		return s
	}
	return s + strings.Repeat(" ", w-n)
}
