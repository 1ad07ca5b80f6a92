package modal

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// Menu is a fixed list of choices. Up and down move the selection and stop
// at the ends; enter chooses.
type Menu struct {
	Title    string
	items    []Item
	selected int
	colors   Colors
}

// NewMenu creates a menu with the first item selected.
func NewMenu(title string, items []Item, colors Colors) Menu {
	return Menu{Title: title, items: items, colors: colors}
}

// Selected returns the index of the highlighted item.
func (m *Menu) Selected() int { return m.selected }

// HandleMsg processes a tea.Msg and returns an optional Action.
func (m *Menu) HandleMsg(msg tea.Msg) Action {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return nil
	}
	switch key.Keystroke() {
	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
	case "down", "j":
		if m.selected < len(m.items)-1 {
			m.selected++
		}
	case "home":
		m.selected = 0
	case "end":
		m.selected = max(len(m.items)-1, 0)
	case "enter":
		if len(m.items) == 0 {
			return nil
		}
		return ActionSelect{Item: m.items[m.selected]}
	case "esc":
		return ActionClose{}
	}
	return nil
}

// Lines renders the choices without styling, marking the selection with
// "> ".
func (m *Menu) Lines() []string {
	lines := make([]string, len(m.items))
	for i, it := range m.items {
		prefix := "  "
		if i == m.selected {
			prefix = "> "
		}
		lines[i] = prefix + it.Name
	}
	return lines
}

// View renders the menu centered in the app area.
func (m *Menu) View(appWidth, appHeight int) string {
	widest := lipgloss.Width(m.Title)
	for _, it := range m.items {
		widest = max(widest, lipgloss.Width(it.Name)+2)
	}
	innerW := widest + 2
	w := innerW + 4 // border + padding

	var b strings.Builder
	if m.Title != "" {
		title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.colors.SelBg))
		b.WriteString(padRight(title.Render(m.Title), innerW))
		b.WriteByte('\n')
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(m.colors.Dim)).
			Render(strings.Repeat("─", innerW)))
		b.WriteByte('\n')
	}
	rows := renderRows(m.colors, m.items, m.selected, true, innerW, len(m.items))
	b.WriteString(strings.Join(rows, "\n"))
	return box(m.colors, w, appWidth, appHeight, b.String())
}
