package tui

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// ---------------------------------------------------------------------------
// View
// ---------------------------------------------------------------------------

func (m Model) View() tea.View {
	content := m.renderContent(m.styles)
	if m.help != nil {
		content = m.help.View(m.width, m.height)
	}
	v := tea.NewView(content)
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion
	return v
}

// renderContent produces the string content for the current mode.
func (m Model) renderContent(st styles) string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	switch m.mode {
	case modePicker:
		return m.picker.View(m.width, m.height)
	case modeEdit:
		return m.renderEditor(st)
	}
	return m.renderMenu(st)
}

// renderMenu centers the launch menu above a one-line notice.
func (m Model) renderMenu(st styles) string {
	menu := m.menu.View(m.width, max(m.height-1, 1))
	notice := ""
	if m.flash.Text != "" {
		style := st.Notice
		if m.flash.Error {
			style = st.Error
		}
		notice = style.Render(m.flash.Text)
	}
	bg := lipgloss.NewStyle().Background(lipgloss.Color(m.colors.Bg))
	return menu + "\n" + joinEnds(notice, "", m.width, bg)
}

// renderEditor draws the text area, status bar and prompt line.
func (m Model) renderEditor(st styles) string {
	f := m.session.Frame()
	var b strings.Builder
	m.renderTextArea(&b, f, st, max(m.height-chromeRows, 1))
	m.renderStatusBar(&b, f, st)
	m.renderPromptLine(&b, f, st)
	return b.String()
}
