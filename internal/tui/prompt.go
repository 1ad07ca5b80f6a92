package tui

import (
	tea "charm.land/bubbletea/v2"
	"github.com/xonecas/scribe/internal/session"
)

// startPrompt readies the filename input, prefilled with the current name.
func (m *Model) startPrompt() tea.Cmd {
	m.prompt.Reset()
	m.prompt.SetValue(m.session.Filename())
	m.prompt.CursorEnd()
	return m.prompt.Focus()
}

// updatePrompt edits the filename line. Enter submits it to the session and
// esc cancels; everything else goes to the text input.
func (m Model) updatePrompt(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyPressMsg); ok {
		switch key.Keystroke() {
		case "enter":
			return m.submitPrompt(session.Submit(m.prompt.Value()))
		case "esc":
			return m.submitPrompt(session.Key(session.KeyEscape))
		}
	}
	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	return m, cmd
}

func (m Model) submitPrompt(ev session.Event) (tea.Model, tea.Cmd) {
	mdl, cmd := m.dispatch(ev)
	next := mdl.(Model)
	if next.session == nil || next.session.State() != session.PromptSaveFilename {
		next.prompt.Blur()
	}
	return next, cmd
}
