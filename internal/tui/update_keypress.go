package tui

import (
	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog/log"
	"github.com/xonecas/scribe/internal/session"
)

// handleKeyPress processes global keys. Returns (model, cmd, true) if handled.
func (m *Model) handleKeyPress(msg tea.KeyPressMsg) (Model, tea.Cmd, bool) {
	handler := m.keyPressHandlers()[msg.Keystroke()]
	if handler == nil {
		return Model{}, nil, false
	}
	return handler(m)
}

func (m *Model) keyPressHandlers() map[string]func(*Model) (Model, tea.Cmd, bool) {
	return map[string]func(*Model) (Model, tea.Cmd, bool){
		"ctrl+c": (*Model).handleCtrlC,
		"ctrl+g": (*Model).handleCtrlG,
	}
}

// handleCtrlC quits. With unsaved changes it asks first, and quits once the
// document closes.
func (m *Model) handleCtrlC() (Model, tea.Cmd, bool) {
	if m.mode != modeEdit || m.session == nil || !m.session.Modified() {
		return *m, tea.Quit, true
	}
	if m.session.State() == session.PromptConfirmExit {
		// Second ctrl+c at the prompt: leave without saving.
		log.Info().Str("path", m.session.Filename()).Msg("quitting with unsaved changes")
		return *m, tea.Quit, true
	}
	evs := []session.Event{session.Key(session.KeyExit)}
	if m.session.State() == session.PromptSaveFilename {
		evs = append([]session.Event{session.Key(session.KeyEscape)}, evs...)
	}
	m.help = nil
	m.quitOnClose = true
	mdl, cmd := m.dispatch(evs...)
	return mdl.(Model), cmd, true
}

func (m *Model) handleCtrlG() (Model, tea.Cmd, bool) {
	if m.mode == modePicker || m.help != nil {
		return Model{}, nil, false
	}
	if m.mode == modeEdit && m.session.State() != session.Editing {
		return Model{}, nil, false
	}
	m.openHelp()
	return *m, nil, true
}
