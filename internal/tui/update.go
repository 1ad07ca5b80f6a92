package tui

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog/log"
	"github.com/xonecas/scribe/internal/session"
	"github.com/xonecas/scribe/internal/tui/modal"
)

// ---------------------------------------------------------------------------
// Update
// ---------------------------------------------------------------------------

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	// -- Window resize -------------------------------------------------------
	case tea.WindowSizeMsg:
		m.handleResize(msg)
		return m, nil

	// -- Mouse ---------------------------------------------------------------
	case tea.MouseMsg:
		return m.handleMouse(msg)

	// -- Keyboard ------------------------------------------------------------
	case tea.KeyPressMsg:
		if mdl, cmd, handled := m.handleKeyPress(msg); handled {
			return mdl, cmd
		}
	}

	if m.help != nil {
		return m.updateHelp(msg)
	}
	switch m.mode {
	case modeMenu:
		return m.updateMenu(msg)
	case modePicker:
		return m.updatePicker(msg)
	case modeEdit:
		return m.updateEdit(msg)
	}
	return m, nil
}

// ---------------------------------------------------------------------------
// Menu
// ---------------------------------------------------------------------------

func (m Model) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	action := m.menu.HandleMsg(msg)
	if _, ok := msg.(tea.KeyPressMsg); ok && action != nil {
		m.flash = session.Notice{}
	}
	switch a := action.(type) {
	case modal.ActionClose:
		return m, tea.Quit
	case modal.ActionSelect:
		switch a.Item.Name {
		case menuCreate:
			m.startSession(m.newSession())
		case menuEdit:
			m.openPicker()
		case menuExit:
			return m, tea.Quit
		}
	}
	return m, nil
}

// ---------------------------------------------------------------------------
// Editing
// ---------------------------------------------------------------------------

func (m Model) updateEdit(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.session.State() == session.PromptSaveFilename {
		return m.updatePrompt(msg)
	}
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		return m.dispatch(keyEvents(msg)...)
	case tea.PasteMsg:
		return m.dispatch(textEvents(msg.Content)...)
	}
	return m, nil
}

// dispatch feeds events to the session in order and reacts to the state it
// ends up in.
func (m Model) dispatch(evs ...session.Event) (tea.Model, tea.Cmd) {
	for _, ev := range evs {
		before := m.session.State()
		st, err := m.session.Handle(ev)
		if err != nil {
			log.Debug().Err(err).Stringer("key", ev.Code).Msg("event failed")
		}
		switch {
		case st == session.Closed:
			return m.closeSession()
		case st == session.PromptSaveFilename && before != st:
			// The rest of the events belong to the prompt.
			cmd := m.startPrompt()
			return m, cmd
		}
	}
	if m.session.State() == session.Editing {
		m.quitOnClose = false
	}
	m.followCursor()
	return m, nil
}

// startSession makes s the document being edited.
func (m *Model) startSession(s *session.Session) {
	m.session = s
	m.mode = modeEdit
	m.picker = nil
	m.hscroll = 0
	m.flash = session.Notice{}
	m.resizeSession()
}

// openPath loads path into a new session. A missing file starts an empty
// document under that name.
func (m *Model) openPath(path string) {
	s := m.newSession()
	found, err := s.Open(path)
	if err != nil {
		m.flash = session.Notice{Text: "open failed: " + err.Error(), Error: true}
		m.mode = modeMenu
		return
	}
	if found {
		m.history.Touch(path)
	} else {
		s.SetFilename(path)
		s.SetNotice(fmt.Sprintf("%q [new file]", path), false)
	}
	m.startSession(s)
}

// closeSession returns to the menu, or quits when the close was triggered
// by ctrl+c.
func (m Model) closeSession() (tea.Model, tea.Cmd) {
	if s := m.session; s != nil && s.Filename() != "" {
		m.flash = session.Notice{Text: fmt.Sprintf("closed %q", s.Filename())}
	}
	m.session = nil
	m.mode = modeMenu
	if m.quitOnClose {
		return m, tea.Quit
	}
	return m, nil
}

// followCursor scrolls the text area sideways to keep the cursor visible.
func (m *Model) followCursor() {
	if m.session == nil {
		return
	}
	f := m.session.Frame()
	line := ""
	if f.CursorRow >= 0 && f.CursorRow < len(f.Lines) {
		line = f.Lines[f.CursorRow]
	}
	col := displayCol(line, f.CursorCol)
	m.hscroll = followColumn(m.hscroll, col, m.textWidth(f))
}
