package tui

import (
	tea "charm.land/bubbletea/v2"
)

// promptLabelWidth leaves room for the label in front of the filename input.
const promptLabelWidth = 10

// handleResize applies a window size change.
func (m *Model) handleResize(msg tea.WindowSizeMsg) {
	m.width, m.height = msg.Width, msg.Height
	m.resizeSession()
}

// resizeSession gives the session every row but the status and prompt lines.
func (m *Model) resizeSession() {
	if m.session == nil || m.height == 0 {
		return
	}
	m.session.SetHeight(max(m.height-chromeRows, 1))
	m.prompt.SetWidth(max(m.width-promptLabelWidth, 1))
	m.followCursor()
}
