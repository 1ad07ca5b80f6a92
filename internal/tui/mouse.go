package tui

import (
	"math"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/xonecas/scribe/internal/session"
	"github.com/xonecas/scribe/internal/textbuf"
)

// ---------------------------------------------------------------------------
// Mouse filter: throttle high-frequency events at program level.
// ---------------------------------------------------------------------------

var lastMouseEvent time.Time

// MouseEventFilter rate-limits wheel and motion events (15 ms).
// Pass to tea.WithFilter. Never drops clicks or releases.
func MouseEventFilter(_ tea.Model, msg tea.Msg) tea.Msg {
	switch msg.(type) {
	case tea.MouseWheelMsg, tea.MouseMotionMsg:
		now := time.Now()
		if now.Sub(lastMouseEvent) < 15*time.Millisecond {
			return nil
		}
		lastMouseEvent = now
	}
	return msg
}

// ---------------------------------------------------------------------------
// Mouse handling: only the text area reacts, and only while editing.
// ---------------------------------------------------------------------------

const wheelLines = 3

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.mode != modeEdit || m.help != nil || m.session.State() != session.Editing {
		return m, nil
	}

	switch ev := msg.(type) {
	case tea.MouseWheelMsg:
		code := session.KeyDown
		switch ev.Button {
		case tea.MouseWheelUp:
			code = session.KeyUp
		case tea.MouseWheelDown:
		default:
			return m, nil
		}
		evs := make([]session.Event, wheelLines)
		for i := range evs {
			evs[i] = session.Key(code)
		}
		return m.dispatch(evs...)

	case tea.MouseClickMsg:
		if ev.Button != tea.MouseLeft {
			return m, nil
		}
		m.clickAt(ev.X, ev.Y)
	}
	return m, nil
}

// clickAt moves the cursor to the text under screen cell (x, y).
func (m *Model) clickAt(x, y int) {
	f := m.session.Frame()
	if y < 0 || y >= m.height-chromeRows || x < 0 || x >= m.textWidth(f) {
		return
	}
	// Below the last line: end of the buffer. MoveTo clamps the column.
	row, col := f.Total-1, math.MaxInt
	if y < len(f.Lines) {
		row, col = f.Start+y, byteCol(f.Lines[y], m.hscroll+x)
	}
	m.session.MoveTo(textbuf.Pos{Col: col, Row: row})
	m.followCursor()
}
