package tui

import (
	tea "charm.land/bubbletea/v2"
	"github.com/xonecas/scribe/internal/session"
)

// editKeys maps keystrokes to logical session keys.
var editKeys = map[string]session.KeyCode{
	"enter":     session.KeyEnter,
	"backspace": session.KeyBackspace,
	"up":        session.KeyUp,
	"down":      session.KeyDown,
	"left":      session.KeyLeft,
	"right":     session.KeyRight,
	"home":      session.KeyHome,
	"ctrl+a":    session.KeyHome,
	"end":       session.KeyEnd,
	"ctrl+e":    session.KeyEnd,
	"pgup":      session.KeyPageUp,
	"pgdown":    session.KeyPageDown,
	"esc":       session.KeyEscape,
	"ctrl+s":    session.KeySave,
	"ctrl+o":    session.KeySaveAs,
	"ctrl+q":    session.KeyExit,
}

// keyEvents translates a key press into session events. Printable text may
// carry several runes; unbound combinations produce nothing.
func keyEvents(msg tea.KeyPressMsg) []session.Event {
	k := msg.Keystroke()
	if code, ok := editKeys[k]; ok {
		return []session.Event{session.Key(code)}
	}
	if k == "tab" {
		return []session.Event{session.Char('\t')}
	}
	if msg.Mod&(tea.ModCtrl|tea.ModAlt|tea.ModSuper) != 0 || msg.Text == "" {
		return nil
	}
	return textEvents(msg.Text)
}

// textEvents turns typed or pasted text into character events. Line breaks
// become enter; carriage returns are dropped.
func textEvents(text string) []session.Event {
	evs := make([]session.Event, 0, len(text))
	for _, r := range text {
		switch r {
		case '\r':
		case '\n':
			evs = append(evs, session.Key(session.KeyEnter))
		default:
			evs = append(evs, session.Char(r))
		}
	}
	return evs
}

// helpItems lists the key bindings shown by ctrl+g.
var helpItems = []helpItem{
	{"ctrl+s", "save"},
	{"ctrl+o", "save as"},
	{"ctrl+q / esc", "close the document"},
	{"ctrl+c", "quit (asks first if there are unsaved changes)"},
	{"ctrl+g", "this list"},
	{"arrows", "move cursor"},
	{"home/end, ctrl+a/ctrl+e", "line start/end"},
	{"pgup/pgdown", "page up/down"},
	{"enter", "split line"},
	{"backspace", "join or delete backward"},
	{"mouse wheel", "move cursor three lines"},
	{"click", "place cursor"},
}

type helpItem struct{ key, desc string }
