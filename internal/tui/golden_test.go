package tui

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/exp/golden"
	"github.com/xonecas/scribe/internal/palette"
)

func newTestModel(t *testing.T, width, height int, opts Options) Model {
	t.Helper()
	if opts.Palette == (palette.Palette{}) {
		opts.Palette = palette.Default()
	}
	m := New(opts)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: width, Height: height})
	return updated.(Model)
}

// send feeds messages through Update and runs nothing the model returns.
func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		updated, _ := m.Update(msg)
		m = updated.(Model)
	}
	return m
}

func keyText(text string) []tea.Msg {
	var msgs []tea.Msg
	for _, r := range text {
		if r == '\n' {
			msgs = append(msgs, tea.KeyPressMsg{Code: tea.KeyEnter})
			continue
		}
		msgs = append(msgs, tea.KeyPressMsg{Code: r, Text: string(r)})
	}
	return msgs
}

// newDocument picks "Create a new text" from the launch menu.
func newDocument(t *testing.T, m Model) Model {
	t.Helper()
	m = send(t, m, tea.KeyPressMsg{Code: tea.KeyEnter})
	if m.mode != modeEdit {
		t.Fatalf("mode = %v, want edit", m.mode)
	}
	return m
}

func TestEditorLayout(t *testing.T) {
	tests := []struct {
		name   string
		width  int
		height int
		text   string
	}{
		// Five lines in four rows: scrolled by one, with a scrollbar.
		{"scrolled", 32, 6, "hello world\nsecond line\nthird\nfourth\nfifth"},
		// One long line: the text area scrolls sideways to the cursor.
		{"hscroll", 20, 4, "abcdefghijklmnopqrstuvwxyz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newDocument(t, newTestModel(t, tt.width, tt.height, Options{}))
			m = send(t, m, keyText(tt.text)...)

			output := m.renderEditor(plainStyles())
			golden.RequireEqual(t, []byte(output))
		})
	}
}
