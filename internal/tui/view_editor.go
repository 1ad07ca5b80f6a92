package tui

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/x/ansi"
	"github.com/xonecas/scribe/internal/session"
)

const tabWidth = 4

// runeCell returns how a rune is drawn at display column col, and its width.
// Tabs expand to the next tab stop; control and invalid bytes show as U+FFFD.
func runeCell(r rune, col int) (string, int) {
	switch {
	case r == '\t':
		n := tabWidth - col%tabWidth
		return strings.Repeat(" ", n), n
	case r == utf8.RuneError || unicode.IsControl(r):
		return "�", 1
	}
	s := string(r)
	return s, ansi.StringWidth(s)
}

// expandLine converts a buffer line into display text.
func expandLine(line string) string {
	var b strings.Builder
	col := 0
	for _, r := range line {
		s, w := runeCell(r, col)
		b.WriteString(s)
		col += w
	}
	return b.String()
}

// displayCol converts a byte column into a display column. A column inside
// a multi-byte rune lands after it.
func displayCol(line string, byteCol int) int {
	col := 0
	for i, r := range line {
		if i >= byteCol {
			break
		}
		_, w := runeCell(r, col)
		col += w
	}
	return col
}

// byteCol converts a display column back into a byte column, landing on the
// rune that covers it.
func byteCol(line string, dcol int) int {
	col := 0
	for i, r := range line {
		_, w := runeCell(r, col)
		if col+w > dcol {
			return i
		}
		col += w
	}
	return len(line)
}

// cursorCell returns the display column and width of the cell under the
// cursor. Past the end of the line the cell is a single blank.
func cursorCell(line string, byteCol int) (int, int) {
	col := 0
	for i, r := range line {
		_, w := runeCell(r, col)
		if i >= byteCol {
			return col, max(w, 1)
		}
		col += w
	}
	return col, 1
}

// followColumn returns the horizontal offset that keeps col on screen.
func followColumn(offset, col, width int) int {
	if width <= 0 {
		return 0
	}
	if col < offset {
		return col
	}
	if col >= offset+width {
		return col - width + 1
	}
	return offset
}

// showScrollbar reports whether the frame gets a scrollbar column.
func (m Model) showScrollbar(f session.Frame) bool {
	return f.Scrollbar != nil && !m.hideScrollbar
}

// textWidth is the number of columns left for text.
func (m Model) textWidth(f session.Frame) int {
	if m.showScrollbar(f) {
		return max(m.width-1, 0)
	}
	return m.width
}

// renderTextArea draws the visible lines, the cursor and the scrollbar. Every
// row is exactly m.width cells wide; rows past the end of the buffer are
// blank.
func (m Model) renderTextArea(b *strings.Builder, f session.Frame, st styles, rows int) {
	tw := m.textWidth(f)
	bar := m.showScrollbar(f)

	for row := 0; row < rows; row++ {
		var text string
		if row < len(f.Lines) {
			text = m.renderTextRow(f, row, tw, st)
		}
		switch w := ansi.StringWidth(text); {
		case w < tw:
			text += st.Text.Render(strings.Repeat(" ", tw-w))
		case w > tw:
			text = ansi.Truncate(text, tw, "")
		}
		b.WriteString(text)

		if bar {
			b.WriteString(scrollbarCell(f.Scrollbar, row, st))
		}
		b.WriteByte('\n')
	}
}

func (m Model) renderTextRow(f session.Frame, row, tw int, st styles) string {
	line := f.Lines[row]
	disp := expandLine(line)
	end := m.hscroll + tw
	if row != f.CursorRow || f.State != session.Editing {
		return st.Text.Render(ansi.Cut(disp, m.hscroll, end))
	}

	col, w := cursorCell(line, f.CursorCol)
	at := ansi.Cut(disp, col, col+w)
	if at == "" {
		at = " "
	}
	return st.Text.Render(ansi.Cut(disp, m.hscroll, col)) +
		st.Cursor.Render(at) +
		st.Text.Render(ansi.Cut(disp, col+w, end))
}

// scrollbarCell draws one row of the scrollbar. The thumb is at least one
// row tall.
func scrollbarCell(t *session.Thumb, row int, st styles) string {
	h := max(t.Height, 1)
	if row >= t.Start && row < t.Start+h {
		return st.Thumb.Render("┃")
	}
	return st.Track.Render("│")
}
