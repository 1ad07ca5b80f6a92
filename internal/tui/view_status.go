package tui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/xonecas/scribe/internal/session"
)

const noName = "[No Name]"

// renderStatusBar writes the filename, the modified flag, the cursor
// position and the line count.
func (m Model) renderStatusBar(b *strings.Builder, f session.Frame, st styles) {
	name := f.Filename
	if name == "" {
		name = noName
	}
	left := st.StatusText.Render(" " + name)
	if f.Modified {
		left += st.Modified.Render(" [+]")
	}

	count := "1 line"
	if f.Total != 1 {
		count = fmt.Sprintf("%d lines", f.Total)
	}
	right := st.StatusText.Render(fmt.Sprintf("%d:%d  %s ", f.Cursor.Row+1, f.Cursor.Col+1, count))

	b.WriteString(joinEnds(left, right, m.width, st.StatusBar))
	b.WriteByte('\n')
}

// renderPromptLine writes the active prompt, or the notice when there is
// none. A notice next to a prompt is right-aligned when it fits.
func (m Model) renderPromptLine(b *strings.Builder, f session.Frame, st styles) {
	noticeStyle := st.Notice
	if f.Notice.Error {
		noticeStyle = st.Error
	}
	notice := ""
	if f.Notice.Text != "" {
		notice = noticeStyle.Render(f.Notice.Text)
	}

	switch f.State {
	case session.PromptSaveFilename:
		b.WriteString(joinEnds(st.Prompt.Render(f.Prompt)+m.prompt.View(), notice, m.width, st.Text))
	case session.PromptConfirmExit:
		b.WriteString(joinEnds(st.Prompt.Render(f.Prompt), notice, m.width, st.Text))
	default:
		b.WriteString(joinEnds(notice, "", m.width, st.Text))
	}
}

// joinEnds lays left and right out on one line of exactly width cells,
// filling the gap with fill. right is dropped when both do not fit and left
// is truncated when it alone is too wide.
func joinEnds(left, right string, width int, fill lipgloss.Style) string {
	lw, rw := ansi.StringWidth(left), ansi.StringWidth(right)
	if lw+rw > width {
		right, rw = "", 0
	}
	if lw > width {
		left = ansi.Truncate(left, width, "…")
		lw = ansi.StringWidth(left)
	}
	gap := width - lw - rw
	if gap <= 0 {
		return left + right
	}
	return left + fill.Render(strings.Repeat(" ", gap)) + right
}
