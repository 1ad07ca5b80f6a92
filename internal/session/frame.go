package session

import (
	"github.com/xonecas/scribe/internal/textbuf"
	"github.com/xonecas/scribe/internal/viewport"
)

// Thumb is the scrollbar thumb in rows, relative to the top of the text area.
type Thumb struct {
	Start  int
	Height int
}

// Frame is everything a renderer needs to draw one screen.
type Frame struct {
	Lines []string // visible lines, top to bottom
	Start int      // buffer row of Lines[0]
	Total int      // lines in the buffer

	Cursor    textbuf.Pos // absolute cursor position
	CursorRow int         // cursor row relative to Lines
	CursorCol int

	// Scrollbar is nil when the whole buffer fits.
	Scrollbar *Thumb

	State    State
	Prompt   string
	Notice   Notice
	Filename string
	Modified bool
}

// Frame captures the current render state.
func (s *Session) Frame() Frame {
	h := s.view.Height
	f := Frame{
		Start:     s.view.Start,
		Total:     s.buf.Len(),
		Cursor:    s.cursor,
		CursorRow: s.cursor.Row - s.view.Start,
		CursorCol: s.cursor.Col,
		State:     s.state,
		Notice:    s.notice,
		Filename:  s.filename,
		Modified:  s.modified,
	}
	f.Lines = s.buf.Range(viewport.VisibleRange(f.Total, s.view.Start, h))
	if start, height, ok := viewport.ScrollbarExtent(f.Total, h, s.view.Start); ok {
		f.Scrollbar = &Thumb{Start: start, Height: height}
	}
	switch s.state {
	case PromptSaveFilename:
		f.Prompt = promptSaveAs
	case PromptConfirmExit:
		f.Prompt = promptConfirm
	}
	return f
}
