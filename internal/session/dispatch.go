package session

import (
	"strings"

	"github.com/rs/zerolog/log"
)

const (
	promptSaveAs  = "Save as: "
	promptConfirm = "Save changes before closing? (y/n/c) "
)

// Handle applies one event and returns the state the session is left in.
// The only errors are failed saves, which leave the document untouched, and
// ErrClosed.
func (s *Session) Handle(ev Event) (State, error) {
	var err error
	switch s.state {
	case Editing:
		err = s.handleEditing(ev)
	case PromptSaveFilename:
		err = s.handleSaveFilename(ev)
	case PromptConfirmExit:
		err = s.handleConfirmExit(ev)
	case Closed:
		return Closed, ErrClosed
	}
	s.view.Follow(s.cursor.Row)
	return s.state, err
}

func (s *Session) enter(next State) {
	if next != s.state {
		log.Debug().Stringer("from", s.state).Stringer("to", next).Msg("session state")
	}
	s.state = next
}

// ---------------------------------------------------------------------------
// Editing
// ---------------------------------------------------------------------------

func (s *Session) handleEditing(ev Event) error {
	if ev.Code != KeyNone {
		s.notice = Notice{}
	}
	b := s.buf
	switch ev.Code {
	case KeyChar:
		s.cursor = b.InsertChar(s.cursor, ev.Char)
		s.modified = true
	case KeyEnter:
		s.cursor = b.SplitLine(s.cursor)
		s.modified = true
	case KeyBackspace:
		next := b.Backspace(s.cursor)
		if next != s.cursor {
			s.modified = true
		}
		s.cursor = next
	case KeyLeft:
		s.cursor = b.MoveLeft(s.cursor)
	case KeyRight:
		s.cursor = b.MoveRight(s.cursor)
	case KeyUp:
		s.cursor = b.MoveUp(s.cursor)
	case KeyDown:
		s.cursor = b.MoveDown(s.cursor)
	case KeyHome:
		s.cursor = b.MoveHome(s.cursor)
	case KeyEnd:
		s.cursor = b.MoveEnd(s.cursor)
	case KeyPageUp:
		s.cursor = b.PageUp(s.cursor, s.view.Height)
	case KeyPageDown:
		s.cursor = b.PageDown(s.cursor, s.view.Height)
	case KeySave:
		return s.Save()
	case KeySaveAs:
		s.enter(PromptSaveFilename)
	case KeyExit, KeyEscape:
		s.requestExit()
	}
	return nil
}

func (s *Session) requestExit() {
	if !s.modified {
		s.enter(Closed)
		return
	}
	text := "unsaved changes"
	if d := s.Pending(); !d.Empty() {
		text += " (" + d.String() + " lines)"
	}
	s.notice = Notice{Text: text}
	s.enter(PromptConfirmExit)
}

// ---------------------------------------------------------------------------
// Prompts
// ---------------------------------------------------------------------------

func (s *Session) handleSaveFilename(ev Event) error {
	switch ev.Code {
	case KeyEscape:
		s.exitAfterSave = false
		s.notice = Notice{Text: "save cancelled"}
		s.enter(Editing)
		return nil
	case KeySubmit:
	default:
		return nil
	}

	name := strings.TrimSpace(ev.Text)
	if name == "" {
		s.notice = Notice{Text: "a filename is required", Error: true}
		return nil
	}
	if err := s.save(name); err != nil {
		s.exitAfterSave = false
		s.enter(Editing)
		return err
	}
	if s.exitAfterSave {
		s.exitAfterSave = false
		s.enter(Closed)
		return nil
	}
	s.enter(Editing)
	return nil
}

func (s *Session) handleConfirmExit(ev Event) error {
	var answer string
	switch ev.Code {
	case KeyEscape:
		answer = "c"
	case KeyChar:
		answer = string(ev.Char)
	case KeySubmit:
		answer = strings.TrimSpace(ev.Text)
	case KeyNone:
		return nil
	}

	switch strings.ToLower(answer) {
	case "y":
		if s.filename == "" {
			s.exitAfterSave = true
			s.enter(PromptSaveFilename)
			return nil
		}
		if err := s.save(s.filename); err != nil {
			s.enter(Editing)
			return err
		}
		s.enter(Closed)
	case "n":
		log.Info().Str("path", s.filename).Msg("closing without saving")
		s.enter(Closed)
	case "c":
		s.notice = Notice{}
		s.enter(Editing)
	default:
		s.notice = Notice{Text: "invalid response: answer y, n or c", Error: true}
	}
	return nil
}
