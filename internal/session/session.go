// Package session ties a text buffer and its viewport to a document on disk.
// It turns logical key events into buffer edits and cursor moves, and runs
// the save-as and exit-confirmation prompts as an explicit state machine.
package session

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/xonecas/scribe/internal/document"
	"github.com/xonecas/scribe/internal/textbuf"
	"github.com/xonecas/scribe/internal/viewport"
)

// ErrClosed is returned for events sent after the session has closed.
var ErrClosed = errors.New("session closed")

// Store reads and writes whole documents.
type Store interface {
	Read(path string) (text string, found bool, err error)
	Write(path, text string) error
}

// Stamper is implemented by stores that can tell when a file was rewritten
// behind the session's back.
type Stamper interface {
	Stamp(path string) (document.Stamp, bool)
	Changed(path string, s document.Stamp) bool
}

// Notice is a one-line message for the user.
type Notice struct {
	Text  string
	Error bool
}

// Session is a single open document. It is not safe for concurrent use; the
// caller feeds it one event at a time.
type Session struct {
	// OnSave, if set, is called after every successful save.
	OnSave func(path string)

	store Store

	buf    *textbuf.Buffer
	cursor textbuf.Pos
	view   viewport.Viewport

	filename string
	modified bool
	saved    string // text as last read from or written to disk
	stamp    document.Stamp
	stamped  bool

	state         State
	exitAfterSave bool
	notice        Notice
}

// New returns a session holding an empty, unnamed document.
func New(store Store) *Session {
	s := &Session{store: store}
	s.NewDocument()
	return s
}

// NewDocument discards the buffer and starts over with an empty one.
func (s *Session) NewDocument() {
	s.buf = textbuf.New()
	s.cursor = textbuf.Pos{}
	s.view.Reset()
	s.filename = ""
	s.modified = false
	s.saved = ""
	s.stamped = false
	s.state = Editing
	s.exitAfterSave = false
	s.notice = Notice{}
}

// Open loads path into the session. When nothing exists at path, found is
// false and the session is left as it was.
func (s *Session) Open(path string) (found bool, err error) {
	text, found, err := s.store.Read(path)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("open failed")
		return false, err
	}
	if !found {
		return false, nil
	}

	s.buf = textbuf.Load(text)
	s.cursor = textbuf.Pos{}
	s.view.Follow(s.cursor.Row)
	s.filename = path
	s.modified = false
	s.saved = text
	s.recordStamp(path)
	s.state = Editing
	s.exitAfterSave = false
	s.notice = Notice{Text: fmt.Sprintf("%q %d lines", path, s.buf.Len())}
	log.Info().Str("path", path).Int("lines", s.buf.Len()).Msg("document opened")
	return true, nil
}

// SetFilename names the document without touching the disk.
func (s *Session) SetFilename(path string) { s.filename = path }

// SetHeight sets the number of text rows the viewport may show.
func (s *Session) SetHeight(h int) {
	s.view.Height = h
	s.view.Follow(s.cursor.Row)
}

// MoveTo places the cursor at p, pulled back inside the buffer. It only
// applies while editing.
func (s *Session) MoveTo(p textbuf.Pos) {
	if s.state != Editing {
		return
	}
	s.cursor = s.buf.Clamp(p)
	s.view.Follow(s.cursor.Row)
}

// SetNotice replaces the current notice.
func (s *Session) SetNotice(text string, isErr bool) {
	s.notice = Notice{Text: text, Error: isErr}
}

func (s *Session) State() State        { return s.state }
func (s *Session) Filename() string    { return s.filename }
func (s *Session) Modified() bool      { return s.modified }
func (s *Session) Cursor() textbuf.Pos { return s.cursor }
func (s *Session) Text() string        { return s.buf.Serialize() }
func (s *Session) Lines() []string     { return s.buf.Lines() }
func (s *Session) Start() int          { return s.view.Start }

// Pending summarises how the buffer differs from the document on disk.
func (s *Session) Pending() document.DiffStat {
	return document.Summarize(s.saved, s.buf.Serialize())
}

// save writes the buffer to path. On failure the buffer, the filename and
// the modified flag are left as they were.
func (s *Session) save(path string) error {
	text := s.buf.Serialize()
	clobbered := s.changedOnDisk(path)
	if err := s.store.Write(path, text); err != nil {
		s.notice = Notice{Text: "save failed: " + err.Error(), Error: true}
		log.Warn().Err(err).Str("path", path).Msg("save failed")
		return err
	}
	s.filename = path
	s.modified = false
	s.saved = text
	s.recordStamp(path)
	s.notice = Notice{Text: fmt.Sprintf("%q %d lines written", path, s.buf.Len())}
	if clobbered {
		s.notice.Text += " (overwrote changes on disk)"
		log.Warn().Str("path", path).Msg("file changed on disk since it was read")
	}
	log.Info().Str("path", path).Int("lines", s.buf.Len()).Msg("document saved")
	if s.OnSave != nil {
		s.OnSave(path)
	}
	return nil
}

// Save writes the document to its current filename. Without a filename it
// opens the save-as prompt instead and returns nil.
func (s *Session) Save() error {
	if s.filename == "" {
		s.enter(PromptSaveFilename)
		return nil
	}
	return s.save(s.filename)
}

// SaveAs writes the document to path and makes path the current filename.
func (s *Session) SaveAs(path string) error {
	return s.save(path)
}

func (s *Session) recordStamp(path string) {
	st, ok := s.store.(Stamper)
	if !ok {
		s.stamped = false
		return
	}
	s.stamp, s.stamped = st.Stamp(path)
}

// changedOnDisk reports whether path is the file last read or written and
// something else has rewritten it since.
func (s *Session) changedOnDisk(path string) bool {
	st, ok := s.store.(Stamper)
	if !ok || !s.stamped || path != s.filename {
		return false
	}
	return st.Changed(path, s.stamp)
}
