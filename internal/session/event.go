package session

// KeyCode is a logical key. Modifier combinations are resolved into these
// codes before they reach the session.
type KeyCode int

const (
	KeyNone KeyCode = iota
	KeyChar
	KeyEnter
	KeyBackspace
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyEscape
	KeySave
	KeySaveAs
	KeyExit
	// KeySubmit carries a completed line of prompt input in Event.Text.
	KeySubmit
)

var keyNames = [...]string{
	KeyNone:      "none",
	KeyChar:      "char",
	KeyEnter:     "enter",
	KeyBackspace: "backspace",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyHome:      "home",
	KeyEnd:       "end",
	KeyPageUp:    "pgup",
	KeyPageDown:  "pgdown",
	KeyEscape:    "esc",
	KeySave:      "save",
	KeySaveAs:    "save-as",
	KeyExit:      "exit",
	KeySubmit:    "submit",
}

func (k KeyCode) String() string {
	if k < 0 || int(k) >= len(keyNames) {
		return "unknown"
	}
	return keyNames[k]
}

// Event is one discrete input event.
type Event struct {
	Code KeyCode
	Char rune   // set for KeyChar
	Text string // set for KeySubmit
}

// Char returns a printable-character event.
func Char(r rune) Event { return Event{Code: KeyChar, Char: r} }

// Key returns an event for a non-character key.
func Key(code KeyCode) Event { return Event{Code: code} }

// Submit returns a prompt submission carrying text.
func Submit(text string) Event { return Event{Code: KeySubmit, Text: text} }

// State is the session's input mode.
type State int

const (
	Editing State = iota
	PromptSaveFilename
	PromptConfirmExit
	Closed
)

func (s State) String() string {
	switch s {
	case Editing:
		return "editing"
	case PromptSaveFilename:
		return "prompt-save-filename"
	case PromptConfirmExit:
		return "prompt-confirm-exit"
	case Closed:
		return "closed"
	}
	return "unknown"
}
