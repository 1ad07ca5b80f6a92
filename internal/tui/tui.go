// Package tui is the terminal front end: a launch menu, a file picker and
// the editing screen around a session.
package tui

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"github.com/xonecas/scribe/internal/document"
	"github.com/xonecas/scribe/internal/filesearch"
	"github.com/xonecas/scribe/internal/palette"
	"github.com/xonecas/scribe/internal/session"
	"github.com/xonecas/scribe/internal/store"
	"github.com/xonecas/scribe/internal/tui/modal"
)

type mode int

const (
	modeMenu mode = iota
	modePicker
	modeEdit
)

// Rows below the text area: status bar and prompt/notice line.
const chromeRows = 2

const (
	menuCreate = "Create a new text"
	menuEdit   = "Edit an existing text"
	menuExit   = "Exit"
)

// Options configures a Model.
type Options struct {
	// Path, when set, is opened straight away instead of showing the menu.
	Path string

	Palette palette.Palette
	Files   document.Files
	History *store.History     // nil disables recent files
	Finder  *filesearch.Finder // nil limits the picker to recent files

	MaxRecent     int
	HideScrollbar bool
}

// Model is the application model.
type Model struct {
	width  int
	height int
	mode   mode

	menu   modal.Menu
	picker *modal.Picker
	help   *modal.Picker
	flash  session.Notice // shown under the menu

	session *session.Session
	prompt  textinput.Model
	hscroll int // first display column shown in the text area

	// quitOnClose is set when ctrl+c had to go through the exit prompt.
	quitOnClose bool

	files         document.Files
	history       *store.History
	finder        *filesearch.Finder
	maxRecent     int
	hideScrollbar bool

	styles styles
	colors modal.Colors
}

// New creates the model.
func New(opts Options) Model {
	colors := modal.ColorsFrom(opts.Palette)
	prompt := textinput.New()
	prompt.Prompt = ""

	m := Model{
		menu: modal.NewMenu("scribe", []modal.Item{
			{Name: menuCreate},
			{Name: menuEdit},
			{Name: menuExit},
		}, colors),
		prompt:        prompt,
		files:         opts.Files,
		history:       opts.History,
		finder:        opts.Finder,
		maxRecent:     opts.MaxRecent,
		hideScrollbar: opts.HideScrollbar,
		styles:        newStyles(opts.Palette),
		colors:        colors,
	}
	if opts.Path != "" {
		m.openPath(opts.Path)
	}
	return m
}

// Init initializes the TUI (required by BubbleTea)
func (m Model) Init() tea.Cmd {
	return nil
}

// newSession creates a session whose saves are recorded in the history.
func (m *Model) newSession() *session.Session {
	s := session.New(m.files)
	hist := m.history
	s.OnSave = func(path string) { hist.MarkSaved(path) }
	return s
}
