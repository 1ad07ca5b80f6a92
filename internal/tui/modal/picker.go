package modal

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// SearchFunc is called with the current query to produce results.
type SearchFunc func(query string) []Item

const (
	debounceDelay = 250 * time.Millisecond

	keyDown      = "down"
	keyBackspace = "backspace"
)

// debounceMsg is sent after the debounce timer fires.
type debounceMsg struct{ seq int }

// Picker is an input line over a filtered list. Typing re-runs the search
// after a short pause; enter picks the highlighted item.
type Picker struct {
	input    []rune
	cursor   int
	items    []Item
	selected int
	inList   bool // true = list focused, false = input focused

	searchFn SearchFunc
	seq      int // debounce sequence counter

	colors Colors

	// Prompt shown before the input text.
	Prompt string
	// Freeform lets enter on a query with no results select the query
	// itself, so a path that does not exist yet can be chosen.
	Freeform bool
	// WidthPct is the modal width as a percentage of the app width.
	WidthPct int
}

// NewPicker creates a picker and runs the initial empty-query search.
func NewPicker(searchFn SearchFunc, prompt string, colors Colors) Picker {
	p := Picker{
		searchFn: searchFn,
		Prompt:   prompt,
		colors:   colors,
		WidthPct: 80,
	}
	p.items = searchFn("")
	return p
}

// Query returns the current input text.
func (p *Picker) Query() string { return string(p.input) }

// Items returns the current results.
func (p *Picker) Items() []Item { return p.items }

// DebounceCmd returns a tea.Cmd that fires after the debounce delay.
func (p *Picker) DebounceCmd() tea.Cmd {
	seq := p.seq
	return tea.Tick(debounceDelay, func(time.Time) tea.Msg {
		return debounceMsg{seq: seq}
	})
}

// HandleMsg processes a tea.Msg and returns an optional Action.
// The second return is a tea.Cmd the parent must dispatch (for debounce).
func (p *Picker) HandleMsg(msg tea.Msg) (Action, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		return p.handleKey(msg)
	case tea.PasteMsg:
		p.insert(msg.Content)
		return nil, p.changed()
	case debounceMsg:
		if msg.seq == p.seq {
			p.refresh()
		}
	}
	return nil, nil
}

func (p *Picker) refresh() {
	p.items = p.searchFn(string(p.input))
	p.selected = 0
	p.inList = false
}

func (p *Picker) handleKey(msg tea.KeyPressMsg) (Action, tea.Cmd) {
	switch k := msg.Keystroke(); k {
	case "esc":
		return ActionClose{}, nil
	case "enter":
		return p.handleEnter(), nil
	case "up", keyDown, "tab":
		p.handleNav(k)
		return nil, nil
	case keyBackspace, "delete", "ctrl+u", "ctrl+k":
		return nil, p.handleDelete(k)
	case "left", "right", "home", "end", "ctrl+a", "ctrl+e":
		p.handleCursor(k)
		return nil, nil
	}

	if !p.inList && msg.Text != "" {
		p.insert(msg.Text)
		return nil, p.changed()
	}
	return nil, nil
}

func (p *Picker) insert(text string) {
	text = strings.NewReplacer("\r", "", "\n", "").Replace(text)
	for _, r := range text {
		p.input = append(p.input[:p.cursor], append([]rune{r}, p.input[p.cursor:]...)...)
		p.cursor++
	}
}

func (p *Picker) changed() tea.Cmd {
	p.seq++
	return p.DebounceCmd()
}

func (p *Picker) handleEnter() Action {
	// A pending debounce means the list is stale.
	if !p.inList && len(p.input) > 0 {
		p.refresh()
	}
	if len(p.items) == 0 {
		if p.Freeform && strings.TrimSpace(p.Query()) != "" {
			return ActionSelect{Item: Item{Name: strings.TrimSpace(p.Query())}}
		}
		return nil
	}
	idx := p.selected
	if idx >= len(p.items) {
		idx = 0
	}
	return ActionSelect{Item: p.items[idx]}
}

func (p *Picker) handleNav(key string) {
	switch key {
	case "up":
		if p.inList {
			if p.selected > 0 {
				p.selected--
			} else {
				p.inList = false
			}
		}
	case keyDown, "tab":
		if !p.inList {
			if len(p.items) > 0 {
				p.inList = true
				p.selected = 0
			}
		} else if p.selected < len(p.items)-1 {
			p.selected++
		}
	}
}

func (p *Picker) handleDelete(key string) tea.Cmd {
	switch key {
	case keyBackspace:
		if p.cursor == 0 {
			return nil
		}
		p.input = append(p.input[:p.cursor-1], p.input[p.cursor:]...)
		p.cursor--
	case "delete":
		if p.cursor >= len(p.input) {
			return nil
		}
		p.input = append(p.input[:p.cursor], p.input[p.cursor+1:]...)
	case "ctrl+u":
		p.input = p.input[p.cursor:]
		p.cursor = 0
	case "ctrl+k":
		p.input = p.input[:p.cursor]
	}
	return p.changed()
}

func (p *Picker) handleCursor(key string) {
	if p.inList {
		return
	}
	switch key {
	case "left":
		if p.cursor > 0 {
			p.cursor--
		}
	case "right":
		if p.cursor < len(p.input) {
			p.cursor++
		}
	case "home", "ctrl+a":
		p.cursor = 0
	case "end", "ctrl+e":
		p.cursor = len(p.input)
	}
}

// View renders the picker centered in the app area.
func (p *Picker) View(appWidth, appHeight int) string {
	pct := p.WidthPct
	if pct <= 0 {
		pct = 80
	}
	w := max(appWidth*pct/100, 30)
	h := max(appHeight*80/100, 8)
	innerW := max(w-6, 10) // border + padding

	prompt := p.Prompt
	if prompt == "" {
		prompt = "> "
	}
	listHeight := max(h-4, 1) // border top/bottom + input + divider

	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(p.colors.Dim))
	var b strings.Builder
	b.WriteString(p.renderInput(prompt))
	b.WriteByte('\n')
	b.WriteString(dimStyle.Render(strings.Repeat("─", innerW)))
	if len(p.items) == 0 && p.Freeform && len(p.input) > 0 {
		b.WriteByte('\n')
		b.WriteString(padRight(dimStyle.Render("enter: new file "+p.Query()), innerW))
		listHeight--
	}
	for _, l := range renderRows(p.colors, p.items, p.selected, p.inList, innerW, listHeight) {
		b.WriteByte('\n')
		b.WriteString(l)
	}
	return box(p.colors, w, appWidth, appHeight, b.String())
}

func (p *Picker) renderInput(prompt string) string {
	if p.inList {
		return prompt + string(p.input)
	}
	before := string(p.input[:p.cursor])
	cursorStyle := lipgloss.NewStyle().Reverse(true)
	cursorChar := " "
	after := ""
	if p.cursor < len(p.input) {
		cursorChar = string(p.input[p.cursor])
		after = string(p.input[p.cursor+1:])
	}
	return prompt + before + cursorStyle.Render(cursorChar) + after
}
