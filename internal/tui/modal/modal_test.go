package modal

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/xonecas/scribe/internal/palette"
)

var testColors = ColorsFrom(palette.Default())

func files(query string) []Item {
	all := []Item{
		{Name: "notes.txt", Value: "/home/u/notes.txt"},
		{Name: "todo.md", Value: "/home/u/todo.md"},
		{Name: "draft.txt", Value: "/home/u/draft.txt"},
	}
	if query == "" {
		return all
	}
	var out []Item
	for _, it := range all {
		if strings.Contains(it.Name, query) {
			out = append(out, it)
		}
	}
	return out
}

func key(ch rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: ch, Text: string(ch)}
}

func special(name string) tea.KeyPressMsg {
	switch name {
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case "esc":
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case "up":
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case "down":
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case "backspace":
		return tea.KeyPressMsg{Code: tea.KeyBackspace}
	default:
		return tea.KeyPressMsg{}
	}
}

func typeQuery(p *Picker, s string) {
	for _, r := range s {
		p.HandleMsg(key(r))
	}
}

func TestPickerEscapeCloses(t *testing.T) {
	p := NewPicker(files, "> ", testColors)
	a, _ := p.HandleMsg(special("esc"))
	if _, ok := a.(ActionClose); !ok {
		t.Fatalf("expected ActionClose, got %T", a)
	}
}

func TestPickerEnterSelectsFirst(t *testing.T) {
	p := NewPicker(files, "> ", testColors)
	a, _ := p.HandleMsg(special("enter"))
	sel, ok := a.(ActionSelect)
	if !ok {
		t.Fatalf("expected ActionSelect, got %T", a)
	}
	if sel.Item.Target() != "/home/u/notes.txt" {
		t.Fatalf("expected notes.txt target, got %s", sel.Item.Target())
	}
}

func TestPickerDownThenEnterSelectsHighlighted(t *testing.T) {
	p := NewPicker(files, "> ", testColors)
	p.HandleMsg(special("down")) // enter list, selected=0
	p.HandleMsg(special("down")) // selected=1
	a, _ := p.HandleMsg(special("enter"))
	sel, ok := a.(ActionSelect)
	if !ok {
		t.Fatalf("expected ActionSelect, got %T", a)
	}
	if sel.Item.Name != "todo.md" {
		t.Fatalf("expected todo.md, got %s", sel.Item.Name)
	}
}

func TestPickerUpFromTopReturnsFocusToInput(t *testing.T) {
	p := NewPicker(files, "> ", testColors)
	p.HandleMsg(special("down"))
	if !p.inList {
		t.Fatal("expected inList=true")
	}
	p.HandleMsg(special("up"))
	if p.inList {
		t.Fatal("expected inList=false")
	}
}

func TestPickerTypingProducesDebounceCmd(t *testing.T) {
	p := NewPicker(files, "> ", testColors)
	_, cmd := p.HandleMsg(key('t'))
	if cmd == nil {
		t.Fatal("expected debounce cmd")
	}
	if p.Query() != "t" {
		t.Fatalf("expected query 't', got %q", p.Query())
	}
}

func TestPickerDebounceFiresSearch(t *testing.T) {
	p := NewPicker(files, "> ", testColors)
	typeQuery(&p, "todo")
	p.HandleMsg(debounceMsg{seq: p.seq})
	if got := p.Items(); len(got) != 1 || got[0].Name != "todo.md" {
		t.Fatalf("expected [todo.md], got %v", got)
	}
}

func TestPickerStaleDebounceIgnored(t *testing.T) {
	calls := 0
	searchFn := func(q string) []Item {
		if q != "" {
			calls++
		}
		return nil
	}
	p := NewPicker(searchFn, "> ", testColors)
	p.HandleMsg(key('a'))
	stale := p.seq
	p.HandleMsg(key('b'))
	p.HandleMsg(debounceMsg{seq: stale})
	if calls != 0 {
		t.Fatalf("expected 0 search calls for stale debounce, got %d", calls)
	}
}

func TestPickerEnterRefreshesPendingQuery(t *testing.T) {
	p := NewPicker(files, "> ", testColors)
	typeQuery(&p, "draft")
	// No debounce delivered yet.
	a, _ := p.HandleMsg(special("enter"))
	sel, ok := a.(ActionSelect)
	if !ok || sel.Item.Name != "draft.txt" {
		t.Fatalf("expected draft.txt selected, got %#v", a)
	}
}

func TestPickerBackspaceRemovesChar(t *testing.T) {
	p := NewPicker(files, "> ", testColors)
	typeQuery(&p, "ab")
	p.HandleMsg(special("backspace"))
	if p.Query() != "a" {
		t.Fatalf("expected 'a', got %q", p.Query())
	}
}

func TestPickerPasteDropsNewlines(t *testing.T) {
	p := NewPicker(files, "> ", testColors)
	p.HandleMsg(tea.PasteMsg{Content: "new\nfile.txt"})
	if p.Query() != "newfile.txt" {
		t.Fatalf("got %q", p.Query())
	}
}

func TestPickerFreeform(t *testing.T) {
	p := NewPicker(files, "> ", testColors)
	p.Freeform = true
	typeQuery(&p, "fresh.txt")
	a, _ := p.HandleMsg(special("enter"))
	sel, ok := a.(ActionSelect)
	if !ok {
		t.Fatalf("expected ActionSelect, got %T", a)
	}
	if sel.Item.Target() != "fresh.txt" {
		t.Fatalf("expected query as target, got %q", sel.Item.Target())
	}
}

func TestPickerEmptyResultsEnterNoAction(t *testing.T) {
	p := NewPicker(func(string) []Item { return nil }, "> ", testColors)
	a, _ := p.HandleMsg(special("enter"))
	if a != nil {
		t.Fatalf("expected nil action, got %T", a)
	}
}

func TestPickerViewRenders(t *testing.T) {
	p := NewPicker(files, "Open: ", testColors)
	v := ansi.Strip(p.View(100, 40))
	for _, want := range []string{"Open:", "notes.txt", "todo.md"} {
		if !strings.Contains(v, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestMenuNavigationClamps(t *testing.T) {
	m := NewMenu("scribe", []Item{{Name: "a"}, {Name: "b"}, {Name: "c"}}, testColors)

	m.HandleMsg(special("up"))
	if m.Selected() != 0 {
		t.Fatalf("up at top: selected = %d", m.Selected())
	}
	for range 5 {
		m.HandleMsg(special("down"))
	}
	if m.Selected() != 2 {
		t.Fatalf("down past end: selected = %d", m.Selected())
	}

	a := m.HandleMsg(special("enter"))
	sel, ok := a.(ActionSelect)
	if !ok || sel.Item.Name != "c" {
		t.Fatalf("expected c selected, got %#v", a)
	}
}

func TestMenuLines(t *testing.T) {
	m := NewMenu("", []Item{{Name: "Create"}, {Name: "Edit"}}, testColors)
	m.HandleMsg(special("down"))
	got := m.Lines()
	want := []string{"  Create", "> Edit"}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("Lines = %q, want %q", got, want)
	}
}

func TestMenuIgnoresOtherMessages(t *testing.T) {
	m := NewMenu("", []Item{{Name: "a"}}, testColors)
	if a := m.HandleMsg(tea.WindowSizeMsg{Width: 10, Height: 10}); a != nil {
		t.Fatalf("expected nil action, got %T", a)
	}
}

func TestMenuViewRenders(t *testing.T) {
	m := NewMenu("scribe", []Item{{Name: "Create a new text"}, {Name: "Exit"}}, testColors)
	v := ansi.Strip(m.View(80, 24))
	for _, want := range []string{"scribe", "Create a new text", "Exit"} {
		if !strings.Contains(v, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
