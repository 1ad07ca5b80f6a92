package tui

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog/log"
	"github.com/xonecas/scribe/internal/filesearch"
	"github.com/xonecas/scribe/internal/store"
	"github.com/xonecas/scribe/internal/tui/modal"
)

// openPicker shows the file picker. An empty query lists recent files, and
// typing searches the finder root.
func (m *Model) openPicker() {
	p := modal.NewPicker(pickerSearch(m.history, m.finder, m.maxRecent), "Open: ", m.colors)
	p.Freeform = true
	m.picker = &p
	m.mode = modePicker
}

func pickerSearch(hist *store.History, finder *filesearch.Finder, maxRecent int) modal.SearchFunc {
	return func(query string) []modal.Item {
		if strings.TrimSpace(query) == "" {
			if items := recentItems(hist, maxRecent); len(items) > 0 {
				return items
			}
		}
		if finder == nil {
			return nil
		}
		matches, err := finder.Find(context.Background(), query)
		if err != nil {
			log.Warn().Err(err).Str("query", query).Msg("file search failed")
			return nil
		}
		items := make([]modal.Item, len(matches))
		for i, mt := range matches {
			items[i] = modal.Item{Name: mt.Path, Value: finder.Abs(mt)}
		}
		return items
	}
}

// recentItems lists history entries that still exist on disk.
func recentItems(hist *store.History, limit int) []modal.Item {
	entries, err := hist.Recent(limit)
	if err != nil {
		log.Warn().Err(err).Msg("failed to read recent files")
		return nil
	}
	var items []modal.Item
	for _, e := range entries {
		if _, err := os.Stat(e.Path); err != nil {
			continue
		}
		desc := "opened " + humanize.Time(e.Opened)
		if e.Saved.After(e.Opened) {
			desc = "saved " + humanize.Time(e.Saved)
		}
		items = append(items, modal.Item{Name: displayPath(e.Path), Desc: desc, Value: e.Path})
	}
	return items
}

// displayPath shortens paths under the working directory or home.
func displayPath(path string) string {
	if wd, err := os.Getwd(); err == nil {
		if rel, err := filepath.Rel(wd, path); err == nil && !strings.HasPrefix(rel, "..") {
			return rel
		}
	}
	if home, err := os.UserHomeDir(); err == nil && strings.HasPrefix(path, home+string(filepath.Separator)) {
		return "~" + path[len(home):]
	}
	return path
}

func (m Model) updatePicker(msg tea.Msg) (tea.Model, tea.Cmd) {
	action, cmd := m.picker.HandleMsg(msg)
	switch a := action.(type) {
	case modal.ActionClose:
		m.picker = nil
		m.mode = modeMenu
		return m, nil
	case modal.ActionSelect:
		m.picker = nil
		m.openPath(a.Item.Target())
		return m, nil
	}
	return m, cmd
}

// openHelp lists the key bindings in a filterable modal.
func (m *Model) openHelp() {
	searchFn := func(query string) []modal.Item {
		q := strings.ToLower(query)
		var items []modal.Item
		for _, h := range helpItems {
			if q == "" || strings.Contains(strings.ToLower(h.key), q) || strings.Contains(strings.ToLower(h.desc), q) {
				items = append(items, modal.Item{Name: h.key, Desc: h.desc})
			}
		}
		return items
	}
	p := modal.NewPicker(searchFn, "Keys: ", m.colors)
	p.WidthPct = 60
	m.help = &p
}

func (m Model) updateHelp(msg tea.Msg) (tea.Model, tea.Cmd) {
	action, cmd := m.help.HandleMsg(msg)
	switch action.(type) {
	case modal.ActionClose, modal.ActionSelect:
		m.help = nil
		return m, nil
	}
	return m, cmd
}
