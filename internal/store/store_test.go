package store

import (
	"path/filepath"
	"testing"
	"time"
)

func openTestHistory(t *testing.T, keep int) *History {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	h, err := Open(dbPath, keep)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { h.Close() })

	// Deterministic clock: every call advances one second.
	base := time.Unix(1_700_000_000, 0)
	tick := 0
	h.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Second)
	}
	return h
}

func paths(entries []Entry) []string {
	var out []string
	for _, e := range entries {
		out = append(out, e.Path)
	}
	return out
}

func TestTouch_RecentOrder(t *testing.T) {
	h := openTestHistory(t, 0)
	h.Touch("/a.txt")
	h.Touch("/b.txt")
	h.Touch("/c.txt")
	h.Touch("/a.txt") // reopen moves to front

	got, err := h.Recent(0)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	want := []string{"/a.txt", "/c.txt", "/b.txt"}
	if !sliceEqual(paths(got), want) {
		t.Errorf("Recent = %v, want %v", paths(got), want)
	}
}

func TestRecent_Limit(t *testing.T) {
	h := openTestHistory(t, 0)
	for _, p := range []string{"/1", "/2", "/3", "/4"} {
		h.Touch(p)
	}

	got, err := h.Recent(2)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if want := []string{"/4", "/3"}; !sliceEqual(paths(got), want) {
		t.Errorf("Recent(2) = %v, want %v", paths(got), want)
	}
}

func TestMarkSaved(t *testing.T) {
	h := openTestHistory(t, 0)
	h.Touch("/a.txt")

	got, _ := h.Recent(0)
	if len(got) != 1 || !got[0].Saved.IsZero() {
		t.Fatalf("expected unsaved entry, got %+v", got)
	}

	h.MarkSaved("/a.txt")
	got, _ = h.Recent(0)
	if len(got) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(got))
	}
	if got[0].Saved.IsZero() {
		t.Error("Saved should be set")
	}
	if !got[0].Saved.After(got[0].Opened) {
		t.Errorf("Saved %v should be after Opened %v", got[0].Saved, got[0].Opened)
	}
}

func TestMarkSaved_NewPath(t *testing.T) {
	h := openTestHistory(t, 0)
	h.MarkSaved("/fresh.txt")

	got, _ := h.Recent(0)
	if want := []string{"/fresh.txt"}; !sliceEqual(paths(got), want) {
		t.Errorf("Recent = %v, want %v", paths(got), want)
	}
}

func TestForget(t *testing.T) {
	h := openTestHistory(t, 0)
	h.Touch("/a.txt")
	h.Touch("/b.txt")
	h.Forget("/a.txt")

	got, _ := h.Recent(0)
	if want := []string{"/b.txt"}; !sliceEqual(paths(got), want) {
		t.Errorf("Recent = %v, want %v", paths(got), want)
	}
}

func TestPrune(t *testing.T) {
	h := openTestHistory(t, 0)
	for _, p := range []string{"/1", "/2", "/3", "/4", "/5"} {
		h.Touch(p)
	}

	h.Prune(2)

	got, _ := h.Recent(0)
	if want := []string{"/5", "/4"}; !sliceEqual(paths(got), want) {
		t.Errorf("after Prune(2) = %v, want %v", paths(got), want)
	}
}

func TestKeepBoundsTouch(t *testing.T) {
	h := openTestHistory(t, 3)
	for _, p := range []string{"/1", "/2", "/3", "/4", "/5"} {
		h.Touch(p)
	}

	got, _ := h.Recent(0)
	if want := []string{"/5", "/4", "/3"}; !sliceEqual(paths(got), want) {
		t.Errorf("Recent = %v, want %v", paths(got), want)
	}
}

func TestRelativePathsNormalized(t *testing.T) {
	h := openTestHistory(t, 0)
	h.Touch("notes.txt")
	h.Touch("./notes.txt")

	got, _ := h.Recent(0)
	if len(got) != 1 {
		t.Fatalf("expected one entry, got %v", paths(got))
	}
	if !filepath.IsAbs(got[0].Path) {
		t.Errorf("path %q should be absolute", got[0].Path)
	}
}

func TestReopenPersists(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	h, err := Open(dbPath, 0)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	h.Touch("/kept.txt")
	h.Close()

	h, err = Open(dbPath, 0)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer h.Close()

	got, _ := h.Recent(0)
	if want := []string{"/kept.txt"}; !sliceEqual(paths(got), want) {
		t.Errorf("Recent = %v, want %v", paths(got), want)
	}
}

func TestNilHistory(t *testing.T) {
	var h *History
	h.Touch("/a")
	h.MarkSaved("/a")
	h.Forget("/a")
	h.Prune(1)
	got, err := h.Recent(10)
	if err != nil || got != nil {
		t.Errorf("Recent on nil = %v, %v; want nil, nil", got, err)
	}
	if err := h.Close(); err != nil {
		t.Errorf("Close on nil: %v", err)
	}
}

func sliceEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
