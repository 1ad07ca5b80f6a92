package document

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestStamp(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "note.txt")
	files := Files{}

	if _, ok := files.Stamp(path); ok {
		t.Fatal("missing file should have no stamp")
	}
	if _, ok := files.Stamp(dir); ok {
		t.Fatal("directory should have no stamp")
	}

	if err := files.Write(path, "one"); err != nil {
		t.Fatal(err)
	}
	s, ok := files.Stamp(path)
	if !ok || s.Size != 3 {
		t.Fatalf("stamp = %+v, %v", s, ok)
	}
	if files.Changed(path, s) {
		t.Fatal("untouched file reported as changed")
	}

	// Another writer: different size and a later mtime.
	if err := os.WriteFile(path, []byte("three"), 0o644); err != nil {
		t.Fatal(err)
	}
	later := s.ModTime.Add(2 * time.Second)
	if err := os.Chtimes(path, later, later); err != nil {
		t.Fatal(err)
	}
	if !files.Changed(path, s) {
		t.Fatal("rewritten file not reported as changed")
	}

	if err := os.Remove(path); err != nil {
		t.Fatal(err)
	}
	if !files.Changed(path, s) {
		t.Fatal("removed file not reported as changed")
	}
}
