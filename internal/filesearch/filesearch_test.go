package filesearch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
}

func matchPaths(ms []Match) []string {
	var out []string
	for _, m := range ms {
		out = append(out, m.Path)
	}
	return out
}

func TestFind(t *testing.T) {
	tmpDir := t.TempDir()
	writeTree(t, tmpDir, map[string]string{
		"notes.txt":             "hello",
		"todo.md":               "- [ ] write",
		"docs/design.md":        "design",
		"docs/notes/week1.txt":  "monday",
		"journal/2024/notes.md": "entry",
	})

	finder, err := New(tmpDir, 0)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{
			name:  "basename hits rank first",
			query: "notes",
			want:  []string{"notes.txt", "journal/2024/notes.md", "docs/notes/week1.txt"},
		},
		{
			name:  "case insensitive",
			query: "DESIGN",
			want:  []string{"docs/design.md"},
		},
		{
			name:  "all terms must match",
			query: "docs txt",
			want:  []string{"docs/notes/week1.txt"},
		},
		{
			name:  "no match",
			query: "missing",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := finder.Find(context.Background(), tt.query)
			if err != nil {
				t.Fatalf("Find failed: %v", err)
			}
			if !sliceEqual(matchPaths(got), tt.want) {
				t.Errorf("Find(%q) = %v, want %v", tt.query, matchPaths(got), tt.want)
			}
		})
	}
}

func TestFindEmptyQueryListsEverything(t *testing.T) {
	tmpDir := t.TempDir()
	writeTree(t, tmpDir, map[string]string{
		"a.txt":   "a",
		"b/c.txt": "c",
	})

	finder, err := New(tmpDir, 0)
	if err != nil {
		t.Fatal(err)
	}
	got, err := finder.Find(context.Background(), "")
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"a.txt", "b/c.txt"}; !sliceEqual(matchPaths(got), want) {
		t.Errorf("got %v, want %v", matchPaths(got), want)
	}
}

func TestFindSkipsIgnoredAndBinary(t *testing.T) {
	tmpDir := t.TempDir()
	writeTree(t, tmpDir, map[string]string{
		".gitignore":                "*.log\nnode_modules/\ndist/\n",
		"main.txt":                  "text",
		"test.log":                  "log",
		"node_modules/package.json": "{}",
		"dist/bundle.js":            "js",
		".git/HEAD":                 "ref: refs/heads/main",
		"image.bin":                 "PNG\x00\x01\x02",
	})

	finder, err := New(tmpDir, 0)
	if err != nil {
		t.Fatal(err)
	}
	got, err := finder.Find(context.Background(), "")
	if err != nil {
		t.Fatal(err)
	}

	// .gitignore itself is a text file and stays visible.
	if want := []string{"main.txt", ".gitignore"}; !sliceEqual(matchPaths(got), want) {
		t.Errorf("got %v, want %v", matchPaths(got), want)
	}
}

func TestFindMaxResults(t *testing.T) {
	tmpDir := t.TempDir()
	files := map[string]string{}
	for i := 0; i < 20; i++ {
		files["file/"+string(rune('a'+i))+".txt"] = "test"
	}
	writeTree(t, tmpDir, files)

	finder, err := New(tmpDir, 5)
	if err != nil {
		t.Fatal(err)
	}
	got, err := finder.Find(context.Background(), ".txt")
	if err != nil {
		t.Fatalf("Find failed: %v", err)
	}
	if len(got) != 5 {
		t.Errorf("expected 5 results (max), got %d", len(got))
	}
}

func TestFindCancelled(t *testing.T) {
	tmpDir := t.TempDir()
	writeTree(t, tmpDir, map[string]string{"a.txt": "a"})

	finder, err := New(tmpDir, 0)
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := finder.Find(ctx, ""); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestAbs(t *testing.T) {
	finder := &Finder{Root: "/tmp/root"}
	got := finder.Abs(Match{Path: "docs/a.txt"})
	if want := filepath.Join("/tmp/root", "docs", "a.txt"); got != want {
		t.Errorf("Abs = %q, want %q", got, want)
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
