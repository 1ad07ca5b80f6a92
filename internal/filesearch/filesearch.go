// Package filesearch finds editable text files under a directory.
package filesearch

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const (
	maxFileSize = 10 * 1024 * 1024 // 10 MB
	sniffSize   = 8000             // bytes inspected for NUL when detecting binaries
)

// Match is one file offered to the picker.
type Match struct {
	Path  string // relative to the finder root, slash separated
	score int
}

// Finder walks a root directory looking for files whose path matches a query.
type Finder struct {
	Root       string
	MaxResults int // 0 = unlimited

	ignore *Ignore
}

// New creates a finder rooted at root, loading its ignore rules. An empty
// root means the working directory.
func New(root string, maxResults int) (*Finder, error) {
	if root == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}
		root = wd
	}
	ign, err := LoadIgnore(root)
	if err != nil {
		// Non-fatal: just won't filter ignored files
		ign = &Ignore{}
	}
	return &Finder{Root: root, MaxResults: maxResults, ignore: ign}, nil
}

// Find returns files whose relative path contains every whitespace-separated
// term of query, case-insensitively. Basename hits rank above directory hits,
// then shorter paths first. An empty query matches every file.
func (f *Finder) Find(ctx context.Context, query string) ([]Match, error) {
	terms := strings.Fields(strings.ToLower(query))

	var matches []Match
	err := filepath.WalkDir(f.Root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if path == f.Root {
			return nil
		}
		rel, err := filepath.Rel(f.Root, path)
		if err != nil {
			return nil
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if d.Name() == ".git" || f.ignore.Matches(rel, true) {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() || f.ignore.Matches(rel, false) {
			return nil
		}

		score, ok := scorePath(rel, terms)
		if !ok || !isText(path, d) {
			return nil
		}
		matches = append(matches, Match{Path: rel, score: score})
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].score != matches[j].score {
			return matches[i].score > matches[j].score
		}
		if len(matches[i].Path) != len(matches[j].Path) {
			return len(matches[i].Path) < len(matches[j].Path)
		}
		return matches[i].Path < matches[j].Path
	})
	if f.MaxResults > 0 && len(matches) > f.MaxResults {
		matches = matches[:f.MaxResults]
	}
	return matches, nil
}

// Abs joins a match path back onto the finder root.
func (f *Finder) Abs(m Match) string {
	return filepath.Join(f.Root, filepath.FromSlash(m.Path))
}

// scorePath reports whether rel contains every term, and how many of the
// terms land in its basename.
func scorePath(rel string, terms []string) (int, bool) {
	lower := strings.ToLower(rel)
	base := lower[strings.LastIndex(lower, "/")+1:]
	score := 0
	for _, t := range terms {
		if !strings.Contains(lower, t) {
			return 0, false
		}
		if strings.Contains(base, t) {
			score++
		}
	}
	return score, true
}

// isText rejects oversized files and files with a NUL byte near the start.
func isText(path string, d fs.DirEntry) bool {
	info, err := d.Info()
	if err != nil || info.Size() > maxFileSize {
		return false
	}
	file, err := os.Open(path)
	if err != nil {
		return false
	}
	defer file.Close()

	buf := make([]byte, sniffSize)
	n, err := io.ReadFull(file, buf)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return false
	}
	return !bytes.Contains(buf[:n], []byte{0})
}
