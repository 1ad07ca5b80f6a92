// Package document reads and writes whole text files for the editor and
// summarises how the in-memory text differs from what is on disk.
package document

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
)

// ErrIsDir is returned when a path names a directory.
var ErrIsDir = errors.New("path is a directory")

// Files reads and writes documents on the local filesystem.
type Files struct {
	// Perm is used for newly created files. Zero means 0644.
	Perm fs.FileMode
}

// Read returns the full contents of path. found is false, with a nil error,
// when nothing exists at path.
func (f Files) Read(path string) (text string, found bool, err error) {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return "", false, fmt.Errorf("read %s: %w", path, ErrIsDir)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", false, fmt.Errorf("read %s: %w", path, err)
	}
	log.Debug().Str("path", path).Int("bytes", len(data)).Msg("document read")
	return string(data), true, nil
}

// Write replaces the contents of path with text, creating parent
// directories as needed.
func (f Files) Write(path, text string) error {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return fmt.Errorf("write %s: %w", path, ErrIsDir)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}
	perm := f.Perm
	if perm == 0 {
		perm = 0o644
	}
	if err := os.WriteFile(path, []byte(text), perm); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	log.Debug().Str("path", path).Int("bytes", len(text)).Msg("document written")
	return nil
}
