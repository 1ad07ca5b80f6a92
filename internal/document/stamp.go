package document

import (
	"os"
	"time"
)

// Stamp is the modification time and size of a file, enough to notice that
// something else wrote it.
type Stamp struct {
	ModTime time.Time
	Size    int64
}

// Stamp returns the current stamp of path. ok is false when path cannot be
// stat'ed or is a directory.
func (f Files) Stamp(path string) (Stamp, bool) {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return Stamp{}, false
	}
	return Stamp{ModTime: info.ModTime(), Size: info.Size()}, true
}

// Changed reports whether the file at path no longer matches s. A file that
// has disappeared counts as changed.
func (f Files) Changed(path string, s Stamp) bool {
	cur, ok := f.Stamp(path)
	if !ok {
		return true
	}
	return !cur.ModTime.Equal(s.ModTime) || cur.Size != s.Size
}
