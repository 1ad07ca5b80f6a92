// Package store provides a SQLite-backed history of recently edited files.
package store

import (
	"database/sql"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite" // register sqlite driver
)

const schema = `
CREATE TABLE IF NOT EXISTS recent_files (
	path    TEXT PRIMARY KEY,
	opened  INTEGER NOT NULL,
	saved   INTEGER NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_recent_opened ON recent_files(opened);
`

// Entry is one remembered file.
type Entry struct {
	Path   string
	Opened time.Time
	Saved  time.Time // zero if never saved from the editor
}

// History remembers which files were opened and saved. All methods are safe
// to call on a nil receiver, which behaves as a disabled history.
type History struct {
	mu   sync.Mutex
	db   *sql.DB
	keep int
	now  func() time.Time
}

// Open creates or opens a history database at the given path. keep bounds
// the number of entries retained; zero means unbounded.
func Open(dbPath string, keep int) (*History, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}

	// SQLite pragmas for performance.
	for _, pragma := range []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("pragma %q: %w", pragma, err)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	// Databases created before saves were tracked lack the column.
	if !hasColumn(db, "recent_files", "saved") {
		if _, err := db.Exec("ALTER TABLE recent_files ADD COLUMN saved INTEGER NOT NULL DEFAULT 0"); err != nil {
			db.Close()
			return nil, fmt.Errorf("migrate recent_files: %w", err)
		}
	}

	h := &History{db: db, keep: keep, now: time.Now}
	h.prune(keep)
	return h, nil
}

// Close closes the database.
func (h *History) Close() error {
	if h == nil {
		return nil
	}
	return h.db.Close()
}

// Touch records that path was opened now.
func (h *History) Touch(path string) {
	if h == nil {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()

	path = normalizePath(path)
	_, err := h.db.Exec(
		`INSERT INTO recent_files (path, opened) VALUES (?, ?)
		 ON CONFLICT(path) DO UPDATE SET opened = excluded.opened`,
		path, h.now().UnixNano(),
	)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("failed to record opened file")
		return
	}
	h.prune(h.keep)
}

// MarkSaved records that path was saved now. A file saved for the first time
// also counts as opened.
func (h *History) MarkSaved(path string) {
	if h == nil {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()

	path = normalizePath(path)
	now := h.now().UnixNano()
	_, err := h.db.Exec(
		`INSERT INTO recent_files (path, opened, saved) VALUES (?, ?, ?)
		 ON CONFLICT(path) DO UPDATE SET saved = excluded.saved`,
		path, now, now,
	)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("failed to record saved file")
		return
	}
	h.prune(h.keep)
}

// Forget removes path from the history.
func (h *History) Forget(path string) {
	if h == nil {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()

	path = normalizePath(path)
	if _, err := h.db.Exec("DELETE FROM recent_files WHERE path = ?", path); err != nil {
		log.Warn().Err(err).Str("path", path).Msg("failed to forget file")
	}
}

// Recent returns up to limit entries, most recently opened first. A
// non-positive limit returns everything.
func (h *History) Recent(limit int) ([]Entry, error) {
	if h == nil {
		return nil, nil
	}
	h.mu.Lock()
	defer h.mu.Unlock()

	if limit <= 0 {
		limit = -1 // sqlite: no limit
	}
	rows, err := h.db.Query(
		"SELECT path, opened, saved FROM recent_files ORDER BY opened DESC, path LIMIT ?",
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var opened, saved int64
		if err := rows.Scan(&e.Path, &opened, &saved); err != nil {
			continue
		}
		e.Opened = time.Unix(0, opened)
		if saved > 0 {
			e.Saved = time.Unix(0, saved)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Prune keeps only the keep most recently opened entries.
func (h *History) Prune(keep int) {
	if h == nil {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.prune(keep)
}

// --- Helpers ---

// prune is Prune without locking. Non-positive keep is a no-op.
func (h *History) prune(keep int) {
	if keep <= 0 {
		return
	}
	res, err := h.db.Exec(
		`DELETE FROM recent_files WHERE path NOT IN (
			SELECT path FROM recent_files ORDER BY opened DESC, path LIMIT ?
		)`, keep,
	)
	if err != nil {
		log.Warn().Err(err).Msg("failed to prune history")
		return
	}
	if n, _ := res.RowsAffected(); n > 0 {
		log.Debug().Int64("deleted", n).Msg("pruned history entries")
	}
}

// hasColumn checks if a table has a specific column.
func hasColumn(db *sql.DB, table, column string) bool {
	rows, err := db.Query(fmt.Sprintf("PRAGMA table_info(%s)", table)) //nolint:gosec // table name is hardcoded by caller
	if err != nil {
		return false
	}
	defer rows.Close()
	for rows.Next() {
		var cid int
		var name, typ string
		var notNull, pk int
		var dflt sql.NullString
		if err := rows.Scan(&cid, &name, &typ, &notNull, &dflt, &pk); err != nil {
			continue
		}
		if name == column {
			return true
		}
	}
	return false
}

// normalizePath makes paths absolute so the same file opened from different
// working directories is one entry.
func normalizePath(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return filepath.Clean(path)
}
