// Package textbuf holds the line buffer behind the editor and the
// cursor-relative mutations performed on it. Columns are byte offsets into a
// line; nothing in this package knows about display width.
package textbuf

import (
	"fmt"
	"unicode/utf8"
)

// Pos is a cursor position. Col may equal the line length, meaning "after the
// last character".
type Pos struct {
	Col int
	Row int
}

func (p Pos) String() string { return fmt.Sprintf("(%d,%d)", p.Col, p.Row) }

// Buffer is an ordered, never-empty sequence of lines.
type Buffer struct {
	lines [][]byte
}

// New returns a buffer holding a single empty line.
func New() *Buffer {
	return &Buffer{lines: [][]byte{{}}}
}

// Len returns the number of lines. Always >= 1.
func (b *Buffer) Len() int { return len(b.lines) }

// Line returns line i as a string.
func (b *Buffer) Line(i int) string {
	b.checkRow(i)
	return string(b.lines[i])
}

// LineLen returns the byte length of line i.
func (b *Buffer) LineLen(i int) int {
	b.checkRow(i)
	return len(b.lines[i])
}

// Lines returns a copy of every line.
func (b *Buffer) Lines() []string {
	out := make([]string, len(b.lines))
	for i, l := range b.lines {
		out[i] = string(l)
	}
	return out
}

// Range returns a copy of lines [from, to). to is capped at Len.
func (b *Buffer) Range(from, to int) []string {
	from = max(from, 0)
	to = min(to, len(b.lines))
	if from >= to {
		return nil
	}
	out := make([]string, 0, to-from)
	for _, l := range b.lines[from:to] {
		out = append(out, string(l))
	}
	return out
}

// Clamp pulls p back inside the buffer.
func (b *Buffer) Clamp(p Pos) Pos {
	if p.Row < 0 {
		p.Row = 0
	}
	if p.Row >= len(b.lines) {
		p.Row = len(b.lines) - 1
	}
	if p.Col < 0 {
		p.Col = 0
	}
	if n := len(b.lines[p.Row]); p.Col > n {
		p.Col = n
	}
	return p
}

// Valid reports whether p addresses a position inside the buffer.
func (b *Buffer) Valid(p Pos) bool {
	return p.Row >= 0 && p.Row < len(b.lines) && p.Col >= 0 && p.Col <= len(b.lines[p.Row])
}

// An out-of-range position is a caller bug, not a recoverable condition.
func (b *Buffer) mustValid(p Pos) {
	if !b.Valid(p) {
		panic(fmt.Sprintf("textbuf: position %s outside buffer of %d lines", p, len(b.lines)))
	}
}

func (b *Buffer) checkRow(i int) {
	if i < 0 || i >= len(b.lines) {
		panic(fmt.Sprintf("textbuf: row %d outside buffer of %d lines", i, len(b.lines)))
	}
}

// ---------------------------------------------------------------------------
// Editing operations
// ---------------------------------------------------------------------------

// InsertChar inserts c at p and returns the cursor just past it. A rune
// wider than one byte advances the column by its encoded length.
func (b *Buffer) InsertChar(p Pos, c rune) Pos {
	b.mustValid(p)
	enc := utf8.AppendRune(nil, c)
	line := b.lines[p.Row]
	next := make([]byte, 0, len(line)+len(enc))
	next = append(next, line[:p.Col]...)
	next = append(next, enc...)
	next = append(next, line[p.Col:]...)
	b.lines[p.Row] = next
	return Pos{Col: p.Col + len(enc), Row: p.Row}
}

// SplitLine breaks line p.Row at p.Col. The tail becomes a new line directly
// below and the cursor moves to its start.
func (b *Buffer) SplitLine(p Pos) Pos {
	b.mustValid(p)
	line := b.lines[p.Row]
	tail := make([]byte, len(line)-p.Col)
	copy(tail, line[p.Col:])
	b.lines[p.Row] = line[:p.Col:p.Col]

	b.lines = append(b.lines, nil)
	copy(b.lines[p.Row+2:], b.lines[p.Row+1:])
	b.lines[p.Row+1] = tail
	return Pos{Col: 0, Row: p.Row + 1}
}

// Backspace deletes the byte before the cursor, or joins the current line
// onto the previous one when the cursor is at column 0. At the origin it does
// nothing.
func (b *Buffer) Backspace(p Pos) Pos {
	b.mustValid(p)
	switch {
	case p.Col > 0:
		line := b.lines[p.Row]
		b.lines[p.Row] = append(line[:p.Col-1], line[p.Col:]...)
		return Pos{Col: p.Col - 1, Row: p.Row}
	case p.Row > 0:
		prev := b.lines[p.Row-1]
		col := len(prev)
		joined := make([]byte, 0, len(prev)+len(b.lines[p.Row]))
		joined = append(joined, prev...)
		joined = append(joined, b.lines[p.Row]...)
		b.lines[p.Row-1] = joined
		b.lines = append(b.lines[:p.Row], b.lines[p.Row+1:]...)
		return Pos{Col: col, Row: p.Row - 1}
	}
	return p
}
