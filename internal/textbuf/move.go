package textbuf

// Cursor movement is a pure transform over the buffer; line content is never
// touched. Vertical moves clamp the column to the target line so the result
// is always a valid position.

func (b *Buffer) MoveLeft(p Pos) Pos {
	b.mustValid(p)
	if p.Col > 0 {
		p.Col--
	}
	return p
}

func (b *Buffer) MoveRight(p Pos) Pos {
	b.mustValid(p)
	if p.Col < len(b.lines[p.Row]) {
		p.Col++
	}
	return p
}

func (b *Buffer) MoveUp(p Pos) Pos {
	return b.moveRows(p, -1)
}

func (b *Buffer) MoveDown(p Pos) Pos {
	return b.moveRows(p, 1)
}

// MoveHome moves to the start of the line.
func (b *Buffer) MoveHome(p Pos) Pos {
	b.mustValid(p)
	p.Col = 0
	return p
}

// MoveEnd moves past the last character of the line.
func (b *Buffer) MoveEnd(p Pos) Pos {
	b.mustValid(p)
	p.Col = len(b.lines[p.Row])
	return p
}

// PageUp moves up by n rows, stopping at the first line.
func (b *Buffer) PageUp(p Pos, n int) Pos {
	if n < 1 {
		n = 1
	}
	return b.moveRows(p, -n)
}

// PageDown moves down by n rows, stopping at the last line.
func (b *Buffer) PageDown(p Pos, n int) Pos {
	if n < 1 {
		n = 1
	}
	return b.moveRows(p, n)
}

func (b *Buffer) moveRows(p Pos, delta int) Pos {
	b.mustValid(p)
	row := p.Row + delta
	if row < 0 {
		row = 0
	}
	if row > len(b.lines)-1 {
		row = len(b.lines) - 1
	}
	if row == p.Row {
		return p
	}
	p.Row = row
	if n := len(b.lines[row]); p.Col > n {
		p.Col = n
	}
	return p
}
