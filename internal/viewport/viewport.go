// Package viewport computes the window of rows shown on screen. It is derived
// state: nothing here mutates the buffer.
package viewport

// Viewport is the first visible row plus the number of rows that fit.
type Viewport struct {
	Start  int
	Height int
}

// Follow scrolls just enough to keep row visible and returns the new start.
func (v *Viewport) Follow(row int) int {
	v.Start = Reconcile(row, v.Height, v.Start)
	return v.Start
}

// Reset scrolls back to the top.
func (v *Viewport) Reset() { v.Start = 0 }

// Reconcile returns the start row that keeps cursorRow inside a window of
// height rows, moving the window as little as possible. A non-positive height
// disables scrolling.
func Reconcile(cursorRow, height, start int) int {
	if height <= 0 {
		return 0
	}
	if start < 0 {
		start = 0
	}
	switch {
	case cursorRow < start:
		return cursorRow
	case cursorRow >= start+height:
		return cursorRow - height + 1
	}
	return start
}

// VisibleSlice returns lines[start:start+height], cut short at the end of
// the buffer. The returned slice aliases lines.
func VisibleSlice(lines []string, start, height int) []string {
	from, to := VisibleRange(len(lines), start, height)
	if from >= to {
		return nil
	}
	return lines[from:to]
}

// VisibleRange returns the bounds [from, to) of the rows a viewport at start
// shows out of bufferLen. from == to when nothing is visible.
func VisibleRange(bufferLen, start, height int) (from, to int) {
	if height <= 0 || start >= bufferLen {
		return 0, 0
	}
	from = max(start, 0)
	to = min(from+height, bufferLen)
	return from, to
}

// ScrollbarExtent returns the thumb position and size in rows for a track of
// height rows. ok is false when the whole buffer fits and no scrollbar should
// be drawn.
func ScrollbarExtent(bufferLen, height, start int) (thumbStart, thumbHeight int, ok bool) {
	if height <= 0 || bufferLen <= height {
		return 0, 0, false
	}
	thumbHeight = height * height / bufferLen
	thumbStart = height * start / bufferLen
	return thumbStart, thumbHeight, true
}
