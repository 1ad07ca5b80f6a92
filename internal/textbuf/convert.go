package textbuf

import "strings"

// Load builds a buffer from file contents. "\r\n" is treated as a single line
// break and a final newline does not produce a trailing empty line. Empty
// input gives one empty line.
func Load(text string) *Buffer {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")
	raw := strings.Split(text, "\n")
	lines := make([][]byte, len(raw))
	for i, l := range raw {
		lines[i] = []byte(l)
	}
	return &Buffer{lines: lines}
}

// Serialize joins the lines with "\n". The last line gets no separator.
func (b *Buffer) Serialize() string {
	var sb strings.Builder
	for i, line := range b.lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.Write(line)
	}
	return sb.String()
}
