package document

import (
	"strconv"

	"github.com/hexops/gotextdiff"
	"github.com/hexops/gotextdiff/myers"
	"github.com/hexops/gotextdiff/span"
)

// DiffStat counts whole lines inserted into and deleted from a saved text.
type DiffStat struct {
	Added   int
	Removed int
}

// Empty reports whether the texts had no line-level differences.
func (d DiffStat) Empty() bool { return d.Added == 0 && d.Removed == 0 }

func (d DiffStat) String() string {
	return "+" + strconv.Itoa(d.Added) + " -" + strconv.Itoa(d.Removed)
}

// Summarize diffs saved against current line by line.
func Summarize(saved, current string) DiffStat {
	if saved == current {
		return DiffStat{}
	}
	// Files usually end in a newline and serialized buffers never do; that
	// difference alone is not an unsaved change.
	saved, current = terminate(saved), terminate(current)

	edits := myers.ComputeEdits(span.URIFromPath("saved"), saved, current)
	unified := gotextdiff.ToUnified("saved", "buffer", saved, edits)

	var stat DiffStat
	for _, h := range unified.Hunks {
		for _, l := range h.Lines {
			switch l.Kind {
			case gotextdiff.Insert:
				stat.Added++
			case gotextdiff.Delete:
				stat.Removed++
			}
		}
	}
	return stat
}

func terminate(s string) string {
	if s == "" || s[len(s)-1] == '\n' {
		return s
	}
	return s + "\n"
}
