package preview

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// ChangedLines reports which lines of next (zero-based) were inserted or
// changed relative to prev.
func ChangedLines(prev, next string) map[int]bool {
	changed := make(map[int]bool)
	if prev == next {
		return changed
	}

	dmp := diffmatchpatch.New()
	// Terminate both so the final line compares equal to itself.
	a, b, lines := dmp.DiffLinesToChars(prev+"\n", next+"\n")
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	line := 0
	for _, d := range diffs {
		n := countLines(d.Text)
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			line += n
		case diffmatchpatch.DiffInsert:
			for i := 0; i < n; i++ {
				changed[line+i] = true
			}
			line += n
		}
	}
	return changed
}

func countLines(text string) int {
	if text == "" {
		return 0
	}
	n := strings.Count(text, "\n")
	if !strings.HasSuffix(text, "\n") {
		n++
	}
	return n
}
