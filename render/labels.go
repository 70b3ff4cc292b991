package render

import (
	"strconv"

	"github.com/katalvlaran/pairwise/ipo"
)

// Labeler names columns (parameters) and cells (values).
type Labeler interface {
	Heading(p int) string
	Label(v ipo.Value) string
}

// Symbolic labels parameter p as "F<p+1>" and its values with the
// lowercase letter of p followed by the 1-based level: a1, a2, b1, ...
type Symbolic struct{}

var _ Labeler = Symbolic{}

// Heading returns "F1", "F2", ...
func (Symbolic) Heading(p int) string { return "F" + strconv.Itoa(p+1) }

// Label returns e.g. "c5" for Value{Param: 2, Level: 4}.
func (Symbolic) Label(v ipo.Value) string { return LetterID(v.Param) + strconv.Itoa(v.Level+1) }

// LetterID returns the lowercase Latin letter for idx in [0..25], e.g. 0→"a".
// Indices outside the alphabet render as "x<idx>".
//
// Complexity: O(1).
func LetterID(idx int) string {
	if idx < 0 || idx >= ipo.MaxParameters {
		return "x" + strconv.Itoa(idx)
	}

	return string('a' + rune(idx))
}

// Cells renders headers ("Run", then one per parameter) and one row per run
// (1-based run number, then labels). Placeholders render as "-".
func Cells(runs []ipo.Run, n int, l Labeler) (headers []string, rows [][]string) {
	headers = make([]string, 0, n+1)
	headers = append(headers, "Run")
	for p := 0; p < n; p++ {
		headers = append(headers, l.Heading(p))
	}

	rows = make([][]string, 0, len(runs))
	for i, r := range runs {
		row := make([]string, 0, n+1)
		row = append(row, strconv.Itoa(i+1))
		for p := 0; p < n; p++ {
			if v, ok := r.Value(p); ok {
				row = append(row, l.Label(v))
			} else {
				row = append(row, "-")
			}
		}
		rows = append(rows, row)
	}

	return headers, rows
}
