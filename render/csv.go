package render

import (
	"encoding/csv"
	"io"

	"github.com/katalvlaran/pairwise/ipo"
)

// WriteCSV writes a header row and one record per run.
func WriteCSV(w io.Writer, runs []ipo.Run, n int, l Labeler) error {
	headers, rows := Cells(runs, n, l)
	cw := csv.NewWriter(w)
	if err := cw.Write(headers); err != nil {
		return err
	}
	if err := cw.WriteAll(rows); err != nil {
		return err
	}

	return cw.Error()
}
