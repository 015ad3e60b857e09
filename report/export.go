package report

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/vessel-dt/decayviz/grid"
)

// ============================================================================
// GRID EXPORT — pivot table as CSV for spreadsheet use
// ============================================================================

// ExportCSV writes a grid as CSV: first column compressor decay, remaining
// columns one per turbine decay value. Holes export as empty cells.
func ExportCSV(g *grid.Grid, w io.Writer) error {
	cw := csv.NewWriter(w)

	header := make([]string, 0, len(g.Cols())+1)
	header = append(header, "compressor_decay")
	for _, td := range g.Cols() {
		header = append(header, formatKey(td))
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for i, cd := range g.Rows() {
		row := make([]string, 0, len(g.Cols())+1)
		row = append(row, formatKey(cd))
		for j := range g.Cols() {
			if v, ok := g.Value(i, j); ok {
				row = append(row, strconv.FormatFloat(v, 'g', -1, 64))
			} else {
				row = append(row, "")
			}
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func formatKey(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
