// Package describe produces the text summary of a dataset: per-field count,
// missing cells, mean, standard deviation, and extremes. It backs the CLI's
// --describe mode.
package describe

import (
	"fmt"
	"io"
	"text/tabwriter"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/vessel-dt/decayviz/dataset"
)

// FieldSummary describes one column.
type FieldSummary struct {
	Field   string
	Count   int
	Missing int
	Mean    float64
	StdDev  float64
	Min     float64
	Max     float64
}

// Summarize computes a summary per field, in schema order.
func Summarize(ds *dataset.Dataset) []FieldSummary {
	out := make([]FieldSummary, 0, len(ds.Fields()))
	for _, field := range ds.Fields() {
		s := FieldSummary{
			Field:   field,
			Missing: ds.Missing(field),
		}
		vals := ds.Values(field)
		s.Count = len(vals)
		if len(vals) > 0 {
			s.Mean = stat.Mean(vals, nil)
			s.Min = floats.Min(vals)
			s.Max = floats.Max(vals)
		}
		if len(vals) > 1 {
			s.StdDev = stat.StdDev(vals, nil)
		}
		out = append(out, s)
	}
	return out
}

// Format writes summaries as an aligned text table.
func Format(w io.Writer, summaries []FieldSummary) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "field\tcount\tmissing\tmean\tstd\tmin\tmax")
	for _, s := range summaries {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%.4g\t%.4g\t%.4g\t%.4g\n",
			s.Field, s.Count, s.Missing, s.Mean, s.StdDev, s.Min, s.Max)
	}
	return tw.Flush()
}
