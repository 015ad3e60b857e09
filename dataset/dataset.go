package dataset

import (
	"fmt"
	"math"
)

// ============================================================================
// DATASET — Column-oriented sensor table
// ============================================================================
// Every field is a real-valued measurement. Missing values are stored as NaN
// and surfaced through (value, ok) accessors — never silently coerced to
// zero. The struct is append-only during load and read-only afterwards;
// every derived structure (grids, series) is recomputed per request.
// ============================================================================

// Dataset holds a fixed-schema table of observations.
type Dataset struct {
	fields []string
	index  map[string]int
	cols   [][]float64
	n      int
}

// New creates an empty Dataset with the given field names.
func New(fields ...string) *Dataset {
	d := &Dataset{
		fields: append([]string(nil), fields...),
		index:  make(map[string]int, len(fields)),
		cols:   make([][]float64, len(fields)),
	}
	for i, f := range fields {
		d.index[f] = i
	}
	return d
}

// Append adds one observation. Values must match the field order;
// use NaN for missing entries.
func (d *Dataset) Append(values ...float64) error {
	if len(values) != len(d.fields) {
		return fmt.Errorf("row has %d values, schema has %d fields", len(values), len(d.fields))
	}
	for i, v := range values {
		d.cols[i] = append(d.cols[i], v)
	}
	d.n++
	return nil
}

// Len returns the number of observations.
func (d *Dataset) Len() int { return d.n }

// Fields returns the field names in schema order.
func (d *Dataset) Fields() []string { return d.fields }

// Has reports whether a field exists in the schema.
func (d *Dataset) Has(field string) bool {
	_, ok := d.index[field]
	return ok
}

// Value returns the measurement at row i. ok is false when the field is
// absent or the cell is missing.
func (d *Dataset) Value(i int, field string) (float64, bool) {
	col, ok := d.index[field]
	if !ok || i < 0 || i >= d.n {
		return 0, false
	}
	v := d.cols[col][i]
	if math.IsNaN(v) {
		return 0, false
	}
	return v, true
}

// Column returns the raw backing slice for a field (NaN = missing).
// Callers must not mutate it.
func (d *Dataset) Column(field string) ([]float64, bool) {
	col, ok := d.index[field]
	if !ok {
		return nil, false
	}
	return d.cols[col], true
}

// Values returns a fresh copy of a field's defined values, missing
// entries stripped.
func (d *Dataset) Values(field string) []float64 {
	col, ok := d.Column(field)
	if !ok {
		return nil
	}
	out := make([]float64, 0, len(col))
	for _, v := range col {
		if !math.IsNaN(v) {
			out = append(out, v)
		}
	}
	return out
}

// Missing returns how many cells of a field are undefined.
func (d *Dataset) Missing(field string) int {
	col, ok := d.Column(field)
	if !ok {
		return 0
	}
	n := 0
	for _, v := range col {
		if math.IsNaN(v) {
			n++
		}
	}
	return n
}

// ============================================================================
// SELECTION — zero-copy row subset
// ============================================================================

// Selection is a filtered view over a parent Dataset. It holds row indices
// only — no data copy.
type Selection struct {
	parent  *Dataset
	indices []int
}

// Select returns a Selection of rows where pred is true.
func (d *Dataset) Select(pred func(i int) bool) *Selection {
	indices := make([]int, 0, d.n)
	for i := 0; i < d.n; i++ {
		if pred(i) {
			indices = append(indices, i)
		}
	}
	return &Selection{parent: d, indices: indices}
}

// Len returns the number of selected rows.
func (s *Selection) Len() int { return len(s.indices) }

// Value returns the measurement at selected row i.
func (s *Selection) Value(i int, field string) (float64, bool) {
	if i < 0 || i >= len(s.indices) {
		return 0, false
	}
	return s.parent.Value(s.indices[i], field)
}

// RowIndex maps a selection position back to the parent row index.
func (s *Selection) RowIndex(i int) int { return s.indices[i] }
