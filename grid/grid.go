package grid

import (
	"math"
	"sort"
)

// ============================================================================
// DECAY GRID — Dense pivot keyed by (compressor_decay, turbine_decay)
// ============================================================================
// Row keys are the sorted distinct compressor decay values present in the
// filtered data; column keys the sorted distinct turbine decay values. Cells
// with no contributing observations are NaN holes — never zero, never
// interpolated. Renderers get ascending keys and an explicit (value, ok)
// marker, so no re-sorting or sentinel guessing on their side.
// ============================================================================

// Grid is a two-dimensional aggregate of one measurement over decay pairs.
type Grid struct {
	field string
	rows  []float64   // sorted compressor decay values
	cols  []float64   // sorted turbine decay values
	cells [][]float64 // [row][col], NaN = hole
}

// Paired holds two cell-aligned grids built from one grouping pass:
// Height (e.g. fuel flow) and Color (e.g. exhaust temperature) share
// identical row and column key sets by construction.
type Paired struct {
	Height *Grid
	Color  *Grid
}

// Field returns the aggregated measurement's canonical key.
func (g *Grid) Field() string { return g.field }

// Rows returns the ascending compressor decay keys.
func (g *Grid) Rows() []float64 { return g.rows }

// Cols returns the ascending turbine decay keys.
func (g *Grid) Cols() []float64 { return g.cols }

// Dims returns (number of rows, number of columns).
func (g *Grid) Dims() (int, int) { return len(g.rows), len(g.cols) }

// Value returns the cell at row index i, column index j.
// ok is false for holes and out-of-range indices.
func (g *Grid) Value(i, j int) (float64, bool) {
	if i < 0 || i >= len(g.rows) || j < 0 || j >= len(g.cols) {
		return 0, false
	}
	v := g.cells[i][j]
	if math.IsNaN(v) {
		return 0, false
	}
	return v, true
}

// Cell looks a cell up by its decay key pair.
func (g *Grid) Cell(compressorDecay, turbineDecay float64) (float64, bool) {
	i := keyIndex(g.rows, compressorDecay)
	j := keyIndex(g.cols, turbineDecay)
	if i < 0 || j < 0 {
		return 0, false
	}
	return g.Value(i, j)
}

// MinMax returns the extremes over defined cells.
// ok is false when every cell is a hole.
func (g *Grid) MinMax() (min, max float64, ok bool) {
	min, max = math.Inf(1), math.Inf(-1)
	for i := range g.cells {
		for _, v := range g.cells[i] {
			if math.IsNaN(v) {
				continue
			}
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
			ok = true
		}
	}
	if !ok {
		return 0, 0, false
	}
	return min, max, true
}

// Holes returns the number of undefined cells.
func (g *Grid) Holes() int {
	n := 0
	for i := range g.cells {
		for _, v := range g.cells[i] {
			if math.IsNaN(v) {
				n++
			}
		}
	}
	return n
}

func keyIndex(keys []float64, k float64) int {
	i := sort.SearchFloat64s(keys, k)
	if i < len(keys) && keys[i] == k {
		return i
	}
	return -1
}

// newGrid allocates an all-hole grid over the given sorted key sets.
func newGrid(field string, rows, cols []float64) *Grid {
	cells := make([][]float64, len(rows))
	for i := range cells {
		cells[i] = make([]float64, len(cols))
		for j := range cells[i] {
			cells[i][j] = math.NaN()
		}
	}
	return &Grid{field: field, rows: rows, cols: cols, cells: cells}
}
