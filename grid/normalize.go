package grid

import "math"

// ============================================================================
// NORMALIZE — Map a grid or value slice into [0,1] for color scales
// ============================================================================

// NormalizeOption pins one bound of the normalization range. A bound left
// unset is taken from the grid's own extremes.
type NormalizeOption func(*normalizeBounds)

type normalizeBounds struct {
	min, max       float64
	hasMin, hasMax bool
}

// WithMin fixes the lower bound of the range.
func WithMin(v float64) NormalizeOption {
	return func(b *normalizeBounds) { b.min, b.hasMin = v, true }
}

// WithMax fixes the upper bound of the range.
func WithMax(v float64) NormalizeOption {
	return func(b *normalizeBounds) { b.max, b.hasMax = v, true }
}

// Normalize maps a grid's defined cells into [0,1]. Bounds not pinned via
// WithMin/WithMax come from the grid's own extremes. Holes stay holes. Fails
// with DegenerateRangeError when the range collapses to a point (including
// an all-hole grid, which has no range to derive a bound from).
func Normalize(g *Grid, opts ...NormalizeOption) (*Grid, error) {
	var b normalizeBounds
	for _, opt := range opts {
		opt(&b)
	}
	min, max := b.min, b.max
	if !b.hasMin || !b.hasMax {
		lo, hi, ok := g.MinMax()
		if !ok {
			return nil, &DegenerateRangeError{}
		}
		if !b.hasMin {
			min = lo
		}
		if !b.hasMax {
			max = hi
		}
	}
	return NormalizeTo(g, min, max)
}

// NormalizeTo maps a grid's defined cells into [0,1] over a fixed
// [min, max] range.
func NormalizeTo(g *Grid, min, max float64) (*Grid, error) {
	if max == min {
		return nil, &DegenerateRangeError{Value: min}
	}
	out := newGrid(g.field, g.rows, g.cols)
	for i := range g.cells {
		for j, v := range g.cells[i] {
			if math.IsNaN(v) {
				continue
			}
			out.cells[i][j] = (v - min) / (max - min)
		}
	}
	return out, nil
}

// NormalizeValues maps a value slice into [0,1] over [min, max],
// preserving NaN entries.
func NormalizeValues(vals []float64, min, max float64) ([]float64, error) {
	if max == min {
		return nil, &DegenerateRangeError{Value: min}
	}
	out := make([]float64, len(vals))
	for i, v := range vals {
		if math.IsNaN(v) {
			out[i] = math.NaN()
			continue
		}
		out[i] = (v - min) / (max - min)
	}
	return out, nil
}
