package grid

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// ============================================================================
// AGGREGATORS
// ============================================================================

// Aggregator reduces the multiset of defined values in one grid cell.
// Missing entries are stripped before the call; vals is never empty.
type Aggregator func(vals []float64) float64

// Mean is the default cell aggregator.
func Mean(vals []float64) float64 { return stat.Mean(vals, nil) }

// Sum totals the cell values.
func Sum(vals []float64) float64 { return floats.Sum(vals) }

// Min returns the smallest cell value.
func Min(vals []float64) float64 { return floats.Min(vals) }

// Max returns the largest cell value.
func Max(vals []float64) float64 { return floats.Max(vals) }

// Count returns the number of defined values in the cell.
func Count(vals []float64) float64 { return float64(len(vals)) }
