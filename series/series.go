// Package series derives the one-dimensional aggregations behind the
// scatter, line, and distribution charts: operating lines (mean measurement
// vs. ship speed per decay state), hue-tagged scatter points, and summary
// statistics. It shares the grid package's filter and error contract.
package series

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/vessel-dt/decayviz/dataset"
	"github.com/vessel-dt/decayviz/grid"
	"github.com/vessel-dt/decayviz/schema"
)

// ============================================================================
// SCATTER POINTS
// ============================================================================

// Point is one scatter observation. Hue is NaN when no hue field was
// requested or the hue cell is missing.
type Point struct {
	X, Y, Hue float64
}

// Points extracts scatter points for yField over xField. Rows with a
// missing x or y are dropped; hueField may be empty.
func Points(ds *dataset.Dataset, filter grid.SpeedFilter, xField, yField, hueField string) ([]Point, error) {
	fields := []string{schema.FieldSpeed, xField, yField}
	if hueField != "" {
		fields = append(fields, hueField)
	}
	for _, f := range fields {
		if !ds.Has(f) {
			return nil, &grid.SchemaError{Field: f}
		}
	}
	if filter == nil {
		filter = grid.AllSpeeds
	}

	var points []Point
	for i := 0; i < ds.Len(); i++ {
		speed, ok := ds.Value(i, schema.FieldSpeed)
		if !ok || !filter(speed) {
			continue
		}
		x, ok := ds.Value(i, xField)
		if !ok {
			continue
		}
		y, ok := ds.Value(i, yField)
		if !ok {
			continue
		}
		p := Point{X: x, Y: y, Hue: math.NaN()}
		if hueField != "" {
			if h, ok := ds.Value(i, hueField); ok {
				p.Hue = h
			}
		}
		points = append(points, p)
	}

	if len(points) == 0 {
		return nil, &grid.EmptyResultError{Reason: "no observations with defined " + xField + " and " + yField}
	}
	return points, nil
}

// ============================================================================
// OPERATING LINES
// ============================================================================

// Line is the mean of a measurement at each ship speed for one decay state.
// Speeds ascend; Values is cell-aligned with Speeds.
type Line struct {
	Decay  float64
	Speeds []float64
	Values []float64
}

// OperatingLines groups by (decayField value, speed) and averages valueField
// per cell. decays selects which states to include; nil means every distinct
// decay value in the filtered data.
func OperatingLines(ds *dataset.Dataset, filter grid.SpeedFilter, decayField, valueField string, decays []float64) ([]Line, error) {
	for _, f := range []string{schema.FieldSpeed, decayField, valueField} {
		if !ds.Has(f) {
			return nil, &grid.SchemaError{Field: f}
		}
	}
	if filter == nil {
		filter = grid.AllSpeeds
	}

	wanted := func(float64) bool { return true }
	if decays != nil {
		set := make(map[float64]bool, len(decays))
		for _, d := range decays {
			set[d] = true
		}
		wanted = func(d float64) bool { return set[d] }
	}

	type cell struct{ decay, speed float64 }
	sums := make(map[cell]float64)
	counts := make(map[cell]int)
	matched := 0

	for i := 0; i < ds.Len(); i++ {
		speed, ok := ds.Value(i, schema.FieldSpeed)
		if !ok || !filter(speed) {
			continue
		}
		decay, ok := ds.Value(i, decayField)
		if !ok || !wanted(decay) {
			continue
		}
		matched++
		v, ok := ds.Value(i, valueField)
		if !ok {
			continue
		}
		k := cell{decay: decay, speed: speed}
		sums[k] += v
		counts[k]++
	}

	if matched == 0 {
		return nil, &grid.EmptyResultError{Reason: "no observations for requested decay states"}
	}

	byDecay := make(map[float64]map[float64]float64)
	for k, sum := range sums {
		if byDecay[k.decay] == nil {
			byDecay[k.decay] = make(map[float64]float64)
		}
		byDecay[k.decay][k.speed] = sum / float64(counts[k])
	}

	lines := make([]Line, 0, len(byDecay))
	for decay, bySpeed := range byDecay {
		line := Line{Decay: decay}
		for speed := range bySpeed {
			line.Speeds = append(line.Speeds, speed)
		}
		sort.Float64s(line.Speeds)
		line.Values = make([]float64, len(line.Speeds))
		for i, speed := range line.Speeds {
			line.Values[i] = bySpeed[speed]
		}
		lines = append(lines, line)
	}
	sort.Slice(lines, func(i, j int) bool { return lines[i].Decay < lines[j].Decay })
	return lines, nil
}

// SelectedDecays picks representative states from the distinct decay values
// of a field: the most worn, the median, and pristine.
func SelectedDecays(ds *dataset.Dataset, decayField string) []float64 {
	distinct := distinctValues(ds, decayField)
	if len(distinct) <= 3 {
		return distinct
	}
	return []float64{distinct[0], distinct[len(distinct)/2], distinct[len(distinct)-1]}
}

func distinctValues(ds *dataset.Dataset, field string) []float64 {
	seen := make(map[float64]bool)
	var out []float64
	for _, v := range ds.Values(field) {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	sort.Float64s(out)
	return out
}

// ============================================================================
// DISTRIBUTIONS
// ============================================================================

// Distribution summarizes the defined values of one field.
type Distribution struct {
	Field  string
	Values []float64
	Count  int
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
}

// Distribute collects a field's defined values with summary statistics.
func Distribute(ds *dataset.Dataset, field string) (*Distribution, error) {
	if !ds.Has(field) {
		return nil, &grid.SchemaError{Field: field}
	}
	vals := ds.Values(field)
	if len(vals) == 0 {
		return nil, &grid.EmptyResultError{Reason: "field " + field + " has no defined values"}
	}

	d := &Distribution{
		Field:  field,
		Values: vals,
		Count:  len(vals),
		Mean:   stat.Mean(vals, nil),
		Min:    vals[0],
		Max:    vals[0],
	}
	if len(vals) > 1 {
		d.StdDev = stat.StdDev(vals, nil)
	}
	for _, v := range vals {
		if v < d.Min {
			d.Min = v
		}
		if v > d.Max {
			d.Max = v
		}
	}
	return d, nil
}
