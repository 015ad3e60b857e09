package grid

import (
	"sort"

	"github.com/vessel-dt/decayviz/dataset"
	"github.com/vessel-dt/decayviz/schema"
)

// ============================================================================
// BUILD — Filter → group by decay pair → aggregate
// ============================================================================
// Pure functions of their inputs: no caching, no side effects. Key sets come
// from the filtered data only — decay values filtered out entirely never
// appear as empty rows or columns.
// ============================================================================

// Build pivots a dataset into a DecayGrid of valueField aggregates.
// filter may be nil (all speeds); agg may be nil (Mean).
func Build(ds *dataset.Dataset, filter SpeedFilter, valueField string, agg Aggregator) (*Grid, error) {
	grids, err := build(ds, filter, []string{valueField}, agg)
	if err != nil {
		return nil, err
	}
	return grids[0], nil
}

// BuildPaired pivots two measurements in a single grouping pass, so both
// grids share identical row and column key sets regardless of how missing
// data is distributed between the two fields.
func BuildPaired(ds *dataset.Dataset, filter SpeedFilter, heightField, colorField string, agg Aggregator) (*Paired, error) {
	grids, err := build(ds, filter, []string{heightField, colorField}, agg)
	if err != nil {
		return nil, err
	}
	return &Paired{Height: grids[0], Color: grids[1]}, nil
}

type pairKey struct {
	compressor float64
	turbine    float64
}

func build(ds *dataset.Dataset, filter SpeedFilter, valueFields []string, agg Aggregator) ([]*Grid, error) {
	// Precondition: every referenced field must exist in the schema.
	for _, f := range append([]string{schema.FieldSpeed, schema.FieldCompressorDecay, schema.FieldTurbineDecay}, valueFields...) {
		if !ds.Has(f) {
			return nil, &SchemaError{Field: f}
		}
	}
	if filter == nil {
		filter = AllSpeeds
	}
	if agg == nil {
		agg = Mean
	}

	// Single pass: filter by speed, group by exact decay pair, collect the
	// defined values of each requested field per group.
	groups := make(map[pairKey][][]float64)
	matched := 0
	for i := 0; i < ds.Len(); i++ {
		speed, ok := ds.Value(i, schema.FieldSpeed)
		if !ok || !filter(speed) {
			continue
		}
		cd, ok := ds.Value(i, schema.FieldCompressorDecay)
		if !ok {
			continue
		}
		td, ok := ds.Value(i, schema.FieldTurbineDecay)
		if !ok {
			continue
		}
		matched++

		key := pairKey{compressor: cd, turbine: td}
		vals := groups[key]
		if vals == nil {
			vals = make([][]float64, len(valueFields))
			groups[key] = vals
		}
		for f, field := range valueFields {
			if v, ok := ds.Value(i, field); ok {
				vals[f] = append(vals[f], v)
			}
		}
	}

	if matched == 0 {
		return nil, &EmptyResultError{Reason: "speed filter matched no observations"}
	}

	rows, cols := sortedKeys(groups)

	grids := make([]*Grid, len(valueFields))
	for f, field := range valueFields {
		grids[f] = newGrid(field, rows, cols)
	}
	for key, vals := range groups {
		i := keyIndex(rows, key.compressor)
		j := keyIndex(cols, key.turbine)
		for f := range valueFields {
			if len(vals[f]) > 0 {
				grids[f].cells[i][j] = agg(vals[f])
			}
			// all-missing group: cell stays a hole
		}
	}
	return grids, nil
}

func sortedKeys(groups map[pairKey][][]float64) (rows, cols []float64) {
	rowSeen := make(map[float64]bool)
	colSeen := make(map[float64]bool)
	for key := range groups {
		if !rowSeen[key.compressor] {
			rowSeen[key.compressor] = true
			rows = append(rows, key.compressor)
		}
		if !colSeen[key.turbine] {
			colSeen[key.turbine] = true
			cols = append(cols, key.turbine)
		}
	}
	sort.Float64s(rows)
	sort.Float64s(cols)
	return rows, cols
}
