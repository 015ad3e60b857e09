// Package decayviz generates static analysis charts for a marine
// gas-turbine propulsion dataset with simulated component decay.
//
// Usage:
//
//	import (
//	    "github.com/vessel-dt/decayviz/dataset"
//	    "github.com/vessel-dt/decayviz/grid"
//	    "github.com/vessel-dt/decayviz/schema"
//	)
//
//	ds, err := dataset.FromCSV(f, cfg)
//	g, err := grid.Build(ds, grid.SpeedIs(15), schema.FieldFuelFlow, grid.Mean)
//
// The pipeline is loader → aggregator → renderer, once per chart. The grid
// package is the core contract: pivot a flat sensor table into a dense
// two-dimensional grid keyed by the compressor and turbine decay
// coefficients. Everything it returns is a freshly computed, read-only
// view — no caching, no shared state, no I/O.
//
// Rendering (package render) writes PNGs via gonum/plot and is driven by the
// chart catalog in package report.
package decayviz
