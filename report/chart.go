// Package report holds the chart catalog and the batch runner that walks
// it: loader output in, one PNG per chart definition out. A failing chart
// is logged and skipped; it never aborts the rest of the batch.
package report

import (
	"fmt"
	"path/filepath"

	"github.com/vessel-dt/decayviz/dataset"
	"github.com/vessel-dt/decayviz/grid"
	"github.com/vessel-dt/decayviz/render"
	"github.com/vessel-dt/decayviz/schema"
	"github.com/vessel-dt/decayviz/series"
)

// ============================================================================
// CHART CATALOG
// ============================================================================

// Chart is one figure request: a name (also the output file stem) and a
// render function that derives and draws it.
type Chart struct {
	Name   string
	Render func(ds *dataset.Dataset, outDir string) error
}

// Config selects the catalog's operating points.
type Config struct {
	SurfaceSpeed float64   // operating point for the decay surfaces
	MinSpeed     float64   // cutoff for the filtered scatter/line variants
	LineDecays   []float64 // compressor decay states for operating lines (nil = representative pick)
}

// DefaultConfig mirrors the standard presentation set: surfaces at 15 kn,
// filtered variants at ≥ 9 kn.
func DefaultConfig() Config {
	return Config{SurfaceSpeed: 15, MinSpeed: 9}
}

// Catalog returns the full set of presentation charts.
func Catalog(cfg Config) []Chart {
	return []Chart{
		{Name: "correlation_heatmap", Render: correlationHeatmap},
		{Name: "speed_vs_fuel_scatter", Render: speedFuelScatter(nil, "Ship Speed vs Fuel Flow")},
		{Name: "speed_vs_fuel_scatter_filtered", Render: speedFuelScatter(
			grid.SpeedAtLeast(cfg.MinSpeed),
			fmt.Sprintf("Ship Speed vs Fuel Flow (speed >= %g kn)", cfg.MinSpeed))},
		{Name: "operating_lines", Render: operatingLines(nil, cfg.LineDecays)},
		{Name: "operating_lines_filtered", Render: operatingLines(grid.SpeedAtLeast(cfg.MinSpeed), cfg.LineDecays)},
		{Name: "decay_vs_p2", Render: decayScatter(cfg.SurfaceSpeed, schema.FieldCompressorDecay, schema.FieldP2,
			"Compressor Decay vs Outlet Pressure (P2)")},
		{Name: "decay_vs_t48", Render: decayScatter(cfg.SurfaceSpeed, schema.FieldTurbineDecay, schema.FieldT48,
			"Turbine Decay vs Exit Temperature (T48)")},
		{Name: "compressor_decay_distribution", Render: fieldHistogram(schema.FieldCompressorDecay)},
		{Name: "turbine_decay_distribution", Render: fieldHistogram(schema.FieldTurbineDecay)},
		{Name: "speed_distribution", Render: fieldHistogram(schema.FieldSpeed)},
		{Name: "sensor_boxplots", Render: sensorBoxplots},
		{Name: "fuel_surface", Render: fuelSurface(cfg.SurfaceSpeed)},
		{Name: "fuel_surface_t48", Render: fuelSurfacePaired(cfg.SurfaceSpeed)},
	}
}

// Select filters a catalog down to the named charts; names nil means all.
func Select(charts []Chart, names []string) []Chart {
	if names == nil {
		return charts
	}
	wanted := make(map[string]bool, len(names))
	for _, n := range names {
		wanted[n] = true
	}
	out := make([]Chart, 0, len(charts))
	for _, c := range charts {
		if wanted[c.Name] {
			out = append(out, c)
		}
	}
	return out
}

// ============================================================================
// CHART DEFINITIONS
// ============================================================================

func out(outDir, name string) string {
	return filepath.Join(outDir, name+".png")
}

func correlationHeatmap(ds *dataset.Dataset, outDir string) error {
	c, err := series.CorrelationMatrix(ds, nil)
	if err != nil {
		return err
	}
	return render.CorrHeatmap(c, out(outDir, "correlation_heatmap"),
		render.WithTitle("Correlation Matrix of Gas Turbine Measures"))
}

func speedFuelScatter(filter grid.SpeedFilter, title string) func(*dataset.Dataset, string) error {
	name := "speed_vs_fuel_scatter"
	if filter != nil {
		name = "speed_vs_fuel_scatter_filtered"
	}
	return func(ds *dataset.Dataset, outDir string) error {
		pts, err := series.Points(ds, filter, schema.FieldSpeed, schema.FieldFuelFlow, schema.FieldCompressorDecay)
		if err != nil {
			return err
		}
		return render.Scatter(pts, out(outDir, name),
			render.WithTitle(title),
			render.WithLabels("Ship Speed (knots)", "Fuel Flow (kg/s)"))
	}
}

func operatingLines(filter grid.SpeedFilter, decays []float64) func(*dataset.Dataset, string) error {
	name := "operating_lines"
	title := "Operating Lines: Fuel Flow vs Ship Speed"
	if filter != nil {
		name = "operating_lines_filtered"
		title += " (filtered)"
	}
	return func(ds *dataset.Dataset, outDir string) error {
		selected := decays
		if selected == nil {
			selected = series.SelectedDecays(ds, schema.FieldCompressorDecay)
		}
		lines, err := series.OperatingLines(ds, filter, schema.FieldCompressorDecay, schema.FieldFuelFlow, selected)
		if err != nil {
			return err
		}
		return render.Lines(lines, out(outDir, name),
			render.WithTitle(title),
			render.WithLabels("Ship Speed (knots)", "Fuel Flow (kg/s)"))
	}
}

func decayScatter(speed float64, decayField, valueField, title string) func(*dataset.Dataset, string) error {
	name := "decay_vs_" + valueField
	return func(ds *dataset.Dataset, outDir string) error {
		pts, err := series.Points(ds, grid.SpeedIs(speed), decayField, valueField, "")
		if err != nil {
			return err
		}
		return render.Scatter(pts, out(outDir, name),
			render.WithTitle(fmt.Sprintf("%s at %g knots", title, speed)),
			render.WithLabels(decayField, valueField))
	}
}

func fieldHistogram(field string) func(*dataset.Dataset, string) error {
	return func(ds *dataset.Dataset, outDir string) error {
		d, err := series.Distribute(ds, field)
		if err != nil {
			return err
		}
		return render.Histogram(d, 20, out(outDir, field+"_distribution"),
			render.WithTitle("Distribution of "+field),
			render.WithLabels(field, "count"))
	}
}

func sensorBoxplots(ds *dataset.Dataset, outDir string) error {
	fields := []string{schema.FieldT48, schema.FieldP2, schema.FieldFuelFlow, schema.FieldGTTorque}
	dists := make([]*series.Distribution, 0, len(fields))
	for _, f := range fields {
		d, err := series.Distribute(ds, f)
		if err != nil {
			return err
		}
		dists = append(dists, d)
	}
	return render.Boxplots(dists, out(outDir, "sensor_boxplots"),
		render.WithTitle("Spread of Key Turbine Measurements"),
		render.WithLabels("", "value"))
}

func fuelSurface(speed float64) func(*dataset.Dataset, string) error {
	return func(ds *dataset.Dataset, outDir string) error {
		g, err := grid.Build(ds, grid.SpeedIs(speed), schema.FieldFuelFlow, grid.Mean)
		if err != nil {
			return err
		}
		return render.Heatmap(g, out(outDir, "fuel_surface"),
			render.WithTitle(fmt.Sprintf("Fuel Consumption Surface at %g knots", speed)),
			render.WithLabels("Turbine Decay (kmt)", "Compressor Decay (kmc)"))
	}
}

func fuelSurfacePaired(speed float64) func(*dataset.Dataset, string) error {
	return func(ds *dataset.Dataset, outDir string) error {
		pr, err := grid.BuildPaired(ds, grid.SpeedIs(speed), schema.FieldFuelFlow, schema.FieldT48, grid.Mean)
		if err != nil {
			return err
		}
		return render.Surface(pr, out(outDir, "fuel_surface_t48"),
			render.WithTitle("Fuel Consumption (isolines) vs Exhaust Temp (color)"),
			render.WithLabels("Turbine Decay (kmt)", "Compressor Decay (kmc)"))
	}
}
