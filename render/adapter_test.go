package render

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vessel-dt/decayviz/dataset"
	"github.com/vessel-dt/decayviz/grid"
	"github.com/vessel-dt/decayviz/schema"
	"github.com/vessel-dt/decayviz/series"
)

func testGrid(t *testing.T) *grid.Grid {
	t.Helper()
	ds := dataset.New(schema.FieldSpeed, schema.FieldCompressorDecay, schema.FieldTurbineDecay, schema.FieldFuelFlow)
	require.NoError(t, ds.Append(15, 0.95, 0.975, 30))
	require.NoError(t, ds.Append(15, 0.95, 1.0, 20))
	require.NoError(t, ds.Append(15, 1.0, 1.0, 11))
	g, err := grid.Build(ds, nil, schema.FieldFuelFlow, nil)
	require.NoError(t, err)
	return g
}

func TestDecayGridXYZ(t *testing.T) {
	adapter := decayGridXYZ{testGrid(t)}

	c, r := adapter.Dims()
	assert.Equal(t, 2, c, "columns = turbine decay values")
	assert.Equal(t, 2, r, "rows = compressor decay values")

	// X ascends over turbine decay, Y over compressor decay.
	assert.Equal(t, 0.975, adapter.X(0))
	assert.Equal(t, 1.0, adapter.X(1))
	assert.Equal(t, 0.95, adapter.Y(0))
	assert.Equal(t, 1.0, adapter.Y(1))

	assert.InDelta(t, 30, adapter.Z(0, 0), 1e-12)
	assert.InDelta(t, 11, adapter.Z(1, 1), 1e-12)
	assert.True(t, math.IsNaN(adapter.Z(0, 1)), "hole surfaces as NaN")
}

func TestHueRange(t *testing.T) {
	pts := []series.Point{
		{X: 1, Y: 1, Hue: 0.95},
		{X: 2, Y: 2, Hue: math.NaN()},
		{X: 3, Y: 3, Hue: 1.0},
	}
	min, max, ok := hueRange(pts)
	require.True(t, ok)
	assert.Equal(t, 0.95, min)
	assert.Equal(t, 1.0, max)

	_, _, ok = hueRange([]series.Point{{Hue: math.NaN()}})
	assert.False(t, ok, "no hues → no range")

	_, _, ok = hueRange([]series.Point{{Hue: 0.5}, {Hue: 0.5}})
	assert.False(t, ok, "constant hue → no color ramp")
}

func TestBoxplotsRoundTrip(t *testing.T) {
	dists := []*series.Distribution{
		{Field: "t48", Values: []float64{442, 510, 620, 780}},
		{Field: "fuel_flow", Values: []float64{0.08, 0.29, 0.67, 1.58}},
	}
	path := t.TempDir() + "/boxplots.png"
	err := Boxplots(dists, path, WithTitle("Sensor spread"))
	require.NoError(t, err)
}

func TestHeatmapRoundTrip(t *testing.T) {
	path := t.TempDir() + "/heatmap.png"
	err := Heatmap(testGrid(t), path,
		WithTitle("Fuel surface"),
		WithLabels("Turbine decay", "Compressor decay"))
	require.NoError(t, err)
}
