package series

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vessel-dt/decayviz/dataset"
	"github.com/vessel-dt/decayviz/grid"
	"github.com/vessel-dt/decayviz/schema"
)

func linesFixture(t *testing.T) *dataset.Dataset {
	t.Helper()
	ds := dataset.New(schema.FieldSpeed, schema.FieldCompressorDecay, schema.FieldTurbineDecay, schema.FieldFuelFlow)
	// Two turbine decay states per (compressor decay, speed) — the line
	// averages across them.
	require.NoError(t, ds.Append(9, 0.95, 0.975, 10))
	require.NoError(t, ds.Append(9, 0.95, 1.0, 14))
	require.NoError(t, ds.Append(15, 0.95, 0.975, 30))
	require.NoError(t, ds.Append(15, 0.95, 1.0, 34))
	require.NoError(t, ds.Append(9, 1.0, 1.0, 8))
	require.NoError(t, ds.Append(15, 1.0, 1.0, 24))
	return ds
}

func TestOperatingLines(t *testing.T) {
	lines, err := OperatingLines(linesFixture(t), nil, schema.FieldCompressorDecay, schema.FieldFuelFlow, nil)
	require.NoError(t, err)
	require.Len(t, lines, 2)

	worn := lines[0]
	assert.Equal(t, 0.95, worn.Decay)
	assert.Equal(t, []float64{9, 15}, worn.Speeds)
	assert.InDelta(t, 12, worn.Values[0], 1e-12) // mean(10, 14)
	assert.InDelta(t, 32, worn.Values[1], 1e-12) // mean(30, 34)

	pristine := lines[1]
	assert.Equal(t, 1.0, pristine.Decay)
	assert.InDelta(t, 8, pristine.Values[0], 1e-12)
}

func TestOperatingLinesSelectedDecays(t *testing.T) {
	lines, err := OperatingLines(linesFixture(t), nil, schema.FieldCompressorDecay, schema.FieldFuelFlow, []float64{1.0})
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, 1.0, lines[0].Decay)

	_, err = OperatingLines(linesFixture(t), nil, schema.FieldCompressorDecay, schema.FieldFuelFlow, []float64{0.5})
	var empty *grid.EmptyResultError
	require.ErrorAs(t, err, &empty)
}

func TestOperatingLinesSpeedFilter(t *testing.T) {
	lines, err := OperatingLines(linesFixture(t), grid.SpeedAtLeast(10), schema.FieldCompressorDecay, schema.FieldFuelFlow, nil)
	require.NoError(t, err)
	for _, l := range lines {
		assert.Equal(t, []float64{15}, l.Speeds)
	}
}

func TestOperatingLinesMissingField(t *testing.T) {
	_, err := OperatingLines(linesFixture(t), nil, schema.FieldCompressorDecay, "torque", nil)
	var schemaErr *grid.SchemaError
	require.ErrorAs(t, err, &schemaErr)
}

func TestPoints(t *testing.T) {
	ds := dataset.New(schema.FieldSpeed, schema.FieldFuelFlow, schema.FieldCompressorDecay)
	require.NoError(t, ds.Append(3, 0.08, 0.95))
	require.NoError(t, ds.Append(9, math.NaN(), 0.97))
	require.NoError(t, ds.Append(15, 0.67, math.NaN()))

	pts, err := Points(ds, nil, schema.FieldSpeed, schema.FieldFuelFlow, schema.FieldCompressorDecay)
	require.NoError(t, err)
	require.Len(t, pts, 2, "row with missing y is dropped")

	assert.Equal(t, 3.0, pts[0].X)
	assert.InDelta(t, 0.95, pts[0].Hue, 1e-12)
	assert.True(t, math.IsNaN(pts[1].Hue), "missing hue stays NaN")
}

func TestPointsEmpty(t *testing.T) {
	ds := dataset.New(schema.FieldSpeed, schema.FieldFuelFlow)
	require.NoError(t, ds.Append(3, math.NaN()))
	_, err := Points(ds, nil, schema.FieldSpeed, schema.FieldFuelFlow, "")
	var empty *grid.EmptyResultError
	require.ErrorAs(t, err, &empty)
}

func TestSelectedDecays(t *testing.T) {
	ds := dataset.New(schema.FieldCompressorDecay)
	for _, d := range []float64{0.99, 0.95, 0.97, 1.0, 0.96, 0.98} {
		require.NoError(t, ds.Append(d))
	}
	got := SelectedDecays(ds, schema.FieldCompressorDecay)
	assert.Equal(t, []float64{0.95, 0.98, 1.0}, got)
}

func TestDistribute(t *testing.T) {
	ds := dataset.New(schema.FieldT48)
	for _, v := range []float64{500, 600, math.NaN(), 700} {
		require.NoError(t, ds.Append(v))
	}
	d, err := Distribute(ds, schema.FieldT48)
	require.NoError(t, err)
	assert.Equal(t, 3, d.Count)
	assert.InDelta(t, 600, d.Mean, 1e-12)
	assert.InDelta(t, 500, d.Min, 1e-12)
	assert.InDelta(t, 700, d.Max, 1e-12)
	assert.InDelta(t, 100, d.StdDev, 1e-9)
}

func TestCorrelationMatrix(t *testing.T) {
	ds := dataset.New(schema.FieldSpeed, schema.FieldFuelFlow, schema.FieldT48)
	// fuel = 2*speed (r = 1), t48 = -speed (r = -1); one incomplete row.
	require.NoError(t, ds.Append(3, 6, -3))
	require.NoError(t, ds.Append(9, 18, -9))
	require.NoError(t, ds.Append(15, 30, -15))
	require.NoError(t, ds.Append(27, math.NaN(), -27))

	c, err := CorrelationMatrix(ds, []string{schema.FieldSpeed, schema.FieldFuelFlow, schema.FieldT48})
	require.NoError(t, err)
	assert.Equal(t, 3, c.Rows, "incomplete row excluded")

	assert.InDelta(t, 1.0, c.At(0, 0), 1e-9)
	assert.InDelta(t, 1.0, c.At(0, 1), 1e-9)
	assert.InDelta(t, -1.0, c.At(0, 2), 1e-9)
	assert.InDelta(t, c.At(1, 2), c.At(2, 1), 1e-12, "matrix symmetric")
}

func TestCorrelationMatrixTooFewRows(t *testing.T) {
	ds := dataset.New(schema.FieldSpeed, schema.FieldFuelFlow)
	require.NoError(t, ds.Append(3, 6))
	_, err := CorrelationMatrix(ds, nil)
	var empty *grid.EmptyResultError
	require.ErrorAs(t, err, &empty)
}
