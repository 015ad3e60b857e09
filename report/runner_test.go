package report

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vessel-dt/decayviz/dataset"
	"github.com/vessel-dt/decayviz/grid"
	"github.com/vessel-dt/decayviz/schema"
)

func testDataset(t *testing.T) *dataset.Dataset {
	t.Helper()
	ds := dataset.New(schema.FieldSpeed, schema.FieldCompressorDecay, schema.FieldTurbineDecay, schema.FieldFuelFlow)
	require.NoError(t, ds.Append(15, 1.0, 1.0, 10))
	require.NoError(t, ds.Append(15, 1.0, 1.0, 12))
	require.NoError(t, ds.Append(15, 0.95, 1.0, 20))
	require.NoError(t, ds.Append(15, 0.95, 0.975, 30))
	return ds
}

func TestRunnerIsolatesFailures(t *testing.T) {
	ds := testDataset(t)
	order := []string{}

	charts := []Chart{
		{Name: "empty", Render: func(*dataset.Dataset, string) error {
			order = append(order, "empty")
			return &grid.EmptyResultError{}
		}},
		{Name: "bad_field", Render: func(*dataset.Dataset, string) error {
			order = append(order, "bad_field")
			return &grid.SchemaError{Field: "torque"}
		}},
		{Name: "ok", Render: func(*dataset.Dataset, string) error {
			order = append(order, "ok")
			return nil
		}},
	}

	r := NewRunner(zerolog.Nop())
	rendered, failed := r.Run(ds, charts, t.TempDir())

	assert.Equal(t, []string{"empty", "bad_field", "ok"}, order,
		"failing charts must not abort the batch")
	assert.Equal(t, 1, rendered)
	require.Len(t, failed, 2)
	assert.Equal(t, "empty", failed[0].Chart)

	var empty *grid.EmptyResultError
	assert.True(t, errors.As(failed[0], &empty))
}

func TestRunnerLogsSkips(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)

	charts := []Chart{
		{Name: "flat", Render: func(*dataset.Dataset, string) error {
			return &grid.DegenerateRangeError{Value: 5}
		}},
	}

	r := NewRunner(log)
	rendered, failed := r.Run(testDataset(t), charts, t.TempDir())
	assert.Equal(t, 0, rendered)
	assert.Len(t, failed, 1)
	assert.Contains(t, buf.String(), `"level":"warn"`, "expected skips logged at warn")
}

func TestCatalogRenders(t *testing.T) {
	ds := testDataset(t)
	outDir := t.TempDir()

	charts := Select(Catalog(DefaultConfig()), []string{"fuel_surface"})
	require.Len(t, charts, 1)

	rendered, failed := NewRunner(zerolog.Nop()).Run(ds, charts, outDir)
	assert.Equal(t, 1, rendered, "failures: %v", failed)
}

func TestCatalogSensorCharts(t *testing.T) {
	ds := dataset.New(schema.FieldSpeed, schema.FieldCompressorDecay, schema.FieldTurbineDecay,
		schema.FieldFuelFlow, schema.FieldT48, schema.FieldP2, schema.FieldGTTorque)
	rows := [][]float64{
		{3, 1.0, 1.0, 0.08, 442, 5.9, 6.5},
		{9, 1.0, 0.975, 0.29, 510, 9.4, 21.3},
		{15, 0.95, 1.0, 0.67, 620, 16.1, 61.5},
		{27, 0.95, 0.975, 1.58, 780, 22.2, 247.7},
	}
	for _, r := range rows {
		require.NoError(t, ds.Append(r...))
	}
	outDir := t.TempDir()

	charts := Select(Catalog(DefaultConfig()), []string{"sensor_boxplots", "speed_distribution"})
	require.Len(t, charts, 2)

	rendered, failed := NewRunner(zerolog.Nop()).Run(ds, charts, outDir)
	assert.Equal(t, 2, rendered, "failures: %v", failed)
	assert.FileExists(t, filepath.Join(outDir, "sensor_boxplots.png"))
	assert.FileExists(t, filepath.Join(outDir, "speed_distribution.png"))
}

func TestSelect(t *testing.T) {
	catalog := Catalog(DefaultConfig())
	assert.Len(t, Select(catalog, nil), len(catalog))
	assert.Empty(t, Select(catalog, []string{"nope"}))
}

func TestExportCSV(t *testing.T) {
	ds := testDataset(t)
	g, err := grid.Build(ds, nil, schema.FieldFuelFlow, nil)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, ExportCSV(g, &buf))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "compressor_decay,0.975,1", lines[0])
	assert.Equal(t, "0.95,30,20", lines[1])
	assert.Equal(t, "1,,11", lines[2])
}
