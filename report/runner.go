package report

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/vessel-dt/decayviz/dataset"
	"github.com/vessel-dt/decayviz/grid"
)

// ============================================================================
// RUNNER — walk the catalog, isolate failures per chart
// ============================================================================

// ChartError records one failed chart.
type ChartError struct {
	Chart string
	Err   error
}

func (e ChartError) Error() string {
	return fmt.Sprintf("chart %s: %v", e.Chart, e.Err)
}

func (e ChartError) Unwrap() error { return e.Err }

// Runner renders chart batches.
type Runner struct {
	log zerolog.Logger
}

// NewRunner creates a Runner logging through log.
func NewRunner(log zerolog.Logger) *Runner {
	return &Runner{log: log}
}

// Run renders every chart into outDir. Grid and series errors (empty
// result, missing field, degenerate range) mark the chart skipped; so do
// renderer I/O failures. The batch always runs to completion.
func (r *Runner) Run(ds *dataset.Dataset, charts []Chart, outDir string) (rendered int, failed []ChartError) {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		r.log.Error().Err(err).Str("dir", outDir).Msg("cannot create output directory")
		for _, c := range charts {
			failed = append(failed, ChartError{Chart: c.Name, Err: err})
		}
		return 0, failed
	}

	for _, c := range charts {
		err := c.Render(ds, outDir)
		if err == nil {
			rendered++
			r.log.Info().Str("chart", c.Name).Msg("rendered")
			continue
		}

		failed = append(failed, ChartError{Chart: c.Name, Err: err})
		switch {
		case isSkippable(err):
			r.log.Warn().Str("chart", c.Name).Err(err).Msg("skipped")
		default:
			r.log.Error().Str("chart", c.Name).Err(err).Msg("failed")
		}
	}

	r.log.Info().Int("rendered", rendered).Int("failed", len(failed)).Msg("batch done")
	return rendered, failed
}

// isSkippable reports whether the error is an expected per-chart condition
// (nothing to plot / bad field / flat range) rather than an I/O failure.
func isSkippable(err error) bool {
	var schemaErr *grid.SchemaError
	var empty *grid.EmptyResultError
	var degenerate *grid.DegenerateRangeError
	return errors.As(err, &empty) || errors.As(err, &schemaErr) || errors.As(err, &degenerate)
}
