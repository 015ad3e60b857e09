package grid

import "fmt"

// ============================================================================
// ERROR TAXONOMY
// ============================================================================
// All three are local to a single build/normalize call. A driver iterating
// over many chart requests should match with errors.As, skip the chart, and
// continue — none of these is fatal to the process.
// ============================================================================

// SchemaError reports a referenced field missing from the dataset schema.
type SchemaError struct {
	Field string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("dataset has no field %q", e.Field)
}

// EmptyResultError reports a filter that matched zero observations.
// Distinct from a grid with holes: there is nothing to plot at all.
type EmptyResultError struct {
	Reason string
}

func (e *EmptyResultError) Error() string {
	if e.Reason == "" {
		return "filter matched no observations"
	}
	return e.Reason
}

// DegenerateRangeError reports a normalization range that collapses to a
// point (max == min). The caller must supply a fixed range or fall back to
// a constant color.
type DegenerateRangeError struct {
	Value float64
}

func (e *DegenerateRangeError) Error() string {
	return fmt.Sprintf("normalization range collapsed to a point (%g)", e.Value)
}
