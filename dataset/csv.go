package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/vessel-dt/decayviz/schema"
)

// ============================================================================
// CSV LOADER — Parses a sensor CSV into a Dataset
// ============================================================================
// Headers are canonicalized through the schema package. Only columns the
// schema declares are kept; everything else is ignored. Blank, "NA", "NaN",
// and unparseable cells load as NaN.
// ============================================================================

// FromCSV parses CSV data into a Dataset using cfg to pick columns.
func FromCSV(r io.Reader, cfg schema.Config) (*Dataset, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV headers: %w", err)
	}

	// Column position → dataset field slot, -1 for ignored columns.
	keys := cfg.Keys()
	slot := make(map[string]int, len(keys))
	for i, k := range keys {
		slot[k] = i
	}
	mapping := make([]int, len(headers))
	for i, h := range headers {
		if s, ok := slot[schema.Canonical(h)]; ok {
			mapping[i] = s
		} else {
			mapping[i] = -1
		}
	}

	ds := New(keys...)
	row := make([]float64, len(keys))

	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue // skip malformed rows
		}

		for i := range row {
			row[i] = math.NaN()
		}
		for i, val := range rec {
			if i >= len(mapping) || mapping[i] < 0 {
				continue
			}
			row[mapping[i]] = parseCell(val)
		}
		if err := ds.Append(row...); err != nil {
			return nil, err
		}
	}

	if ds.Len() == 0 {
		return nil, fmt.Errorf("CSV has no data rows")
	}
	return ds, nil
}

// LoadCSV discovers the schema and parses the data in one step.
func LoadCSV(data []byte, name string) (*Dataset, *schema.Config, error) {
	cfg, err := schema.Discover(data, schema.DiscoverOptions{Name: name})
	if err != nil {
		return nil, nil, err
	}
	ds, err := FromCSV(strings.NewReader(string(data)), *cfg)
	if err != nil {
		return nil, nil, err
	}
	return ds, cfg, nil
}

func parseCell(val string) float64 {
	val = strings.TrimSpace(val)
	if val == "" || strings.EqualFold(val, "na") || strings.EqualFold(val, "nan") {
		return math.NaN()
	}
	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return math.NaN()
	}
	return f
}
