package schema

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ============================================================================
// AUTO-DISCOVERY — Column classification from raw CSV
// ============================================================================
// Inspects every row by default and decides per column: numeric measure, or
// skipped. Skips come in three flavors:
//   constant     — one distinct value across the inspected rows (nothing to
//                  plot). A capped sample would misread a sorted export, so
//                  the constant test runs over the whole file unless a cap
//                  is explicitly requested.
//   non_numeric  — values do not parse as reals
//   unique_id    — integer column where every inspected value is distinct
//                  (row index / export artifact, not a measurement)
// ============================================================================

// DiscoverOptions controls discovery behavior.
type DiscoverOptions struct {
	SampleSize int    // max rows to inspect (0 = every row)
	Name       string // dataset name override
}

// Discover generates a Config by inspecting CSV data.
func Discover(data []byte, opts ...DiscoverOptions) (*Config, error) {
	var opt DiscoverOptions
	if len(opts) > 0 {
		opt = opts[0]
	}

	reader := csv.NewReader(strings.NewReader(string(data)))
	reader.FieldsPerRecord = -1

	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV headers: %w", err)
	}
	if len(headers) == 0 {
		return nil, fmt.Errorf("CSV has no columns")
	}

	var rows [][]string
	for opt.SampleSize <= 0 || len(rows) < opt.SampleSize {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue // skip malformed rows
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("CSV has no data rows")
	}

	cfg := &Config{Name: opt.Name}
	if cfg.Name == "" {
		cfg.Name = "dataset"
	}

	for i, header := range headers {
		c := analyzeColumn(i, rows)
		key := Canonical(header)

		switch {
		case c.nonNumeric > c.numeric:
			cfg.Skipped = append(cfg.Skipped, SkippedColumn{Column: header, Reason: "non_numeric"})
		case c.distinct <= 1:
			cfg.Skipped = append(cfg.Skipped, SkippedColumn{Column: header, Reason: "constant"})
		case c.allInteger && c.distinct == c.numeric && looksLikeIndex(key):
			cfg.Skipped = append(cfg.Skipped, SkippedColumn{Column: header, Reason: "unique_id"})
		default:
			cfg.Columns = append(cfg.Columns, ColumnMeta{
				Key:         key,
				DisplayName: strings.TrimSpace(header),
			})
		}
	}

	if len(cfg.Columns) == 0 {
		return nil, fmt.Errorf("no numeric columns found")
	}
	return cfg, nil
}

type columnStats struct {
	numeric    int
	nonNumeric int
	distinct   int
	allInteger bool
}

func analyzeColumn(col int, rows [][]string) columnStats {
	c := columnStats{allInteger: true}
	seen := make(map[string]bool)

	for _, row := range rows {
		if col >= len(row) {
			continue
		}
		val := strings.TrimSpace(row[col])
		if val == "" || strings.EqualFold(val, "na") || strings.EqualFold(val, "nan") {
			continue // missing — counts toward neither bucket
		}
		f, err := strconv.ParseFloat(val, 64)
		if err != nil {
			c.nonNumeric++
			continue
		}
		c.numeric++
		if f != float64(int64(f)) {
			c.allInteger = false
		}
		if !seen[val] {
			seen[val] = true
			c.distinct++
		}
	}
	return c
}

func looksLikeIndex(key string) bool {
	return key == "index" || key == "id" || key == "row" ||
		strings.HasSuffix(key, "_id") || strings.HasSuffix(key, "_index")
}
