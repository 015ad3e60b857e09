package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/vessel-dt/decayviz/config"
	"github.com/vessel-dt/decayviz/dataset"
	"github.com/vessel-dt/decayviz/describe"
	"github.com/vessel-dt/decayviz/grid"
	"github.com/vessel-dt/decayviz/report"
	"github.com/vessel-dt/decayviz/schema"
)

// ============================================================================
// DECAYVIZ CLI — loader → aggregator → renderer, once per chart
// ============================================================================

const version = "0.1.0"

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("config")
	}

	filePath := flag.String("file", cfg.DataFile, "Path to sensor CSV")
	outDir := flag.String("out", cfg.OutDir, "Output directory for rendered PNGs")
	chartNames := flag.String("charts", "", "Comma-separated chart names (default: all)")
	surfaceSpeed := flag.Float64("speed", cfg.SurfaceSpeed, "Operating point for the decay surfaces (knots)")
	discover := flag.Bool("discover", false, "Print the discovered schema as JSON and exit")
	describeFlag := flag.Bool("describe", false, "Print per-field summary statistics and exit")
	exportGrid := flag.String("export-grid", "", "Export a fuel-flow decay grid at the surface speed as CSV to the given path ('-' for stdout)")
	showVersion := flag.Bool("version", false, "Print version and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `decayviz — charts for gas-turbine decay analysis

Usage:
  decayviz --file cleaned_data.csv --out plots
  decayviz --file cleaned_data.csv --charts fuel_surface,operating_lines
  decayviz --file cleaned_data.csv --discover
  decayviz --file cleaned_data.csv --describe
  decayviz --file cleaned_data.csv --export-grid grid.csv --speed 15

Flags:
`)
		flag.PrintDefaults()
	}
	flag.Parse()

	if *showVersion {
		fmt.Printf("decayviz %s\n", version)
		return
	}

	data, err := os.ReadFile(*filePath)
	if err != nil {
		log.Fatal().Err(err).Str("file", *filePath).Msg("cannot read data file")
	}

	sch, err := schema.Discover(data, schema.DiscoverOptions{Name: "propulsion"})
	if err != nil {
		log.Fatal().Err(err).Msg("schema discovery failed")
	}
	log.Info().Int("columns", len(sch.Columns)).Int("skipped", len(sch.Skipped)).Msg("schema discovered")

	if *discover {
		pretty, err := json.MarshalIndent(sch, "", "  ")
		if err != nil {
			log.Fatal().Err(err).Msg("marshal schema")
		}
		fmt.Println(string(pretty))
		return
	}

	ds, err := dataset.FromCSV(strings.NewReader(string(data)), *sch)
	if err != nil {
		log.Fatal().Err(err).Msg("CSV load failed")
	}
	log.Info().Int("rows", ds.Len()).Int("fields", len(ds.Fields())).Msg("dataset loaded")

	if *describeFlag {
		if err := describe.Format(os.Stdout, describe.Summarize(ds)); err != nil {
			log.Fatal().Err(err).Msg("describe")
		}
		return
	}

	if *exportGrid != "" {
		if err := runExport(ds, *surfaceSpeed, *exportGrid); err != nil {
			log.Fatal().Err(err).Msg("grid export failed")
		}
		return
	}

	catalog := report.Catalog(report.Config{
		SurfaceSpeed: *surfaceSpeed,
		MinSpeed:     cfg.MinSpeed,
		LineDecays:   cfg.LineDecays,
	})
	if *chartNames != "" {
		catalog = report.Select(catalog, splitNames(*chartNames))
	}

	rendered, failed := report.NewRunner(log.Logger).Run(ds, catalog, *outDir)
	if rendered == 0 && len(failed) > 0 {
		os.Exit(1)
	}
}

func runExport(ds *dataset.Dataset, speed float64, path string) error {
	g, err := grid.Build(ds, grid.SpeedIs(speed), schema.FieldFuelFlow, grid.Mean)
	if err != nil {
		return err
	}

	w := os.Stdout
	if path != "-" {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	if err := report.ExportCSV(g, w); err != nil {
		return err
	}
	log.Info().Float64("speed", speed).Str("path", path).Msg("grid exported")
	return nil
}

func splitNames(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
