// Package render draws the figures: heatmaps, decay surfaces, scatter and
// line plots, histograms. All renderers consume the grid/series structures
// in ascending key order and treat NaN as "no data". Presentation knobs
// (size, labels, palette resolution) carry no correctness contract.
package render

import "gonum.org/v1/plot/vg"

// ============================================================================
// RENDER OPTIONS — functional options shared by all figure renderers
// ============================================================================

// Options configures one rendered figure.
type Options struct {
	Title  string
	XLabel string
	YLabel string
	Width  vg.Length
	Height vg.Length
	// PaletteSize is the number of discrete colors in heatmap palettes.
	PaletteSize int
}

// Option mutates render Options.
type Option func(*Options)

// WithTitle sets the figure title.
func WithTitle(title string) Option {
	return func(o *Options) { o.Title = title }
}

// WithLabels sets the axis labels.
func WithLabels(x, y string) Option {
	return func(o *Options) {
		o.XLabel = x
		o.YLabel = y
	}
}

// WithSize sets the canvas size.
func WithSize(w, h vg.Length) Option {
	return func(o *Options) {
		o.Width = w
		o.Height = h
	}
}

func applyOptions(opts []Option) *Options {
	o := &Options{
		Width:       10 * vg.Inch,
		Height:      7 * vg.Inch,
		PaletteSize: 255,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
