package render

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"

	"github.com/vessel-dt/decayviz/series"
)

// ============================================================================
// CORRELATION HEATMAP
// ============================================================================

// CorrHeatmap renders a correlation matrix as a field-by-field heatmap with
// a fixed [-1, 1] color range.
func CorrHeatmap(c *series.Correlation, path string, opts ...Option) error {
	o := applyOptions(opts)

	p := plot.New()
	p.Title.Text = o.Title

	hm := plotter.NewHeatMap(symGridXYZ{c.Matrix}, moreland.SmoothBlueRed().Palette(o.PaletteSize))
	hm.Min = -1
	hm.Max = 1
	p.Add(hm)

	ticks := make([]plot.Tick, len(c.Fields))
	for i, f := range c.Fields {
		ticks[i] = plot.Tick{Value: float64(i), Label: f}
	}
	p.X.Tick.Marker = plot.ConstantTicks(ticks)
	p.Y.Tick.Marker = plot.ConstantTicks(ticks)
	p.X.Tick.Label.Rotation = -0.6
	p.X.Tick.Label.XAlign = -0.8

	return p.Save(o.Width, o.Height, path)
}
