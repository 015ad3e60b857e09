package render

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"

	"github.com/vessel-dt/decayviz/grid"
)

// ============================================================================
// HEATMAP — one grid, diverging blue-red palette
// ============================================================================

// Heatmap renders a DecayGrid as a PNG heatmap at path.
// Holes are left transparent.
func Heatmap(g *grid.Grid, path string, opts ...Option) error {
	o := applyOptions(opts)

	min, max, ok := g.MinMax()
	if !ok {
		return &grid.DegenerateRangeError{}
	}

	p := plot.New()
	p.Title.Text = o.Title
	p.X.Label.Text = o.XLabel
	p.Y.Label.Text = o.YLabel

	hm := plotter.NewHeatMap(decayGridXYZ{g}, moreland.SmoothBlueRed().Palette(o.PaletteSize))
	hm.Min = min
	hm.Max = max
	hm.NaN = color.Transparent
	p.Add(hm)

	return p.Save(o.Width, o.Height, path)
}

// Surface renders PairedDecayGrids: the color grid (normalized to [0,1])
// painted as a heatmap, with contour lines of the height grid on top. This
// is the flat projection of the original 3-D fuel surface: height becomes
// isolines, the co-registered measurement keeps the color channel.
func Surface(pr *grid.Paired, path string, opts ...Option) error {
	o := applyOptions(opts)

	colorNorm, err := grid.Normalize(pr.Color)
	if err != nil {
		return err
	}
	hmin, hmax, ok := pr.Height.MinMax()
	if !ok {
		return &grid.DegenerateRangeError{}
	}

	p := plot.New()
	p.Title.Text = o.Title
	p.X.Label.Text = o.XLabel
	p.Y.Label.Text = o.YLabel

	hm := plotter.NewHeatMap(decayGridXYZ{colorNorm}, moreland.BlackBody().Palette(o.PaletteSize))
	hm.Min = 0
	hm.Max = 1
	hm.NaN = color.Transparent
	p.Add(hm)

	if hmax > hmin {
		ct := plotter.NewContour(decayGridXYZ{pr.Height}, nil, moreland.SmoothBlueRed().Palette(11))
		ct.Min = hmin
		ct.Max = hmax
		p.Add(ct)
	}

	return p.Save(o.Width, o.Height, path)
}
