package render

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/vessel-dt/decayviz/series"
)

// ============================================================================
// SCATTER / LINES / HISTOGRAM / BOXPLOTS
// ============================================================================

// Scatter renders scatter points, colored by their hue value when defined.
func Scatter(points []series.Point, path string, opts ...Option) error {
	o := applyOptions(opts)

	xys := make(plotter.XYs, len(points))
	for i, pt := range points {
		xys[i].X = pt.X
		xys[i].Y = pt.Y
	}

	sc, err := plotter.NewScatter(xys)
	if err != nil {
		return err
	}
	sc.GlyphStyle.Radius = 2
	sc.GlyphStyle.Shape = draw.CircleGlyph{}

	if hueMin, hueMax, ok := hueRange(points); ok {
		cm := moreland.SmoothBlueRed()
		cm.SetMin(hueMin)
		cm.SetMax(hueMax)
		base := sc.GlyphStyle
		sc.GlyphStyleFunc = func(i int) draw.GlyphStyle {
			style := base
			h := points[i].Hue
			if math.IsNaN(h) {
				style.Color = color.Gray{Y: 128}
				return style
			}
			if c, err := cm.At(h); err == nil {
				style.Color = c
			}
			return style
		}
	}

	p := plot.New()
	p.Title.Text = o.Title
	p.X.Label.Text = o.XLabel
	p.Y.Label.Text = o.YLabel
	p.Add(plotter.NewGrid())
	p.Add(sc)

	return p.Save(o.Width, o.Height, path)
}

// Lines renders operating lines, one series per decay state.
func Lines(lines []series.Line, path string, opts ...Option) error {
	o := applyOptions(opts)

	p := plot.New()
	p.Title.Text = o.Title
	p.X.Label.Text = o.XLabel
	p.Y.Label.Text = o.YLabel
	p.Legend.Top = true
	p.Add(plotter.NewGrid())

	args := make([]interface{}, 0, 2*len(lines))
	for _, l := range lines {
		xys := make(plotter.XYs, len(l.Speeds))
		for i := range l.Speeds {
			xys[i].X = l.Speeds[i]
			xys[i].Y = l.Values[i]
		}
		args = append(args, fmt.Sprintf("%g", l.Decay), xys)
	}
	if err := plotutil.AddLinePoints(p, args...); err != nil {
		return err
	}

	return p.Save(o.Width, o.Height, path)
}

// Histogram renders a value distribution with the given bin count.
func Histogram(d *series.Distribution, bins int, path string, opts ...Option) error {
	o := applyOptions(opts)

	h, err := plotter.NewHist(plotter.Values(d.Values), bins)
	if err != nil {
		return err
	}

	p := plot.New()
	p.Title.Text = o.Title
	p.X.Label.Text = o.XLabel
	p.Y.Label.Text = o.YLabel
	p.Add(h)

	return p.Save(o.Width, o.Height, path)
}

// Boxplots renders one box-and-whisker per distribution on a shared axis,
// labeled by field name.
func Boxplots(dists []*series.Distribution, path string, opts ...Option) error {
	o := applyOptions(opts)

	p := plot.New()
	p.Title.Text = o.Title
	p.X.Label.Text = o.XLabel
	p.Y.Label.Text = o.YLabel

	names := make([]string, len(dists))
	for i, d := range dists {
		b, err := plotter.NewBoxPlot(vg.Points(30), float64(i), plotter.Values(d.Values))
		if err != nil {
			return err
		}
		p.Add(b)
		names[i] = d.Field
	}
	p.NominalX(names...)

	return p.Save(o.Width, o.Height, path)
}

// hueRange returns the extremes over defined hues; ok is false when no
// point carries a hue.
func hueRange(points []series.Point) (min, max float64, ok bool) {
	min, max = math.Inf(1), math.Inf(-1)
	for _, pt := range points {
		if math.IsNaN(pt.Hue) {
			continue
		}
		if pt.Hue < min {
			min = pt.Hue
		}
		if pt.Hue > max {
			max = pt.Hue
		}
		ok = true
	}
	if !ok || min == max {
		return 0, 0, false
	}
	return min, max, true
}
