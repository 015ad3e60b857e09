package render

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/vessel-dt/decayviz/grid"
)

// ============================================================================
// GRID ADAPTERS — expose grids to gonum/plot's GridXYZ mesh interface
// ============================================================================

// decayGridXYZ adapts a *grid.Grid to plotter.GridXYZ. X is turbine decay
// (columns), Y is compressor decay (rows); holes surface as NaN, which the
// heatmap leaves unpainted.
type decayGridXYZ struct {
	g *grid.Grid
}

func (d decayGridXYZ) Dims() (c, r int) {
	r, c = d.g.Dims()
	return c, r
}

func (d decayGridXYZ) X(c int) float64 { return d.g.Cols()[c] }
func (d decayGridXYZ) Y(r int) float64 { return d.g.Rows()[r] }

func (d decayGridXYZ) Z(c, r int) float64 {
	v, ok := d.g.Value(r, c)
	if !ok {
		return math.NaN()
	}
	return v
}

// symGridXYZ adapts a symmetric matrix (correlation) to GridXYZ with unit
// cell spacing, so field indices land on integer coordinates.
type symGridXYZ struct {
	m *mat.SymDense
}

func (s symGridXYZ) Dims() (c, r int) {
	n := s.m.SymmetricDim()
	return n, n
}

func (s symGridXYZ) X(c int) float64    { return float64(c) }
func (s symGridXYZ) Y(r int) float64    { return float64(r) }
func (s symGridXYZ) Z(c, r int) float64 { return s.m.At(r, c) }
