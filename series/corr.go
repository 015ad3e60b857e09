package series

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/vessel-dt/decayviz/dataset"
	"github.com/vessel-dt/decayviz/grid"
)

// ============================================================================
// CORRELATION MATRIX
// ============================================================================
// Pearson correlation over complete rows only — any row missing one of the
// requested fields is excluded from the whole matrix so every pairwise
// coefficient is computed over the same observations.
// ============================================================================

// Correlation holds a symmetric field-by-field Pearson matrix.
type Correlation struct {
	Fields []string
	Matrix *mat.SymDense
	Rows   int // complete rows used
}

// At returns the coefficient for a field index pair.
func (c *Correlation) At(i, j int) float64 { return c.Matrix.At(i, j) }

// CorrelationMatrix computes the Pearson matrix over the given fields.
// fields nil means every field in the dataset.
func CorrelationMatrix(ds *dataset.Dataset, fields []string) (*Correlation, error) {
	if fields == nil {
		fields = ds.Fields()
	}
	for _, f := range fields {
		if !ds.Has(f) {
			return nil, &grid.SchemaError{Field: f}
		}
	}

	// Gather complete rows.
	var data []float64
	rows := 0
	buf := make([]float64, len(fields))
	for i := 0; i < ds.Len(); i++ {
		complete := true
		for j, f := range fields {
			v, ok := ds.Value(i, f)
			if !ok {
				complete = false
				break
			}
			buf[j] = v
		}
		if !complete {
			continue
		}
		data = append(data, buf...)
		rows++
	}

	if rows < 2 {
		return nil, &grid.EmptyResultError{Reason: "fewer than two complete observations for correlation"}
	}

	x := mat.NewDense(rows, len(fields), data)
	m := mat.NewSymDense(len(fields), nil)
	stat.CorrelationMatrix(m, x, nil)

	return &Correlation{Fields: fields, Matrix: m, Rows: rows}, nil
}
