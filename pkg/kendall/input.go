package kendall

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Input is any ranking shape the engine accepts. Ranking, grouped-ranking
// and pairwise-comparison objects from pkg/rank satisfy it; Vector and
// Table cover raw numeric data.
type Input interface {
	// RankRows materializes the input as a dense matrix with one row per
	// comparison instance and one column per item. NaN marks a missing
	// cell.
	RankRows() (*mat.Dense, error)
}

// Vector is a single comparison row of raw scores or ranks.
type Vector []float64

// RankRows returns the vector as a 1×n matrix.
func (v Vector) RankRows() (*mat.Dense, error) {
	if len(v) == 0 {
		return nil, fmt.Errorf("%w: empty vector", ErrInvalidInput)
	}
	return mat.NewDense(1, len(v), append([]float64(nil), v...)), nil
}

// Table wraps an already-materialized numeric matrix.
type Table struct {
	M *mat.Dense
}

// RankRows returns the wrapped matrix.
func (t Table) RankRows() (*mat.Dense, error) {
	if t.M == nil {
		return nil, fmt.Errorf("%w: nil table", ErrInvalidInput)
	}
	r, c := t.M.Dims()
	if r == 0 || c == 0 {
		return nil, fmt.Errorf("%w: empty table", ErrInvalidInput)
	}
	return t.M, nil
}
