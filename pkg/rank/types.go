// Package rank builds rank matrices from tricot field-trial observations
// and related comparison encodings.
package rank

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

var (
	// ErrInvalidInput indicates empty or malformed ranking input.
	ErrInvalidInput = errors.New("rank: invalid input")

	// ErrInvalidObservation indicates a tricot observation that does not
	// describe a valid triadic comparison.
	ErrInvalidObservation = errors.New("rank: invalid tricot observation")
)

// Missing is the cell value for an unranked item.
func Missing() float64 {
	return math.NaN()
}

// IsMissing reports whether a cell holds no rank.
func IsMissing(v float64) bool {
	return math.IsNaN(v)
}

// Matrix is a rank matrix: one row per comparison instance, one column per
// item. A missing cell means the row did not rank that item.
type Matrix struct {
	items []string
	ranks *mat.Dense
}

// NewMatrix builds a Matrix from row slices. Every row must have one entry
// per item.
func NewMatrix(items []string, rows [][]float64) (*Matrix, error) {
	if len(items) == 0 || len(rows) == 0 {
		return nil, fmt.Errorf("%w: empty rank matrix", ErrInvalidInput)
	}

	data := make([]float64, 0, len(rows)*len(items))
	for i, row := range rows {
		if len(row) != len(items) {
			return nil, fmt.Errorf("%w: row %d has %d entries, want %d", ErrInvalidInput, i, len(row), len(items))
		}
		data = append(data, row...)
	}

	return &Matrix{
		items: append([]string(nil), items...),
		ranks: mat.NewDense(len(rows), len(items), data),
	}, nil
}

// Items returns the column labels.
func (m *Matrix) Items() []string {
	return append([]string(nil), m.items...)
}

// Rows returns the number of comparison instances.
func (m *Matrix) Rows() int {
	r, _ := m.ranks.Dims()
	return r
}

// Row returns a copy of row i.
func (m *Matrix) Row(i int) []float64 {
	return mat.Row(nil, i, m.ranks)
}

// RankRows returns the dense rank representation consumed by the
// correlation engine.
func (m *Matrix) RankRows() (*mat.Dense, error) {
	return mat.DenseCopyOf(m.ranks), nil
}
