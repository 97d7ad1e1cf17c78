// Package kendall computes Kendall rank correlation between tricot-style
// rankings, with an effective sample size for significance testing.
package kendall

import (
	"errors"
	"math"

	"github.com/bytedance/sonic"
)

// ErrInvalidInput indicates empty inputs or mismatched dimensions.
var ErrInvalidInput = errors.New("kendall: invalid input")

// Result is the correlation summary for one comparison of two ranking sets.
// Tau is NaN when no row produced a defined correlation.
type Result struct {
	Tau        float64 `json:"kendallTau"`
	NEffective float64 `json:"N_effective"`
}

// Defined reports whether the aggregate correlation exists.
func (r Result) Defined() bool {
	return !math.IsNaN(r.Tau)
}

// MarshalJSON renders the single-row tabular form, with null for an
// undefined tau.
func (r Result) MarshalJSON() ([]byte, error) {
	aux := struct {
		Tau        *float64 `json:"kendallTau"`
		NEffective float64  `json:"N_effective"`
	}{NEffective: r.NEffective}
	if r.Defined() {
		aux.Tau = &r.Tau
	}
	return sonic.Marshal(aux)
}

// rowStat is the outcome of one comparison row: the correlation, whether it
// exists, and the row's pairwise-comparison weight m*(m-1)/2.
type rowStat struct {
	tau     float64
	weight  float64
	defined bool
}
