package kendall

import (
	"math"

	"github.com/tricolab/fieldrank/pkg/rank"
)

// rowTau runs the single-row pipeline: mask out missing (and, by default,
// zero) positions in either vector, convert decimal scores to ranks, and
// compute tau-b with the row's pairwise-comparison weight.
func rowTau(x, y []float64, o Options) rowStat {
	fx := make([]float64, 0, len(x))
	fy := make([]float64, 0, len(y))
	for i := range x {
		if rank.IsMissing(x[i]) || rank.IsMissing(y[i]) {
			continue
		}
		if o.DropZeros && (x[i] == 0 || y[i] == 0) {
			continue
		}
		fx = append(fx, x[i])
		fy = append(fy, y[i])
	}

	m := len(fx)
	weight := float64(m*(m-1)) / 2

	if hasFraction(fx) {
		fx, _ = rank.DecimalToRank(fx)
	}
	if hasFraction(fy) {
		fy, _ = rank.DecimalToRank(fy)
	}

	tau, ok := tauB(fx, fy)
	return rowStat{tau: tau, weight: weight, defined: ok}
}

func hasFraction(v []float64) bool {
	for _, x := range v {
		if x != math.Trunc(x) {
			return true
		}
	}
	return false
}
