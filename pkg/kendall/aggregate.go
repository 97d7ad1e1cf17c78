package kendall

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// aggregate folds per-row results into the weighted correlation and the
// effective sample size. Rows without a defined tau are excluded from the
// weighted average entirely, but their weights still measure comparison
// volume and so still feed effective N.
func aggregate(stats []rowStat) Result {
	weights := make([]float64, len(stats))
	var num, den float64
	for i, s := range stats {
		weights[i] = s.weight
		if s.defined {
			num += s.tau * s.weight
			den += s.weight
		}
	}

	tau := math.NaN()
	if den > 0 {
		tau = num / den
	}

	// Invert W = N*(N-1)/2 to recover the single-ranking sample size that
	// would yield the same number of pairwise comparisons.
	total := floats.Sum(weights)
	nEffective := 0.5 + math.Sqrt(0.25+2*total)

	return Result{Tau: tau, NEffective: nEffective}
}
