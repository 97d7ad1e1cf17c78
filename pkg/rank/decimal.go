package rank

import (
	"fmt"
	"sort"
)

// DecimalToRank converts raw numeric scores into rank positions. Higher
// scores take better (lower) ranks. Negative scores always rank after every
// non-negative score, ordered among themselves by value descending. Tied
// scores share the rank of the first member of the run (competition
// ranking). Missing entries stay missing.
func DecimalToRank(values []float64) ([]float64, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("%w: empty score vector", ErrInvalidInput)
	}

	idx := make([]int, 0, len(values))
	for i, v := range values {
		if !IsMissing(v) {
			idx = append(idx, i)
		}
	}

	// Non-negatives by value descending, then the negative block by value
	// descending.
	sort.SliceStable(idx, func(a, b int) bool {
		va, vb := values[idx[a]], values[idx[b]]
		na, nb := va < 0, vb < 0
		if na != nb {
			return nb
		}
		return va > vb
	})

	out := make([]float64, len(values))
	for i := range out {
		out[i] = Missing()
	}

	pos := 0.0
	for k, i := range idx {
		if k == 0 || values[i] != values[idx[k-1]] {
			pos = float64(k + 1)
		}
		out[i] = pos
	}

	return out, nil
}
