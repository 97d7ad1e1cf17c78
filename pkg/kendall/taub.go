package kendall

import "math"

// tauB computes Kendall's tau-b with tie correction over two equal-length
// rank vectors. The second return is false when the coefficient is
// undefined: fewer than two entries, or zero variance in either vector.
func tauB(x, y []float64) (float64, bool) {
	n := len(x)
	if n < 2 {
		return 0, false
	}

	var concordant, discordant float64
	var tiedX, tiedY float64
	for i := 0; i < n-1; i++ {
		for j := i + 1; j < n; j++ {
			dx := x[j] - x[i]
			dy := y[j] - y[i]
			switch {
			case dx == 0 && dy == 0:
				tiedX++
				tiedY++
			case dx == 0:
				tiedX++
			case dy == 0:
				tiedY++
			case dx*dy > 0:
				concordant++
			default:
				discordant++
			}
		}
	}

	pairs := float64(n*(n-1)) / 2
	denom := math.Sqrt((pairs - tiedX) * (pairs - tiedY))
	if denom == 0 {
		return 0, false
	}
	return (concordant - discordant) / denom, true
}
