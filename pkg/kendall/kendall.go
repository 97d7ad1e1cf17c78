package kendall

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/mat"

	"github.com/tricolab/fieldrank/pkg/rank"
)

// Tau computes the Kendall rank correlation between two same-shaped ranking
// inputs. Both are materialized as row-aligned rank matrices, each row is
// correlated independently, and the rows are folded into a weighted tau and
// an effective sample size.
func Tau(x, y Input, opts ...Option) (Result, error) {
	o := newOptions(opts...)

	xm, err := x.RankRows()
	if err != nil {
		return Result{}, fmt.Errorf("materialize x: %w", err)
	}
	ym, err := y.RankRows()
	if err != nil {
		return Result{}, fmt.Errorf("materialize y: %w", err)
	}

	xr, xc := xm.Dims()
	yr, yc := ym.Dims()
	if xr == 0 || xc == 0 {
		return Result{}, fmt.Errorf("%w: empty input", ErrInvalidInput)
	}
	if xr != yr || xc != yc {
		return Result{}, fmt.Errorf("%w: x is %dx%d, y is %dx%d", ErrInvalidInput, xr, xc, yr, yc)
	}

	stats := make([]rowStat, xr)
	for rowIdx := range xr {
		stats[rowIdx] = rowTau(mat.Row(nil, rowIdx, xm), mat.Row(nil, rowIdx, ym), o)
	}

	res := aggregate(stats)
	log.Debug().Msgf("Kendall tau over %d rows: tau=%f N_effective=%f", xr, res.Tau, res.NEffective)
	return res, nil
}

// TauVectors correlates two single comparison rows.
func TauVectors(x, y []float64, opts ...Option) (Result, error) {
	return Tau(Vector(x), Vector(y), opts...)
}

// TauMatrices correlates two raw numeric matrices row by row.
func TauMatrices(x, y *mat.Dense, opts ...Option) (Result, error) {
	return Tau(Table{M: x}, Table{M: y}, opts...)
}

// TauRankings correlates two rank matrices.
func TauRankings(x, y *rank.Matrix, opts ...Option) (Result, error) {
	return Tau(x, y, opts...)
}

// TauGrouped correlates two grouped ranking collections, flattening each
// first.
func TauGrouped(x, y *rank.Grouped, opts ...Option) (Result, error) {
	return Tau(x, y, opts...)
}

// TauPaired correlates two pairwise-comparison collections. Each is
// converted to its grouped-ranking form before flattening.
func TauPaired(x, y *rank.Paired, opts ...Option) (Result, error) {
	return Tau(x, y, opts...)
}
