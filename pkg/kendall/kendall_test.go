package kendall

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/tricolab/fieldrank/pkg/rank"
)

// refTau is an independent tie-free Kendall reference: signed pair counts
// over n*(n-1)/2.
func refTau(x, y []float64) float64 {
	n := len(x)
	var s float64
	for i := 0; i < n-1; i++ {
		for j := i + 1; j < n; j++ {
			p := (x[j] - x[i]) * (y[j] - y[i])
			switch {
			case p > 0:
				s++
			case p < 0:
				s--
			}
		}
	}
	return s / (float64(n*(n-1)) / 2)
}

func TestTauVectors_MatchesReferenceOnPermutations(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	for trial := 0; trial < 50; trial++ {
		n := 3 + rng.IntN(8)
		x := make([]float64, n)
		y := make([]float64, n)
		for i, v := range rng.Perm(n) {
			x[i] = float64(v + 1)
		}
		for i, v := range rng.Perm(n) {
			y[i] = float64(v + 1)
		}

		res, err := TauVectors(x, y)
		require.NoError(t, err)
		assert.InDelta(t, refTau(x, y), res.Tau, 1e-12)
	}
}

func TestTauVectors_PerfectAgreement(t *testing.T) {
	res, err := TauVectors([]float64{1, 2, 3, 4}, []float64{1, 2, 3, 4})
	require.NoError(t, err)
	assert.Equal(t, 1.0, res.Tau)
	// Weight 6 inverts to a 4-item sample: 0.5 + sqrt(12.25).
	assert.Equal(t, 4.0, res.NEffective)
}

func TestTauVectors_PerfectDisagreement(t *testing.T) {
	res, err := TauVectors([]float64{1, 2, 3, 4}, []float64{4, 3, 2, 1})
	require.NoError(t, err)
	assert.Equal(t, -1.0, res.Tau)
	assert.Equal(t, 4.0, res.NEffective)
}

func TestTauVectors_ZeroDroppedAsMissing(t *testing.T) {
	x := []float64{1, 2, 0, 3, 5, 7, 6}
	y := []float64{1, 2, 3, 4, 5, 6, 7}

	res, err := TauVectors(x, y)
	require.NoError(t, err)
	// Six surviving items, fifteen pairwise comparisons.
	assert.Equal(t, 6.0, res.NEffective)
	assert.InDelta(t, 13.0/15.0, res.Tau, 1e-12)
}

func TestTauVectors_ZerosKept(t *testing.T) {
	x := []float64{1, 2, 0, 3, 5, 7, 6}
	y := []float64{1, 2, 3, 4, 5, 6, 7}

	res, err := TauVectors(x, y, WithZerosKept())
	require.NoError(t, err)
	// All seven items, twenty-one pairwise comparisons.
	assert.Equal(t, 7.0, res.NEffective)
	assert.InDelta(t, 15.0/21.0, res.Tau, 1e-12)
}

func TestTauVectors_DecimalScoresConverted(t *testing.T) {
	// Raw scores on one side: 2.5 is the best score, so it must line up
	// with rank 1 on the other side.
	res, err := TauVectors([]float64{0.5, 2.5, 1.5}, []float64{3, 1, 2})
	require.NoError(t, err)
	assert.Equal(t, 1.0, res.Tau)
}

func TestTauVectors_NegativeScoresRankWorst(t *testing.T) {
	// -9.9 is a score, not a rank: it must land behind both positives.
	res, err := TauVectors([]float64{1.5, 0.5, -9.9}, []float64{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, 1.0, res.Tau)
}

func TestTauVectors_MissingEntriesExcluded(t *testing.T) {
	x := []float64{1, math.NaN(), 2, 3}
	y := []float64{1, 2, 3, 4}

	res, err := TauVectors(x, y)
	require.NoError(t, err)
	assert.Equal(t, 1.0, res.Tau)
	// Three surviving items, three pairwise comparisons.
	assert.Equal(t, 3.0, res.NEffective)
}

func TestTauVectors_TooFewItemsIsUndefined(t *testing.T) {
	res, err := TauVectors([]float64{1, math.NaN(), math.NaN()}, []float64{1, 2, 3})
	require.NoError(t, err)
	assert.False(t, res.Defined())
	assert.True(t, math.IsNaN(res.Tau))
	assert.Equal(t, 1.0, res.NEffective)
}

func TestTauVectors_ZeroVarianceIsUndefined(t *testing.T) {
	res, err := TauVectors([]float64{4, 4, 4}, []float64{1, 2, 3})
	require.NoError(t, err)
	assert.False(t, res.Defined())
}

func TestTauMatrices_WeightedAggregate(t *testing.T) {
	// Row one: three items in perfect agreement (tau 1, weight 3).
	// Row two: four items in perfect disagreement (tau -1, weight 6).
	x := mat.NewDense(2, 4, []float64{
		1, 2, 3, math.NaN(),
		1, 2, 3, 4,
	})
	y := mat.NewDense(2, 4, []float64{
		1, 2, 3, math.NaN(),
		4, 3, 2, 1,
	})

	res, err := TauMatrices(x, y)
	require.NoError(t, err)
	assert.InDelta(t, (1.0*3-1.0*6)/9.0, res.Tau, 1e-12)
	assert.InDelta(t, 0.5+math.Sqrt(0.25+2*9), res.NEffective, 1e-12)
}

func TestTauMatrices_UndefinedRowExcludedFromAverage(t *testing.T) {
	// Second row has zero variance in x: its tau is undefined and must not
	// pull the average toward zero, but its three comparisons still count
	// toward effective N.
	x := mat.NewDense(2, 3, []float64{
		1, 2, 3,
		4, 4, 4,
	})
	y := mat.NewDense(2, 3, []float64{
		1, 2, 3,
		1, 2, 3,
	})

	res, err := TauMatrices(x, y)
	require.NoError(t, err)
	assert.Equal(t, 1.0, res.Tau)
	assert.Equal(t, 4.0, res.NEffective) // total weight 6
}

func TestTauMatrices_DimensionMismatch(t *testing.T) {
	x := mat.NewDense(2, 3, nil)
	y := mat.NewDense(2, 4, nil)
	_, err := TauMatrices(x, y)
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestTau_EmptyInput(t *testing.T) {
	_, err := TauVectors(nil, nil)
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = Tau(Table{}, Table{})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestTauRankings_SelfComparison(t *testing.T) {
	m, err := rank.FromTricot(
		[]string{"a", "b", "c", "d"},
		[]rank.TricotObservation{
			{Observer: "obs-1", Items: [3]string{"a", "b", "c"}, Best: "a", Worst: "c"},
			{Observer: "obs-2", Items: [3]string{"b", "c", "d"}, Best: "d", Worst: "b"},
			{Observer: "obs-3", Items: [3]string{"a", "c", "d"}, Best: "c", Worst: "a"},
		},
	)
	require.NoError(t, err)

	res, err := TauRankings(m, m)
	require.NoError(t, err)
	assert.Equal(t, 1.0, res.Tau)
	// Three rows of three ranked items each: total weight 9.
	assert.InDelta(t, 0.5+math.Sqrt(0.25+2*9), res.NEffective, 1e-12)
}

func TestTauGrouped_SelfComparison(t *testing.T) {
	g, err := rank.NewGrouped([]string{"a", "b", "c", "d"}, []rank.Group{
		{Observer: "obs-1", Ranks: map[string]float64{"a": 1, "b": 2, "c": 3}},
		{Observer: "obs-2", Ranks: map[string]float64{"b": 1, "d": 2}},
	})
	require.NoError(t, err)

	res, err := TauGrouped(g, g)
	require.NoError(t, err)
	assert.Equal(t, 1.0, res.Tau)
}

func TestTauPaired_SelfComparison(t *testing.T) {
	p, err := rank.NewPaired([]string{"a", "b", "c"}, []rank.Comparison{
		{Observer: "obs-1", Winner: "a", Loser: "b"},
		{Observer: "obs-1", Winner: "b", Loser: "c"},
	})
	require.NoError(t, err)

	res, err := TauPaired(p, p)
	require.NoError(t, err)
	assert.Equal(t, 1.0, res.Tau)
}
