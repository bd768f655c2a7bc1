package tsp_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tourlab/matrix"
	"github.com/katalvlaran/tourlab/tsp"
)

func TestTourLength_ClosingEdgeOnlyAboveTwo(t *testing.T) {
	d := distFunc(t, euclid(t, unitSquare))
	assert.Equal(t, 0.0, tsp.TourLength([]int{0}, d))
	assert.Equal(t, 10.0, tsp.TourLength([]int{0, 1}, d), "n=2 is an open path")
	assert.InDelta(t, 20+math.Hypot(10, 10), tsp.TourLength([]int{0, 1, 2}, d), 1e-12)
	assert.Equal(t, 40.0, tsp.TourLength([]int{0, 1, 2, 3}, d))
	assert.Equal(t, 30.0, tsp.PathLength([]int{0, 1, 2, 3}, d))
}

func TestValidatePermutation(t *testing.T) {
	assert.NoError(t, tsp.ValidatePermutation([]int{2, 0, 1}, 3))
	assert.ErrorIs(t, tsp.ValidatePermutation([]int{0, 0, 1}, 3), tsp.ErrInvalidTour)
	assert.ErrorIs(t, tsp.ValidatePermutation([]int{0, 1}, 3), tsp.ErrInvalidTour)
	assert.ErrorIs(t, tsp.ValidatePermutation([]int{0, 1, 3}, 3), tsp.ErrInvalidTour)
}

func TestMatrixDistance_Rejects(t *testing.T) {
	rect, _ := matrix.NewDense(2, 3)
	_, _, err := tsp.MatrixDistance(rect)
	assert.ErrorIs(t, err, tsp.ErrNonSquare)

	neg, _ := matrix.FromRows([][]float64{{0, -1}, {-1, 0}})
	_, _, err = tsp.MatrixDistance(neg)
	assert.ErrorIs(t, err, tsp.ErrBadDistance)

	diag, _ := matrix.FromRows([][]float64{{1, 1}, {1, 0}})
	_, _, err = tsp.MatrixDistance(diag)
	assert.ErrorIs(t, err, tsp.ErrBadDistance)

	_, _, err = tsp.MatrixDistance(nil)
	assert.ErrorIs(t, err, tsp.ErrNoNodes)
}

func TestTwoOpt_UncrossesSquare(t *testing.T) {
	d := distFunc(t, euclid(t, unitSquare))
	crossed := []int{0, 2, 1, 3}
	require.Greater(t, tsp.TourLength(crossed, d), 40.0)

	tour, length, err := tsp.TwoOpt(context.Background(), crossed, d, tsp.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 40.0, length)
	assert.NoError(t, tsp.ValidatePermutation(tour, 4))
	assert.Equal(t, []int{0, 2, 1, 3}, crossed, "input untouched")
}

func TestTwoOpt_NeverIncreasesLength(t *testing.T) {
	var (
		seed int64 = 1
		ctx        = context.Background()
	)
	Repeat(t, 40, func() {
		n := 5 + int(seed%20)
		d := distFunc(t, euclid(t, randomPoints(n, seed)))
		start := tsp.RandomTour(n, tsp.NewSeededRandom(seed*31))

		before := tsp.TourLength(start, d)
		tour, after, err := tsp.TwoOpt(ctx, start, d, tsp.DefaultOptions())
		require.NoError(t, err)
		assert.LessOrEqual(t, after, before+1e-9)
		assert.NoError(t, tsp.ValidatePermutation(tour, n))
		seed++
	})
}

func TestTwoOpt_AvoidsInfiniteEdges(t *testing.T) {
	inf := math.Inf(1)
	// 0-2 and 1-3 are impossible; the only finite cycle is 0-1-2-3.
	m, err := matrix.FromRows([][]float64{
		{0, 1, inf, 1},
		{1, 0, 1, inf},
		{inf, 1, 0, 1},
		{1, inf, 1, 0},
	})
	require.NoError(t, err)
	d := distFunc(t, m)

	tour, length, err := tsp.TwoOpt(context.Background(), []int{0, 1, 3, 2}, d, tsp.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 4.0, length)
	assert.NoError(t, tsp.ValidatePermutation(tour, 4))
}

func TestTwoOpt_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	d := distFunc(t, euclid(t, sixNodes))
	_, _, err := tsp.TwoOpt(ctx, tsp.Identity(6), d, tsp.DefaultOptions())
	assert.ErrorIs(t, err, tsp.ErrCancelled)
	assert.ErrorIs(t, err, context.Canceled)
}
