package metrics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tourlab/geometry"
	"github.com/katalvlaran/tourlab/metrics"
	"github.com/katalvlaran/tourlab/tsp"
)

var square = []geometry.Point{geometry.Pt(0, 0), geometry.Pt(10, 0), geometry.Pt(10, 10), geometry.Pt(0, 10)}

func ptr(v float64) *float64 { return &v }

func TestOptimalityAndSpeed(t *testing.T) {
	assert.Equal(t, 80.0, metrics.Optimality(40, 50))
	assert.Equal(t, 100.0, metrics.Optimality(40, 40))
	assert.Equal(t, 100.0, metrics.Optimality(0, 50))
	assert.Equal(t, 33.33, metrics.Optimality(1, 3))

	assert.Equal(t, 12.5, metrics.Speed(100, 8))
	assert.Equal(t, 0.0, metrics.Speed(100, 0))
}

func TestImprovementRate(t *testing.T) {
	r := tsp.Result{TotalLength: 75, InitialLength: ptr(100)}
	require.NotNil(t, metrics.ImprovementRate(r))
	assert.Equal(t, 25.0, *metrics.ImprovementRate(r))

	assert.Nil(t, metrics.ImprovementRate(tsp.Result{TotalLength: 75}), "single-shot algorithms")

	r.Details.Fallback = true
	assert.Nil(t, metrics.ImprovementRate(r))

	zero := metrics.ImprovementRate(tsp.Result{TotalLength: 0, InitialLength: ptr(0)})
	require.NotNil(t, zero)
	assert.Equal(t, 0.0, *zero)
}

func TestSmoothnessTurns(t *testing.T) {
	assert.Equal(t, 3, metrics.SmoothnessTurns([]int{0, 1, 2, 3}, square, metrics.TurnThresholdDegrees))

	line := []geometry.Point{geometry.Pt(0, 0), geometry.Pt(5, 0), geometry.Pt(10, 0)}
	assert.Equal(t, 0, metrics.SmoothnessTurns([]int{0, 1, 2}, line, metrics.TurnThresholdDegrees))

	assert.Equal(t, 0, metrics.SmoothnessTurns([]int{0, 1}, square, metrics.TurnThresholdDegrees))
	assert.Equal(t, 0, metrics.SmoothnessTurns([]int{0, 1, 9}, square, metrics.TurnThresholdDegrees))
}

func TestEnrich(t *testing.T) {
	results := []tsp.Result{
		{Path: []int{0, 2, 1, 3}, TotalLength: 48.28, TimeMs: 2, Algorithm: tsp.Genetic, InitialLength: ptr(60)},
		{Path: []int{0, 1, 2}, TotalLength: 20, Algorithm: tsp.NearestNeighbor, Details: tsp.Details{Partial: true}},
		{Path: []int{0, 1, 2, 3}, TotalLength: 40, TimeMs: 4, Algorithm: tsp.Christofides},
	}
	reports := metrics.Enrich(results, square)
	require.Len(t, reports, 3)

	ga, nn, chr := reports[0], reports[1], reports[2]
	assert.Equal(t, tsp.Genetic, ga.Algorithm)
	assert.Equal(t, 82.85, ga.PathOptimalityPercent)
	assert.Equal(t, 24.14, ga.ComputationSpeed)
	require.NotNil(t, ga.ImprovementRatePercent)
	assert.Equal(t, 19.53, *ga.ImprovementRatePercent)
	assert.Equal(t, 2, ga.Rank)

	assert.Equal(t, 0.0, nn.PathOptimalityPercent, "partial results are not scored")
	assert.Equal(t, 3, nn.Rank)

	assert.Equal(t, 100.0, chr.PathOptimalityPercent)
	assert.Nil(t, chr.ImprovementRatePercent)
	assert.Equal(t, 3, chr.PathSmoothnessTurns)
	assert.Equal(t, 1, chr.Rank)
}

func TestShortest_IgnoresPartialAndZero(t *testing.T) {
	assert.Equal(t, 0.0, metrics.Shortest(nil))
	assert.Equal(t, 30.0, metrics.Shortest([]tsp.Result{
		{TotalLength: 0},
		{TotalLength: 10, Details: tsp.Details{Partial: true}},
		{TotalLength: 30},
	}))
}
