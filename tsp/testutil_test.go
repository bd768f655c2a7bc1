package tsp_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tourlab/matrix"
	"github.com/katalvlaran/tourlab/tsp"
)

// Repeat runs fn n times; used to assert determinism across runs.
func Repeat(t *testing.T, n int, fn func()) {
	t.Helper()
	for i := 0; i < n; i++ {
		fn()
	}
}

// euclid builds a Euclidean distance matrix from 2D points.
func euclid(t *testing.T, pts [][2]float64) *matrix.Dense {
	t.Helper()
	n := len(pts)
	m, err := matrix.NewDense(n, n)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := math.Hypot(pts[i][0]-pts[j][0], pts[i][1]-pts[j][1])
			require.NoError(t, m.SetSym(i, j, d))
		}
	}
	return m
}

// randomPoints draws n points in [0,100)² from the package LCG.
func randomPoints(n int, seed int64) [][2]float64 {
	r := tsp.NewSeededRandom(seed)
	pts := make([][2]float64, n)
	for i := range pts {
		pts[i] = [2]float64{r.Next() * 100, r.Next() * 100}
	}
	return pts
}

// distFunc snapshots m into a DistanceFunc.
func distFunc(t *testing.T, m matrix.Matrix) tsp.DistanceFunc {
	t.Helper()
	d, _, err := tsp.MatrixDistance(m)
	require.NoError(t, err)
	return d
}

// withUnreachable returns a copy of m where node k is +Inf from every other node.
func withUnreachable(t *testing.T, m *matrix.Dense, k int) *matrix.Dense {
	t.Helper()
	c := m.Clone().(*matrix.Dense)
	for j := 0; j < c.Rows(); j++ {
		if j != k {
			require.NoError(t, c.SetSym(k, j, math.Inf(1)))
		}
	}
	return c
}

var unitSquare = [][2]float64{{0, 0}, {10, 0}, {10, 10}, {0, 10}}

var sixNodes = [][2]float64{{0, 0}, {30, 5}, {60, 0}, {65, 40}, {30, 55}, {-5, 40}}

var allAlgorithms = []tsp.Algorithm{tsp.NearestNeighbor, tsp.TPSMA, tsp.Genetic, tsp.Christofides}
