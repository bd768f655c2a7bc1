// Package tsp - tour utilities shared by every solver.
//
// Design:
//   - A tour is a permutation of 0..n-1; the closing edge is implicit.
//   - Lengths are summed in tour order; +Inf edges propagate (an impossible
//     tour has infinite length, never NaN).
//   - Stable cost: reported lengths are rounded to 1e-9 by the dispatcher.
//
// Complexity: O(n) per evaluation.
package tsp

import (
	"math"

	"github.com/katalvlaran/tourlab/matrix"
)

// roundScale controls final cost stabilization precision (1e-9).
const roundScale = 1e9

// DistanceFunc returns the cost of the edge between node indices i and j.
type DistanceFunc func(i, j int) float64

// MatrixDistance snapshots a validated distance matrix into a DistanceFunc.
// The snapshot is independent of later mutations of m.
//
// Errors: ErrNoNodes, ErrNonSquare, ErrBadDistance.
// Complexity: O(n²).
func MatrixDistance(m matrix.Matrix) (DistanceFunc, int, error) {
	t, err := newTable(m)
	if err != nil {
		return nil, 0, err
	}
	return t.at, t.n, nil
}

// TourLength sums d along tour. The closing edge back to tour[0] is added
// only when len(tour) > 2; a two-node tour is an open path.
//
// Complexity: O(len(tour)).
func TourLength(tour []int, d DistanceFunc) float64 {
	var (
		sum float64
		i   int
		k   = len(tour)
	)
	for i = 0; i+1 < k; i++ {
		sum += d(tour[i], tour[i+1])
	}
	if k > 2 {
		sum += d(tour[k-1], tour[0])
	}
	return sum
}

// PathLength sums d along path without a closing edge.
func PathLength(path []int, d DistanceFunc) float64 {
	var sum float64
	for i := 0; i+1 < len(path); i++ {
		sum += d(path[i], path[i+1])
	}
	return sum
}

// ValidatePermutation returns ErrInvalidTour unless tour contains each of
// 0..n-1 exactly once.
func ValidatePermutation(tour []int, n int) error {
	if len(tour) != n {
		return ErrInvalidTour
	}
	seen := make([]bool, n)
	for _, v := range tour {
		if v < 0 || v >= n || seen[v] {
			return ErrInvalidTour
		}
		seen[v] = true
	}
	return nil
}

// Identity returns the tour 0, 1, …, n-1.
func Identity(n int) []int {
	t := make([]int, n)
	for i := range t {
		t[i] = i
	}
	return t
}

// round1e9 stabilizes a cost for reporting. +Inf passes through.
func round1e9(x float64) float64 {
	if math.IsInf(x, 0) || math.IsNaN(x) {
		return x
	}
	return math.Round(x*roundScale) / roundScale
}
