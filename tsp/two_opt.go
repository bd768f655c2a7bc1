// Package tsp - 2-opt local search.
//
// Design:
//   - First-improvement hill climbing over all non-adjacent edge pairs
//     (t[i], t[i+1]) and (t[j], t[j+1 mod n]), i+1 < j.
//   - A move reverses t[i+1..j] in place when the gain beats -Eps.
//   - Moves that would introduce a +Inf edge are never taken; moves that
//     remove one are always taken.
//   - Terminates when a full pass finds no improving move or after
//     TwoOptMaxPasses passes (mandatory cap).
//
// Contracts:
//   - Never increases TourLength (every accepted move strictly decreases it).
//   - Returns a new slice; the input tour is not modified.
//
// Complexity: O(passes·n²) time, O(n) extra space.
package tsp

import (
	"context"
	"fmt"
	"math"
)

// TwoOpt improves tour under d and returns the improved copy with its length.
// Tours with fewer than four nodes are returned unchanged.
//
// Errors: ErrCancelled (wrapping ctx.Err()) when ctx ends between passes.
func TwoOpt(ctx context.Context, tour []int, d DistanceFunc, opts Options) ([]int, float64, error) {
	opts = opts.withDefaults()
	t, _, err := twoOpt(ctx, tour, d, opts.TwoOptMaxPasses, opts.Eps)
	if err != nil {
		return nil, 0, err
	}
	return t, TourLength(t, d), nil
}

// twoOpt is the worker behind TwoOpt; it also reports the number of passes.
func twoOpt(ctx context.Context, tour []int, d DistanceFunc, maxPasses int, eps float64) ([]int, int, error) {
	t := append([]int(nil), tour...)
	n := len(t)
	if n < 4 {
		return t, 0, nil
	}

	var (
		passes     int
		improved   = true
		i, j       int
		a, b, c, e int
		before     float64
		after      float64
	)
	for improved && passes < maxPasses {
		if err := ctx.Err(); err != nil {
			return nil, passes, fmt.Errorf("two-opt pass %d: %w: %w", passes, ErrCancelled, err)
		}
		improved = false
		passes++

		for i = 0; i < n-2; i++ {
			for j = i + 2; j < n; j++ {
				if i == 0 && j == n-1 {
					continue // edges share t[0]
				}
				a, b = t[i], t[i+1]
				c, e = t[j], t[(j+1)%n]

				after = d(a, c) + d(b, e)
				if math.IsInf(after, 1) {
					continue
				}
				before = d(a, b) + d(c, e)
				if after-before < -eps {
					reverse(t, i+1, j)
					improved = true
				}
			}
		}
	}

	return t, passes, nil
}

// reverse flips t[lo..hi] in place.
func reverse(t []int, lo, hi int) {
	for lo < hi {
		t[lo], t[hi] = t[hi], t[lo]
		lo++
		hi--
	}
}
