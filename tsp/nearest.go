// Package tsp - nearest-neighbor construction followed by 2-opt.
//
// Design:
//   - Start at StartVertex (default 0); repeatedly move to the closest
//     unvisited node with a finite distance, lowest index on ties.
//   - If every remaining node is unreachable the walk stops early and the
//     result is flagged Partial with the missing nodes listed. This is a
//     degraded result, not an error.
//   - Complete tours are improved by 2-opt. No randomness: repeated calls on
//     the same table return identical tours.
//
// Complexity: O(n²) construction + O(passes·n²) 2-opt.
package tsp

import (
	"context"
	"math"
)

type nearestSolver struct{}

func (nearestSolver) Algorithm() Algorithm { return NearestNeighbor }

func (nearestSolver) Solve(ctx context.Context, d DistanceFunc, n int, opts Options) (Result, error) {
	start := opts.StartVertex
	if start >= n {
		start = 0
	}

	path, unreachable := nearestPath(d, n, start)
	if len(unreachable) > 0 {
		return Result{
			Path:        path,
			TotalLength: PathLength(path, d),
			Details: Details{
				Partial:     true,
				Unreachable: unreachable,
			},
		}, nil
	}

	tour, passes, err := twoOpt(ctx, path, d, opts.TwoOptMaxPasses, opts.Eps)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Path:        tour,
		TotalLength: TourLength(tour, d),
		Iterations:  passes,
		Details:     Details{TwoOptPasses: passes},
	}, nil
}

// nearestPath walks greedily from start. It returns the visited order and,
// when the walk got stuck, the nodes it never reached (ascending).
//
// Complexity: O(n²).
func nearestPath(d DistanceFunc, n, start int) (path, unreachable []int) {
	var (
		visited = make([]bool, n)
		cur     = start
		next    int
		best    float64
		w       float64
		j       int
	)
	path = make([]int, 0, n)
	path = append(path, start)
	visited[start] = true

	for len(path) < n {
		next, best = -1, math.Inf(1)
		for j = 0; j < n; j++ {
			if visited[j] {
				continue
			}
			if w = d(cur, j); w < best {
				next, best = j, w
			}
		}
		if next < 0 {
			break
		}
		path = append(path, next)
		visited[next] = true
		cur = next
	}

	for j = 0; j < n; j++ {
		if !visited[j] {
			unreachable = append(unreachable, j)
		}
	}

	return path, unreachable
}
