// Package tsp - Christofides construction.
//
// Pipeline:
//  1. Prim MST over the distance table (O(n²)).
//  2. Odd-degree vertices of the tree (always an even count).
//  3. Minimum-weight perfect matching on them: exact DP when the set has at
//     most ExactLimit vertices and Matching is MatchingExact, greedy
//     otherwise (or when the exact matcher finds only infinite matchings).
//  4. Multigraph MST ∪ matching; every degree must now be even.
//  5. Hierholzer circuit from vertex 0, shortcut to first visits.
//
// The 1.5 approximation ratio holds only for metric distances with an
// optimal matching, so Details.ApproximationRatio is set only when the
// exact matcher ran. Obstacle penalties can break the triangle inequality;
// the ratio is then nominal.
//
// Complexity: O(n²) + matching (O(k²·2^k) exact, O(k²) greedy) + O(E·Δ).
package tsp

import (
	"context"
	"fmt"
)

// christofidesRatio is the bound reported for exact matchings.
const christofidesRatio = 1.5

type christofidesSolver struct{}

func (christofidesSolver) Algorithm() Algorithm { return Christofides }

func (christofidesSolver) Solve(ctx context.Context, d DistanceFunc, n int, opts Options) (Result, error) {
	if n < 3 {
		return Result{Path: Identity(n)}, nil
	}
	if err := ctx.Err(); err != nil {
		return Result{}, fmt.Errorf("christofides: %w: %w", ErrCancelled, err)
	}

	tree, err := primMST(d, n)
	if err != nil {
		return Result{}, err
	}
	odd := oddVertices(tree)

	var (
		pairs []pair
		kind  = string(MatchingGreedy)
		exact bool
	)
	c := opts.Christofides
	if c.Matching == MatchingExact && len(odd) <= c.ExactLimit {
		pairs, exact = exactMatching(odd, d)
	}
	if exact {
		kind = string(MatchingExact)
	} else {
		pairs = greedyMatching(odd, d)
	}

	multi := make([][]int, n)
	for v := range tree {
		multi[v] = append([]int(nil), tree[v]...)
	}
	for _, p := range pairs {
		multi[p.u] = append(multi[p.u], p.v)
		multi[p.v] = append(multi[p.v], p.u)
	}
	if !allEven(multi) {
		return Result{}, ErrOddDegree
	}

	if err = ctx.Err(); err != nil {
		return Result{}, fmt.Errorf("christofides: %w: %w", ErrCancelled, err)
	}
	tour := shortcut(eulerianCircuit(multi, 0), n)

	res := Result{
		Path:        tour,
		TotalLength: TourLength(tour, d),
		Details: Details{
			MSTEdges:      edgeCount(tree),
			OddVertices:   len(odd),
			MatchingEdges: len(pairs),
			Matching:      kind,
			EvenDegree:    true,
		},
	}
	if exact {
		ratio := christofidesRatio
		res.Details.ApproximationRatio = &ratio
	}

	return res, nil
}
