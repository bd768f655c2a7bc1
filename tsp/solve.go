// Package tsp - unified dispatcher.
//
// SolveWithMatrix is the single entry point used by the planner, the HTTP
// API and the CLI. It owns everything the individual solvers do not:
//
//   - validation of options and of the distance table;
//   - trivial sizes (n = 1 → [0]; n = 2 → [0 1], open path);
//   - wall-clock timing (TimeMs);
//   - the nearest-neighbor fallback for algorithm-internal failures and
//     for tours whose length is not finite;
//   - the optional 2-opt polish;
//   - cost stabilization (1e-9 rounding).
//
// Only invalid input and cancellation surface as errors; every other failure
// mode degrades to a flagged fallback or partial result.
package tsp

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/tourlab/matrix"
)

// fallbackSuffix is appended to Details.Algorithm on fallback.
const fallbackSuffix = " (fallback: nearest-neighbor)"

// SolveWithMatrix validates inputs, runs algo over dist and returns a Result.
//
// Errors: ErrNoNodes, ErrNonSquare, ErrBadDistance, ErrInvalidOptions,
// ErrUnsupportedAlgorithm, ErrCancelled.
func SolveWithMatrix(ctx context.Context, algo Algorithm, dist matrix.Matrix, opts Options) (Result, error) {
	if err := opts.Validate(); err != nil {
		return Result{}, err
	}
	solver, err := Lookup(algo)
	if err != nil {
		return Result{}, fmt.Errorf("%q: %w", algo, err)
	}
	t, err := newTable(dist)
	if err != nil {
		return Result{}, err
	}

	opts = opts.withDefaults()
	began := time.Now()

	res, err := run(ctx, solver, t.at, t.n, opts)
	if err != nil {
		return Result{}, err
	}

	res.Algorithm = algo
	if res.Details.Algorithm == "" {
		res.Details.Algorithm = string(algo)
	}
	res.TotalLength = round1e9(res.TotalLength)
	if res.InitialLength != nil {
		if v := *res.InitialLength; math.IsInf(v, 0) || math.IsNaN(v) {
			// a random start tour over an unreachable edge has no usable length
			res.InitialLength = nil
		} else {
			v = round1e9(v)
			res.InitialLength = &v
		}
	}
	res.TimeMs = float64(time.Since(began).Microseconds()) / 1000

	return res, nil
}

// run handles trivial sizes, fallback and polish around solver.Solve.
func run(ctx context.Context, solver Solver, d DistanceFunc, n int, opts Options) (Result, error) {
	if n <= 2 {
		return trivial(d, n), nil
	}

	res, err := solver.Solve(ctx, d, n, opts)
	switch {
	case errors.Is(err, ErrCancelled):
		return Result{}, err
	case err != nil:
		return fallback(ctx, solver.Algorithm(), d, n, opts, err.Error())
	case solver.Algorithm() != NearestNeighbor && !res.Complete(n):
		return fallback(ctx, solver.Algorithm(), d, n, opts, "incomplete tour")
	case math.IsInf(res.TotalLength, 0) || math.IsNaN(res.TotalLength):
		if solver.Algorithm() == NearestNeighbor {
			// a complete NN tour can still close over an infinite edge
			res.Details.Error = "tour closes over an unreachable edge"
			res.TotalLength = PathLength(res.Path, d)
			res.Details.Partial = true
			return res, nil
		}
		return fallback(ctx, solver.Algorithm(), d, n, opts, "tour length is not finite")
	}

	if opts.PolishTwoOpt && solver.Algorithm() != NearestNeighbor {
		tour, passes, perr := twoOpt(ctx, res.Path, d, opts.TwoOptMaxPasses, opts.Eps)
		if perr != nil {
			return Result{}, perr
		}
		res.Path = tour
		res.TotalLength = TourLength(tour, d)
		res.Details.TwoOptPasses = passes
		res.Details.Polished = true
	}
	if opts.PolishThreeOpt && res.Complete(n) {
		tour, moves, perr := threeOpt(ctx, res.Path, d, opts.TwoOptMaxPasses, opts.Eps)
		if perr != nil {
			return Result{}, perr
		}
		res.Path = tour
		res.TotalLength = TourLength(tour, d)
		res.Details.ThreeOptMoves = moves
		res.Details.Polished = true
	}

	return res, nil
}

// trivial answers n ≤ 2 without running a solver. An infinite edge between
// two nodes leaves the second one unreachable.
func trivial(d DistanceFunc, n int) Result {
	if n == 1 {
		return Result{Path: []int{0}}
	}
	w := d(0, 1)
	if math.IsInf(w, 1) {
		return Result{
			Path:    []int{0},
			Details: Details{Partial: true, Unreachable: []int{1}},
		}
	}
	return Result{Path: []int{0, 1}, TotalLength: w}
}

// fallback reruns the instance with nearest-neighbor and labels the result.
func fallback(ctx context.Context, from Algorithm, d DistanceFunc, n int, opts Options, reason string) (Result, error) {
	res, err := nearestSolver{}.Solve(ctx, d, n, opts)
	if err != nil {
		return Result{}, err
	}
	if math.IsInf(res.TotalLength, 0) {
		res.TotalLength = PathLength(res.Path, d)
		res.Details.Partial = true
	}
	res.Details.Algorithm = string(from) + fallbackSuffix
	res.Details.Fallback = true
	res.Details.Error = reason
	return res, nil
}
