// Package tsp - TPSMA, a Physarum-inspired flow-network heuristic.
//
// Per seed s (s = 0..Seeds-1, generator NewSeededRandom(Seed+s)):
//  1. D_ij = D_ji = 0.5 + 0.5·Next() for i < j.
//  2. Up to MaxIterations times:
//     a. pressure field P with P_0 = 1, P_{n-1} = 0 (see pressure.go);
//     b. flow Q_ij = D_ij / L_ij · (P_i − P_j);
//     c. D_ij ← clamp(D_ij·f + Dt·|Q_ij|, MinConductance, MaxConductance)
//     with f = Reinforce when |Q_ij| > Epsilon, else Decay;
//     d. stop once the largest |ΔD| stays below Delta for StableIterations
//     consecutive iterations.
//  3. Extract a tour greedily from the two opposite starts s mod n and
//     (s + n/2) mod n, always moving to the unvisited node maximizing
//     D / (1 + L) over finite L; the shorter complete walk stands for the
//     seed.
//
// The best complete tour across seeds wins. Pairs with zero or non-finite
// length are never updated. Convergence and optimality are not guaranteed;
// the method trades both for a physically motivated bias against crossings.
//
// Complexity: O(Seeds·MaxIterations·(Sweeps·n² + n²)) with relaxation.
package tsp

import (
	"context"
	"fmt"
	"math"
)

// errIncompleteExtraction marks a seed set where no extraction visited all
// nodes; the dispatcher answers it with the nearest-neighbor fallback.
var errIncompleteExtraction = fmt.Errorf("tpsma: incomplete extraction: %w", ErrIncompleteGraph)

type tpsmaSolver struct{}

func (tpsmaSolver) Algorithm() Algorithm { return TPSMA }

func (tpsmaSolver) Solve(ctx context.Context, d DistanceFunc, n int, opts Options) (Result, error) {
	t := opts.TPSMA

	var (
		best       Result
		bestLen    = math.Inf(1)
		haveBest   bool
		initialLen float64
		s          int
	)
	for s = 0; s < t.Seeds; s++ {
		seed := opts.Seed + int64(s)
		rng := NewSeededRandom(seed)
		D := initConductance(n, rng)
		if s == 0 {
			initialLen = TourLength(RandomTour(n, rng), d)
		}

		net, err := evolveNetwork(ctx, D, d, n, t)
		if err != nil {
			return Result{}, err
		}

		tour, length, starts := extractTwoWay(D, d, n, s)
		if tour == nil {
			continue
		}
		if haveBest && !(length < bestLen) {
			continue
		}
		haveBest, bestLen = true, length
		best = Result{
			Path:        tour,
			TotalLength: length,
			Iterations:  net.iterations,
			Details: Details{
				Converged:        net.converged,
				Seed:             seed,
				NetworkDensity:   networkDensity(D, n),
				ExtractionStarts: starts,
				PressureSolver:   string(net.solver),
			},
		}
	}

	if !haveBest {
		return Result{}, errIncompleteExtraction
	}

	best.Details.SeedsRun = t.Seeds
	best.InitialLength = &initialLen

	return best, nil
}

// initConductance draws the symmetric starting network.
func initConductance(n int, rng Random) []float64 {
	D := make([]float64, n*n)
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			v := 0.5 + rng.Next()*0.5
			D[i*n+j], D[j*n+i] = v, v
		}
	}
	return D
}

type networkRun struct {
	iterations int
	converged  bool
	solver     PressureSolver
}

// evolveNetwork mutates D in place until convergence or MaxIterations.
func evolveNetwork(ctx context.Context, D []float64, d DistanceFunc, n int, t TPSMAOptions) (networkRun, error) {
	var (
		run       networkRun
		stable    int
		it, i, j  int
		P         []float64
		L, q, nd  float64
		f, change float64
		maxChange float64
	)
	for it = 0; it < t.MaxIterations; it++ {
		if err := ctx.Err(); err != nil {
			return run, fmt.Errorf("tpsma iteration %d: %w: %w", it, ErrCancelled, err)
		}

		P, run.solver = pressureField(D, d, n, t)

		maxChange = 0
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				if L = d(i, j); !usableLength(L) {
					continue
				}
				q = math.Abs(D[i*n+j] / L * (P[i] - P[j]))
				f = t.Decay
				if q > t.Epsilon {
					f = t.Reinforce
				}
				nd = math.Max(t.MinConductance, math.Min(t.MaxConductance, D[i*n+j]*f+t.Dt*q))
				if change = math.Abs(nd - D[i*n+j]); change > maxChange {
					maxChange = change
				}
				D[i*n+j], D[j*n+i] = nd, nd
			}
		}

		if maxChange < t.Delta {
			stable++
			if stable >= t.StableIterations {
				run.converged = true
				it++
				break
			}
		} else {
			stable = 0
		}
	}
	run.iterations = it

	return run, nil
}

// extractTwoWay extracts from s mod n and (s + n/2) mod n and keeps the
// shorter complete tour. starts lists both, the winning one first. A nil
// tour means neither walk reached every node.
func extractTwoWay(D []float64, d DistanceFunc, n, s int) (tour []int, length float64, starts []int) {
	a, b := s%n, (s+n/2)%n
	length = math.Inf(1)
	for _, st := range []int{a, b} {
		cand := extractTour(D, d, n, st)
		if len(cand) < n {
			continue
		}
		if l := TourLength(cand, d); tour == nil || l < length {
			tour, length = cand, l
			starts = []int{st, a + b - st}
		}
	}
	return tour, length, starts
}

// extractTour walks greedily by D / (1 + L). It may return fewer than n
// nodes when every remaining edge is infinite.
//
// Complexity: O(n²).
func extractTour(D []float64, d DistanceFunc, n, start int) []int {
	var (
		visited = make([]bool, n)
		tour    = make([]int, 0, n)
		cur     = start
		next, j int
		score   float64
		best    float64
		L       float64
	)
	tour = append(tour, start)
	visited[start] = true

	for len(tour) < n {
		next, best = -1, math.Inf(-1)
		for j = 0; j < n; j++ {
			if visited[j] {
				continue
			}
			if L = d(cur, j); math.IsInf(L, 1) {
				continue
			}
			if score = D[cur*n+j] / (1 + L); score > best {
				next, best = j, score
			}
		}
		if next < 0 {
			break
		}
		tour = append(tour, next)
		visited[next] = true
		cur = next
	}

	return tour
}

// networkDensity is ΣD_ij over i<j divided by the maximum 2·pairs.
func networkDensity(D []float64, n int) float64 {
	var (
		sum   float64
		pairs int
	)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			sum += D[i*n+j]
			pairs++
		}
	}
	if pairs == 0 {
		return 0
	}
	return sum / (2 * float64(pairs))
}
