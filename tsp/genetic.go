// Package tsp - generational genetic algorithm over permutations.
//
// Design:
//   - Population of PopulationSize shuffled tours (Fisher–Yates on the LCG).
//   - Each generation: evaluate lengths, update the global best (strict
//     improvement by more than Eps resets stagnation), carry the elite
//     unchanged, fill the rest with OX children of tournament-selected
//     parents, each mutated by a swap with probability MutationRate.
//   - Stop after MaxGenerations or StagnationLimit generations without
//     improvement.
//
// Determinism: every random draw goes through one Random, in a fixed order,
// so equal seeds give identical tours.
//
// Complexity: O(generations·pop·n) plus O(generations·pop·log pop) for
// elite sorting.
package tsp

import (
	"context"
	"fmt"
	"math"
	"sort"
)

type geneticSolver struct{}

func (geneticSolver) Algorithm() Algorithm { return Genetic }

func (geneticSolver) Solve(ctx context.Context, d DistanceFunc, n int, opts Options) (Result, error) {
	var (
		g   = opts.Genetic.resolve(n)
		rng = opts.Rand
	)
	if rng == nil {
		rng = NewSeededRandom(opts.Seed)
	}

	var (
		pop        = make([][]int, g.PopulationSize)
		lengths    = make([]float64, g.PopulationSize)
		order      = make([]int, g.PopulationSize)
		eliteSize  = eliteCount(g.PopulationSize, g.EliteFraction)
		best       []int
		bestLen    = math.Inf(1)
		stagnation int
		gen, i     int
	)
	for i = range pop {
		pop[i] = RandomTour(n, rng)
	}
	initialLen := TourLength(pop[0], d)

	for gen = 0; gen < g.MaxGenerations && stagnation < g.StagnationLimit; gen++ {
		if err := ctx.Err(); err != nil {
			return Result{}, fmt.Errorf("genetic generation %d: %w: %w", gen, ErrCancelled, err)
		}

		for i = range pop {
			lengths[i] = TourLength(pop[i], d)
			order[i] = i
		}
		sort.SliceStable(order, func(a, b int) bool { return lengths[order[a]] < lengths[order[b]] })

		if top := order[0]; best == nil || lengths[top] < bestLen-opts.Eps {
			best = append(best[:0], pop[top]...)
			bestLen = lengths[top]
			stagnation = 0
		} else {
			stagnation++
		}

		next := make([][]int, 0, g.PopulationSize)
		for i = 0; i < eliteSize; i++ {
			next = append(next, append([]int(nil), pop[order[i]]...))
		}
		for len(next) < g.PopulationSize {
			p1 := TournamentSelection(pop, lengths, g.TournamentSize, rng)
			p2 := TournamentSelection(pop, lengths, g.TournamentSize, rng)
			child := OrderCrossover(p1, p2, rng)
			if rng.Next() < g.MutationRate {
				SwapMutation(child, rng)
			}
			next = append(next, child)
		}
		pop = next
	}

	return Result{
		Path:          best,
		TotalLength:   bestLen,
		InitialLength: &initialLen,
		Iterations:    gen,
		Details: Details{
			Seed:           opts.Seed,
			Generations:    gen,
			PopulationSize: g.PopulationSize,
			EliteSize:      eliteSize,
			Stagnation:     stagnation,
			BestFitness:    1 / (1 + bestLen),
		},
	}, nil
}

// eliteCount is floor(pop·fraction), at least one.
func eliteCount(pop int, fraction float64) int {
	e := int(float64(pop) * fraction)
	if e < 1 {
		e = 1
	}
	if e > pop {
		e = pop
	}
	return e
}
