// Package tsp builds and improves tours over an obstacle-aware distance
// table. It is the algorithmic core of tourlab: four solvers behind one
// dispatcher, plus the tour utilities they share.
//
// Solvers (see Algorithm):
//
//   - NearestNeighbor - greedy construction from node 0 followed by 2-opt.
//     Deterministic. Unreachable nodes yield a partial path, never an error.
//   - TPSMA - a Physarum-style flow network: conductances between all pairs
//     evolve under a pseudo-pressure field, then a tour is extracted greedily
//     from the strongest tubes. Best of several LCG seeds.
//   - Genetic - generational GA over permutations with elitism, tournament
//     selection, order crossover, swap mutation and a stagnation stop.
//   - Christofides - Prim MST, odd-degree matching, Hierholzer circuit and
//     first-visit shortcut. Exact matching (bitmask DP) is used up to
//     ExactMatchingLimit odd vertices; the 1.5 ratio is reported only then.
//
// Distances:
//
//	Solvers read a square matrix.Matrix with a zero diagonal. +Inf marks an
//	impossible edge (an endpoint inside an obstacle); solvers never select
//	such an edge voluntarily. NaN and negative entries are rejected.
//
// Tours:
//
//	A tour is a permutation of 0..n-1. For n > 2 it is a closed circuit (the
//	closing edge is implicit and counted by TourLength); for n ≤ 2 it is an
//	open path.
//
// Determinism:
//
//	All randomness flows through SeededRandom, the LCG
//	seed = (seed·9301 + 49297) mod 233280. Equal seeds give byte-identical
//	tours. No time-based seeding anywhere.
//
// Failure model:
//
//	Invalid input fails fast with a sentinel from errors.go. Algorithm-internal
//	failures (incomplete TPSMA extraction, non-finite GA tour, Christofides on
//	a disconnected table) fall back to NearestNeighbor and are flagged in
//	Result.Details. Cancellation is cooperative: ctx is checked once per
//	outer iteration or generation.
package tsp
