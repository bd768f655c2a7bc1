package tsp

import (
	"context"
	"sort"
	"sync"
)

// Solver is the capability every algorithm implements. Solve receives a
// validated table with n ≥ 3 and options with defaults applied; trivial
// sizes, timing, fallback and polishing are handled by SolveWithMatrix.
type Solver interface {
	Algorithm() Algorithm
	Solve(ctx context.Context, d DistanceFunc, n int, opts Options) (Result, error)
}

var (
	registryMu sync.RWMutex
	registry   = map[Algorithm]Solver{
		NearestNeighbor: nearestSolver{},
		TPSMA:           tpsmaSolver{},
		Genetic:         geneticSolver{},
		Christofides:    christofidesSolver{},
	}
)

// Register adds or replaces the solver for s.Algorithm().
func Register(s Solver) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[s.Algorithm()] = s
}

// Lookup returns the solver registered for a, or ErrUnsupportedAlgorithm.
func Lookup(a Algorithm) (Solver, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	s, ok := registry[a]
	if !ok {
		return nil, ErrUnsupportedAlgorithm
	}
	return s, nil
}

// Algorithms lists registered algorithms in lexical order.
func Algorithms() []Algorithm {
	registryMu.RLock()
	defer registryMu.RUnlock()
	out := make([]Algorithm, 0, len(registry))
	for a := range registry {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
