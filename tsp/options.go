// Package tsp - solver configuration.
//
// Options follows a "zero means default" policy: DefaultOptions returns a
// fully populated value, and any numeric field left at zero is resolved at
// solve time (several GA defaults depend on n). Validate rejects values that
// are set but out of range.
package tsp

import (
	"fmt"
	"math"
)

// PressureSolver selects how TPSMA computes the pressure field.
type PressureSolver string

const (
	// PressureRelaxation runs damped Jacobi sweeps (default).
	PressureRelaxation PressureSolver = "relaxation"
	// PressureDirect solves the Dirichlet system with a dense LU factorization.
	PressureDirect PressureSolver = "direct"
)

// MatchingAlgo selects the odd-vertex matching used by Christofides.
type MatchingAlgo string

const (
	// MatchingExact computes a minimum-weight perfect matching by bitmask DP
	// when the odd set is small enough, greedy otherwise.
	MatchingExact MatchingAlgo = "exact"
	// MatchingGreedy pairs each vertex with its nearest unmatched partner.
	MatchingGreedy MatchingAlgo = "greedy"
)

// Defaults (single source of truth).
const (
	DefaultEps             = 1e-9
	DefaultTwoOptMaxPasses = 1000

	DefaultTPSMAEpsilon          = 0.01
	DefaultTPSMADt               = 0.05
	DefaultTPSMADelta            = 0.001
	DefaultTPSMAMaxIterations    = 500
	DefaultTPSMASeeds            = 3
	DefaultTPSMAStableIterations = 20
	DefaultTPSMASweeps           = 50
	DefaultTPSMADamping          = 0.7
	DefaultTPSMADecay            = 0.95
	DefaultTPSMAReinforce        = 1.1
	DefaultTPSMAMinConductance   = 0.01
	DefaultTPSMAMaxConductance   = 2.0

	DefaultMutationRate    = 0.05
	DefaultEliteFraction   = 0.1
	DefaultTournamentSize  = 5
	DefaultStagnationLimit = 50
	MinPopulationSize      = 50
	PopulationPerNode      = 3
	GenerationsPerNode     = 20
	MaxGenerationsCap      = 1000

	// ExactMatchingLimit bounds the odd set handled by the exact matcher;
	// the DP table has 2^k entries.
	ExactMatchingLimit = 18
)

// TPSMAOptions configures the flow-network solver.
type TPSMAOptions struct {
	Epsilon          float64        `json:"epsilon,omitempty" yaml:"epsilon,omitempty"`
	Dt               float64        `json:"dt,omitempty" yaml:"dt,omitempty"`
	Delta            float64        `json:"delta,omitempty" yaml:"delta,omitempty"`
	MaxIterations    int            `json:"maxIterations,omitempty" yaml:"maxIterations,omitempty"`
	Seeds            int            `json:"seeds,omitempty" yaml:"seeds,omitempty"`
	StableIterations int            `json:"stableIterations,omitempty" yaml:"stableIterations,omitempty"`
	Sweeps           int            `json:"sweeps,omitempty" yaml:"sweeps,omitempty"`
	Damping          float64        `json:"damping,omitempty" yaml:"damping,omitempty"`
	Decay            float64        `json:"decay,omitempty" yaml:"decay,omitempty"`
	Reinforce        float64        `json:"reinforce,omitempty" yaml:"reinforce,omitempty"`
	MinConductance   float64        `json:"minConductance,omitempty" yaml:"minConductance,omitempty"`
	MaxConductance   float64        `json:"maxConductance,omitempty" yaml:"maxConductance,omitempty"`
	Pressure         PressureSolver `json:"pressure,omitempty" yaml:"pressure,omitempty"`
}

// GeneticOptions configures the GA. Zero PopulationSize / MaxGenerations
// resolve to max(50, 3n) / min(1000, 20n).
type GeneticOptions struct {
	PopulationSize  int     `json:"populationSize,omitempty" yaml:"populationSize,omitempty"`
	MaxGenerations  int     `json:"maxGenerations,omitempty" yaml:"maxGenerations,omitempty"`
	MutationRate    float64 `json:"mutationRate,omitempty" yaml:"mutationRate,omitempty"`
	EliteFraction   float64 `json:"eliteFraction,omitempty" yaml:"eliteFraction,omitempty"`
	TournamentSize  int     `json:"tournamentSize,omitempty" yaml:"tournamentSize,omitempty"`
	StagnationLimit int     `json:"stagnationLimit,omitempty" yaml:"stagnationLimit,omitempty"`
}

// ChristofidesOptions configures the matching step.
type ChristofidesOptions struct {
	Matching   MatchingAlgo `json:"matching,omitempty" yaml:"matching,omitempty"`
	ExactLimit int          `json:"exactLimit,omitempty" yaml:"exactLimit,omitempty"`
}

// Options configures every solver. Unused sections are ignored by the
// solvers that do not need them.
type Options struct {
	// Seed drives GA and TPSMA (TPSMA seed s uses Seed+s). 0 selects DefaultSeed.
	Seed int64 `json:"seed,omitempty" yaml:"seed,omitempty"`

	// StartVertex is where nearest-neighbor construction begins.
	StartVertex int `json:"startVertex,omitempty" yaml:"startVertex,omitempty"`

	// Eps is the strict-improvement threshold for 2-opt and GA stagnation.
	Eps float64 `json:"eps,omitempty" yaml:"eps,omitempty"`

	// TwoOptMaxPasses caps full 2-opt scans and accepted 3-opt moves.
	TwoOptMaxPasses int `json:"twoOptMaxPasses,omitempty" yaml:"twoOptMaxPasses,omitempty"`

	// PolishTwoOpt runs 2-opt on TPSMA, GA and Christofides tours too.
	PolishTwoOpt bool `json:"polishTwoOpt,omitempty" yaml:"polishTwoOpt,omitempty"`

	// PolishThreeOpt finishes every complete tour with 3-opt, after the
	// 2-opt polish when both are set.
	PolishThreeOpt bool `json:"polishThreeOpt,omitempty" yaml:"polishThreeOpt,omitempty"`

	TPSMA        TPSMAOptions        `json:"tpsma,omitempty" yaml:"tpsma,omitempty"`
	Genetic      GeneticOptions      `json:"genetic,omitempty" yaml:"genetic,omitempty"`
	Christofides ChristofidesOptions `json:"christofides,omitempty" yaml:"christofides,omitempty"`

	// Rand overrides the GA generator (seeded from Seed when nil).
	Rand Random `json:"-" yaml:"-"`
}

// DefaultOptions returns the documented defaults. GA sizes stay zero and
// resolve against n when a solve starts.
func DefaultOptions() Options {
	return Options{
		Seed:            DefaultSeed,
		Eps:             DefaultEps,
		TwoOptMaxPasses: DefaultTwoOptMaxPasses,
		TPSMA: TPSMAOptions{
			Epsilon:          DefaultTPSMAEpsilon,
			Dt:               DefaultTPSMADt,
			Delta:            DefaultTPSMADelta,
			MaxIterations:    DefaultTPSMAMaxIterations,
			Seeds:            DefaultTPSMASeeds,
			StableIterations: DefaultTPSMAStableIterations,
			Sweeps:           DefaultTPSMASweeps,
			Damping:          DefaultTPSMADamping,
			Decay:            DefaultTPSMADecay,
			Reinforce:        DefaultTPSMAReinforce,
			MinConductance:   DefaultTPSMAMinConductance,
			MaxConductance:   DefaultTPSMAMaxConductance,
			Pressure:         PressureRelaxation,
		},
		Genetic: GeneticOptions{
			MutationRate:    DefaultMutationRate,
			EliteFraction:   DefaultEliteFraction,
			TournamentSize:  DefaultTournamentSize,
			StagnationLimit: DefaultStagnationLimit,
		},
		Christofides: ChristofidesOptions{
			Matching:   MatchingExact,
			ExactLimit: ExactMatchingLimit,
		},
	}
}

func invalid(field string, v any) error {
	return fmt.Errorf("%s=%v: %w", field, v, ErrInvalidOptions)
}

func badFloat(v float64) bool { return math.IsNaN(v) || math.IsInf(v, 0) || v < 0 }

// Validate rejects negative or non-finite values and unknown enum names.
// Zero values are always accepted (they mean "default").
func (o Options) Validate() error {
	switch {
	case o.StartVertex < 0:
		return invalid("startVertex", o.StartVertex)
	case badFloat(o.Eps):
		return invalid("eps", o.Eps)
	case o.TwoOptMaxPasses < 0:
		return invalid("twoOptMaxPasses", o.TwoOptMaxPasses)
	}

	t := o.TPSMA
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"tpsma.epsilon", t.Epsilon}, {"tpsma.dt", t.Dt}, {"tpsma.delta", t.Delta},
		{"tpsma.decay", t.Decay}, {"tpsma.reinforce", t.Reinforce},
		{"tpsma.minConductance", t.MinConductance}, {"tpsma.maxConductance", t.MaxConductance},
	} {
		if badFloat(f.v) {
			return invalid(f.name, f.v)
		}
	}
	switch {
	case t.MaxIterations < 0 || t.Seeds < 0 || t.StableIterations < 0 || t.Sweeps < 0:
		return invalid("tpsma.iterations", t)
	case badFloat(t.Damping) || t.Damping > 1:
		return invalid("tpsma.damping", t.Damping)
	case t.MaxConductance != 0 && t.MinConductance > t.MaxConductance:
		return invalid("tpsma.minConductance", t.MinConductance)
	case t.Pressure != "" && t.Pressure != PressureRelaxation && t.Pressure != PressureDirect:
		return invalid("tpsma.pressure", t.Pressure)
	}

	g := o.Genetic
	switch {
	case g.PopulationSize < 0:
		return invalid("genetic.populationSize", g.PopulationSize)
	case g.MaxGenerations < 0:
		return invalid("genetic.maxGenerations", g.MaxGenerations)
	case badFloat(g.MutationRate) || g.MutationRate > 1:
		return invalid("genetic.mutationRate", g.MutationRate)
	case badFloat(g.EliteFraction) || g.EliteFraction >= 1:
		return invalid("genetic.eliteFraction", g.EliteFraction)
	case g.TournamentSize < 0:
		return invalid("genetic.tournamentSize", g.TournamentSize)
	case g.StagnationLimit < 0:
		return invalid("genetic.stagnationLimit", g.StagnationLimit)
	}

	c := o.Christofides
	switch {
	case c.Matching != "" && c.Matching != MatchingExact && c.Matching != MatchingGreedy:
		return invalid("christofides.matching", c.Matching)
	case c.ExactLimit < 0 || c.ExactLimit > 24:
		return invalid("christofides.exactLimit", c.ExactLimit)
	}

	return nil
}

// withDefaults fills zero fields from DefaultOptions. GA sizes are left
// for GeneticOptions.resolve.
func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Seed == 0 {
		o.Seed = d.Seed
	}
	if o.Eps == 0 {
		o.Eps = d.Eps
	}
	if o.TwoOptMaxPasses == 0 {
		o.TwoOptMaxPasses = d.TwoOptMaxPasses
	}

	t, dt := &o.TPSMA, d.TPSMA
	setF(&t.Epsilon, dt.Epsilon)
	setF(&t.Dt, dt.Dt)
	setF(&t.Delta, dt.Delta)
	setI(&t.MaxIterations, dt.MaxIterations)
	setI(&t.Seeds, dt.Seeds)
	setI(&t.StableIterations, dt.StableIterations)
	setI(&t.Sweeps, dt.Sweeps)
	setF(&t.Damping, dt.Damping)
	setF(&t.Decay, dt.Decay)
	setF(&t.Reinforce, dt.Reinforce)
	setF(&t.MinConductance, dt.MinConductance)
	setF(&t.MaxConductance, dt.MaxConductance)
	if t.Pressure == "" {
		t.Pressure = dt.Pressure
	}

	g, dg := &o.Genetic, d.Genetic
	setF(&g.MutationRate, dg.MutationRate)
	setF(&g.EliteFraction, dg.EliteFraction)
	setI(&g.TournamentSize, dg.TournamentSize)
	setI(&g.StagnationLimit, dg.StagnationLimit)

	c, dc := &o.Christofides, d.Christofides
	if c.Matching == "" {
		c.Matching = dc.Matching
	}
	setI(&c.ExactLimit, dc.ExactLimit)

	return o
}

// resolve turns size-dependent zero values into concrete ones.
func (g GeneticOptions) resolve(n int) GeneticOptions {
	if g.PopulationSize == 0 {
		g.PopulationSize = max(MinPopulationSize, PopulationPerNode*n)
	}
	if g.MaxGenerations == 0 {
		g.MaxGenerations = min(MaxGenerationsCap, GenerationsPerNode*n)
	}
	return g
}

func setF(dst *float64, def float64) {
	if *dst == 0 {
		*dst = def
	}
}

func setI(dst *int, def int) {
	if *dst == 0 {
		*dst = def
	}
}
