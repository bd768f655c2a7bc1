package tsp

import "strings"

// Algorithm names a solver. The string values are the wire names used by
// scenarios, the HTTP API and the CLI.
type Algorithm string

const (
	NearestNeighbor Algorithm = "nearest-neighbor"
	TPSMA           Algorithm = "tpsma"
	Genetic         Algorithm = "genetic"
	Christofides    Algorithm = "christofides"
)

// ParseAlgorithm resolves a wire name or a common alias ("nn", "bfs", "ga").
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "nearest-neighbor", "nearest", "nn", "bfs":
		return NearestNeighbor, nil
	case "tpsma", "physarum":
		return TPSMA, nil
	case "genetic", "ga":
		return Genetic, nil
	case "christofides":
		return Christofides, nil
	default:
		return "", ErrUnsupportedAlgorithm
	}
}

// Result is the outcome of one solver invocation.
//
// Path is a permutation of 0..n-1 unless Details.Partial is set, in which
// case it lists the reachable prefix and Details.Unreachable the remainder.
// TotalLength counts the closing edge for complete tours with n > 2.
type Result struct {
	Path          []int     `json:"path"`
	TotalLength   float64   `json:"totalLength"`
	Algorithm     Algorithm `json:"algorithm"`
	TimeMs        float64   `json:"timeMs"`
	InitialLength *float64  `json:"initialLength,omitempty"`
	Iterations    int       `json:"iterations"`
	Details       Details   `json:"details"`
}

// Details carries per-algorithm diagnostics. Only the fields relevant to
// the producing solver are populated.
type Details struct {
	// Algorithm is a display label; on fallback it reads
	// "<algorithm> (fallback: nearest-neighbor)".
	Algorithm   string `json:"algorithm,omitempty"`
	Fallback    bool   `json:"fallback,omitempty"`
	Error       string `json:"error,omitempty"`
	Partial     bool   `json:"partial,omitempty"`
	Unreachable []int  `json:"unreachable,omitempty"`

	TwoOptPasses  int  `json:"twoOptPasses,omitempty"`
	ThreeOptMoves int  `json:"threeOptMoves,omitempty"`
	Polished      bool `json:"polished,omitempty"`

	// TPSMA.
	Converged      bool    `json:"converged,omitempty"`
	Seed           int64   `json:"seed,omitempty"`
	SeedsRun       int     `json:"seedsRun,omitempty"`
	NetworkDensity float64 `json:"networkDensity,omitempty"`
	PressureSolver string  `json:"pressureSolver,omitempty"`
	// ExtractionStarts holds the two start nodes tried for the winning
	// seed, the one that produced Path first.
	ExtractionStarts []int `json:"extractionStarts,omitempty"`

	// Genetic.
	Generations    int     `json:"generations,omitempty"`
	PopulationSize int     `json:"populationSize,omitempty"`
	EliteSize      int     `json:"eliteSize,omitempty"`
	Stagnation     int     `json:"stagnation,omitempty"`
	BestFitness    float64 `json:"bestFitness,omitempty"`

	// Christofides.
	MSTEdges           int      `json:"mstEdges,omitempty"`
	OddVertices        int      `json:"oddVertices,omitempty"`
	MatchingEdges      int      `json:"matchingEdges,omitempty"`
	Matching           string   `json:"matching,omitempty"`
	EvenDegree         bool     `json:"evenDegree,omitempty"`
	ApproximationRatio *float64 `json:"approximationRatio,omitempty"`
}

// Complete reports whether r.Path visits every one of n nodes.
func (r Result) Complete(n int) bool {
	return !r.Details.Partial && ValidatePermutation(r.Path, n) == nil
}
