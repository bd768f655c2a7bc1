package tsp

// Internal hooks for the black-box tests in package tsp_test.

type Pair = pair

func (p pair) Ends() (int, int) { return p.u, p.v }

// MatchingWeight sums d over the pairs.
func MatchingWeight(ps []pair, d DistanceFunc) float64 {
	var w float64
	for _, p := range ps {
		w += d(p.u, p.v)
	}
	return w
}

var (
	PrimMST             = primMST
	OddVertices         = oddVertices
	ExactMatching       = exactMatching
	GreedyMatching      = greedyMatching
	EulerianCircuit     = eulerianCircuit
	Shortcut            = shortcut
	AllEven             = allEven
	SolvePressureRelax  = pressureRelax
	SolvePressureDirect = pressureDirect
	NetworkDensity      = networkDensity
	ExtractTour         = extractTour
	ExtractTwoWay       = extractTwoWay
)
