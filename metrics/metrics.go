package metrics

import (
	"math"
	"sort"

	"github.com/katalvlaran/tourlab/geometry"
	"github.com/katalvlaran/tourlab/tsp"
)

// TurnThresholdDegrees is the angular band excluded at both ends of [0°, 180°]
// when counting turns.
const TurnThresholdDegrees = 10.0

// Report is a Result augmented with comparative metrics.
type Report struct {
	tsp.Result

	PathOptimalityPercent  float64  `json:"pathOptimalityPercent"`
	ComputationSpeed       float64  `json:"computationSpeed"`
	PathSmoothnessTurns    int      `json:"pathSmoothnessTurns"`
	ImprovementRatePercent *float64 `json:"improvementRatePercent"`
	Rank                   int      `json:"rank"`
}

// Enrich computes metrics for every result. nodes supplies the coordinates
// used for the smoothness count. The returned slice keeps the input order;
// Rank orders complete results by length (1 = shortest), partial ones last.
//
// Complexity: O(k·n + k log k) for k results over n nodes.
func Enrich(results []tsp.Result, nodes []geometry.Point) []Report {
	shortest := Shortest(results)

	out := make([]Report, len(results))
	for i, r := range results {
		rep := Report{
			Result:                 r,
			ComputationSpeed:       Speed(r.TotalLength, r.TimeMs),
			PathSmoothnessTurns:    SmoothnessTurns(r.Path, nodes, TurnThresholdDegrees),
			ImprovementRatePercent: ImprovementRate(r),
		}
		if !r.Details.Partial {
			rep.PathOptimalityPercent = Optimality(shortest, r.TotalLength)
		}
		out[i] = rep
	}

	order := make([]int, len(out))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		ra, rb := out[order[a]], out[order[b]]
		if ra.Details.Partial != rb.Details.Partial {
			return !ra.Details.Partial
		}
		return ra.TotalLength < rb.TotalLength
	})
	for rank, idx := range order {
		out[idx].Rank = rank + 1
	}

	return out
}

// Shortest returns the smallest positive length among complete results,
// or 0 when there is none.
func Shortest(results []tsp.Result) float64 {
	best := math.Inf(1)
	for _, r := range results {
		if r.Details.Partial || r.TotalLength <= 0 || math.IsInf(r.TotalLength, 0) {
			continue
		}
		if r.TotalLength < best {
			best = r.TotalLength
		}
	}
	if math.IsInf(best, 1) {
		return 0
	}
	return best
}

// Optimality returns shortest/length·100, rounded to two decimals.
// A non-positive shortest (nothing to compare against) yields 100.
func Optimality(shortest, length float64) float64 {
	if shortest <= 0 {
		return 100
	}
	if length <= 0 || math.IsInf(length, 0) {
		return 0
	}
	return round2(shortest / length * 100)
}

// Speed returns length per millisecond, rounded; 0 when timeMs ≤ 0.
func Speed(length, timeMs float64) float64 {
	if timeMs <= 0 || math.IsInf(length, 0) {
		return 0
	}
	return round2(length / timeMs)
}

// ImprovementRate returns (initial − final)/initial·100 or nil when the
// result carries no usable initial length.
func ImprovementRate(r tsp.Result) *float64 {
	if r.InitialLength == nil || r.Details.Fallback {
		return nil
	}
	initial := *r.InitialLength
	if math.IsInf(initial, 0) || math.IsNaN(initial) {
		return nil
	}
	v := 0.0
	if initial > 0 {
		v = round2((initial - r.TotalLength) / initial * 100)
	}
	return &v
}

// SmoothnessTurns counts vertices of the closed tour path (closing edge
// included) whose angle between the incoming and outgoing rays lies strictly
// between thresholdDeg and 180−thresholdDeg. Paths shorter than three nodes
// have no turns.
//
// Complexity: O(len(path)).
func SmoothnessTurns(path []int, nodes []geometry.Point, thresholdDeg float64) int {
	if len(path) < 3 {
		return 0
	}
	for _, v := range path {
		if v < 0 || v >= len(nodes) {
			return 0
		}
	}

	var (
		k     = len(path)
		turns int
		deg   float64
	)
	for i := 1; i <= k-1; i++ {
		prev, cur := nodes[path[i-1]], nodes[path[i]]
		next := nodes[path[(i+1)%k]]
		deg = geometry.TurnAngle(prev, cur, next) * 180 / math.Pi
		if deg > thresholdDeg && deg < 180-thresholdDeg {
			turns++
		}
	}

	return turns
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
