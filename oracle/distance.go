package oracle

import (
	"math"

	"github.com/katalvlaran/tourlab/geometry"
)

// PenaltyPolicy selects how a blocked segment is priced.
type PenaltyPolicy int

const (
	// PenaltyScaled prices by obstruction size: clamp(1.2 + diag/direct·0.5, 1.5, 3).
	PenaltyScaled PenaltyPolicy = iota
	// PenaltyFixed applies a flat FixedPenalty multiplier.
	PenaltyFixed
)

const (
	// FixedPenalty is the multiplier used by PenaltyFixed and the floor of PenaltyScaled.
	FixedPenalty = 1.5
	// MaxPenalty caps PenaltyScaled.
	MaxPenalty = 3.0

	scaledBase   = 1.2
	scaledFactor = 0.5
)

// String returns the policy name used in configuration files.
func (p PenaltyPolicy) String() string {
	switch p {
	case PenaltyScaled:
		return "scaled"
	case PenaltyFixed:
		return "fixed"
	default:
		return "unknown"
	}
}

// ParsePenaltyPolicy maps "scaled" / "fixed" (or "") to a policy.
func ParsePenaltyPolicy(s string) (PenaltyPolicy, bool) {
	switch s {
	case "", "scaled":
		return PenaltyScaled, true
	case "fixed":
		return PenaltyFixed, true
	default:
		return PenaltyScaled, false
	}
}

// Multiplier returns the penalty factor for a segment of length direct that
// is blocked by an obstacle with bounding-box diagonal diag.
func (p PenaltyPolicy) Multiplier(direct, diag float64) float64 {
	if p == PenaltyFixed || direct <= 0 {
		return FixedPenalty
	}
	m := scaledBase + diag/direct*scaledFactor

	return math.Min(math.Max(FixedPenalty, m), MaxPenalty)
}

// ObstacleAwareDistance returns the traversal cost between p1 and p2.
// The result is symmetric in (p1, p2), ≥ 0, and +Inf when either endpoint
// lies inside an obstacle.
//
// Complexity: O(Σ|obstacle|).
func ObstacleAwareDistance(p1, p2 geometry.Point, obstacles []geometry.Polygon, policy PenaltyPolicy) float64 {
	direct := geometry.Distance(p1, p2)
	if len(obstacles) == 0 {
		return direct
	}
	if geometry.PointInAny(p1, obstacles) || geometry.PointInAny(p2, obstacles) {
		return math.Inf(1)
	}
	if direct == 0 {
		return 0
	}

	var (
		penalty = 1.0
		m       float64
	)
	for _, poly := range obstacles {
		if !geometry.SegmentBlocked(p1, p2, poly) {
			continue
		}
		if m = policy.Multiplier(direct, geometry.Diagonal(poly)); m > penalty {
			penalty = m
		}
	}

	return direct * penalty
}
