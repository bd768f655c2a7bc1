package geometry

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Direction returns the cross product (c−a) × (b−a).
// The sign gives the turn direction of c relative to the directed line a→b;
// a magnitude within Epsilon means the three points are collinear.
//
// Complexity: O(1).
func Direction(a, b, c Point) float64 {
	return r2.Cross(r2.Sub(c.Vec(), a.Vec()), r2.Sub(b.Vec(), a.Vec()))
}

// PointOnSegment reports whether q lies within the bounding box of segment
// p–r (expanded by Epsilon). Callers use it only after establishing that
// the three points are collinear.
func PointOnSegment(p, q, r Point) bool {
	return q.X <= math.Max(p.X, r.X)+Epsilon && q.X >= math.Min(p.X, r.X)-Epsilon &&
		q.Y <= math.Max(p.Y, r.Y)+Epsilon && q.Y >= math.Min(p.Y, r.Y)-Epsilon
}

// SegmentsIntersect reports whether segment a–b intersects segment c–d.
//
// Proper crossings are detected by opposite-sign orientation pairs. Collinear
// or touching configurations fall back to PointOnSegment, so shared endpoints
// and overlapping collinear segments count as intersecting.
//
// Complexity: O(1).
func SegmentsIntersect(a, b, c, d Point) bool {
	var (
		d1 = Direction(c, d, a)
		d2 = Direction(c, d, b)
		d3 = Direction(a, b, c)
		d4 = Direction(a, b, d)
	)

	if ((d1 > Epsilon && d2 < -Epsilon) || (d1 < -Epsilon && d2 > Epsilon)) &&
		((d3 > Epsilon && d4 < -Epsilon) || (d3 < -Epsilon && d4 > Epsilon)) {
		return true
	}

	switch {
	case math.Abs(d1) <= Epsilon && PointOnSegment(c, a, d):
		return true
	case math.Abs(d2) <= Epsilon && PointOnSegment(c, b, d):
		return true
	case math.Abs(d3) <= Epsilon && PointOnSegment(a, c, b):
		return true
	case math.Abs(d4) <= Epsilon && PointOnSegment(a, d, b):
		return true
	}

	return false
}

// TurnAngle returns the angle in radians at vertex b between rays b→a and
// b→c, in [0, π]. Zero-length rays yield 0 (no measurable turn).
func TurnAngle(a, b, c Point) float64 {
	var (
		v1 = r2.Sub(a.Vec(), b.Vec())
		v2 = r2.Sub(c.Vec(), b.Vec())
		m1 = r2.Norm(v1)
		m2 = r2.Norm(v2)
	)
	if m1 == 0 || m2 == 0 {
		return 0
	}
	cos := r2.Dot(v1, v2) / (m1 * m2)
	// clamp rounding overshoot before Acos
	cos = math.Max(-1, math.Min(1, cos))

	return math.Acos(cos)
}
