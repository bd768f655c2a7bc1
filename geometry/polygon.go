package geometry

import (
	"gonum.org/v1/gonum/spatial/r2"
)

// PointInPolygon is the ray-casting parity test: a horizontal ray from p
// towards +∞ on the x axis is intersected with every edge, and p is inside
// iff the crossing count is odd. Rings with fewer than 3 points contain nothing.
//
// Complexity: O(len(poly)).
func PointInPolygon(p Point, poly Polygon) bool {
	n := len(poly)
	if n < 3 {
		return false
	}

	var (
		inside bool
		i, j   int
		pi, pj Point
	)
	for i, j = 0, n-1; i < n; j, i = i, i+1 {
		pi, pj = poly[i], poly[j]
		if (pi.Y > p.Y) != (pj.Y > p.Y) &&
			p.X < (pj.X-pi.X)*(p.Y-pi.Y)/(pj.Y-pi.Y)+pi.X {
			inside = !inside
		}
	}

	return inside
}

// PointInAny reports whether p lies inside at least one of the polygons.
func PointInAny(p Point, polys []Polygon) bool {
	for _, poly := range polys {
		if PointInPolygon(p, poly) {
			return true
		}
	}
	return false
}

// SegmentBlocked reports whether segment a–b is obstructed by poly: either
// endpoint inside, any edge touched or crossed, or the midpoint inside
// (a cheap proxy for a segment lying wholly in the interior).
//
// Complexity: O(len(poly)).
func SegmentBlocked(a, b Point, poly Polygon) bool {
	if len(poly) < 3 {
		return false
	}
	if PointInPolygon(a, poly) || PointInPolygon(b, poly) {
		return true
	}

	var (
		i      int
		e0, e1 Point
	)
	for i = 0; i < len(poly); i++ {
		e0, e1 = poly.Edge(i)
		if SegmentsIntersect(a, b, e0, e1) {
			return true
		}
	}

	return PointInPolygon(Midpoint(a, b), poly)
}

// BoundingBox returns the axis-aligned bounds of poly.
// An empty ring yields the zero box.
func BoundingBox(poly Polygon) r2.Box {
	if len(poly) == 0 {
		return r2.Box{}
	}
	box := r2.Box{Min: poly[0].Vec(), Max: poly[0].Vec()}
	for _, p := range poly[1:] {
		if p.X < box.Min.X {
			box.Min.X = p.X
		}
		if p.Y < box.Min.Y {
			box.Min.Y = p.Y
		}
		if p.X > box.Max.X {
			box.Max.X = p.X
		}
		if p.Y > box.Max.Y {
			box.Max.Y = p.Y
		}
	}
	return box
}

// Diagonal returns the length of the bounding-box diagonal of poly,
// the obstruction size used by the distance penalty.
func Diagonal(poly Polygon) float64 {
	box := BoundingBox(poly)
	return r2.Norm(r2.Sub(box.Max, box.Min))
}

// ValidatePolygon checks that poly has at least 3 vertices and that every
// coordinate is finite.
func ValidatePolygon(poly Polygon) error {
	if len(poly) < 3 {
		return ErrDegeneratePolygon
	}
	for _, p := range poly {
		if !p.Finite() {
			return ErrNonFinite
		}
	}
	return nil
}

// CleanPolygon returns a copy of poly with near-duplicate vertices merged.
// A vertex closer than minSpacing to any already kept vertex is dropped, and
// a trailing vertex that repeats the first one is removed (the ring closes
// implicitly). minSpacing ≤ 0 selects DefaultMergeDistance.
//
// Returns ErrDegeneratePolygon if fewer than 3 distinct vertices remain.
//
// Complexity: O(n²) in the number of vertices.
func CleanPolygon(poly Polygon, minSpacing float64) (Polygon, error) {
	if err := ValidatePolygon(poly); err != nil {
		return nil, err
	}
	if minSpacing <= 0 {
		minSpacing = DefaultMergeDistance
	}

	cleaned := make(Polygon, 0, len(poly))
	for _, p := range poly {
		dup := false
		for _, q := range cleaned {
			if Distance(p, q) < minSpacing {
				dup = true
				break
			}
		}
		if !dup {
			cleaned = append(cleaned, p)
		}
	}

	if len(cleaned) >= 3 && Distance(cleaned[0], cleaned[len(cleaned)-1]) < minSpacing {
		cleaned = cleaned[:len(cleaned)-1]
	}
	if len(cleaned) < 3 {
		return nil, ErrDegeneratePolygon
	}

	return cleaned, nil
}
