package geometry

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

const (
	// Epsilon is the tolerance applied to orientation (cross product) values.
	Epsilon = 1e-10

	// DefaultMergeDistance is the spacing below which two polygon vertices
	// are considered the same point during cleanup.
	DefaultMergeDistance = 2.0
)

// Point is a position on the plane. Coordinates are mutable (nodes can be
// dragged); identity is positional in whatever slice holds the point.
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Pt is a shorthand constructor for Point.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Vec converts p into a gonum r2 vector.
func (p Point) Vec() r2.Vec { return r2.Vec{X: p.X, Y: p.Y} }

// FromVec converts a gonum r2 vector into a Point.
func FromVec(v r2.Vec) Point { return Point{X: v.X, Y: v.Y} }

// Finite reports whether both coordinates are finite numbers.
func (p Point) Finite() bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

// Midpoint returns the point halfway between p and q.
func Midpoint(p, q Point) Point {
	return FromVec(r2.Scale(0.5, r2.Add(p.Vec(), q.Vec())))
}

// Distance returns the Euclidean distance between p and q.
func Distance(p, q Point) float64 {
	return r2.Norm(r2.Sub(q.Vec(), p.Vec()))
}

// Polygon is an ordered ring of vertices. The closing edge from the last
// vertex to the first is implicit. A usable obstacle has ≥3 distinct points.
type Polygon []Point

// Len returns the number of vertices.
func (p Polygon) Len() int { return len(p) }

// Degenerate reports whether the ring has fewer than three vertices.
func (p Polygon) Degenerate() bool { return len(p) < 3 }

// Edge returns the i-th edge (p[i], p[i+1 mod n]).
func (p Polygon) Edge(i int) (Point, Point) {
	n := len(p)
	return p[i%n], p[(i+1)%n]
}

// Clone returns an independent copy of the ring.
func (p Polygon) Clone() Polygon {
	if p == nil {
		return nil
	}
	out := make(Polygon, len(p))
	copy(out, p)
	return out
}
