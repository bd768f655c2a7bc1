package geometry

import "errors"

var (
	// ErrDegeneratePolygon is returned when a polygon has fewer than three
	// distinct vertices (before or after cleanup).
	ErrDegeneratePolygon = errors.New("geometry: polygon needs at least 3 distinct points")

	// ErrNonFinite is returned when a coordinate is NaN or ±Inf.
	ErrNonFinite = errors.New("geometry: non-finite coordinate")
)
