package tsp

import "errors"

// Sentinel errors. Callers match with errors.Is; the dispatcher may add
// context with %w but never replaces the sentinel.
var (
	// ErrNoNodes is returned for an empty node set (n == 0).
	ErrNoNodes = errors.New("tsp: no nodes")

	// ErrNonSquare indicates a non-square distance matrix.
	ErrNonSquare = errors.New("tsp: distance matrix must be square")

	// ErrBadDistance indicates a NaN, negative or non-zero-diagonal entry.
	ErrBadDistance = errors.New("tsp: invalid distance entry")

	// ErrIncompleteGraph indicates that +Inf edges prevent a spanning structure.
	ErrIncompleteGraph = errors.New("tsp: incomplete distance matrix")

	// ErrInvalidTour indicates a tour that is not a permutation of 0..n-1.
	ErrInvalidTour = errors.New("tsp: tour is not a permutation")

	// ErrUnsupportedAlgorithm indicates an unknown Algorithm value.
	ErrUnsupportedAlgorithm = errors.New("tsp: unsupported algorithm")

	// ErrInvalidOptions indicates out-of-range option values.
	ErrInvalidOptions = errors.New("tsp: invalid options")

	// ErrOddDegree indicates a Christofides multigraph with an odd-degree vertex.
	ErrOddDegree = errors.New("tsp: multigraph has odd-degree vertex")

	// ErrCancelled wraps ctx.Err() when a solver observes cancellation.
	ErrCancelled = errors.New("tsp: cancelled")
)
