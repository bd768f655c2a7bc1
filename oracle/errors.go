package oracle

import "errors"

var (
	// ErrObstacleIndex is returned when an obstacle index is out of range.
	ErrObstacleIndex = errors.New("oracle: obstacle index out of range")

	// ErrNodeIndex is returned when a node index is out of range for the
	// node slice passed in.
	ErrNodeIndex = errors.New("oracle: node index out of range")

	// ErrNoNodes is returned by Matrix for an empty node set.
	ErrNoNodes = errors.New("oracle: no nodes")
)
