// Package oracle computes obstacle-aware traversal costs between nodes and
// memoizes them per obstacle-geometry version.
//
// Cost model (ObstacleAwareDistance):
//   - no obstacles            → Euclidean distance;
//   - endpoint inside any obstacle → +Inf (the edge is impossible);
//   - segment blocked by ≥1 obstacle → Euclidean × penalty multiplier;
//   - otherwise               → Euclidean distance.
//
// The multiplier is a heuristic, not a shortest path around the polygon.
// PenaltyScaled grows with the obstruction's bounding-box diagonal relative
// to the direct distance, floored at 1.5 and capped at 3. PenaltyFixed is a
// flat 1.5×. With several blocking obstacles the largest multiplier wins.
//
// Oracle is the stateful front: it owns the obstacle set, a version counter
// bumped on every obstacle mutation, and a cache keyed by (i, j, version)
// where i ≤ j are node indices. Resizing the node set drops the whole cache;
// moving a single node drops only that node's row. Oracle is safe for
// concurrent use: lookups take a read lock, stores check the version they
// were computed against before writing.
package oracle
