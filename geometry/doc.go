// Package geometry provides the planar primitives used by obstacle-aware
// tour construction: points, polygon obstacles, orientation tests,
// segment intersection, ray-casting containment and polygon cleanup.
//
// All functions are pure: no state, no logging, no panics on user input.
// Vector arithmetic is delegated to gonum's spatial/r2 package; this package
// adds the tolerance policy and the obstacle-specific predicates on top.
//
// Numeric policy:
//   - Orientation values within Epsilon (1e-10) of zero are treated as collinear.
//   - Touching counts as intersecting. For obstacle avoidance a false positive
//     costs a penalty, a false negative lets a tour cut through a wall.
//
// Polygon rings are implicit: the closing edge runs from the last vertex back
// to the first. Overlapping polygons are allowed; callers treat them additively.
package geometry
