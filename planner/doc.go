// Package planner is the stateful front of tourlab.
//
// A Session owns an ordered node set (index = identity) and an
// oracle.Oracle holding the obstacles and the distance cache. Edits keep
// the cache honest: moving a node drops only its cached pairs, removing a
// node shifts higher indices down and drops the whole cache, and any
// obstacle edit bumps the geometry version.
//
// Solving always works on a snapshot: the node slice is copied and the
// distance matrix built once, so edits made while a solver runs affect only
// later calls.
//
//	s := planner.NewSession(planner.WithLogger(logger))
//	s.AddNode(geometry.Pt(0, 0), "depot")
//	...
//	res, err := s.Solve(ctx, tsp.Christofides, tsp.DefaultOptions())
//	reports, err := s.Compare(ctx, tsp.DefaultOptions())
//
// Compare runs the requested solvers concurrently on a bounded
// github.com/alitto/pond worker pool and ranks the results with the metrics
// package. Solve and SolveRequest are the stateless request/response entry
// points used by the HTTP adapter.
package planner
