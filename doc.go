// Package tourlab plans closed tours over points on a plane that may be
// cluttered with polygonal obstacles, and compares four heuristics for it.
//
// What is in the box?
//
//	• Geometry: point-in-polygon, segment intersection, polygon cleanup
//	• Distance oracle: obstacle-aware costs with a versioned cache
//	• Solvers: nearest-neighbor + 2-opt, TPSMA (Physarum network),
//	  genetic algorithm, Christofides (exact or greedy matching)
//	• Metrics: optimality, speed, smoothness and improvement per solver
//	• Scenarios in JSON or YAML, an HTTP API and a CLI
//
// Layout:
//
//	geometry/   : points, polygons and the predicates over them
//	matrix/     : dense distance matrices and their validators
//	oracle/     : obstacle-aware distance with memoization
//	tsp/        : the seeded RNG, tour utilities and the four solvers
//	metrics/    : comparative metrics over a set of results
//	scenario/   : persisted scenario format (JSON, YAML)
//	planner/    : the Session object, Solve and concurrent Compare
//	cmd/tourlab/ : CLI with solve, compare, validate, algorithms, serve
//
// Quick example, four corners of a square:
//
//	(0,10)───(10,10)
//	  │         │
//	(0,0)────(10,0)
//
//	s := planner.NewSession()
//	for _, p := range corners {
//		s.AddNode(p, "")
//	}
//	res, _ := s.Solve(ctx, tsp.NearestNeighbor, tsp.DefaultOptions())
//	// res.Path = [0 1 2 3], res.TotalLength = 40
//
// Every randomized decision goes through tsp.SeededRandom, so a fixed seed
// reproduces a tour bit for bit.
//
//	go install github.com/katalvlaran/tourlab/cmd/tourlab@latest
package tourlab
