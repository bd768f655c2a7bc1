package planner

import (
	"context"
	"fmt"
	"time"

	"github.com/alitto/pond"

	"github.com/katalvlaran/tourlab/geometry"
	"github.com/katalvlaran/tourlab/metrics"
	"github.com/katalvlaran/tourlab/oracle"
	"github.com/katalvlaran/tourlab/tsp"
)

// Request is a stateless solve request: a node set, an obstacle set, an
// algorithm and optional parameters. Zero-valued parameters mean defaults.
type Request struct {
	Nodes     []geometry.Point   `json:"nodes"`
	Obstacles []geometry.Polygon `json:"obstacles"`
	Algorithm tsp.Algorithm      `json:"algorithm"`
	Params    tsp.Options        `json:"params"`

	// Penalty names the obstacle penalty policy; empty means "scaled".
	Penalty string `json:"penalty,omitempty"`
}

// CompareRequest is Request with a set of algorithms; an empty set means
// every registered solver.
type CompareRequest struct {
	Nodes      []geometry.Point   `json:"nodes"`
	Obstacles  []geometry.Polygon `json:"obstacles"`
	Algorithms []tsp.Algorithm    `json:"algorithms"`
	Params     tsp.Options        `json:"params"`
	Penalty    string             `json:"penalty,omitempty"`
}

// Response is the solve response: path, totalLength, algorithm, timeMs and
// details, plus the node labels in index order.
type Response struct {
	tsp.Result
	Labels []string `json:"labels,omitempty"`
}

// CompareResponse carries one ranked report per algorithm, in request order.
type CompareResponse struct {
	Reports []metrics.Report `json:"reports"`
}

// Solve runs one request in a throwaway session.
func Solve(ctx context.Context, req Request, opts ...Option) (Response, error) {
	s, err := sessionFor(req.Nodes, req.Obstacles, req.Penalty, opts)
	if err != nil {
		return Response{}, err
	}
	algo := req.Algorithm
	if algo == "" {
		algo = tsp.NearestNeighbor
	}
	res, err := s.Solve(ctx, algo, req.Params)
	if err != nil {
		return Response{}, err
	}
	return Response{Result: res, Labels: s.Labels()}, nil
}

// CompareAll runs a compare request in a throwaway session.
func CompareAll(ctx context.Context, req CompareRequest, opts ...Option) (CompareResponse, error) {
	s, err := sessionFor(req.Nodes, req.Obstacles, req.Penalty, opts)
	if err != nil {
		return CompareResponse{}, err
	}
	reports, err := s.Compare(ctx, req.Params, req.Algorithms...)
	if err != nil {
		return CompareResponse{}, err
	}
	return CompareResponse{Reports: reports}, nil
}

func sessionFor(nodes []geometry.Point, obstacles []geometry.Polygon, penalty string, opts []Option) (*Session, error) {
	if penalty != "" {
		pol, ok := oracle.ParsePenaltyPolicy(penalty)
		if !ok {
			return nil, fmt.Errorf("penalty %q: %w", penalty, tsp.ErrInvalidOptions)
		}
		opts = append([]Option{WithOracleOptions(oracle.WithPenalty(pol))}, opts...)
	}
	s := NewSession(opts...)
	for i, p := range nodes {
		if _, err := s.AddNode(p, ""); err != nil {
			return nil, fmt.Errorf("nodes[%d]: %w", i, err)
		}
	}
	for i, poly := range obstacles {
		if _, err := s.AddObstacle(poly); err != nil {
			return nil, fmt.Errorf("obstacles[%d]: %w", i, err)
		}
	}
	return s, nil
}

// Solve runs algo over a snapshot of the session.
//
// Errors: tsp.ErrNoNodes for an empty session, plus everything
// tsp.SolveWithMatrix returns.
func (s *Session) Solve(ctx context.Context, algo tsp.Algorithm, opts tsp.Options) (tsp.Result, error) {
	resolved, err := tsp.ParseAlgorithm(string(algo))
	if err != nil {
		return tsp.Result{}, fmt.Errorf("%q: %w", algo, err)
	}
	algo = resolved

	began := time.Now()
	_, m, err := s.snapshot()
	if err != nil {
		return tsp.Result{}, err
	}
	s.logger.Debug("distance matrix ready",
		"nodes", m.Rows(),
		"elapsed_ms", msSince(began),
		"cache", s.oracle.Stats(),
	)

	res, err := tsp.SolveWithMatrix(ctx, algo, m, opts)
	if err != nil {
		s.logger.Warn("solve failed", "algorithm", algo, "error", err)
		return tsp.Result{}, err
	}
	s.logResult(res, m.Rows())

	return res, nil
}

// Compare runs every algo (all registered solvers when none is given) over
// one shared matrix snapshot and returns enriched reports in input order.
//
// Solvers run concurrently on a pond pool bounded by WithWorkers. The first
// error cancels the remaining runs and is returned. opts.Rand is ignored:
// each solver seeds its own generator from opts.Seed, which keeps the
// outcome independent of scheduling.
func (s *Session) Compare(ctx context.Context, opts tsp.Options, algos ...tsp.Algorithm) ([]metrics.Report, error) {
	algos, err := normalize(algos)
	if err != nil {
		return nil, err
	}
	opts.Rand = nil

	began := time.Now()
	nodes, m, err := s.snapshot()
	if err != nil {
		return nil, err
	}

	pool := pond.New(s.workers, len(algos))
	defer pool.StopAndWait()

	group, gctx := pool.GroupContext(ctx)
	results := make([]tsp.Result, len(algos))
	for i, algo := range algos {
		group.Submit(func() error {
			res, err := tsp.SolveWithMatrix(gctx, algo, m, opts)
			if err != nil {
				return fmt.Errorf("%s: %w", algo, err)
			}
			results[i] = res
			return nil
		})
	}
	if err = group.Wait(); err == nil && ctx.Err() != nil {
		// tasks skipped by the group leave no error of their own
		err = fmt.Errorf("compare: %w: %w", tsp.ErrCancelled, ctx.Err())
	}
	if err != nil {
		s.logger.Warn("compare failed", "error", err)
		return nil, err
	}

	for _, r := range results {
		s.logResult(r, len(nodes))
	}
	reports := metrics.Enrich(results, nodes)
	s.logger.Info("compare done",
		"algorithms", len(algos),
		"nodes", len(nodes),
		"elapsed_ms", msSince(began),
	)

	return reports, nil
}

// normalize resolves aliases and drops duplicates, keeping first occurrence.
func normalize(algos []tsp.Algorithm) ([]tsp.Algorithm, error) {
	if len(algos) == 0 {
		return tsp.Algorithms(), nil
	}
	var (
		seen = make(map[tsp.Algorithm]bool, len(algos))
		out  = make([]tsp.Algorithm, 0, len(algos))
	)
	for _, a := range algos {
		resolved, err := tsp.ParseAlgorithm(string(a))
		if err != nil {
			return nil, fmt.Errorf("%q: %w", a, err)
		}
		if !seen[resolved] {
			seen[resolved] = true
			out = append(out, resolved)
		}
	}
	return out, nil
}

func (s *Session) logResult(res tsp.Result, n int) {
	s.logger.Info("solved",
		"algorithm", res.Algorithm,
		"nodes", n,
		"obstacles", len(s.oracle.Obstacles()),
		"length", res.TotalLength,
		"elapsed_ms", res.TimeMs,
		"fallback", res.Details.Fallback,
		"partial", res.Details.Partial,
	)
}

func msSince(t time.Time) float64 {
	return float64(time.Since(t).Microseconds()) / 1000
}
