package planner

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"sync"

	"github.com/katalvlaran/tourlab/geometry"
	"github.com/katalvlaran/tourlab/matrix"
	"github.com/katalvlaran/tourlab/oracle"
	"github.com/katalvlaran/tourlab/scenario"
	"github.com/katalvlaran/tourlab/tsp"
)

// ErrNodeIndex indicates a node index outside 0..Len()-1.
var ErrNodeIndex = errors.New("planner: node index out of range")

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger; nil keeps slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithOracleOptions forwards options to the Session's oracle.
func WithOracleOptions(opts ...oracle.Option) Option {
	return func(s *Session) { s.oracleOpts = append(s.oracleOpts, opts...) }
}

// WithWorkers bounds Compare's concurrency. Values < 1 mean runtime.NumCPU().
func WithWorkers(n int) Option {
	return func(s *Session) { s.workers = n }
}

// Session is a mutable planning workspace. It is safe for concurrent use.
type Session struct {
	mu     sync.RWMutex
	nodes  []geometry.Point
	labels []string

	oracle     *oracle.Oracle
	oracleOpts []oracle.Option
	logger     *slog.Logger
	workers    int
}

// NewSession returns an empty session.
func NewSession(opts ...Option) *Session {
	s := &Session{logger: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	if s.workers < 1 {
		s.workers = runtime.NumCPU()
	}
	s.oracle = oracle.New(s.oracleOpts...)
	return s
}

// FromScenario builds a session holding sc's nodes and obstacles, with the
// scenario's penalty policy. Options are applied after the policy.
func FromScenario(sc *scenario.Scenario, opts ...Option) (*Session, error) {
	pol, err := sc.Parameters.PenaltyPolicy()
	if err != nil {
		return nil, err
	}
	opts = append([]Option{WithOracleOptions(oracle.WithPenalty(pol))}, opts...)
	s := NewSession(opts...)

	for i, n := range sc.Nodes {
		if _, err = s.AddNode(n.Point(), n.Label); err != nil {
			return nil, fmt.Errorf("nodes[%d]: %w", i, err)
		}
	}
	for i, poly := range sc.Obstacles {
		if _, err = s.AddObstacle(poly); err != nil {
			return nil, fmt.Errorf("obstacles[%d]: %w", i, err)
		}
	}
	return s, nil
}

// Oracle exposes the distance oracle, e.g. for cache statistics.
func (s *Session) Oracle() *oracle.Oracle { return s.oracle }

// Len returns the number of nodes.
func (s *Session) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.nodes)
}

// Nodes returns a copy of the node coordinates.
func (s *Session) Nodes() []geometry.Point {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]geometry.Point(nil), s.nodes...)
}

// Labels returns a copy of the node labels.
func (s *Session) Labels() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.labels...)
}

// AddNode appends p and returns its index. An empty label defaults to the
// index.
func (s *Session) AddNode(p geometry.Point, label string) (int, error) {
	if !p.Finite() {
		return -1, fmt.Errorf("AddNode(%v): %w", p, geometry.ErrNonFinite)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := len(s.nodes)
	if label == "" {
		label = scenario.DefaultLabel(idx)
	}
	s.nodes = append(s.nodes, p)
	s.labels = append(s.labels, label)
	s.oracle.Resize(len(s.nodes))

	return idx, nil
}

// MoveNode relocates node i. Only pairs involving i leave the cache.
func (s *Session) MoveNode(i int, p geometry.Point) error {
	if !p.Finite() {
		return fmt.Errorf("MoveNode(%d, %v): %w", i, p, geometry.ErrNonFinite)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if i < 0 || i >= len(s.nodes) {
		return fmt.Errorf("MoveNode(%d): %w", i, ErrNodeIndex)
	}
	s.nodes[i] = p
	s.oracle.InvalidateNode(i)

	return nil
}

// RemoveNode deletes node i; higher indices shift down by one, so any tour
// computed earlier is stale.
func (s *Session) RemoveNode(i int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i < 0 || i >= len(s.nodes) {
		return fmt.Errorf("RemoveNode(%d): %w", i, ErrNodeIndex)
	}
	s.nodes = append(s.nodes[:i:i], s.nodes[i+1:]...)
	s.labels = append(s.labels[:i:i], s.labels[i+1:]...)
	s.oracle.Resize(len(s.nodes))

	return nil
}

// AddObstacle cleans and adds poly, returning its index.
func (s *Session) AddObstacle(poly geometry.Polygon) (int, error) {
	return s.oracle.AddObstacle(poly)
}

// RemoveObstacle deletes obstacle idx.
func (s *Session) RemoveObstacle(idx int) error { return s.oracle.RemoveObstacle(idx) }

// ClearObstacles removes every obstacle.
func (s *Session) ClearObstacles() { s.oracle.ClearObstacles() }

// Obstacles returns a copy of the cleaned obstacle set.
func (s *Session) Obstacles() []geometry.Polygon { return s.oracle.Obstacles() }

// snapshot copies the nodes and builds their distance matrix. The read lock
// is held across both so a concurrent MoveNode lands before or after.
func (s *Session) snapshot() ([]geometry.Point, *matrix.Dense, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	nodes := append([]geometry.Point(nil), s.nodes...)
	if len(nodes) == 0 {
		return nil, nil, tsp.ErrNoNodes
	}
	m, err := s.oracle.Matrix(nodes)
	if err != nil {
		return nil, nil, err
	}
	return nodes, m, nil
}

// Scenario exports the session with the given parameters.
func (s *Session) Scenario(params scenario.Parameters) *scenario.Scenario {
	s.mu.RLock()
	nodes := make([]scenario.Node, len(s.nodes))
	for i, p := range s.nodes {
		nodes[i] = scenario.Node{X: p.X, Y: p.Y, Label: s.labels[i]}
	}
	s.mu.RUnlock()

	params.Penalty = s.oracle.Penalty().String()
	return &scenario.Scenario{
		Nodes:      nodes,
		Obstacles:  s.oracle.Obstacles(),
		Parameters: params,
	}
}
