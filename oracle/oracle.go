package oracle

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/katalvlaran/tourlab/geometry"
	"github.com/katalvlaran/tourlab/matrix"
)

type cacheKey struct {
	i, j    int
	version uint64
}

// cacheEntry remembers the endpoints a cost was computed from; a lookup
// whose coordinates differ is a miss.
type cacheEntry struct {
	d    float64
	a, b geometry.Point
}

// Stats is a point-in-time view of cache activity.
type Stats struct {
	Hits    uint64
	Misses  uint64
	Entries int
	Version uint64
}

// Oracle owns the obstacle set and the memoized pairwise costs.
type Oracle struct {
	mu           sync.RWMutex
	obstacles    []geometry.Polygon
	version      uint64
	epoch        uint64 // bumped by node-level invalidation
	nodeCount    int
	cache        map[cacheKey]cacheEntry
	hits, misses atomic.Uint64

	penalty      PenaltyPolicy
	cacheEnabled bool
	mergeSpacing float64
}

// New returns an Oracle with no obstacles.
func New(opts ...Option) *Oracle {
	o := &Oracle{
		cache:        make(map[cacheKey]cacheEntry),
		penalty:      DefaultPenalty,
		cacheEnabled: DefaultCacheEnabled,
		mergeSpacing: DefaultMergeSpacing,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Penalty returns the configured penalty policy.
func (o *Oracle) Penalty() PenaltyPolicy { return o.penalty }

// Version returns the obstacle-geometry version. It increases on every
// AddObstacle, RemoveObstacle and ClearObstacles.
func (o *Oracle) Version() uint64 {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.version
}

// Obstacles returns a deep copy of the current obstacle set.
func (o *Oracle) Obstacles() []geometry.Polygon {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return cloneObstacles(o.obstacles)
}

// AddObstacle validates and cleans poly, appends it and returns its index.
func (o *Oracle) AddObstacle(poly geometry.Polygon) (int, error) {
	var (
		cleaned geometry.Polygon
		err     error
	)
	if o.mergeSpacing > 0 {
		cleaned, err = geometry.CleanPolygon(poly, o.mergeSpacing)
	} else if err = geometry.ValidatePolygon(poly); err == nil {
		cleaned = poly.Clone()
	}
	if err != nil {
		return -1, fmt.Errorf("AddObstacle: %w", err)
	}

	o.mu.Lock()
	defer o.mu.Unlock()
	// copy-on-write: readers may still hold the previous slice
	next := make([]geometry.Polygon, len(o.obstacles), len(o.obstacles)+1)
	copy(next, o.obstacles)
	o.obstacles = append(next, cleaned)
	o.bumpLocked()

	return len(o.obstacles) - 1, nil
}

// RemoveObstacle deletes the obstacle at idx; later indices shift down.
func (o *Oracle) RemoveObstacle(idx int) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if idx < 0 || idx >= len(o.obstacles) {
		return fmt.Errorf("RemoveObstacle(%d): %w", idx, ErrObstacleIndex)
	}
	next := make([]geometry.Polygon, 0, len(o.obstacles)-1)
	next = append(next, o.obstacles[:idx]...)
	o.obstacles = append(next, o.obstacles[idx+1:]...)
	o.bumpLocked()

	return nil
}

// ClearObstacles removes every obstacle.
func (o *Oracle) ClearObstacles() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.obstacles = nil
	o.bumpLocked()
}

// bumpLocked advances the version and drops entries that can no longer hit.
func (o *Oracle) bumpLocked() {
	o.version++
	o.cache = make(map[cacheKey]cacheEntry)
}

// Resize records the node-set size. A change drops the whole cache, since
// index identity is positional and deletions shift indices.
func (o *Oracle) Resize(n int) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.resizeLocked(n)
}

func (o *Oracle) resizeLocked(n int) {
	if n != o.nodeCount {
		o.nodeCount = n
		o.epoch++
		o.cache = make(map[cacheKey]cacheEntry)
	}
}

// InvalidateNode drops every cached cost involving node i.
// Complexity: O(cache entries).
func (o *Oracle) InvalidateNode(i int) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.epoch++
	for k := range o.cache {
		if k.i == i || k.j == i {
			delete(o.cache, k)
		}
	}
}

// Invalidate drops the whole cache without touching the version.
func (o *Oracle) Invalidate() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.epoch++
	o.cache = make(map[cacheKey]cacheEntry)
}

// Stats reports cache counters.
func (o *Oracle) Stats() Stats {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return Stats{Hits: o.hits.Load(), Misses: o.misses.Load(), Entries: len(o.cache), Version: o.version}
}

// Between returns the uncached cost between two arbitrary points under the
// current obstacle set.
func (o *Oracle) Between(p1, p2 geometry.Point) float64 {
	o.mu.RLock()
	obstacles := o.obstacles
	o.mu.RUnlock()
	return ObstacleAwareDistance(p1, p2, obstacles, o.penalty)
}

// Distance returns the cost between nodes[i] and nodes[j], served from the
// cache when possible. A node slice whose length differs from the last one
// seen triggers a full invalidation first. Entries are matched on the
// endpoint coordinates too, so a node moved without InvalidateNode never
// reads a cost computed for its old position.
func (o *Oracle) Distance(nodes []geometry.Point, i, j int) (float64, error) {
	n := len(nodes)
	if i < 0 || i >= n || j < 0 || j >= n {
		return 0, fmt.Errorf("Distance(%d,%d) with %d nodes: %w", i, j, n, ErrNodeIndex)
	}
	if i == j {
		return 0, nil
	}
	if i > j {
		i, j = j, i
	}

	o.mu.RLock()
	var (
		version   = o.version
		epoch     = o.epoch
		obstacles = o.obstacles
		sized     = o.nodeCount == n
		entry     cacheEntry
		ok        bool
	)
	if sized && o.cacheEnabled {
		entry, ok = o.cache[cacheKey{i: i, j: j, version: version}]
		ok = ok && entry.a == nodes[i] && entry.b == nodes[j]
	}
	o.mu.RUnlock()

	if ok {
		o.hits.Add(1)
		return entry.d, nil
	}

	d := ObstacleAwareDistance(nodes[i], nodes[j], obstacles, o.penalty)

	o.misses.Add(1)
	o.mu.Lock()
	o.resizeLocked(n)
	// a concurrent move or obstacle edit makes d stale
	if o.cacheEnabled && o.version == version && (!sized || o.epoch == epoch) {
		o.cache[cacheKey{i: i, j: j, version: version}] = cacheEntry{d: d, a: nodes[i], b: nodes[j]}
	}
	o.mu.Unlock()

	return d, nil
}

// Matrix builds the symmetric n×n distance matrix for nodes with a zero
// diagonal. Unreachable pairs hold +Inf.
//
// Complexity: O(n²·Σ|obstacle|) cold, O(n²) warm.
func (o *Oracle) Matrix(nodes []geometry.Point) (*matrix.Dense, error) {
	n := len(nodes)
	if n == 0 {
		return nil, ErrNoNodes
	}
	m, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}

	var (
		i, j int
		d    float64
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if d, err = o.Distance(nodes, i, j); err != nil {
				return nil, err
			}
			if err = m.SetSym(i, j, d); err != nil {
				return nil, err
			}
		}
	}

	return m, nil
}

func cloneObstacles(src []geometry.Polygon) []geometry.Polygon {
	if src == nil {
		return nil
	}
	out := make([]geometry.Polygon, len(src))
	for i, p := range src {
		out[i] = p.Clone()
	}
	return out
}
