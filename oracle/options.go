package oracle

// Defaults for a zero-configured Oracle.
const (
	DefaultPenalty      = PenaltyScaled
	DefaultCacheEnabled = true
	DefaultMergeSpacing = 2.0
)

// Option configures an Oracle.
type Option func(*Oracle)

// WithPenalty selects the penalty policy for blocked segments.
func WithPenalty(p PenaltyPolicy) Option {
	return func(o *Oracle) { o.penalty = p }
}

// WithCache enables or disables memoization. A disabled cache recomputes
// every query, which is useful for benchmarking the geometry itself.
func WithCache(enabled bool) Option {
	return func(o *Oracle) { o.cacheEnabled = enabled }
}

// WithMergeSpacing sets the vertex merge distance applied by AddObstacle.
// Non-positive values disable cleanup (polygons are only validated).
func WithMergeSpacing(d float64) Option {
	return func(o *Oracle) { o.mergeSpacing = d }
}
