package sssp

// Option configures a Run invocation, in the functional-options style used
// throughout this module.
type Option func(*config)

type config struct {
	skipStale bool
}

func defaultConfig() config {
	return config{skipStale: false}
}

// WithSkipStale enables the "pulled-but-stale" fast path: before relaxing a
// popped vertex's outgoing edges, compare the distance the queue captured
// at the moment of removal (queue.Queue.Pop's second return value) against
// the vertex record's current distance; if another worker has since
// tightened it, skip relaxation entirely for this pop. Either policy (skip
// or always-relax) produces correct final distances; skipping simply
// avoids redundant work on a pop that is known to be superseded.
func WithSkipStale() Option {
	return func(c *config) { c.skipStale = true }
}
