// Package dijkstra implements the sequential reference shortest-path
// algorithm against which the concurrent sssp.Run is validated.
//
// Dijkstra computes the minimum-cost path from a single source vertex to
// every other reachable vertex in a graph with positive edge weights. It
// maintains a priority queue of frontier vertices and relaxes edges in
// increasing order of distance from the source, using the classic "lazy"
// decrease-key strategy: push a duplicate entry on every relaxation and
// skip stale entries (already-visited vertices) on pop, rather than
// mutating an entry's position in place.
//
// Complexity:
//
//	– Time:  O((V + E) log V)
//	   • Each vertex is extracted from the heap at most once (V extracts).
//	   • Each relaxation may push a duplicate (up to E pushes).
//	   • Each heap operation costs O(log(V+E)), simplified to O(log V).
//	– Space: O(V + E)
//
// Options:
//
//	– Source:           vertex to compute distances from (required).
//	– ReturnPath:       if true, return the predecessor vector.
//	– MaxDistance:      optional cap; vertices beyond it are not explored.
//	– InfEdgeThreshold: edges with weight >= this threshold are impassable.
package dijkstra

import (
	"errors"
	"math"

	"github.com/katalvlaran/msqueue/core"
)

// Sentinel errors. Run returns ErrNoSource, ErrNilGraph and
// ErrVertexNotFound; ErrBadMaxDistance and ErrBadInfThreshold are never
// returned, their messages are the panic values of WithMaxDistance and
// WithInfEdgeThreshold.
var (
	// ErrNoSource indicates that Source was never set (or set negative).
	ErrNoSource = errors.New("dijkstra: source vertex not set")

	// ErrNilGraph indicates that a nil *core.Graph was passed to Run.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that Source is out of the graph's vertex range.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// MemoryMode controls how predecessor information is stored during Run.
//
// Only MemoryModeFull is fully supported; MemoryModeCompact is reserved for
// a future implementation that minimizes predecessor storage and
// reconstructs paths via repeated partial computation. At present it
// behaves identically to MemoryModeFull.
type MemoryMode int

const (
	// MemoryModeFull stores all predecessors to allow direct path recovery.
	MemoryModeFull MemoryMode = iota

	// MemoryModeCompact is reserved; currently equivalent to MemoryModeFull.
	MemoryModeCompact
)

// Options configures a call to Run.
type Options struct {
	Source           core.Vertex
	MemoryMode       MemoryMode
	ReturnPath       bool
	MaxDistance      int64
	InfEdgeThreshold int64
}

// Option is a functional option for Run.
type Option func(*Options)

// WithMemoryMode sets the memory mode for storing predecessor information.
func WithMemoryMode(mode MemoryMode) Option {
	return func(o *Options) {
		o.MemoryMode = mode
	}
}

// Source sets the vertex Run computes distances from. Required.
func Source(v core.Vertex) Option {
	return func(o *Options) {
		o.Source = v
	}
}

// WithReturnPath enables generation of the predecessor vector in the
// result. If not set, the predecessor vector is nil.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold: vertices whose
// shortest distance would exceed it are not explored. Panics on a negative
// value. Default (unset) is math.MaxInt64.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold marks edges with weight >= threshold as impassable.
// Panics on a non-positive value. Default (unset) is math.MaxInt64.
func WithInfEdgeThreshold(threshold int64) Option {
	return func(o *Options) {
		if threshold <= 0 {
			panic(ErrBadInfThreshold.Error())
		}
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns Options initialized with sensible defaults for the
// given source vertex.
//
// Defaults:
//   - MemoryMode:       MemoryModeFull.
//   - ReturnPath:       false.
//   - MaxDistance:      math.MaxInt64 (no cap).
//   - InfEdgeThreshold: math.MaxInt64 (no impassable edges).
func DefaultOptions(source core.Vertex) Options {
	return Options{
		Source:           source,
		MemoryMode:       MemoryModeFull,
		ReturnPath:       false,
		MaxDistance:      math.MaxInt64,
		InfEdgeThreshold: math.MaxInt64,
	}
}
