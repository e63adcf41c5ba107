package dijkstra

import (
	"container/heap"
	"math"

	"github.com/katalvlaran/msqueue/core"
)

// unreachedDist is the "unreached" sentinel for dist[v]. It is the 32-bit
// math.MaxInt32, not math.MaxInt64, so that this sequential reference's
// output is directly comparable to sssp.Result.Distances() (which stores
// distances as int32 and uses the same sentinel; see vertexrec.InfDist) —
// otherwise every unreachable vertex would register as a spurious mismatch
// between the two implementations.
const unreachedDist int64 = math.MaxInt32

// Run computes shortest distances from the source vertex (Options.Source)
// to every other vertex in the weighted graph g. It accepts functional
// options to customize behavior (ReturnPath, MaxDistance,
// InfEdgeThreshold, MemoryMode).
//
// Returns:
//
//   - dist: distance from Source to each vertex, indexed by vertex id
//     (math.MaxInt32 if unreachable or unexplored due to MaxDistance).
//   - prev: predecessor vector if ReturnPath is set (nil otherwise).
//     prev[v] == u means the shortest path to v goes through u; -1 marks
//     no predecessor (source, or unreached).
//   - err: error if inputs are invalid.
//
// Preconditions (checked in order): g non-nil, Source set and in range.
func Run(g *core.Graph, opts ...Option) ([]int64, []core.Vertex, error) {
	cfg := DefaultOptions(-1)
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if cfg.Source < 0 {
		return nil, nil, ErrNoSource
	}
	if int(cfg.Source) >= g.NumVertices() {
		return nil, nil, ErrVertexNotFound
	}

	r := newRunner(g, cfg)
	r.init()
	r.process()

	if !cfg.ReturnPath {
		return r.dist, nil, nil
	}

	return r.dist, r.prev, nil
}

// runner holds the mutable state for a single Run execution.
type runner struct {
	g       *core.Graph
	options Options
	dist    []int64
	prev    []core.Vertex
	visited []bool
	pq      nodePQ
}

func newRunner(g *core.Graph, cfg Options) *runner {
	n := g.NumVertices()

	var prev []core.Vertex
	if cfg.ReturnPath || cfg.MemoryMode == MemoryModeFull {
		prev = make([]core.Vertex, n)
	}

	return &runner{
		g:       g,
		options: cfg,
		dist:    make([]int64, n),
		prev:    prev,
		visited: make([]bool, n),
		pq:      make(nodePQ, 0, n),
	}
}

// init sets up initial distances, predecessors, visited flags, and pushes
// Source=0 onto the heap.
func (r *runner) init() {
	for v := range r.dist {
		r.dist[v] = unreachedDist
		if r.prev != nil {
			r.prev[v] = -1
		}
	}
	r.dist[r.options.Source] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.options.Source, dist: 0})
}

// process is the core loop: repeatedly extract the vertex with minimum
// distance from the source and relax its outgoing edges, skipping any
// heap entry that has since been superseded (the lazy decrease-key
// discipline: old entries are never removed, only ignored on pop).
//
// Terminates when the heap empties, or the minimum distance in the heap
// exceeds MaxDistance (no vertex beyond that is explored).
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u, d := item.id, item.dist

		if r.visited[u] {
			continue
		}
		if d > r.options.MaxDistance {
			break
		}

		r.visited[u] = true
		r.relax(u)
	}
}

// relax examines each edge outgoing from u and improves distances to its
// neighbors, respecting InfEdgeThreshold and MaxDistance. Self-loops are
// relaxed like any other edge here (they can never improve dist[u] since
// weight > 0), matching the source's own loop structure rather than
// special-casing them.
func (r *runner) relax(u core.Vertex) {
	for _, e := range r.g.Neighbors(u) {
		v, w := e.To, int64(e.Weight)

		if w >= r.options.InfEdgeThreshold {
			continue
		}

		newDist := r.dist[u] + w
		if newDist > r.options.MaxDistance {
			continue
		}
		if newDist >= r.dist[v] {
			continue
		}

		r.dist[v] = newDist
		if r.prev != nil {
			r.prev[v] = u
		}

		heap.Push(&r.pq, &nodeItem{id: v, dist: newDist})
	}
}

// nodeItem pairs a vertex with its distance from the source at the time it
// was pushed; the priority queue orders entries by dist ascending.
type nodeItem struct {
	id   core.Vertex
	dist int64
}

// nodePQ is a min-heap of *nodeItem implementing container/heap.Interface,
// ordered by dist ascending. Under the lazy decrease-key discipline a
// vertex may appear in it multiple times; runner.process skips any entry
// for a vertex already marked visited.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

