// API reference:
//
//	func Run(g *core.Graph, opts ...Option) (dist []int64, prev []core.Vertex, err error)
//
//	  - g:    graph to search; must be non-nil.
//	  - opts: zero or more functional options:
//	      • Source(core.Vertex):         required, the starting vertex.
//	      • WithReturnPath():            if set, returns a predecessor vector; otherwise prev == nil.
//	      • WithMaxDistance(int64):      if set, explores only vertices with distance <= given value.
//	      • WithInfEdgeThreshold(int64): if set, skips any edge whose weight >= threshold.
//	      • WithMemoryMode(MemoryMode):  currently Full by default; Compact reserved for later use.
//	  - dist: dist[v] = minimal distance from Source to v, or math.MaxInt32 if unreachable
//	          (or unexplored due to MaxDistance) — matching sssp.Result.Distances()'s sentinel.
//	  - prev: prev[v] = immediate predecessor of v on one shortest path from Source, or -1
//	          if v is the source or unreachable. nil if ReturnPath was not requested.
//
// Thread safety: Run itself performs no concurrent mutation and is safe to call from
// multiple goroutines against the same read-only *core.Graph, as long as no goroutine
// mutates the graph concurrently (core.Graph offers no mutation after construction).
//
// See also: sssp.Run, the concurrent relaxation engine this package validates against.
package dijkstra
