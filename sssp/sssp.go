// Package sssp runs the concurrent relaxation worker pool: a fixed number
// of goroutines popping from a shared queue.Queue, relaxing outgoing edges,
// and pushing improved neighbors back, until every worker observes sustained
// global quiescence.
package sssp

import (
	"context"
	"errors"
	"math"
	"sync"
	"sync/atomic"

	"github.com/katalvlaran/msqueue/core"
	"github.com/katalvlaran/msqueue/queue"
	"github.com/katalvlaran/msqueue/vertexrec"
)

// ErrBadWorkerCount is returned when numWorkers is non-positive.
var ErrBadWorkerCount = errors.New("sssp: numWorkers must be positive")

// Result holds the outcome of a Run: the final vertex records (from which
// distances can be read) and a few aggregate counters useful for
// diagnostics and the testable push/pop-accounting property.
type Result struct {
	Records      []*vertexrec.Record
	PullCounts   []int64
	TotalPulls   int64
	EdgesVisited int64
}

// Distances extracts the plain distance vector from the result's records,
// in vertex-id order.
func (r Result) Distances() []int32 {
	dists := make([]int32, len(r.Records))
	for v, rec := range r.Records {
		dists[v] = rec.Dist()
	}

	return dists
}

// Run seeds source into q, spawns numWorkers goroutines that drain q via
// the pop-relax-push loop until quiescence, and returns the final records.
// ctx cancellation stops workers early without waiting for quiescence; the
// returned Result then reflects a partial computation.
func Run(ctx context.Context, g *core.Graph, q queue.Queue, source core.Vertex, numWorkers int, opts ...Option) (Result, error) {
	if numWorkers <= 0 {
		return Result{}, ErrBadWorkerCount
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	records := vertexrec.NewRecords(g.NumVertices(), source)
	pullCounts := make([]int64, g.NumVertices())
	var edgesVisited atomic.Int64

	q.PushSingleThreaded(records[source], 0)

	activeWorkers := atomic.Int64{}
	activeWorkers.Store(int64(numWorkers))

	var wg sync.WaitGroup
	wg.Add(numWorkers)
	for t := 0; t < numWorkers; t++ {
		go func() {
			defer wg.Done()
			runWorker(ctx, g, q, records, pullCounts, &edgesVisited, &activeWorkers, cfg)
		}()
	}
	wg.Wait()

	var totalPulls int64
	for _, c := range pullCounts {
		totalPulls += c
	}

	return Result{
		Records:      records,
		PullCounts:   pullCounts,
		TotalPulls:   totalPulls,
		EdgesVisited: edgesVisited.Load(),
	}, nil
}

// runWorker is the per-goroutine pop-relax-push cycle described in the
// worker loop design: pop a vertex, relax its outgoing edges, push any
// neighbor whose distance improved, and repeat until the active-worker
// counter signals quiescence or ctx is cancelled.
func runWorker(
	ctx context.Context,
	g *core.Graph,
	q queue.Queue,
	records []*vertexrec.Record,
	pullCounts []int64,
	edgesVisited *atomic.Int64,
	activeWorkers *atomic.Int64,
	cfg config,
) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		rec, poppedDist := q.Pop()
		if rec == nil {
			if quiescent(q, activeWorkers) {
				return
			}
			continue
		}

		atomic.AddInt64(&pullCounts[rec.Vertex], 1)

		if cfg.skipStale && rec.Dist() != poppedDist {
			continue
		}

		d := poppedDist

		for _, e := range g.Neighbors(rec.Vertex) {
			if e.To == rec.Vertex {
				continue // self-loops never improve anything
			}
			edgesVisited.Add(1)

			newD := saturatingAdd(d, e.Weight)
			neighbor := records[e.To]
			if newD < neighbor.Dist() {
				q.Push(neighbor, newD)
			}
		}
	}
}

// quiescent implements the robust active-worker-counter termination
// detector: decrement, recheck every heap, and either commit to exiting or
// roll the decrement back and keep working.
func quiescent(q queue.Queue, activeWorkers *atomic.Int64) bool {
	activeWorkers.Add(-1)
	if !q.Empty() {
		activeWorkers.Add(1)
		return false
	}

	return true
}

// saturatingAdd sums a non-negative distance and a positive edge weight,
// clamping to math.MaxInt32 instead of overflowing.
func saturatingAdd(d, w int32) int32 {
	sum := int64(d) + int64(w)
	if sum > math.MaxInt32 {
		return math.MaxInt32
	}

	return int32(sum)
}
