// Package vertexrec defines the per-vertex bookkeeping shared between the
// worker loop and the multiqueue: a Record couples a vertex's tentative
// distance with the heap membership state needed to enforce "at most one
// heap entry per vertex" without a global lock.
//
// A Record is only ever handled by pointer. It is intentionally
// non-copyable in spirit (copying one would duplicate a claim mutex and
// desynchronize the two copies' notion of heap membership); callers should
// treat *Record as the unit of ownership, the same way the original C++
// design treated QueueElement's copy-assignment operator as a mistake to
// avoid rather than support.
package vertexrec

import (
	"math"
	"sync"
	"sync/atomic"

	"github.com/katalvlaran/msqueue/core"
)

// Unenqueued is the sentinel value of QID meaning "not currently in any heap".
const Unenqueued = -1

// InvalidIndex is the sentinel value of a heap slot index for a record that
// is not currently held by any heap.
const InvalidIndex = -1

// InfDist represents "unreached" for a vertex distance.
const InfDist = math.MaxInt32

// Record holds one vertex's mutable relaxation state.
//
// dist and qID are read and written from many goroutines concurrently and
// must only be touched through their accessor methods. heapIndex is only
// ever touched by the goroutine currently holding the lock of the heap
// named by qID; readers outside that lock must not rely on it.
type Record struct {
	// Vertex is this record's identity; set once at construction.
	Vertex core.Vertex

	dist atomic.Int32
	qID  atomic.Int32

	// heapIndex is the record's slot within heap qID. Valid only while
	// qID >= 0, and only mutated by the holder of that heap's lock.
	heapIndex int

	// claim serializes the Unenqueued -> k transition for this vertex so
	// that two concurrent pushers cannot both win the race to insert it.
	claim sync.Mutex
}

// New builds a Record for the given vertex, initialized to InfDist and
// Unenqueued.
func New(v core.Vertex) *Record {
	r := &Record{Vertex: v, heapIndex: InvalidIndex}
	r.dist.Store(InfDist)
	r.qID.Store(Unenqueued)

	return r
}

// NewRecords builds one Record per vertex 0..n-1, with dist[source] forced
// to 0. It is the concurrent-safe replacement for the original design's
// "initialize a vector of atomics" helper: a plain loop over freshly
// allocated structs, no fill-then-copy dance required.
func NewRecords(n int, source core.Vertex) []*Record {
	records := make([]*Record, n)
	for v := range records {
		records[v] = New(core.Vertex(v))
	}
	if int(source) >= 0 && int(source) < n {
		records[source].dist.Store(0)
	}

	return records
}

// Dist returns the current tentative distance.
func (r *Record) Dist() int32 {
	return r.dist.Load()
}

// SetDist stores a new tentative distance unconditionally. Callers are
// responsible for only calling this with a strictly smaller value; Record
// itself does not enforce monotonicity, that is the caller's (heap/worker)
// responsibility per invariant I3.
func (r *Record) SetDist(d int32) {
	r.dist.Store(d)
}

// QID returns the id of the heap currently holding this record, or
// Unenqueued if it is in no heap.
func (r *Record) QID() int32 {
	return r.qID.Load()
}

// setQID is used by the heap/multiqueue implementation to publish or clear
// heap membership. It is unexported: only code that also holds the
// relevant heap lock (or the claim lock, for the Unenqueued->k transition)
// may call it.
func (r *Record) setQID(id int32) {
	r.qID.Store(id)
}

// CompareAndSwapQID atomically sets qID to new if it currently equals old,
// and reports whether it did.
func (r *Record) CompareAndSwapQID(old, new int32) bool {
	return r.qID.CompareAndSwap(old, new)
}

// HeapIndex returns the record's slot in its current heap. Only meaningful
// while the caller holds that heap's lock.
func (r *Record) HeapIndex() int {
	return r.heapIndex
}

// SetHeapIndex updates the record's slot. Only called by the heap
// implementation while holding its lock.
func (r *Record) SetHeapIndex(i int) {
	r.heapIndex = i
}

// Lock acquires the per-vertex claim lock guarding the Unenqueued -> k
// transition.
func (r *Record) Lock() {
	r.claim.Lock()
}

// Unlock releases the claim lock.
func (r *Record) Unlock() {
	r.claim.Unlock()
}

// PublishEnqueued sets qID to id with the ordering the push protocol needs:
// once this returns, any goroutine observing QID() == id may safely lock
// heap id and expect the record to already be linked into it. Must be
// called while holding both the claim lock and heap id's lock, after the
// record has been pushed onto that heap.
func (r *Record) PublishEnqueued(id int32) {
	r.setQID(id)
}

// PublishDequeued clears qID and heapIndex after the record has been
// popped from its heap. Must be called while holding that heap's lock.
func (r *Record) PublishDequeued() {
	r.heapIndex = InvalidIndex
	r.qID.Store(Unenqueued)
}
