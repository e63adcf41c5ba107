// Package binaryheap implements the sequential min-heap used by every
// MultiQueue bucket: a slice of *vertexrec.Record ordered by distance,
// built on container/heap so that push/pop/fix reuse the standard
// library's sift routines instead of a hand-rolled reimplementation.
//
// Every exported method here assumes the caller already holds whatever
// lock protects this Heap (a per-bucket sync.Mutex, owned by multiqueue);
// Heap itself contains no locking. The one exception is TopRelaxed, which
// is designed to be read without any lock at all.
package binaryheap

import (
	"container/heap"
	"sync/atomic"

	"github.com/katalvlaran/msqueue/vertexrec"
)

// Heap is a min-heap of *vertexrec.Record ordered by Dist(), with an
// atomically-published pointer to the current minimum for lock-free peeking.
type Heap struct {
	elements []*vertexrec.Record
	top      atomic.Pointer[vertexrec.Record]
}

// New returns an empty Heap with reserveSize of pre-allocated capacity.
func New(reserveSize int) *Heap {
	if reserveSize < 0 {
		reserveSize = 0
	}

	return &Heap{elements: make([]*vertexrec.Record, 0, reserveSize)}
}

// container/heap.Interface -----------------------------------------------

// Len implements sort.Interface.
func (h *Heap) Len() int { return len(h.elements) }

// Less implements sort.Interface: smaller Dist sorts first (min-heap).
func (h *Heap) Less(i, j int) bool { return h.elements[i].Dist() < h.elements[j].Dist() }

// Swap implements sort.Interface and maintains invariant I2 by keeping
// each record's heapIndex equal to its current slot.
func (h *Heap) Swap(i, j int) {
	h.elements[i], h.elements[j] = h.elements[j], h.elements[i]
	h.elements[i].SetHeapIndex(i)
	h.elements[j].SetHeapIndex(j)
}

// Push implements heap.Interface's raw append step; callers should call
// Insert, not this method, to also sift and publish the cached top. When
// the backing slice is full its capacity grows by a factor of 4.
func (h *Heap) Push(x any) {
	rec := x.(*vertexrec.Record)
	if len(h.elements) == cap(h.elements) {
		grown := make([]*vertexrec.Record, len(h.elements), max(4*cap(h.elements), 1))
		copy(grown, h.elements)
		h.elements = grown
	}
	rec.SetHeapIndex(len(h.elements))
	h.elements = append(h.elements, rec)
}

// Pop implements heap.Interface's raw removal step; callers should call
// Extract, not this method, to also publish the cached top and clear the
// evicted record's bookkeeping.
func (h *Heap) Pop() any {
	n := len(h.elements)
	rec := h.elements[n-1]
	h.elements[n-1] = nil
	h.elements = h.elements[:n-1]

	return rec
}

// Public API ---------------------------------------------------------------

// Insert adds rec to the heap, sifts it into place, and publishes the new
// top pointer. rec must not already belong to any heap.
func (h *Heap) Insert(rec *vertexrec.Record) {
	heap.Push(h, rec)
	h.publishTop()
}

// Extract removes and returns the minimum element together with the
// distance it held at the moment of removal, clearing its heap bookkeeping
// (Record.PublishDequeued). Returns (nil, 0) if the heap is empty.
//
// The distance is read before PublishDequeued clears the record's qID, so
// no concurrent pusher can have touched it yet: Case A needs this heap's
// lock (held here) and Case B needs qID == Unenqueued (not yet true). The
// returned value is therefore the exact key this heap used to select the
// record as its minimum, safe for a caller to compare against a later,
// possibly-more-current Record.Dist() to detect staleness.
func (h *Heap) Extract() (*vertexrec.Record, int32) {
	if h.Len() == 0 {
		return nil, 0
	}

	rec := heap.Pop(h).(*vertexrec.Record)
	poppedDist := rec.Dist()
	rec.PublishDequeued()
	h.publishTop()

	return rec, poppedDist
}

// DecreaseKey lowers rec's distance to newDist and restores heap order.
// It is a no-op if newDist is not strictly smaller than rec's current
// distance. rec must currently belong to this heap at rec.HeapIndex().
func (h *Heap) DecreaseKey(rec *vertexrec.Record, newDist int32) {
	if newDist >= rec.Dist() {
		return
	}

	rec.SetDist(newDist)
	heap.Fix(h, rec.HeapIndex())
	h.publishTop()
}

// TopRelaxed returns the currently cached minimum without acquiring any
// lock. The result may be stale (another goroutine may have already
// mutated the heap) but is never a torn read, and is nil exactly when the
// heap was empty as of the last mutation.
func (h *Heap) TopRelaxed() *vertexrec.Record {
	return h.top.Load()
}

// Empty reports whether the heap currently holds no elements. Requires the
// caller's lock, like every other method except TopRelaxed.
func (h *Heap) Empty() bool {
	return h.Len() == 0
}

func (h *Heap) publishTop() {
	if len(h.elements) == 0 {
		h.top.Store(nil)
		return
	}
	h.top.Store(h.elements[0])
}
