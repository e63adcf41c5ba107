// Package blockingqueue implements the single-mutex baseline priority
// queue used to measure the MultiQueue's contention win: one
// container/heap-backed min-heap behind one lock, so every push and pop
// serializes against every other.
package blockingqueue

import (
	"sync"

	"github.com/katalvlaran/msqueue/binaryheap"
	"github.com/katalvlaran/msqueue/vertexrec"
)

// Queue is a single-mutex, single-heap priority queue implementing
// queue.Queue. It exists purely as a benchmarking baseline against
// multiqueue.MultiQueue.
type Queue struct {
	mu   sync.Mutex
	heap *binaryheap.Heap
}

// New builds an empty Queue with the given initial heap capacity.
func New(reserveSize int) *Queue {
	return &Queue{heap: binaryheap.New(reserveSize)}
}

// Push inserts rec, or decreases its key if it is already present. Unlike
// MultiQueue there is only one heap, so there is no Case A/Case B choice of
// heap id — only whether rec is already linked in.
func (q *Queue) Push(rec *vertexrec.Record, newDist int32) {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.pushLocked(rec, newDist)
}

// Pop removes and returns the true global minimum and the distance it held
// at the moment of removal, or (nil, 0) if empty.
func (q *Queue) Pop() (*vertexrec.Record, int32) {
	q.mu.Lock()
	defer q.mu.Unlock()

	return q.heap.Extract()
}

// PushSingleThreaded inserts rec without locking. Only safe before any
// concurrent use of the queue has begun.
func (q *Queue) PushSingleThreaded(rec *vertexrec.Record, newDist int32) {
	q.pushLocked(rec, newDist)
}

func (q *Queue) pushLocked(rec *vertexrec.Record, newDist int32) {
	if rec.QID() >= 0 {
		q.heap.DecreaseKey(rec, newDist)
		return
	}

	if newDist < rec.Dist() {
		rec.SetDist(newDist)
	}
	q.heap.Insert(rec)
	rec.PublishEnqueued(0)
}

// Empty reports whether the queue currently holds no elements.
func (q *Queue) Empty() bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	return q.heap.Empty()
}
