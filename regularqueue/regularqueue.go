// Package regularqueue implements the unlocked sequential priority queue
// baseline: the same single container/heap-backed heap as blockingqueue,
// with no synchronization at all. It is only safe for single-goroutine use
// (the reference "run_regular_queue" configuration) and exists so
// sssp.Run can be benchmarked against a queue with zero locking overhead.
package regularqueue

import (
	"github.com/katalvlaran/msqueue/binaryheap"
	"github.com/katalvlaran/msqueue/vertexrec"
)

// Queue is an unlocked single-heap priority queue implementing
// queue.Queue. Every method assumes single-goroutine access; there is no
// internal locking whatsoever.
type Queue struct {
	heap *binaryheap.Heap
}

// New builds an empty Queue with the given initial heap capacity.
func New(reserveSize int) *Queue {
	return &Queue{heap: binaryheap.New(reserveSize)}
}

// Push inserts rec, or decreases its key if already present.
func (q *Queue) Push(rec *vertexrec.Record, newDist int32) {
	q.PushSingleThreaded(rec, newDist)
}

// Pop removes and returns the global minimum and the distance it held at
// the moment of removal, or (nil, 0) if empty.
func (q *Queue) Pop() (*vertexrec.Record, int32) {
	return q.heap.Extract()
}

// PushSingleThreaded inserts rec, or decreases its key if already present.
// Named to satisfy queue.Queue; identical to Push since this type is never
// used concurrently.
func (q *Queue) PushSingleThreaded(rec *vertexrec.Record, newDist int32) {
	if rec.QID() >= 0 {
		q.heap.DecreaseKey(rec, newDist)
		return
	}

	rec.SetDist(newDist)
	q.heap.Insert(rec)
	rec.PublishEnqueued(0)
}

// Empty reports whether the queue currently holds no elements.
func (q *Queue) Empty() bool {
	return q.heap.Empty()
}
