// Package multiqueue implements the relaxed concurrent priority queue that
// backs the SSSP worker pool: a bag of independently-locked binary heaps,
// with random-choice insertion and two-choice extraction in place of a
// single globally-ordered heap. Trading strict ordering for low contention
// is the whole point: under N goroutines a single locked heap serializes
// every push and pop, while N/worker heaps let disjoint operations proceed
// in parallel at the cost of occasionally popping a vertex that isn't quite
// the global minimum.
package multiqueue

import (
	"math/rand/v2"
	"sync"
	"sync/atomic"

	"github.com/katalvlaran/msqueue/binaryheap"
	"github.com/katalvlaran/msqueue/vertexrec"
)

// bucket pairs one binaryheap.Heap with the mutex that guards it and a
// running count of its peak occupancy.
type bucket struct {
	mu       sync.Mutex
	heap     *binaryheap.Heap
	peakSize atomic.Int64
}

// MultiQueue is N independently-locked min-heaps shared by every worker
// goroutine in an sssp.Run. It implements queue.Queue.
type MultiQueue struct {
	buckets         []*bucket
	tryLockAttempts int

	pushes atomic.Int64
	pops   atomic.Int64
}

// New builds a MultiQueue with numWorkers*sizeMultiple heaps. sizeMultiple
// defaults to 2 and oneQueueReserveSize to 0 unless overridden by opts.
func New(numWorkers int, opts ...Option) (*MultiQueue, error) {
	if numWorkers <= 0 {
		return nil, ErrBadWorkerCount
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.sizeMultiple <= 0 {
		return nil, ErrBadSizeMultiple
	}

	n := numWorkers * cfg.sizeMultiple
	mq := &MultiQueue{
		buckets:         make([]*bucket, n),
		tryLockAttempts: cfg.tryLockAttempts,
	}
	for i := range mq.buckets {
		mq.buckets[i] = &bucket{heap: binaryheap.New(cfg.oneQueueReserveSize)}
	}

	return mq, nil
}

// NumHeaps returns N, the number of independently-locked heaps.
func (mq *MultiQueue) NumHeaps() int {
	return len(mq.buckets)
}

// Push inserts rec into some heap, or decreases its key in its current
// heap, following the claim-lock protocol described for the Unenqueued ->
// k transition (Case B) and the optimistic re-check protocol for an
// already-enqueued record (Case A).
func (mq *MultiQueue) Push(rec *vertexrec.Record, newDist int32) {
	mq.pushes.Add(1)

	for {
		cur := rec.QID()
		if cur >= 0 {
			if mq.tryCaseA(rec, cur, newDist) {
				return
			}
			continue
		}

		if mq.tryCaseB(rec, newDist) {
			return
		}
		// Another pusher won the claim lock and the -1 -> k race first;
		// re-read qID and retry (it may now be Case A or still Case B).
	}
}

// tryCaseA attempts a decrease-key on the heap the record appears to
// already occupy, re-validating membership under that heap's lock. Returns
// false if the record was popped (or moved) between the optimistic read
// and the lock, signaling the caller to retry from the top.
func (mq *MultiQueue) tryCaseA(rec *vertexrec.Record, cur int32, newDist int32) bool {
	b := mq.buckets[cur]
	b.mu.Lock()
	defer b.mu.Unlock()

	if rec.QID() != cur || rec.HeapIndex() < 0 {
		return false
	}

	b.heap.DecreaseKey(rec, newDist)
	mq.recordPeak(b)

	return true
}

// tryCaseB attempts the Unenqueued -> k insertion. Returns false if another
// goroutine already moved the record out of Unenqueued while this one was
// waiting for the claim lock, signaling the caller to retry from the top.
//
// newDist may be stale by the time the claim lock is acquired: rec could
// have been pushed, popped, and re-relaxed to a lower distance by other
// workers in the meantime, and that lower value must never be overwritten
// with a higher one (it may already have propagated to downstream
// vertices). So the key actually published is min(newDist, rec.Dist()),
// never newDist unconditionally.
func (mq *MultiQueue) tryCaseB(rec *vertexrec.Record, newDist int32) bool {
	rec.Lock()
	defer rec.Unlock()

	if rec.QID() != vertexrec.Unenqueued {
		return false
	}

	if newDist < rec.Dist() {
		rec.SetDist(newDist)
	}

	k := mq.chooseInsertionHeap()
	b := mq.buckets[k]

	b.mu.Lock()
	b.heap.Insert(rec)
	rec.PublishEnqueued(int32(k))
	mq.recordPeak(b)
	b.mu.Unlock()

	return true
}

// chooseInsertionHeap picks the target heap for a new insertion: a single
// uniform random choice, or — with WithTryLock configured — the first of a
// few random candidates whose lock is free, falling back to the last
// candidate tried (which the caller will then block to acquire).
func (mq *MultiQueue) chooseInsertionHeap() int {
	n := len(mq.buckets)
	if mq.tryLockAttempts <= 0 {
		return rand.N(n)
	}

	k := rand.N(n)
	for i := 0; i < mq.tryLockAttempts; i++ {
		candidate := rand.N(n)
		if mq.buckets[candidate].mu.TryLock() {
			mq.buckets[candidate].mu.Unlock()
			return candidate
		}
		k = candidate
	}

	return k
}

// Pop removes and returns a record near the global minimum, along with the
// distance it held at the moment of removal: it compares the lock-free
// tops of two distinct random heaps and extracts from the smaller,
// re-checking emptiness under that heap's lock before committing. Returns
// (nil, 0) when both sampled heaps are empty, even if other heaps still
// hold records.
func (mq *MultiQueue) Pop() (*vertexrec.Record, int32) {
	n := len(mq.buckets)
	i, j := twoDistinct(n)

	bi, bj := mq.buckets[i], mq.buckets[j]
	ti, tj := bi.heap.TopRelaxed(), bj.heap.TopRelaxed()

	chosen := bi
	switch {
	case ti == nil && tj == nil:
		return nil, 0
	case ti == nil:
		chosen = bj
	case tj == nil:
		chosen = bi
	case tj.Dist() < ti.Dist():
		chosen = bj
	}

	chosen.mu.Lock()
	defer chosen.mu.Unlock()

	rec, poppedDist := chosen.heap.Extract()
	if rec == nil {
		return nil, 0
	}
	mq.pops.Add(1)

	return rec, poppedDist
}

// PushSingleThreaded inserts rec into heap 0 without any locking. Only safe
// before workers have started (graph seeding).
func (mq *MultiQueue) PushSingleThreaded(rec *vertexrec.Record, newDist int32) {
	b := mq.buckets[0]
	rec.SetDist(newDist)
	b.heap.Insert(rec)
	rec.PublishEnqueued(0)
	mq.recordPeak(b)
	mq.pushes.Add(1)
}

// Empty reports whether every heap is currently empty. Used by the worker
// pool's termination check; callers must already have observed a failed
// Pop before relying on this as a quiescence signal (see sssp.Run).
func (mq *MultiQueue) Empty() bool {
	for _, b := range mq.buckets {
		b.mu.Lock()
		empty := b.heap.Empty()
		b.mu.Unlock()
		if !empty {
			return false
		}
	}

	return true
}

func (mq *MultiQueue) recordPeak(b *bucket) {
	size := int64(b.heap.Len())
	for {
		peak := b.peakSize.Load()
		if size <= peak || b.peakSize.CompareAndSwap(peak, size) {
			return
		}
	}
}

// Statistics is a point-in-time snapshot of push/pop counters and per-heap
// peak occupancy, suitable for stderr reporting or forwarding into
// msqstats.
type Statistics struct {
	Pushes       int64
	Pops         int64
	PerHeapPeaks []int64
}

// Snapshot reads the current counters. Safe to call while workers are
// still running, though the result is then only approximately consistent.
func (mq *MultiQueue) Snapshot() Statistics {
	peaks := make([]int64, len(mq.buckets))
	for i, b := range mq.buckets {
		peaks[i] = b.peakSize.Load()
	}

	return Statistics{
		Pushes:       mq.pushes.Load(),
		Pops:         mq.pops.Load(),
		PerHeapPeaks: peaks,
	}
}

func twoDistinct(n int) (int, int) {
	if n == 1 {
		return 0, 0
	}

	i := rand.N(n)
	j := rand.N(n - 1)
	if j >= i {
		j++
	}

	return i, j
}
