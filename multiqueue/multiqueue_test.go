package multiqueue_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/msqueue/multiqueue"
	"github.com/katalvlaran/msqueue/vertexrec"
)

// popNext pops until a record comes back or every heap is empty. A single
// Pop samples only two heaps, so it can return nil while other heaps still
// hold records.
func popNext(mq *multiqueue.MultiQueue) (*vertexrec.Record, int32) {
	for {
		rec, d := mq.Pop()
		if rec != nil || mq.Empty() {
			return rec, d
		}
	}
}

func TestNew_RejectsBadParameters(t *testing.T) {
	_, err := multiqueue.New(0)
	require.ErrorIs(t, err, multiqueue.ErrBadWorkerCount)

	_, err = multiqueue.New(4, multiqueue.WithSizeMultiple(0))
	require.ErrorIs(t, err, multiqueue.ErrBadSizeMultiple)
}

func TestNew_SizesHeapsByWorkerCountAndMultiple(t *testing.T) {
	mq, err := multiqueue.New(3, multiqueue.WithSizeMultiple(4))
	require.NoError(t, err)
	require.Equal(t, 12, mq.NumHeaps())
}

func TestMultiQueue_PushThenPopReturnsRecord(t *testing.T) {
	mq, err := multiqueue.New(2)
	require.NoError(t, err)

	r := vertexrec.New(0)
	mq.Push(r, 5)

	got, poppedDist := popNext(mq)
	require.NotNil(t, got)
	require.Equal(t, r, got)
	require.Equal(t, int32(5), poppedDist)
	require.Equal(t, int32(5), got.Dist())
	require.True(t, mq.Empty())
}

func TestMultiQueue_PopEmptyReturnsNil(t *testing.T) {
	mq, err := multiqueue.New(2)
	require.NoError(t, err)

	got, poppedDist := mq.Pop()
	require.Nil(t, got)
	require.Zero(t, poppedDist)
}

func TestMultiQueue_PushTwiceOnSameRecordDecreasesKeyInPlace(t *testing.T) {
	mq, err := multiqueue.New(1, multiqueue.WithSizeMultiple(1))
	require.NoError(t, err)

	r := vertexrec.New(0)
	mq.Push(r, 100)
	mq.Push(r, 10)

	require.Equal(t, int32(10), r.Dist())

	got, poppedDist := mq.Pop()
	require.Equal(t, r, got)
	require.Equal(t, int32(10), poppedDist)
	empty, _ := mq.Pop()
	require.Nil(t, empty)

	snap := mq.Snapshot()
	require.Equal(t, int64(2), snap.Pushes)
	require.Equal(t, int64(1), snap.Pops)
}

func TestMultiQueue_CaseBNeverRaisesAnAlreadyLoweredDistance(t *testing.T) {
	mq, err := multiqueue.New(1, multiqueue.WithSizeMultiple(1))
	require.NoError(t, err)

	r := vertexrec.New(0)
	// Simulate the interleaving from the correctness review: the record is
	// popped back to Unenqueued after having been lowered to 5 by another
	// worker, then a stale Push(10) (computed before that lowering) arrives
	// and must not raise the published distance back up.
	mq.Push(r, 5)
	_, _ = mq.Pop()
	require.Equal(t, int32(5), r.Dist())

	mq.Push(r, 10)
	require.Equal(t, int32(5), r.Dist(), "Case B must never raise an already-lower distance")

	got, poppedDist := mq.Pop()
	require.Equal(t, r, got)
	require.Equal(t, int32(5), poppedDist)
}

func TestMultiQueue_ConcurrentPushNeverDoubleInserts(t *testing.T) {
	mq, err := multiqueue.New(8, multiqueue.WithSizeMultiple(4))
	require.NoError(t, err)

	r := vertexrec.New(0)
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		d := int32(1000 - i)
		go func(d int32) {
			defer wg.Done()
			mq.Push(r, d)
		}(d)
	}
	wg.Wait()

	first, _ := popNext(mq)
	require.NotNil(t, first)
	require.Equal(t, r, first)
	second, _ := popNext(mq)
	require.Nil(t, second, "record must have been inserted exactly once")
}

func TestMultiQueue_PushSingleThreadedSeedsHeapZero(t *testing.T) {
	mq, err := multiqueue.New(4)
	require.NoError(t, err)

	r := vertexrec.New(0)
	mq.PushSingleThreaded(r, 0)

	require.Equal(t, int32(0), r.QID())
	got, _ := popNext(mq)
	require.Equal(t, r, got)
}

func TestMultiQueue_ConcurrentPushPopUnderLoad(t *testing.T) {
	const n = 200
	mq, err := multiqueue.New(6, multiqueue.WithTryLock(3))
	require.NoError(t, err)

	records := vertexrec.NewRecords(n, -1)
	var wg sync.WaitGroup
	for v, r := range records {
		wg.Add(1)
		go func(r *vertexrec.Record, d int32) {
			defer wg.Done()
			mq.Push(r, d)
		}(r, int32(n-v))
	}
	wg.Wait()

	popped := 0
	for {
		rec, _ := popNext(mq)
		if rec == nil {
			break
		}
		popped++
	}
	require.Equal(t, n, popped)
	require.True(t, mq.Empty())
}
