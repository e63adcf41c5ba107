package blockingqueue_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/msqueue/blockingqueue"
	"github.com/katalvlaran/msqueue/vertexrec"
)

func TestQueue_PopOrdersByDistance(t *testing.T) {
	q := blockingqueue.New(0)
	records := vertexrec.NewRecords(4, -1)
	for v, d := range []int32{40, 10, 30, 20} {
		q.Push(records[v], d)
	}

	var got []int32
	for !q.Empty() {
		_, d := q.Pop()
		got = append(got, d)
	}
	require.Equal(t, []int32{10, 20, 30, 40}, got)
}

func TestQueue_PushTwiceDecreasesKey(t *testing.T) {
	q := blockingqueue.New(0)
	r := vertexrec.New(0)
	q.Push(r, 100)
	q.Push(r, 5)

	require.Equal(t, int32(5), r.Dist())
	got, poppedDist := q.Pop()
	require.Equal(t, r, got)
	require.Equal(t, int32(5), poppedDist)
	empty, _ := q.Pop()
	require.Nil(t, empty)
}

func TestQueue_PushSingleThreadedSeeds(t *testing.T) {
	q := blockingqueue.New(2)
	r := vertexrec.New(1)
	q.PushSingleThreaded(r, 0)

	require.False(t, q.Empty())
	got, _ := q.Pop()
	require.Equal(t, r, got)
}
