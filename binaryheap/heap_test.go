package binaryheap_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/msqueue/binaryheap"
	"github.com/katalvlaran/msqueue/vertexrec"
)

func TestHeap_InsertExtractOrder(t *testing.T) {
	h := binaryheap.New(4)
	records := vertexrec.NewRecords(5, -1)
	dists := []int32{30, 10, 40, 20, 50}
	for v, d := range dists {
		records[v].SetDist(d)
		h.Insert(records[v])
	}

	require.Equal(t, records[1], h.TopRelaxed())

	var got []int32
	for !h.Empty() {
		_, d := h.Extract()
		got = append(got, d)
	}
	require.Equal(t, []int32{10, 20, 30, 40, 50}, got)
	require.Nil(t, h.TopRelaxed())
}

func TestHeap_DecreaseKeyReordersAndPublishesTop(t *testing.T) {
	h := binaryheap.New(0)
	records := vertexrec.NewRecords(3, -1)
	for v, d := range []int32{100, 50, 75} {
		records[v].SetDist(d)
		h.Insert(records[v])
	}
	require.Equal(t, records[1], h.TopRelaxed())

	h.DecreaseKey(records[0], 1)
	require.Equal(t, records[0], h.TopRelaxed())
	require.Equal(t, int32(1), records[0].Dist())
}

func TestHeap_DecreaseKeyNoOpWhenNotSmaller(t *testing.T) {
	h := binaryheap.New(0)
	r := vertexrec.New(0)
	r.SetDist(10)
	h.Insert(r)

	h.DecreaseKey(r, 20)
	require.Equal(t, int32(10), r.Dist())
}

func TestHeap_ExtractReturnsDistAtRemovalTime(t *testing.T) {
	h := binaryheap.New(0)
	r := vertexrec.New(0)
	r.SetDist(42)
	h.Insert(r)

	got, poppedDist := h.Extract()
	require.Same(t, r, got)
	require.Equal(t, int32(42), poppedDist)
	require.Equal(t, int32(42), got.Dist(), "Dist() is unchanged by Extract; only qID/heapIndex are cleared")
}

func TestHeap_ExtractMaintainsHeapIndexInvariant(t *testing.T) {
	h := binaryheap.New(0)
	records := vertexrec.NewRecords(6, -1)
	for v, d := range []int32{6, 5, 4, 3, 2, 1} {
		records[v].SetDist(d)
		h.Insert(records[v])
		// Each new record has the smallest distance so far, so it sifts up
		// to the root.
		require.Equal(t, 0, records[v].HeapIndex())
	}

	for h.Len() > 0 {
		before := h.Len()
		rec, _ := h.Extract()
		require.Equal(t, vertexrec.InvalidIndex, rec.HeapIndex())
		require.Equal(t, before-1, h.Len())
		if top := h.TopRelaxed(); top != nil {
			require.Equal(t, 0, top.HeapIndex())
		}
	}
}
