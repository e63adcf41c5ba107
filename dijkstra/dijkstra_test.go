// Package dijkstra_test exercises the sequential reference algorithm:
// validation, basic correctness, MaxDistance/InfEdgeThreshold cutoffs, and
// the single-vertex edge case.
package dijkstra_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/msqueue/core"
	"github.com/katalvlaran/msqueue/dijkstra"
)

func mustGraph(t *testing.T, n int) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(n)
	require.NoError(t, err)

	return g
}

// ----------------------------------------------------------------------
// 1. Validation
// ----------------------------------------------------------------------

func TestRun_NoSource(t *testing.T) {
	g := mustGraph(t, 3)
	_, _, err := dijkstra.Run(g)
	require.ErrorIs(t, err, dijkstra.ErrNoSource)
}

func TestRun_NilGraphWithoutSource(t *testing.T) {
	// The nil-graph check runs before the source check.
	_, _, err := dijkstra.Run(nil)
	require.ErrorIs(t, err, dijkstra.ErrNilGraph)
}

func TestRun_NilGraphWithSource(t *testing.T) {
	_, _, err := dijkstra.Run(nil, dijkstra.Source(0))
	require.ErrorIs(t, err, dijkstra.ErrNilGraph)
}

func TestRun_SourceOutOfRange(t *testing.T) {
	g := mustGraph(t, 2)
	_, _, err := dijkstra.Run(g, dijkstra.Source(5))
	require.ErrorIs(t, err, dijkstra.ErrVertexNotFound)
}

// ----------------------------------------------------------------------
// 2. Basic functionality
// ----------------------------------------------------------------------

func TestRun_Triangle_NoPath(t *testing.T) {
	g := mustGraph(t, 3)
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(1, 2, 2))
	require.NoError(t, g.AddEdge(0, 2, 5))

	dist, prev, err := dijkstra.Run(g, dijkstra.Source(0))
	require.NoError(t, err)
	require.Equal(t, int64(3), dist[2])
	require.Nil(t, prev)
}

func TestRun_Triangle_WithPath(t *testing.T) {
	g := mustGraph(t, 3)
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(1, 2, 2))
	require.NoError(t, g.AddEdge(0, 2, 5))

	dist, prev, err := dijkstra.Run(g, dijkstra.Source(0), dijkstra.WithReturnPath())
	require.NoError(t, err)
	require.Equal(t, []int64{0, 1, 3}, dist)
	require.Equal(t, core.Vertex(0), prev[1])
	require.Equal(t, core.Vertex(1), prev[2])
}

func TestRun_ChainWithBranch(t *testing.T) {
	// 0-1-2-3-4, with 3-5-6 branching off 3.
	g := mustGraph(t, 7)
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(1, 2, 1))
	require.NoError(t, g.AddEdge(2, 3, 1))
	require.NoError(t, g.AddEdge(3, 4, 1))
	require.NoError(t, g.AddEdge(3, 5, 1))
	require.NoError(t, g.AddEdge(5, 6, 1))

	dist, prev, err := dijkstra.Run(g, dijkstra.Source(0), dijkstra.WithReturnPath())
	require.NoError(t, err)
	require.Equal(t, []int64{0, 1, 2, 3, 4, 4, 5}, dist)
	require.Equal(t, core.Vertex(2), prev[3])
	require.Equal(t, core.Vertex(3), prev[5])
}

// ----------------------------------------------------------------------
// 3. Directed graph
// ----------------------------------------------------------------------

func TestRun_Directed_DoesNotWalkBackward(t *testing.T) {
	g := mustGraph(t, 4)
	require.NoError(t, g.AddEdge(0, 1, 2))
	require.NoError(t, g.AddEdge(0, 2, 1))
	require.NoError(t, g.AddEdge(2, 1, 1))
	require.NoError(t, g.AddEdge(1, 3, 3))
	require.NoError(t, g.AddEdge(2, 3, 5))

	dist, prev, err := dijkstra.Run(g, dijkstra.Source(0))
	require.NoError(t, err)
	require.Equal(t, int64(1), dist[2])
	require.Equal(t, int64(2), dist[1]) // 0->1 and 0->2->1 both cost 2
	require.Equal(t, int64(5), dist[3]) // via 1->3 (2+3); 2->3 would cost 1+5
	require.Nil(t, prev)
}

// ----------------------------------------------------------------------
// 4. MaxDistance
// ----------------------------------------------------------------------

func TestRun_MaxDistanceLimits(t *testing.T) {
	g := mustGraph(t, 4)
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(1, 2, 1))
	require.NoError(t, g.AddEdge(2, 3, 1))

	dist, _, err := dijkstra.Run(g, dijkstra.Source(0), dijkstra.WithMaxDistance(1))
	require.NoError(t, err)
	require.Equal(t, int64(0), dist[0])
	require.Equal(t, int64(1), dist[1])
	require.Equal(t, int64(math.MaxInt32), dist[2])
	require.Equal(t, int64(math.MaxInt32), dist[3])
}

func TestRun_MaxDistanceZero(t *testing.T) {
	g := mustGraph(t, 2)
	require.NoError(t, g.AddEdge(0, 1, 1))

	dist, _, err := dijkstra.Run(g, dijkstra.Source(0), dijkstra.WithMaxDistance(0))
	require.NoError(t, err)
	require.Equal(t, int64(0), dist[0])
	require.Equal(t, int64(math.MaxInt32), dist[1])
}

// ----------------------------------------------------------------------
// 5. InfEdgeThreshold
// ----------------------------------------------------------------------

func TestRun_InfThreshold_DefaultAllowsEverything(t *testing.T) {
	g := mustGraph(t, 3)
	require.NoError(t, g.AddEdge(0, 1, 10))
	require.NoError(t, g.AddEdge(1, 2, 20))

	dist, _, err := dijkstra.Run(g, dijkstra.Source(0))
	require.NoError(t, err)
	require.Equal(t, int64(30), dist[2])
}

func TestRun_InfThresholdStopsHeavyEdge(t *testing.T) {
	g := mustGraph(t, 3)
	require.NoError(t, g.AddEdge(0, 1, 2))
	require.NoError(t, g.AddEdge(1, 2, 4))
	require.NoError(t, g.AddEdge(0, 2, 10))

	dist, _, err := dijkstra.Run(g, dijkstra.Source(0), dijkstra.WithInfEdgeThreshold(5))
	require.NoError(t, err)
	require.Equal(t, int64(6), dist[2])
}

// ----------------------------------------------------------------------
// 6. Edge cases
// ----------------------------------------------------------------------

func TestRun_SingleVertex(t *testing.T) {
	g := mustGraph(t, 1)
	dist, prev, err := dijkstra.Run(g, dijkstra.Source(0), dijkstra.WithReturnPath())
	require.NoError(t, err)
	require.Equal(t, []int64{0}, dist)
	require.Equal(t, core.Vertex(-1), prev[0])
}
