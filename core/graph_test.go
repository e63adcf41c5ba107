package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/msqueue/core"
)

func TestNewGraph_NegativeSize(t *testing.T) {
	_, err := core.NewGraph(-1)
	require.ErrorIs(t, err, core.ErrNegativeVertexCount)
}

func TestAddEdge_OutOfRange(t *testing.T) {
	g, err := core.NewGraph(2)
	require.NoError(t, err)

	require.ErrorIs(t, g.AddEdge(0, 5, 1), core.ErrVertexOutOfRange)
	require.ErrorIs(t, g.AddEdge(-1, 0, 1), core.ErrVertexOutOfRange)
}

func TestAddEdge_NonPositiveWeight(t *testing.T) {
	g, err := core.NewGraph(2)
	require.NoError(t, err)

	require.ErrorIs(t, g.AddEdge(0, 1, 0), core.ErrNonPositiveWeight)
	require.ErrorIs(t, g.AddEdge(0, 1, -3), core.ErrNonPositiveWeight)
}

func TestGraph_NeighborsAndCounts(t *testing.T) {
	g, err := core.NewGraph(3)
	require.NoError(t, err)

	require.NoError(t, g.AddEdge(0, 1, 5))
	require.NoError(t, g.AddEdge(0, 2, 7))
	require.NoError(t, g.AddEdge(1, 2, 1))

	require.Equal(t, 3, g.NumVertices())
	require.Equal(t, 3, g.NumEdges())
	require.ElementsMatch(t, []core.Edge{{To: 1, Weight: 5}, {To: 2, Weight: 7}}, g.Neighbors(0))
	require.Empty(t, g.Neighbors(2))
	require.Nil(t, g.Neighbors(99))
}
