package dijkstra_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hexworm/core"
	"github.com/katalvlaran/hexworm/dijkstra"
)

func weighted(t *testing.T, directed bool, edges ...struct {
	from, to string
	w        int64
}) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithWeighted(), core.WithDirected(directed))
	for _, e := range edges {
		_, err := g.AddEdge(e.from, e.to, e.w)
		require.NoError(t, err)
	}
	return g
}

type edge = struct {
	from, to string
	w        int64
}

func TestDijkstra_Validation(t *testing.T) {
	g := weighted(t, true, edge{"A", "B", 1})

	_, _, err := dijkstra.Dijkstra(g)
	require.ErrorIs(t, err, dijkstra.ErrEmptySource)

	_, _, err = dijkstra.Dijkstra(nil, dijkstra.Source("A"))
	require.ErrorIs(t, err, dijkstra.ErrNilGraph)

	plain := core.NewGraph()
	require.NoError(t, plain.AddVertex("A"))
	_, _, err = dijkstra.Dijkstra(plain, dijkstra.Source("A"))
	require.ErrorIs(t, err, dijkstra.ErrUnweightedGraph)

	_, _, err = dijkstra.Dijkstra(g, dijkstra.Source("Z"))
	require.ErrorIs(t, err, dijkstra.ErrVertexNotFound)

	neg := weighted(t, true, edge{"A", "B", -1})
	_, _, err = dijkstra.Dijkstra(neg, dijkstra.Source("A"))
	require.ErrorIs(t, err, dijkstra.ErrNegativeWeight)

	assert.Panics(t, func() { dijkstra.WithMaxDistance(-1) })
}

func TestDijkstra_ShortestPaths(t *testing.T) {
	g := weighted(t, true,
		edge{"A", "B", 4}, edge{"A", "C", 1}, edge{"C", "B", 2},
		edge{"B", "D", 1}, edge{"C", "D", 5}, edge{"E", "A", 1},
	)
	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithReturnPath())
	require.NoError(t, err)

	assert.Equal(t, int64(0), dist["A"])
	assert.Equal(t, int64(3), dist["B"])
	assert.Equal(t, int64(1), dist["C"])
	assert.Equal(t, int64(4), dist["D"])
	assert.Equal(t, int64(math.MaxInt64), dist["E"])

	assert.Equal(t, "C", prev["B"])
	assert.Equal(t, "B", prev["D"])
	assert.Equal(t, "", prev["A"])
	assert.Equal(t, "", prev["E"])
}

func TestDijkstra_NoPrevWithoutReturnPath(t *testing.T) {
	g := weighted(t, true, edge{"A", "B", 1})
	_, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	require.NoError(t, err)
	assert.Nil(t, prev)
}

func TestDijkstra_Undirected(t *testing.T) {
	g := weighted(t, false, edge{"A", "B", 2}, edge{"B", "C", 2})
	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source("C"))
	require.NoError(t, err)
	assert.Equal(t, int64(4), dist["A"])
}

func TestDijkstra_Caps(t *testing.T) {
	g := weighted(t, true, edge{"A", "B", 1}, edge{"B", "C", 1}, edge{"A", "C", 10})

	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithMaxDistance(1))
	require.NoError(t, err)
	assert.Equal(t, int64(1), dist["B"])
	assert.Equal(t, int64(math.MaxInt64), dist["C"])

	dist, _, err = dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithMaxDistance(2))
	require.NoError(t, err)
	assert.Equal(t, int64(2), dist["C"])
}

func TestDijkstra_Target(t *testing.T) {
	g := weighted(t, true, edge{"A", "B", 1}, edge{"B", "C", 1}, edge{"C", "D", 1})
	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithTarget("B"), dijkstra.WithReturnPath())
	require.NoError(t, err)
	assert.Equal(t, int64(1), dist["B"])
	assert.Equal(t, "A", prev["B"])
	// B was never relaxed.
	assert.Equal(t, int64(math.MaxInt64), dist["C"])
}

func TestDijkstra_TieBreakIsStable(t *testing.T) {
	g := weighted(t, true,
		edge{"A", "B", 1}, edge{"A", "C", 1},
		edge{"B", "D", 1}, edge{"C", "D", 1},
	)
	for i := 0; i < 10; i++ {
		_, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithReturnPath())
		require.NoError(t, err)
		assert.Equal(t, "B", prev["D"])
	}
}

func TestDijkstra_Cancelled(t *testing.T) {
	g := weighted(t, true, edge{"A", "B", 1})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}
