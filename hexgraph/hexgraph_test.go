package hexgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hexworm/board"
	"github.com/katalvlaran/hexworm/hex"
	"github.com/katalvlaran/hexworm/hexgraph"
)

func TestNew_NilBoard(t *testing.T) {
	_, err := hexgraph.New(nil)
	require.ErrorIs(t, err, hexgraph.ErrNilBoard)
}

func TestToCoreGraph_Spiral(t *testing.T) {
	b, err := board.New(hex.Coord{}.Spiral(1), hex.Coord{}, hex.Axial(1, 0))
	require.NoError(t, err)
	hg, err := hexgraph.New(b)
	require.NoError(t, err)

	g := hg.Graph()
	assert.Equal(t, 7, g.VertexCount())
	// Six spokes from the center plus six rim edges.
	assert.Equal(t, 12, g.EdgeCount())
	assert.True(t, g.HasEdge("0,0", "1,0"))
	assert.True(t, g.HasEdge("1,0", "0,0"))
	assert.False(t, g.HasEdge("1,0", "-1,0"))

	q, ok := g.VertexMetadata("-1,1", hexgraph.MetaQ)
	require.True(t, ok)
	assert.Equal(t, -1, q)

	assert.Equal(t, 1, hg.Islands())
	assert.True(t, hg.SameIsland(hex.Axial(-1, 1), hex.Axial(1, -1)))
}

func TestConnectedComponents(t *testing.T) {
	// Two corridors with a one-cell gap between (3,0) and (5,0).
	b, err := board.Parse("A***-***X")
	require.NoError(t, err)
	hg, err := hexgraph.New(b)
	require.NoError(t, err)

	comps := hg.ConnectedComponents()
	require.Len(t, comps, 2)
	assert.Len(t, comps[0], 4)
	assert.Len(t, comps[1], 4)
	assert.Equal(t, hex.Axial(0, 0), comps[0][0])

	assert.False(t, hg.SameIsland(b.Start(), b.Goal()))
	assert.Equal(t, 0, hg.IslandOf(hex.Axial(3, 0)))
	assert.Equal(t, 1, hg.IslandOf(hex.Axial(5, 0)))
	assert.Equal(t, -1, hg.IslandOf(hex.Axial(4, 0)))
	assert.False(t, hg.SameIsland(hex.Axial(4, 0), hex.Axial(4, 0)))

	island, err := hg.Component(1)
	require.NoError(t, err)
	assert.Contains(t, island, b.Goal())
	_, err = hg.Component(2)
	require.ErrorIs(t, err, hexgraph.ErrComponentIndex)

	// Callers get copies.
	comps[0][0] = hex.Axial(99, 99)
	assert.Equal(t, hex.Axial(0, 0), hg.ConnectedComponents()[0][0])
}

func TestPremadeLevelsAreSingleIslands(t *testing.T) {
	for n := 1; n <= board.PremadeCount; n++ {
		b, err := board.Premade(n)
		require.NoError(t, err)
		hg, err := hexgraph.New(b)
		require.NoError(t, err)
		assert.True(t, hg.SameIsland(b.Start(), b.Goal()), "level %d", n)
	}
}
