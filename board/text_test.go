package board_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hexworm/board"
	"github.com/katalvlaran/hexworm/hex"
)

func threeCells(t *testing.T) *board.Board {
	t.Helper()
	b, err := board.New(
		[]hex.Coord{hex.Axial(0, 0), hex.Axial(1, 0), hex.Axial(0, 1)},
		hex.Axial(0, 0), hex.Axial(1, 0),
	)
	require.NoError(t, err)
	return b
}

func TestDump(t *testing.T) {
	b := threeCells(t)
	assert.Equal(t, "- - -\n - A X\n  - * -\n", b.String())

	var buf bytes.Buffer
	require.NoError(t, b.Dump(&buf, 0))
	assert.Equal(t, "A\n", buf.String())
}

// A NorthEast neighbor is drawn on the row above, half a cell right.
func TestDump_NorthEastIsUpRight(t *testing.T) {
	goal := hex.Coord{}.Neighbor(hex.NorthEast)
	b, err := board.New([]hex.Coord{{}, goal}, hex.Coord{}, goal)
	require.NoError(t, err)
	assert.Equal(t, "- - X\n - A -\n  - - -\n", b.String())
}

func TestDump_GoalOnStart(t *testing.T) {
	b, err := board.New([]hex.Coord{{}}, hex.Coord{}, hex.Coord{})
	require.NoError(t, err)
	assert.Equal(t, "X\n", b.String())
}

func TestParse_RoundTrip(t *testing.T) {
	b := threeCells(t)
	parsed, err := board.Parse(b.String())
	require.NoError(t, err)

	assert.Equal(t, b.Len(), parsed.Len())
	// Parse anchors the map at (0,0), so the copy is translated by (1,1).
	assert.Equal(t, hex.Axial(1, 1), parsed.Start())
	assert.Equal(t, hex.Axial(2, 1), parsed.Goal())
	assert.True(t, parsed.Contains(hex.Axial(1, 2)))
	assert.Equal(t, b.String(), parsed.String())
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		text string
		want error
	}{
		{"BadChar", "A?X", board.ErrBadMapChar},
		{"NoStart", "*X", board.ErrMissingStart},
		{"NoGoal", "A*", board.ErrMissingGoal},
		{"TwoStarts", "AX\nA*", board.ErrDuplicateMarker},
		{"TwoGoals", "AXX", board.ErrDuplicateMarker},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := board.Parse(tc.text)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestParse_IgnoresBlankLinesAndVoid(t *testing.T) {
	b, err := board.Parse("\n\n  . . .\n\n  . A *\n . . X\n")
	require.NoError(t, err)
	assert.Equal(t, 3, b.Len())
	assert.Equal(t, hex.Axial(1, 1), b.Start())
	assert.Equal(t, hex.Axial(2, 2), b.Goal())
}

func TestPremade(t *testing.T) {
	cases := []struct {
		level       int
		cells       int
		start, goal hex.Coord
	}{
		{1, 22, hex.Axial(2, 2), hex.Axial(6, 4)},
		{2, 19, hex.Axial(1, 2), hex.Axial(6, 7)},
		{3, 20, hex.Axial(1, 1), hex.Axial(6, 6)},
	}
	require.Equal(t, len(cases), board.PremadeCount)
	for _, tc := range cases {
		b, err := board.Premade(tc.level)
		require.NoError(t, err, "level %d", tc.level)
		assert.Equal(t, tc.cells, b.Len(), "level %d", tc.level)
		assert.Equal(t, tc.start, b.Start(), "level %d", tc.level)
		assert.Equal(t, tc.goal, b.Goal(), "level %d", tc.level)
	}

	for _, n := range []int{0, -1, board.PremadeCount + 1} {
		_, err := board.Premade(n)
		assert.ErrorIs(t, err, board.ErrUnknownLevel)
	}
}
