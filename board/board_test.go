package board_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hexworm/board"
	"github.com/katalvlaran/hexworm/hex"
)

func TestNew_Validation(t *testing.T) {
	origin := hex.Axial(0, 0)
	east := hex.Axial(1, 0)

	_, err := board.New(nil, origin, origin)
	require.ErrorIs(t, err, board.ErrEmptyBoard)

	_, err = board.New([]hex.Coord{origin}, east, origin)
	require.ErrorIs(t, err, board.ErrStartNotOnBoard)

	_, err = board.New([]hex.Coord{origin}, origin, east)
	require.ErrorIs(t, err, board.ErrGoalNotOnBoard)

	b, err := board.New([]hex.Coord{origin, east, east}, origin, east)
	require.NoError(t, err)
	assert.Equal(t, 2, b.Len())
	assert.Equal(t, origin, b.Start())
	assert.Equal(t, east, b.Goal())
	assert.True(t, b.Contains(east))
	assert.False(t, b.Contains(hex.Axial(2, 0)))
}

func TestNew_SingleCell(t *testing.T) {
	b, err := board.New([]hex.Coord{{}}, hex.Coord{}, hex.Coord{})
	require.NoError(t, err)
	assert.Equal(t, 1, b.Len())
	assert.Equal(t, 0, b.Radius())
}

func TestBuilder(t *testing.T) {
	bld := board.NewBuilder()
	bld.Add(hex.Coord{}.Ring(1)...)
	bld.Add(hex.Coord{}, hex.Coord{})
	assert.Equal(t, 7, bld.Len())
	assert.True(t, bld.Has(hex.Axial(-1, 1)))

	b, err := bld.Build(hex.Coord{}, hex.Axial(1, 0))
	require.NoError(t, err)
	assert.Equal(t, 7, b.Len())
	assert.Equal(t, 1, b.Radius())
}

func TestBuilder_ReusableAfterBuild(t *testing.T) {
	bld := board.NewBuilder()
	bld.Add(hex.Axial(0, 0), hex.Axial(1, 0))
	first, err := bld.Build(hex.Axial(0, 0), hex.Axial(1, 0))
	require.NoError(t, err)
	assert.Equal(t, 0, bld.Len())

	require.NotPanics(t, func() { bld.Add(hex.Axial(5, 5)) })
	assert.Equal(t, 1, bld.Len())
	assert.False(t, bld.Has(hex.Axial(0, 0)))

	second, err := bld.Build(hex.Axial(5, 5), hex.Axial(5, 5))
	require.NoError(t, err)
	assert.Equal(t, 1, second.Len())
	assert.Equal(t, 2, first.Len())
	assert.False(t, first.Contains(hex.Axial(5, 5)))
}

func TestCells_OffsetOrder(t *testing.T) {
	cells := hex.Coord{}.Spiral(2)
	b, err := board.New(cells, hex.Coord{}, hex.Coord{})
	require.NoError(t, err)

	got := b.Cells()
	require.Len(t, got, len(cells))
	for i := 1; i < len(got); i++ {
		pc, pr := got[i-1].Offset()
		c, r := got[i].Offset()
		assert.True(t, pr < r || (pr == r && pc < c), "cells %v and %v out of order", got[i-1], got[i])
	}
}
