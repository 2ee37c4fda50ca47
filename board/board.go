// Package board defines the immutable level a worm walks on: a set of
// valid cells plus a start cell and a goal cell.
//
// Boards are built once per level (by levelgen, Parse or Premade) and are
// never mutated afterwards; every method is a read-only query and is safe
// for concurrent use.
package board

import (
	"errors"
	"fmt"
	"sort"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/hexworm/hex"
)

// Sentinel errors for board construction.
var (
	// ErrEmptyBoard indicates a board without cells.
	ErrEmptyBoard = errors.New("board: no cells")

	// ErrStartNotOnBoard indicates a start cell outside the valid set.
	ErrStartNotOnBoard = errors.New("board: start cell is not on the board")

	// ErrGoalNotOnBoard indicates a goal cell outside the valid set.
	ErrGoalNotOnBoard = errors.New("board: goal cell is not on the board")
)

// Board is a set of uniform-cost cells with a distinguished start and goal.
type Board struct {
	cells mapset.Set[hex.Coord]
	start hex.Coord
	goal  hex.Coord
}

// New builds a Board from cells. Duplicate cells are merged.
// Returns ErrEmptyBoard, ErrStartNotOnBoard or ErrGoalNotOnBoard.
// Complexity: O(len(cells)).
func New(cells []hex.Coord, start, goal hex.Coord) (*Board, error) {
	if len(cells) == 0 {
		return nil, ErrEmptyBoard
	}
	set := mapset.New[hex.Coord]()
	for _, c := range cells {
		set.Put(c)
	}

	return fromSet(set, start, goal)
}

// fromSet takes ownership of set.
func fromSet(set mapset.Set[hex.Coord], start, goal hex.Coord) (*Board, error) {
	if set.Size() == 0 {
		return nil, ErrEmptyBoard
	}
	if !set.Has(start) {
		return nil, fmt.Errorf("%w: %v", ErrStartNotOnBoard, start)
	}
	if !set.Has(goal) {
		return nil, fmt.Errorf("%w: %v", ErrGoalNotOnBoard, goal)
	}

	return &Board{cells: set, start: start, goal: goal}, nil
}

// Builder accumulates cells for a Board. The zero value is not usable;
// call NewBuilder.
type Builder struct {
	cells mapset.Set[hex.Coord]
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{cells: mapset.New[hex.Coord]()}
}

// Add inserts cells; re-adding a cell is a no-op.
func (b *Builder) Add(cells ...hex.Coord) {
	for _, c := range cells {
		b.cells.Put(c)
	}
}

// Has reports whether c was added.
func (b *Builder) Has(c hex.Coord) bool { return b.cells.Has(c) }

// Len returns the number of distinct cells added so far.
func (b *Builder) Len() int { return b.cells.Size() }

// Build freezes the accumulated cells into a Board and leaves the Builder
// empty and ready for the next board.
func (b *Builder) Build(start, goal hex.Coord) (*Board, error) {
	set := b.cells
	b.cells = mapset.New[hex.Coord]()

	return fromSet(set, start, goal)
}

// Contains reports whether c is a valid cell.
func (b *Board) Contains(c hex.Coord) bool {
	return b.cells.Has(c)
}

// Start returns the start cell.
func (b *Board) Start() hex.Coord { return b.start }

// Goal returns the goal cell.
func (b *Board) Goal() hex.Coord { return b.goal }

// Len returns the number of valid cells.
func (b *Board) Len() int { return b.cells.Size() }

// Cells returns every valid cell in offset row-major order (row, then
// column), the order renderers draw in.
// Complexity: O(V log V).
func (b *Board) Cells() []hex.Coord {
	out := make([]hex.Coord, 0, b.cells.Size())
	b.cells.Each(func(c hex.Coord) {
		out = append(out, c)
	})
	sort.Slice(out, func(i, j int) bool {
		ci, ri := out[i].Offset()
		cj, rj := out[j].Offset()
		if ri != rj {
			return ri < rj
		}
		return ci < cj
	})

	return out
}

// Radius returns the largest distance from the start cell to any cell.
func (b *Board) Radius() int {
	radius := 0
	b.cells.Each(func(c hex.Coord) {
		radius = max(radius, hex.Distance(b.start, c))
	})

	return radius
}
