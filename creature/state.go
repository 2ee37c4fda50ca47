// Package creature models the two-cell worm that walks a hex board.
//
// A worm is either Standing on one cell, lying Flat across two adjacent
// cells, or Dead. Moves alternate between stretching out and contracting:
//
//	Standing(h) --d--> Flat(h+2d, h+d)
//	Flat(h, t)  --d--> Standing(h+d)     if d faces tail→head
//	Flat(h, t)  --d--> Standing(t+d)     if d is the reverse
//	Flat(h, t)  --d--> Flat(h+d, t+d)    otherwise (a sideways roll)
//	Dead        --d--> Dead
//
// Next is the pure rule over the infinite plane. NextOnBoard applies Next
// and collapses any position that leaves the board to Dead.
package creature

import (
	"fmt"

	"github.com/katalvlaran/hexworm/hex"
)

// State is a sealed sum type: Standing, Flat or Dead.
//
// All variants are comparable values, so two States compare equal with ==
// exactly when they describe the same position, and States can key maps.
type State interface {
	// Key returns a stable identity string, unique per position.
	Key() string
	// Cells returns the occupied cells, head first.
	Cells() []hex.Coord
	fmt.Stringer

	sealed()
}

// Standing occupies exactly one cell.
type Standing struct {
	Head hex.Coord
}

// Flat occupies two adjacent cells. Head-Tail is a unit delta whenever the
// value was produced by Next.
type Flat struct {
	Head hex.Coord
	Tail hex.Coord
}

// Dead is the absorbing failure state.
type Dead struct{}

func (Standing) sealed() {}
func (Flat) sealed()     {}
func (Dead) sealed()     {}

// Key implements State.
func (s Standing) Key() string {
	return fmt.Sprintf("S%d,%d", s.Head.Q(), s.Head.R())
}

// Key implements State.
func (f Flat) Key() string {
	return fmt.Sprintf("F%d,%d>%d,%d", f.Tail.Q(), f.Tail.R(), f.Head.Q(), f.Head.R())
}

// Key implements State.
func (Dead) Key() string { return "D" }

// Cells implements State.
func (s Standing) Cells() []hex.Coord { return []hex.Coord{s.Head} }

// Cells implements State.
func (f Flat) Cells() []hex.Coord { return []hex.Coord{f.Head, f.Tail} }

// Cells implements State.
func (Dead) Cells() []hex.Coord { return nil }

func (s Standing) String() string { return "Standing" + s.Head.String() }

func (f Flat) String() string { return "Flat" + f.Head.String() + f.Tail.String() }

func (Dead) String() string { return "Dead" }

// Facing returns the direction from tail to head.
// Panics if the cells are not adjacent.
func (f Flat) Facing() hex.Direction {
	return hex.MustDirectionBetween(f.Tail, f.Head)
}

// IsDead reports whether s is the Dead state.
func IsDead(s State) bool {
	_, ok := s.(Dead)
	return ok
}

// IsStandingOn reports whether s is Standing on cell c.
func IsStandingOn(s State, c hex.Coord) bool {
	st, ok := s.(Standing)
	return ok && st.Head == c
}
