package creature

import (
	"fmt"

	"github.com/katalvlaran/hexworm/hex"
)

// Cells is the board membership query NextOnBoard validates against.
type Cells interface {
	Contains(c hex.Coord) bool
}

// Next returns the state reached from s under direction d, ignoring any
// board. It is pure: equal inputs give equal outputs.
//
// Panics if d is not a valid direction, or if s is a Flat whose cells are
// not adjacent. Both are programmer errors.
func Next(s State, d hex.Direction) State {
	delta := d.Delta()

	switch st := s.(type) {
	case Standing:
		return Flat{Head: st.Head.Add(delta.Scale(2)), Tail: st.Head.Add(delta)}
	case Flat:
		facing := st.Facing()
		switch d {
		case facing:
			return Standing{Head: st.Head.Add(delta)}
		case facing.Opposite():
			return Standing{Head: st.Tail.Add(delta)}
		default:
			return Flat{Head: st.Head.Add(delta), Tail: st.Tail.Add(delta)}
		}
	case Dead:
		return Dead{}
	default:
		panic(fmt.Sprintf("creature: unknown state %T", s))
	}
}

// NextOnBoard applies Next and returns Dead unless every occupied cell of
// the result is on the board.
func NextOnBoard(s State, d hex.Direction, cells Cells) State {
	next := Next(s, d)

	switch st := next.(type) {
	case Standing:
		if !cells.Contains(st.Head) {
			return Dead{}
		}
	case Flat:
		if !cells.Contains(st.Head) || !cells.Contains(st.Tail) {
			return Dead{}
		}
	case Dead:
	default:
		panic(fmt.Sprintf("creature: unknown state %T", next))
	}

	return next
}
