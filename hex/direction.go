package hex

import (
	"fmt"
	"strings"
)

// Direction is one of the six unit directions of a hex cell.
type Direction int

// The six directions in cyclic order. Adjacent values are adjacent
// directions; values three apart are opposite.
const (
	East Direction = iota
	SouthEast
	SouthWest
	West
	NorthWest
	NorthEast

	// NoDirection marks "no input resolved". It is not a valid argument
	// to Delta, Neighbor or Opposite.
	NoDirection Direction = -1
)

const directionCount = 6

// deltas maps each direction to its unit delta. The array length is
// checked by the compiler against directionCount.
var deltas = [directionCount]Coord{
	East:      Axial(1, 0),
	SouthEast: Axial(0, 1),
	SouthWest: Axial(-1, 1),
	West:      Axial(-1, 0),
	NorthWest: Axial(0, -1),
	NorthEast: Axial(1, -1),
}

var directionOrder = [directionCount]Direction{East, SouthEast, SouthWest, West, NorthWest, NorthEast}

// ringOrder is the edge sequence of Ring, counter to directionOrder.
var ringOrder = [directionCount]Direction{East, NorthEast, NorthWest, West, SouthWest, SouthEast}

var directionNames = [directionCount]string{"East", "SouthEast", "SouthWest", "West", "NorthWest", "NorthEast"}

var directionShort = [directionCount]string{"e", "se", "sw", "w", "nw", "ne"}

// Directions returns the six directions in cyclic order.
func Directions() []Direction {
	out := make([]Direction, directionCount)
	copy(out, directionOrder[:])

	return out
}

// Valid reports whether d is one of the six directions.
func (d Direction) Valid() bool {
	return d >= East && d <= NorthEast
}

// Delta returns the unit coordinate delta of d.
// Panics if d is not valid.
func (d Direction) Delta() Coord {
	if !d.Valid() {
		panic(fmt.Sprintf("hex: invalid direction %d", int(d)))
	}

	return deltas[d]
}

// Opposite returns the direction pointing the other way.
// Opposite is an involution: d.Opposite().Opposite() == d.
// Panics if d is not valid.
func (d Direction) Opposite() Direction {
	if !d.Valid() {
		panic(fmt.Sprintf("hex: invalid direction %d", int(d)))
	}

	return (d + directionCount/2) % directionCount
}

// String returns the full name of d, or "None" for NoDirection.
func (d Direction) String() string {
	if !d.Valid() {
		return "None"
	}

	return directionNames[d]
}

// ParseDirection accepts full names ("SouthEast") and short names ("se"),
// case-insensitively. Returns ErrBadDirection otherwise.
func ParseDirection(name string) (Direction, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i := 0; i < directionCount; i++ {
		if n == strings.ToLower(directionNames[i]) || n == directionShort[i] {
			return Direction(i), nil
		}
	}

	return NoDirection, fmt.Errorf("%w: %q", ErrBadDirection, name)
}

// DirectionBetween returns the direction d with from.Neighbor(d) == to.
// Returns ErrNotAdjacent if to-from is not a unit delta.
func DirectionBetween(from, to Coord) (Direction, error) {
	diff := to.Sub(from)
	for i, delta := range deltas {
		if diff == delta {
			return Direction(i), nil
		}
	}

	return NoDirection, fmt.Errorf("%w: %v, %v", ErrNotAdjacent, from, to)
}

// MustDirectionBetween is DirectionBetween that panics on non-adjacent cells.
func MustDirectionBetween(from, to Coord) Direction {
	d, err := DirectionBetween(from, to)
	if err != nil {
		panic(err)
	}

	return d
}
