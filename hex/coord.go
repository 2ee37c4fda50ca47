package hex

import (
	"errors"
	"fmt"
)

// Sentinel errors for coordinate and direction operations.
var (
	// ErrInvalidCube indicates a cube triple with q+r+s != 0.
	ErrInvalidCube = errors.New("hex: cube coordinates must sum to zero")

	// ErrNotAdjacent indicates two cells that are not immediate neighbors.
	ErrNotAdjacent = errors.New("hex: unreachable positions")

	// ErrBadDirection indicates an unknown direction name.
	ErrBadDirection = errors.New("hex: unknown direction")
)

// Coord is a cube coordinate on a hexagonal grid.
//
// The zero value is the origin. Values are comparable and usable as map keys;
// equality is structural.
type Coord struct {
	q, r, s int
}

// Axial returns the cell at axial (q, r); s is derived as -q-r.
// Complexity: O(1).
func Axial(q, r int) Coord {
	return Coord{q: q, r: r, s: -q - r}
}

// NewCube returns the cell at cube (q, r, s).
// Returns ErrInvalidCube if q+r+s != 0.
// Complexity: O(1).
func NewCube(q, r, s int) (Coord, error) {
	if q+r+s != 0 {
		return Coord{}, fmt.Errorf("%w: (%d,%d,%d)", ErrInvalidCube, q, r, s)
	}

	return Coord{q: q, r: r, s: s}, nil
}

// MustCube is NewCube that panics on an invalid triple.
func MustCube(q, r, s int) Coord {
	c, err := NewCube(q, r, s)
	if err != nil {
		panic(err)
	}

	return c
}

// FromOffset converts even-row offset coordinates (col, row) to a Coord.
// The conversion is lossless: FromOffset(col, row).Offset() == (col, row).
func FromOffset(col, row int) Coord {
	// row + (row&1) is always even, so the division is exact for negatives too.
	return Axial(col-(row+(row&1))/2, row)
}

// Q returns the q component.
func (c Coord) Q() int { return c.q }

// R returns the r component.
func (c Coord) R() int { return c.r }

// S returns the s component.
func (c Coord) S() int { return c.s }

// Offset converts c to even-row offset coordinates (col, row).
func (c Coord) Offset() (col, row int) {
	return c.q + (c.r+(c.r&1))/2, c.r
}

// Add returns c+o component-wise.
func (c Coord) Add(o Coord) Coord {
	return Coord{q: c.q + o.q, r: c.r + o.r, s: c.s + o.s}
}

// Sub returns c-o component-wise.
func (c Coord) Sub(o Coord) Coord {
	return Coord{q: c.q - o.q, r: c.r - o.r, s: c.s - o.s}
}

// Scale returns c*n component-wise. Scaling a unit delta by 2 projects
// "two steps in a direction".
func (c Coord) Scale(n int) Coord {
	return Coord{q: c.q * n, r: c.r * n, s: c.s * n}
}

// Neighbor returns the adjacent cell in direction d.
// Panics if d is not one of the six directions.
func (c Coord) Neighbor(d Direction) Coord {
	return c.Add(d.Delta())
}

// Length returns the number of steps from the origin to c.
func (c Coord) Length() int {
	return (abs(c.q) + abs(c.r) + abs(c.s)) / 2
}

// Distance returns the number of steps between a and b.
func Distance(a, b Coord) int {
	return a.Sub(b).Length()
}

// Ring returns the cells at exactly radius steps from c.
//
// For radius 0 the result is [c]. For radius > 0 the walk starts at
// c + SouthWest*radius and follows East, NorthEast, NorthWest, West,
// SouthWest, SouthEast for radius steps each, yielding 6*radius cells.
// A negative radius yields nil.
// Complexity: O(radius).
func (c Coord) Ring(radius int) []Coord {
	switch {
	case radius < 0:
		return nil
	case radius == 0:
		return []Coord{c}
	}

	out := make([]Coord, 0, 6*radius)
	cur := c.Add(SouthWest.Delta().Scale(radius))
	for _, d := range ringOrder {
		for i := 0; i < radius; i++ {
			out = append(out, cur)
			cur = cur.Neighbor(d)
		}
	}

	return out
}

// Spiral returns c followed by every ring up to radius, innermost first.
// The result is duplicate-free and holds 1+3*radius*(radius+1) cells.
func (c Coord) Spiral(radius int) []Coord {
	if radius < 0 {
		return nil
	}
	out := make([]Coord, 0, 1+3*radius*(radius+1))
	for k := 0; k <= radius; k++ {
		out = append(out, c.Ring(k)...)
	}

	return out
}

// String renders c as "(q,r,s)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d,%d)", c.q, c.r, c.s)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
