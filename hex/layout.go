package hex

import "math"

// Point is a position in drawing space.
type Point struct {
	X, Y float64
}

// Layout projects cells to drawing positions with a pointy-top
// orientation. Size is the corner-to-center radius per axis; Origin is the
// drawing position of the origin cell.
//
// The core never uses Layout; it exists for renderers.
type Layout struct {
	Size   Point
	Origin Point
}

// ToPixel returns the center of c in drawing space.
func (l Layout) ToPixel(c Coord) Point {
	q, r := float64(c.q), float64(c.r)
	x := (math.Sqrt(3)*q + math.Sqrt(3)/2*r) * l.Size.X
	y := (1.5 * r) * l.Size.Y

	return Point{X: x + l.Origin.X, Y: y + l.Origin.Y}
}

// FromPixel returns the cell containing p.
func (l Layout) FromPixel(p Point) Coord {
	px := (p.X - l.Origin.X) / l.Size.X
	py := (p.Y - l.Origin.Y) / l.Size.Y
	q := math.Sqrt(3)/3*px - 1.0/3*py
	r := 2.0 / 3 * py

	return round(q, r, -q-r)
}

// round snaps fractional cube coordinates to the nearest cell, fixing the
// component with the largest rounding error so that q+r+s stays zero.
func round(fq, fr, fs float64) Coord {
	q, r, s := math.Round(fq), math.Round(fr), math.Round(fs)
	dq, dr, ds := math.Abs(q-fq), math.Abs(r-fr), math.Abs(s-fs)
	switch {
	case dq > dr && dq > ds:
		q = -r - s
	case dr > ds:
		r = -q - s
	default:
		s = -q - r
	}

	return Coord{q: int(q), r: int(r), s: int(s)}
}
