package session

import (
	"unicode"

	"github.com/katalvlaran/hexworm/hex"
)

// KeyDirection maps the six movement keys to directions:
//
//	w e        NorthWest NorthEast
//	a   d   -> West      East
//	z x        SouthWest SouthEast
//
// Matching is case-insensitive; any other rune is NoDirection.
func KeyDirection(r rune) hex.Direction {
	switch unicode.ToLower(r) {
	case 'w':
		return hex.NorthWest
	case 'e':
		return hex.NorthEast
	case 'd':
		return hex.East
	case 'a':
		return hex.West
	case 'z':
		return hex.SouthWest
	case 'x':
		return hex.SouthEast
	default:
		return hex.NoDirection
	}
}
