package board

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/katalvlaran/hexworm/hex"
)

// Map characters shared by Dump and Parse.
const (
	CharCell  = '*'
	CharStart = 'A'
	CharGoal  = 'X'
	CharEmpty = '-'
	CharVoid  = '.'
)

// Sentinel errors for char-map parsing.
var (
	// ErrBadMapChar indicates a rune that is not a map character.
	ErrBadMapChar = errors.New("board: unexpected map character")

	// ErrMissingStart indicates a map without a start marker.
	ErrMissingStart = errors.New("board: map has no start marker")

	// ErrMissingGoal indicates a map without a goal marker.
	ErrMissingGoal = errors.New("board: map has no goal marker")

	// ErrDuplicateMarker indicates more than one start or goal marker.
	ErrDuplicateMarker = errors.New("board: duplicate start or goal marker")
)

// Dump writes a textual picture of the cells within radius of the start.
//
// One line per axial row r, top to bottom in increasing r; each line is
// indented by its row index so the rows shear into a hex layout. Cells are
// marked X (goal), A (start), * (valid) or - (empty).
func (b *Board) Dump(w io.Writer, radius int) error {
	bw := bufio.NewWriter(w)
	sq, sr := b.start.Q(), b.start.R()
	for i, r := 0, sr-radius; r <= sr+radius; i, r = i+1, r+1 {
		row := make([]string, 0, 2*radius+1)
		for q := sq - radius; q <= sq+radius; q++ {
			row = append(row, string(b.charAt(hex.Axial(q, r))))
		}
		if _, err := fmt.Fprintf(bw, "%s%s\n", strings.Repeat(" ", i), strings.Join(row, " ")); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// String dumps the whole board (radius Radius()).
func (b *Board) String() string {
	var sb strings.Builder
	_ = b.Dump(&sb, b.Radius())

	return sb.String()
}

func (b *Board) charAt(c hex.Coord) rune {
	switch {
	case !b.Contains(c):
		return CharEmpty
	case c == b.goal:
		return CharGoal
	case c == b.start:
		return CharStart
	default:
		return CharCell
	}
}

// Parse reads a char map: line index is r, rune index is q. Whitespace is
// ignored, so the output of Dump parses back into a translated copy of the
// board. Blank lines are skipped without consuming a row.
//
// Returns ErrBadMapChar, ErrMissingStart, ErrMissingGoal or
// ErrDuplicateMarker.
func Parse(text string) (*Board, error) {
	bld := NewBuilder()
	var start, goal hex.Coord
	var hasStart, hasGoal bool

	r := 0
	for lineNo, line := range strings.Split(text, "\n") {
		line = strings.Map(func(c rune) rune {
			if unicode.IsSpace(c) {
				return -1
			}
			return c
		}, line)
		if line == "" {
			continue
		}
		for q, ch := range []rune(line) {
			c := hex.Axial(q, r)
			switch ch {
			case CharCell:
				bld.Add(c)
			case CharStart:
				if hasStart {
					return nil, fmt.Errorf("%w: line %d", ErrDuplicateMarker, lineNo+1)
				}
				start, hasStart = c, true
				bld.Add(c)
			case CharGoal:
				if hasGoal {
					return nil, fmt.Errorf("%w: line %d", ErrDuplicateMarker, lineNo+1)
				}
				goal, hasGoal = c, true
				bld.Add(c)
			case CharEmpty, CharVoid:
			default:
				return nil, fmt.Errorf("%w: %q at line %d", ErrBadMapChar, ch, lineNo+1)
			}
		}
		r++
	}

	if !hasStart {
		return nil, ErrMissingStart
	}
	if !hasGoal {
		return nil, ErrMissingGoal
	}

	return bld.Build(start, goal)
}
