package hexgraph

import "errors"

var (
	// ErrNilBoard indicates New was called without a board.
	ErrNilBoard = errors.New("hexgraph: board is nil")
	// ErrComponentIndex indicates a requested component index is invalid.
	ErrComponentIndex = errors.New("hexgraph: component index out of range")
)
