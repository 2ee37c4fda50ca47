package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Errors reported by BFS and PathTo.
var (
	// ErrStartVertexNotFound: the graph has no vertex with the start ID.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil: BFS was handed a nil *core.Graph.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation: an Option carried an unusable value.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNoPath: PathTo was asked for a vertex the traversal never reached.
	ErrNoPath = errors.New("bfs: no path")
)

// Option adjusts a traversal. Bad values are remembered and reported by
// BFS as ErrOptionViolation rather than panicking.
type Option func(*BFSOptions)

// BFSOptions is the resolved configuration of one traversal.
type BFSOptions struct {
	// Ctx is checked before each dequeue.
	Ctx context.Context

	// OnVisit sees each vertex as it leaves the frontier; returning an
	// error stops the walk.
	OnVisit func(id string, depth int) error

	// MaxDepth bounds discovery depth; 0 is unbounded.
	MaxDepth int

	// StopAt names a vertex whose visit ends the walk.
	StopAt string

	err error
}

// DefaultOptions is an unbounded walk with a no-op visit hook.
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:     context.Background(),
		OnVisit: func(id string, depth int) error { return nil },
	}
}

// WithContext attaches ctx; a nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs the visit hook.
func WithOnVisit(fn func(id string, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search past depth d. Zero means no limit;
// a negative d is an ErrOptionViolation.
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: max depth %d < 0", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithStopAt ends the traversal as soon as id is visited. Depth and Parent
// are exact for every vertex visited up to that point.
func WithStopAt(id string) Option {
	return func(o *BFSOptions) { o.StopAt = id }
}

// BFSResult holds the outcome of a traversal.
//
//	Order:  vertices in visit sequence.
//	Depth:  distance in edges from the start, for every discovered vertex.
//	Parent: predecessor in the BFS tree; the start has no entry.
type BFSResult struct {
	Order  []string
	Depth  map[string]int
	Parent map[string]string
}

// PathTo follows Parent links back from dest and returns the vertices
// start first. Returns ErrNoPath if dest was not reached.
func (r *BFSResult) PathTo(dest string) ([]string, error) {
	d, ok := r.Depth[dest]
	if !ok {
		return nil, fmt.Errorf("%w to %q", ErrNoPath, dest)
	}
	path := make([]string, d+1)
	path[d] = dest
	for i := d; i > 0; i-- {
		path[i-1] = r.Parent[path[i]]
	}

	return path, nil
}
