package dijkstra

import (
	"context"
	"errors"
	"math"
)

// Errors returned by Dijkstra, and the panic values of bad options.
var (
	ErrEmptySource     = errors.New("dijkstra: source vertex ID is empty")
	ErrNilGraph        = errors.New("dijkstra: graph is nil")
	ErrUnweightedGraph = errors.New("dijkstra: graph must be weighted")
	ErrVertexNotFound  = errors.New("dijkstra: source vertex not found in graph")
	ErrNegativeWeight  = errors.New("dijkstra: negative edge weight encountered")
	ErrBadMaxDistance  = errors.New("dijkstra: max distance must be non-negative")
)

// Options configures a Dijkstra run.
//
//	Source      starting vertex ID; required.
//	Target      if set, the run stops once Target's distance is final.
//	ReturnPath  return the predecessor map.
//	MaxDistance vertices farther than this are not explored.
//	Ctx         cancellation, checked once per extracted vertex.
type Options struct {
	Source      string
	Target      string
	ReturnPath  bool
	MaxDistance int64
	Ctx         context.Context
}

// Option adjusts Options.
type Option func(*Options)

// Source sets the starting vertex ID.
func Source(id string) Option {
	return func(o *Options) { o.Source = id }
}

// WithTarget stops the run as soon as the shortest distance to id is
// known. Vertices not finalized by then keep math.MaxInt64 or a tentative
// distance.
func WithTarget(id string) Option {
	return func(o *Options) { o.Target = id }
}

// WithReturnPath enables the predecessor map in the result.
func WithReturnPath() Option {
	return func(o *Options) { o.ReturnPath = true }
}

// WithMaxDistance caps explored distances. Panics on a negative value.
func WithMaxDistance(limit int64) Option {
	if limit < 0 {
		panic(ErrBadMaxDistance.Error())
	}
	return func(o *Options) { o.MaxDistance = limit }
}

// WithContext sets a context for cancellation. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// DefaultOptions returns Options for source with no caps, no target and a
// background context.
func DefaultOptions(source string) Options {
	return Options{
		Source:      source,
		MaxDistance: math.MaxInt64,
		Ctx:         context.Background(),
	}
}
