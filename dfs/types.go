// Package dfs defines types and options for depth-first traversal of an
// antenna graph: cancellation, a pre-order visit hook and depth limiting.
package dfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/antennas/core"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to DFS.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that no vertex matches the requested
	// (x, y, frequency) start.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dfs: invalid option supplied")
)

// Option configures optional behavior of DFS traversal.
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS traversal.
type DFSOptions struct {
	// Ctx allows cancellation; checked once per visited vertex.
	Ctx context.Context

	// OnVisit, if non-nil, is invoked when a vertex is marked visited
	// (pre-order). Returning an error aborts traversal with that error.
	OnVisit func(v core.Vertex, depth int) error

	// MaxDepth, if non-negative, limits recursion to the given depth.
	// A depth of 0 visits only the start vertex. Default is -1 (no limit).
	MaxDepth int

	err error
}

// DefaultOptions returns DFSOptions with a background context, no hook and
// no depth limit.
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext sets the Context for traversal. A nil context is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs fn as the pre-order hook.
func WithOnVisit(fn func(v core.Vertex, depth int) error) Option {
	return func(o *DFSOptions) {
		o.OnVisit = fn
	}
}

// WithMaxDepth limits traversal depth.
//
//	limit >= 0: stop descending below depth limit
//	limit < -1: invalid option → ErrOptionViolation
func WithMaxDepth(limit int) Option {
	return func(o *DFSOptions) {
		if limit < -1 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be below -1 (%d)", ErrOptionViolation, limit)
			return
		}
		o.MaxDepth = limit
	}
}

// DFSResult captures the outcome of a depth-first traversal.
type DFSResult struct {
	// Order records vertices in the sequence they were first visited (pre-order).
	Order []core.VertexID

	// Depth maps each visited vertex to its tree depth from the start.
	Depth map[core.VertexID]int

	// Parent maps each visited vertex to the vertex it was discovered from.
	// The start vertex is absent.
	Parent map[core.VertexID]core.VertexID
}

// Visited reports whether id was reached by the traversal.
func (r *DFSResult) Visited(id core.VertexID) bool {
	_, ok := r.Depth[id]

	return ok
}
