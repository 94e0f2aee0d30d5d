// File: types.go
// Role: options, errors and result types for simple-path enumeration.
package paths

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/antennas/core"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed.
	ErrGraphNil = errors.New("paths: graph is nil")

	// ErrVertexNotFound indicates that the origin or destination is absent.
	ErrVertexNotFound = errors.New("paths: vertex not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("paths: invalid option supplied")

	// ErrStop may be returned by a Walk callback to end enumeration early.
	// Walk itself then returns nil.
	ErrStop = errors.New("paths: stop")
)

// Point is a grid coordinate.
type Point struct {
	X, Y int
}

// Path is a simple path: distinct vertices in visit order, each adjacent to
// the next.
type Path []core.Vertex

// Len returns the number of vertices on the path.
func (p Path) Len() int { return len(p) }

// Points returns the coordinates of the path in visit order.
func (p Path) Points() []Point {
	out := make([]Point, len(p))
	for i, v := range p {
		out[i] = Point{X: v.X, Y: v.Y}
	}

	return out
}

// String renders the path as "(x,y) -> (x,y) -> ...".
func (p Path) String() string {
	var sb strings.Builder
	for i, v := range p {
		if i > 0 {
			sb.WriteString(" -> ")
		}
		fmt.Fprintf(&sb, "(%d,%d)", v.X, v.Y)
	}

	return sb.String()
}

// Option configures enumeration behavior.
type Option func(*Options)

// Options holds enumeration parameters.
type Options struct {
	// Ctx allows cancellation; checked once per expanded vertex.
	Ctx context.Context

	// MaxPaths, if > 0, stops after that many paths have been emitted.
	MaxPaths int

	// MaxLength, if > 0, prunes branches longer than that many vertices.
	MaxLength int

	err error
}

// DefaultOptions returns unlimited enumeration under a background context.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets the cancellation context. A nil context is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxPaths caps the number of emitted paths; 0 means unlimited.
func WithMaxPaths(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxPaths cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxPaths = n
	}
}

// WithMaxLength caps path length in vertices; 0 means unlimited.
func WithMaxLength(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxLength cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxLength = n
	}
}
