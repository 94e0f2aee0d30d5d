// File: types.go
// Role: Cell, Bounds, sentinel errors and parser options.
package gridgraph

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/antennas/core"
)

// Sentinel errors for grid parsing.
var (
	// ErrLineTooLong indicates a line longer than Options.MaxLineLength.
	ErrLineTooLong = errors.New("gridgraph: line too long")

	// ErrInvalidCell indicates a byte that cannot label an antenna.
	ErrInvalidCell = errors.New("gridgraph: invalid cell")

	// ErrTooLarge indicates a graph whose extent exceeds MaxRenderCells.
	ErrTooLarge = errors.New("gridgraph: grid too large to render")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("gridgraph: invalid option supplied")
)

// Empty marks a cell without an antenna.
const Empty = '.'

// MaxRenderCells bounds the rows×cols area Render will draw.
const MaxRenderCells = 1 << 24

// DefaultMaxLineLength is the longest line accepted by default (1 MiB).
const DefaultMaxLineLength = 1 << 20

// Cell is one antenna read from a grid.
type Cell struct {
	X, Y      int // row, column
	Frequency core.Frequency
}

// String formats the cell as "(x, y) [f]".
func (c Cell) String() string {
	return fmt.Sprintf("(%d, %d) [%c]", c.X, c.Y, c.Frequency)
}

// Bounds is the extent of a parsed grid.
type Bounds struct {
	// Rows counts lines, including empty ones.
	Rows int

	// Cols is the widest row, in columns ('.' and antennas).
	Cols int
}

// Option configures parsing.
type Option func(*Options)

// Options holds parser parameters.
type Options struct {
	// MaxLineLength bounds a single line in bytes.
	MaxLineLength int

	// Graph options applied to the graph built by Parse.
	Graph []core.GraphOption

	err error
}

// DefaultOptions returns the default parser options.
func DefaultOptions() Options {
	return Options{MaxLineLength: DefaultMaxLineLength}
}

// WithMaxLineLength sets the longest accepted line. n must be positive.
func WithMaxLineLength(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: MaxLineLength must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxLineLength = n
	}
}

// WithGraphOptions forwards options to core.NewGraph in Parse.
func WithGraphOptions(opts ...core.GraphOption) Option {
	return func(o *Options) {
		o.Graph = append(o.Graph, opts...)
	}
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}
