// File: types.go
// Role: sentinel errors, limits and functional options.
package codec

import (
	"encoding/binary"
	"errors"
	"fmt"
)

var (
	// ErrGraphNil is returned when Encode is given a nil graph.
	ErrGraphNil = errors.New("codec: graph is nil")

	// ErrMalformed indicates input that does not follow the layout.
	ErrMalformed = errors.New("codec: malformed input")

	// ErrAdjacencyMismatch indicates an adjacency block that disagrees with
	// the edges implied by the vertex section.
	ErrAdjacencyMismatch = errors.New("codec: adjacency mismatch")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("codec: invalid option supplied")
)

// MaxVertices bounds the vertex count accepted by Decode.
const MaxVertices = 1 << 24

// maxPrealloc caps slice preallocation driven by counts read from input.
const maxPrealloc = 4096

// Option configures Encode and Decode.
type Option func(*Options)

// Options holds codec parameters.
type Options struct {
	// ByteOrder of every integer field. Default binary.LittleEndian.
	ByteOrder binary.ByteOrder

	// ExplicitAdjacency makes Decode take edges from the adjacency section
	// instead of deriving them from frequencies. Ignored by Encode.
	ExplicitAdjacency bool

	err error
}

// DefaultOptions returns little-endian, derived-adjacency options.
func DefaultOptions() Options {
	return Options{ByteOrder: binary.LittleEndian}
}

// WithByteOrder selects the integer byte order, e.g. binary.BigEndian to
// exchange files with a big-endian writer.
func WithByteOrder(order binary.ByteOrder) Option {
	return func(o *Options) {
		if order == nil {
			o.err = fmt.Errorf("%w: nil byte order", ErrOptionViolation)
			return
		}
		o.ByteOrder = order
	}
}

// WithExplicitAdjacency restores edges verbatim from the adjacency section.
// Each listed coordinate must resolve to a same-frequency vertex and every
// edge must be listed on both endpoints.
func WithExplicitAdjacency() Option {
	return func(o *Options) { o.ExplicitAdjacency = true }
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}
