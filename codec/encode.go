// File: encode.go
// Role: graph → binary layout.
package codec

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/katalvlaran/antennas/core"
)

// encoder writes fixed-width fields and keeps the first write error.
type encoder struct {
	w     *bufio.Writer
	order binary.ByteOrder
	buf   [4]byte
	err   error
}

func (e *encoder) int32(v int) {
	if e.err != nil {
		return
	}
	e.order.PutUint32(e.buf[:], uint32(int32(v)))
	_, e.err = e.w.Write(e.buf[:])
}

func (e *encoder) byte(b byte) {
	if e.err != nil {
		return
	}
	e.err = e.w.WriteByte(b)
}

// Encode writes g to w.
//
// Implementation:
//   - Stage 1: vertex count, then each vertex (x, y, frequency) in store order.
//   - Stage 2: for each vertex in the same order, its neighbor count and the
//     coordinates of its neighbors in adjacency order.
//
// Errors:
//   - ErrGraphNil, ErrOptionViolation.
//   - Write errors from w, wrapped.
//
// Complexity: O(V + E) time, O(1) extra space beyond the buffered writer.
func Encode(w io.Writer, g *core.Graph, opts ...Option) error {
	if g == nil {
		return ErrGraphNil
	}
	o, err := buildOptions(opts)
	if err != nil {
		return err
	}

	e := &encoder{w: bufio.NewWriter(w), order: o.ByteOrder}
	vs := g.Vertices()
	e.int32(len(vs))
	for _, v := range vs {
		e.int32(v.X)
		e.int32(v.Y)
		e.byte(byte(v.Frequency))
	}
	for _, v := range vs {
		nbrs, err := g.NeighborVertices(v.ID)
		if err != nil {
			return fmt.Errorf("codec: neighbors of %v: %w", v, err)
		}
		e.int32(len(nbrs))
		for _, nb := range nbrs {
			e.int32(nb.X)
			e.int32(nb.Y)
		}
	}
	if e.err != nil {
		return fmt.Errorf("codec: write: %w", e.err)
	}
	if err = e.w.Flush(); err != nil {
		return fmt.Errorf("codec: flush: %w", err)
	}

	return nil
}
