// File: decode.go
// Role: binary layout → graph, with input validation and adjacency checks.
package codec

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/antennas/core"
)

// decoder reads fixed-width fields; every short read becomes ErrMalformed.
type decoder struct {
	r     *bufio.Reader
	order binary.ByteOrder
	buf   [4]byte
}

func (d *decoder) int32(what string) (int, error) {
	if _, err := io.ReadFull(d.r, d.buf[:]); err != nil {
		return 0, fmt.Errorf("%w: reading %s: %v", ErrMalformed, what, err)
	}

	return int(int32(d.order.Uint32(d.buf[:]))), nil
}

func (d *decoder) count(what string, limit int) (int, error) {
	n, err := d.int32(what)
	if err != nil {
		return 0, err
	}
	if n < 0 || n > limit {
		return 0, fmt.Errorf("%w: %s %d outside [0, %d]", ErrMalformed, what, n, limit)
	}

	return n, nil
}

// record is one entry of the vertex section.
type record struct {
	x, y int
	f    core.Frequency
}

// point is one adjacency coordinate.
type point struct{ x, y int }

// Decode reads a graph from r.
//
// Implementation:
//   - Stage 1: read and validate the vertex count and vertex section.
//   - Stage 2: replay AddVertex oldest-first (reverse of the section order).
//   - Stage 3: read each adjacency block; verify it against the derived
//     neighbors, or link it when ExplicitAdjacency is set.
//   - Stage 4: require end of input.
//
// Errors:
//   - ErrMalformed: bad counts, invalid frequency, short read, trailing bytes.
//   - ErrAdjacencyMismatch: adjacency block disagrees with the graph.
//   - ErrOptionViolation.
//
// Complexity: O(V + E) time with derived adjacency; explicit adjacency adds
// an O(V) coordinate lookup per entry.
func Decode(r io.Reader, opts ...Option) (*core.Graph, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	d := &decoder{r: bufio.NewReader(r), order: o.ByteOrder}

	n, err := d.count("vertex count", MaxVertices)
	if err != nil {
		return nil, err
	}
	recs := make([]record, 0, min(n, maxPrealloc))
	for i := 0; i < n; i++ {
		var rec record
		if rec.x, err = d.int32("vertex x"); err != nil {
			return nil, err
		}
		if rec.y, err = d.int32("vertex y"); err != nil {
			return nil, err
		}
		var b byte
		if b, err = d.r.ReadByte(); err != nil {
			return nil, fmt.Errorf("%w: reading frequency: %v", ErrMalformed, err)
		}
		rec.f = core.Frequency(b)
		recs = append(recs, rec)
	}

	gopts := []core.GraphOption{core.WithCapacity(n)}
	if o.ExplicitAdjacency {
		gopts = append(gopts, core.WithoutAutoLink())
	}
	g := core.NewGraph(gopts...)
	for i := n - 1; i >= 0; i-- {
		rec := recs[i]
		if _, err = g.AddVertex(rec.x, rec.y, rec.f); err != nil {
			return nil, fmt.Errorf("%w: vertex %d: %w", ErrMalformed, i, err)
		}
	}

	// Section position i holds the vertex with ID n-1-i.
	if o.ExplicitAdjacency {
		err = d.linkAdjacency(g, n)
	} else {
		err = d.verifyAdjacency(g, n)
	}
	if err != nil {
		return nil, err
	}

	if _, err = d.r.ReadByte(); err == nil {
		return nil, fmt.Errorf("%w: trailing bytes after adjacency section", ErrMalformed)
	} else if !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	return g, nil
}

// readBlock reads one adjacency block for a vertex with at most limit
// neighbors.
func (d *decoder) readBlock(limit int) ([]point, error) {
	k, err := d.count("adjacency count", limit)
	if err != nil {
		return nil, err
	}
	pts := make([]point, 0, min(k, maxPrealloc))
	for j := 0; j < k; j++ {
		var p point
		if p.x, err = d.int32("adjacency x"); err != nil {
			return nil, err
		}
		if p.y, err = d.int32("adjacency y"); err != nil {
			return nil, err
		}
		pts = append(pts, p)
	}

	return pts, nil
}

// verifyAdjacency checks that every block lists exactly the coordinate
// multiset of the derived neighbors. Order within a block is not checked.
func (d *decoder) verifyAdjacency(g *core.Graph, n int) error {
	for i := 0; i < n; i++ {
		id := core.VertexID(n - 1 - i)
		pts, err := d.readBlock(n - 1)
		if err != nil {
			return err
		}
		nbrs, err := g.NeighborVertices(id)
		if err != nil {
			return fmt.Errorf("codec: neighbors of %d: %w", id, err)
		}
		if len(pts) != len(nbrs) {
			return fmt.Errorf("%w: block %d lists %d neighbors, graph has %d",
				ErrAdjacencyMismatch, i, len(pts), len(nbrs))
		}
		want := make(map[point]int, len(nbrs))
		for _, nb := range nbrs {
			want[point{nb.X, nb.Y}]++
		}
		for _, p := range pts {
			if want[p] == 0 {
				return fmt.Errorf("%w: block %d lists (%d, %d), not a neighbor",
					ErrAdjacencyMismatch, i, p.x, p.y)
			}
			want[p]--
		}
	}

	return nil
}

// linkAdjacency builds edges from the blocks of a graph decoded without
// auto-linking. A coordinate resolves to the newest other vertex at that
// cell with the block owner's frequency. Each edge is linked once; the final
// degree check rejects edges listed on one endpoint only and repeated
// entries.
func (d *decoder) linkAdjacency(g *core.Graph, n int) error {
	vs := g.Vertices()
	resolve := func(owner core.Vertex, p point) (core.VertexID, bool) {
		for _, v := range vs {
			if v.ID != owner.ID && v.At(p.x, p.y, owner.Frequency) {
				return v.ID, true
			}
		}
		return 0, false
	}

	counts := make([]int, n)
	for i := 0; i < n; i++ {
		owner := vs[i]
		pts, err := d.readBlock(n - 1)
		if err != nil {
			return err
		}
		counts[owner.ID] = len(pts)
		for _, p := range pts {
			nb, ok := resolve(owner, p)
			if !ok {
				return fmt.Errorf("%w: block %d lists (%d, %d) with no other %c vertex there",
					ErrAdjacencyMismatch, i, p.x, p.y, owner.Frequency)
			}
			if err = g.Link(owner.ID, nb); err != nil && !errors.Is(err, core.ErrEdgeExists) {
				return fmt.Errorf("%w: block %d: %w", ErrAdjacencyMismatch, i, err)
			}
		}
	}
	for id, want := range counts {
		deg, err := g.Degree(core.VertexID(id))
		if err != nil {
			return fmt.Errorf("codec: degree of %d: %w", id, err)
		}
		if deg != want {
			return fmt.Errorf("%w: vertex %d lists %d neighbors, edges give %d",
				ErrAdjacencyMismatch, id, want, deg)
		}
	}

	return nil
}
