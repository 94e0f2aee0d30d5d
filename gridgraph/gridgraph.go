// File: gridgraph.go
// Role: text grid → cells → *core.Graph, and graph → text grid.
package gridgraph

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/antennas/core"
)

// Cells scans r and returns every antenna in reading order together with
// the grid bounds.
//
// Complexity: O(N) time for N input bytes, O(C) space for C cells.
func Cells(r io.Reader, opts ...Option) ([]Cell, Bounds, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, Bounds{}, err
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, min(o.MaxLineLength, 64*1024)), o.MaxLineLength)

	var (
		cells []Cell
		b     Bounds
	)
	for x := 0; sc.Scan(); x++ {
		y := 0
		for _, c := range sc.Bytes() {
			switch c {
			case ' ', '\t':
				continue
			case Empty:
			default:
				f := core.Frequency(c)
				if !f.Valid() {
					return nil, Bounds{}, fmt.Errorf("%w: byte 0x%02x at (%d, %d)", ErrInvalidCell, c, x, y)
				}
				cells = append(cells, Cell{X: x, Y: y, Frequency: f})
			}
			y++
		}
		b.Rows = x + 1
		b.Cols = max(b.Cols, y)
	}
	if err = sc.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, Bounds{}, fmt.Errorf("%w: limit %d bytes", ErrLineTooLong, o.MaxLineLength)
		}
		return nil, Bounds{}, fmt.Errorf("gridgraph: read: %w", err)
	}

	return cells, b, nil
}

// Parse builds a graph from the grid in r, inserting cells in reading order.
func Parse(r io.Reader, opts ...Option) (*core.Graph, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	cells, _, err := Cells(r, opts...)
	if err != nil {
		return nil, err
	}

	g := core.NewGraph(append([]core.GraphOption{core.WithCapacity(len(cells))}, o.Graph...)...)
	for _, c := range cells {
		if _, err = g.AddVertex(c.X, c.Y, c.Frequency); err != nil {
			return nil, fmt.Errorf("gridgraph: cell %v: %w", c, err)
		}
	}

	return g, nil
}

// ParseFile opens path and parses it. A missing file yields an error
// wrapping fs.ErrNotExist and no graph.
func ParseFile(path string, opts ...Option) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gridgraph: open %s: %w", path, err)
	}
	defer f.Close()

	g, err := Parse(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("gridgraph: %s: %w", path, err)
	}

	return g, nil
}

// Render writes g as a text grid covering rows 0..maxX and columns 0..maxY.
// Vertices with a negative coordinate cannot be placed and are skipped; on a
// shared cell the newest vertex wins. An empty graph renders nothing and an
// extent above MaxRenderCells fails with ErrTooLarge.
//
// Complexity: O(V + R×C) for an R×C grid.
func Render(w io.Writer, g *core.Graph) error {
	if g == nil {
		return nil
	}
	vs := g.Vertices()
	rows, cols := 0, 0
	for _, v := range vs {
		if v.X < 0 || v.Y < 0 {
			continue
		}
		rows = max(rows, v.X+1)
		cols = max(cols, v.Y+1)
	}
	if rows == 0 {
		return nil
	}
	if rows > MaxRenderCells/cols {
		return fmt.Errorf("%w: %d×%d", ErrTooLarge, rows, cols)
	}

	grid := make([][]byte, rows)
	for x := range grid {
		grid[x] = make([]byte, cols)
		for y := range grid[x] {
			grid[x][y] = Empty
		}
	}
	// Oldest first so newer vertices overwrite shared cells.
	for i := len(vs) - 1; i >= 0; i-- {
		v := vs[i]
		if v.X >= 0 && v.Y >= 0 {
			grid[v.X][v.Y] = byte(v.Frequency)
		}
	}

	bw := bufio.NewWriter(w)
	for _, row := range grid {
		_, _ = bw.Write(row)
		_ = bw.WriteByte('\n')
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("gridgraph: render: %w", err)
	}

	return nil
}
