// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Vertex, Frequency, Graph, GraphOption, sentinel errors and NewGraph.

package core

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for core graph operations.
var (
	// ErrInvalidFrequency indicates a frequency byte reserved by the grid syntax.
	ErrInvalidFrequency = errors.New("core: invalid frequency")

	// ErrCoordinateRange indicates a coordinate outside the signed 32-bit range.
	ErrCoordinateRange = errors.New("core: coordinate out of range")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrFrequencyMismatch indicates an attempt to link vertices of different frequencies.
	ErrFrequencyMismatch = errors.New("core: frequency mismatch")

	// ErrEdgeExists indicates an attempt to link an already linked pair.
	ErrEdgeExists = errors.New("core: edge already exists")

	// ErrSelfLoop indicates an attempt to link a vertex to itself.
	ErrSelfLoop = errors.New("core: self-loop not allowed")
)

// Coordinate bounds accepted by AddVertex. The binary layout stores
// coordinates as int32, so anything wider could not round-trip.
const (
	MinCoordinate = math.MinInt32
	MaxCoordinate = math.MaxInt32
)

// Frequency is the single-character label of an antenna.
type Frequency byte

// Valid reports whether f can label a vertex. NUL, '.', space, tab, CR and LF
// are reserved by the text grid format.
func (f Frequency) Valid() bool {
	switch f {
	case 0, '.', ' ', '\t', '\r', '\n':
		return false
	}

	return true
}

// String renders the frequency as its character.
func (f Frequency) String() string { return string(rune(f)) }

// VertexID is the stable arena index of a vertex. IDs are dense and assigned
// in insertion order starting at 0.
type VertexID int

// Vertex is a read-only snapshot of one antenna.
type Vertex struct {
	// ID is the arena index of this vertex.
	ID VertexID

	// X is the grid row, Y the grid column.
	X, Y int

	// Frequency is the label that drives the edge rule.
	Frequency Frequency
}

// String formats the vertex as "(x, y) [f]".
func (v Vertex) String() string {
	return fmt.Sprintf("(%d, %d) [%c]", v.X, v.Y, v.Frequency)
}

// At reports whether v sits at (x,y) with frequency f.
func (v Vertex) At(x, y int, f Frequency) bool {
	return v.X == x && v.Y == y && v.Frequency == f
}

// edgeKey identifies an undirected edge with lo < hi.
type edgeKey struct {
	lo, hi VertexID
}

func makeEdgeKey(a, b VertexID) edgeKey {
	if a > b {
		a, b = b, a
	}

	return edgeKey{lo: a, hi: b}
}

// GraphOption configures a Graph before first use.
type GraphOption func(g *Graph)

// WithCapacity pre-sizes the vertex arena for n insertions.
// Non-positive values are ignored.
func WithCapacity(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.vertices = make([]Vertex, 0, n)
			g.adjacency = make([][]VertexID, 0, n)
		}
	}
}

// WithoutAutoLink disables insertion-time linking. Edges must then be added
// with Link; frequency-locality is still enforced. Used to restore persisted
// adjacency verbatim and to model topologies the frequency rule cannot express.
func WithoutAutoLink() GraphOption {
	return func(g *Graph) { g.manual = true }
}

// Graph is the antenna graph store.
//
// vertices and adjacency are indexed by VertexID. adjacency[id] holds
// neighbors in the order their edges were added; public iteration reverses
// it so the most recent edge comes first.
type Graph struct {
	manual bool // insertion-time linking disabled

	vertices  []Vertex
	adjacency [][]VertexID
	edgeSet   map[edgeKey]struct{}
}

// NewGraph creates an empty Graph.
// Complexity: O(1) (O(n) with WithCapacity(n)).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		edgeSet: make(map[edgeKey]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// GraphStats is a snapshot of catalog sizes.
type GraphStats struct {
	VertexCount    int
	EdgeCount      int
	FrequencyCount int

	// PerFrequency maps each frequency to its vertex count.
	PerFrequency map[Frequency]int
}
