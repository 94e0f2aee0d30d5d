package core_test

import (
	"fmt"

	"github.com/katalvlaran/antennas/core"
)

// ExampleGraph demonstrates insertion-time linking by frequency.
func ExampleGraph() {
	g := core.NewGraph()

	// Two 'A' antennas and one 'B' antenna.
	a1, _ := g.AddVertex(5, 6, 'A')
	a2, _ := g.AddVertex(7, 8, 'A')
	b1, _ := g.AddVertex(10, 4, 'B')

	fmt.Println("vertices:", g.Len(), "edges:", g.EdgeCount())
	fmt.Println("A-A linked?", g.HasEdge(a1, a2))
	fmt.Println("A-B linked?", g.HasEdge(a1, b1))

	// Output:
	// vertices: 3 edges: 1
	// A-A linked? true
	// A-B linked? false
}

// ExampleGraph_Vertices shows store order: the newest vertex comes first.
func ExampleGraph_Vertices() {
	g := core.NewGraph()
	g.MustAddVertex(0, 0, 'A')
	g.MustAddVertex(0, 2, 'B')
	g.MustAddVertex(1, 1, 'A')

	for _, v := range g.Vertices() {
		nbrs, _ := g.NeighborVertices(v.ID)
		fmt.Printf("Antenna %v -> %v\n", v, nbrs)
	}

	// Output:
	// Antenna (1, 1) [A] -> [(0, 0) [A]]
	// Antenna (0, 2) [B] -> []
	// Antenna (0, 0) [A] -> [(1, 1) [A]]
}
