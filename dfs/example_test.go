package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/antennas/core"
	"github.com/katalvlaran/antennas/dfs"
)

// ExampleDFS walks the 'A' antennas of the grid
//
//	A.B
//	.A.
//	B.A
//
// starting from the top-left corner.
func ExampleDFS() {
	g := core.NewGraph()
	g.MustAddVertex(0, 0, 'A')
	g.MustAddVertex(0, 2, 'B')
	g.MustAddVertex(1, 1, 'A')
	g.MustAddVertex(2, 0, 'B')
	g.MustAddVertex(2, 2, 'A')

	res, err := dfs.DFS(g, 0, 0, 'A')
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, id := range res.Order {
		v, _ := g.Vertex(id)
		fmt.Printf("Visited: (%d, %d)\n", v.X, v.Y)
	}

	// Output:
	// Visited: (0, 0)
	// Visited: (2, 2)
	// Visited: (1, 1)
}
