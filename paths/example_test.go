package paths_test

import (
	"fmt"

	"github.com/katalvlaran/antennas/core"
	"github.com/katalvlaran/antennas/paths"
)

// ExampleFindAll lists every simple path between two 'B' antennas.
func ExampleFindAll() {
	g := core.NewGraph()
	g.MustAddVertex(1, 1, 'B')
	g.MustAddVertex(2, 4, 'B')
	g.MustAddVertex(3, 7, 'B')

	ps, err := paths.FindAll(g, paths.Point{X: 1, Y: 1}, paths.Point{X: 3, Y: 7}, 'B')
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, p := range ps {
		fmt.Println("Path found:", p)
	}

	// Output:
	// Path found: (1,1) -> (3,7)
	// Path found: (1,1) -> (2,4) -> (3,7)
}
