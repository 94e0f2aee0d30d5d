package intersect_test

import (
	"fmt"

	"github.com/katalvlaran/antennas/core"
	"github.com/katalvlaran/antennas/intersect"
)

func ExampleBetween() {
	g := core.NewGraph()
	g.MustAddVertex(1, 1, 'A')
	g.MustAddVertex(2, 2, 'B')
	g.MustAddVertex(4, 4, 'B')

	for _, p := range intersect.Between(g, 'A', 'B') {
		fmt.Println(p, p.Direction)
	}

	// Output:
	// Intersection between (1, 1) [A] and (2, 2) [B] SE
}
