package gridgraph_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/antennas/gridgraph"
)

func ExampleParse() {
	g, err := gridgraph.Parse(strings.NewReader("A.B\n.A.\nB.A\n"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	st := g.Stats()
	fmt.Printf("%d antennas, %d links\n", st.VertexCount, st.EdgeCount)
	for _, v := range g.Vertices() {
		fmt.Println(v)
	}

	// Output:
	// 5 antennas, 4 links
	// (2, 2) [A]
	// (2, 0) [B]
	// (1, 1) [A]
	// (0, 2) [B]
	// (0, 0) [A]
}
