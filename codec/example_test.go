package codec_test

import (
	"bytes"
	"fmt"

	"github.com/katalvlaran/antennas/codec"
	"github.com/katalvlaran/antennas/core"
)

func ExampleDecode() {
	g := core.NewGraph()
	g.MustAddVertex(1, 1, 'B')
	g.MustAddVertex(2, 4, 'B')
	g.MustAddVertex(0, 3, 'A')

	var buf bytes.Buffer
	if err := codec.Encode(&buf, g); err != nil {
		fmt.Println("error:", err)
		return
	}
	size := buf.Len()

	restored, err := codec.Decode(&buf)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(size, "bytes")
	for _, v := range restored.Vertices() {
		fmt.Println(v)
	}

	// Output:
	// 59 bytes
	// (0, 3) [A]
	// (2, 4) [B]
	// (1, 1) [B]
}
