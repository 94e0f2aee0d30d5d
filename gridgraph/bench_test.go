package gridgraph_test

import (
	"io"
	"strings"
	"testing"

	"github.com/katalvlaran/antennas/generate"
	"github.com/katalvlaran/antennas/gridgraph"
)

// BenchmarkParse_Sparse parses a 200x200 grid with one antenna in eight cells.
func BenchmarkParse_Sparse(b *testing.B) {
	var sb strings.Builder
	for x := 0; x < 200; x++ {
		for y := 0; y < 200; y++ {
			if (x*200+y)%8 == 0 {
				sb.WriteByte(byte('a' + (x+y)%26))
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	grid := sb.String()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = gridgraph.Parse(strings.NewReader(grid))
	}
}

// BenchmarkRender_Random renders a seeded 200x200 grid.
func BenchmarkRender_Random(b *testing.B) {
	g, err := generate.Grid(200, 200, []generate.Option{generate.WithSeed(1), generate.WithDensity(0.05)})
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = gridgraph.Render(io.Discard, g)
	}
}
