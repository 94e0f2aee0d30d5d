// Package core_test provides benchmarks for core.Graph operations.
package core_test

import (
	"testing"

	"github.com/katalvlaran/antennas/core"
)

// BenchmarkAddVertex_SingleFrequency measures the O(V) linking cost when
// every vertex shares one frequency (the quadratic worst case).
func BenchmarkAddVertex_SingleFrequency(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		g := core.NewGraph(core.WithCapacity(256))
		for j := 0; j < 256; j++ {
			_, _ = g.AddVertex(j/16, j%16, 'A')
		}
	}
}

// BenchmarkAddVertex_ManyFrequencies spreads vertices over 26 frequencies.
func BenchmarkAddVertex_ManyFrequencies(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		g := core.NewGraph(core.WithCapacity(256))
		for j := 0; j < 256; j++ {
			_, _ = g.AddVertex(j/16, j%16, core.Frequency('A'+j%26))
		}
	}
}

// BenchmarkNeighbors measures neighbor retrieval on a 1000-vertex clique.
func BenchmarkNeighbors(b *testing.B) {
	g := core.NewGraph(core.WithCapacity(1000))
	for j := 0; j < 1000; j++ {
		_, _ = g.AddVertex(j, 0, 'Z')
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.Neighbors(core.VertexID(i % 1000))
	}
}
