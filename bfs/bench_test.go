package bfs_test

import (
	"testing"

	"github.com/katalvlaran/antennas/bfs"
	"github.com/katalvlaran/antennas/core"
	"github.com/katalvlaran/antennas/generate"
)

// BenchmarkBFS_Clique measures BFS on a single-frequency clique.
func BenchmarkBFS_Clique(b *testing.B) {
	const N = 500
	g := buildClique(N, 'K')

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, 0, 0, 'K')
	}
}

// BenchmarkBFS_ManyFrequencies measures BFS when the start's class is a
// small slice of a mixed graph.
func BenchmarkBFS_ManyFrequencies(b *testing.B) {
	g := core.NewGraph(core.WithCapacity(2600))
	for i := 0; i < 2600; i++ {
		g.MustAddVertex(i/52, i%52, core.Frequency('a'+i%26))
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, 0, 0, 'a')
	}
}

// BenchmarkBFS_RandomGrid measures BFS on a seeded 300x300 grid with four
// frequencies.
func BenchmarkBFS_RandomGrid(b *testing.B) {
	g, err := generate.Grid(300, 300, []generate.Option{
		generate.WithSeed(1), generate.WithDensity(0.02), generate.WithFrequencies("ABCD"),
	})
	if err != nil {
		b.Fatal(err)
	}
	start := g.Vertices()[0]

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, start.X, start.Y, start.Frequency)
	}
}
