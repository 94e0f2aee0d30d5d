package codec_test

import (
	"bytes"
	"testing"

	"github.com/katalvlaran/antennas/codec"
	"github.com/katalvlaran/antennas/core"
)

func benchGraph() *core.Graph {
	g := core.NewGraph(core.WithCapacity(1000))
	for i := 0; i < 1000; i++ {
		g.MustAddVertex(i/40, i%40, core.Frequency('a'+i%10))
	}
	return g
}

func BenchmarkEncode(b *testing.B) {
	g := benchGraph()
	var buf bytes.Buffer
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf.Reset()
		_ = codec.Encode(&buf, g)
	}
}

func BenchmarkDecode(b *testing.B) {
	var buf bytes.Buffer
	_ = codec.Encode(&buf, benchGraph())
	raw := buf.Bytes()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = codec.Decode(bytes.NewReader(raw))
	}
}
