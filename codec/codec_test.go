package codec_test

import (
	"bytes"
	"encoding/binary"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/antennas/codec"
	"github.com/katalvlaran/antennas/core"
)

// layout assembles raw codec bytes field by field.
type layout struct {
	order binary.ByteOrder
	buf   bytes.Buffer
}

func newLayout() *layout { return &layout{order: binary.LittleEndian} }

func (l *layout) i32(vs ...int32) *layout {
	for _, v := range vs {
		_ = binary.Write(&l.buf, l.order, v)
	}
	return l
}

func (l *layout) vertex(x, y int32, f byte) *layout {
	l.i32(x, y)
	l.buf.WriteByte(f)
	return l
}

func (l *layout) bytes() []byte { return l.buf.Bytes() }

// scenario builds the graph of the grid "A.B\n.A.\nB.A".
func scenario() *core.Graph {
	g := core.NewGraph()
	g.MustAddVertex(0, 0, 'A')
	g.MustAddVertex(0, 2, 'B')
	g.MustAddVertex(1, 1, 'A')
	g.MustAddVertex(2, 0, 'B')
	g.MustAddVertex(2, 2, 'A')
	return g
}

func encode(t *testing.T, g *core.Graph, opts ...codec.Option) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, codec.Encode(&buf, g, opts...))
	return buf.Bytes()
}

// requireSameGraph compares store order, edges and adjacency order.
func requireSameGraph(t *testing.T, want, got *core.Graph) {
	t.Helper()
	require.Equal(t, want.Vertices(), got.Vertices())
	require.Equal(t, want.Edges(), got.Edges())
	for _, v := range want.Vertices() {
		a, err := want.Neighbors(v.ID)
		require.NoError(t, err)
		b, err := got.Neighbors(v.ID)
		require.NoError(t, err)
		require.Equal(t, a, b, "adjacency order of %v", v)
	}
}

// TestEncode_Layout pins the exact bytes of a two-vertex graph.
func TestEncode_Layout(t *testing.T) {
	g := core.NewGraph()
	g.MustAddVertex(0, 0, 'A')
	g.MustAddVertex(0, 1, 'A')

	want := newLayout().
		i32(2).
		vertex(0, 1, 'A').
		vertex(0, 0, 'A').
		i32(1, 0, 0). // newest vertex: one neighbor at (0,0)
		i32(1, 0, 1).
		bytes()
	assert.Equal(t, want, encode(t, g))
}

func TestRoundTrip_Scenario(t *testing.T) {
	g := scenario()
	b := encode(t, g)

	got, err := codec.Decode(bytes.NewReader(b))
	require.NoError(t, err)
	requireSameGraph(t, g, got)
	assert.Equal(t, b, encode(t, got), "re-encoding must be byte-identical")
}

func TestRoundTrip_Empty(t *testing.T) {
	b := encode(t, core.NewGraph())
	assert.Equal(t, []byte{0, 0, 0, 0}, b)

	g, err := codec.Decode(bytes.NewReader(b))
	require.NoError(t, err)
	assert.Equal(t, 0, g.Len())
}

// TestRoundTrip_DuplicatesAndNegative covers shared cells and negative coordinates.
func TestRoundTrip_DuplicatesAndNegative(t *testing.T) {
	g := core.NewGraph()
	g.MustAddVertex(-3, 7, 'x')
	g.MustAddVertex(-3, 7, 'x')
	g.MustAddVertex(-3, 7, 'y')
	g.MustAddVertex(core.MaxCoordinate, core.MinCoordinate, 'x')

	b := encode(t, g)
	got, err := codec.Decode(bytes.NewReader(b))
	require.NoError(t, err)
	requireSameGraph(t, g, got)
	assert.Equal(t, b, encode(t, got))
}

func TestRoundTrip_BigEndian(t *testing.T) {
	g := scenario()
	b := encode(t, g, codec.WithByteOrder(binary.BigEndian))
	assert.Equal(t, []byte{0, 0, 0, 5}, b[:4])

	got, err := codec.Decode(bytes.NewReader(b), codec.WithByteOrder(binary.BigEndian))
	require.NoError(t, err)
	requireSameGraph(t, g, got)

	_, err = codec.Decode(bytes.NewReader(b))
	assert.ErrorIs(t, err, codec.ErrMalformed, "big-endian count read as little-endian exceeds MaxVertices")
}

func TestDecode_Truncated(t *testing.T) {
	b := encode(t, scenario())
	for n := 0; n < len(b); n++ {
		_, err := codec.Decode(bytes.NewReader(b[:n]))
		require.ErrorIs(t, err, codec.ErrMalformed, "prefix of %d bytes", n)
	}
}

func TestDecode_TrailingBytes(t *testing.T) {
	b := append(encode(t, scenario()), 0)
	_, err := codec.Decode(bytes.NewReader(b))
	assert.ErrorIs(t, err, codec.ErrMalformed)
}

func TestDecode_BadCounts(t *testing.T) {
	cases := map[string][]byte{
		"NegativeVertexCount": newLayout().i32(-1).bytes(),
		"HugeVertexCount":     newLayout().i32(codec.MaxVertices + 1).bytes(),
		"NegativeAdjCount":    newLayout().i32(1).vertex(0, 0, 'A').i32(-2).bytes(),
		"AdjCountTooLarge":    newLayout().i32(1).vertex(0, 0, 'A').i32(1, 0, 0).bytes(),
		"InvalidFrequency":    newLayout().i32(1).vertex(0, 0, '.').i32(0).bytes(),
		"CarriageReturn":      newLayout().i32(2).vertex(0, 1, '\r').vertex(0, 0, 'A').i32(0).i32(0).bytes(),
		"NulFrequency":        newLayout().i32(1).vertex(0, 0, 0).i32(0).bytes(),
	}
	for name, b := range cases {
		t.Run(name, func(t *testing.T) {
			g, err := codec.Decode(bytes.NewReader(b))
			assert.ErrorIs(t, err, codec.ErrMalformed)
			assert.Nil(t, g)
		})
	}

	// Reserved grid bytes are never antennas, even in files from writers
	// that stored them.
	for _, name := range []string{"InvalidFrequency", "CarriageReturn", "NulFrequency"} {
		_, err := codec.Decode(bytes.NewReader(cases[name]))
		assert.ErrorIs(t, err, core.ErrInvalidFrequency, name)
	}
}

func TestDecode_AdjacencyMismatch(t *testing.T) {
	cases := map[string][]byte{
		"MissingNeighbor": newLayout().i32(2).
			vertex(0, 1, 'A').vertex(0, 0, 'A').
			i32(0).
			i32(1, 0, 1).bytes(),
		"WrongCoordinate": newLayout().i32(2).
			vertex(0, 1, 'A').vertex(0, 0, 'A').
			i32(1, 9, 9).
			i32(1, 0, 1).bytes(),
		"CrossFrequency": newLayout().i32(2).
			vertex(0, 1, 'A').vertex(0, 0, 'B').
			i32(1, 0, 0).
			i32(1, 0, 1).bytes(),
	}
	for name, b := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := codec.Decode(bytes.NewReader(b))
			assert.ErrorIs(t, err, codec.ErrAdjacencyMismatch)
		})
	}
}

// TestDecode_ExplicitAdjacency restores a topology the frequency rule
// cannot produce.
func TestDecode_ExplicitAdjacency(t *testing.T) {
	g := core.NewGraph(core.WithoutAutoLink())
	a := g.MustAddVertex(0, 0, 'X')
	b := g.MustAddVertex(0, 1, 'X')
	c := g.MustAddVertex(0, 2, 'X')
	require.NoError(t, g.Link(a, b))
	require.NoError(t, g.Link(b, c))
	raw := encode(t, g)

	_, err := codec.Decode(bytes.NewReader(raw))
	assert.ErrorIs(t, err, codec.ErrAdjacencyMismatch, "derived edges form a triangle")

	got, err := codec.Decode(bytes.NewReader(raw), codec.WithExplicitAdjacency())
	require.NoError(t, err)
	assert.False(t, got.AutoLink())
	assert.Equal(t, g.Vertices(), got.Vertices())
	assert.Equal(t, g.Edges(), got.Edges())
	assert.False(t, got.HasEdge(a, c))

	// Auto-linked graphs decode the same either way.
	sc := scenario()
	got, err = codec.Decode(bytes.NewReader(encode(t, sc)), codec.WithExplicitAdjacency())
	require.NoError(t, err)
	assert.Equal(t, sc.Edges(), got.Edges())
}

func TestDecode_ExplicitAdjacencyErrors(t *testing.T) {
	cases := map[string][]byte{
		"OneSided": newLayout().i32(2).
			vertex(0, 1, 'X').vertex(0, 0, 'X').
			i32(1, 0, 0).
			i32(0).bytes(),
		"Repeated": newLayout().i32(3).
			vertex(0, 2, 'X').vertex(0, 1, 'X').vertex(0, 0, 'X').
			i32(2, 0, 0, 0, 0).
			i32(0).
			i32(1, 0, 2).bytes(),
		"Unresolved": newLayout().i32(2).
			vertex(0, 1, 'X').vertex(0, 0, 'Y').
			i32(1, 0, 0).
			i32(1, 0, 1).bytes(),
		"SelfReference": newLayout().i32(2).
			vertex(0, 1, 'X').vertex(0, 0, 'X').
			i32(1, 0, 1).
			i32(1, 0, 1).bytes(),
	}
	for name, b := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := codec.Decode(bytes.NewReader(b), codec.WithExplicitAdjacency())
			assert.ErrorIs(t, err, codec.ErrAdjacencyMismatch)
		})
	}
}

func TestOptionsAndNil(t *testing.T) {
	var buf bytes.Buffer
	assert.ErrorIs(t, codec.Encode(&buf, nil), codec.ErrGraphNil)
	assert.ErrorIs(t, codec.Encode(&buf, scenario(), codec.WithByteOrder(nil)), codec.ErrOptionViolation)
	_, err := codec.Decode(&buf, codec.WithByteOrder(nil))
	assert.ErrorIs(t, err, codec.ErrOptionViolation)
}

func TestFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "antennas.bin")
	g := scenario()

	require.NoError(t, codec.WriteFile(path, g))
	got, err := codec.ReadFile(path)
	require.NoError(t, err)
	requireSameGraph(t, g, got)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "temporary file must be renamed away")

	// Overwrite in place.
	g.MustAddVertex(3, 3, 'C')
	require.NoError(t, codec.WriteFile(path, g))
	got, err = codec.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 6, got.Len())

	got, err = codec.ReadFile(filepath.Join(dir, "missing.bin"))
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.Nil(t, got)

	assert.ErrorIs(t, codec.WriteFile(path, nil), codec.ErrGraphNil)
	assert.Error(t, codec.WriteFile(filepath.Join(dir, "no", "such", "dir.bin"), g))
}
