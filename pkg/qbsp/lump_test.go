package qbsp

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeLump_RecordWidths(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 12, binary.Size(mgl32.Vec3{}))
	assert.Equal(t, 4, binary.Size(Edge{}))
	assert.Equal(t, 20, binary.Size(Plane{}))
	assert.Equal(t, 20, binary.Size(Face{}))
	assert.Equal(t, 4, binary.Size(SurfEdge(0)))
}

func TestDecodeLump_Face(t *testing.T) {
	t.Parallel()

	// plane, side, firstEdge, numEdges, texInfo, styles, lightmapOffset
	raw := make([]byte, 0, 20)
	raw = binary.LittleEndian.AppendUint16(raw, 7)
	raw = binary.LittleEndian.AppendUint16(raw, 1)
	raw = binary.LittleEndian.AppendUint32(raw, 300)
	raw = binary.LittleEndian.AppendUint16(raw, 4)
	raw = binary.LittleEndian.AppendUint16(raw, 12)
	raw = binary.LittleEndian.AppendUint32(raw, 0xFFFF0100)
	raw = binary.LittleEndian.AppendUint32(raw, 4096)

	data := new(mapBuilder).raw(LumpFaces, raw).bytes()
	h, err := DecodeHeader(data)
	require.NoError(t, err)

	faces, err := decodeLump[Face](data, h.Lump(LumpFaces))
	require.NoError(t, err)
	require.Len(t, faces, 1)

	assert.Equal(t, Face{
		Plane:          7,
		Side:           1,
		FirstEdge:      300,
		NumEdges:       4,
		TexInfo:        12,
		LightStyles:    0xFFFF0100,
		LightmapOffset: 4096,
	}, faces[0])
	assert.Equal(t, [4]uint8{0x00, 0x01, 0xFF, 0xFF}, faces[0].Styles())
	assert.True(t, faces[0].HasLightmap())
}

func TestDecodeLump_Plane(t *testing.T) {
	t.Parallel()

	raw := make([]byte, 0, 20)
	for _, f := range []float32{0, 0, 1, -64} {
		raw = binary.LittleEndian.AppendUint32(raw, math.Float32bits(f))
	}
	raw = binary.LittleEndian.AppendUint32(raw, 2)

	data := new(mapBuilder).raw(LumpPlanes, raw).bytes()
	h, err := DecodeHeader(data)
	require.NoError(t, err)

	planes, err := decodeLump[Plane](data, h.Lump(LumpPlanes))
	require.NoError(t, err)
	assert.Equal(t, []Plane{{Normal: mgl32.Vec3{0, 0, 1}, Dist: -64, Type: 2}}, planes)
	assert.Equal(t, float32(74), planes[0].Distance(mgl32.Vec3{5, 5, 10}))
}

func TestDecodeLump_SurfEdges(t *testing.T) {
	t.Parallel()

	data := new(mapBuilder).set(t, LumpSurfEdges, []int32{5, -5, 0, math.MinInt32 + 1}).bytes()
	h, err := DecodeHeader(data)
	require.NoError(t, err)

	surfEdges, err := decodeLump[SurfEdge](data, h.Lump(LumpSurfEdges))
	require.NoError(t, err)
	assert.Equal(t, []SurfEdge{5, -5, 0, math.MinInt32 + 1}, surfEdges)

	assert.Equal(t, 5, surfEdges[1].Index())
	assert.True(t, surfEdges[1].Reversed())
	assert.False(t, surfEdges[0].Reversed())
	assert.Equal(t, math.MaxInt32, surfEdges[3].Index())
}

func TestDecodeLump_Malformed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		id   LumpID
		size int
		run  func([]byte, Lump) error
	}{
		{"faces", LumpFaces, 30, func(d []byte, l Lump) error { _, err := decodeLump[Face](d, l); return err }},
		{"planes", LumpPlanes, 19, func(d []byte, l Lump) error { _, err := decodeLump[Plane](d, l); return err }},
		{"vertices", LumpVertices, 16, func(d []byte, l Lump) error { _, err := decodeLump[mgl32.Vec3](d, l); return err }},
		{"edges", LumpEdges, 6, func(d []byte, l Lump) error { _, err := decodeLump[Edge](d, l); return err }},
		{"surfedges", LumpSurfEdges, 5, func(d []byte, l Lump) error { _, err := decodeLump[SurfEdge](d, l); return err }},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			data := new(mapBuilder).raw(tt.id, make([]byte, tt.size)).bytes()
			h, err := DecodeHeader(data)
			require.NoError(t, err)

			err = tt.run(data, h.Lump(tt.id))
			require.ErrorIs(t, err, ErrMalformedLump)
			assert.Contains(t, err.Error(), tt.id.String())
		})
	}
}

func TestDecodeLump_OutOfBounds(t *testing.T) {
	t.Parallel()

	data := make([]byte, HeaderSize+12)

	tests := []Lump{
		{ID: LumpVertices, Offset: HeaderSize, Size: 24},
		{ID: LumpVertices, Offset: HeaderSize + 12, Size: 12},
		{ID: LumpVertices, Offset: math.MaxUint32, Size: 12},
		{ID: LumpVertices, Offset: 12, Size: math.MaxUint32 - 3},
	}
	for _, l := range tests {
		_, err := decodeLump[mgl32.Vec3](data, l)
		assert.ErrorIs(t, err, ErrOutOfBounds, "offset %d size %d", l.Offset, l.Size)
	}
}

func TestDecodeLump_WindowOnly(t *testing.T) {
	t.Parallel()

	// the lump sits between two vertices that must not be read
	data := make([]byte, HeaderSize)
	for _, f := range []float32{9, 9, 9, 1, 2, 3, 8, 8, 8} {
		data = binary.LittleEndian.AppendUint32(data, math.Float32bits(f))
	}

	verts, err := decodeLump[mgl32.Vec3](data, Lump{ID: LumpVertices, Offset: HeaderSize + 12, Size: 12})
	require.NoError(t, err)
	assert.Equal(t, []mgl32.Vec3{{1, 2, 3}}, verts)

	// decoded values are copies
	data[HeaderSize+12] = 0xFF
	assert.Equal(t, float32(1), verts[0][0])
}

func TestDecodeLump_Empty(t *testing.T) {
	t.Parallel()

	edges, err := decodeLump[Edge](make([]byte, HeaderSize), Lump{ID: LumpEdges})
	require.NoError(t, err)
	assert.Empty(t, edges)
}
