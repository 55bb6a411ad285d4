package qbsp

import (
	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/exp/constraints"
)

// noLightmap marks a face without lightmap samples.
const noLightmap = 0xFFFFFFFF

// Edge is a pair of indices into the vertex sequence.
type Edge [2]uint16

func (e Edge) Start() uint16 { return e[0] }
func (e Edge) End() uint16   { return e[1] }

// SurfEdge references an edge; a negative value walks the edge end to start.
type SurfEdge int32

// Index returns the referenced edge index.
func (s SurfEdge) Index() int {
	return int(abs(int64(s)))
}

// Reversed reports whether the edge is traversed end to start.
func (s SurfEdge) Reversed() bool {
	return s < 0
}

// Plane is a plane normal, its distance from the origin and an axis classifier
// (0-2 axial in X, Y, Z; 3-5 mostly facing X, Y, Z).
type Plane struct {
	Normal mgl32.Vec3
	Dist   float32
	Type   uint32
}

// Distance returns the signed distance of p from the plane.
func (p Plane) Distance(v mgl32.Vec3) float32 {
	return p.Normal.Dot(v) - p.Dist
}

// Face is one polygon of the map, stored as a run of surfedges.
// Field order and widths match the file.
type Face struct {
	Plane          uint16
	Side           uint16 // 1 if the face lies on the back of Plane
	FirstEdge      uint32 // index into SurfEdges
	NumEdges       uint16
	TexInfo        uint16
	LightStyles    uint32 // four style bytes
	LightmapOffset uint32
}

// Styles unpacks the four lightmap style bytes.
func (f Face) Styles() [4]uint8 {
	return [4]uint8{
		uint8(f.LightStyles),
		uint8(f.LightStyles >> 8),
		uint8(f.LightStyles >> 16),
		uint8(f.LightStyles >> 24),
	}
}

// HasLightmap reports whether the face references lighting data.
func (f Face) HasLightmap() bool {
	return f.LightmapOffset != noLightmap
}

func abs[T constraints.Signed](n T) T {
	if n < 0 {
		return -n
	}
	return n
}
