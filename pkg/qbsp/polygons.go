package qbsp

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
)

// Polygon is a face resolved to its vertex positions.
type Polygon struct {
	Face     int
	Vertices []mgl32.Vec3
	Plane    Plane // facing the front side of the face
}

// Triangles splits the polygon into a triangle fan.
func (p Polygon) Triangles() [][3]mgl32.Vec3 {
	if len(p.Vertices) < 3 {
		return nil
	}

	tris := make([][3]mgl32.Vec3, 0, len(p.Vertices)-2)
	for i := 1; i < len(p.Vertices)-1; i++ {
		tris = append(tris, [3]mgl32.Vec3{p.Vertices[0], p.Vertices[i], p.Vertices[i+1]})
	}

	return tris
}

// FaceVertices walks the surfedges of face and returns its vertices in winding order.
func (b *BSP) FaceVertices(face int) ([]mgl32.Vec3, error) {
	if face < 0 || face >= len(b.Faces) {
		return nil, errors.Wrapf(ErrOutOfBounds, "face %d of %d", face, len(b.Faces))
	}

	f := b.Faces[face]
	firstEdge := int(f.FirstEdge)
	numEdges := int(f.NumEdges)

	if firstEdge+numEdges > len(b.SurfEdges) {
		return nil, errors.Wrapf(ErrOutOfBounds, "face %d: surfedges [%d, %d) of %d",
			face, firstEdge, firstEdge+numEdges, len(b.SurfEdges))
	}

	verts := make([]mgl32.Vec3, numEdges)

	for i, surfEdge := range b.SurfEdges[firstEdge : firstEdge+numEdges] {
		edgeIndex := surfEdge.Index()
		if edgeIndex >= len(b.Edges) {
			return nil, errors.Wrapf(ErrOutOfBounds, "face %d: edge %d of %d", face, edgeIndex, len(b.Edges))
		}

		edge := b.Edges[edgeIndex]
		vertex := edge.Start()
		if surfEdge.Reversed() {
			vertex = edge.End()
		}

		if int(vertex) >= len(b.Vertices) {
			return nil, errors.Wrapf(ErrOutOfBounds, "face %d: vertex %d of %d", face, vertex, len(b.Vertices))
		}

		verts[i] = b.Vertices[vertex]
	}

	return verts, nil
}

// Polygons resolves every face with at least three edges.
func (b *BSP) Polygons() ([]Polygon, error) {
	polygons := make([]Polygon, 0, len(b.Faces))

	for i, f := range b.Faces {
		if f.NumEdges < 3 {
			continue
		}

		verts, err := b.FaceVertices(i)
		if err != nil {
			return nil, err
		}

		if int(f.Plane) >= len(b.Planes) {
			return nil, errors.Wrapf(ErrOutOfBounds, "face %d: plane %d of %d", i, f.Plane, len(b.Planes))
		}

		plane := b.Planes[f.Plane]
		if f.Side != 0 {
			plane.Normal = plane.Normal.Mul(-1)
			plane.Dist = -plane.Dist
		}

		polygons = append(polygons, Polygon{
			Face:     i,
			Vertices: verts,
			Plane:    plane,
		})
	}

	return polygons, nil
}
