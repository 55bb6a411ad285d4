package qbsp

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/saiko-tech/qbsp/pkg/qbsp/collision"
)

// PickResult is the nearest face hit by a ray.
type PickResult struct {
	Face  int
	T     float32
	Point mgl32.Vec3
}

// Bounds returns the axis-aligned extents of all vertices.
func (b *BSP) Bounds() (min, max mgl32.Vec3) {
	return collision.Extents(b.Vertices)
}

// Pick casts a ray from origin along direction and returns the nearest face
// it hits. ok is false if nothing was hit.
func (b *BSP) Pick(origin, direction mgl32.Vec3) (res PickResult, ok bool, err error) {
	min, max := b.Bounds()
	if !collision.RayIntersectsAxisAlignedBoundingBox(origin, direction, min, max).Hit {
		return res, false, nil
	}

	polygons, err := b.Polygons()
	if err != nil {
		return res, false, err
	}

	for _, poly := range polygons {
		for _, tri := range poly.Triangles() {
			hit := collision.RayIntersectsTriangle(origin, direction, tri)
			if !hit.Hit || (ok && hit.T >= res.T) {
				continue
			}

			res = PickResult{Face: poly.Face, T: hit.T, Point: hit.Point}
			ok = true
		}
	}

	return res, ok, nil
}
