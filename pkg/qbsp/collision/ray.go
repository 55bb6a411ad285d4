// Package collision provides ray queries against map geometry.
package collision

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const mollerTrumboreEpsilon = float32(0.0000001)

// RayCastResult describes where a ray hit, T being the distance along the ray
// in units of its direction vector.
type RayCastResult struct {
	T     float32
	Hit   bool
	Point mgl32.Vec3
}

// Extents returns the minimum and maximum corner of points.
// Both are zero if points is empty.
func Extents(points []mgl32.Vec3) (min, max mgl32.Vec3) {
	if len(points) == 0 {
		return min, max
	}

	min, max = points[0], points[0]
	for _, p := range points[1:] {
		for i, f := range p {
			if f < min[i] {
				min[i] = f
			}
			if f > max[i] {
				max[i] = f
			}
		}
	}

	return min, max
}

// RayIntersectsAxisAlignedBoundingBox determines whether a ray intersects an axis-aligned bounding box.
// A ray starting inside the box reports the exit point.
func RayIntersectsAxisAlignedBoundingBox(origin, direction, min, max mgl32.Vec3) (r RayCastResult) {
	// avoid division by zero for axis-parallel rays
	dir := direction
	for i := range dir {
		if dir[i] == 0 {
			dir[i] = 0.00001
		}
	}

	tmin := math.Inf(-1)
	tmax := math.Inf(1)

	for i := 0; i < 3; i++ {
		t1 := float64((min[i] - origin[i]) / dir[i])
		t2 := float64((max[i] - origin[i]) / dir[i])

		tmin = math.Max(tmin, math.Min(t1, t2))
		tmax = math.Min(tmax, math.Max(t1, t2))
	}

	// box is behind the origin, or missed
	if tmax < 0 || tmin > tmax {
		return r
	}

	t := tmin
	if tmin < 0 {
		t = tmax
	}

	r.Hit = true
	r.T = float32(t)
	r.Point = origin.Add(direction.Mul(r.T))

	return r
}

// RayIntersectsTriangle determines if a ray intersects a triangle using the
// Möller–Trumbore algorithm. Both faces of the triangle are hit.
func RayIntersectsTriangle(origin, direction mgl32.Vec3, tri [3]mgl32.Vec3) (r RayCastResult) {
	edge1 := tri[1].Sub(tri[0])
	edge2 := tri[2].Sub(tri[0])
	h := direction.Cross(edge2)
	a := edge1.Dot(h)

	if a > -mollerTrumboreEpsilon && a < mollerTrumboreEpsilon {
		return r // parallel
	}

	f := 1 / a
	s := origin.Sub(tri[0])
	u := f * s.Dot(h)

	if u < 0 || u > 1 {
		return r
	}

	q := s.Cross(edge1)
	v := f * direction.Dot(q)

	if v < 0 || u+v > 1 {
		return r
	}

	t := f * edge2.Dot(q)
	if t <= mollerTrumboreEpsilon {
		return r // line hit behind the origin
	}

	r.Hit = true
	r.T = t
	r.Point = origin.Add(direction.Mul(t))

	return r
}
