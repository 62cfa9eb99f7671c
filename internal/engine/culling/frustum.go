// Package culling implements view-frustum culling of instance bounding spheres.
package culling

import (
	gomath "math"

	"github.com/Faultbox/manycubes/pkg/math"
)

// Plane is n.p + D = 0 with a unit normal pointing into the frustum.
type Plane struct {
	Normal math.Vec3
	D      float32
}

// Distance returns the signed distance from p to the plane.
func (p Plane) Distance(v math.Vec3) float32 {
	return p.Normal.Dot(v) + p.D
}

// Plane indices within a Frustum.
const (
	Left = iota
	Right
	Bottom
	Top
	Near
	Far
)

// Frustum holds the six clip planes of a view volume.
type Frustum [6]Plane

// FromMatrix extracts the frustum planes from a view-projection matrix
// producing OpenGL clip space (-w <= x, y, z <= w).
func FromMatrix(viewProj math.Mat4) Frustum {
	r0 := viewProj.Row(0)
	r1 := viewProj.Row(1)
	r2 := viewProj.Row(2)
	r3 := viewProj.Row(3)

	var f Frustum
	f[Left] = makePlane(r3, r0, 1)
	f[Right] = makePlane(r3, r0, -1)
	f[Bottom] = makePlane(r3, r1, 1)
	f[Top] = makePlane(r3, r1, -1)
	f[Near] = makePlane(r3, r2, 1)
	f[Far] = makePlane(r3, r2, -1)
	return f
}

func makePlane(w, axis [4]float32, sign float32) Plane {
	n := math.Vec3{
		X: w[0] + sign*axis[0],
		Y: w[1] + sign*axis[1],
		Z: w[2] + sign*axis[2],
	}
	d := w[3] + sign*axis[3]

	l := n.Length()
	if l == 0 {
		return Plane{D: d}
	}
	return Plane{Normal: n.Scale(1 / l), D: d / l}
}

// ContainsPoint reports whether p lies inside or on the frustum.
func (f *Frustum) ContainsPoint(p math.Vec3) bool {
	return f.ContainsSphere(p, 0)
}

// ContainsSphere reports whether a sphere intersects the frustum. It is
// conservative near frustum corners, where a sphere outside the volume but
// within radius of two planes still counts as visible.
func (f *Frustum) ContainsSphere(center math.Vec3, radius float32) bool {
	for i := range f {
		if f[i].Distance(center) < -radius {
			return false
		}
	}
	return true
}

// Cull appends to dst the indices of all positions whose bounding sphere of
// the given radius intersects the frustum, and returns the extended slice.
func Cull(f *Frustum, positions []math.Vec3, radius float32, dst []uint32) []uint32 {
	for i, p := range positions {
		if f.ContainsSphere(p, radius) {
			dst = append(dst, uint32(i))
		}
	}
	return dst
}

// SolidAngleFraction returns the share of the full sphere of directions a
// symmetric perspective frustum covers from its apex. Useful for predicting
// how many uniformly spread instances around the camera should survive.
func SolidAngleFraction(fovY, aspect float32) float64 {
	halfY := float64(fovY) / 2
	halfX := gomath.Atan(gomath.Tan(halfY) * float64(aspect))
	omega := 4 * gomath.Asin(gomath.Sin(halfX)*gomath.Sin(halfY))
	return omega / (4 * gomath.Pi)
}

// PackPositions appends the xyz of positions[i] for every i in indices to
// dst, the layout of the per-instance offset buffer.
func PackPositions(positions []math.Vec3, indices []uint32, dst []float32) []float32 {
	for _, i := range indices {
		p := positions[i]
		dst = append(dst, p.X, p.Y, p.Z)
	}
	return dst
}

// PackAll appends the xyz of every position to dst.
func PackAll(positions []math.Vec3, dst []float32) []float32 {
	for _, p := range positions {
		dst = append(dst, p.X, p.Y, p.Z)
	}
	return dst
}
