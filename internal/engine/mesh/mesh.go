// Package mesh provides CPU-side mesh data ready for GPU upload.
package mesh

import (
	gomath "math"

	"github.com/Faultbox/manycubes/pkg/math"
)

// Vertex represents a mesh vertex with position and normal.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
}

// VertexStride is the size of one Vertex in bytes.
const VertexStride = 6 * 4

// Mesh holds triangle geometry ready for GPU upload.
type Mesh struct {
	Name     string
	Vertices []Vertex
	Indices  []uint32
	Bounds   Bounds
}

// Bounds holds the axis-aligned bounding box of a mesh.
type Bounds struct {
	Min [3]float32
	Max [3]float32
}

// Center returns the center of the box.
func (b Bounds) Center() math.Vec3 {
	return math.Vec3{
		X: (b.Min[0] + b.Max[0]) / 2,
		Y: (b.Min[1] + b.Max[1]) / 2,
		Z: (b.Min[2] + b.Max[2]) / 2,
	}
}

// Radius returns the distance from the origin to the farthest box corner.
// Instances are placed by translating the mesh origin, so this is the
// bounding sphere radius culling needs.
func (b Bounds) Radius() float32 {
	var sum float32
	for i := 0; i < 3; i++ {
		m := gomath.Max(gomath.Abs(float64(b.Min[i])), gomath.Abs(float64(b.Max[i])))
		sum += float32(m * m)
	}
	return float32(gomath.Sqrt(float64(sum)))
}

// ComputeBounds recalculates Bounds from the vertex positions.
func (m *Mesh) ComputeBounds() {
	if len(m.Vertices) == 0 {
		m.Bounds = Bounds{}
		return
	}
	b := Bounds{Min: m.Vertices[0].Position, Max: m.Vertices[0].Position}
	for _, v := range m.Vertices[1:] {
		for i := 0; i < 3; i++ {
			if v.Position[i] < b.Min[i] {
				b.Min[i] = v.Position[i]
			}
			if v.Position[i] > b.Max[i] {
				b.Max[i] = v.Position[i]
			}
		}
	}
	m.Bounds = b
}

// Interleaved returns position+normal floats in vertex order, the layout the
// renderer uploads.
func (m *Mesh) Interleaved() []float32 {
	out := make([]float32, 0, len(m.Vertices)*6)
	for _, v := range m.Vertices {
		out = append(out, v.Position[0], v.Position[1], v.Position[2])
		out = append(out, v.Normal[0], v.Normal[1], v.Normal[2])
	}
	return out
}
