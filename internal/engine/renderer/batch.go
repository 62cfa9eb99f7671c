package renderer

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/manycubes/internal/engine/culling"
	"github.com/Faultbox/manycubes/internal/engine/mesh"
	"github.com/Faultbox/manycubes/internal/scene"
	"github.com/Faultbox/manycubes/pkg/math"
)

// Attribute locations shared with cube.vert.
const (
	attribPosition = 0
	attribNormal   = 1
	attribOffset   = 2
)

// gpuMesh is a mesh uploaded to vertex and index buffers.
type gpuMesh struct {
	vbo        uint32
	ebo        uint32
	indexCount int32
	radius     float32
}

func uploadMesh(m *mesh.Mesh) *gpuMesh {
	gm := &gpuMesh{
		indexCount: int32(len(m.Indices)),
		radius:     m.Bounds.Radius(),
	}

	vertices := m.Interleaved()
	gl.GenBuffers(1, &gm.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, gm.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)

	gl.GenBuffers(1, &gm.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, gm.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*4, gl.Ptr(m.Indices), gl.STATIC_DRAW)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, 0)
	return gm
}

func (m *gpuMesh) release() {
	if m.vbo != 0 {
		gl.DeleteBuffers(1, &m.vbo)
	}
	if m.ebo != 0 {
		gl.DeleteBuffers(1, &m.ebo)
	}
}

type batchKey struct {
	mesh     scene.MeshHandle
	material scene.MaterialHandle
}

// batch is every instance sharing one mesh and material, drawn with a
// single instanced call.
type batch struct {
	key    batchKey
	radius float32

	vao         uint32
	instanceVBO uint32

	positions []math.Vec3
	visible   []uint32
	offsets   []float32
	count     int
}

func newBatch(key batchKey, m *gpuMesh, reserve int) *batch {
	b := &batch{
		key:       key,
		radius:    m.radius,
		positions: make([]math.Vec3, 0, reserve),
	}

	gl.GenVertexArrays(1, &b.vao)
	gl.BindVertexArray(b.vao)

	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.VertexAttribPointerWithOffset(attribPosition, 3, gl.FLOAT, false, mesh.VertexStride, 0)
	gl.EnableVertexAttribArray(attribPosition)
	gl.VertexAttribPointerWithOffset(attribNormal, 3, gl.FLOAT, false, mesh.VertexStride, 3*4)
	gl.EnableVertexAttribArray(attribNormal)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)

	gl.GenBuffers(1, &b.instanceVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.instanceVBO)
	gl.VertexAttribPointerWithOffset(attribOffset, 3, gl.FLOAT, false, 3*4, 0)
	gl.EnableVertexAttribArray(attribOffset)
	gl.VertexAttribDivisor(attribOffset, 1)

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return b
}

// prepare fills offsets with the instances to draw this frame and returns
// how many there are.
func (b *batch) prepare(f *culling.Frustum, cull bool) int {
	b.offsets = b.offsets[:0]
	if cull {
		b.visible = culling.Cull(f, b.positions, b.radius, b.visible[:0])
		b.offsets = culling.PackPositions(b.positions, b.visible, b.offsets)
	} else {
		b.offsets = culling.PackAll(b.positions, b.offsets)
	}
	b.count = len(b.offsets) / 3
	return b.count
}

// upload streams offsets into the instance buffer, orphaning last frame's
// storage so the driver does not stall on it.
func (b *batch) upload() {
	size := len(b.offsets) * 4
	gl.BindBuffer(gl.ARRAY_BUFFER, b.instanceVBO)
	gl.BufferData(gl.ARRAY_BUFFER, size, nil, gl.STREAM_DRAW)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, size, gl.Ptr(b.offsets))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

func (b *batch) release() {
	if b.instanceVBO != 0 {
		gl.DeleteBuffers(1, &b.instanceVBO)
	}
	if b.vao != 0 {
		gl.DeleteVertexArrays(1, &b.vao)
	}
}
