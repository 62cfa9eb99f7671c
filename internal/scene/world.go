package scene

import (
	"fmt"

	"github.com/Faultbox/manycubes/internal/engine/mesh"
	"github.com/Faultbox/manycubes/pkg/math"
)

// World is a headless Engine that records everything registered with it.
type World struct {
	Meshes    []*mesh.Mesh
	Materials []Material
	Instances []Instance
	Cameras   []Camera
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{}
}

// AddMesh implements Engine.
func (w *World) AddMesh(m *mesh.Mesh) (MeshHandle, error) {
	if m == nil {
		return 0, fmt.Errorf("adding nil mesh")
	}
	w.Meshes = append(w.Meshes, m)
	return MeshHandle(len(w.Meshes) - 1), nil
}

// AddMaterial implements Engine.
func (w *World) AddMaterial(m Material) (MaterialHandle, error) {
	w.Materials = append(w.Materials, m)
	return MaterialHandle(len(w.Materials) - 1), nil
}

// Spawn implements Engine.
func (w *World) Spawn(inst Instance) error {
	if int(inst.Mesh) >= len(w.Meshes) {
		return fmt.Errorf("mesh %d: %w", inst.Mesh, ErrUnknownHandle)
	}
	if int(inst.Material) >= len(w.Materials) {
		return fmt.Errorf("material %d: %w", inst.Material, ErrUnknownHandle)
	}
	w.Instances = append(w.Instances, inst)
	return nil
}

// SpawnCamera implements Engine.
func (w *World) SpawnCamera(c Camera) error {
	w.Cameras = append(w.Cameras, c)
	return nil
}

// Reserve implements Reserver.
func (w *World) Reserve(instances int) {
	if cap(w.Instances)-len(w.Instances) < instances {
		grown := make([]Instance, len(w.Instances), len(w.Instances)+instances)
		copy(grown, w.Instances)
		w.Instances = grown
	}
}

// Positions returns the instance positions in spawn order.
func (w *World) Positions() []math.Vec3 {
	out := make([]math.Vec3, len(w.Instances))
	for i, inst := range w.Instances {
		out[i] = inst.Position
	}
	return out
}

// BoundingRadius returns the largest bounding sphere radius of any
// registered mesh.
func (w *World) BoundingRadius() float32 {
	var r float32
	for _, m := range w.Meshes {
		if mr := m.Bounds.Radius(); mr > r {
			r = mr
		}
	}
	return r
}
