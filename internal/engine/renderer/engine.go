package renderer

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/manycubes/internal/engine/mesh"
	"github.com/Faultbox/manycubes/internal/scene"
)

// AddMesh uploads m to the GPU. It implements scene.Engine.
func (r *Renderer) AddMesh(m *mesh.Mesh) (scene.MeshHandle, error) {
	if m == nil || len(m.Indices) == 0 {
		return 0, fmt.Errorf("adding empty mesh")
	}
	gm := uploadMesh(m)
	r.meshes = append(r.meshes, gm)
	h := scene.MeshHandle(len(r.meshes) - 1)

	r.log.Debug("mesh uploaded",
		zap.String("name", m.Name),
		zap.Int("vertices", len(m.Vertices)),
		zap.Int32("indices", gm.indexCount),
		zap.Uint32("handle", uint32(h)),
	)
	return h, nil
}

// AddMaterial registers a material. It implements scene.Engine.
func (r *Renderer) AddMaterial(m scene.Material) (scene.MaterialHandle, error) {
	r.materials = append(r.materials, m)
	return scene.MaterialHandle(len(r.materials) - 1), nil
}

// Spawn adds one instance to the batch for its mesh and material.
// It implements scene.Engine.
func (r *Renderer) Spawn(inst scene.Instance) error {
	if int(inst.Mesh) >= len(r.meshes) {
		return fmt.Errorf("mesh %d: %w", inst.Mesh, scene.ErrUnknownHandle)
	}
	if int(inst.Material) >= len(r.materials) {
		return fmt.Errorf("material %d: %w", inst.Material, scene.ErrUnknownHandle)
	}

	key := batchKey{mesh: inst.Mesh, material: inst.Material}
	b, ok := r.byKey[key]
	if !ok {
		b = newBatch(key, r.meshes[inst.Mesh], r.reserve)
		r.byKey[key] = b
		r.batches = append(r.batches, b)
	}
	b.positions = append(b.positions, inst.Position)
	r.total++
	return nil
}

// SpawnCamera records the camera to render from. It implements scene.Engine.
func (r *Renderer) SpawnCamera(c scene.Camera) error {
	r.camera = c
	r.hasCamera = true
	return nil
}

// Reserve preallocates instance storage. It implements scene.Reserver.
func (r *Renderer) Reserve(instances int) {
	r.reserve = instances
}
