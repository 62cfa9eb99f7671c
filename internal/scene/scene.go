// Package scene populates the cube sphere through an engine-agnostic interface.
package scene

import (
	"errors"

	"github.com/Faultbox/manycubes/internal/engine/camera"
	"github.com/Faultbox/manycubes/internal/engine/mesh"
	"github.com/Faultbox/manycubes/pkg/math"
)

// MeshHandle references a mesh registered with an Engine.
type MeshHandle uint32

// MaterialHandle references a material registered with an Engine.
type MaterialHandle uint32

// ErrUnknownHandle is returned when an instance references an asset the
// engine never registered.
var ErrUnknownHandle = errors.New("scene: unknown asset handle")

// Pink is the default cube colour.
var Pink = [4]float32{1, 0.08, 0.58, 1}

// Material describes how instances are shaded.
type Material struct {
	BaseColor [4]float32
}

// Instance places one copy of a mesh with a material at a position.
type Instance struct {
	Mesh     MeshHandle
	Material MaterialHandle
	Position math.Vec3
}

// Camera is the camera the engine renders the scene from.
type Camera struct {
	Position   math.Vec3
	Forward    math.Vec3
	Projection camera.Projection
}

// DefaultCamera sits at the origin looking down -Z.
func DefaultCamera() Camera {
	return Camera{
		Forward:    math.Vec3{Z: -1},
		Projection: camera.DefaultProjection(),
	}
}

// Engine is what scene population needs from a renderer: register shared
// assets, then place instances of them.
type Engine interface {
	AddMesh(m *mesh.Mesh) (MeshHandle, error)
	AddMaterial(m Material) (MaterialHandle, error)
	Spawn(inst Instance) error
	SpawnCamera(c Camera) error
}

// Reserver is implemented by engines that can preallocate instance storage.
type Reserver interface {
	Reserve(instances int)
}
