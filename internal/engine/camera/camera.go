// Package camera provides camera implementations for 3D rendering.
package camera

import (
	gomath "math"

	"github.com/Faultbox/manycubes/pkg/math"
)

// FreeCamera looks around from a fixed position.
// With zero yaw and pitch it faces -Z with +Y up, the default 3D camera pose.
type FreeCamera struct {
	Position math.Vec3

	Yaw   float32 // rotation around +Y (radians), positive turns left
	Pitch float32 // elevation (radians), positive looks up

	// Constraints
	MaxPitch float32

	// Sensitivity
	DragSensitivity float32

	// SpinSpeed turns the camera around +Y (radians/second) when non-zero.
	SpinSpeed float32
}

// NewFreeCamera creates a camera at the origin with default settings.
func NewFreeCamera() *FreeCamera {
	return &FreeCamera{
		MaxPitch:        1.55, // just short of straight up/down
		DragSensitivity: 0.005,
	}
}

// Forward returns the unit view direction.
func (c *FreeCamera) Forward() math.Vec3 {
	cp := float32(gomath.Cos(float64(c.Pitch)))
	return math.Vec3{
		X: -cp * float32(gomath.Sin(float64(c.Yaw))),
		Y: float32(gomath.Sin(float64(c.Pitch))),
		Z: -cp * float32(gomath.Cos(float64(c.Yaw))),
	}
}

// ViewMatrix returns the view matrix for this camera.
func (c *FreeCamera) ViewMatrix() math.Mat4 {
	up := math.Vec3{X: 0, Y: 1, Z: 0}
	return math.LookAt(c.Position, c.Position.Add(c.Forward()), up)
}

// HandleDrag updates orientation based on mouse drag delta.
func (c *FreeCamera) HandleDrag(deltaX, deltaY float32) {
	c.Yaw -= deltaX * c.DragSensitivity
	c.Pitch -= deltaY * c.DragSensitivity
	c.clampPitch()
	c.wrapYaw()
}

// Update advances auto-rotation by dt seconds.
func (c *FreeCamera) Update(dt float64) {
	if c.SpinSpeed == 0 {
		return
	}
	c.Yaw += c.SpinSpeed * float32(dt)
	c.wrapYaw()
}

// LookAlong points the camera along dir. Rolling is not modelled, so a
// direction parallel to +-Y is clamped to MaxPitch.
func (c *FreeCamera) LookAlong(dir math.Vec3) {
	d := dir.Normalize()
	if d == (math.Vec3{}) {
		return
	}
	c.Pitch = float32(gomath.Asin(float64(d.Y)))
	c.Yaw = float32(gomath.Atan2(float64(-d.X), float64(-d.Z)))
	c.clampPitch()
}

func (c *FreeCamera) clampPitch() {
	if c.Pitch > c.MaxPitch {
		c.Pitch = c.MaxPitch
	}
	if c.Pitch < -c.MaxPitch {
		c.Pitch = -c.MaxPitch
	}
}

func (c *FreeCamera) wrapYaw() {
	const twoPi = 2 * gomath.Pi
	c.Yaw = float32(gomath.Mod(float64(c.Yaw), twoPi))
}

// Projection describes a perspective projection.
type Projection struct {
	FovY float32 // radians
	Near float32
	Far  float32
}

// DefaultProjection matches a typical 3D default: 45 degree vertical FOV.
func DefaultProjection() Projection {
	return Projection{
		FovY: gomath.Pi / 4,
		Near: 0.1,
		Far:  1000,
	}
}

// Matrix returns the projection matrix for the given aspect ratio.
func (p Projection) Matrix(aspect float32) math.Mat4 {
	if aspect <= 0 {
		aspect = 1
	}
	return math.Perspective(p.FovY, aspect, p.Near, p.Far)
}

// ViewProjection combines a projection and camera into one matrix.
func ViewProjection(p Projection, c *FreeCamera, aspect float32) math.Mat4 {
	return p.Matrix(aspect).Mul(c.ViewMatrix())
}
