package scene

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/Faultbox/manycubes/internal/engine/mesh"
	"github.com/Faultbox/manycubes/internal/logger"
	"github.com/Faultbox/manycubes/pkg/fibsphere"
	"github.com/Faultbox/manycubes/pkg/math"
)

// Config controls scene population.
type Config struct {
	Width    int // grid width; also sets the sphere radius
	Height   int
	CubeSize float32
	Color    [4]float32
	Camera   Camera
}

// DefaultConfig returns the 200x200x4 cube sphere.
func DefaultConfig() Config {
	return Config{
		Width:    200,
		Height:   200,
		CubeSize: 1,
		Color:    Pink,
		Camera:   DefaultCamera(),
	}
}

// PointCount returns Width*Height*4.
func (c Config) PointCount() int {
	return c.Width * c.Height * 4
}

// Radius returns the sphere radius, Width*2.5.
func (c Config) Radius() float64 {
	return float64(c.Width) * 2.5
}

// Stats summarizes a population run.
type Stats struct {
	Instances int
	Radius    float64
	Mesh      MeshHandle
	Material  MaterialHandle
	Duration  time.Duration
}

// Populate registers one cube mesh and one material with e, places
// PointCount instances on the Fibonacci sphere of the configured radius and
// adds the camera. It runs once, synchronously, before rendering starts.
func Populate(e Engine, cfg Config) (Stats, error) {
	start := time.Now()
	n := cfg.PointCount()
	radius := cfg.Radius()

	if n < fibsphere.MinPoints {
		return Stats{}, fmt.Errorf("populating %dx%d grid: %w", cfg.Width, cfg.Height, fibsphere.ErrTooFewPoints)
	}

	meshHandle, err := e.AddMesh(mesh.Cube(cfg.CubeSize))
	if err != nil {
		return Stats{}, fmt.Errorf("adding cube mesh: %w", err)
	}
	matHandle, err := e.AddMaterial(Material{BaseColor: cfg.Color})
	if err != nil {
		return Stats{}, fmt.Errorf("adding material: %w", err)
	}

	if r, ok := e.(Reserver); ok {
		r.Reserve(n)
	}

	for i := 0; i < n; i++ {
		p := r3.Scale(radius, fibsphere.Point(i, n))
		inst := Instance{
			Mesh:     meshHandle,
			Material: matHandle,
			Position: ToVec3(p),
		}
		if err := e.Spawn(inst); err != nil {
			return Stats{}, fmt.Errorf("spawning instance %d: %w", i, err)
		}
	}

	if err := e.SpawnCamera(cfg.Camera); err != nil {
		return Stats{}, fmt.Errorf("spawning camera: %w", err)
	}

	stats := Stats{
		Instances: n,
		Radius:    radius,
		Mesh:      meshHandle,
		Material:  matHandle,
		Duration:  time.Since(start),
	}
	logger.Info("scene populated",
		zap.Int("instances", stats.Instances),
		zap.Float64("radius", stats.Radius),
		zap.Duration("took", stats.Duration),
	)
	return stats, nil
}

// ToVec3 narrows a float64 point to the float32 vector the GPU consumes.
func ToVec3(p r3.Vec) math.Vec3 {
	return math.Vec3{X: float32(p.X), Y: float32(p.Y), Z: float32(p.Z)}
}
