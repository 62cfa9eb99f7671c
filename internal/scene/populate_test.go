package scene

import (
	"errors"
	gomath "math"
	"testing"

	"github.com/Faultbox/manycubes/internal/engine/mesh"
	"github.com/Faultbox/manycubes/pkg/fibsphere"
	"github.com/Faultbox/manycubes/pkg/math"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.PointCount() != 160000 {
		t.Errorf("expected 160000 points, got %d", cfg.PointCount())
	}
	if cfg.Radius() != 500 {
		t.Errorf("expected radius 500, got %v", cfg.Radius())
	}
	if cfg.Color != Pink {
		t.Errorf("expected pink material, got %v", cfg.Color)
	}
}

func TestPopulateDefault(t *testing.T) {
	w := NewWorld()
	stats, err := Populate(w, DefaultConfig())
	if err != nil {
		t.Fatalf("Populate: %v", err)
	}

	if stats.Instances != 160000 || len(w.Instances) != 160000 {
		t.Fatalf("expected exactly 160000 instances, stats=%d world=%d", stats.Instances, len(w.Instances))
	}
	if len(w.Meshes) != 1 || len(w.Materials) != 1 {
		t.Errorf("expected one shared mesh and material, got %d and %d", len(w.Meshes), len(w.Materials))
	}
	if len(w.Cameras) != 1 {
		t.Errorf("expected one camera, got %d", len(w.Cameras))
	}

	seen := make(map[math.Vec3]struct{}, len(w.Instances))
	for i, inst := range w.Instances {
		if inst.Mesh != stats.Mesh || inst.Material != stats.Material {
			t.Fatalf("instance %d does not share the registered assets", i)
		}
		if l := inst.Position.Length(); gomath.Abs(float64(l)-500) > 1e-2 {
			t.Fatalf("instance %d at distance %v, want 500", i, l)
		}
		if _, dup := seen[inst.Position]; dup {
			t.Fatalf("instance %d duplicates an earlier position %v", i, inst.Position)
		}
		seen[inst.Position] = struct{}{}
	}
}

func TestPopulateMatchesDistribution(t *testing.T) {
	w := NewWorld()
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 4, 4
	if _, err := Populate(w, cfg); err != nil {
		t.Fatalf("Populate: %v", err)
	}

	n := cfg.PointCount()
	radius := float32(cfg.Radius())
	for i, inst := range w.Instances {
		p := fibsphere.Point(i, n)
		want := math.Vec3{X: float32(p.X), Y: float32(p.Y), Z: float32(p.Z)}.Scale(radius)
		if inst.Position.Sub(want).Length() > 1e-4 {
			t.Errorf("instance %d at %v, want %v", i, inst.Position, want)
		}
	}
}

func TestPopulateTooFewPoints(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 0
	_, err := Populate(NewWorld(), cfg)
	if !errors.Is(err, fibsphere.ErrTooFewPoints) {
		t.Errorf("expected ErrTooFewPoints, got %v", err)
	}
}

// failingEngine fails Spawn after a number of successful calls.
type failingEngine struct {
	*World
	spawnsLeft int
}

func (f *failingEngine) Spawn(inst Instance) error {
	if f.spawnsLeft == 0 {
		return errors.New("out of instance slots")
	}
	f.spawnsLeft--
	return f.World.Spawn(inst)
}

func TestPopulateSpawnError(t *testing.T) {
	e := &failingEngine{World: NewWorld(), spawnsLeft: 3}
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 1, 1

	_, err := Populate(e, cfg)
	if err == nil {
		t.Fatal("expected spawn error, got nil")
	}
	if len(e.Instances) != 3 {
		t.Errorf("expected 3 instances before failure, got %d", len(e.Instances))
	}
	if len(e.Cameras) != 0 {
		t.Error("camera should not be spawned after a failure")
	}
}

func TestWorldUnknownHandle(t *testing.T) {
	w := NewWorld()
	if err := w.Spawn(Instance{}); !errors.Is(err, ErrUnknownHandle) {
		t.Errorf("expected ErrUnknownHandle for missing mesh, got %v", err)
	}

	mh, _ := w.AddMesh(mesh.Cube(1))
	if err := w.Spawn(Instance{Mesh: mh, Material: 3}); !errors.Is(err, ErrUnknownHandle) {
		t.Errorf("expected ErrUnknownHandle for missing material, got %v", err)
	}

	if _, err := w.AddMesh(nil); err == nil {
		t.Error("expected error adding nil mesh")
	}
}

func TestWorldReserveKeepsInstances(t *testing.T) {
	w := NewWorld()
	mh, _ := w.AddMesh(mesh.Cube(1))
	matH, _ := w.AddMaterial(Material{BaseColor: Pink})
	if err := w.Spawn(Instance{Mesh: mh, Material: matH, Position: math.Vec3{X: 1}}); err != nil {
		t.Fatal(err)
	}

	w.Reserve(100)
	if len(w.Instances) != 1 || w.Instances[0].Position.X != 1 {
		t.Errorf("Reserve lost instances: %+v", w.Instances)
	}
	if cap(w.Instances) < 101 {
		t.Errorf("expected capacity >= 101, got %d", cap(w.Instances))
	}

	if got := w.Positions(); len(got) != 1 || got[0] != (math.Vec3{X: 1}) {
		t.Errorf("Positions() = %v", got)
	}
	if r := w.BoundingRadius(); gomath.Abs(float64(r)-gomath.Sqrt(0.75)) > 1e-6 {
		t.Errorf("BoundingRadius() = %v, want sqrt(0.75)", r)
	}
}
