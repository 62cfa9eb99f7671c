package scene

import (
	gomath "math"

	"github.com/Faultbox/manycubes/internal/config"
	"github.com/Faultbox/manycubes/internal/engine/camera"
)

// ConfigFrom builds the population settings from program configuration.
func ConfigFrom(c *config.Config) Config {
	cam := DefaultCamera()
	cam.Projection = ProjectionFrom(c.Camera)
	return Config{
		Width:    c.Scene.GridWidth,
		Height:   c.Scene.GridHeight,
		CubeSize: c.Scene.CubeSize,
		Color:    c.Scene.Color,
		Camera:   cam,
	}
}

// ProjectionFrom converts camera settings to a projection.
func ProjectionFrom(c config.CameraConfig) camera.Projection {
	return camera.Projection{
		FovY: c.FovDegrees * gomath.Pi / 180,
		Near: c.Near,
		Far:  c.Far,
	}
}
