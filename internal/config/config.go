// Package config handles configuration loading and management.
package config

import (
	"errors"
	"fmt"
)

// Config holds all program settings.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Scene   SceneConfig   `yaml:"scene"`
	Render  RenderConfig  `yaml:"render"`
	Camera  CameraConfig  `yaml:"camera"`
	Bench   BenchConfig   `yaml:"bench"`
	Logging LoggingConfig `yaml:"logging"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
}

// SceneConfig controls the cube sphere. The instance count is
// GridWidth*GridHeight*4 and the radius GridWidth*2.5.
type SceneConfig struct {
	GridWidth  int        `yaml:"grid_width"`
	GridHeight int        `yaml:"grid_height"`
	CubeSize   float32    `yaml:"cube_size"`
	Color      [4]float32 `yaml:"color,flow"`
}

// RenderConfig holds rendering settings.
type RenderConfig struct {
	Culling       bool       `yaml:"culling"`
	ClearColor    [4]float32 `yaml:"clear_color,flow"`
	ScreenshotDir string     `yaml:"screenshot_dir"`
}

// CameraConfig holds the default camera settings.
type CameraConfig struct {
	FovDegrees float32 `yaml:"fov_degrees"`
	Near       float32 `yaml:"near"`
	Far        float32 `yaml:"far"`
	SpinSpeed  float32 `yaml:"spin_speed"` // radians/second, 0 disables
}

// BenchConfig controls the headless culling benchmark.
type BenchConfig struct {
	Directions int `yaml:"directions"`
	Workers    int `yaml:"workers"` // 0 uses GOMAXPROCS
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with the 200x200x4 cube sphere.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:      "many cubes",
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      false,
		},
		Scene: SceneConfig{
			GridWidth:  200,
			GridHeight: 200,
			CubeSize:   1,
			Color:      [4]float32{1, 0.08, 0.58, 1},
		},
		Render: RenderConfig{
			Culling:       true,
			ClearColor:    [4]float32{0.1, 0.1, 0.15, 1},
			ScreenshotDir: "screenshots",
		},
		Camera: CameraConfig{
			FovDegrees: 45,
			Near:       0.1,
			Far:        1000,
			SpinSpeed:  0,
		},
		Bench: BenchConfig{
			Directions: 256,
			Workers:    0,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate reports settings the program cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if c.Scene.GridWidth < 1 || c.Scene.GridHeight < 1 {
		errs = append(errs, fmt.Errorf("scene grid must be at least 1x1, got %dx%d", c.Scene.GridWidth, c.Scene.GridHeight))
	}
	if c.Scene.CubeSize <= 0 {
		errs = append(errs, fmt.Errorf("scene cube_size must be positive, got %v", c.Scene.CubeSize))
	}
	if c.Camera.FovDegrees <= 0 || c.Camera.FovDegrees >= 180 {
		errs = append(errs, fmt.Errorf("camera fov_degrees must be in (0, 180), got %v", c.Camera.FovDegrees))
	}
	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		errs = append(errs, fmt.Errorf("camera requires 0 < near < far, got near=%v far=%v", c.Camera.Near, c.Camera.Far))
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}
	if c.Bench.Directions < 2 {
		errs = append(errs, fmt.Errorf("bench directions must be at least 2, got %d", c.Bench.Directions))
	}
	return errors.Join(errs...)
}
