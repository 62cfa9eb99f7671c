package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Window.Width != 1280 {
		t.Errorf("expected width 1280, got %d", cfg.Window.Width)
	}
	if cfg.Window.Height != 720 {
		t.Errorf("expected height 720, got %d", cfg.Window.Height)
	}
	if cfg.Window.Fullscreen {
		t.Error("expected fullscreen to be false by default")
	}
	if cfg.Window.VSync {
		t.Error("expected vsync to be off by default so frame times are not capped")
	}

	if cfg.Scene.GridWidth != 200 || cfg.Scene.GridHeight != 200 {
		t.Errorf("expected 200x200 grid, got %dx%d", cfg.Scene.GridWidth, cfg.Scene.GridHeight)
	}
	if cfg.Scene.CubeSize != 1 {
		t.Errorf("expected cube size 1, got %v", cfg.Scene.CubeSize)
	}

	if !cfg.Render.Culling {
		t.Error("expected culling to be enabled by default")
	}

	if cfg.Camera.FovDegrees != 45 {
		t.Errorf("expected fov 45, got %v", cfg.Camera.FovDegrees)
	}
	if cfg.Camera.SpinSpeed != 0 {
		t.Errorf("expected camera spin off, got %v", cfg.Camera.SpinSpeed)
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
window:
  title: "cull test"
  width: 1920
  height: 1080
  fullscreen: true
  vsync: true

scene:
  grid_width: 50
  grid_height: 25
  cube_size: 2.5
  color: [0.2, 0.4, 0.6, 1]

render:
  culling: false
  screenshot_dir: "/tmp/shots"

camera:
  fov_degrees: 60
  near: 0.5
  far: 2000
  spin_speed: 0.25

bench:
  directions: 64
  workers: 2

logging:
  level: "debug"
  log_file: "cubes.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Window.Title != "cull test" {
		t.Errorf("expected title 'cull test', got %q", cfg.Window.Title)
	}
	if cfg.Window.Width != 1920 || cfg.Window.Height != 1080 {
		t.Errorf("expected 1920x1080, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if !cfg.Window.Fullscreen || !cfg.Window.VSync {
		t.Error("expected fullscreen and vsync to be true")
	}

	if cfg.Scene.GridWidth != 50 || cfg.Scene.GridHeight != 25 {
		t.Errorf("expected 50x25 grid, got %dx%d", cfg.Scene.GridWidth, cfg.Scene.GridHeight)
	}
	if cfg.Scene.CubeSize != 2.5 {
		t.Errorf("expected cube size 2.5, got %v", cfg.Scene.CubeSize)
	}
	if cfg.Scene.Color != [4]float32{0.2, 0.4, 0.6, 1} {
		t.Errorf("unexpected color %v", cfg.Scene.Color)
	}

	if cfg.Render.Culling {
		t.Error("expected culling to be disabled")
	}
	if cfg.Render.ScreenshotDir != "/tmp/shots" {
		t.Errorf("expected screenshot dir /tmp/shots, got %s", cfg.Render.ScreenshotDir)
	}
	// Not in the file, so the default survives
	if cfg.Render.ClearColor != Default().Render.ClearColor {
		t.Errorf("clear color should keep its default, got %v", cfg.Render.ClearColor)
	}

	if cfg.Camera.FovDegrees != 60 || cfg.Camera.Near != 0.5 || cfg.Camera.Far != 2000 {
		t.Errorf("unexpected camera settings %+v", cfg.Camera)
	}
	if cfg.Camera.SpinSpeed != 0.25 {
		t.Errorf("expected spin 0.25, got %v", cfg.Camera.SpinSpeed)
	}

	if cfg.Bench.Directions != 64 || cfg.Bench.Workers != 2 {
		t.Errorf("unexpected bench settings %+v", cfg.Bench)
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "cubes.log" {
		t.Errorf("expected log file 'cubes.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
scene:
  grid_width: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileBadColor(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "color.yaml")
	if err := os.WriteFile(configPath, []byte("scene:\n  color: [1, 0]\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil {
		t.Error("expected error for a two-component color")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, "/nonexistent/path/config.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"empty grid", func(c *Config) { c.Scene.GridWidth = 0 }, "grid"},
		{"negative cube", func(c *Config) { c.Scene.CubeSize = -1 }, "cube_size"},
		{"zero fov", func(c *Config) { c.Camera.FovDegrees = 0 }, "fov_degrees"},
		{"far before near", func(c *Config) { c.Camera.Far = 0.01 }, "near < far"},
		{"zero window", func(c *Config) { c.Window.Height = 0 }, "window size"},
		{"single direction", func(c *Config) { c.Bench.Directions = 1 }, "directions"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q should mention %q", err, tt.want)
			}
		})
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	tmpDir := t.TempDir()
	os.Chdir(tmpDir)
	t.Setenv("XDG_CONFIG_HOME", tmpDir)

	if path := findConfigFile(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("scene:\n  grid_width: 10\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	if path := findConfigFile(); path == "" {
		t.Error("expected to find config.yaml in current directory")
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name:  "fullscreen flag",
			setup: func() { *flagFullscreen = true },
			verify: func(cfg *Config) {
				if !cfg.Window.Fullscreen {
					t.Error("expected fullscreen to be true with fullscreen flag")
				}
			},
			teardown: func() { *flagFullscreen = false },
		},
		{
			name: "width and height flags",
			setup: func() {
				*flagWidth = 2560
				*flagHeight = 1440
			},
			verify: func(cfg *Config) {
				if cfg.Window.Width != 2560 || cfg.Window.Height != 1440 {
					t.Errorf("expected 2560x1440, got %dx%d", cfg.Window.Width, cfg.Window.Height)
				}
			},
			teardown: func() {
				*flagWidth = 0
				*flagHeight = 0
			},
		},
		{
			name:  "grid flag",
			setup: func() { *flagGrid = 10 },
			verify: func(cfg *Config) {
				if cfg.Scene.GridWidth != 10 || cfg.Scene.GridHeight != 10 {
					t.Errorf("expected 10x10 grid, got %dx%d", cfg.Scene.GridWidth, cfg.Scene.GridHeight)
				}
			},
			teardown: func() { *flagGrid = 0 },
		},
		{
			name:  "no-culling flag",
			setup: func() { *flagNoCulling = true },
			verify: func(cfg *Config) {
				if cfg.Render.Culling {
					t.Error("expected culling to be disabled")
				}
			},
			teardown: func() { *flagNoCulling = false },
		},
		{
			name:  "spin flag",
			setup: func() { *flagSpin = 0.5 },
			verify: func(cfg *Config) {
				if cfg.Camera.SpinSpeed != 0.5 {
					t.Errorf("expected spin 0.5, got %v", cfg.Camera.SpinSpeed)
				}
			},
			teardown: func() { *flagSpin = 0 },
		},
		{
			name:  "directions flag",
			setup: func() { *flagDirections = 12 },
			verify: func(cfg *Config) {
				if cfg.Bench.Directions != 12 {
					t.Errorf("expected 12 directions, got %d", cfg.Bench.Directions)
				}
			},
			teardown: func() { *flagDirections = 0 },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)

			tt.verify(cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
scene:
  grid_width: 40
  grid_height: 30
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	*flagWidth = 800
	defer func() {
		*flagConfig = ""
		*flagWidth = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Window.Width != 800 {
		t.Errorf("expected width 800 from flag, got %d", cfg.Window.Width)
	}
	if cfg.Scene.GridWidth != 40 || cfg.Scene.GridHeight != 30 {
		t.Errorf("expected 40x30 grid from file, got %dx%d", cfg.Scene.GridWidth, cfg.Scene.GridHeight)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte("scene:\n  grid_width: 0\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	defer func() { *flagConfig = "" }()

	if _, err := Load(); err == nil {
		t.Error("expected Load to reject a zero-width grid")
	}
}

func TestSaveToRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Scene.GridWidth = 7
	cfg.Camera.SpinSpeed = 0.1
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("loading saved config: %v", err)
	}
	if loaded.Scene.GridWidth != 7 || loaded.Camera.SpinSpeed != 0.1 {
		t.Errorf("saved values not restored: grid %d spin %v", loaded.Scene.GridWidth, loaded.Camera.SpinSpeed)
	}
}
