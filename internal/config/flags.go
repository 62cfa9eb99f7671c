package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagWindowed   = flag.Bool("windowed", false, "Run in windowed mode")
	flagFullscreen = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagWidth      = flag.Int("width", 0, "Window width")
	flagHeight     = flag.Int("height", 0, "Window height")
	flagVSync      = flag.Bool("vsync", false, "Enable vertical sync")
	flagGrid       = flag.Int("grid", 0, "Grid side length; places grid*grid*4 cubes")
	flagNoCulling  = flag.Bool("no-culling", false, "Draw every cube without frustum culling")
	flagSpin       = flag.Float64("spin", 0, "Auto-rotate the camera (radians/second)")
	flagDirections = flag.Int("directions", 0, "Camera directions swept by the benchmark")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagWindowed {
		cfg.Window.Fullscreen = false
	}
	if *flagFullscreen {
		cfg.Window.Fullscreen = true
	}
	if *flagWidth > 0 {
		cfg.Window.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Window.Height = *flagHeight
	}
	if *flagVSync {
		cfg.Window.VSync = true
	}
	if *flagGrid > 0 {
		cfg.Scene.GridWidth = *flagGrid
		cfg.Scene.GridHeight = *flagGrid
	}
	if *flagNoCulling {
		cfg.Render.Culling = false
	}
	if *flagSpin != 0 {
		cfg.Camera.SpinSpeed = float32(*flagSpin)
	}
	if *flagDirections > 0 {
		cfg.Bench.Directions = *flagDirections
	}
}
