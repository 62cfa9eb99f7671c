// Package app implements the viewer main loop.
package app

import (
	"fmt"
	gomath "math"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/manycubes/internal/config"
	"github.com/Faultbox/manycubes/internal/engine/camera"
	"github.com/Faultbox/manycubes/internal/engine/debug"
	"github.com/Faultbox/manycubes/internal/engine/input"
	"github.com/Faultbox/manycubes/internal/engine/renderer"
	"github.com/Faultbox/manycubes/internal/engine/window"
	"github.com/Faultbox/manycubes/internal/logger"
	"github.com/Faultbox/manycubes/internal/scene"
)

// FOV limits for mouse wheel zoom.
const (
	minFov = 10 * gomath.Pi / 180
	maxFov = 120 * gomath.Pi / 180
)

// App is the viewer instance.
type App struct {
	cfg     *config.Config
	running bool

	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input

	camera      *camera.FreeCamera
	projection  camera.Projection
	spinSpeed   float32
	screenshots *debug.ScreenshotCapture

	sceneStats scene.Stats
}

// New creates the window and renderer and populates the scene.
func New(cfg *config.Config) (*App, error) {
	logger.Info("initializing viewer",
		zap.String("title", cfg.Window.Title),
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
	)

	a := &App{
		cfg:         cfg,
		input:       input.New(),
		screenshots: debug.NewScreenshotCapture(cfg.Render.ScreenshotDir, "manycubes"),
		spinSpeed:   cfg.Camera.SpinSpeed,
	}

	// Create window (this also creates OpenGL context)
	var err error
	a.window, err = window.New(window.Config{
		Title:      cfg.Window.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Create renderer (AFTER window, since OpenGL context must exist)
	fbWidth, fbHeight := a.window.DrawableSize()
	a.renderer, err = renderer.New(renderer.Config{
		Width:      fbWidth,
		Height:     fbHeight,
		Culling:    cfg.Render.Culling,
		ClearColor: cfg.Render.ClearColor,
	})
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	a.sceneStats, err = scene.Populate(a.renderer, scene.ConfigFrom(cfg))
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to populate scene: %w", err)
	}

	a.resetCamera()

	logger.Info("viewer initialized successfully")
	return a, nil
}

// resetCamera restores the camera the scene registered.
func (a *App) resetCamera() {
	sc, ok := a.renderer.Camera()
	if !ok {
		sc = scene.DefaultCamera()
	}
	a.camera = camera.NewFreeCamera()
	a.camera.Position = sc.Position
	a.camera.LookAlong(sc.Forward)
	a.camera.SpinSpeed = a.spinSpeed
	a.projection = sc.Projection
}

// Run starts the main loop.
func (a *App) Run() error {
	a.running = true

	lastTime := time.Now()
	timer := debug.NewFrameTimer(time.Second, lastTime)

	logger.Info("starting main loop",
		zap.Int("instances", a.sceneStats.Instances),
		zap.Bool("culling", a.renderer.Culling()),
	)

	for a.running {
		now := time.Now()
		dt := now.Sub(lastTime).Seconds()
		lastTime = now

		// 1. Process input
		if a.input.Update() {
			a.running = false
			break
		}
		for _, event := range a.input.Events() {
			a.handleEvent(event)
		}

		// 2. Update camera
		a.camera.Update(dt)

		// 3. Render
		viewProj := camera.ViewProjection(a.projection, a.camera, a.renderer.Aspect())
		a.renderer.Draw(viewProj)

		if a.input.IsKeyPressed(sdl.SCANCODE_F12) {
			a.captureScreenshot()
		}

		// 4. Present (swap buffers)
		a.window.SwapBuffers()

		if report, ok := timer.Tick(time.Now()); ok {
			a.report(report)
		}
	}

	return nil
}

func (a *App) handleEvent(event input.Event) {
	switch event.Type {
	case input.EventWindowResize:
		w, h := a.window.DrawableSize()
		a.renderer.Resize(w, h)
	case input.EventDrag:
		a.camera.HandleDrag(event.DX, event.DY)
	case input.EventWheel:
		a.zoom(event.DY)
	case input.EventKeyDown:
		switch event.Key {
		case sdl.SCANCODE_ESCAPE:
			a.running = false
		case sdl.SCANCODE_C:
			a.renderer.SetCulling(!a.renderer.Culling())
		case sdl.SCANCODE_SPACE:
			if a.camera.SpinSpeed == 0 {
				a.camera.SpinSpeed = a.spinSpeed
				if a.camera.SpinSpeed == 0 {
					a.camera.SpinSpeed = 0.5
				}
			} else {
				a.camera.SpinSpeed = 0
			}
		case sdl.SCANCODE_R:
			a.resetCamera()
		}
	}
}

// zoom narrows or widens the field of view; a wider view sees more cubes.
func (a *App) zoom(delta float32) {
	fov := a.projection.FovY * float32(gomath.Pow(0.95, float64(delta)))
	if fov < minFov {
		fov = minFov
	}
	if fov > maxFov {
		fov = maxFov
	}
	a.projection.FovY = fov
}

func (a *App) captureScreenshot() {
	pixels, w, h := a.renderer.ReadPixels()
	path, err := a.screenshots.CaptureFromPixels(pixels, w, h)
	if err != nil {
		logger.Error("screenshot failed", zap.Error(err))
		return
	}
	logger.Info("screenshot saved", zap.String("path", path))
}

func (a *App) report(r debug.FrameReport) {
	stats := a.renderer.Stats()
	a.window.SetTitle(debug.Title(a.cfg.Window.Title, r, stats.Visible, stats.Total, a.renderer.Culling()))
	logger.Debug("frame stats",
		zap.Float64("fps", r.FPS),
		zap.Duration("avg_frame", r.AvgFrame),
		zap.Duration("max_frame", r.MaxFrame),
		zap.Int("visible", stats.Visible),
		zap.Int("total", stats.Total),
		zap.Int("draw_calls", stats.DrawCalls),
	)
}

// Close cleans up viewer resources.
func (a *App) Close() {
	logger.Info("closing viewer")

	if a.renderer != nil {
		a.renderer.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}
