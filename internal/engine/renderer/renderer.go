// Package renderer draws instanced meshes with OpenGL and CPU frustum culling.
// It implements scene.Engine so the scene can be populated straight into it.
package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/manycubes/internal/engine/culling"
	"github.com/Faultbox/manycubes/internal/engine/lighting"
	"github.com/Faultbox/manycubes/internal/engine/renderer/shaders"
	"github.com/Faultbox/manycubes/internal/engine/shader"
	"github.com/Faultbox/manycubes/internal/logger"
	"github.com/Faultbox/manycubes/internal/scene"
	"github.com/Faultbox/manycubes/pkg/math"
)

// Config holds renderer configuration.
type Config struct {
	Width      int
	Height     int
	Culling    bool
	ClearColor [4]float32
}

// FrameStats reports what the last frame drew.
type FrameStats struct {
	Visible   int
	Total     int
	DrawCalls int
}

// Renderer handles all OpenGL rendering.
type Renderer struct {
	config Config
	log    *zap.Logger

	program *shader.Program
	sun     lighting.Sun

	meshes    []*gpuMesh
	materials []scene.Material

	batches []*batch
	byKey   map[batchKey]*batch
	total   int
	reserve int

	camera    scene.Camera
	hasCamera bool

	stats FrameStats
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config: cfg,
		log:    logger.Named("renderer"),
		sun:    lighting.DefaultSun(),
		byKey:  make(map[batchKey]*batch),
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	r.log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	c := cfg.ClearColor
	gl.ClearColor(c[0], c[1], c[2], c[3])

	var err error
	r.program, err = shader.NewProgram(shaders.CubeVertexShader, shaders.CubeFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("failed to create cube shader: %w", err)
	}

	r.Resize(cfg.Width, cfg.Height)
	return r, nil
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	r.log.Info("closing renderer")
	for _, b := range r.batches {
		b.release()
	}
	for _, m := range r.meshes {
		m.release()
	}
	if r.program != nil {
		r.program.Delete()
	}
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	r.log.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Aspect returns the viewport aspect ratio.
func (r *Renderer) Aspect() float32 {
	if r.config.Height == 0 {
		return 1
	}
	return float32(r.config.Width) / float32(r.config.Height)
}

// SetCulling enables or disables frustum culling.
func (r *Renderer) SetCulling(enabled bool) {
	r.config.Culling = enabled
	r.log.Info("frustum culling", zap.Bool("enabled", enabled))
}

// Culling reports whether frustum culling is enabled.
func (r *Renderer) Culling() bool {
	return r.config.Culling
}

// Camera returns the camera registered by SpawnCamera.
func (r *Renderer) Camera() (scene.Camera, bool) {
	return r.camera, r.hasCamera
}

// Stats returns statistics for the last drawn frame.
func (r *Renderer) Stats() FrameStats {
	return r.stats
}

// Draw renders all instances as seen through viewProj.
func (r *Renderer) Draw(viewProj math.Mat4) {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	r.stats = FrameStats{Total: r.total}
	frustum := culling.FromMatrix(viewProj)

	r.program.Use()
	gl.UniformMatrix4fv(r.program.Uniform("uViewProj"), 1, false, viewProj.Ptr())
	d := r.sun.Direction
	gl.Uniform3f(r.program.Uniform("uLightDir"), d[0], d[1], d[2])
	gl.Uniform1f(r.program.Uniform("uAmbient"), r.sun.Ambient)

	for _, b := range r.batches {
		count := b.prepare(&frustum, r.config.Culling)
		if count == 0 {
			continue
		}

		m := r.meshes[b.key.mesh]
		col := r.materials[b.key.material].BaseColor
		gl.Uniform4f(r.program.Uniform("uColor"), col[0], col[1], col[2], col[3])

		b.upload()
		gl.BindVertexArray(b.vao)
		gl.DrawElementsInstanced(gl.TRIANGLES, m.indexCount, gl.UNSIGNED_INT, nil, int32(count))

		r.stats.Visible += count
		r.stats.DrawCalls++
	}
	gl.BindVertexArray(0)
}

// ReadPixels returns the RGBA contents of the back buffer, bottom row first.
func (r *Renderer) ReadPixels() ([]byte, int, int) {
	w, h := r.config.Width, r.config.Height
	pixels := make([]byte, w*h*4)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels, w, h
}
