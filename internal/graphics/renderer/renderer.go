package renderer

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/urosevicvuk/gameGL/internal/graphics"
	"github.com/urosevicvuk/gameGL/internal/logging"
	"github.com/urosevicvuk/gameGL/internal/profiling"
	"github.com/urosevicvuk/gameGL/internal/scene"
)

// Renderer orchestrates the deferred pipeline: passes run in the order
// given and are disposed in reverse.
type Renderer struct {
	passes []Pass
	camera *graphics.Camera

	width  int
	height int
}

// New configures GL state, creates the camera and initializes all passes.
func New(width, height int, passes ...Pass) (*Renderer, error) {
	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.FrontFace(gl.CCW)

	r := &Renderer{
		passes: passes,
		camera: graphics.NewCamera(width, height),
		width:  width,
		height: height,
	}

	for _, p := range r.passes {
		if err := p.Init(); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Render executes one frame through every pass.
func (r *Renderer) Render(s *scene.Scene, dt float64) {
	defer profiling.Track("renderer.Render")()

	gl.ClearColor(0.02, 0.02, 0.03, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	ctx := RenderContext{
		Camera: r.camera,
		Scene:  s,
		DT:     dt,
		View:   r.camera.ViewMatrix(),
		Proj:   r.camera.ProjectionMatrix(),
		Width:  r.width,
		Height: r.height,
	}

	for _, p := range r.passes {
		p.Render(ctx)
	}
}

// ReloadShaders recompiles shaders on every pass that supports it.
// A failed reload keeps the previous program and is only logged.
func (r *Renderer) ReloadShaders() {
	for _, p := range r.passes {
		rl, ok := p.(ShaderReloader)
		if !ok {
			continue
		}
		if err := rl.ReloadShaders(); err != nil {
			logging.Warnf("Shader reload failed: %v", err)
		}
	}
	logging.Infof("Shaders reloaded")
}

// Resize propagates a new framebuffer size to the camera and passes.
func (r *Renderer) Resize(width, height int) {
	if width == 0 || height == 0 {
		return
	}
	r.width = width
	r.height = height
	r.camera.SetViewport(width, height)
	for _, p := range r.passes {
		p.Resize(width, height)
	}
	gl.Viewport(0, 0, int32(width), int32(height))
}

// Camera returns the renderer's camera.
func (r *Renderer) Camera() *graphics.Camera {
	return r.camera
}

// Dispose cleans up all passes in reverse order
func (r *Renderer) Dispose() {
	for i := len(r.passes) - 1; i >= 0; i-- {
		r.passes[i].Dispose()
	}
}
