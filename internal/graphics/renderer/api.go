package renderer

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/urosevicvuk/gameGL/internal/graphics"
	"github.com/urosevicvuk/gameGL/internal/scene"
)

// RenderContext provides shared per-frame state for all passes
type RenderContext struct {
	Camera *graphics.Camera
	Scene  *scene.Scene
	DT     float64
	View   mgl32.Mat4
	Proj   mgl32.Mat4
	Width  int
	Height int
}

// Pass defines the lifecycle of one pipeline stage
type Pass interface {
	Init() error
	Render(ctx RenderContext)
	Resize(width, height int)
	Dispose()
}

// ShaderReloader is implemented by passes whose shaders can be
// recompiled in place, used by the hot-reload watcher.
type ShaderReloader interface {
	ReloadShaders() error
}
