package passes

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/urosevicvuk/gameGL/internal/config"
	"github.com/urosevicvuk/gameGL/internal/graphics"
	"github.com/urosevicvuk/gameGL/internal/graphics/renderer"
	"github.com/urosevicvuk/gameGL/internal/profiling"
	"github.com/urosevicvuk/gameGL/internal/scene"
)

const (
	// ShadowNearPlane and ShadowFarPlane bound the per-face projection.
	// The lighting shader divides fragment-to-light distance by the far
	// plane to match the stored linear depth.
	ShadowNearPlane = 0.1
	ShadowFarPlane  = 25.0
)

// cubeFaceDirs is the canonical cube map face order:
// +X, -X, +Y, -Y, +Z, -Z.
var cubeFaceDirs = [6]mgl32.Vec3{
	{1, 0, 0},
	{-1, 0, 0},
	{0, 1, 0},
	{0, -1, 0},
	{0, 0, 1},
	{0, 0, -1},
}

// cubeFaceUps holds the per-face up vectors. Cube map faces use a
// flipped Y convention, so up is (0,-1,0) everywhere except the Y faces,
// where it must leave the view axis to keep the cross product non-degenerate.
var cubeFaceUps = [6]mgl32.Vec3{
	{0, -1, 0},
	{0, -1, 0},
	{0, 0, 1},
	{0, 0, -1},
	{0, -1, 0},
	{0, -1, 0},
}

// CubeFaceViews returns the six view matrices for a light at pos, in
// canonical face order.
func CubeFaceViews(pos mgl32.Vec3) [6]mgl32.Mat4 {
	var views [6]mgl32.Mat4
	for i := 0; i < 6; i++ {
		views[i] = mgl32.LookAtV(pos, pos.Add(cubeFaceDirs[i]), cubeFaceUps[i])
	}
	return views
}

// CubeFaceProjection returns the 90 degree square projection shared by
// all faces.
func CubeFaceProjection() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(90), 1.0, ShadowNearPlane, ShadowFarPlane)
}

type cubeMap struct {
	fbo uint32
	tex uint32
}

// CubeShadowPass renders a depth cube map per shadow-casting light.
// This is O(lights x faces x draws), the most expensive stage of the frame.
type CubeShadowPass struct {
	size int32

	maps     [scene.MaxLights]cubeMap
	rendered [scene.MaxLights]bool

	shader *graphics.Shader
}

// NewCubeShadowPass creates the pass with the configured face resolution.
func NewCubeShadowPass() *CubeShadowPass {
	return &CubeShadowPass{size: int32(config.GetShadowMapSize())}
}

// Init compiles the depth shader and allocates one cube map per light slot.
func (p *CubeShadowPass) Init() error {
	shader, err := graphics.NewShader("assets/shaders/shadow_depth.vert", "assets/shaders/shadow_depth.frag")
	if err != nil {
		return fmt.Errorf("shadow depth shader: %w", err)
	}
	p.shader = shader

	for i := range p.maps {
		if err := p.allocateCubeMap(&p.maps[i]); err != nil {
			return err
		}
	}
	return nil
}

func (p *CubeShadowPass) allocateCubeMap(m *cubeMap) error {
	gl.GenTextures(1, &m.tex)
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, m.tex)
	for face := 0; face < 6; face++ {
		gl.TexImage2D(uint32(gl.TEXTURE_CUBE_MAP_POSITIVE_X+face), 0, gl.DEPTH_COMPONENT24,
			p.size, p.size, 0, gl.DEPTH_COMPONENT, gl.FLOAT, nil)
	}
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_R, gl.CLAMP_TO_EDGE)

	gl.GenFramebuffers(1, &m.fbo)
	gl.BindFramebuffer(gl.FRAMEBUFFER, m.fbo)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.DEPTH_ATTACHMENT, gl.TEXTURE_CUBE_MAP_POSITIVE_X, m.tex, 0)
	gl.DrawBuffer(gl.NONE)
	gl.ReadBuffer(gl.NONE)
	if status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER); status != gl.FRAMEBUFFER_COMPLETE {
		gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
		return fmt.Errorf("shadow cube framebuffer incomplete: 0x%x", status)
	}
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	return nil
}

// Render draws the scene into the cube map of every light permitted by
// the current shadow mode.
func (p *CubeShadowPass) Render(ctx renderer.RenderContext) {
	defer profiling.Track("passes.CubeShadow")()

	for i := range p.rendered {
		p.rendered[i] = false
	}

	mode := config.GetShadowMode()
	if mode == config.ShadowOff {
		return
	}

	lights := ctx.Scene.ActiveLights()
	proj := CubeFaceProjection()

	p.shader.Use()
	p.shader.SetMatrix4("projection", &proj[0])
	p.shader.SetFloat("farPlane", ShadowFarPlane)
	gl.Viewport(0, 0, p.size, p.size)

	for i, light := range lights {
		if i >= scene.MaxLights {
			break
		}
		if !light.CastsShadow {
			continue
		}
		if mode == config.ShadowFlashlightOnly && !light.Flashlight {
			continue
		}

		p.shader.SetVector3("lightPos", light.Position.X(), light.Position.Y(), light.Position.Z())
		views := CubeFaceViews(light.Position)

		gl.BindFramebuffer(gl.FRAMEBUFFER, p.maps[i].fbo)
		for face := 0; face < 6; face++ {
			gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.DEPTH_ATTACHMENT,
				uint32(gl.TEXTURE_CUBE_MAP_POSITIVE_X+face), p.maps[i].tex, 0)
			gl.Clear(gl.DEPTH_BUFFER_BIT)

			p.shader.SetMatrix4("view", &views[face][0])
			for j := range ctx.Scene.Instances {
				inst := &ctx.Scene.Instances[j]
				model := inst.Model
				p.shader.SetMatrix4("model", &model[0])
				inst.Mesh.Draw()
			}
		}
		p.rendered[i] = true
	}

	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
}

// MapFor returns the cube map texture for light slot i and whether it
// holds fresh depth this frame.
func (p *CubeShadowPass) MapFor(i int) (uint32, bool) {
	if i < 0 || i >= scene.MaxLights {
		return 0, false
	}
	return p.maps[i].tex, p.rendered[i]
}

// Resize is a no-op: shadow resolution is independent of the window.
func (p *CubeShadowPass) Resize(width, height int) {}

// ReloadShaders recompiles the depth shader.
func (p *CubeShadowPass) ReloadShaders() error {
	return p.shader.Reload()
}

// Dispose releases the GL objects.
func (p *CubeShadowPass) Dispose() {
	for i := range p.maps {
		if p.maps[i].fbo != 0 {
			gl.DeleteFramebuffers(1, &p.maps[i].fbo)
		}
		if p.maps[i].tex != 0 {
			gl.DeleteTextures(1, &p.maps[i].tex)
		}
		p.maps[i] = cubeMap{}
	}
	if p.shader != nil {
		p.shader.Dispose()
	}
}
