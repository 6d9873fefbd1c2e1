package passes

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/urosevicvuk/gameGL/internal/graphics"
	"github.com/urosevicvuk/gameGL/internal/graphics/renderer"
	"github.com/urosevicvuk/gameGL/internal/profiling"
	"github.com/urosevicvuk/gameGL/internal/scene"
)

// Texture unit assignments for the composite shader. Cube maps start
// after the screen-space inputs.
const (
	unitPosition   = 0
	unitNormal     = 1
	unitAlbedoSpec = 2
	unitSSAO       = 3
	unitShadowBase = 4
)

// lightLocs holds the uniform locations of one lights[i] slot, resolved
// once at link time so the hot path never formats uniform names.
type lightLocs struct {
	position      int32
	color         int32
	radius        int32
	shadowEnabled int32
}

// LightingPass reads the G-buffer, SSAO and shadow maps and composites
// the final shaded image to the screen.
type LightingPass struct {
	gbuffer *GBufferPass
	ssao    *SSAOPass
	shadow  *CubeShadowPass
	quad    *graphics.Quad

	shader *graphics.Shader

	lights     [scene.MaxLights]lightLocs
	lightCount int32
	viewPos    int32
	farPlane   int32
}

// NewLightingPass creates the composite pass over the other stages' outputs.
func NewLightingPass(gbuffer *GBufferPass, ssao *SSAOPass, shadow *CubeShadowPass, quad *graphics.Quad) *LightingPass {
	return &LightingPass{gbuffer: gbuffer, ssao: ssao, shadow: shadow, quad: quad}
}

// Init compiles the composite shader and resolves all uniform locations.
func (p *LightingPass) Init() error {
	shader, err := graphics.NewShader("assets/shaders/quad.vert", "assets/shaders/lighting.frag")
	if err != nil {
		return fmt.Errorf("lighting shader: %w", err)
	}
	p.shader = shader
	p.resolveUniforms()
	return nil
}

func (p *LightingPass) resolveUniforms() {
	p.shader.Use()
	p.shader.SetInt("gPosition", unitPosition)
	p.shader.SetInt("gNormal", unitNormal)
	p.shader.SetInt("gAlbedoSpec", unitAlbedoSpec)
	p.shader.SetInt("ssaoTex", unitSSAO)
	for i := 0; i < scene.MaxLights; i++ {
		p.shader.SetInt(fmt.Sprintf("shadowMaps[%d]", i), int32(unitShadowBase+i))
	}

	loc := func(format string, args ...any) int32 {
		name := fmt.Sprintf(format, args...)
		return gl.GetUniformLocation(p.shader.ID, gl.Str(name+"\x00"))
	}
	for i := 0; i < scene.MaxLights; i++ {
		p.lights[i] = lightLocs{
			position:      loc("lights[%d].Position", i),
			color:         loc("lights[%d].Color", i),
			radius:        loc("lights[%d].Radius", i),
			shadowEnabled: loc("lights[%d].ShadowEnabled", i),
		}
	}
	p.lightCount = loc("lightCount")
	p.viewPos = loc("viewPos")
	p.farPlane = loc("farPlane")
	gl.UseProgram(0)
}

// Render composites the final image to the default framebuffer.
func (p *LightingPass) Render(ctx renderer.RenderContext) {
	defer profiling.Track("passes.Lighting")()

	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	gl.Viewport(0, 0, int32(ctx.Width), int32(ctx.Height))
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	p.shader.Use()

	gl.ActiveTexture(gl.TEXTURE0 + unitPosition)
	gl.BindTexture(gl.TEXTURE_2D, p.gbuffer.PositionTex())
	gl.ActiveTexture(gl.TEXTURE0 + unitNormal)
	gl.BindTexture(gl.TEXTURE_2D, p.gbuffer.NormalTex())
	gl.ActiveTexture(gl.TEXTURE0 + unitAlbedoSpec)
	gl.BindTexture(gl.TEXTURE_2D, p.gbuffer.AlbedoSpecTex())
	gl.ActiveTexture(gl.TEXTURE0 + unitSSAO)
	gl.BindTexture(gl.TEXTURE_2D, p.ssao.OcclusionTex())

	lights := ctx.Scene.ActiveLights()
	gl.Uniform1i(p.lightCount, int32(len(lights)))
	pos := ctx.Camera.Position
	gl.Uniform3f(p.viewPos, pos.X(), pos.Y(), pos.Z())
	gl.Uniform1f(p.farPlane, ShadowFarPlane)

	for i, l := range lights {
		if i >= scene.MaxLights {
			break
		}
		gl.Uniform3f(p.lights[i].position, l.Position.X(), l.Position.Y(), l.Position.Z())
		gl.Uniform3f(p.lights[i].color, l.Color.X(), l.Color.Y(), l.Color.Z())
		gl.Uniform1f(p.lights[i].radius, l.Radius)

		tex, fresh := p.shadow.MapFor(i)
		var enabled int32
		if fresh {
			enabled = 1
		}
		gl.Uniform1i(p.lights[i].shadowEnabled, enabled)
		gl.ActiveTexture(uint32(gl.TEXTURE0 + unitShadowBase + i))
		gl.BindTexture(gl.TEXTURE_CUBE_MAP, tex)
	}

	p.quad.Draw()
}

// Resize is a no-op: the pass draws into the default framebuffer, whose
// size comes from the render context.
func (p *LightingPass) Resize(width, height int) {}

// ReloadShaders recompiles the composite shader and re-resolves locations.
func (p *LightingPass) ReloadShaders() error {
	if err := p.shader.Reload(); err != nil {
		return err
	}
	p.resolveUniforms()
	return nil
}

// Dispose releases the shader.
func (p *LightingPass) Dispose() {
	if p.shader != nil {
		p.shader.Dispose()
	}
}
