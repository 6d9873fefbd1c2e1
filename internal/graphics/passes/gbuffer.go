// Package passes implements the stages of the deferred pipeline: G-buffer
// fill, cube shadow maps, SSAO and the final lighting composite. Each
// stage satisfies the renderer's Pass interface.
package passes

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/urosevicvuk/gameGL/internal/graphics"
	"github.com/urosevicvuk/gameGL/internal/graphics/renderer"
	"github.com/urosevicvuk/gameGL/internal/logging"
	"github.com/urosevicvuk/gameGL/internal/profiling"
)

// gbufferAttachment describes one render target of the G-buffer.
type gbufferAttachment struct {
	name           string
	internalFormat int32
	format         uint32
	dataType       uint32
	depth          bool
	width          int
	height         int
}

// gbufferLayout returns the targets allocated for a window size: world
// position, normal and albedo+specular color targets plus one depth
// texture, all matching the given dimensions.
func gbufferLayout(width, height int) []gbufferAttachment {
	return []gbufferAttachment{
		{name: "gPosition", internalFormat: gl.RGB16F, format: gl.RGB, dataType: gl.FLOAT, width: width, height: height},
		{name: "gNormal", internalFormat: gl.RGB16F, format: gl.RGB, dataType: gl.FLOAT, width: width, height: height},
		{name: "gAlbedoSpec", internalFormat: gl.RGBA8, format: gl.RGBA, dataType: gl.UNSIGNED_BYTE, width: width, height: height},
		{name: "gDepth", internalFormat: gl.DEPTH_COMPONENT24, format: gl.DEPTH_COMPONENT, dataType: gl.FLOAT, depth: true, width: width, height: height},
	}
}

// GBufferPass renders all visible opaque geometry into the G-buffer.
type GBufferPass struct {
	width  int
	height int

	fbo      uint32
	textures []uint32 // color targets in layout order, depth last

	shader *graphics.Shader
}

// NewGBufferPass creates the pass for an initial framebuffer size.
func NewGBufferPass(width, height int) *GBufferPass {
	return &GBufferPass{width: width, height: height}
}

// Init compiles the geometry shader and allocates the render targets.
func (p *GBufferPass) Init() error {
	shader, err := graphics.NewShader("assets/shaders/gbuffer.vert", "assets/shaders/gbuffer.frag")
	if err != nil {
		return fmt.Errorf("gbuffer shader: %w", err)
	}
	p.shader = shader
	p.bindSamplerUnits()
	return p.allocate()
}

func (p *GBufferPass) bindSamplerUnits() {
	p.shader.Use()
	p.shader.SetInt("diffuseMap", 0)
	p.shader.SetInt("normalMap", 1)
	p.shader.SetInt("specularMap", 2)
	gl.UseProgram(0)
}

func (p *GBufferPass) allocate() error {
	p.release()

	gl.GenFramebuffers(1, &p.fbo)
	gl.BindFramebuffer(gl.FRAMEBUFFER, p.fbo)

	layout := gbufferLayout(p.width, p.height)
	colorIndex := 0
	var drawBuffers []uint32
	for _, att := range layout {
		var tex uint32
		gl.GenTextures(1, &tex)
		gl.BindTexture(gl.TEXTURE_2D, tex)
		gl.TexImage2D(gl.TEXTURE_2D, 0, att.internalFormat,
			int32(att.width), int32(att.height), 0, att.format, att.dataType, nil)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)

		if att.depth {
			gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.DEPTH_ATTACHMENT, gl.TEXTURE_2D, tex, 0)
		} else {
			attachPoint := uint32(gl.COLOR_ATTACHMENT0 + colorIndex)
			gl.FramebufferTexture2D(gl.FRAMEBUFFER, attachPoint, gl.TEXTURE_2D, tex, 0)
			drawBuffers = append(drawBuffers, attachPoint)
			colorIndex++
		}
		p.textures = append(p.textures, tex)
	}
	gl.DrawBuffers(int32(len(drawBuffers)), &drawBuffers[0])

	if status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER); status != gl.FRAMEBUFFER_COMPLETE {
		gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
		return fmt.Errorf("gbuffer framebuffer incomplete: 0x%x", status)
	}
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	return nil
}

// Render fills the G-buffer with every instance whose AABB intersects
// the camera frustum.
func (p *GBufferPass) Render(ctx renderer.RenderContext) {
	defer profiling.Track("passes.GBuffer")()

	gl.BindFramebuffer(gl.FRAMEBUFFER, p.fbo)
	gl.Viewport(0, 0, int32(p.width), int32(p.height))
	gl.ClearColor(0, 0, 0, 0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	p.shader.Use()
	view := ctx.View
	proj := ctx.Proj
	p.shader.SetMatrix4("view", &view[0])
	p.shader.SetMatrix4("projection", &proj[0])

	planes := graphics.ExtractFrustumPlanes(proj.Mul4(view))

	for i := range ctx.Scene.Instances {
		inst := &ctx.Scene.Instances[i]
		if !graphics.AABBIntersectsFrustum(inst.Min, inst.Max, planes) {
			continue
		}

		model := inst.Model
		p.shader.SetMatrix4("model", &model[0])

		mat := inst.Material
		p.shader.SetBool("hasDiffuse", mat.HasDiffuse)
		p.shader.SetBool("hasNormal", mat.HasNormal)
		p.shader.SetBool("hasSpecular", mat.HasSpecular)
		p.shader.SetVector3("flatColor", mat.FlatColor.X(), mat.FlatColor.Y(), mat.FlatColor.Z())
		p.shader.SetFloat("roughness", mat.Roughness)
		if mat.HasDiffuse {
			gl.ActiveTexture(gl.TEXTURE0)
			gl.BindTexture(gl.TEXTURE_2D, mat.Diffuse)
		}
		if mat.HasNormal {
			gl.ActiveTexture(gl.TEXTURE1)
			gl.BindTexture(gl.TEXTURE_2D, mat.Normal)
		}
		if mat.HasSpecular {
			gl.ActiveTexture(gl.TEXTURE2)
			gl.BindTexture(gl.TEXTURE_2D, mat.Specular)
		}

		inst.Mesh.Draw()
	}

	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
}

// Resize reallocates the render targets for the new framebuffer size.
func (p *GBufferPass) Resize(width, height int) {
	if width == p.width && height == p.height {
		return
	}
	p.width = width
	p.height = height
	if err := p.allocate(); err != nil {
		logging.Errorf("G-buffer reallocation failed: %v", err)
	}
}

// ReloadShaders recompiles the geometry shader.
func (p *GBufferPass) ReloadShaders() error {
	if err := p.shader.Reload(); err != nil {
		return err
	}
	p.bindSamplerUnits()
	return nil
}

// PositionTex returns the world-position target.
func (p *GBufferPass) PositionTex() uint32 { return p.textures[0] }

// NormalTex returns the normal target.
func (p *GBufferPass) NormalTex() uint32 { return p.textures[1] }

// AlbedoSpecTex returns the albedo+specular target.
func (p *GBufferPass) AlbedoSpecTex() uint32 { return p.textures[2] }

func (p *GBufferPass) release() {
	if len(p.textures) > 0 {
		gl.DeleteTextures(int32(len(p.textures)), &p.textures[0])
		p.textures = nil
	}
	if p.fbo != 0 {
		gl.DeleteFramebuffers(1, &p.fbo)
		p.fbo = 0
	}
}

// Dispose releases the GL objects.
func (p *GBufferPass) Dispose() {
	p.release()
	if p.shader != nil {
		p.shader.Dispose()
	}
}
