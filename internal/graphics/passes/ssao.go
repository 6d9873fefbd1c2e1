package passes

import (
	"fmt"
	"math/rand"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/urosevicvuk/gameGL/internal/graphics"
	"github.com/urosevicvuk/gameGL/internal/graphics/renderer"
	"github.com/urosevicvuk/gameGL/internal/logging"
	"github.com/urosevicvuk/gameGL/internal/profiling"
)

const (
	// KernelSize is the number of hemisphere samples per fragment.
	KernelSize = 64

	noiseSize = 4
)

// GenerateKernel returns n hemisphere sample vectors (z >= 0, length <= 1)
// with samples accelerated toward the origin so nearby occluders weigh more.
func GenerateKernel(n int) []mgl32.Vec3 {
	rng := rand.New(rand.NewSource(42))
	kernel := make([]mgl32.Vec3, n)
	for i := range kernel {
		v := mgl32.Vec3{
			rng.Float32()*2 - 1,
			rng.Float32()*2 - 1,
			rng.Float32(),
		}.Normalize().Mul(rng.Float32())

		t := float32(i) / float32(n)
		scale := 0.1 + 0.9*t*t
		kernel[i] = v.Mul(scale)
	}
	return kernel
}

// generateNoise returns the 4x4 rotation noise values: random vectors in
// the XY plane used to rotate the kernel per fragment.
func generateNoise() []float32 {
	rng := rand.New(rand.NewSource(7))
	noise := make([]float32, 0, noiseSize*noiseSize*3)
	for i := 0; i < noiseSize*noiseSize; i++ {
		noise = append(noise, rng.Float32()*2-1, rng.Float32()*2-1, 0)
	}
	return noise
}

// SSAOPass computes screen-space ambient occlusion from the G-buffer
// into an R8 target, then box-blurs it to hide the noise pattern.
type SSAOPass struct {
	width  int
	height int

	gbuffer *GBufferPass
	quad    *graphics.Quad

	fbo     uint32
	tex     uint32
	blurFbo uint32
	blurTex uint32

	noiseTex uint32
	kernel   []mgl32.Vec3

	shader     *graphics.Shader
	blurShader *graphics.Shader
}

// NewSSAOPass creates the pass. It reads the given G-buffer's position
// and normal targets.
func NewSSAOPass(width, height int, gbuffer *GBufferPass, quad *graphics.Quad) *SSAOPass {
	return &SSAOPass{width: width, height: height, gbuffer: gbuffer, quad: quad}
}

// Init compiles the occlusion and blur shaders and allocates targets.
func (p *SSAOPass) Init() error {
	shader, err := graphics.NewShader("assets/shaders/quad.vert", "assets/shaders/ssao.frag")
	if err != nil {
		return fmt.Errorf("ssao shader: %w", err)
	}
	p.shader = shader

	blur, err := graphics.NewShader("assets/shaders/quad.vert", "assets/shaders/ssao_blur.frag")
	if err != nil {
		return fmt.Errorf("ssao blur shader: %w", err)
	}
	p.blurShader = blur

	p.kernel = GenerateKernel(KernelSize)
	p.uploadStaticUniforms()

	noise := generateNoise()
	gl.GenTextures(1, &p.noiseTex)
	gl.BindTexture(gl.TEXTURE_2D, p.noiseTex)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGB16F, noiseSize, noiseSize, 0, gl.RGB, gl.FLOAT, gl.Ptr(noise))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)

	return p.allocate()
}

// uploadStaticUniforms sets the uniforms that never change per frame:
// sampler units and the hemisphere kernel.
func (p *SSAOPass) uploadStaticUniforms() {
	p.shader.Use()
	p.shader.SetInt("gPosition", 0)
	p.shader.SetInt("gNormal", 1)
	p.shader.SetInt("noiseTex", 2)
	for i, s := range p.kernel {
		p.shader.SetVector3(fmt.Sprintf("samples[%d]", i), s.X(), s.Y(), s.Z())
	}

	p.blurShader.Use()
	p.blurShader.SetInt("ssaoInput", 0)
	gl.UseProgram(0)
}

func (p *SSAOPass) allocate() error {
	p.release()

	alloc := func(fbo, tex *uint32) error {
		gl.GenFramebuffers(1, fbo)
		gl.BindFramebuffer(gl.FRAMEBUFFER, *fbo)
		gl.GenTextures(1, tex)
		gl.BindTexture(gl.TEXTURE_2D, *tex)
		gl.TexImage2D(gl.TEXTURE_2D, 0, gl.R8, int32(p.width), int32(p.height), 0, gl.RED, gl.UNSIGNED_BYTE, nil)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
		gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, *tex, 0)
		if status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER); status != gl.FRAMEBUFFER_COMPLETE {
			gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
			return fmt.Errorf("ssao framebuffer incomplete: 0x%x", status)
		}
		return nil
	}

	if err := alloc(&p.fbo, &p.tex); err != nil {
		return err
	}
	if err := alloc(&p.blurFbo, &p.blurTex); err != nil {
		return err
	}
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	return nil
}

// Render computes occlusion and blurs it.
func (p *SSAOPass) Render(ctx renderer.RenderContext) {
	defer profiling.Track("passes.SSAO")()

	// Occlusion
	gl.BindFramebuffer(gl.FRAMEBUFFER, p.fbo)
	gl.Viewport(0, 0, int32(p.width), int32(p.height))
	gl.Clear(gl.COLOR_BUFFER_BIT)

	p.shader.Use()
	view := ctx.View
	proj := ctx.Proj
	p.shader.SetMatrix4("view", &view[0])
	p.shader.SetMatrix4("projection", &proj[0])
	p.shader.SetVector2("noiseScale", float32(p.width)/noiseSize, float32(p.height)/noiseSize)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, p.gbuffer.PositionTex())
	gl.ActiveTexture(gl.TEXTURE1)
	gl.BindTexture(gl.TEXTURE_2D, p.gbuffer.NormalTex())
	gl.ActiveTexture(gl.TEXTURE2)
	gl.BindTexture(gl.TEXTURE_2D, p.noiseTex)
	p.quad.Draw()

	// Blur
	gl.BindFramebuffer(gl.FRAMEBUFFER, p.blurFbo)
	gl.Clear(gl.COLOR_BUFFER_BIT)
	p.blurShader.Use()
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, p.tex)
	p.quad.Draw()

	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
}

// OcclusionTex returns the blurred occlusion target sampled by the
// lighting pass.
func (p *SSAOPass) OcclusionTex() uint32 { return p.blurTex }

// Resize reallocates the occlusion targets.
func (p *SSAOPass) Resize(width, height int) {
	if width == p.width && height == p.height {
		return
	}
	p.width = width
	p.height = height
	if err := p.allocate(); err != nil {
		logging.Errorf("SSAO reallocation failed: %v", err)
	}
}

// ReloadShaders recompiles both shaders and re-uploads the kernel.
func (p *SSAOPass) ReloadShaders() error {
	if err := p.shader.Reload(); err != nil {
		return err
	}
	if err := p.blurShader.Reload(); err != nil {
		return err
	}
	p.uploadStaticUniforms()
	return nil
}

func (p *SSAOPass) release() {
	if p.fbo != 0 {
		gl.DeleteFramebuffers(1, &p.fbo)
		gl.DeleteTextures(1, &p.tex)
		p.fbo, p.tex = 0, 0
	}
	if p.blurFbo != 0 {
		gl.DeleteFramebuffers(1, &p.blurFbo)
		gl.DeleteTextures(1, &p.blurTex)
		p.blurFbo, p.blurTex = 0, 0
	}
}

// Dispose releases the GL objects.
func (p *SSAOPass) Dispose() {
	p.release()
	if p.noiseTex != 0 {
		gl.DeleteTextures(1, &p.noiseTex)
		p.noiseTex = 0
	}
	if p.shader != nil {
		p.shader.Dispose()
	}
	if p.blurShader != nil {
		p.blurShader.Dispose()
	}
}
