// Package scene holds the data-driven tavern description: meshes,
// materials, placed instances and the point-light rig, loaded once from
// a TOML file. The scene owns no GPU render targets; shadow and G-buffer
// resources belong to the render passes.
package scene

import (
	"fmt"
	"os"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/urosevicvuk/gameGL/internal/config"
	"github.com/urosevicvuk/gameGL/internal/graphics"
	"github.com/urosevicvuk/gameGL/internal/graphics/mesh"
	"github.com/urosevicvuk/gameGL/internal/logging"
)

// MaxLights is the number of light slots in the lighting shader.
const MaxLights = 8

const (
	// Flashlight hover distance in front of the camera, scroll-adjustable.
	MinFlashlightDistance     = 0.5
	MaxFlashlightDistance     = 10.0
	DefaultFlashlightDistance = 2.0

	// The startup pulse turns the flashlight on for a moment at launch so
	// the player sees the scene before reaching the candles.
	startupPulseDuration = 0.5
)

// PointLight is one omnidirectional light pushed to the lighting shader.
type PointLight struct {
	Position mgl32.Vec3
	Color    mgl32.Vec3
	Radius   float32

	CastsShadow bool
	Flashlight  bool

	// Flicker animation state, zero for steady lights.
	flicker     bool
	flickerSeed float32
	basePos     mgl32.Vec3
	baseColor   mgl32.Vec3
}

// Material holds bound texture handles and fallback shading parameters.
type Material struct {
	ID string

	Diffuse  uint32
	Normal   uint32
	Specular uint32

	HasDiffuse  bool
	HasNormal   bool
	HasSpecular bool

	FlatColor mgl32.Vec3
	Roughness float32
	Metallic  float32
}

// Instance is one placed mesh: transform and world bounds are computed
// once at load and never mutated.
type Instance struct {
	Mesh     *mesh.Mesh
	Material *Material
	Model    mgl32.Mat4

	// World-space AABB for frustum culling.
	Min mgl32.Vec3
	Max mgl32.Vec3
}

// Scene is the loaded tavern plus its debug light state.
type Scene struct {
	Instances []Instance

	meshes    map[string]*mesh.Mesh
	materials map[string]*Material

	lights []PointLight

	flashlightOn   bool
	flashlightDist float32
	flashlight     PointLight

	pulseRemaining float64
	elapsed        float64
}

// New returns an empty scene with the light rig defaults. Used directly
// by tests; Load populates one from a scene file.
func New() *Scene {
	return &Scene{
		meshes:         make(map[string]*mesh.Mesh),
		materials:      make(map[string]*Material),
		flashlightDist: DefaultFlashlightDistance,
		flashlightOn:   true,
		pulseRemaining: startupPulseDuration,
		flashlight: PointLight{
			Color:       mgl32.Vec3{1.0, 0.95, 0.8},
			Radius:      config.DefaultLightRadius,
			CastsShadow: true,
			Flashlight:  true,
		},
	}
}

// Load reads a scene description, builds GPU meshes and materials, and
// resolves instances. Missing assets degrade: a failed texture leaves the
// material flat-colored, a failed mesh skips its instances.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene file: %v", err)
	}
	file, err := decodeScene(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	s := New()

	for _, m := range file.Materials {
		s.materials[m.ID] = buildMaterial(m)
	}
	for _, md := range file.Meshes {
		built, err := buildMesh(md)
		if err != nil {
			logging.Warnf("Skipping mesh %q: %v", md.ID, err)
			continue
		}
		s.meshes[md.ID] = built
	}

	for _, inst := range file.Instances {
		m, ok := s.meshes[inst.Mesh]
		if !ok {
			logging.Warnf("Instance references unknown mesh %q, skipped", inst.Mesh)
			continue
		}
		mat, ok := s.materials[inst.Material]
		if !ok {
			logging.Warnf("Instance references unknown material %q, using fallback", inst.Material)
			mat = &Material{ID: inst.Material, FlatColor: mgl32.Vec3{0.8, 0.2, 0.8}, Roughness: 1}
		}
		model := inst.modelMatrix()
		min, max := graphics.TransformAABB(m.Min, m.Max, model)
		s.Instances = append(s.Instances, Instance{
			Mesh:     m,
			Material: mat,
			Model:    model,
			Min:      min,
			Max:      max,
		})
	}

	for _, l := range file.Lights {
		s.lights = append(s.lights, PointLight{
			Position:    l.position(),
			Color:       l.color(),
			Radius:      clampRadius(l.Radius),
			CastsShadow: l.Shadows,
			flicker:     l.Flicker,
			flickerSeed: float32(len(s.lights)) * 1.7,
			basePos:     l.position(),
			baseColor:   l.color(),
		})
	}
	if len(s.lights) > MaxLights-1 {
		logging.Warnf("Scene declares %d lights, keeping %d plus the flashlight", len(s.lights), MaxLights-1)
		s.lights = s.lights[:MaxLights-1]
	}

	logging.Infof("Loaded scene %s: %d instances, %d lights", path, len(s.Instances), len(s.lights))
	return s, nil
}

// AddLight appends a static light to the rig. Mainly for tests.
func (s *Scene) AddLight(l PointLight) {
	l.basePos = l.Position
	l.baseColor = l.Color
	s.lights = append(s.lights, l)
}

// Update advances the light rig: candle flicker, flashlight follow and
// the one-shot startup pulse.
func (s *Scene) Update(dt float64, cam *graphics.Camera) {
	s.elapsed += dt

	if s.pulseRemaining > 0 {
		s.pulseRemaining -= dt
		if s.pulseRemaining <= 0 && s.flashlightOn {
			s.flashlightOn = false
			logging.Debugf("Startup flashlight pulse ended")
		}
	}

	t := float32(s.elapsed)
	for i := range s.lights {
		l := &s.lights[i]
		if !l.flicker {
			continue
		}
		// Small positional wobble plus intensity modulation, like a flame.
		wobble := mgl32.Vec3{
			0.02 * math32.Sin(t*7.3+l.flickerSeed),
			0.015 * math32.Sin(t*11.1+l.flickerSeed*2),
			0.02 * math32.Cos(t*5.7+l.flickerSeed),
		}
		l.Position = l.basePos.Add(wobble)
		intensity := 0.85 + 0.15*math32.Sin(t*9.4+l.flickerSeed*3)
		l.Color = l.baseColor.Mul(intensity)
	}

	if cam != nil {
		s.flashlight.Position = cam.Position.Add(cam.Front().Mul(s.flashlightDist))
	}
	s.flashlight.Radius = config.GetLightRadius()
}

// ToggleFlashlight flips the flashlight and cancels a pending startup pulse.
func (s *Scene) ToggleFlashlight() {
	s.pulseRemaining = 0
	s.flashlightOn = !s.flashlightOn
}

// FlashlightOn reports whether the flashlight is lit.
func (s *Scene) FlashlightOn() bool {
	return s.flashlightOn
}

// AdjustFlashlightDistance moves the flashlight along the view ray.
func (s *Scene) AdjustFlashlightDistance(delta float32) {
	s.flashlightDist += delta
	if s.flashlightDist < MinFlashlightDistance {
		s.flashlightDist = MinFlashlightDistance
	}
	if s.flashlightDist > MaxFlashlightDistance {
		s.flashlightDist = MaxFlashlightDistance
	}
}

// FlashlightDistance returns the current follow distance.
func (s *Scene) FlashlightDistance() float32 {
	return s.flashlightDist
}

// ActiveLights returns the lights to shade this frame: the static rig
// plus the flashlight when lit, capped at MaxLights.
func (s *Scene) ActiveLights() []PointLight {
	out := make([]PointLight, 0, len(s.lights)+1)
	out = append(out, s.lights...)
	if s.flashlightOn {
		out = append(out, s.flashlight)
	}
	if len(out) > MaxLights {
		out = out[:MaxLights]
	}
	return out
}

// Reset restores the light rig to its loaded state.
func (s *Scene) Reset() {
	for i := range s.lights {
		s.lights[i].Position = s.lights[i].basePos
		s.lights[i].Color = s.lights[i].baseColor
	}
	s.flashlightOn = false
	s.flashlightDist = DefaultFlashlightDistance
	s.pulseRemaining = 0
	config.SetLightRadius(config.DefaultLightRadius)
	logging.Infof("Scene light rig reset")
}

// Dispose releases the scene's GPU meshes and textures.
func (s *Scene) Dispose() {
	for _, m := range s.meshes {
		m.Dispose()
	}
	s.meshes = map[string]*mesh.Mesh{}
	s.Instances = nil
}

func clampRadius(r float32) float32 {
	if r <= 0 {
		return config.DefaultLightRadius
	}
	if r < config.MinLightRadius {
		return config.MinLightRadius
	}
	if r > config.MaxLightRadius {
		return config.MaxLightRadius
	}
	return r
}
