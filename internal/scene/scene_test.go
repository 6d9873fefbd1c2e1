package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func testScene() *Scene {
	s := New()
	s.AddLight(PointLight{
		Position: mgl32.Vec3{0, 2, 0},
		Color:    mgl32.Vec3{1, 0.6, 0.3},
		Radius:   8,
	})
	s.AddLight(PointLight{
		Position: mgl32.Vec3{3, 2, 1},
		Color:    mgl32.Vec3{1, 0.6, 0.3},
		Radius:   8,
		flicker:  true,
	})
	return s
}

func TestFlashlightToggleIdempotent(t *testing.T) {
	s := testScene()

	before := len(s.ActiveLights())
	s.ToggleFlashlight()
	s.ToggleFlashlight()
	after := len(s.ActiveLights())
	if before != after {
		t.Errorf("Expected light count %d after double toggle, got %d", before, after)
	}
}

func TestFlashlightAddsOneLight(t *testing.T) {
	s := testScene()
	s.ToggleFlashlight() // cancel the startup pulse, flashlight now off

	off := len(s.ActiveLights())
	s.ToggleFlashlight()
	on := len(s.ActiveLights())
	if on != off+1 {
		t.Errorf("Expected flashlight to add one light, got %d -> %d", off, on)
	}
}

func TestStartupPulseAutoDisables(t *testing.T) {
	s := testScene()
	if !s.FlashlightOn() {
		t.Fatalf("Expected flashlight on at startup")
	}
	s.Update(1.0, nil)
	if s.FlashlightOn() {
		t.Errorf("Expected startup pulse to disable flashlight after 0.5s")
	}
}

func TestToggleCancelsStartupPulse(t *testing.T) {
	s := testScene()
	s.ToggleFlashlight() // user turns it off before the pulse ends
	s.ToggleFlashlight() // and back on
	s.Update(1.0, nil)
	if !s.FlashlightOn() {
		t.Errorf("Expected manual toggle to cancel the startup pulse")
	}
}

func TestFlashlightDistanceClamp(t *testing.T) {
	s := testScene()
	s.AdjustFlashlightDistance(-100)
	if d := s.FlashlightDistance(); d != MinFlashlightDistance {
		t.Errorf("Expected distance clamped to %v, got %v", float32(MinFlashlightDistance), d)
	}
	s.AdjustFlashlightDistance(100)
	if d := s.FlashlightDistance(); d != MaxFlashlightDistance {
		t.Errorf("Expected distance clamped to %v, got %v", float32(MaxFlashlightDistance), d)
	}
}

func TestFlickerKeepsLightNearBase(t *testing.T) {
	s := testScene()
	for i := 0; i < 100; i++ {
		s.Update(0.016, nil)
	}
	l := s.lights[1]
	if l.Position.Sub(l.basePos).Len() > 0.1 {
		t.Errorf("Expected flicker wobble to stay near base position, drifted %v", l.Position.Sub(l.basePos).Len())
	}
}

func TestResetRestoresRig(t *testing.T) {
	s := testScene()
	for i := 0; i < 50; i++ {
		s.Update(0.016, nil)
	}
	s.ToggleFlashlight()
	s.Reset()

	if s.FlashlightOn() {
		t.Errorf("Expected flashlight off after reset")
	}
	if s.lights[1].Position != s.lights[1].basePos {
		t.Errorf("Expected light position restored after reset")
	}
	if s.FlashlightDistance() != DefaultFlashlightDistance {
		t.Errorf("Expected flashlight distance restored after reset")
	}
}

func TestDecodeScene(t *testing.T) {
	src := `
[[materials]]
id = "wood"
color = [0.6, 0.4, 0.2]
roughness = 0.8

[[meshes]]
id = "table"
kind = "box"
size = [1.4, 0.08, 0.9]

[[instances]]
mesh = "table"
material = "wood"
position = [1.0, 0.75, -2.0]
rotation = [0.0, 45.0, 0.0]

[[lights]]
position = [0.0, 2.5, 0.0]
color = [1.0, 0.7, 0.4]
radius = 6.0
flicker = true
shadows = true
`
	f, err := decodeScene([]byte(src))
	if err != nil {
		t.Fatalf("Unexpected decode error: %v", err)
	}
	if len(f.Materials) != 1 || len(f.Meshes) != 1 || len(f.Instances) != 1 || len(f.Lights) != 1 {
		t.Fatalf("Unexpected section counts: %+v", f)
	}
	if f.Lights[0].Radius != 6.0 || !f.Lights[0].Flicker {
		t.Errorf("Light fields not decoded: %+v", f.Lights[0])
	}

	model := f.Instances[0].modelMatrix()
	origin := model.Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	want := mgl32.Vec4{1, 0.75, -2, 1}
	if !origin.ApproxEqualThreshold(want, 1e-5) {
		t.Errorf("Expected instance origin %v, got %v", want, origin)
	}
}

func TestDecodeSceneRejectsDuplicateIDs(t *testing.T) {
	src := `
[[materials]]
id = "wood"
[[materials]]
id = "wood"
`
	if _, err := decodeScene([]byte(src)); err == nil {
		t.Errorf("Expected duplicate material id to be rejected")
	}
}
