package graphics_test

import (
	"testing"

	"github.com/urosevicvuk/gameGL/internal/graphics"
)

func TestPitchClamp(t *testing.T) {
	c := graphics.NewCamera(1280, 720)

	// Huge upward swipe
	c.ApplyLook(0, 1e6)
	if c.Pitch > graphics.PitchLimit {
		t.Fatalf("Pitch exceeded limit: %v", c.Pitch)
	}
	if c.Pitch != graphics.PitchLimit {
		t.Errorf("Expected pitch clamped at %v, got %v", float32(graphics.PitchLimit), c.Pitch)
	}

	// Huge downward swipe
	c.ApplyLook(0, -1e7)
	if c.Pitch < -graphics.PitchLimit {
		t.Fatalf("Pitch exceeded lower limit: %v", c.Pitch)
	}
	if c.Pitch != -graphics.PitchLimit {
		t.Errorf("Expected pitch clamped at %v, got %v", float32(-graphics.PitchLimit), c.Pitch)
	}

	// Many alternating large deltas must never escape the range
	for i := 0; i < 1000; i++ {
		d := float32(1)
		if i%2 == 0 {
			d = -1
		}
		c.ApplyLook(0, d*12345)
		if c.Pitch > graphics.PitchLimit || c.Pitch < -graphics.PitchLimit {
			t.Fatalf("Pitch left [-89, 89] on iteration %d: %v", i, c.Pitch)
		}
	}
}

func TestFrontMatchesYawPitch(t *testing.T) {
	c := graphics.NewCamera(1280, 720)

	// Default yaw -90, pitch 0 looks down -Z
	front := c.Front()
	if front.X() < -0.001 || front.X() > 0.001 || front.Z() > -0.999 {
		t.Errorf("Expected front ~(0,0,-1), got %v", front)
	}

	// Right vector must stay horizontal and orthogonal to front
	right := c.Right()
	if right.Y() < -0.001 || right.Y() > 0.001 {
		t.Errorf("Expected horizontal right vector, got %v", right)
	}
	dot := front.Dot(right)
	if dot < -0.001 || dot > 0.001 {
		t.Errorf("Expected front orthogonal to right, dot = %v", dot)
	}
}
