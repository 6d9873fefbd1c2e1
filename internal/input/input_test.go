package input

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func TestJustPressedEdgeDetection(t *testing.T) {
	m := NewManager()

	m.HandleKeyEvent(glfw.KeyF, glfw.Press)
	if !m.JustPressed(ActionToggleFlashlight) {
		t.Fatalf("Expected JustPressed after press event")
	}
	if !m.IsActive(ActionToggleFlashlight) {
		t.Errorf("Expected action active while key held")
	}

	// Edge flag clears at frame end but the key stays held
	m.PostUpdate()
	if m.JustPressed(ActionToggleFlashlight) {
		t.Errorf("Expected JustPressed cleared after PostUpdate")
	}
	if !m.IsActive(ActionToggleFlashlight) {
		t.Errorf("Expected action still active after PostUpdate")
	}

	// Repeat events must not retrigger the pressed edge
	m.HandleKeyEvent(glfw.KeyF, glfw.Repeat)
	if m.JustPressed(ActionToggleFlashlight) {
		t.Errorf("Expected no pressed edge from key repeat")
	}

	m.HandleKeyEvent(glfw.KeyF, glfw.Release)
	if !m.JustReleased(ActionToggleFlashlight) {
		t.Errorf("Expected JustReleased after release event")
	}
	if m.IsActive(ActionToggleFlashlight) {
		t.Errorf("Expected action inactive after release")
	}
}

func TestUnboundKeyIgnored(t *testing.T) {
	m := NewManager()

	m.HandleKeyEvent(glfw.KeyP, glfw.Press)
	for a := Action(0); a < ActionCount; a++ {
		if m.IsActive(a) || m.JustPressed(a) {
			t.Fatalf("Unbound key activated action %d", a)
		}
	}
}

func TestConsumeScroll(t *testing.T) {
	m := NewManager()

	m.HandleScroll(0, 1.5)
	m.HandleScroll(0, -0.5)
	if got := m.ConsumeScroll(); got != 1.0 {
		t.Errorf("Expected accumulated scroll 1.0, got %v", got)
	}
	if got := m.ConsumeScroll(); got != 0 {
		t.Errorf("Expected scroll cleared after consume, got %v", got)
	}
}
