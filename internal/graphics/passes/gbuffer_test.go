package passes

import "testing"

func TestGBufferLayout(t *testing.T) {
	layout := gbufferLayout(1280, 720)

	colors, depths := 0, 0
	for _, att := range layout {
		if att.depth {
			depths++
		} else {
			colors++
		}
		if att.width != 1280 || att.height != 720 {
			t.Errorf("Target %s has dimensions %dx%d, expected 1280x720", att.name, att.width, att.height)
		}
	}
	if colors != 3 {
		t.Errorf("Expected exactly 3 color targets, got %d", colors)
	}
	if depths != 1 {
		t.Errorf("Expected exactly 1 depth target, got %d", depths)
	}
}

func TestGBufferLayoutTracksSize(t *testing.T) {
	layout := gbufferLayout(800, 600)
	for _, att := range layout {
		if att.width != 800 || att.height != 600 {
			t.Errorf("Target %s did not track resize: %dx%d", att.name, att.width, att.height)
		}
	}
}
