package config

import "sync"

// ShadowMode selects which lights render shadow cube maps.
type ShadowMode int

const (
	// ShadowAll renders a cube map for every shadow-casting light.
	ShadowAll ShadowMode = iota
	// ShadowFlashlightOnly restricts shadow casting to the flashlight.
	ShadowFlashlightOnly
	// ShadowOff disables shadow rendering entirely.
	ShadowOff

	shadowModeCount
)

func (m ShadowMode) String() string {
	switch m {
	case ShadowAll:
		return "all"
	case ShadowFlashlightOnly:
		return "flashlight-only"
	case ShadowOff:
		return "off"
	}
	return "unknown"
}

const (
	// MinLightRadius and MaxLightRadius bound the debug radius adjustment.
	MinLightRadius = 1.0
	MaxLightRadius = 20.0

	// DefaultLightRadius is the flashlight radius at startup and after reset.
	DefaultLightRadius = 8.0
)

// RenderSettings holds render configuration
type RenderSettings struct {
	mu          sync.RWMutex
	lightRadius float32
	shadowMode  ShadowMode
	shadowSize  int
	fpsLimit    int
}

var globalRenderSettings = &RenderSettings{
	lightRadius: DefaultLightRadius,
	shadowMode:  ShadowAll,
	shadowSize:  512,
	fpsLimit:    0, // uncapped
}

// GetLightRadius returns the current debug light radius.
func GetLightRadius() float32 {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.lightRadius
}

// SetLightRadius sets the debug light radius, clamped to [MinLightRadius, MaxLightRadius].
func SetLightRadius(radius float32) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()

	if radius < MinLightRadius {
		radius = MinLightRadius
	}
	if radius > MaxLightRadius {
		radius = MaxLightRadius
	}

	globalRenderSettings.lightRadius = radius
}

// AdjustLightRadius adds delta to the radius and re-clamps.
func AdjustLightRadius(delta float32) {
	SetLightRadius(GetLightRadius() + delta)
}

// GetShadowMode returns the current shadow rendering mode.
func GetShadowMode() ShadowMode {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.shadowMode
}

// SetShadowMode sets the shadow rendering mode.
func SetShadowMode(mode ShadowMode) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()
	if mode < 0 || mode >= shadowModeCount {
		mode = ShadowAll
	}
	globalRenderSettings.shadowMode = mode
}

// CycleShadowMode advances to the next shadow mode and returns it.
func CycleShadowMode() ShadowMode {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()
	globalRenderSettings.shadowMode = (globalRenderSettings.shadowMode + 1) % shadowModeCount
	return globalRenderSettings.shadowMode
}

// GetShadowMapSize returns the cube shadow map face resolution.
func GetShadowMapSize() int {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.shadowSize
}

// SetShadowMapSize sets the cube shadow map face resolution, clamped to [128, 2048].
func SetShadowMapSize(size int) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()

	if size < 128 {
		size = 128
	}
	if size > 2048 {
		size = 2048
	}

	globalRenderSettings.shadowSize = size
}

// GetFPSLimit returns the frame rate cap (0 means uncapped).
func GetFPSLimit() int {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.fpsLimit
}

// SetFPSLimit sets the frame rate cap (0 disables limiting).
func SetFPSLimit(limit int) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()
	if limit < 0 {
		limit = 0
	}
	globalRenderSettings.fpsLimit = limit
}

// Reset restores the debug-adjustable settings to their defaults.
func Reset() {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()
	globalRenderSettings.lightRadius = DefaultLightRadius
	globalRenderSettings.shadowMode = ShadowAll
}
