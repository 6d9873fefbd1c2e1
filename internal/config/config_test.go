package config

import "testing"

func TestLightRadiusClamp(t *testing.T) {
	defer Reset()

	SetLightRadius(0.0)
	if got := GetLightRadius(); got != MinLightRadius {
		t.Errorf("Expected radius clamped to %v, got %v", float32(MinLightRadius), got)
	}

	SetLightRadius(100.0)
	if got := GetLightRadius(); got != MaxLightRadius {
		t.Errorf("Expected radius clamped to %v, got %v", float32(MaxLightRadius), got)
	}

	SetLightRadius(7.5)
	if got := GetLightRadius(); got != 7.5 {
		t.Errorf("Expected radius 7.5, got %v", got)
	}
}

func TestAdjustLightRadiusNeverLeavesRange(t *testing.T) {
	defer Reset()

	SetLightRadius(MinLightRadius)
	for i := 0; i < 50; i++ {
		AdjustLightRadius(-1.0)
	}
	if got := GetLightRadius(); got < MinLightRadius {
		t.Errorf("Radius left range below min: %v", got)
	}

	for i := 0; i < 100; i++ {
		AdjustLightRadius(1.0)
	}
	if got := GetLightRadius(); got > MaxLightRadius {
		t.Errorf("Radius left range above max: %v", got)
	}
}

func TestCycleShadowMode(t *testing.T) {
	defer Reset()

	SetShadowMode(ShadowAll)
	seen := map[ShadowMode]bool{ShadowAll: true}
	for i := 0; i < int(shadowModeCount); i++ {
		seen[CycleShadowMode()] = true
	}
	if len(seen) != int(shadowModeCount) {
		t.Errorf("Expected cycling to visit all %d modes, visited %d", shadowModeCount, len(seen))
	}
	if GetShadowMode() != ShadowAll {
		t.Errorf("Expected full cycle to return to ShadowAll, got %v", GetShadowMode())
	}
}
