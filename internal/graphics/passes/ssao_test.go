package passes

import "testing"

func TestGenerateKernelHemisphere(t *testing.T) {
	kernel := GenerateKernel(KernelSize)
	if len(kernel) != KernelSize {
		t.Fatalf("Expected %d samples, got %d", KernelSize, len(kernel))
	}
	for i, s := range kernel {
		if s.Z() < 0 {
			t.Errorf("Sample %d has negative z %v, must stay in the hemisphere", i, s.Z())
		}
		if s.Len() > 1.0001 {
			t.Errorf("Sample %d has length %v > 1", i, s.Len())
		}
	}
}

func TestGenerateKernelAccelerated(t *testing.T) {
	kernel := GenerateKernel(KernelSize)
	// Early samples are scaled toward the origin: their maximum possible
	// length is well below the late samples' cap.
	for i := 0; i < 8; i++ {
		if kernel[i].Len() > 0.2 {
			t.Errorf("Sample %d has length %v, early samples should be near the origin", i, kernel[i].Len())
		}
	}
}

func TestGenerateNoisePlanar(t *testing.T) {
	noise := generateNoise()
	if len(noise) != noiseSize*noiseSize*3 {
		t.Fatalf("Expected %d noise floats, got %d", noiseSize*noiseSize*3, len(noise))
	}
	for i := 2; i < len(noise); i += 3 {
		if noise[i] != 0 {
			t.Errorf("Noise vector %d has non-zero z component", i/3)
		}
	}
}
