package passes

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

// forwardOf extracts the view direction from a view matrix: the third
// row of the rotation part is the negated forward vector.
func forwardOf(view mgl32.Mat4) mgl32.Vec3 {
	return mgl32.Vec3{-view[2], -view[6], -view[10]}
}

func TestCubeFaceViewsCanonicalOrder(t *testing.T) {
	views := CubeFaceViews(mgl32.Vec3{0, 0, 0})

	want := [6]mgl32.Vec3{
		{1, 0, 0},
		{-1, 0, 0},
		{0, 1, 0},
		{0, -1, 0},
		{0, 0, 1},
		{0, 0, -1},
	}
	for i, v := range views {
		got := forwardOf(v)
		if !got.ApproxEqualThreshold(want[i], 1e-6) {
			t.Errorf("Face %d: expected forward %v, got %v", i, want[i], got)
		}
	}
}

func TestCubeFaceUpsNonDegenerate(t *testing.T) {
	for i := 0; i < 6; i++ {
		cross := cubeFaceDirs[i].Cross(cubeFaceUps[i])
		if cross.Len() < 0.5 {
			t.Errorf("Face %d: up vector %v is degenerate against direction %v", i, cubeFaceUps[i], cubeFaceDirs[i])
		}
	}
}

func TestCubeFaceViewsTranslate(t *testing.T) {
	pos := mgl32.Vec3{3, 2, -1}
	views := CubeFaceViews(pos)

	// The light position must map to the view-space origin on every face.
	for i, v := range views {
		p := v.Mul4x1(pos.Vec4(1))
		if !p.Vec3().ApproxEqualThreshold(mgl32.Vec3{}, 1e-5) {
			t.Errorf("Face %d: light position maps to %v, expected origin", i, p.Vec3())
		}
	}
}

func TestCubeFaceProjectionIsSquare(t *testing.T) {
	proj := CubeFaceProjection()
	// For a 90 degree FOV with aspect 1, both focal terms equal 1.
	if !mgl32.FloatEqualThreshold(proj.At(0, 0), 1, 1e-5) {
		t.Errorf("Expected proj[0][0] = 1 for 90 degree square frustum, got %v", proj.At(0, 0))
	}
	if !mgl32.FloatEqualThreshold(proj.At(1, 1), 1, 1e-5) {
		t.Errorf("Expected proj[1][1] = 1 for 90 degree square frustum, got %v", proj.At(1, 1))
	}
}
