package graphics_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/urosevicvuk/gameGL/internal/graphics"
)

func frustumForTest() [6]graphics.Plane {
	proj := mgl32.Perspective(mgl32.DegToRad(60), 16.0/9.0, 0.1, 100.0)
	view := mgl32.LookAtV(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 0, -1}, mgl32.Vec3{0, 1, 0})
	return graphics.ExtractFrustumPlanes(proj.Mul4(view))
}

func TestAABBInsideFrustum(t *testing.T) {
	planes := frustumForTest()

	min := mgl32.Vec3{-1, -1, -11}
	max := mgl32.Vec3{1, 1, -9}
	if !graphics.AABBIntersectsFrustum(min, max, planes) {
		t.Errorf("Expected box in front of camera to intersect frustum")
	}
}

func TestAABBBehindCameraCulled(t *testing.T) {
	planes := frustumForTest()

	min := mgl32.Vec3{-1, -1, 9}
	max := mgl32.Vec3{1, 1, 11}
	if graphics.AABBIntersectsFrustum(min, max, planes) {
		t.Errorf("Expected box behind camera to be culled")
	}
}

func TestAABBBeyondFarPlaneCulled(t *testing.T) {
	planes := frustumForTest()

	min := mgl32.Vec3{-1, -1, -250}
	max := mgl32.Vec3{1, 1, -210}
	if graphics.AABBIntersectsFrustum(min, max, planes) {
		t.Errorf("Expected box beyond far plane to be culled")
	}
}

func TestTransformAABB(t *testing.T) {
	model := mgl32.Translate3D(10, 0, 0).Mul4(mgl32.Scale3D(2, 2, 2))
	min, max := graphics.TransformAABB(mgl32.Vec3{-1, -1, -1}, mgl32.Vec3{1, 1, 1}, model)

	wantMin := mgl32.Vec3{8, -2, -2}
	wantMax := mgl32.Vec3{12, 2, 2}
	if !min.ApproxEqualThreshold(wantMin, 1e-5) {
		t.Errorf("Expected min %v, got %v", wantMin, min)
	}
	if !max.ApproxEqualThreshold(wantMax, 1e-5) {
		t.Errorf("Expected max %v, got %v", wantMax, max)
	}
}
