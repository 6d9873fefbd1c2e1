package graphics

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Plane is ax + by + cz + d = 0 with the normal pointing inside the frustum.
type Plane struct {
	A, B, C, D float32
}

// ExtractFrustumPlanes builds six planes from the combined projection*view matrix.
// Planes are returned in order: left, right, bottom, top, near, far.
func ExtractFrustumPlanes(clip mgl32.Mat4) [6]Plane {
	// Matrix is in column-major order in mgl32
	m00, m01, m02, m03 := clip[0], clip[4], clip[8], clip[12]
	m10, m11, m12, m13 := clip[1], clip[5], clip[9], clip[13]
	m20, m21, m22, m23 := clip[2], clip[6], clip[10], clip[14]
	m30, m31, m32, m33 := clip[3], clip[7], clip[11], clip[15]

	pl := [6]Plane{}
	// Left  = m3 + m0
	pl[0] = normalizePlane(Plane{m30 + m00, m31 + m01, m32 + m02, m33 + m03})
	// Right = m3 - m0
	pl[1] = normalizePlane(Plane{m30 - m00, m31 - m01, m32 - m02, m33 - m03})
	// Bottom = m3 + m1
	pl[2] = normalizePlane(Plane{m30 + m10, m31 + m11, m32 + m12, m33 + m13})
	// Top = m3 - m1
	pl[3] = normalizePlane(Plane{m30 - m10, m31 - m11, m32 - m12, m33 - m13})
	// Near = m3 + m2
	pl[4] = normalizePlane(Plane{m30 + m20, m31 + m21, m32 + m22, m33 + m23})
	// Far = m3 - m2
	pl[5] = normalizePlane(Plane{m30 - m20, m31 - m21, m32 - m22, m33 - m23})
	return pl
}

func normalizePlane(p Plane) Plane {
	l := math32.Sqrt(p.A*p.A + p.B*p.B + p.C*p.C)
	if l == 0 {
		return p
	}
	return Plane{p.A / l, p.B / l, p.C / l, p.D / l}
}

// AABBIntersectsFrustum tests an axis-aligned box against precomputed planes.
func AABBIntersectsFrustum(min, max mgl32.Vec3, planes [6]Plane) bool {
	for i := 0; i < 6; i++ {
		p := planes[i]
		// Select the positive vertex for this plane normal
		px := max.X()
		if p.A < 0 {
			px = min.X()
		}
		py := max.Y()
		if p.B < 0 {
			py = min.Y()
		}
		pz := max.Z()
		if p.C < 0 {
			pz = min.Z()
		}
		// If positive vertex is outside, AABB is outside
		if p.A*px+p.B*py+p.C*pz+p.D < 0 {
			return false
		}
	}
	return true
}

// TransformAABB returns the world-space AABB of a local box under model.
func TransformAABB(min, max mgl32.Vec3, model mgl32.Mat4) (mgl32.Vec3, mgl32.Vec3) {
	corners := [8]mgl32.Vec3{
		{min.X(), min.Y(), min.Z()},
		{max.X(), min.Y(), min.Z()},
		{min.X(), max.Y(), min.Z()},
		{max.X(), max.Y(), min.Z()},
		{min.X(), min.Y(), max.Z()},
		{max.X(), min.Y(), max.Z()},
		{min.X(), max.Y(), max.Z()},
		{max.X(), max.Y(), max.Z()},
	}

	first := model.Mul4x1(corners[0].Vec4(1))
	outMin := mgl32.Vec3{first.X(), first.Y(), first.Z()}
	outMax := outMin
	for i := 1; i < 8; i++ {
		v := model.Mul4x1(corners[i].Vec4(1))
		outMin = mgl32.Vec3{
			math32.Min(outMin.X(), v.X()),
			math32.Min(outMin.Y(), v.Y()),
			math32.Min(outMin.Z(), v.Z()),
		}
		outMax = mgl32.Vec3{
			math32.Max(outMax.X(), v.X()),
			math32.Max(outMax.Y(), v.Y()),
			math32.Max(outMax.Z(), v.Z()),
		}
	}
	return outMin, outMax
}
