package mesh

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestBoxGeometry(t *testing.T) {
	d := Box(2, 4, 6)
	if d.VertexCount() != 36 {
		t.Fatalf("Expected 36 vertices for a box, got %d", d.VertexCount())
	}
	min, max := d.Bounds()
	if !min.ApproxEqualThreshold(mgl32.Vec3{-1, -2, -3}, 1e-6) {
		t.Errorf("Expected min (-1,-2,-3), got %v", min)
	}
	if !max.ApproxEqualThreshold(mgl32.Vec3{1, 2, 3}, 1e-6) {
		t.Errorf("Expected max (1,2,3), got %v", max)
	}
}

func TestCylinderBounds(t *testing.T) {
	d := Cylinder(0.5, 2, 12)
	min, max := d.Bounds()
	if min.Y() != 0 || max.Y() != 2 {
		t.Errorf("Expected cylinder to span y in [0,2], got [%v,%v]", min.Y(), max.Y())
	}
	if max.X() > 0.51 || min.X() < -0.51 {
		t.Errorf("Expected cylinder radius within 0.5, got x range [%v,%v]", min.X(), max.X())
	}
}

func TestCylinderNormalsAreUnit(t *testing.T) {
	d := Cylinder(1, 1, 8)
	for i := 0; i+VertexStride <= len(d.Verts); i += VertexStride {
		n := mgl32.Vec3{d.Verts[i+3], d.Verts[i+4], d.Verts[i+5]}
		if l := n.Len(); l < 0.999 || l > 1.001 {
			t.Fatalf("Vertex %d has non-unit normal %v (len %v)", i/VertexStride, n, l)
		}
	}
}

// Front faces are counterclockwise and back-face culling is on, so every
// triangle's geometric winding must agree with its stored normals or the
// mesh disappears from the G-buffer and shadow passes.
func TestProceduralWindingMatchesNormals(t *testing.T) {
	for name, d := range map[string]*Data{
		"box":      Box(2, 1, 3),
		"cylinder": Cylinder(0.5, 1.5, 16),
		"barrel":   Barrel(0.42, 1.0),
		"chair":    Chair(),
		"corbel":   Corbel(),
	} {
		for i := 0; i+3*VertexStride <= len(d.Verts); i += 3 * VertexStride {
			v0 := mgl32.Vec3{d.Verts[i], d.Verts[i+1], d.Verts[i+2]}
			n0 := mgl32.Vec3{d.Verts[i+3], d.Verts[i+4], d.Verts[i+5]}
			v1 := mgl32.Vec3{d.Verts[i+VertexStride], d.Verts[i+VertexStride+1], d.Verts[i+VertexStride+2]}
			v2 := mgl32.Vec3{d.Verts[i+2*VertexStride], d.Verts[i+2*VertexStride+1], d.Verts[i+2*VertexStride+2]}

			winding := v1.Sub(v0).Cross(v2.Sub(v0))
			if winding.Len() < 1e-9 {
				continue
			}
			if winding.Dot(n0) <= 0 {
				t.Fatalf("%s: triangle %d winds opposite its normal (winding %v, normal %v)",
					name, i/(3*VertexStride), winding.Normalize(), n0)
			}
		}
	}
}

func TestProceduralMeshesNonEmpty(t *testing.T) {
	for name, d := range map[string]*Data{
		"barrel": Barrel(0.4, 1.0),
		"chair":  Chair(),
		"corbel": Corbel(),
	} {
		if d.VertexCount() == 0 {
			t.Errorf("Expected %s mesh to have vertices", name)
		}
		if d.VertexCount()%3 != 0 {
			t.Errorf("Expected %s vertex count to be a multiple of 3, got %d", name, d.VertexCount())
		}
	}
}
