package mesh

import (
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const triangleOBJ = `
# simple triangle
v 0 0 0
v 1 0 0
v 0 1 0
vt 0 0
vt 1 0
vt 0 1
vn 0 0 1
f 1/1/1 2/2/1 3/3/1
`

func TestParseOBJTriangle(t *testing.T) {
	d, err := ParseOBJ(strings.NewReader(triangleOBJ))
	if err != nil {
		t.Fatalf("Unexpected parse error: %v", err)
	}
	if d.VertexCount() != 3 {
		t.Fatalf("Expected 3 vertices, got %d", d.VertexCount())
	}
	// Second vertex: position (1,0,0), normal (0,0,1), uv (1,0)
	got := d.Verts[VertexStride : 2*VertexStride]
	want := []float32{1, 0, 0, 0, 0, 1, 1, 0}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Vertex 1 component %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}

func TestParseOBJQuadTriangulated(t *testing.T) {
	src := `
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
f 1 2 3 4
`
	d, err := ParseOBJ(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Unexpected parse error: %v", err)
	}
	if d.VertexCount() != 6 {
		t.Errorf("Expected quad to triangulate into 6 vertices, got %d", d.VertexCount())
	}
}

func TestParseOBJNegativeIndices(t *testing.T) {
	src := `
v 0 0 0
v 1 0 0
v 0 1 0
f -3 -2 -1
`
	d, err := ParseOBJ(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Unexpected parse error: %v", err)
	}
	if d.VertexCount() != 3 {
		t.Fatalf("Expected 3 vertices, got %d", d.VertexCount())
	}
	if d.Verts[VertexStride] != 1 {
		t.Errorf("Expected second vertex x=1, got %v", d.Verts[VertexStride])
	}
}

func TestParseOBJMissingNormalGetsFlatNormal(t *testing.T) {
	src := `
v 0 0 0
v 1 0 0
v 0 1 0
f 1 2 3
`
	d, err := ParseOBJ(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Unexpected parse error: %v", err)
	}
	n := mgl32.Vec3{d.Verts[3], d.Verts[4], d.Verts[5]}
	if !n.ApproxEqualThreshold(mgl32.Vec3{0, 0, 1}, 1e-6) {
		t.Errorf("Expected flat normal (0,0,1), got %v", n)
	}
}

func TestParseOBJRejectsBadIndex(t *testing.T) {
	src := `
v 0 0 0
f 1 2 3
`
	if _, err := ParseOBJ(strings.NewReader(src)); err == nil {
		t.Errorf("Expected out-of-range index error")
	}
}

func TestParseOBJRejectsEmpty(t *testing.T) {
	if _, err := ParseOBJ(strings.NewReader("# nothing here\n")); err == nil {
		t.Errorf("Expected error for OBJ without faces")
	}
}

func TestBounds(t *testing.T) {
	d := &Data{}
	d.AppendVertex(mgl32.Vec3{-2, 0, 1}, mgl32.Vec3{0, 1, 0}, mgl32.Vec2{})
	d.AppendVertex(mgl32.Vec3{3, -1, 0}, mgl32.Vec3{0, 1, 0}, mgl32.Vec2{})
	d.AppendVertex(mgl32.Vec3{0, 2, -4}, mgl32.Vec3{0, 1, 0}, mgl32.Vec2{})

	min, max := d.Bounds()
	if !min.ApproxEqualThreshold(mgl32.Vec3{-2, -1, -4}, 1e-6) {
		t.Errorf("Expected min (-2,-1,-4), got %v", min)
	}
	if !max.ApproxEqualThreshold(mgl32.Vec3{3, 2, 1}, 1e-6) {
		t.Errorf("Expected max (3,2,1), got %v", max)
	}
}
