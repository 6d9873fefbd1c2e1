package mesh

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Box generates an axis-aligned box of the given dimensions, centered at
// the origin. UVs map each face to the full texture.
func Box(width, height, depth float32) *Data {
	d := &Data{}
	hw, hh, hd := width/2, height/2, depth/2
	appendBox(d, mgl32.Vec3{-hw, -hh, -hd}, mgl32.Vec3{hw, hh, hd})
	return d
}

// appendBox adds the 12 triangles of an axis-aligned box spanning min..max.
func appendBox(d *Data, min, max mgl32.Vec3) {
	x0, y0, z0 := min.X(), min.Y(), min.Z()
	x1, y1, z1 := max.X(), max.Y(), max.Z()

	type face struct {
		n mgl32.Vec3
		v [4]mgl32.Vec3
	}
	faces := []face{
		// +Z
		{mgl32.Vec3{0, 0, 1}, [4]mgl32.Vec3{{x0, y0, z1}, {x1, y0, z1}, {x1, y1, z1}, {x0, y1, z1}}},
		// -Z
		{mgl32.Vec3{0, 0, -1}, [4]mgl32.Vec3{{x1, y0, z0}, {x0, y0, z0}, {x0, y1, z0}, {x1, y1, z0}}},
		// +X
		{mgl32.Vec3{1, 0, 0}, [4]mgl32.Vec3{{x1, y0, z1}, {x1, y0, z0}, {x1, y1, z0}, {x1, y1, z1}}},
		// -X
		{mgl32.Vec3{-1, 0, 0}, [4]mgl32.Vec3{{x0, y0, z0}, {x0, y0, z1}, {x0, y1, z1}, {x0, y1, z0}}},
		// +Y
		{mgl32.Vec3{0, 1, 0}, [4]mgl32.Vec3{{x0, y1, z1}, {x1, y1, z1}, {x1, y1, z0}, {x0, y1, z0}}},
		// -Y
		{mgl32.Vec3{0, -1, 0}, [4]mgl32.Vec3{{x0, y0, z0}, {x1, y0, z0}, {x1, y0, z1}, {x0, y0, z1}}},
	}
	uvs := [4]mgl32.Vec2{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

	for _, f := range faces {
		d.AppendVertex(f.v[0], f.n, uvs[0])
		d.AppendVertex(f.v[1], f.n, uvs[1])
		d.AppendVertex(f.v[2], f.n, uvs[2])
		d.AppendVertex(f.v[0], f.n, uvs[0])
		d.AppendVertex(f.v[2], f.n, uvs[2])
		d.AppendVertex(f.v[3], f.n, uvs[3])
	}
}

// Cylinder generates a closed cylinder around the Y axis, base at y=0.
func Cylinder(radius, height float32, segments int) *Data {
	d := &Data{}
	appendCylinder(d, mgl32.Vec3{}, radius, radius, height, segments)
	return d
}

// appendCylinder adds a capped tube with independent bottom and top radii,
// base centered at origin+offset. Unequal radii give slanted side normals.
func appendCylinder(d *Data, offset mgl32.Vec3, rBottom, rTop, height float32, segments int) {
	if segments < 3 {
		segments = 3
	}
	slope := (rBottom - rTop) / height

	for i := 0; i < segments; i++ {
		a0 := 2 * math32.Pi * float32(i) / float32(segments)
		a1 := 2 * math32.Pi * float32(i+1) / float32(segments)
		c0, s0 := math32.Cos(a0), math32.Sin(a0)
		c1, s1 := math32.Cos(a1), math32.Sin(a1)

		b0 := offset.Add(mgl32.Vec3{rBottom * c0, 0, rBottom * s0})
		b1 := offset.Add(mgl32.Vec3{rBottom * c1, 0, rBottom * s1})
		t0 := offset.Add(mgl32.Vec3{rTop * c0, height, rTop * s0})
		t1 := offset.Add(mgl32.Vec3{rTop * c1, height, rTop * s1})

		n0 := mgl32.Vec3{c0, slope, s0}.Normalize()
		n1 := mgl32.Vec3{c1, slope, s1}.Normalize()

		u0 := float32(i) / float32(segments)
		u1 := float32(i+1) / float32(segments)

		// Side, wound counterclockwise seen from outside
		d.AppendVertex(b0, n0, mgl32.Vec2{u0, 0})
		d.AppendVertex(t1, n1, mgl32.Vec2{u1, 1})
		d.AppendVertex(b1, n1, mgl32.Vec2{u1, 0})
		d.AppendVertex(b0, n0, mgl32.Vec2{u0, 0})
		d.AppendVertex(t0, n0, mgl32.Vec2{u0, 1})
		d.AppendVertex(t1, n1, mgl32.Vec2{u1, 1})

		// Bottom cap
		down := mgl32.Vec3{0, -1, 0}
		bc := offset
		d.AppendVertex(bc, down, mgl32.Vec2{0.5, 0.5})
		d.AppendVertex(b0, down, mgl32.Vec2{0.5 + c0/2, 0.5 + s0/2})
		d.AppendVertex(b1, down, mgl32.Vec2{0.5 + c1/2, 0.5 + s1/2})

		// Top cap
		up := mgl32.Vec3{0, 1, 0}
		tc := offset.Add(mgl32.Vec3{0, height, 0})
		d.AppendVertex(tc, up, mgl32.Vec2{0.5, 0.5})
		d.AppendVertex(t1, up, mgl32.Vec2{0.5 + c1/2, 0.5 + s1/2})
		d.AppendVertex(t0, up, mgl32.Vec2{0.5 + c0/2, 0.5 + s0/2})
	}
}

// Barrel generates a bulged wooden barrel: stacked cylinder bands whose
// radius follows a sine profile, plus two thin hoop rings.
func Barrel(radius, height float32) *Data {
	d := &Data{}
	const bands = 6
	const segments = 16

	bandH := height / bands
	for b := 0; b < bands; b++ {
		y0 := float32(b) * bandH
		// Bulge factor peaks at mid-height
		f0 := 0.8 + 0.2*math32.Sin(math32.Pi*float32(b)/bands)
		f1 := 0.8 + 0.2*math32.Sin(math32.Pi*float32(b+1)/bands)
		appendCylinder(d, mgl32.Vec3{0, y0, 0}, radius*f0, radius*f1, bandH, segments)
	}

	// Metal hoops near top and bottom
	hoopR := radius*0.82 + 0.01
	appendCylinder(d, mgl32.Vec3{0, height * 0.12, 0}, hoopR, hoopR, height*0.05, segments)
	appendCylinder(d, mgl32.Vec3{0, height * 0.83, 0}, hoopR, hoopR, height*0.05, segments)
	return d
}

// Chair generates a simple tavern chair: four legs, a seat and a backrest
// with two slats.
func Chair() *Data {
	d := &Data{}
	const (
		seatH = float32(0.45)
		seatW = float32(0.42)
		seatD = float32(0.40)
		legT  = float32(0.04)
		backH = float32(0.50)
		seatT = float32(0.04)
	)
	hw, hd := seatW/2, seatD/2

	// Legs
	for _, lx := range []float32{-hw + legT/2, hw - legT/2} {
		for _, lz := range []float32{-hd + legT/2, hd - legT/2} {
			appendBox(d,
				mgl32.Vec3{lx - legT/2, 0, lz - legT/2},
				mgl32.Vec3{lx + legT/2, seatH, lz + legT/2})
		}
	}

	// Seat
	appendBox(d, mgl32.Vec3{-hw, seatH, -hd}, mgl32.Vec3{hw, seatH + seatT, hd})

	// Back posts
	for _, lx := range []float32{-hw + legT/2, hw - legT/2} {
		appendBox(d,
			mgl32.Vec3{lx - legT/2, seatH + seatT, -hd},
			mgl32.Vec3{lx + legT/2, seatH + seatT + backH, -hd + legT})
	}

	// Back slats
	for _, sy := range []float32{seatH + backH*0.45, seatH + backH*0.8} {
		appendBox(d,
			mgl32.Vec3{-hw, sy, -hd},
			mgl32.Vec3{hw, sy + 0.08, -hd + legT})
	}
	return d
}

// Corbel generates a stone wall bracket: a wall plate topped by two
// stepped blocks and a slanted support wedge underneath.
func Corbel() *Data {
	d := &Data{}

	// Wall plate
	appendBox(d, mgl32.Vec3{-0.15, 0, -0.03}, mgl32.Vec3{0.15, 0.4, 0})
	// Upper step
	appendBox(d, mgl32.Vec3{-0.13, 0.28, 0}, mgl32.Vec3{0.13, 0.4, 0.22})
	// Lower step
	appendBox(d, mgl32.Vec3{-0.10, 0.16, 0}, mgl32.Vec3{0.10, 0.28, 0.14})
	// Support wedge, approximated with a narrow block
	appendBox(d, mgl32.Vec3{-0.06, 0.0, 0}, mgl32.Vec3{0.06, 0.16, 0.07})
	return d
}
