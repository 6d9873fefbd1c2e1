// Package mesh provides CPU-side mesh data (loaded from OBJ files or
// generated procedurally) and its GPU upload as interleaved
// position/normal/uv vertex buffers.
package mesh

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// VertexStride is the number of floats per vertex: position (3),
// normal (3), uv (2).
const VertexStride = 8

// Data holds triangle soup as interleaved vertices.
type Data struct {
	Verts []float32
}

// VertexCount returns the number of vertices.
func (d *Data) VertexCount() int {
	return len(d.Verts) / VertexStride
}

// AppendVertex appends one interleaved vertex.
func (d *Data) AppendVertex(pos, normal mgl32.Vec3, uv mgl32.Vec2) {
	d.Verts = append(d.Verts,
		pos.X(), pos.Y(), pos.Z(),
		normal.X(), normal.Y(), normal.Z(),
		uv.X(), uv.Y(),
	)
}

// Bounds returns the local-space AABB of the vertex positions.
func (d *Data) Bounds() (mgl32.Vec3, mgl32.Vec3) {
	if len(d.Verts) < VertexStride {
		return mgl32.Vec3{}, mgl32.Vec3{}
	}
	min := mgl32.Vec3{d.Verts[0], d.Verts[1], d.Verts[2]}
	max := min
	for i := VertexStride; i+2 < len(d.Verts); i += VertexStride {
		x, y, z := d.Verts[i], d.Verts[i+1], d.Verts[i+2]
		min = mgl32.Vec3{math32.Min(min.X(), x), math32.Min(min.Y(), y), math32.Min(min.Z(), z)}
		max = mgl32.Vec3{math32.Max(max.X(), x), math32.Max(max.Y(), y), math32.Max(max.Z(), z)}
	}
	return min, max
}

// Mesh is uploaded geometry, ready to draw.
type Mesh struct {
	vao         uint32
	vbo         uint32
	vertexCount int32

	// Local-space bounds, used for frustum culling.
	Min mgl32.Vec3
	Max mgl32.Vec3
}

// Upload creates GL buffers for the data and returns a drawable Mesh.
func Upload(d *Data) *Mesh {
	m := &Mesh{vertexCount: int32(d.VertexCount())}
	m.Min, m.Max = d.Bounds()

	gl.GenVertexArrays(1, &m.vao)
	gl.GenBuffers(1, &m.vbo)
	gl.BindVertexArray(m.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(d.Verts)*4, gl.Ptr(d.Verts), gl.STATIC_DRAW)

	stride := int32(VertexStride * 4)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, stride, 6*4)
	gl.BindVertexArray(0)

	return m
}

// Draw issues the draw call. The caller binds the shader and uniforms.
func (m *Mesh) Draw() {
	gl.BindVertexArray(m.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, m.vertexCount)
	gl.BindVertexArray(0)
}

// Dispose releases the GL objects.
func (m *Mesh) Dispose() {
	if m.vbo != 0 {
		gl.DeleteBuffers(1, &m.vbo)
		m.vbo = 0
	}
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
		m.vao = 0
	}
}
