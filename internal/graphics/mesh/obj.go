package mesh

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// LoadOBJ reads a Wavefront OBJ file and returns flat triangle data.
func LoadOBJ(path string) (*Data, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open model file: %v", err)
	}
	defer file.Close()

	d, err := ParseOBJ(file)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return d, nil
}

// ParseOBJ parses OBJ text: v/vt/vn records and f faces with any of the
// index forms (v, v/vt, v//vn, v/vt/vn, including negative indices).
// Polygons are fan-triangulated. Faces without normals get a flat normal
// computed from the triangle plane; missing UVs become (0,0).
func ParseOBJ(r io.Reader) (*Data, error) {
	var (
		positions []mgl32.Vec3
		uvs       []mgl32.Vec2
		normals   []mgl32.Vec3
	)
	d := &Data{}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "v":
			v, err := parseFloats(fields[1:], 3)
			if err != nil {
				return nil, fmt.Errorf("line %d: bad vertex: %v", lineNo, err)
			}
			positions = append(positions, mgl32.Vec3{v[0], v[1], v[2]})
		case "vt":
			v, err := parseFloats(fields[1:], 2)
			if err != nil {
				return nil, fmt.Errorf("line %d: bad texcoord: %v", lineNo, err)
			}
			uvs = append(uvs, mgl32.Vec2{v[0], v[1]})
		case "vn":
			v, err := parseFloats(fields[1:], 3)
			if err != nil {
				return nil, fmt.Errorf("line %d: bad normal: %v", lineNo, err)
			}
			normals = append(normals, mgl32.Vec3{v[0], v[1], v[2]})
		case "f":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: face needs at least 3 vertices", lineNo)
			}
			corners := make([]objCorner, 0, len(fields)-1)
			for _, f := range fields[1:] {
				c, err := parseCorner(f, len(positions), len(uvs), len(normals))
				if err != nil {
					return nil, fmt.Errorf("line %d: %v", lineNo, err)
				}
				corners = append(corners, c)
			}
			// Fan triangulation
			for i := 1; i+1 < len(corners); i++ {
				emitTriangle(d, positions, uvs, normals, corners[0], corners[i], corners[i+1])
			}
		default:
			// o, g, s, mtllib, usemtl and friends are ignored
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if d.VertexCount() == 0 {
		return nil, fmt.Errorf("no faces found")
	}
	return d, nil
}

type objCorner struct {
	pos int // 0-based, resolved
	uv  int // -1 when absent
	nrm int // -1 when absent
}

func parseCorner(s string, nPos, nUV, nNrm int) (objCorner, error) {
	parts := strings.Split(s, "/")
	c := objCorner{uv: -1, nrm: -1}

	pi, err := resolveIndex(parts[0], nPos)
	if err != nil {
		return c, fmt.Errorf("bad vertex index %q: %v", s, err)
	}
	c.pos = pi

	if len(parts) > 1 && parts[1] != "" {
		ti, err := resolveIndex(parts[1], nUV)
		if err != nil {
			return c, fmt.Errorf("bad texcoord index %q: %v", s, err)
		}
		c.uv = ti
	}
	if len(parts) > 2 && parts[2] != "" {
		ni, err := resolveIndex(parts[2], nNrm)
		if err != nil {
			return c, fmt.Errorf("bad normal index %q: %v", s, err)
		}
		c.nrm = ni
	}
	return c, nil
}

// resolveIndex converts a 1-based (or negative, relative) OBJ index to 0-based.
func resolveIndex(s string, n int) (int, error) {
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if i < 0 {
		i = n + i
	} else {
		i--
	}
	if i < 0 || i >= n {
		return 0, fmt.Errorf("index out of range")
	}
	return i, nil
}

func parseFloats(fields []string, n int) ([]float32, error) {
	if len(fields) < n {
		return nil, fmt.Errorf("expected %d components, got %d", n, len(fields))
	}
	out := make([]float32, n)
	for i := 0; i < n; i++ {
		f, err := strconv.ParseFloat(fields[i], 32)
		if err != nil {
			return nil, err
		}
		out[i] = float32(f)
	}
	return out, nil
}

func emitTriangle(d *Data, positions []mgl32.Vec3, uvs []mgl32.Vec2, normals []mgl32.Vec3, a, b, c objCorner) {
	pa, pb, pc := positions[a.pos], positions[b.pos], positions[c.pos]

	var flat mgl32.Vec3
	if a.nrm < 0 || b.nrm < 0 || c.nrm < 0 {
		n := pb.Sub(pa).Cross(pc.Sub(pa))
		if n.Len() > 0 {
			flat = n.Normalize()
		} else {
			flat = mgl32.Vec3{0, 1, 0}
		}
	}

	for _, corner := range []struct {
		c objCorner
		p mgl32.Vec3
	}{{a, pa}, {b, pb}, {c, pc}} {
		n := flat
		if corner.c.nrm >= 0 {
			n = normals[corner.c.nrm]
		}
		uv := mgl32.Vec2{}
		if corner.c.uv >= 0 {
			uv = uvs[corner.c.uv]
		}
		d.AppendVertex(corner.p, n, uv)
	}
}
