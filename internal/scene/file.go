package scene

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pelletier/go-toml/v2"

	"github.com/urosevicvuk/gameGL/internal/graphics"
	"github.com/urosevicvuk/gameGL/internal/graphics/mesh"
	"github.com/urosevicvuk/gameGL/internal/logging"
)

// sceneFile mirrors the TOML scene description.
type sceneFile struct {
	Materials []materialDef `toml:"materials"`
	Meshes    []meshDef     `toml:"meshes"`
	Instances []instanceDef `toml:"instances"`
	Lights    []lightDef    `toml:"lights"`
}

type materialDef struct {
	ID        string     `toml:"id"`
	Diffuse   string     `toml:"diffuse"`
	Normal    string     `toml:"normal"`
	Specular  string     `toml:"specular"`
	Color     [3]float32 `toml:"color"`
	Roughness float32    `toml:"roughness"`
	Metallic  float32    `toml:"metallic"`
}

type meshDef struct {
	ID   string `toml:"id"`
	Kind string `toml:"kind"` // box, cylinder, barrel, chair, corbel, obj
	Path string `toml:"path"` // obj only

	Size     [3]float32 `toml:"size"`     // box
	Radius   float32    `toml:"radius"`   // cylinder, barrel
	Height   float32    `toml:"height"`   // cylinder, barrel
	Segments int        `toml:"segments"` // cylinder
}

type instanceDef struct {
	Mesh     string     `toml:"mesh"`
	Material string     `toml:"material"`
	Position [3]float32 `toml:"position"`
	Rotation [3]float32 `toml:"rotation"` // euler degrees, XYZ order
	Scale    [3]float32 `toml:"scale"`
}

type lightDef struct {
	Position [3]float32 `toml:"position"`
	Color    [3]float32 `toml:"color"`
	Radius   float32    `toml:"radius"`
	Flicker  bool       `toml:"flicker"`
	Shadows  bool       `toml:"shadows"`
}

// decodeScene parses and validates the TOML bytes without touching GL.
func decodeScene(data []byte) (*sceneFile, error) {
	var f sceneFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	for _, m := range f.Materials {
		if m.ID == "" {
			return nil, fmt.Errorf("material with empty id")
		}
		if seen[m.ID] {
			return nil, fmt.Errorf("duplicate material id %q", m.ID)
		}
		seen[m.ID] = true
	}
	seen = make(map[string]bool)
	for _, m := range f.Meshes {
		if m.ID == "" {
			return nil, fmt.Errorf("mesh with empty id")
		}
		if seen[m.ID] {
			return nil, fmt.Errorf("duplicate mesh id %q", m.ID)
		}
		seen[m.ID] = true
	}
	return &f, nil
}

func (i instanceDef) modelMatrix() mgl32.Mat4 {
	scale := i.Scale
	if scale == [3]float32{} {
		scale = [3]float32{1, 1, 1}
	}
	m := mgl32.Translate3D(i.Position[0], i.Position[1], i.Position[2])
	if i.Rotation[1] != 0 {
		m = m.Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(i.Rotation[1])))
	}
	if i.Rotation[0] != 0 {
		m = m.Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(i.Rotation[0])))
	}
	if i.Rotation[2] != 0 {
		m = m.Mul4(mgl32.HomogRotate3DZ(mgl32.DegToRad(i.Rotation[2])))
	}
	return m.Mul4(mgl32.Scale3D(scale[0], scale[1], scale[2]))
}

func (l lightDef) position() mgl32.Vec3 {
	return mgl32.Vec3{l.Position[0], l.Position[1], l.Position[2]}
}

func (l lightDef) color() mgl32.Vec3 {
	return mgl32.Vec3{l.Color[0], l.Color[1], l.Color[2]}
}

// buildMaterial loads the material's textures, falling back to the flat
// color when a texture is missing.
func buildMaterial(def materialDef) *Material {
	m := &Material{
		ID:        def.ID,
		FlatColor: mgl32.Vec3{def.Color[0], def.Color[1], def.Color[2]},
		Roughness: def.Roughness,
		Metallic:  def.Metallic,
	}
	if m.FlatColor == (mgl32.Vec3{}) {
		m.FlatColor = mgl32.Vec3{0.7, 0.7, 0.7}
	}

	if def.Diffuse != "" {
		if tex, err := graphics.GetTexture(def.Diffuse); err != nil {
			logging.Warnf("Material %q: diffuse texture unavailable, using flat color: %v", def.ID, err)
		} else {
			m.Diffuse = tex
			m.HasDiffuse = true
		}
	}
	if def.Normal != "" {
		if tex, err := graphics.GetTexture(def.Normal); err != nil {
			logging.Warnf("Material %q: normal map unavailable: %v", def.ID, err)
		} else {
			m.Normal = tex
			m.HasNormal = true
		}
	}
	if def.Specular != "" {
		if tex, err := graphics.GetTexture(def.Specular); err != nil {
			logging.Warnf("Material %q: specular map unavailable: %v", def.ID, err)
		} else {
			m.Specular = tex
			m.HasSpecular = true
		}
	}
	return m
}

// buildMesh generates or loads the mesh data and uploads it.
func buildMesh(def meshDef) (*mesh.Mesh, error) {
	var data *mesh.Data
	switch def.Kind {
	case "box":
		size := def.Size
		if size == [3]float32{} {
			size = [3]float32{1, 1, 1}
		}
		data = mesh.Box(size[0], size[1], size[2])
	case "cylinder":
		segments := def.Segments
		if segments == 0 {
			segments = 16
		}
		data = mesh.Cylinder(orDefault(def.Radius, 0.5), orDefault(def.Height, 1), segments)
	case "barrel":
		data = mesh.Barrel(orDefault(def.Radius, 0.4), orDefault(def.Height, 1))
	case "chair":
		data = mesh.Chair()
	case "corbel":
		data = mesh.Corbel()
	case "obj":
		var err error
		data, err = mesh.LoadOBJ(def.Path)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unknown mesh kind %q", def.Kind)
	}
	return mesh.Upload(data), nil
}

func orDefault(v, def float32) float32 {
	if v == 0 {
		return def
	}
	return v
}
