// Package scene reads and writes a YAML description of a map, so levels can
// be authored or inspected without writing Go.
//
//	sectors:
//	  - name: hall
//	    color: [1, 1, 1, 1]
//	    floor:
//	      vertices: [[0, 0, 0], [1, 0, 0], [1, 1, 0, 1, 0, 0, 1]]
//	      indices: [0, 1, 2]
//	    ceiling: {}
//	    wall: {}
//
// A vertex is either x y z r g b a, or x y z with the sector color (opaque
// white when unset). Sector names exist only in the YAML; the binary format
// has no place for them.
package scene

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/goccy/go-yaml"

	"github.com/logicossoftware/go-mimemap"
)

var ErrInvalidScene = errors.New("scene: invalid scene")

var defaultColor = [4]float32{1, 1, 1, 1}

type Scene struct {
	Sectors []Sector `yaml:"sectors"`
}

type Sector struct {
	Name    string    `yaml:"name,omitempty"`
	Color   []float32 `yaml:"color,omitempty"`
	Floor   Mesh      `yaml:"floor"`
	Ceiling Mesh      `yaml:"ceiling"`
	Wall    Mesh      `yaml:"wall"`
}

type Mesh struct {
	Vertices [][]float32 `yaml:"vertices,omitempty"`
	Indices  []uint32    `yaml:"indices,omitempty"`
}

// Parse decodes a YAML scene. Unknown fields are rejected.
func Parse(data []byte) (*Scene, error) {
	var s Scene
	if err := yaml.UnmarshalWithOptions(data, &s, yaml.DisallowUnknownField()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidScene, err)
	}
	return &s, nil
}

// LoadFile parses the YAML scene at path.
func LoadFile(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Marshal encodes s as YAML.
func (s *Scene) Marshal() ([]byte, error) {
	return yaml.Marshal(s)
}

// SectorName returns the name of sector i, or its index when unnamed.
func (s *Scene) SectorName(i int) string {
	if i >= 0 && i < len(s.Sectors) && s.Sectors[i].Name != "" {
		return s.Sectors[i].Name
	}
	return strconv.Itoa(i)
}

// Build converts s into a map. Indices are copied as written; use
// mimemap.Validate to check them.
func (s *Scene) Build() (*mimemap.Map, error) {
	m := mimemap.NewMap()
	for i, sec := range s.Sectors {
		color := defaultColor
		if sec.Color != nil {
			if len(sec.Color) != 4 {
				return nil, fmt.Errorf("%w: sector %s: color has %d components, want 4", ErrInvalidScene, s.SectorName(i), len(sec.Color))
			}
			color = [4]float32(sec.Color)
		}
		var out mimemap.Sector
		for _, role := range []mimemap.MeshRole{mimemap.RoleFloor, mimemap.RoleCeiling, mimemap.RoleWall} {
			mesh, err := sec.mesh(role).build(color)
			if err != nil {
				return nil, fmt.Errorf("%w: sector %s %s: %v", ErrInvalidScene, s.SectorName(i), role, err)
			}
			*out.Mesh(role) = mesh
		}
		m.Sectors = append(m.Sectors, out)
	}
	return m, nil
}

func (s *Sector) mesh(role mimemap.MeshRole) *Mesh {
	switch role {
	case mimemap.RoleCeiling:
		return &s.Ceiling
	case mimemap.RoleWall:
		return &s.Wall
	default:
		return &s.Floor
	}
}

func (m *Mesh) build(color [4]float32) (mimemap.Mesh, error) {
	var out mimemap.Mesh
	for i, c := range m.Vertices {
		switch len(c) {
		case 3:
			out.Vertices = append(out.Vertices, mimemap.NewVertex(c[0], c[1], c[2], color))
		case 7:
			out.Vertices = append(out.Vertices, mimemap.NewVertex(c[0], c[1], c[2], [4]float32(c[3:7])))
		default:
			return mimemap.Mesh{}, fmt.Errorf("vertex %d has %d components, want 3 or 7", i, len(c))
		}
	}
	if len(m.Indices) > 0 {
		out.Indices = append([]uint32(nil), m.Indices...)
	}
	return out, nil
}

// FromMap describes m as a scene. Every vertex is written with all seven
// components and sectors are left unnamed.
func FromMap(m *mimemap.Map) *Scene {
	s := &Scene{Sectors: make([]Sector, len(m.Sectors))}
	for i := range m.Sectors {
		for _, role := range []mimemap.MeshRole{mimemap.RoleFloor, mimemap.RoleCeiling, mimemap.RoleWall} {
			src := m.Sectors[i].Mesh(role)
			dst := s.Sectors[i].mesh(role)
			for _, v := range src.Vertices {
				dst.Vertices = append(dst.Vertices, []float32{v.X, v.Y, v.Z, v.Color[0], v.Color[1], v.Color[2], v.Color[3]})
			}
			if len(src.Indices) > 0 {
				dst.Indices = append([]uint32(nil), src.Indices...)
			}
		}
	}
	return s
}
