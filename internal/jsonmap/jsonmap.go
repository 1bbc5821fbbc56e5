// Package jsonmap converts maps to the JSON shape exported by the C library.
package jsonmap

import (
	"math"
	"strconv"

	"github.com/logicossoftware/go-mimemap"
)

// Float is a float32 that survives JSON. Finite values are plain numbers;
// NaN, +Inf and -Inf become the strings "NaN", "+Inf" and "-Inf" since the
// codec passes them through and JSON has no literal for them.
type Float float32

func (f Float) MarshalJSON() ([]byte, error) {
	v := float64(f)
	switch {
	case math.IsNaN(v):
		return []byte(`"NaN"`), nil
	case math.IsInf(v, 1):
		return []byte(`"+Inf"`), nil
	case math.IsInf(v, -1):
		return []byte(`"-Inf"`), nil
	}
	return strconv.AppendFloat(nil, v, 'g', -1, 32), nil
}

// Mesh holds each vertex as [x, y, z, r, g, b, a].
type Mesh struct {
	Vertices [][7]Float `json:"vertices"`
	Indices  []uint32   `json:"indices"`
}

type Sector struct {
	Floor   Mesh `json:"floor"`
	Ceiling Mesh `json:"ceiling"`
	Wall    Mesh `json:"wall"`
}

type Map struct {
	Version uint32   `json:"version"`
	Sectors []Sector `json:"sectors"`
}

func FromMesh(m mimemap.Mesh) Mesh {
	out := Mesh{Vertices: make([][7]Float, len(m.Vertices)), Indices: m.Indices}
	if out.Indices == nil {
		out.Indices = []uint32{}
	}
	for i, v := range m.Vertices {
		out.Vertices[i] = [7]Float{
			Float(v.X), Float(v.Y), Float(v.Z),
			Float(v.Color[0]), Float(v.Color[1]), Float(v.Color[2]), Float(v.Color[3]),
		}
	}
	return out
}

func FromSector(s mimemap.Sector) Sector {
	return Sector{
		Floor:   FromMesh(s.Floor),
		Ceiling: FromMesh(s.Ceiling),
		Wall:    FromMesh(s.Wall),
	}
}

func FromMap(m *mimemap.Map) Map {
	out := Map{Version: m.Version, Sectors: make([]Sector, len(m.Sectors))}
	for i, s := range m.Sectors {
		out.Sectors[i] = FromSector(s)
	}
	return out
}
