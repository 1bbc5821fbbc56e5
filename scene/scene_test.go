package scene

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/logicossoftware/go-mimemap"
)

const hallYAML = `
sectors:
  - name: hall
    color: [0.5, 0.5, 0.5, 1]
    floor:
      vertices:
        - [0, 0, 0]
        - [1, 0, 0]
        - [1, 1, 0, 1, 0, 0, 1]
        - [0, 1, 0]
      indices: [0, 1, 2, 2, 3, 0]
    ceiling:
      vertices: [[0, 0, 3], [1, 0, 3], [1, 1, 3]]
      indices: [0, 1, 2]
    wall: {}
  - floor:
      indices: [9]
    ceiling: {}
    wall: {}
`

func TestParseAndBuild(t *testing.T) {
	s, err := Parse([]byte(hallYAML))
	require.NoError(t, err)
	require.Len(t, s.Sectors, 2)
	assert.Equal(t, "hall", s.SectorName(0))
	assert.Equal(t, "1", s.SectorName(1))
	assert.Equal(t, "7", s.SectorName(7))

	m, err := s.Build()
	require.NoError(t, err)
	require.Len(t, m.Sectors, 2)

	grey := [4]float32{0.5, 0.5, 0.5, 1}
	floor := m.Sectors[0].Floor
	require.Len(t, floor.Vertices, 4)
	assert.Equal(t, mimemap.NewVertex(0, 0, 0, grey), floor.Vertices[0])
	assert.Equal(t, mimemap.NewVertex(1, 1, 0, [4]float32{1, 0, 0, 1}), floor.Vertices[2])
	assert.Equal(t, []uint32{0, 1, 2, 2, 3, 0}, floor.Indices)
	assert.Len(t, m.Sectors[0].Ceiling.Vertices, 3)
	assert.Equal(t, mimemap.Mesh{}, m.Sectors[0].Wall)

	// Indices without vertices are kept; the codec does not validate them.
	assert.Equal(t, []uint32{9}, m.Sectors[1].Floor.Indices)
	assert.ErrorIs(t, mimemap.Validate(m), mimemap.ErrValidation)

	b, err := mimemap.Encode(m)
	require.NoError(t, err)
	got, err := mimemap.Decode(b)
	require.NoError(t, err)
	assert.Equal(t, m, got)
}

func TestDefaultColor(t *testing.T) {
	s, err := Parse([]byte("sectors:\n  - floor:\n      vertices: [[1, 2, 3]]\n"))
	require.NoError(t, err)
	m, err := s.Build()
	require.NoError(t, err)
	assert.Equal(t, mimemap.NewVertex(1, 2, 3, [4]float32{1, 1, 1, 1}), m.Sectors[0].Floor.Vertices[0])
}

func TestBuildErrors(t *testing.T) {
	cases := map[string]string{
		"short vertex": "sectors:\n  - name: a\n    wall:\n      vertices: [[1, 2]]\n",
		"bad color":    "sectors:\n  - name: a\n    color: [1, 1]\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			s, err := Parse([]byte(doc))
			require.NoError(t, err)
			_, err = s.Build()
			assert.ErrorIs(t, err, ErrInvalidScene)
			assert.Contains(t, err.Error(), "sector a")
		})
	}
}

func TestParseErrors(t *testing.T) {
	_, err := Parse([]byte("sectors:\n  - flor: {}\n"))
	assert.ErrorIs(t, err, ErrInvalidScene)

	_, err = Parse([]byte("sectors: [[["))
	assert.ErrorIs(t, err, ErrInvalidScene)
}

func TestFromMapRoundTrip(t *testing.T) {
	in := mimemap.NewMap(
		mimemap.NewSector(
			mimemap.NewMesh([]mimemap.Vertex{
				mimemap.NewVertex(0, 0, 0, [4]float32{1, 0, 0, 1}),
				mimemap.NewVertex(2.5, 0, -1, [4]float32{0, 1, 0, 0.25}),
			}, []uint32{0, 1, 5}),
			mimemap.Mesh{},
			mimemap.NewMesh(nil, []uint32{3}),
		),
	)
	data, err := FromMap(in).Marshal()
	require.NoError(t, err)

	s, err := Parse(data)
	require.NoError(t, err)
	out, err := s.Build()
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestLoadFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "level.yaml")
	require.NoError(t, os.WriteFile(p, []byte(hallYAML), 0o644))
	s, err := LoadFile(p)
	require.NoError(t, err)
	assert.Len(t, s.Sectors, 2)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
