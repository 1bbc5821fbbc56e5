package jsonmap

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/logicossoftware/go-mimemap"
)

func TestFloatMarshalJSON(t *testing.T) {
	tests := []struct {
		in   float32
		want string
	}{
		{0, `0`},
		{1.5, `1.5`},
		{-0.1, `-0.1`},
		{3.4e38, `3.4e+38`},
		{float32(math.NaN()), `"NaN"`},
		{float32(math.Inf(1)), `"+Inf"`},
		{float32(math.Inf(-1)), `"-Inf"`},
	}
	for _, tt := range tests {
		b, err := json.Marshal(Float(tt.in))
		require.NoError(t, err)
		assert.Equal(t, tt.want, string(b))
	}
}

func TestFromMapNonFinite(t *testing.T) {
	nan := math.Float32frombits(0x7fc00001)
	floor := mimemap.NewMesh([]mimemap.Vertex{
		mimemap.NewVertex(nan, float32(math.Inf(1)), 2, [4]float32{1, 0, float32(math.Inf(-1)), 1}),
	}, []uint32{0, 5})
	raw, err := mimemap.Encode(mimemap.NewMap(mimemap.NewSector(floor, mimemap.Mesh{}, mimemap.Mesh{})))
	require.NoError(t, err)
	m, err := mimemap.Decode(raw)
	require.NoError(t, err)

	b, err := json.Marshal(FromMap(m))
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"version": 1,
		"sectors": [{
			"floor": {"vertices": [["NaN", "+Inf", 2, 1, 0, "-Inf", 1]], "indices": [0, 5]},
			"ceiling": {"vertices": [], "indices": []},
			"wall": {"vertices": [], "indices": []}
		}]
	}`, string(b))

	b, err = json.Marshal(FromSector(m.Sectors[0]))
	require.NoError(t, err)
	assert.Contains(t, string(b), `"NaN"`)
}
