package mimemap

import (
	"encoding/binary"
	"fmt"
	"math"
)

// AppendVertex appends the 28-byte encoding of v to dst.
func AppendVertex(dst []byte, v Vertex) []byte {
	dst = appendFloat32(dst, v.X)
	dst = appendFloat32(dst, v.Y)
	dst = appendFloat32(dst, v.Z)
	for _, c := range v.Color {
		dst = appendFloat32(dst, c)
	}
	return dst
}

// DecodeVertex reads a vertex from the first VertexSize bytes of b.
// Floats are copied bit for bit; NaN and Inf are not rejected.
func DecodeVertex(b []byte) (Vertex, error) {
	if len(b) < VertexSize {
		return Vertex{}, fmt.Errorf("%w: vertex needs %d bytes, have %d", ErrBufferTooSmall, VertexSize, len(b))
	}
	return Vertex{
		X: readFloat32(b[0:4]),
		Y: readFloat32(b[4:8]),
		Z: readFloat32(b[8:12]),
		Color: [4]float32{
			readFloat32(b[12:16]),
			readFloat32(b[16:20]),
			readFloat32(b[20:24]),
			readFloat32(b[24:28]),
		},
	}, nil
}

func (v Vertex) MarshalBinary() ([]byte, error) {
	return AppendVertex(make([]byte, 0, VertexSize), v), nil
}

func (v *Vertex) UnmarshalBinary(b []byte) error {
	out, err := DecodeVertex(b)
	if err != nil {
		return err
	}
	*v = out
	return nil
}

func appendFloat32(dst []byte, f float32) []byte {
	return binary.LittleEndian.AppendUint32(dst, math.Float32bits(f))
}

func readFloat32(b []byte) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(b))
}
