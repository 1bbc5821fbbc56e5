package mimemap

import (
	"encoding/binary"
	"fmt"
)

// AppendMesh appends the encoding of m to dst: vertex count, index count,
// the vertices and then the indices.
func AppendMesh(dst []byte, m Mesh) ([]byte, error) {
	vc, err := wireCount(len(m.Vertices), "vertex count")
	if err != nil {
		return nil, err
	}
	ic, err := wireCount(len(m.Indices), "index count")
	if err != nil {
		return nil, err
	}
	dst = binary.LittleEndian.AppendUint64(dst, vc)
	dst = binary.LittleEndian.AppendUint64(dst, ic)
	for _, v := range m.Vertices {
		dst = AppendVertex(dst, v)
	}
	for _, idx := range m.Indices {
		dst = binary.LittleEndian.AppendUint32(dst, idx)
	}
	return dst, nil
}

// EncodedSize returns the number of bytes AppendMesh produces for m.
func (m Mesh) EncodedSize() int {
	return meshCountsSize + len(m.Vertices)*VertexSize + len(m.Indices)*IndexSize
}

// DecodeMesh decodes a mesh from b using the default limits.
// Bytes after the index buffer are ignored.
func DecodeMesh(b []byte) (Mesh, error) {
	return decodeMesh(b, defaultLimits())
}

func decodeMesh(b []byte, limits Limits) (Mesh, error) {
	if len(b) < meshCountsSize {
		return Mesh{}, fmt.Errorf("%w: mesh counts need %d bytes, have %d", ErrBufferTooSmall, meshCountsSize, len(b))
	}
	vc64 := binary.LittleEndian.Uint64(b[0:8])
	ic64 := binary.LittleEndian.Uint64(b[8:16])
	if vc64 > limits.MaxVerticesPerMesh {
		return Mesh{}, fmt.Errorf("%w: vertex count %d", ErrLimitExceeded, vc64)
	}
	if ic64 > limits.MaxIndicesPerMesh {
		return Mesh{}, fmt.Errorf("%w: index count %d", ErrLimitExceeded, ic64)
	}
	vertexCount, err := hostCount(vc64, "vertex count")
	if err != nil {
		return Mesh{}, err
	}
	indexCount, err := hostCount(ic64, "index count")
	if err != nil {
		return Mesh{}, err
	}
	rest := b[meshCountsSize:]

	// Compare by division so a hostile count cannot overflow the product.
	if vertexCount > len(rest)/VertexSize {
		return Mesh{}, fmt.Errorf("%w: %d vertices need more than the %d bytes left", ErrBufferTooSmall, vertexCount, len(rest))
	}
	var m Mesh
	if vertexCount > 0 {
		m.Vertices = make([]Vertex, vertexCount)
		for i := range m.Vertices {
			// Length was checked above for the whole region.
			m.Vertices[i], _ = DecodeVertex(rest[i*VertexSize:])
		}
	}
	rest = rest[vertexCount*VertexSize:]

	if indexCount > len(rest)/IndexSize {
		return Mesh{}, fmt.Errorf("%w: %d indices need more than the %d bytes left", ErrBufferTooSmall, indexCount, len(rest))
	}
	if indexCount > 0 {
		m.Indices = make([]uint32, indexCount)
		for i := range m.Indices {
			m.Indices[i] = binary.LittleEndian.Uint32(rest[i*IndexSize:])
		}
	}
	return m, nil
}
