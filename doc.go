// Package mimemap implements the MIME map format, a compact binary container
// for 3D level geometry.
//
// A map is a list of sectors. Every sector holds exactly three meshes with
// fixed roles (floor, ceiling, wall), and every mesh is a vertex buffer plus
// an index buffer. Vertices carry a position and an RGBA color, all stored as
// 32-bit floats.
//
// # File Format Overview
//
// All integers and floats are little-endian.
//
//	Header:
//	  bytes 0..4   magic "MIME"
//	  bytes 4..8   version u32 (must be 1)
//	  bytes 8..16  sector count u64
//	Body, repeated sector count times:
//	  u64 byte length, followed by that many bytes of sector payload
//
//	Sector payload: three u64 byte-length prefixed mesh blocks (floor, ceiling, wall)
//	Mesh payload:   vertex count u64, index count u64, vertices (28 bytes each), indices (u32 each)
//	Vertex payload: x, y, z, r, g, b, a as f32
//
// Sectors and meshes are framed by their byte size so a reader can skip a
// block without decoding it (see [Scan]). The vertex and index arrays inside a
// mesh are framed by element count instead.
//
// # Basic Usage
//
// To build and save a map:
//
//	floor := mimemap.NewMesh(vertices, []uint32{0, 1, 2, 2, 3, 0})
//	m := mimemap.NewMap(mimemap.NewSector(floor, ceiling, wall))
//	err := mimemap.Save(m, "level.mime")
//
// To read it back:
//
//	m, err := mimemap.Load("level.mime")
//
// # Security Considerations
//
// Input to [Decode] is treated as untrusted. Every length prefix and element
// count is checked against the bytes actually present before anything is
// sliced or allocated, so malformed input produces an error wrapping
// [ErrBufferTooSmall] instead of a panic. Configurable [Limits] additionally
// cap declared counts.
//
// The codec does not check that indices reference existing vertices or that
// floats are finite; use [Validate] or [WithValidation] for that.
package mimemap
