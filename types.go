package mimemap

const (
	VersionV1 uint32 = 1

	// HeaderSize is the size of the magic and version fields.
	HeaderSize = 8
	// VertexSize is the encoded size of a single vertex (x, y, z, r, g, b, a).
	VertexSize = 7 * 4
	// IndexSize is the encoded size of a single index.
	IndexSize = 4

	lengthPrefixSize = 8
	meshCountsSize   = 2 * 8
	emptyMapSize     = HeaderSize + 8
)

// Magic is the 4-byte MIME file signature.
var Magic = [4]byte{'M', 'I', 'M', 'E'}

// MeshRole names the fixed position of a mesh inside a sector.
type MeshRole uint8

const (
	RoleFloor MeshRole = iota
	RoleCeiling
	RoleWall
)

func (r MeshRole) String() string {
	switch r {
	case RoleFloor:
		return "floor"
	case RoleCeiling:
		return "ceiling"
	case RoleWall:
		return "wall"
	default:
		return "unknown"
	}
}

// Vertex is a point in 3D space with an RGBA color.
type Vertex struct {
	X, Y, Z float32
	Color   [4]float32
}

func NewVertex(x, y, z float32, color [4]float32) Vertex {
	return Vertex{X: x, Y: y, Z: z, Color: color}
}

// Mesh is a vertex buffer plus an index buffer.
//
// Indices are expected to be smaller than len(Vertices) but the codec does
// not enforce it; out-of-range indices are stored and decoded verbatim.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
}

func NewMesh(vertices []Vertex, indices []uint32) Mesh {
	return Mesh{Vertices: vertices, Indices: indices}
}

// Sector is a region of the map with its own floor, ceiling and wall geometry.
type Sector struct {
	Floor   Mesh
	Ceiling Mesh
	Wall    Mesh
}

func NewSector(floor, ceiling, wall Mesh) Sector {
	return Sector{Floor: floor, Ceiling: ceiling, Wall: wall}
}

// Mesh returns the mesh with the given role.
func (s *Sector) Mesh(role MeshRole) *Mesh {
	switch role {
	case RoleFloor:
		return &s.Floor
	case RoleCeiling:
		return &s.Ceiling
	case RoleWall:
		return &s.Wall
	default:
		return nil
	}
}

var sectorRoles = [3]MeshRole{RoleFloor, RoleCeiling, RoleWall}

// Map is a logical representation of a MIME file.
//
// Version is the format version the map was decoded from. A zero Version is
// encoded as VersionV1.
type Map struct {
	Version uint32
	Sectors []Sector
}

func NewMap(sectors ...Sector) *Map {
	return &Map{Version: VersionV1, Sectors: sectors}
}
