package mimemap

import "fmt"

// Limits caps what a decoder accepts from a file before allocating for it.
// Zero fields take the default value.
type Limits struct {
	MaxFileSize        uint64 // whole encoded map, in bytes
	MaxSectors         uint64
	MaxVerticesPerMesh uint64
	MaxIndicesPerMesh  uint64
}

func defaultLimits() Limits {
	return Limits{
		MaxFileSize:        4 << 30, // 4 GiB
		MaxSectors:         1 << 20,
		MaxVerticesPerMesh: 1 << 26,
		MaxIndicesPerMesh:  1 << 28,
	}
}

// DefaultLimits returns the limits used when none are configured.
func DefaultLimits() Limits {
	return defaultLimits()
}

func (l Limits) withDefaults() Limits {
	d := defaultLimits()
	if l.MaxFileSize == 0 {
		l.MaxFileSize = d.MaxFileSize
	}
	if l.MaxSectors == 0 {
		l.MaxSectors = d.MaxSectors
	}
	if l.MaxVerticesPerMesh == 0 {
		l.MaxVerticesPerMesh = d.MaxVerticesPerMesh
	}
	if l.MaxIndicesPerMesh == 0 {
		l.MaxIndicesPerMesh = d.MaxIndicesPerMesh
	}
	return l
}

// checkMap applies l to an in-memory map before it is encoded.
func (l Limits) checkMap(m *Map) error {
	if uint64(len(m.Sectors)) > l.MaxSectors {
		return fmt.Errorf("%w: %d sectors", ErrLimitExceeded, len(m.Sectors))
	}
	for i := range m.Sectors {
		for _, role := range sectorRoles {
			mesh := m.Sectors[i].Mesh(role)
			if uint64(len(mesh.Vertices)) > l.MaxVerticesPerMesh {
				return fmt.Errorf("%w: sector %d %s mesh has %d vertices", ErrLimitExceeded, i, role, len(mesh.Vertices))
			}
			if uint64(len(mesh.Indices)) > l.MaxIndicesPerMesh {
				return fmt.Errorf("%w: sector %d %s mesh has %d indices", ErrLimitExceeded, i, role, len(mesh.Indices))
			}
		}
	}
	return nil
}
