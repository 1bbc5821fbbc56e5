package mimemap

import (
	"fmt"
	"math"
)

// Validate checks what the codec deliberately leaves alone: every index must
// reference an existing vertex and every coordinate and color channel must be
// finite. Errors wrap ErrValidation and name the offending sector and mesh.
func Validate(m *Map) error {
	if m == nil {
		return fmt.Errorf("%w: map is nil", ErrValidation)
	}
	for i := range m.Sectors {
		for _, role := range sectorRoles {
			if err := validateMesh(m.Sectors[i].Mesh(role)); err != nil {
				return fmt.Errorf("%w: sector %d %s mesh: %v", ErrValidation, i, role, err)
			}
		}
	}
	return nil
}

func validateMesh(m *Mesh) error {
	for i, v := range m.Vertices {
		if !finite(v.X) || !finite(v.Y) || !finite(v.Z) {
			return fmt.Errorf("vertex %d position is not finite", i)
		}
		for _, c := range v.Color {
			if !finite(c) {
				return fmt.Errorf("vertex %d color is not finite", i)
			}
		}
	}
	n := uint64(len(m.Vertices))
	for i, idx := range m.Indices {
		if uint64(idx) >= n {
			return fmt.Errorf("index %d is %d, mesh has %d vertices", i, idx, n)
		}
	}
	return nil
}

func finite(f float32) bool {
	return !math.IsNaN(float64(f)) && !math.IsInf(float64(f), 0)
}
