package mimemap

import "fmt"

// AppendSector appends the encoding of s to dst. Floor, ceiling and wall are
// written in that order, each preceded by the u64 byte length of its block.
func AppendSector(dst []byte, s Sector) ([]byte, error) {
	for _, role := range sectorRoles {
		var at int
		var err error
		dst, at = beginBlock(dst)
		dst, err = AppendMesh(dst, *s.Mesh(role))
		if err != nil {
			return nil, fmt.Errorf("%s mesh: %w", role, err)
		}
		dst, err = endBlock(dst, at, role.String()+" mesh")
		if err != nil {
			return nil, err
		}
	}
	return dst, nil
}

// EncodedSize returns the number of bytes AppendSector produces for s.
func (s Sector) EncodedSize() int {
	return 3*lengthPrefixSize + s.Floor.EncodedSize() + s.Ceiling.EncodedSize() + s.Wall.EncodedSize()
}

// DecodeSector decodes a sector from b using the default limits.
func DecodeSector(b []byte) (Sector, error) {
	return decodeSector(b, defaultLimits())
}

func decodeSector(b []byte, limits Limits) (Sector, error) {
	var s Sector
	off := 0
	for _, role := range sectorRoles {
		block, next, err := readBlock(b, off, role.String()+" mesh")
		if err != nil {
			return Sector{}, err
		}
		m, err := decodeMesh(block, limits)
		if err != nil {
			return Sector{}, fmt.Errorf("%s mesh: %w", role, err)
		}
		*s.Mesh(role) = m
		off = next
	}
	return s, nil
}
