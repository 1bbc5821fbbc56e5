package mimemap

import (
	"fmt"
	"io"
	"math"
)

// Function variables for testing injection.
var (
	readAll = io.ReadAll
)

// Decode parses a MIME v1 map from b.
//
// The decoding process:
//  1. Checks the magic and version of the 8-byte header
//  2. Reads the sector count
//  3. For every sector, reads the length prefix, bounds-checks it against the
//     rest of b and decodes the floor, ceiling and wall meshes from the block
//
// Decode returns ErrIncorrectMagic if b is not a MIME file, ErrIncorrectVersion
// for any version other than 1, ErrBufferTooSmall if b is shorter than a
// length or count it contains says it should be, and ErrLimitExceeded if a
// declared count exceeds the configured Limits. Decode never trusts a length
// prefix beyond checking it against the bytes that are present, and never
// panics on malformed input.
//
// Bytes after the last sector are ignored.
//
// Use ReadOption functions to customize this behavior:
//   - WithReadLimits(l): set custom size limits
//   - WithValidation(true): run Validate on the result
func Decode(b []byte, opts ...ReadOption) (*Map, error) {
	cfg := newReadConfig(opts)
	var sectors []Sector
	_, err := walkSectors(b, cfg.limits, func(blk Block, payload []byte) error {
		s, err := decodeSector(payload, cfg.limits)
		if err != nil {
			return fmt.Errorf("sector %d: %w", blk.Index, err)
		}
		sectors = append(sectors, s)
		return nil
	})
	if err != nil {
		return nil, err
	}
	m := &Map{Version: VersionV1, Sectors: sectors}
	if cfg.validate {
		if err := Validate(m); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Read reads all of r and decodes it. It stops reading once the configured
// MaxFileSize is exceeded.
func Read(r io.Reader, opts ...ReadOption) (*Map, error) {
	cfg := newReadConfig(opts)
	limit := int64(math.MaxInt64 - 1)
	if cfg.limits.MaxFileSize < uint64(limit) {
		limit = int64(cfg.limits.MaxFileSize)
	}
	b, err := readAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, err
	}
	if int64(len(b)) > limit {
		return nil, fmt.Errorf("%w: input larger than %d bytes", ErrLimitExceeded, limit)
	}
	return Decode(b, opts...)
}

func (m *Map) UnmarshalBinary(b []byte) error {
	out, err := Decode(b)
	if err != nil {
		return err
	}
	*m = *out
	return nil
}
