package mimemap

import (
	"fmt"
	"io"

	"golang.org/x/sync/errgroup"
)

// Encode serializes m using the MIME v1 format.
//
// The output is the header (magic, version, sector count) followed by one
// length-prefixed block per sector. A map without sectors encodes to exactly
// 16 bytes.
//
// By default, Encode will:
//   - Encode sectors sequentially
//   - Reject maps that exceed the default Limits
//   - Not inspect indices or float values
//
// Use WriteOption functions to customize this behavior:
//   - WithConcurrency(n): encode up to n sectors in parallel
//   - WithWriteLimits(l): set custom size limits
//   - WithValidationOnWrite(true): run Validate first
func Encode(m *Map, opts ...WriteOption) ([]byte, error) {
	cfg := newWriteConfig(opts)
	if m == nil {
		return nil, fmt.Errorf("%w: map is nil", ErrInvalidMap)
	}
	if m.Version != 0 && m.Version != VersionV1 {
		return nil, fmt.Errorf("%w: cannot encode version %d", ErrIncorrectVersion, m.Version)
	}
	if err := cfg.limits.checkMap(m); err != nil {
		return nil, err
	}
	if cfg.validate {
		if err := Validate(m); err != nil {
			return nil, err
		}
	}

	count, err := wireCount(len(m.Sectors), "sector count")
	if err != nil {
		return nil, err
	}
	buf := make([]byte, 0, m.EncodedSize())
	buf = appendHeader(buf, Header{Magic: Magic, Version: VersionV1, SectorCount: count})

	if cfg.concurrency > 1 && len(m.Sectors) > 1 {
		return appendSectorsParallel(buf, m.Sectors, cfg.concurrency)
	}
	for i := range m.Sectors {
		var at int
		buf, at = beginBlock(buf)
		buf, err = AppendSector(buf, m.Sectors[i])
		if err != nil {
			return nil, fmt.Errorf("sector %d: %w", i, err)
		}
		if buf, err = endBlock(buf, at, "sector"); err != nil {
			return nil, err
		}
	}
	return buf, nil
}

// appendSectorsParallel encodes every sector into its own buffer and then
// appends the blocks in their original order.
func appendSectorsParallel(dst []byte, sectors []Sector, limit int) ([]byte, error) {
	blocks := make([][]byte, len(sectors))
	var g errgroup.Group
	g.SetLimit(limit)
	for i := range sectors {
		i := i
		g.Go(func() error {
			b, err := AppendSector(make([]byte, 0, sectors[i].EncodedSize()), sectors[i])
			if err != nil {
				return fmt.Errorf("sector %d: %w", i, err)
			}
			blocks[i] = b
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	for _, b := range blocks {
		var at int
		var err error
		dst, at = beginBlock(dst)
		dst = append(dst, b...)
		if dst, err = endBlock(dst, at, "sector"); err != nil {
			return nil, err
		}
	}
	return dst, nil
}

// EncodedSize returns the number of bytes Encode produces for m.
func (m *Map) EncodedSize() int {
	n := emptyMapSize
	for i := range m.Sectors {
		n += lengthPrefixSize + m.Sectors[i].EncodedSize()
	}
	return n
}

func (m *Map) MarshalBinary() ([]byte, error) {
	return Encode(m)
}

// WriteTo encodes m and writes it to w in a single call.
func (m *Map) WriteTo(w io.Writer) (int64, error) {
	b, err := Encode(m)
	if err != nil {
		return 0, err
	}
	n, err := w.Write(b)
	return int64(n), err
}
