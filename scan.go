package mimemap

import (
	"errors"
	"fmt"
)

// Block locates one sector payload inside an encoded map.
type Block struct {
	Index  int
	Offset int // first payload byte, after the length prefix
	Size   int
}

var errStopWalk = errors.New("stop walk")

// walkSectors validates the header of b and calls fn for every sector block
// in order. fn may return errStopWalk to end the walk early without error.
func walkSectors(b []byte, limits Limits, fn func(blk Block, payload []byte) error) (Header, error) {
	if uint64(len(b)) > limits.MaxFileSize {
		return Header{}, fmt.Errorf("%w: input is %d bytes", ErrLimitExceeded, len(b))
	}
	h, err := readValidHeader(b)
	if err != nil {
		return Header{}, err
	}
	if h.SectorCount > limits.MaxSectors {
		return h, fmt.Errorf("%w: sector count %d", ErrLimitExceeded, h.SectorCount)
	}
	count, err := hostCount(h.SectorCount, "sector count")
	if err != nil {
		return h, err
	}
	off := emptyMapSize
	for i := 0; i < count; i++ {
		payload, next, err := readBlock(b, off, "sector")
		if err != nil {
			return h, fmt.Errorf("sector %d: %w", i, err)
		}
		blk := Block{Index: i, Offset: off + lengthPrefixSize, Size: len(payload)}
		if err := fn(blk, payload); err != nil {
			if errors.Is(err, errStopWalk) {
				return h, nil
			}
			return h, err
		}
		off = next
	}
	return h, nil
}

// Scan validates the header of an encoded map and locates every sector block
// without decoding any mesh. It applies the same bounds checks as Decode.
func Scan(b []byte, opts ...ReadOption) (Header, []Block, error) {
	cfg := newReadConfig(opts)
	var blocks []Block
	h, err := walkSectors(b, cfg.limits, func(blk Block, _ []byte) error {
		blocks = append(blocks, blk)
		return nil
	})
	if err != nil {
		return Header{}, nil, err
	}
	return h, blocks, nil
}

// DecodeSectorAt decodes only the i-th sector of an encoded map, skipping
// over the blocks before it.
func DecodeSectorAt(b []byte, i int, opts ...ReadOption) (Sector, error) {
	cfg := newReadConfig(opts)
	if i < 0 {
		return Sector{}, fmt.Errorf("%w: %d", ErrSectorIndex, i)
	}
	var (
		s     Sector
		found bool
	)
	h, err := walkSectors(b, cfg.limits, func(blk Block, payload []byte) error {
		if blk.Index != i {
			return nil
		}
		var err error
		s, err = decodeSector(payload, cfg.limits)
		if err != nil {
			return fmt.Errorf("sector %d: %w", i, err)
		}
		found = true
		return errStopWalk
	})
	if err != nil {
		return Sector{}, err
	}
	if !found {
		return Sector{}, fmt.Errorf("%w: %d of %d", ErrSectorIndex, i, h.SectorCount)
	}
	return s, nil
}
