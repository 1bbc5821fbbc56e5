package mimemap

import (
	"encoding/binary"
	"fmt"
	"math"
)

// Header is the fixed prefix of a MIME file.
type Header struct {
	Magic       [4]byte
	Version     uint32
	SectorCount uint64
}

func appendHeader(dst []byte, h Header) []byte {
	dst = append(dst, h.Magic[:]...)
	dst = binary.LittleEndian.AppendUint32(dst, h.Version)
	return binary.LittleEndian.AppendUint64(dst, h.SectorCount)
}

// ReadHeader parses the 16-byte header of b without checking the magic or
// version. It is meant for diagnostics; Decode and Scan validate the header.
func ReadHeader(b []byte) (Header, error) {
	if len(b) < emptyMapSize {
		return Header{}, fmt.Errorf("%w: header needs %d bytes, have %d", ErrBufferTooSmall, emptyMapSize, len(b))
	}
	var h Header
	copy(h.Magic[:], b[0:4])
	h.Version = binary.LittleEndian.Uint32(b[4:8])
	h.SectorCount = binary.LittleEndian.Uint64(b[8:16])
	return h, nil
}

// readValidHeader checks the magic and version before reading the sector
// count, so a foreign file is reported as such even when it is short.
func readValidHeader(b []byte) (Header, error) {
	if len(b) < HeaderSize {
		return Header{}, fmt.Errorf("%w: map header needs %d bytes, have %d", ErrBufferTooSmall, HeaderSize, len(b))
	}
	var h Header
	copy(h.Magic[:], b[0:4])
	if h.Magic != Magic {
		return Header{}, ErrIncorrectMagic
	}
	h.Version = binary.LittleEndian.Uint32(b[4:8])
	if h.Version != VersionV1 {
		return Header{}, fmt.Errorf("%w: got %d, want %d", ErrIncorrectVersion, h.Version, VersionV1)
	}
	if len(b) < emptyMapSize {
		return Header{}, fmt.Errorf("%w: sector count needs %d bytes, have %d", ErrBufferTooSmall, lengthPrefixSize, len(b)-HeaderSize)
	}
	h.SectorCount = binary.LittleEndian.Uint64(b[8:16])
	return h, nil
}

// wireCount converts a slice length to its on-disk width.
func wireCount(n int, what string) (uint64, error) {
	if n < 0 {
		return 0, fmt.Errorf("%w: %s %d", ErrCountConversion, what, n)
	}
	return uint64(n), nil
}

// hostCount converts a decoded 64-bit count to a native int.
func hostCount(n uint64, what string) (int, error) {
	if n > math.MaxInt {
		return 0, fmt.Errorf("%w: %s %d does not fit in int", ErrCountConversion, what, n)
	}
	return int(n), nil
}

// readBlock reads a u64 byte-length prefix at b[off:] and returns the block it
// describes plus the offset just past it. The prefix is only trusted after it
// has been checked against the bytes that are actually present.
func readBlock(b []byte, off int, what string) (block []byte, next int, err error) {
	if len(b)-off < lengthPrefixSize {
		return nil, 0, fmt.Errorf("%w: %s length prefix needs %d bytes, have %d", ErrBufferTooSmall, what, lengthPrefixSize, len(b)-off)
	}
	size := binary.LittleEndian.Uint64(b[off : off+lengthPrefixSize])
	off += lengthPrefixSize
	if size > uint64(len(b)-off) {
		return nil, 0, fmt.Errorf("%w: %s claims %d bytes, have %d", ErrBufferTooSmall, what, size, len(b)-off)
	}
	end := off + int(size)
	return b[off:end:end], end, nil
}

// beginBlock reserves a length prefix in dst and returns its position for
// endBlock.
func beginBlock(dst []byte) ([]byte, int) {
	at := len(dst)
	return binary.LittleEndian.AppendUint64(dst, 0), at
}

// endBlock back-patches the length prefix reserved at position at.
func endBlock(dst []byte, at int, what string) ([]byte, error) {
	size, err := wireCount(len(dst)-at-lengthPrefixSize, what)
	if err != nil {
		return nil, err
	}
	binary.LittleEndian.PutUint64(dst[at:at+lengthPrefixSize], size)
	return dst, nil
}
