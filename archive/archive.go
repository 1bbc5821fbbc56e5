// Package archive wraps encoded MIME maps in a compressed envelope for
// shipping.
//
// The map format itself is never compressed. An envelope is a 16-byte header
// followed by the compressed bytes of a complete .mime file:
//
//	bytes 0..4   magic "MIMZ"
//	bytes 4..6   compression u16 (0 none, 1 zip, 2 zstd, 3 lz4, 4 brotli)
//	bytes 6..8   reserved u16, must be 0
//	bytes 8..16  uncompressed length u64
//	bytes 16..   payload
//
// Unpacking enforces a maximum uncompressed size so a small envelope cannot
// expand into an arbitrarily large allocation.
package archive

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/logicossoftware/go-mimemap"
)

var (
	ErrNotEnvelope        = errors.New("archive: not a compressed map envelope")
	ErrInvalidEnvelope    = errors.New("archive: invalid envelope header")
	ErrInvalidPayload     = errors.New("archive: invalid payload")
	ErrUnknownCompression = errors.New("archive: unknown compression")
)

// Magic is the 4-byte envelope signature.
var Magic = [4]byte{'M', 'I', 'M', 'Z'}

const headerSize = 16

type Compression uint16

const (
	CompNone Compression = 0x0
	CompZIP  Compression = 0x1
	CompZSTD Compression = 0x2
	CompLZ4  Compression = 0x3
	CompBR   Compression = 0x4
)

var compressionNames = map[Compression]string{
	CompNone: "none",
	CompZIP:  "zip",
	CompZSTD: "zstd",
	CompLZ4:  "lz4",
	CompBR:   "brotli",
}

func (c Compression) String() string {
	if s, ok := compressionNames[c]; ok {
		return s
	}
	return "unknown"
}

// ParseCompression returns the compression with the given name as printed by
// Compression.String. "br" and "zst" are accepted as aliases.
func ParseCompression(name string) (Compression, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	switch n {
	case "br":
		return CompBR, nil
	case "zst":
		return CompZSTD, nil
	}
	for c, s := range compressionNames {
		if s == n {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCompression, name)
}

// CompressionForPath picks a compression from the file extension of path:
// .zst, .lz4, .br and .zip map to their algorithm, anything else to CompNone.
func CompressionForPath(path string) Compression {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".zst":
		return CompZSTD
	case ".lz4":
		return CompLZ4
	case ".br":
		return CompBR
	case ".zip":
		return CompZIP
	default:
		return CompNone
	}
}

type config struct {
	maxUncompressed uint64
	mapOpts         []mimemap.ReadOption
}

type Option func(*config)

// WithMaxUncompressed caps the declared uncompressed size of an envelope.
// Zero selects the default, the map decoder's default MaxFileSize.
func WithMaxUncompressed(n uint64) Option {
	return func(c *config) { c.maxUncompressed = n }
}

// WithMapOptions passes options through to mimemap.Decode in Load.
func WithMapOptions(opts ...mimemap.ReadOption) Option {
	return func(c *config) { c.mapOpts = append(c.mapOpts, opts...) }
}

func newConfig(opts []Option) config {
	cfg := config{maxUncompressed: mimemap.DefaultLimits().MaxFileSize}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.maxUncompressed == 0 {
		cfg.maxUncompressed = mimemap.DefaultLimits().MaxFileSize
	}
	return cfg
}

// IsEnvelope reports whether b starts with the envelope magic.
func IsEnvelope(b []byte) bool {
	return len(b) >= len(Magic) && [4]byte(b[:4]) == Magic
}

// Pack wraps an encoded map in an envelope compressed with comp.
func Pack(mime []byte, comp Compression) ([]byte, error) {
	payload, err := compress(comp, mime)
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, headerSize+len(payload))
	out = append(out, Magic[:]...)
	out = binary.LittleEndian.AppendUint16(out, uint16(comp))
	out = binary.LittleEndian.AppendUint16(out, 0)
	out = binary.LittleEndian.AppendUint64(out, uint64(len(mime)))
	return append(out, payload...), nil
}

// Unpack returns the encoded map held by the envelope b.
func Unpack(b []byte, opts ...Option) ([]byte, error) {
	cfg := newConfig(opts)
	if !IsEnvelope(b) {
		return nil, ErrNotEnvelope
	}
	if len(b) < headerSize {
		return nil, fmt.Errorf("%w: need %d bytes, have %d", ErrInvalidEnvelope, headerSize, len(b))
	}
	comp := Compression(binary.LittleEndian.Uint16(b[4:6]))
	if reserved := binary.LittleEndian.Uint16(b[6:8]); reserved != 0 {
		return nil, fmt.Errorf("%w: reserved must be 0, got %d", ErrInvalidEnvelope, reserved)
	}
	if _, ok := compressionNames[comp]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownCompression, comp)
	}
	size := binary.LittleEndian.Uint64(b[8:16])
	if size > cfg.maxUncompressed {
		return nil, fmt.Errorf("%w: uncompressed length %d exceeds limit", mimemap.ErrLimitExceeded, size)
	}
	return decompress(comp, b[headerSize:], size)
}

// Function variables for testing injection.
var (
	createFile = func(name string) (io.WriteCloser, error) { return os.Create(name) }
	readFile   = os.ReadFile
)

// Save encodes m, packs it with comp and writes it to path. With CompNone the
// file is a bare .mime file written by mimemap.Save. Errors wrap
// mimemap.ErrFileCreate and mimemap.ErrFileWrite like mimemap.Save.
func Save(m *mimemap.Map, path string, comp Compression, opts ...mimemap.WriteOption) error {
	if comp == CompNone {
		return mimemap.Save(m, path, opts...)
	}
	raw, err := mimemap.Encode(m, opts...)
	if err != nil {
		return err
	}
	b, err := Pack(raw, comp)
	if err != nil {
		return err
	}
	f, err := createFile(path)
	if err != nil {
		return fmt.Errorf("%w: %w", mimemap.ErrFileCreate, err)
	}
	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		return fmt.Errorf("%w: %w", mimemap.ErrFileWrite, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %w", mimemap.ErrFileWrite, err)
	}
	return nil
}

// Load reads a map from path. Both envelopes and bare .mime files are
// accepted; the format is detected from the magic, not the file name.
func Load(path string, opts ...Option) (*mimemap.Map, error) {
	b, err := readFile(path)
	if err != nil {
		return nil, err
	}
	return Open(b, opts...)
}

// Open decodes b as either an envelope or a bare encoded map.
func Open(b []byte, opts ...Option) (*mimemap.Map, error) {
	cfg := newConfig(opts)
	if IsEnvelope(b) {
		raw, err := Unpack(b, opts...)
		if err != nil {
			return nil, err
		}
		b = raw
	}
	return mimemap.Decode(b, cfg.mapOpts...)
}
