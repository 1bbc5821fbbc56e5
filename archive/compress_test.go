package archive

import (
	"archive/zip"
	"bytes"
	"encoding/binary"
	"io"
	"io/fs"
	"testing"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type errWriter struct{}

func (errWriter) Write(p []byte) (int, error) { return 0, io.ErrClosedPipe }

func TestCompressHelpers_ErrorPaths(t *testing.T) {
	origCreate := zipCreate
	zipCreate = func(_ *zip.Writer, _ string) (io.Writer, error) { return nil, io.ErrClosedPipe }
	assert.Error(t, zipCompressNamed(io.Discard, zipEntryName, []byte("x")))
	zipCreate = func(_ *zip.Writer, _ string) (io.Writer, error) { return errWriter{}, nil }
	assert.Error(t, zipCompressNamed(io.Discard, zipEntryName, []byte("x")))
	zipCreate = origCreate

	origClose := zipClose
	zipClose = func(_ *zip.Writer) error { return io.ErrClosedPipe }
	assert.Error(t, zipCompressNamed(io.Discard, zipEntryName, []byte("x")))
	_, err := zipCompress([]byte("x"))
	assert.Error(t, err)
	zipClose = origClose

	assert.Error(t, lz4CompressTo(errWriter{}, []byte("x")))
	origLZ4Close := lz4Close
	lz4Close = func(_ *lz4.Writer) error { return io.ErrClosedPipe }
	assert.Error(t, lz4CompressTo(io.Discard, []byte("x")))
	_, err = lz4Compress([]byte("x"))
	assert.Error(t, err)
	lz4Close = origLZ4Close

	origBrotliWrite := brotliWrite
	brotliWrite = func(_ *brotli.Writer, _ []byte) (int, error) { return 0, io.ErrClosedPipe }
	assert.Error(t, brotliCompressTo(io.Discard, []byte("x")))
	brotliWrite = origBrotliWrite

	origBrotliClose := brotliClose
	brotliClose = func(_ *brotli.Writer) error { return io.ErrClosedPipe }
	assert.Error(t, brotliCompressTo(io.Discard, []byte("x")))
	_, err = brotliCompress([]byte("x"))
	assert.Error(t, err)
	brotliClose = origBrotliClose
}

func TestZstdConstructorInjection(t *testing.T) {
	origW := newZstdWriter
	origR := newZstdReader
	defer func() {
		newZstdWriter = origW
		newZstdReader = origR
	}()

	newZstdWriter = func() (*zstd.Encoder, error) { return nil, io.ErrClosedPipe }
	_, err := zstdCompress([]byte("x"))
	assert.Error(t, err)
	_, err = Pack([]byte("x"), CompZSTD)
	assert.Error(t, err)

	newZstdWriter = origW
	newZstdReader = func() (*zstd.Decoder, error) { return nil, io.ErrClosedPipe }
	_, err = zstdDecompress([]byte("x"), 10)
	assert.Error(t, err)
}

func TestZIPDecompressErrors(t *testing.T) {
	build := func(fn func(zw *zip.Writer)) []byte {
		var buf bytes.Buffer
		zw := zip.NewWriter(&buf)
		fn(zw)
		require.NoError(t, zw.Close())
		return buf.Bytes()
	}

	multi := build(func(zw *zip.Writer) {
		_, _ = zw.Create(zipEntryName)
		_, _ = zw.Create("extra")
	})
	_, err := zipDecompress(multi, 0)
	assert.ErrorIs(t, err, ErrInvalidPayload)

	wrongName := build(func(zw *zip.Writer) {
		w, _ := zw.Create("nope")
		_, _ = w.Write([]byte("abc"))
	})
	_, err = zipDecompress(wrongName, 3)
	assert.ErrorIs(t, err, ErrInvalidPayload)

	sizeMismatch := build(func(zw *zip.Writer) {
		w, _ := zw.Create(zipEntryName)
		_, _ = w.Write([]byte("abcd"))
	})
	_, err = zipDecompress(sizeMismatch, 3)
	assert.ErrorIs(t, err, ErrInvalidPayload)

	dir := build(func(zw *zip.Writer) {
		h := &zip.FileHeader{Name: zipEntryName}
		h.SetMode(fs.ModeDir | 0o755)
		_, _ = zw.CreateHeader(h)
	})
	_, err = zipDecompress(dir, 0)
	assert.ErrorIs(t, err, ErrInvalidPayload)

	_, err = zipDecompress([]byte("notzip"), 3)
	assert.Error(t, err)
}

func TestZIPDecompress_InjectionErrorPaths(t *testing.T) {
	z, err := zipCompress([]byte("abc"))
	require.NoError(t, err)

	origOpen := zipOpen
	zipOpen = func(_ *zip.File) (io.ReadCloser, error) { return nil, io.ErrClosedPipe }
	_, err = zipDecompress(z, 3)
	assert.Error(t, err)
	zipOpen = origOpen

	origReadAll := readAll
	readAll = func(io.Reader) ([]byte, error) { return nil, io.ErrClosedPipe }
	_, err = zipDecompress(z, 3)
	assert.Error(t, err)
	_, err = brotliDecompress([]byte("anything"), 10)
	assert.Error(t, err)
	readAll = origReadAll
}

func TestDecompressionExpansionGuards(t *testing.T) {
	in := []byte("hello world")

	zst, err := zstdCompress(in)
	require.NoError(t, err)
	_, err = zstdDecompress(zst, 1)
	assert.ErrorIs(t, err, ErrInvalidPayload)

	lz, err := lz4Compress(in)
	require.NoError(t, err)
	_, err = lz4Decompress(lz, 1)
	assert.ErrorIs(t, err, ErrInvalidPayload)

	br, err := brotliCompress(in)
	require.NoError(t, err)
	_, err = brotliDecompress(br, 1)
	assert.ErrorIs(t, err, ErrInvalidPayload)
}

func TestZstdDecompressStopsAtDeclaredLength(t *testing.T) {
	in := make([]byte, 32<<20)
	zst, err := zstdCompress(in)
	require.NoError(t, err)

	origReadAll := readAll
	defer func() { readAll = origReadAll }()
	var read int
	readAll = func(r io.Reader) ([]byte, error) {
		b, err := origReadAll(r)
		read = len(b)
		return b, err
	}

	_, err = zstdDecompress(zst, 16)
	assert.ErrorIs(t, err, ErrInvalidPayload)
	assert.Equal(t, 17, read)

	env, err := Pack(in, CompZSTD)
	require.NoError(t, err)
	binary.LittleEndian.PutUint64(env[8:16], 16)
	_, err = Unpack(env)
	assert.ErrorIs(t, err, ErrInvalidPayload)
	assert.Equal(t, 17, read)
}

func TestDecompressionCorruptStreams(t *testing.T) {
	_, err := zstdDecompress([]byte("notzstd"), 100)
	assert.Error(t, err)
	_, err = lz4Decompress([]byte("notlz4"), 100)
	assert.Error(t, err)
	_, err = brotliDecompress([]byte("notbr"), 100)
	assert.Error(t, err)
	_, err = decompress(Compression(99), nil, 0)
	assert.ErrorIs(t, err, ErrUnknownCompression)
}
