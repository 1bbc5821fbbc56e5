package mimemap

import (
	"fmt"
	"io"
	"os"
)

// Function variables for testing injection.
var (
	createFile = func(name string) (io.WriteCloser, error) { return os.Create(name) }
	readFile   = os.ReadFile
)

// Save encodes m and writes it to path, creating or truncating the file.
//
// Creation failures wrap ErrFileCreate and write failures wrap ErrFileWrite;
// both also wrap the underlying OS error. The file is written in one call
// and is not renamed into place, so a failed write can leave a truncated file.
func Save(m *Map, path string, opts ...WriteOption) error {
	b, err := Encode(m, opts...)
	if err != nil {
		return err
	}
	f, err := createFile(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFileCreate, err)
	}
	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		return fmt.Errorf("%w: %w", ErrFileWrite, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrFileWrite, err)
	}
	return nil
}

// Load reads the file at path and decodes it.
func Load(path string, opts ...ReadOption) (*Map, error) {
	b, err := readFile(path)
	if err != nil {
		return nil, err
	}
	return Decode(b, opts...)
}
