package fsutil

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// Compression suffixes recognised by Open and ReadFile.
const (
	ExtGzip = ".gz"
	ExtZstd = ".zst"
)

// Open opens path for reading, decompressing it on the fly when the name ends
// in .gz or .zst. Closing the returned reader closes the file as well.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	switch {
	case strings.HasSuffix(path, ExtGzip):
		zr, err := gzip.NewReader(f)
		if err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("%s: gzip: %w", path, err)
		}
		return &stackedCloser{Reader: zr, closers: []io.Closer{zr, f}}, nil
	case strings.HasSuffix(path, ExtZstd):
		dec, err := zstd.NewReader(f)
		if err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("%s: zstd: %w", path, err)
		}
		return &stackedCloser{Reader: dec, closers: []io.Closer{zstdCloser{dec}, f}}, nil
	default:
		return f, nil
	}
}

// ReadFile reads the whole (possibly compressed) file at path.
func ReadFile(path string) ([]byte, error) {
	rc, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("%s: read: %w", path, err)
	}
	return data, nil
}

// stackedCloser closes a decompressor and the file underneath it, in order.
type stackedCloser struct {
	io.Reader
	closers []io.Closer
}

func (s *stackedCloser) Close() error {
	var first error
	for _, c := range s.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// zstdCloser adapts zstd.Decoder, whose Close returns nothing.
type zstdCloser struct{ dec *zstd.Decoder }

func (z zstdCloser) Close() error {
	z.dec.Close()
	return nil
}
