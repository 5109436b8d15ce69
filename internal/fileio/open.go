package fileio

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// IsGzipPath reports whether a path gets transparent gzip handling.
func IsGzipPath(path string) bool {
	return strings.HasSuffix(path, ".gz")
}

// Open opens an input file for reading. Paths ending in .gz are
// decompressed transparently.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	if !IsGzipPath(path) {
		return f, nil
	}

	zr, err := gzip.NewReader(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("open gzip %s: %w", path, err)
	}
	return &readCloser{Reader: zr, closers: []io.Closer{zr, f}}, nil
}

// Create creates an output file for writing, truncating any existing
// content. Paths ending in .gz are compressed transparently.
func Create(path string) (io.WriteCloser, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}

	if !IsGzipPath(path) {
		return f, nil
	}

	zw := gzip.NewWriter(f)
	return &writeCloser{Writer: zw, closers: []io.Closer{zw, f}}, nil
}

// readCloser closes a chain of wrapped readers in order.
type readCloser struct {
	io.Reader
	closers []io.Closer
}

func (r *readCloser) Close() error {
	var first error
	for _, c := range r.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// writeCloser closes a chain of wrapped writers in order. The gzip
// writer must be closed before the file to flush its trailer.
type writeCloser struct {
	io.Writer
	closers []io.Closer
}

func (w *writeCloser) Close() error {
	var first error
	for _, c := range w.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
