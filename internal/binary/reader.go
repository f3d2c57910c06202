// Package binary provides bounds-checked primitives for reading and writing
// the trailing tag region of a host stream.
package binary

import (
	"fmt"
	"io"
)

// SafeReader wraps an io.ReadSeeker with bounds checking and helpful error
// messages. The stream length is captured once, when the reader is created.
type SafeReader struct {
	r    io.ReadSeeker
	path string
	size int64
}

// NewSafeReader creates a new SafeReader, measuring the stream by seeking
// to its end.
func NewSafeReader(r io.ReadSeeker, path string) (*SafeReader, error) {
	size, err := r.Seek(0, io.SeekEnd)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to determine stream length: %w", path, err)
	}
	return &SafeReader{
		r:    r,
		path: path,
		size: size,
	}, nil
}

// Path returns the file path associated with this reader.
func (sr *SafeReader) Path() string {
	return sr.path
}

// Size returns the stream length in bytes.
func (sr *SafeReader) Size() int64 {
	return sr.size
}

// ReadAt seeks from the start of the stream and fills b, with context for
// error messages.
func (sr *SafeReader) ReadAt(b []byte, off int64, what string) error {
	if off < 0 || off > sr.size || (off == sr.size && len(b) > 0) {
		return fmt.Errorf("%s: offset %d out of bounds (file size: %d) while reading %s",
			sr.path, off, sr.size, what)
	}

	if off+int64(len(b)) > sr.size {
		return fmt.Errorf("%s: read of %d bytes at offset %d would exceed file size %d while reading %s",
			sr.path, len(b), off, sr.size, what)
	}

	if _, err := sr.r.Seek(off, io.SeekStart); err != nil {
		return fmt.Errorf("%s: failed to seek to %s at offset %d: %w", sr.path, what, off, err)
	}

	n, err := io.ReadFull(sr.r, b)
	if err != nil {
		if err == io.ErrUnexpectedEOF || err == io.EOF {
			return fmt.Errorf("%s: short read for %s at offset %d: got %d bytes, expected %d",
				sr.path, what, off, n, len(b))
		}
		return fmt.Errorf("%s: failed to read %s at offset %d: %w", sr.path, what, off, err)
	}

	return nil
}

// ReadTail seeks relative to the end of the stream and fills b with the
// bytes starting fromEnd bytes before the end.
func (sr *SafeReader) ReadTail(b []byte, fromEnd int64, what string) error {
	if fromEnd < int64(len(b)) || fromEnd > sr.size {
		return fmt.Errorf("%s: read of %d bytes at %d from end would exceed file size %d while reading %s",
			sr.path, len(b), fromEnd, sr.size, what)
	}

	if _, err := sr.r.Seek(-fromEnd, io.SeekEnd); err != nil {
		return fmt.Errorf("%s: failed to seek to %s at %d from end: %w", sr.path, what, fromEnd, err)
	}

	n, err := io.ReadFull(sr.r, b)
	if err != nil {
		return fmt.Errorf("%s: short read for %s at %d from end: got %d bytes, expected %d: %w",
			sr.path, what, fromEnd, n, len(b), err)
	}

	return nil
}
