// Package memfile provides an in-memory host stream with the same
// seek/read/write/truncate surface as *os.File.
package memfile

import (
	"errors"
	"io"
	"slices"
)

var errNegativePosition = errors.New("memfile: negative position")

// File is an in-memory, growable stream. It counts mutating calls so that
// callers can check how many writes and truncates an operation performed.
type File struct {
	data []byte
	pos  int64

	// Writes and Truncates count successful calls to Write and Truncate.
	Writes    int
	Truncates int
}

// New returns a stream holding a copy of data, positioned at the start.
func New(data []byte) *File {
	return &File{data: slices.Clone(data)}
}

// Bytes returns a copy of the current contents.
func (f *File) Bytes() []byte {
	return slices.Clone(f.data)
}

// Len returns the current length.
func (f *File) Len() int64 {
	return int64(len(f.data))
}

// Read reads from the current position.
func (f *File) Read(p []byte) (int, error) {
	if f.pos >= int64(len(f.data)) {
		return 0, io.EOF
	}
	n := copy(p, f.data[f.pos:])
	f.pos += int64(n)
	return n, nil
}

// Write writes at the current position, growing the stream as needed.
func (f *File) Write(p []byte) (int, error) {
	end := f.pos + int64(len(p))
	if end > int64(len(f.data)) {
		f.data = append(f.data, make([]byte, end-int64(len(f.data)))...)
	}
	copy(f.data[f.pos:], p)
	f.pos = end
	f.Writes++
	return len(p), nil
}

// Seek sets the position for the next Read or Write.
func (f *File) Seek(offset int64, whence int) (int64, error) {
	var pos int64
	switch whence {
	case io.SeekStart:
		pos = offset
	case io.SeekCurrent:
		pos = f.pos + offset
	case io.SeekEnd:
		pos = int64(len(f.data)) + offset
	default:
		return 0, errors.New("memfile: invalid whence")
	}
	if pos < 0 {
		return 0, errNegativePosition
	}
	f.pos = pos
	return pos, nil
}

// Truncate changes the length of the stream, zero-filling when it grows.
// The position is not changed.
func (f *File) Truncate(size int64) error {
	if size < 0 {
		return errNegativePosition
	}
	if size <= int64(len(f.data)) {
		f.data = f.data[:size]
	} else {
		f.data = append(f.data, make([]byte, size-int64(len(f.data)))...)
	}
	f.Truncates++
	return nil
}
