package binary

import (
	"encoding/binary"
	"fmt"
)

// Endianness represents byte order for multi-byte values.
type Endianness int

const (
	// BigEndian uses big-endian byte order.
	// Used by: APE item flags.
	BigEndian Endianness = iota

	// LittleEndian uses little-endian byte order.
	// Used by: APE header/footer fields and item value lengths.
	LittleEndian
)

// ReadLE decodes a numeric value of type T at off in buf using little-endian
// byte order.
//
// Example:
//
//	size, err := binary.ReadLE[uint32](footer, 12, "tag size")
func ReadLE[T uint8 | uint16 | uint32 | uint64](buf []byte, off int, what string) (T, error) {
	return ReadEndian[T](buf, off, what, LittleEndian)
}

// ReadBE decodes a numeric value of type T at off in buf using big-endian
// byte order.
//
// Example:
//
//	flags, err := binary.ReadBE[uint32](data, offset+4, "item flags")
func ReadBE[T uint8 | uint16 | uint32 | uint64](buf []byte, off int, what string) (T, error) {
	return ReadEndian[T](buf, off, what, BigEndian)
}

// ReadEndian decodes a numeric value of type T at off in buf with the given
// byte order. Most code should use ReadLE or ReadBE instead.
func ReadEndian[T uint8 | uint16 | uint32 | uint64](buf []byte, off int, what string, endian Endianness) (T, error) {
	var zero T
	size := sizeOf[T]()

	if off < 0 || off+size > len(buf) {
		return zero, fmt.Errorf("read of %d bytes at offset %d would exceed buffer size %d while reading %s",
			size, off, len(buf), what)
	}
	b := buf[off : off+size]

	var order binary.ByteOrder = binary.BigEndian
	if endian == LittleEndian {
		order = binary.LittleEndian
	}

	var val T
	switch size {
	case 1:
		val = T(b[0])
	case 2:
		val = T(order.Uint16(b))
	case 4:
		val = T(order.Uint32(b))
	case 8:
		val = T(order.Uint64(b))
	}

	return val, nil
}

// sizeOf returns the encoded width of T in bytes.
func sizeOf[T uint8 | uint16 | uint32 | uint64]() int {
	var zero T
	switch any(zero).(type) {
	case uint8:
		return 1
	case uint16:
		return 2
	case uint32:
		return 4
	default:
		return 8
	}
}
