// Package item encodes and decodes APE tag items and whole item lists.
//
// An item on disk is:
//
//	value length  uint32, little-endian
//	flags         uint32, big-endian (kind index * 2 + read-only bit)
//	key           2-255 bytes, NUL terminated
//	value         value length bytes, multiple values separated by NUL
//
// The mixed byte order of the header is part of the format and must be kept
// for compatibility with existing files.
package item

import (
	"bytes"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/simonhull/apetag/internal/binary"
	"github.com/simonhull/apetag/internal/types"
)

const (
	// MinSize is the smallest encoded item: length, flags, two key bytes and
	// the key terminator.
	MinSize = 4 + 4 + types.MinKeyLength + 1

	// MaxFlags is the largest legal flags value (two kind bits, one
	// read-only bit).
	MaxFlags = 7

	headerSize = 8
)

// Decode parses the item starting at offset in data and returns it together
// with the offset of the next item.
//
// Every failure is a *types.TagError carrying the offending offset.
func Decode(data []byte, offset int) (*types.Item, int, error) {
	if offset < 0 || len(data)-offset < MinSize {
		return nil, 0, types.NewTagErrorAt(int64(offset), "invalid item length")
	}

	length, err := binary.ReadLE[uint32](data, offset, "item length")
	if err != nil {
		return nil, 0, types.NewTagErrorAt(int64(offset), "invalid item length")
	}
	flags, err := binary.ReadBE[uint32](data, offset+4, "item flags")
	if err != nil {
		return nil, 0, types.NewTagErrorAt(int64(offset), "invalid item flags")
	}

	if int64(length)+int64(offset)+MinSize > int64(len(data)) {
		return nil, 0, types.NewTagErrorAt(int64(offset), "invalid item length")
	}
	if flags > MaxFlags {
		return nil, 0, types.NewTagErrorAt(int64(offset), "invalid item flags")
	}

	keyStart := offset + headerSize
	sep := bytes.IndexByte(data[keyStart:], 0)
	if sep < 0 {
		return nil, 0, types.NewTagErrorAt(int64(keyStart), "missing key-value separator")
	}
	keyEnd := keyStart + sep

	next := int64(keyEnd) + 1 + int64(length)
	if next > int64(len(data)) {
		return nil, 0, types.NewTagErrorAt(int64(keyStart), "invalid item length")
	}

	key := string(data[keyStart:keyEnd])
	if !types.ValidKey(key) {
		return nil, 0, types.NewTagErrorAt(int64(keyStart), "invalid item key %q", key)
	}

	kind := types.Kind(flags / 2)
	value := data[keyEnd+1 : next]
	if kind.RequiresUTF8() && !utf8.Valid(value) {
		return nil, 0, types.NewTagErrorAt(int64(keyEnd+1), "invalid item value encoding (non UTF-8)")
	}

	it, err := types.NewItemWith(key, kind, flags&1 == 1, splitValues(value))
	if err != nil {
		return nil, 0, err
	}
	return it, int(next), nil
}

// splitValues splits NUL separated values. Empty value data holds a single
// empty value.
func splitValues(value []byte) []string {
	return strings.Split(string(value), "\x00")
}

// Encode returns the on-disk form of it. It fails if the item is not
// currently well-formed.
func Encode(it *types.Item) ([]byte, error) {
	if err := it.Validate(); err != nil {
		return nil, err
	}

	value := it.StringValue()
	buf := bytes.NewBuffer(make([]byte, 0, headerSize+len(it.Key())+1+len(value)))
	sw := binary.NewSafeWriter(buf)

	if err := binary.WriteLE(sw, uint32(len(value))); err != nil {
		return nil, err
	}
	if err := binary.Write(sw, it.Flags()); err != nil {
		return nil, err
	}
	if err := sw.WriteString(it.Key()); err != nil {
		return nil, err
	}
	if err := binary.Write[uint8](sw, 0); err != nil {
		return nil, err
	}
	if err := sw.WriteString(value); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// Parse decodes count items from data, which must be consumed exactly.
func Parse(data []byte, count uint32) (*types.Fields, error) {
	fields := types.NewFields()
	offset := 0
	lastPossibleStart := len(data) - MinSize

	for i := uint32(0); i < count; i++ {
		if offset > lastPossibleStart {
			return nil, types.NewTagErrorAt(int64(offset), "end of tag reached but more items specified")
		}
		it, next, err := Decode(data, offset)
		if err != nil {
			return nil, err
		}
		if err := fields.Add(it); err != nil {
			return nil, types.NewTagErrorAt(int64(offset), "multiple items with same key (%q)", it.Key())
		}
		offset = next
	}

	if offset != len(data) {
		return nil, types.NewTagErrorAt(int64(offset), "data remaining after specified number of items parsed")
	}

	return fields, nil
}

// Marshal encodes every item and concatenates them ordered by encoded
// length, then by encoded bytes. The order is total, so equal collections
// always marshal to identical bytes.
func Marshal(fields *types.Fields) ([]byte, int, error) {
	encoded := make([][]byte, 0, fields.Len())
	for _, it := range fields.All() {
		raw, err := Encode(it)
		if err != nil {
			return nil, 0, err
		}
		encoded = append(encoded, raw)
	}

	slices.SortFunc(encoded, func(a, b []byte) int {
		if len(a) != len(b) {
			return len(a) - len(b)
		}
		return bytes.Compare(a, b)
	})

	return bytes.Join(encoded, nil), len(encoded), nil
}
