// Package tag locates and validates the APE tag region at the end of a host
// stream and builds the header and footer blocks that delimit it.
package tag

import (
	"bytes"
	"io"

	"github.com/simonhull/apetag/internal/binary"
	"github.com/simonhull/apetag/internal/item"
	"github.com/simonhull/apetag/internal/types"
)

const (
	// BlockSize is the size of the header and of the footer.
	BlockSize = 32
	// MinSize is the size of a tag with no items (header plus footer).
	MinSize = 2 * BlockSize
	// MaxSize is the largest accepted tag, header and footer included.
	MaxSize = 8192
	// MaxItemCount is the largest accepted number of items.
	MaxItemCount = 64
	// ShadowSize is the size of the trailing ID3v1.1 tag.
	ShadowSize = 128
	// Version is the APE tag version stored in the preamble.
	Version = 2000
)

var (
	// Preamble starts both header and footer: "APETAGEX" and the version,
	// little-endian.
	Preamble = []byte("APETAGEX\xd0\x07\x00\x00")

	// HeaderFlags and FooterFlags are the fixed flag fields of each block.
	HeaderFlags = []byte{0x00, 0x00, 0x00, 0xA0}
	FooterFlags = []byte{0x00, 0x00, 0x00, 0x80}

	shadowMarker = []byte("TAG")
)

// Region describes the tag found at the end of a stream, or where a new tag
// would be written when none exists.
type Region struct {
	Header []byte
	Data   []byte
	Footer []byte
	Shadow []byte

	// Start is the offset of the header, or of the position right before
	// the shadow tag when no APE tag exists.
	Start int64

	// StreamSize is the stream length at the time the region was located.
	StreamSize int64

	// Size includes header and footer.
	Size      uint32
	ItemCount uint32
	Exists    bool
}

// HasShadow reports whether a shadow tag was found.
func (r *Region) HasShadow() bool {
	return len(r.Shadow) == ShadowSize
}

// Raw returns header, data, footer and shadow concatenated.
func (r *Region) Raw() []byte {
	return bytes.Join([][]byte{r.Header, r.Data, r.Footer, r.Shadow}, nil)
}

// Locate finds and validates the APE tag at the end of s. A stream without a
// tag is not an error: the returned region has Exists == false. Structural
// problems in a tag that announces itself through its footer are returned as
// *types.TagError.
func Locate(s io.ReadSeeker, path string, checkShadow bool) (*Region, error) {
	sr, err := binary.NewSafeReader(s, path)
	if err != nil {
		return nil, err
	}
	size := sr.Size()
	region := &Region{StreamSize: size}

	if checkShadow && size >= ShadowSize {
		shadow := make([]byte, ShadowSize)
		if err := sr.ReadTail(shadow, ShadowSize, "ID3 tag"); err != nil {
			return nil, err
		}
		if bytes.HasPrefix(shadow, shadowMarker) {
			region.Shadow = shadow
		}
	}
	shadowLen := int64(len(region.Shadow))
	region.Start = size - shadowLen

	if size < shadowLen+MinSize {
		return region, nil
	}

	footer := make([]byte, BlockSize)
	if err := sr.ReadTail(footer, shadowLen+BlockSize, "APE tag footer"); err != nil {
		return nil, err
	}
	if !bytes.Equal(footer[:12], Preamble) || !bytes.Equal(footer[20:24], FooterFlags) {
		return region, nil
	}

	footerOffset := size - shadowLen - BlockSize
	tagSize, itemCount, err := decodeCounts(footer)
	if err != nil {
		return nil, err
	}
	tagSize += BlockSize

	switch {
	case tagSize < MinSize:
		return nil, types.NewTagErrorAt(footerOffset, "tag size (%d) smaller than minimum size", tagSize)
	case tagSize+shadowLen > size:
		return nil, types.NewTagErrorAt(footerOffset, "tag size (%d) larger than possible", tagSize)
	case tagSize > MaxSize:
		return nil, types.NewTagErrorAt(footerOffset, "tag size (%d) is larger than %d", tagSize, MaxSize)
	case itemCount > MaxItemCount:
		return nil, types.NewTagErrorAt(footerOffset, "item count (%d) is larger than %d", itemCount, MaxItemCount)
	case itemCount > (tagSize-MinSize)/item.MinSize:
		return nil, types.NewTagErrorAt(footerOffset, "item count (%d) is larger than possible", itemCount)
	}

	start := size - tagSize - shadowLen
	block := make([]byte, tagSize-BlockSize)
	if err := sr.ReadAt(block, start, "APE tag header and items"); err != nil {
		return nil, err
	}
	header, data := block[:BlockSize], block[BlockSize:]

	if !bytes.Equal(header[:12], Preamble) || !bytes.Equal(header[20:24], HeaderFlags) {
		return nil, types.NewTagErrorAt(start, "missing header")
	}
	headerSize, headerCount, err := decodeCounts(header)
	if err != nil {
		return nil, err
	}
	if headerSize+BlockSize != tagSize {
		return nil, types.NewTagErrorAt(start, "header and footer size does not match")
	}
	if headerCount != itemCount {
		return nil, types.NewTagErrorAt(start, "header and footer item count does not match")
	}

	region.Start = start
	region.Size = uint32(tagSize)
	region.ItemCount = uint32(itemCount)
	region.Header = header
	region.Data = data
	region.Footer = footer
	region.Exists = true
	return region, nil
}

// decodeCounts reads the size and item count fields of a header or footer.
func decodeCounts(block []byte) (int64, int64, error) {
	size, err := binary.ReadLE[uint32](block, 12, "tag size")
	if err != nil {
		return 0, 0, err
	}
	count, err := binary.ReadLE[uint32](block, 16, "item count")
	if err != nil {
		return 0, 0, err
	}
	return int64(size), int64(count), nil
}
