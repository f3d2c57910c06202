package tag

import (
	"bytes"

	"github.com/simonhull/apetag/internal/binary"
	"github.com/simonhull/apetag/internal/types"
)

// Build returns a region holding header, data and footer for the given
// encoded items, checking the result against MaxItemCount and MaxSize.
// Start, StreamSize and Shadow are left for the caller.
func Build(data []byte, itemCount int) (*Region, error) {
	size := len(data) + MinSize
	if itemCount > MaxItemCount {
		return nil, types.NewTagError("updated tag has too many items (%d)", itemCount)
	}
	if size > MaxSize {
		return nil, types.NewTagError("updated tag too large (%d)", size)
	}

	header, err := encodeBlock(size, itemCount, HeaderFlags)
	if err != nil {
		return nil, err
	}
	footer, err := encodeBlock(size, itemCount, FooterFlags)
	if err != nil {
		return nil, err
	}

	return &Region{
		Header:    header,
		Data:      data,
		Footer:    footer,
		Size:      uint32(size),
		ItemCount: uint32(itemCount),
		Exists:    true,
	}, nil
}

// encodeBlock builds a 32-byte header or footer. The stored size excludes
// the header.
func encodeBlock(size, itemCount int, flags []byte) ([]byte, error) {
	buf := bytes.NewBuffer(make([]byte, 0, BlockSize))
	sw := binary.NewSafeWriter(buf)

	if err := sw.WriteBytes(Preamble); err != nil {
		return nil, err
	}
	if err := binary.WriteLE(sw, uint32(size-BlockSize)); err != nil {
		return nil, err
	}
	if err := binary.WriteLE(sw, uint32(itemCount)); err != nil {
		return nil, err
	}
	if err := sw.WriteBytes(flags); err != nil {
		return nil, err
	}
	if err := sw.WriteZeros(8); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
