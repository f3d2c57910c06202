package apetag

import (
	"fmt"
	"io"

	"github.com/cespare/xxhash/v2"

	"github.com/simonhull/apetag/internal/binary"
	"github.com/simonhull/apetag/internal/tag"
)

// writeRegion writes header, items, footer and shadow tag at region.Start in
// one call, then truncates the stream right after them. It returns the new
// stream length.
func writeRegion(s Stream, path string, region *tag.Region, verify bool) (int64, error) {
	raw := region.Raw()

	if _, err := s.Seek(region.Start, io.SeekStart); err != nil {
		return 0, fmt.Errorf("seek to tag start: %w", err)
	}
	n, err := s.Write(raw)
	if err != nil {
		return 0, fmt.Errorf("write tag: %w", err)
	}
	if n != len(raw) {
		return 0, fmt.Errorf("write tag: %w", io.ErrShortWrite)
	}

	end := region.Start + int64(len(raw))
	if err := s.Truncate(end); err != nil {
		return 0, fmt.Errorf("truncate: %w", err)
	}

	if verify {
		if err := verifyRegion(s, path, region.Start, raw); err != nil {
			return 0, fmt.Errorf("verify: %w", err)
		}
	}
	return end, nil
}

// verifyRegion re-reads the bytes at start and checks that they end the
// stream and hash to the same xxhash64 digest as want.
func verifyRegion(s io.ReadSeeker, path string, start int64, want []byte) error {
	sr, err := binary.NewSafeReader(s, path)
	if err != nil {
		return err
	}
	if end := start + int64(len(want)); sr.Size() != end {
		return fmt.Errorf("stream length %d, want %d", sr.Size(), end)
	}

	got := make([]byte, len(want))
	if err := sr.ReadAt(got, start, "written tag"); err != nil {
		return err
	}

	wantSum, gotSum := xxhash.Sum64(want), xxhash.Sum64(got)
	if wantSum != gotSum {
		return fmt.Errorf("digest mismatch: wrote %016x, read %016x", wantSum, gotSum)
	}
	return nil
}

// Digest returns the xxhash64 digest of the raw tag bytes.
func Digest(raw []byte) uint64 {
	return xxhash.Sum64(raw)
}
