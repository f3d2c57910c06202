// Package id3 derives the 128-byte ID3v1.1 tag kept after an APE tag in MP3
// files, and reads one back for display.
//
// The ID3v1.1 layout is fixed:
//
//	"TAG" | title 30 | artist 30 | album 30 | year 4 | comment 28 | 0 | track | genre
//
// Text fields are NUL padded and silently truncated.
package id3

import (
	"bytes"
	"strings"

	"github.com/simonhull/apetag/internal/binary"
	"github.com/simonhull/apetag/internal/parsing"
	"github.com/simonhull/apetag/internal/types"
)

// Size is the length of an ID3v1.1 tag.
const Size = 128

// Marker starts every ID3v1 tag.
const Marker = "TAG"

// Field widths, in layout order.
const (
	titleWidth   = 30
	artistWidth  = 30
	albumWidth   = 30
	yearWidth    = 4
	commentWidth = 28
)

// record holds the values written into the fixed layout.
type record struct {
	title, artist, album, year, comment string
	track, genre                        byte
}

// Build derives an ID3v1.1 tag from fields. Items are visited in the
// collection's order, so a later item overrides an earlier one:
//
//   - keys starting with "track" set the track byte from the leading integer
//     of the value, 0 when outside 0..255;
//   - keys starting with "genre" set the genre byte from the first value,
//     255 when it is not a known genre;
//   - "date" sets the year to its first four-digit run;
//   - "title", "artist", "album", "year" and "comment" set the matching
//     field to their values joined with ", ".
func Build(fields *types.Fields) [Size]byte {
	rec := record{genre: UnknownGenre}

	for key, it := range fields.All() {
		key = strings.ToLower(key)
		switch {
		case strings.HasPrefix(key, "track"):
			rec.track = parsing.ByteInRange(parsing.LeadingInt(it.StringValue()))
		case strings.HasPrefix(key, "genre"):
			rec.genre, _ = GenreIndex(it.First())
		case key == "date":
			if year := parsing.FirstYear(it.StringValue()); year != "" {
				rec.year = year
			}
		case key == "title":
			rec.title = it.Join(", ")
		case key == "artist":
			rec.artist = it.Join(", ")
		case key == "album":
			rec.album = it.Join(", ")
		case key == "year":
			rec.year = it.Join(", ")
		case key == "comment":
			rec.comment = it.Join(", ")
		}
	}

	return rec.encode()
}

func (r record) encode() [Size]byte {
	var out [Size]byte
	buf := bytes.NewBuffer(make([]byte, 0, Size))
	sw := binary.NewSafeWriter(buf)

	// Writes into a bytes.Buffer cannot fail.
	_ = sw.WriteString(Marker)
	_ = sw.WriteFixed(r.title, titleWidth)
	_ = sw.WriteFixed(r.artist, artistWidth)
	_ = sw.WriteFixed(r.album, albumWidth)
	_ = sw.WriteFixed(r.year, yearWidth)
	_ = sw.WriteFixed(r.comment, commentWidth)
	_ = binary.Write[uint8](sw, 0)
	_ = binary.Write(sw, r.track)
	_ = binary.Write(sw, r.genre)

	copy(out[:], buf.Bytes())
	return out
}
