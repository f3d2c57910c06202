package id3

import (
	"strconv"
	"strings"
)

// Field names returned by Parse.
const (
	FieldTitle   = "title"
	FieldArtist  = "artist"
	FieldAlbum   = "album"
	FieldYear    = "year"
	FieldComment = "comment"
	FieldTrack   = "track"
	FieldGenre   = "genre"
)

var layout = []struct {
	name       string
	start, end int
}{
	{FieldTitle, 3, 33},
	{FieldArtist, 33, 63},
	{FieldAlbum, 63, 93},
	{FieldYear, 93, 97},
	{FieldComment, 97, 125},
}

// Parse reads an ID3v1 tag. Text fields have trailing NULs removed. The
// track is "0" for ID3v1.0 tags, which use byte 125 for the comment, and the
// genre is "" when its byte is not in the genre table.
//
// Parse returns nil when raw is not an ID3v1 tag.
func Parse(raw []byte) map[string]string {
	if len(raw) != Size || string(raw[:3]) != Marker {
		return nil
	}

	fields := make(map[string]string, len(layout)+2)
	for _, f := range layout {
		fields[f.name] = strings.TrimRight(string(raw[f.start:f.end]), "\x00")
	}

	fields[FieldTrack] = "0"
	if raw[125] == 0 {
		fields[FieldTrack] = strconv.Itoa(int(raw[126]))
	}
	fields[FieldGenre] = GenreName(raw[127])

	return fields
}
