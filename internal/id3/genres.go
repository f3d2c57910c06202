package id3

import (
	"slices"
	"strings"
)

// UnknownGenre is the genre byte used when no genre matches.
const UnknownGenre = 255

// genres is the ID3v1 genre table, including the Winamp extensions. The
// index of a name is its genre byte.
var genres = [...]string{
	"Blues", "Classic Rock", "Country", "Dance", "Disco", "Funk", "Grunge",
	"Hip-Hop", "Jazz", "Metal", "New Age", "Oldies", "Other", "Pop", "R & B",
	"Rap", "Reggae", "Rock", "Techno", "Industrial", "Alternative", "Ska",
	"Death Metal", "Prank", "Soundtrack", "Euro-Techno", "Ambient",
	"Trip-Hop", "Vocal", "Jazz + Funk", "Fusion", "Trance", "Classical",
	"Instrumental", "Acid", "House", "Game", "Sound Clip", "Gospel", "Noise",
	"Alternative Rock", "Bass", "Soul", "Punk", "Space", "Meditative",
	"Instrumental Pop", "Instrumental Rock", "Ethnic", "Gothic", "Darkwave",
	"Techno-Industrial", "Electronic", "Pop-Fol", "Eurodance", "Dream",
	"Southern Rock", "Comedy", "Cult", "Gangsta", "Top 40", "Christian Rap",
	"Pop/Funk", "Jungle", "Native US", "Cabaret", "New Wave", "Psychadelic",
	"Rave", "Showtunes", "Trailer", "Lo-Fi", "Tribal", "Acid Punk",
	"Acid Jazz", "Polka", "Retro", "Musical", "Rock & Roll", "Hard Rock",
	"Folk", "Folk-Rock", "National Folk", "Swing", "Fast Fusion", "Bebop",
	"Latin", "Revival", "Celtic", "Bluegrass", "Avantgarde", "Gothic Rock",
	"Progressive Rock", "Psychedelic Rock", "Symphonic Rock", "Slow Rock",
	"Big Band", "Chorus", "Easy Listening", "Acoustic", "Humour", "Speech",
	"Chanson", "Opera", "Chamber Music", "Sonata", "Symphony", "Booty Bass",
	"Primus", "Porn Groove", "Satire", "Slow Jam", "Club", "Tango", "Samba",
	"Folklore", "Ballad", "Power Ballad", "Rhytmic Soul", "Freestyle",
	"Duet", "Punk Rock", "Drum Solo", "Acapella", "Euro-House", "Dance Hall",
	"Goa", "Drum & Bass", "Club-House", "Hardcore", "Terror", "Indie",
	"BritPop", "Negerpunk", "Polsk Punk", "Beat", "Christian Gangsta Rap",
	"Heavy Metal", "Black Metal", "Crossover", "Contemporary Christian",
	"Christian Rock", "Merengue", "Salsa", "Trash Meta", "Anime", "Jpop",
	"Synthpop",
}

var genreIndex = func() map[string]byte {
	m := make(map[string]byte, len(genres))
	for i, name := range genres {
		m[strings.ToLower(name)] = byte(i)
	}
	return m
}()

// Genres returns the genre table in index order.
func Genres() []string {
	return slices.Clone(genres[:])
}

// GenreIndex returns the genre byte for name, matched case-insensitively,
// and whether the name is in the table. Unknown names map to UnknownGenre.
func GenreIndex(name string) (byte, bool) {
	i, ok := genreIndex[strings.ToLower(name)]
	if !ok {
		return UnknownGenre, false
	}
	return i, true
}

// GenreName returns the name for a genre byte, or "" when the byte is not in
// the table.
func GenreName(index byte) string {
	if int(index) >= len(genres) {
		return ""
	}
	return genres[index]
}
