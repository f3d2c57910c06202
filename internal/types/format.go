package types

import (
	"path/filepath"
	"strings"
)

// Format represents the host file format a tag is appended to.
//
// Only the file name is consulted: the tag codec never parses audio data.
//
//go:generate stringer -type=Format -linecomment
type Format int

const (
	// FormatUnknown represents an unknown host format.
	FormatUnknown Format = iota // Unknown
	// FormatMP3 represents MPEG audio files.
	FormatMP3 // MP3
	// FormatAPE represents Monkey's Audio files.
	FormatAPE // APE
	// FormatMPC represents Musepack files.
	FormatMPC // MPC
	// FormatWavPack represents WavPack files.
	FormatWavPack // WavPack
	// FormatOptimFROG represents OptimFROG files.
	FormatOptimFROG // OptimFROG
	// FormatTAK represents TAK files.
	FormatTAK // TAK
)

var allFormats = []Format{FormatMP3, FormatAPE, FormatMPC, FormatWavPack, FormatOptimFROG, FormatTAK}

// Extensions returns common file extensions for this format.
func (f Format) Extensions() []string {
	switch f {
	case FormatMP3:
		return []string{".mp3"}
	case FormatAPE:
		return []string{".ape"}
	case FormatMPC:
		return []string{".mpc", ".mp+", ".mpp"}
	case FormatWavPack:
		return []string{".wv"}
	case FormatOptimFROG:
		return []string{".ofr", ".ofs"}
	case FormatTAK:
		return []string{".tak"}
	case FormatUnknown:
		return nil
	default:
		return nil
	}
}

// CarriesShadowTag reports whether files of this format conventionally end
// with an ID3v1.1 tag after the APE tag.
func (f Format) CarriesShadowTag() bool {
	return f == FormatMP3
}

// FormatFromPath determines the host format from the file extension
// (case-insensitive).
func FormatFromPath(path string) Format {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		return FormatUnknown
	}
	for _, f := range allFormats {
		for _, e := range f.Extensions() {
			if e == ext {
				return f
			}
		}
	}
	return FormatUnknown
}
