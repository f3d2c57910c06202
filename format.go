package apetag

import (
	"github.com/simonhull/apetag/internal/types"
)

// Format is an alias to types.Format.
// Re-exporting from internal/types to maintain public API.
type Format = types.Format

// Re-export all format constants.
const (
	FormatUnknown   = types.FormatUnknown
	FormatMP3       = types.FormatMP3
	FormatAPE       = types.FormatAPE
	FormatMPC       = types.FormatMPC
	FormatWavPack   = types.FormatWavPack
	FormatOptimFROG = types.FormatOptimFROG
	FormatTAK       = types.FormatTAK
)

// FormatFromPath is a wrapper around types.FormatFromPath.
func FormatFromPath(path string) Format {
	return types.FormatFromPath(path)
}
