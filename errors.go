package apetag

import (
	"github.com/simonhull/apetag/internal/types"
)

// TagError is an alias to types.TagError.
// Re-exporting from internal/types to maintain public API.
//
// Every structural problem in an existing tag, every invalid item and
// every update that would exceed the format limits is reported as a
// *TagError.
type TagError = types.TagError

// FileNotFoundError is an alias to types.FileNotFoundError.
// Re-exporting from internal/types to maintain public API.
type FileNotFoundError = types.FileNotFoundError

// ErrTxClosed is returned when a transaction is used after Commit or Abort.
var ErrTxClosed = types.ErrTxClosed
