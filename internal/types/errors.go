package types

import (
	"errors"
	"fmt"
)

// ErrTxClosed is returned when a transaction is used after Commit or Abort.
var ErrTxClosed = errors.New("transaction already committed or aborted")

// TagError is returned for every structural, item-level and post-mutation
// failure. Offset is -1 when the failure is not tied to a byte position.
type TagError struct {
	Path   string
	Reason string
	Offset int64
}

// NewTagError returns a TagError that is not tied to a byte position.
func NewTagError(format string, args ...any) *TagError {
	return &TagError{Reason: fmt.Sprintf(format, args...), Offset: -1}
}

// NewTagErrorAt returns a TagError for the item or block at offset.
func NewTagErrorAt(offset int64, format string, args ...any) *TagError {
	return &TagError{Reason: fmt.Sprintf(format, args...), Offset: offset}
}

func (e *TagError) Error() string {
	msg := e.Reason
	if e.Offset >= 0 {
		msg = fmt.Sprintf("%s at offset %d", e.Reason, e.Offset)
	}
	if e.Path != "" {
		return fmt.Sprintf("%s: invalid APE tag: %s", e.Path, msg)
	}
	return "invalid APE tag: " + msg
}

// FileNotFoundError is returned when the host file does not exist. It is
// never used for corrupt data.
type FileNotFoundError struct {
	Err  error
	Path string
}

func (e *FileNotFoundError) Error() string {
	return fmt.Sprintf("%s: file not found", e.Path)
}

func (e *FileNotFoundError) Unwrap() error {
	return e.Err
}

// WithPath fills in the path of a TagError found in err's chain, when it
// does not already carry one, and returns err.
func WithPath(err error, path string) error {
	var tagErr *TagError
	if path != "" && errors.As(err, &tagErr) && tagErr.Path == "" {
		tagErr.Path = path
	}
	return err
}
