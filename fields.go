package apetag

import (
	"github.com/simonhull/apetag/internal/tag"
	"github.com/simonhull/apetag/internal/types"
)

// Item is an alias to types.Item: one key with its ordered values, value
// kind and read-only flag.
type Item = types.Item

// Fields is an alias to types.Fields: the items of a tag, keyed
// case-insensitively.
type Fields = types.Fields

// Kind is an alias to types.Kind.
type Kind = types.Kind

// Re-export all kind constants.
const (
	KindUTF8     = types.KindUTF8
	KindBinary   = types.KindBinary
	KindExternal = types.KindExternal
	KindReserved = types.KindReserved
)

// Format limits.
const (
	MaxItemCount = tag.MaxItemCount
	MaxTagSize   = tag.MaxSize
	MinKeyLength = types.MinKeyLength
	MaxKeyLength = types.MaxKeyLength
)

// NewItem creates a read-write UTF-8 item.
func NewItem(key string, values ...string) (*Item, error) {
	return types.NewItem(key, values...)
}

// NewItemWith creates an item with an explicit kind and read-only flag.
//
// Example:
//
//	cover, err := apetag.NewItemWith("Cover Art (Front)", apetag.KindBinary, true, []string{data})
func NewItemWith(key string, kind Kind, readOnly bool, values []string) (*Item, error) {
	return types.NewItemWith(key, kind, readOnly, values)
}

// NewFields returns an empty collection.
func NewFields() *Fields {
	return types.NewFields()
}

// ValidKey reports whether key can be used as an item key.
func ValidKey(key string) bool {
	return types.ValidKey(key)
}

// ParseKind returns the kind named "utf8", "binary", "external" or
// "reserved".
func ParseKind(name string) (Kind, error) {
	return types.ParseKind(name)
}
