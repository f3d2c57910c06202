package types

import (
	"slices"
	"strings"
	"unicode/utf8"
)

const (
	// MinKeyLength is the shortest valid item key, in bytes.
	MinKeyLength = 2
	// MaxKeyLength is the longest valid item key, in bytes.
	MaxKeyLength = 255
)

// reservedKeys may not be used as item keys, compared case-insensitively.
var reservedKeys = []string{"id3", "tag", "oggs", "mp+"}

// ValidKey reports whether key can be stored in an APE tag: 2-255 bytes in
// the range 0x20-0x7F and not one of the reserved words.
func ValidKey(key string) bool {
	if len(key) < MinKeyLength || len(key) > MaxKeyLength {
		return false
	}
	for i := 0; i < len(key); i++ {
		if key[i] < 0x20 || key[i] >= 0x80 {
			return false
		}
	}
	for _, reserved := range reservedKeys {
		if strings.EqualFold(key, reserved) {
			return false
		}
	}
	return true
}

// Item is a single tag field: a key with an ordered list of values.
//
// Every mutator re-validates the whole item and leaves it unchanged when
// the result would be invalid.
type Item struct {
	key      string
	values   []string
	kind     Kind
	readOnly bool
}

// NewItem creates a read-write UTF-8 item.
//
// Example:
//
//	item, err := types.NewItem("Artist", "Artist One", "Artist Two")
func NewItem(key string, values ...string) (*Item, error) {
	return NewItemWith(key, KindUTF8, false, values)
}

// NewItemWith creates an item with an explicit kind and read-only flag.
func NewItemWith(key string, kind Kind, readOnly bool, values []string) (*Item, error) {
	it := &Item{
		key:      key,
		kind:     kind,
		readOnly: readOnly,
		values:   cloneValues(values),
	}
	if err := it.Validate(); err != nil {
		return nil, err
	}
	return it, nil
}

// Key returns the key with its original case.
func (it *Item) Key() string {
	return it.key
}

// Kind returns the value encoding category.
func (it *Item) Kind() Kind {
	return it.kind
}

// ReadOnly reports the advisory read-only flag.
func (it *Item) ReadOnly() bool {
	return it.readOnly
}

// Values returns a copy of the values.
func (it *Item) Values() []string {
	return slices.Clone(it.values)
}

// Len returns the number of values.
func (it *Item) Len() int {
	return len(it.values)
}

// First returns the first value, or "" when there are none.
func (it *Item) First() string {
	if len(it.values) == 0 {
		return ""
	}
	return it.values[0]
}

// Join joins the values with sep.
func (it *Item) Join(sep string) string {
	return strings.Join(it.values, sep)
}

// StringValue returns the on-disk form of the values (NUL separated).
func (it *Item) StringValue() string {
	return it.Join("\x00")
}

// Flags returns the item flags as stored on disk.
func (it *Item) Flags() uint32 {
	flags := uint32(it.kind) * 2
	if it.readOnly {
		flags++
	}
	return flags
}

// SetKey changes the key.
func (it *Item) SetKey(key string) error {
	return it.mutate(func(c *Item) { c.key = key })
}

// SetKind changes the value encoding category.
func (it *Item) SetKind(kind Kind) error {
	return it.mutate(func(c *Item) { c.kind = kind })
}

// SetReadOnly changes the advisory read-only flag.
func (it *Item) SetReadOnly(readOnly bool) error {
	return it.mutate(func(c *Item) { c.readOnly = readOnly })
}

// SetValues replaces all values. No values stores one empty value.
func (it *Item) SetValues(values ...string) error {
	return it.mutate(func(c *Item) { c.values = cloneValues(values) })
}

// cloneValues copies values, turning an empty list into [""], which is how
// an item without values reads back from disk.
func cloneValues(values []string) []string {
	if len(values) == 0 {
		return []string{""}
	}
	return slices.Clone(values)
}

// Append adds values after the existing ones.
func (it *Item) Append(values ...string) error {
	return it.mutate(func(c *Item) { c.values = append(slices.Clone(c.values), values...) })
}

// mutate applies fn to a copy, validates it, and only then stores it.
func (it *Item) mutate(fn func(*Item)) error {
	c := *it
	fn(&c)
	if err := c.Validate(); err != nil {
		return err
	}
	*it = c
	return nil
}

// Validate checks the key, kind and value encoding together.
func (it *Item) Validate() error {
	if !ValidKey(it.key) {
		return NewTagError("invalid item key %q", it.key)
	}
	if !it.kind.Valid() {
		return NewTagError("invalid item type %d", int(it.kind))
	}
	if it.kind.RequiresUTF8() && !utf8.ValidString(it.StringValue()) {
		return NewTagError("invalid item value encoding (non UTF-8) for key %q", it.key)
	}
	return nil
}

// Clone returns a deep copy.
func (it *Item) Clone() *Item {
	c := *it
	c.values = slices.Clone(it.values)
	return &c
}

// Equal reports whether both items have the same key (case-insensitively),
// kind, read-only flag and values in the same order.
func (it *Item) Equal(other *Item) bool {
	if it == nil || other == nil {
		return it == other
	}
	return strings.EqualFold(it.key, other.key) &&
		it.kind == other.kind &&
		it.readOnly == other.readOnly &&
		slices.Equal(it.values, other.values)
}

// String returns "Key: value1, value2".
func (it *Item) String() string {
	return it.key + ": " + it.Join(", ")
}
