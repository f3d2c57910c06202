package types

import (
	"iter"
	"maps"
	"slices"
	"strings"
)

// Fields is the set of items in a tag, keyed case-insensitively while each
// item keeps the case it was stored with.
//
// The zero value is an empty collection ready to use. Iteration is ordered
// by lowercase key.
type Fields struct {
	items map[string]*Item
}

// NewFields returns an empty collection.
func NewFields() *Fields {
	return &Fields{items: make(map[string]*Item)}
}

func normalizeKey(key string) string {
	return strings.ToLower(key)
}

// Len returns the number of items.
func (f *Fields) Len() int {
	return len(f.items)
}

// Has reports whether an item with key exists.
func (f *Fields) Has(key string) bool {
	_, ok := f.items[normalizeKey(key)]
	return ok
}

// Get returns the item stored under key, or nil. The item is owned by the
// collection: mutating it mutates the collection.
func (f *Fields) Get(key string) *Item {
	return f.items[normalizeKey(key)]
}

// Values returns a copy of the values stored under key.
func (f *Fields) Values(key string) []string {
	it := f.Get(key)
	if it == nil {
		return nil
	}
	return it.Values()
}

// First returns the first value stored under key, or "".
func (f *Fields) First(key string) string {
	it := f.Get(key)
	if it == nil {
		return ""
	}
	return it.First()
}

// Set stores values under key as a read-write UTF-8 item, replacing any
// existing item with the same key. The key keeps the case given here.
//
// Example:
//
//	fields.Set("Artist", "Test Artist")
//	fields.Set("Genre", "Rock", "Alternative")
func (f *Fields) Set(key string, values ...string) error {
	it, err := NewItem(key, values...)
	if err != nil {
		return err
	}
	f.store(it)
	return nil
}

// Put stores item under key, re-keying the item to key.
func (f *Fields) Put(key string, item *Item) error {
	if item == nil {
		return NewTagError("nil item for key %q", key)
	}
	if err := item.SetKey(key); err != nil {
		return err
	}
	for k, it := range f.items {
		if it == item {
			delete(f.items, k)
		}
	}
	f.store(item)
	return nil
}

// Add stores item under its own key and fails if the key is already used.
func (f *Fields) Add(item *Item) error {
	if f.Has(item.Key()) {
		return NewTagError("multiple items with same key (%q)", item.Key())
	}
	f.store(item)
	return nil
}

func (f *Fields) store(item *Item) {
	if f.items == nil {
		f.items = make(map[string]*Item)
	}
	f.items[normalizeKey(item.Key())] = item
}

// Delete removes the item stored under key and reports whether it existed.
func (f *Fields) Delete(key string) bool {
	k := normalizeKey(key)
	if _, ok := f.items[k]; !ok {
		return false
	}
	delete(f.items, k)
	return true
}

// Clear removes every item.
func (f *Fields) Clear() {
	clear(f.items)
}

// Keys returns the stored keys, with original case, ordered by lowercase key.
func (f *Fields) Keys() []string {
	keys := make([]string, 0, len(f.items))
	for _, it := range f.All() {
		keys = append(keys, it.Key())
	}
	return keys
}

// All returns an iterator over the items ordered by lowercase key.
//
// Example:
//
//	for key, item := range fields.All() {
//		fmt.Printf("%s: %v\n", key, item.Values())
//	}
func (f *Fields) All() iter.Seq2[string, *Item] {
	return func(yield func(string, *Item) bool) {
		for _, k := range slices.Sorted(maps.Keys(f.items)) {
			it := f.items[k]
			if !yield(it.Key(), it) {
				return
			}
		}
	}
}

// Items returns the items ordered by lowercase key.
func (f *Fields) Items() []*Item {
	items := make([]*Item, 0, len(f.items))
	for _, it := range f.All() {
		items = append(items, it)
	}
	return items
}

// Map returns a plain key to values map using the stored key case.
func (f *Fields) Map() map[string][]string {
	m := make(map[string][]string, len(f.items))
	for _, it := range f.All() {
		m[it.Key()] = it.Values()
	}
	return m
}

// Normalize re-keys every item by its current key and re-validates it.
// Items whose key was changed in place must still be unique.
func (f *Fields) Normalize() error {
	normalized := make(map[string]*Item, len(f.items))
	for _, it := range f.All() {
		if err := it.Validate(); err != nil {
			return err
		}
		k := normalizeKey(it.Key())
		if _, dup := normalized[k]; dup {
			return NewTagError("multiple items with same key (%q)", it.Key())
		}
		normalized[k] = it
	}
	f.items = normalized
	return nil
}

// Clone returns a deep copy.
func (f *Fields) Clone() *Fields {
	c := NewFields()
	for k, it := range f.items {
		c.items[k] = it.Clone()
	}
	return c
}

// Equal reports whether both collections hold equal items under the same
// case-insensitive keys.
func (f *Fields) Equal(other *Fields) bool {
	if f == nil || other == nil {
		return f == other
	}
	if f.Len() != other.Len() {
		return false
	}
	for k, it := range f.items {
		if !it.Equal(other.items[k]) {
			return false
		}
	}
	return true
}
