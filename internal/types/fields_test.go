package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFields_CaseInsensitiveCasePreserving(t *testing.T) {
	var f Fields
	require.NoError(t, f.Set("Title", "Song"))

	assert.True(t, f.Has("TITLE"))
	assert.Equal(t, "Song", f.First("title"))
	assert.Equal(t, []string{"Title"}, f.Keys())

	require.NoError(t, f.Set("TITLE", "Other"))
	assert.Equal(t, 1, f.Len())
	assert.Equal(t, []string{"TITLE"}, f.Keys(), "last supplied case wins")
	assert.Equal(t, []string{"Other"}, f.Values("Title"))

	assert.True(t, f.Delete("tItLe"))
	assert.False(t, f.Delete("title"))
	assert.Equal(t, 0, f.Len())
}

func TestFields_SetRejectsInvalid(t *testing.T) {
	f := NewFields()
	require.Error(t, f.Set("Tag", "x"))
	require.Error(t, f.Set("Title", "\xff"))
	assert.Equal(t, 0, f.Len())
}

func TestFields_PutRekeys(t *testing.T) {
	f := NewFields()
	it, err := NewItemWith("cover art", KindBinary, true, []string{"\x00\x01"})
	require.NoError(t, err)

	require.NoError(t, f.Put("Cover Art (Front)", it))
	assert.Equal(t, "Cover Art (Front)", f.Get("cover art (front)").Key())

	// Moving an owned item to another key must not leave the old key behind.
	require.NoError(t, f.Put("Cover Art (Back)", f.Get("cover art (front)")))
	assert.Equal(t, []string{"Cover Art (Back)"}, f.Keys())

	require.Error(t, f.Put("Title", nil))
	require.Error(t, f.Put("x", it))
}

func TestFields_AddDuplicate(t *testing.T) {
	f := NewFields()
	a, _ := NewItem("Artist", "a")
	b, _ := NewItem("ARTIST", "b")

	require.NoError(t, f.Add(a))
	err := f.Add(b)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "multiple items with same key")
}

func TestFields_AllOrdered(t *testing.T) {
	f := NewFields()
	require.NoError(t, f.Set("track", "1"))
	require.NoError(t, f.Set("Album", "A"))
	require.NoError(t, f.Set("artist", "B"))

	var keys []string
	for key := range f.All() {
		keys = append(keys, key)
	}
	assert.Equal(t, []string{"Album", "artist", "track"}, keys)
	assert.Len(t, f.Items(), 3)
	assert.Equal(t, map[string][]string{"Album": {"A"}, "artist": {"B"}, "track": {"1"}}, f.Map())
}

func TestFields_Normalize(t *testing.T) {
	f := NewFields()
	require.NoError(t, f.Set("Title", "a"))
	require.NoError(t, f.Set("Artist", "b"))

	// Re-keying an owned item in place is picked up by Normalize.
	require.NoError(t, f.Get("title").SetKey("Subtitle"))
	require.NoError(t, f.Normalize())
	assert.True(t, f.Has("subtitle"))
	assert.False(t, f.Has("title"))

	require.NoError(t, f.Get("subtitle").SetKey("ARTIST"))
	err := f.Normalize()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "multiple items with same key")
}

func TestFields_CloneEqual(t *testing.T) {
	f := NewFields()
	require.NoError(t, f.Set("Title", "a"))
	c := f.Clone()
	assert.True(t, f.Equal(c))

	require.NoError(t, c.Get("title").Append("b"))
	assert.False(t, f.Equal(c))
	assert.Equal(t, []string{"a"}, f.Values("Title"))

	f.Clear()
	assert.Equal(t, 0, f.Len())
	assert.False(t, f.Equal(c))
}

func TestFields_EqualNil(t *testing.T) {
	var none *Fields
	assert.False(t, NewFields().Equal(nil))
	assert.False(t, none.Equal(NewFields()))
	assert.True(t, none.Equal(nil))
}
