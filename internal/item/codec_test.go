package item

import (
	"bytes"
	"encoding/binary"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simonhull/apetag/internal/types"
)

// rawItem builds an encoded item by hand, independent of Encode.
func rawItem(key string, flags uint32, value string) []byte {
	buf := &bytes.Buffer{}
	binary.Write(buf, binary.LittleEndian, uint32(len(value)))
	binary.Write(buf, binary.BigEndian, flags)
	buf.WriteString(key)
	buf.WriteByte(0)
	buf.WriteString(value)
	return buf.Bytes()
}

func TestEncode_Layout(t *testing.T) {
	it, err := types.NewItemWith("Track", types.KindExternal, true, []string{"1", "2"})
	require.NoError(t, err)

	raw, err := Encode(it)
	require.NoError(t, err)

	want := []byte{
		0x03, 0x00, 0x00, 0x00, // length 3, little-endian
		0x00, 0x00, 0x00, 0x05, // flags 5, big-endian
		'T', 'r', 'a', 'c', 'k', 0x00,
		'1', 0x00, '2',
	}
	assert.Equal(t, want, raw)
}

func TestDecode_RoundTrip(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		values   []string
		kind     types.Kind
		readOnly bool
	}{
		{name: "single utf8", key: "Title", values: []string{"Song"}},
		{name: "multiple values", key: "Artist", values: []string{"A", "B", "C"}},
		{name: "empty value", key: "Empty", values: []string{""}},
		{name: "empty trailing value", key: "Comment", values: []string{"x", ""}},
		{name: "binary read-only", key: "Cover Art (Front)", values: []string{"\xff\xd8\x00\xe0"}, kind: types.KindBinary, readOnly: true},
		{name: "external", key: "Lyrics URL", values: []string{"http://example.com/l.txt"}, kind: types.KindExternal},
		{name: "reserved", key: "Dummy", values: []string{"\x01"}, kind: types.KindReserved},
		{name: "max key", key: strings.Repeat("K", 255), values: []string{"v"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			it, err := types.NewItemWith(tt.key, tt.kind, tt.readOnly, tt.values)
			require.NoError(t, err)

			raw, err := Encode(it)
			require.NoError(t, err)

			got, next, err := Decode(raw, 0)
			require.NoError(t, err)
			assert.Equal(t, len(raw), next)
			assert.True(t, it.Equal(got), "decoded %v, want %v", got, it)
			assert.Equal(t, tt.key, got.Key())
		})
	}
}

func TestDecode_NoValues(t *testing.T) {
	it, err := types.NewItem("Empty")
	require.NoError(t, err)

	raw, err := Encode(it)
	require.NoError(t, err)
	assert.Equal(t, byte(0), raw[0])

	got, _, err := Decode(raw, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{""}, got.Values())
}

func TestDecode_AtOffset(t *testing.T) {
	data := append(rawItem("Album", 0, "A"), rawItem("Year", 1, "1999")...)

	first, next, err := Decode(data, 0)
	require.NoError(t, err)
	assert.Equal(t, "Album", first.Key())

	second, end, err := Decode(data, next)
	require.NoError(t, err)
	assert.Equal(t, "Year", second.Key())
	assert.True(t, second.ReadOnly())
	assert.Equal(t, len(data), end)
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name   string
		data   []byte
		offset int
		reason string
		at     int64
	}{
		{
			name:   "too few trailing bytes",
			data:   []byte{0x01, 0x00, 0x00, 0x00, 0x00},
			reason: "invalid item length",
			at:     0,
		},
		{
			name:   "length past end",
			data:   rawItem("Title", 0, "abcdefghij")[:16],
			reason: "invalid item length",
			at:     0,
		},
		{
			name:   "flags over 7",
			data:   rawItem("Title", 8, "abc"),
			reason: "invalid item flags",
			at:     0,
		},
		{
			name:   "missing separator",
			data:   append([]byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, "Title"...),
			reason: "missing key-value separator",
			at:     8,
		},
		{
			name: "length crosses end after long key",
			data: func() []byte {
				raw := rawItem("A Very Long Key Name", 0, "abcd")
				return raw[:len(raw)-1]
			}(),
			reason: "invalid item length",
			at:     8,
		},
		{
			name:   "reserved key",
			data:   rawItem("tag", 0, "x"),
			reason: "invalid item key",
			at:     8,
		},
		{
			name:   "short key",
			data:   append(rawItem("k", 0, "x"), 0, 0),
			reason: "invalid item key",
			at:     8,
		},
		{
			name:   "invalid utf8",
			data:   rawItem("Title", 0, "\xff\xfe"),
			reason: "invalid item value encoding",
			at:     14,
		},
		{
			name:   "invalid external encoding",
			data:   rawItem("Link", 4, "\xc3\x28"),
			reason: "invalid item value encoding",
			at:     13,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Decode(tt.data, tt.offset)
			require.Error(t, err)

			var tagErr *types.TagError
			require.ErrorAs(t, err, &tagErr)
			assert.Contains(t, tagErr.Reason, tt.reason)
			assert.Equal(t, tt.at, tagErr.Offset)
		})
	}
}

func TestDecode_BinaryAllowsInvalidUTF8(t *testing.T) {
	it, _, err := Decode(rawItem("Cover", 2, "\xff\xfe"), 0)
	require.NoError(t, err)
	assert.Equal(t, types.KindBinary, it.Kind())
	assert.Equal(t, "\xff\xfe", it.First())
}

func TestEncode_Invalid(t *testing.T) {
	_, err := Encode(&types.Item{})
	var tagErr *types.TagError
	require.ErrorAs(t, err, &tagErr)
	assert.Contains(t, tagErr.Reason, "invalid item key")
}

func TestEncode_ReservedKindAllowsBinary(t *testing.T) {
	it, err := types.NewItemWith("Cover", types.KindBinary, false, []string{"\xff"})
	require.NoError(t, err)
	require.NoError(t, it.SetKind(types.KindReserved))

	raw, err := Encode(it)
	require.NoError(t, err)
	assert.Equal(t, byte(6), raw[7])
}

func TestParse(t *testing.T) {
	data := append(rawItem("Album", 0, "A"), rawItem("Artist", 0, "B\x00C")...)

	fields, err := Parse(data, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, fields.Len())
	assert.Equal(t, []string{"B", "C"}, fields.Values("artist"))

	empty, err := Parse(nil, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Len())
}

func TestParse_Errors(t *testing.T) {
	album := rawItem("Album", 0, "A")

	tests := []struct {
		name   string
		data   []byte
		count  uint32
		reason string
	}{
		{
			name:   "more items declared than present",
			data:   album,
			count:  2,
			reason: "end of tag reached but more items specified",
		},
		{
			name:   "trailing data",
			data:   append(append([]byte{}, album...), rawItem("Year", 0, "2000")...),
			count:  1,
			reason: "data remaining after specified number of items parsed",
		},
		{
			name:   "duplicate key",
			data:   append(append([]byte{}, album...), rawItem("ALBUM", 0, "B")...),
			count:  2,
			reason: "multiple items with same key",
		},
		{
			name:   "zero count with data",
			data:   album,
			count:  0,
			reason: "data remaining",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.data, tt.count)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.reason)
		})
	}
}

func TestMarshal_Order(t *testing.T) {
	fields := types.NewFields()
	require.NoError(t, fields.Set("Title", "Long title value"))
	require.NoError(t, fields.Set("Year", "1999"))
	require.NoError(t, fields.Set("Date", "1999"))
	require.NoError(t, fields.Set("Album", "B"))

	data, count, err := Marshal(fields)
	require.NoError(t, err)
	assert.Equal(t, 4, count)

	var keys []string
	offset := 0
	for offset < len(data) {
		it, next, err := Decode(data, offset)
		require.NoError(t, err)
		keys = append(keys, it.Key())
		offset = next
	}

	// Album (15 bytes), then Date and Year (17 bytes, byte order), then Title.
	assert.Equal(t, []string{"Album", "Date", "Year", "Title"}, keys)
}

func TestMarshal_Deterministic(t *testing.T) {
	build := func(order []string) *types.Fields {
		f := types.NewFields()
		for _, k := range order {
			require.NoError(t, f.Set(k, "same"))
		}
		return f
	}

	a, _, err := Marshal(build([]string{"Artist", "Album", "Genre", "Track"}))
	require.NoError(t, err)
	b, _, err := Marshal(build([]string{"Track", "Genre", "Album", "Artist"}))
	require.NoError(t, err)
	assert.Equal(t, a, b)

	empty, count, err := Marshal(types.NewFields())
	require.NoError(t, err)
	assert.Empty(t, empty)
	assert.Zero(t, count)
}

func BenchmarkDecode(b *testing.B) {
	data := rawItem("Artist", 0, "Some Artist Name")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := Decode(data, 0); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkMarshal(b *testing.B) {
	fields := types.NewFields()
	for _, k := range []string{"Title", "Artist", "Album", "Year", "Genre", "Track", "Comment"} {
		fields.Set(k, k+" value")
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := Marshal(fields); err != nil {
			b.Fatal(err)
		}
	}
}
