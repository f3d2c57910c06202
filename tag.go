package apetag

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"go.uber.org/zap"

	"github.com/simonhull/apetag/internal/id3"
	"github.com/simonhull/apetag/internal/item"
	"github.com/simonhull/apetag/internal/tag"
	"github.com/simonhull/apetag/internal/types"
)

// Stream is the host file a tag lives in. *os.File satisfies it.
//
// The length of the stream is found with Seek(0, io.SeekEnd).
type Stream interface {
	io.ReadWriteSeeker
	Truncate(size int64) error
}

// Tag gives access to the APE tag at the end of a file or stream.
//
// A Tag is created without touching the file. The tag is located and
// decoded on first use and cached; Commit replaces the cache and Remove
// resets it. A Tag is not safe for concurrent use.
//
// For a named file, each operation opens the file and closes it before
// returning, so no handle is held between calls:
//
//	t := apetag.New("song.mp3")
//	fields, err := t.Fields()
//	if err != nil {
//		return err
//	}
//	fmt.Println(fields.First("Title"))
type Tag struct {
	path   string
	stream Stream

	checkShadow bool
	logger      *zap.SugaredLogger

	region *tag.Region
	fields *types.Fields
}

// New returns a Tag for the named file.
//
// Unless WithShadowCheck is given, an ID3v1.1 shadow tag is expected only
// when the file name has an MP3 extension.
func New(path string, opts ...Option) *Tag {
	options := defaultOptions()
	options.checkShadow = types.FormatFromPath(path).CarriesShadowTag()
	for _, opt := range opts {
		opt(options)
	}
	return newTag(path, nil, options)
}

// NewFromStream returns a Tag for an already opened stream. The stream is
// never closed by the Tag.
//
// Unless WithShadowCheck is given, DefaultCheckShadow applies.
func NewFromStream(s Stream, opts ...Option) *Tag {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}
	return newTag("", s, options)
}

func newTag(path string, s Stream, options *tagOptions) *Tag {
	return &Tag{
		path:        path,
		stream:      s,
		checkShadow: options.checkShadow,
		logger:      options.logger.Sugar().With("path", path),
	}
}

// Path returns the file name, or "" for a stream.
func (t *Tag) Path() string {
	return t.path
}

// CheckShadow reports whether the Tag looks for and maintains an ID3v1.1
// shadow tag.
func (t *Tag) CheckShadow() bool {
	return t.checkShadow
}

// load locates and decodes the tag in s unless it is already cached.
func (t *Tag) load(s io.ReadSeeker) error {
	if t.region != nil {
		return nil
	}

	region, err := tag.Locate(s, t.path, t.checkShadow)
	if err != nil {
		return types.WithPath(err, t.path)
	}

	fields := types.NewFields()
	if region.Exists {
		fields, err = item.Parse(region.Data, region.ItemCount)
		if err != nil {
			return types.WithPath(err, t.path)
		}
	}

	t.logger.Debugw("located tag",
		"exists", region.Exists,
		"start", region.Start,
		"size", region.Size,
		"items", region.ItemCount,
		"shadow", region.HasShadow(),
	)

	t.region = region
	t.fields = fields
	return nil
}

// resolve makes sure the cache is filled, opening the file read-only when
// needed.
func (t *Tag) resolve() error {
	if t.region != nil {
		return nil
	}
	return t.access(false, func(s Stream) error {
		return t.load(s)
	})
}

// reset drops the cache so the next operation reads the file again.
func (t *Tag) reset() {
	t.region = nil
	t.fields = nil
}

// Exists reports whether the file has an APE tag.
func (t *Tag) Exists() (bool, error) {
	if err := t.resolve(); err != nil {
		return false, err
	}
	return t.region.Exists, nil
}

// HasShadow reports whether the file ends with an ID3v1.1 tag. It is always
// false when shadow checking is off.
func (t *Tag) HasShadow() (bool, error) {
	if err := t.resolve(); err != nil {
		return false, err
	}
	return t.region.HasShadow(), nil
}

// Fields returns a copy of the tag's items. A file without a tag yields an
// empty collection.
func (t *Tag) Fields() (*Fields, error) {
	if err := t.resolve(); err != nil {
		return nil, err
	}
	return t.fields.Clone(), nil
}

// Raw returns the tag bytes as stored: header, items, footer and shadow
// tag. Missing parts are left out, so a file with neither tag gives an empty
// slice.
func (t *Tag) Raw() ([]byte, error) {
	if err := t.resolve(); err != nil {
		return nil, err
	}
	return t.region.Raw(), nil
}

// ItemCount returns the number of items in the tag.
func (t *Tag) ItemCount() (int, error) {
	if err := t.resolve(); err != nil {
		return 0, err
	}
	return int(t.region.ItemCount), nil
}

// Size returns the size of the APE tag including header and footer, or 0
// when there is none. The shadow tag is not counted.
func (t *Tag) Size() (int, error) {
	if err := t.resolve(); err != nil {
		return 0, err
	}
	return int(t.region.Size), nil
}

// ShadowFields returns the fields stored in the ID3v1.1 tag, or nil when
// there is none. See internal/id3 for the field names.
func (t *Tag) ShadowFields() (map[string]string, error) {
	if err := t.resolve(); err != nil {
		return nil, err
	}
	return id3.Parse(t.region.Shadow), nil
}

// Pretty returns one "Key: value1, value2" line per item, sorted by key.
// A corrupt tag gives "CORRUPT TAG!" and a missing file "FILE NOT FOUND!".
func (t *Tag) Pretty() string {
	if err := t.resolve(); err != nil {
		var tagErr *TagError
		var notFound *FileNotFoundError
		switch {
		case errors.As(err, &tagErr):
			return "CORRUPT TAG!"
		case errors.As(err, &notFound):
			return "FILE NOT FOUND!"
		default:
			return err.Error()
		}
	}

	return PrettyFields(t.fields)
}

// PrettyFields formats fields the way Tag.Pretty does.
func PrettyFields(fields *Fields) string {
	items := fields.Items()
	slices.SortFunc(items, func(a, b *Item) int {
		return strings.Compare(a.Key(), b.Key())
	})

	lines := make([]string, 0, len(items))
	for _, it := range items {
		lines = append(lines, it.String())
	}
	return strings.Join(lines, "\n")
}

// String implements fmt.Stringer using Pretty.
func (t *Tag) String() string {
	return t.Pretty()
}

// Remove truncates the file before the APE tag, dropping the shadow tag
// with it. A file without an APE tag is left as is, including any shadow
// tag. Remove reports true unless it fails.
func (t *Tag) Remove() (bool, error) {
	err := t.access(true, func(s Stream) error {
		if err := t.load(s); err != nil {
			return err
		}
		if !t.region.Exists {
			return nil
		}
		if err := s.Truncate(t.region.Start); err != nil {
			return fmt.Errorf("truncate: %w", err)
		}
		t.logger.Debugw("removed tag", "start", t.region.Start, "size", t.region.Size)
		return nil
	})
	t.reset()
	if err != nil {
		return false, err
	}
	return true, nil
}
