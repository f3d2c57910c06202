package apetag

import (
	"os"
	"time"

	"github.com/simonhull/apetag/internal/id3"
	"github.com/simonhull/apetag/internal/item"
	"github.com/simonhull/apetag/internal/tag"
	"github.com/simonhull/apetag/internal/types"
)

// Tx is an update in progress. It holds a private copy of the tag's fields
// that the caller edits through Fields before calling Commit or Abort.
//
// Example:
//
//	tx, err := t.BeginUpdate()
//	if err != nil {
//		return err
//	}
//	fields := tx.Fields()
//	fields.Set("Title", "New Title")
//	fields.Delete("Comment")
//	if err := tx.Commit(); err != nil {
//		return err
//	}
type Tx struct {
	tag    *Tag
	fields *types.Fields
	closed bool
}

// BeginUpdate starts an update from the current fields, or from an empty
// collection when the file has no tag.
func (t *Tag) BeginUpdate() (*Tx, error) {
	if err := t.resolve(); err != nil {
		return nil, err
	}
	return &Tx{tag: t, fields: t.fields.Clone()}, nil
}

// Fields returns the collection being edited. Changes are written by
// Commit; the Tag's cached fields are not affected until then.
func (tx *Tx) Fields() *Fields {
	return tx.fields
}

// Abort discards the update. The file is not touched.
func (tx *Tx) Abort() error {
	if tx.closed {
		return ErrTxClosed
	}
	tx.closed = true
	return nil
}

// Commit writes the edited fields as a new tag in place of the old one.
//
// Items are re-keyed to the key they currently carry and re-validated, then
// serialized in canonical order. A tag with more than 64 items or larger
// than 8192 bytes is rejected without writing. Otherwise the new tag, and
// the shadow tag when one is maintained, is written with a single write at
// the start of the old tag and the file is truncated right after it.
//
// The transaction is closed when Commit returns, whether or not it
// succeeded.
func (tx *Tx) Commit(opts ...CommitOption) error {
	if tx.closed {
		return ErrTxClosed
	}
	tx.closed = true

	options := defaultCommitOptions()
	for _, opt := range opts {
		opt(options)
	}

	t := tx.tag

	if err := tx.fields.Normalize(); err != nil {
		return types.WithPath(err, t.path)
	}
	data, count, err := item.Marshal(tx.fields)
	if err != nil {
		return types.WithPath(err, t.path)
	}
	region, err := tag.Build(data, count)
	if err != nil {
		return types.WithPath(err, t.path)
	}

	named := t.stream == nil
	if named && options.backupSuffix != "" {
		if err := backup(t.path, options.backupSuffix); err != nil {
			return err
		}
	}
	var origModTime time.Time
	if named && options.preserveModTime {
		origModTime = modTime(t.path)
	}

	err = t.access(true, func(s Stream) error {
		if err := t.load(s); err != nil {
			return err
		}
		old := t.region

		region.Start = old.Start
		if t.checkShadow && (old.HasShadow() || !old.Exists) {
			shadow := id3.Build(tx.fields)
			region.Shadow = shadow[:]
		}

		end, err := writeRegion(s, t.path, region, options.verify)
		if err != nil {
			return err
		}
		region.StreamSize = end
		return nil
	})
	if err != nil {
		// The file may have been partly written.
		t.reset()
		return err
	}

	if !origModTime.IsZero() {
		_ = os.Chtimes(t.path, origModTime, origModTime) //nolint:errcheck // Non-fatal: tag was written successfully
	}

	t.logger.Debugw("committed tag",
		"start", region.Start,
		"size", region.Size,
		"items", region.ItemCount,
		"shadow", region.HasShadow(),
	)

	t.region = region
	t.fields = tx.fields.Clone()
	return nil
}

// Update runs fn on an editable copy of the fields and commits the result.
// When fn returns an error nothing is written and the error is returned.
//
// Example:
//
//	err := t.Update(func(f *apetag.Fields) error {
//		return f.Set("Artist", "Test Artist")
//	})
func (t *Tag) Update(fn func(*Fields) error, opts ...CommitOption) error {
	tx, err := t.BeginUpdate()
	if err != nil {
		return err
	}
	if err := fn(tx.Fields()); err != nil {
		_ = tx.Abort() //nolint:errcheck // Fresh transaction
		return err
	}
	return tx.Commit(opts...)
}
