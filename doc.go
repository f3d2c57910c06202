// Package apetag reads, edits and writes APEv2 tags at the end of a file,
// and keeps the trailing ID3v1.1 tag of MP3 files in sync with them.
//
// Audio data is never parsed: only the tag region at the tail of the file
// is read or rewritten.
//
// # Quick Start
//
// Reading a tag:
//
//	t := apetag.New("song.mp3")
//	fields, err := t.Fields()
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(fields.First("Artist"), "-", fields.First("Title"))
//
// Editing a tag:
//
//	err := t.Update(func(f *apetag.Fields) error {
//		if err := f.Set("Album", "Test Album", "Other Album"); err != nil {
//			return err
//		}
//		f.Delete("Comment")
//		return nil
//	})
//
// # Tag Layout
//
// A tag is a 32-byte header, the encoded items and a 32-byte footer, at
// most 8192 bytes and 64 items in total. Header and footer begin with
// "APETAGEX" and the version 2000 and carry the tag size and item count.
// MP3 files usually end with a 128-byte ID3v1.1 tag right after the footer:
//
//	[audio] [header | items... | footer] [ID3v1.1]
//
// Each item has a key of 2 to 255 printable ASCII bytes, compared
// case-insensitively, one or more values and a kind: utf8, binary, external
// or reserved. Items are written sorted by encoded length, then by encoded
// bytes, so equal fields always produce identical tags.
//
// # Shadow Tags
//
// With shadow checking on, which is the default for streams and for files
// with an .mp3 extension, an update writes an ID3v1.1 tag derived from the
// title, artist, album, year or date, comment, track and genre items. A
// file that has an APE tag but no ID3v1.1 tag never gains one.
//
// # Transactions
//
// Update is shorthand for:
//
//	tx, err := t.BeginUpdate()
//	// edit tx.Fields()
//	err = tx.Commit()   // or tx.Abort()
//
// Commit validates everything before writing. The new tag is then written
// with a single write and the file is truncated after it. There is no
// protection against a crash between the two, nor against other processes
// editing the same file.
//
// # Error Handling
//
// Structural problems in an existing tag and updates that would produce an
// invalid tag are reported as *TagError. A missing file is reported as
// *FileNotFoundError, which wraps fs.ErrNotExist:
//
//	var tagErr *apetag.TagError
//	if errors.As(err, &tagErr) {
//		log.Printf("corrupt tag in %s: %s", tagErr.Path, tagErr.Reason)
//	}
//
// # Concurrency
//
// A Tag is meant for one goroutine. ReadMany reads many files in parallel,
// one Tag per file. A corrupt tag or missing file is reported by its own
// Tag rather than failing the whole batch.
package apetag
