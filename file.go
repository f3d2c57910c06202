package apetag

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/simonhull/apetag/internal/types"
)

// access runs fn with the host stream. A named file is opened for the
// duration of fn, read-write when write is set, and closed on every path.
// A caller-supplied stream is passed through untouched.
func (t *Tag) access(write bool, fn func(Stream) error) error {
	if t.stream != nil {
		return fn(t.stream)
	}

	flag := os.O_RDONLY
	if write {
		flag = os.O_RDWR
	}

	f, err := os.OpenFile(t.path, flag, 0)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &FileNotFoundError{Path: t.path, Err: err}
		}
		return fmt.Errorf("open file: %w", err)
	}

	fnErr := fn(f)
	closeErr := f.Close()
	if fnErr != nil {
		return fnErr
	}
	if closeErr != nil {
		return fmt.Errorf("close file: %w", closeErr)
	}
	return nil
}

// backup copies the named file to path+suffix, overwriting an existing copy.
func backup(path, suffix string) error {
	src, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &FileNotFoundError{Path: path, Err: err}
		}
		return fmt.Errorf("open file: %w", err)
	}
	defer src.Close() //nolint:errcheck // Read-only handle

	info, err := src.Stat()
	if err != nil {
		return fmt.Errorf("stat file: %w", err)
	}

	dst, err := os.OpenFile(path+suffix, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return fmt.Errorf("create backup: %w", err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		_ = dst.Close() //nolint:errcheck // Already failing
		return fmt.Errorf("copy backup: %w", err)
	}
	if err := dst.Close(); err != nil {
		return fmt.Errorf("close backup: %w", err)
	}
	return nil
}

// modTime returns the modification time of the named file, or the zero time
// when it cannot be read.
func modTime(path string) time.Time {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}
	}
	return info.ModTime()
}

// ReadMany reads the tags of many files concurrently.
//
// Files are read in parallel using up to runtime.NumCPU() goroutines.
// Results are returned in the same order as the input paths, each with its
// tag already located and decoded. A corrupt tag or a missing file does
// not fail the batch: its Tag is returned and reports the *TagError or
// *FileNotFoundError from its accessors. Any other failure cancels the rest
// and is returned with the failing path.
//
// Example:
//
//	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
//	defer cancel()
//
//	tags, err := apetag.ReadMany(ctx, paths)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, t := range tags {
//		fmt.Println(t.Path())
//		fmt.Println(t.Pretty())
//	}
func ReadMany(ctx context.Context, paths []string, opts ...Option) ([]*Tag, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	results := make([]*Tag, len(paths))

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			t := New(path, opts...)
			if err := t.resolve(); err != nil {
				var tagErr *types.TagError
				var notFound *types.FileNotFoundError
				if !errors.As(err, &tagErr) && !errors.As(err, &notFound) {
					return fmt.Errorf("%s: %w", path, err)
				}
			}

			results[i] = t
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
