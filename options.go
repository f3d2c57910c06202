package apetag

import "go.uber.org/zap"

// DefaultCheckShadow is whether a Tag created from a stream looks for and
// maintains an ID3v1.1 shadow tag when WithShadowCheck is not given.
const DefaultCheckShadow = true

// Option configures a Tag.
//
// Options use the functional options pattern for clean, extensible APIs.
//
// Example:
//
//	t := apetag.New("track.ape",
//	    apetag.WithShadowCheck(true),
//	    apetag.WithLogger(logger),
//	)
type Option func(*tagOptions)

// tagOptions holds configuration for a Tag.
type tagOptions struct {
	checkShadow bool
	logger      *zap.Logger
}

// defaultOptions returns the default configuration.
func defaultOptions() *tagOptions {
	return &tagOptions{
		checkShadow: DefaultCheckShadow,
		logger:      zap.NewNop(),
	}
}

// WithShadowCheck sets whether the Tag looks for an ID3v1.1 tag in the last
// 128 bytes of the file and keeps it in sync on update.
//
// When checking is on, an update writes a shadow tag if the file already
// had one, or if it had no APE tag at all. A file with an APE tag but no
// shadow tag never gains one.
//
// When checking is off, a file that ends with a shadow tag appears to have
// no APE tag.
//
// Example:
//
//	t := apetag.New("song.mp3", apetag.WithShadowCheck(false))
func WithShadowCheck(check bool) Option {
	return func(o *tagOptions) {
		o.checkShadow = check
	}
}

// WithLogger sets the logger used for debug output. A nil logger is
// ignored. The default discards everything.
//
// Example:
//
//	logger, _ := zap.NewDevelopment()
//	t := apetag.New("song.mp3", apetag.WithLogger(logger))
func WithLogger(logger *zap.Logger) Option {
	return func(o *tagOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}
