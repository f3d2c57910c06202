package apetag

// CommitOption configures how an update is written.
//
// Example:
//
//	err := tx.Commit(
//	    apetag.WithBackup(".bak"),
//	    apetag.WithVerify(),
//	)
type CommitOption func(*commitOptions)

// commitOptions holds configuration for writing a tag.
type commitOptions struct {
	backupSuffix    string // Suffix for backup file (e.g., ".bak")
	verify          bool   // Re-read after write and compare digests
	preserveModTime bool   // Keep original modification time
}

// defaultCommitOptions returns the default configuration for writing.
func defaultCommitOptions() *commitOptions {
	return &commitOptions{}
}

// WithBackup copies the original file before writing.
//
// The copy gets the suffix appended to the original filename, so
// WithBackup(".bak") copies "song.mp3" to "song.mp3.bak". An existing copy
// is overwritten. Ignored for streams.
//
// Example:
//
//	err := t.Update(fn, apetag.WithBackup(".bak"))
func WithBackup(suffix string) CommitOption {
	return func(o *commitOptions) {
		o.backupSuffix = suffix
	}
}

// WithVerify re-reads the written region and compares its xxhash64 digest
// with the digest of the bytes that were written.
//
// Example:
//
//	err := tx.Commit(apetag.WithVerify())
func WithVerify() CommitOption {
	return func(o *commitOptions) {
		o.verify = true
	}
}

// WithPreserveModTime keeps the original file modification time. Ignored
// for streams.
//
// Example:
//
//	err := tx.Commit(apetag.WithPreserveModTime())
func WithPreserveModTime() CommitOption {
	return func(o *commitOptions) {
		o.preserveModTime = true
	}
}
