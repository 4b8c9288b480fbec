//go:build !unix

package vfile

import "io"

// ReaderAtFile stub: see osfile_other.go. Anonymous mmap is a unix-only
// technique.
type ReaderAtFile struct {
	length int64
}

// NewReaderAtFile wraps r (and, for ReadWrite use, w) as a FileHandle of the
// given logical length.
func NewReaderAtFile(r io.ReaderAt, w io.WriterAt, length int64) *ReaderAtFile {
	return &ReaderAtFile{length: length}
}

// Len implements FileHandle.
func (f *ReaderAtFile) Len() (int64, error) { return f.length, nil }

// Map implements FileHandle. Always fails on this platform.
func (f *ReaderAtFile) Map(start, length int64, mode AccessMode) (MappedBuffer, error) {
	return nil, errNotSupported
}

var errNotSupported = &unsupportedError{}

type unsupportedError struct{}

func (*unsupportedError) Error() string {
	return "vfile: anonymous mmap is not supported on this platform"
}
