//go:build unix

package vfile

import (
	"io"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// ReaderAtFile is a FileHandle over any io.ReaderAt (optionally also an
// io.WriterAt, for ReadWrite use). It has no real file descriptor to mmap,
// so Map allocates an anonymous mapping — the same technique the teacher
// uses in fusion/kmer_index.go to get a syscall-backed buffer bypassing Go's
// allocator — fills it from the source with ReadAt, and on Flush writes the
// window back with WriteAt.
//
// This lets vmap.File run over a backing store reached through
// github.com/grailbio/base/file (local paths, s3://, gs://, ...) exactly as
// it runs over a local *os.File: the region cache never knows the
// difference, since both present the same MappedBuffer.
type ReaderAtFile struct {
	r      io.ReaderAt
	w      io.WriterAt // nil if the source doesn't support writes
	length int64
}

// NewReaderAtFile wraps r (and, for ReadWrite use, w) as a FileHandle of the
// given logical length.
func NewReaderAtFile(r io.ReaderAt, w io.WriterAt, length int64) *ReaderAtFile {
	return &ReaderAtFile{r: r, w: w, length: length}
}

// Len implements FileHandle.
func (f *ReaderAtFile) Len() (int64, error) { return f.length, nil }

// Map implements FileHandle.
func (f *ReaderAtFile) Map(start, length int64, mode AccessMode) (MappedBuffer, error) {
	if mode == ReadWrite && f.w == nil {
		return nil, errors.New("vfile: ReaderAtFile has no WriterAt, cannot map ReadWrite")
	}
	if length == 0 {
		return &anonMappedBuffer{}, nil
	}
	data, err := unix.Mmap(-1, 0, int(length), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, errors.Wrapf(err, "vfile: anonymous mmap length=%d", length)
	}
	if fillable := f.length - start; fillable > 0 {
		n := fillable
		if n > length {
			n = length
		}
		if _, err := f.r.ReadAt(data[:n], start); err != nil && err != io.EOF {
			_ = unix.Munmap(data)
			return nil, errors.Wrapf(err, "vfile: fill anonymous mapping start=%d length=%d", start, n)
		}
	}
	return &anonMappedBuffer{
		sliceIO:  sliceIO{data: data},
		start:    start,
		w:        f.w,
		readOnly: mode == ReadOnly,
	}, nil
}

// anonMappedBuffer is a MappedBuffer backed by an anonymous mapping that
// shadows a window of some other io.ReaderAt/io.WriterAt.
type anonMappedBuffer struct {
	sliceIO
	start    int64
	w        io.WriterAt
	readOnly bool
}

// Flush writes the shadowed window back to the original source.
func (b *anonMappedBuffer) Flush() error {
	if b.readOnly || len(b.data) == 0 {
		return nil
	}
	if _, err := b.w.WriteAt(b.data, b.start); err != nil {
		return errors.Wrapf(err, "vfile: write back anonymous mapping start=%d", b.start)
	}
	return nil
}

// Unmap releases the anonymous mapping.
func (b *anonMappedBuffer) Unmap() error {
	if len(b.data) == 0 {
		return nil
	}
	data := b.data
	b.data = nil
	if err := unix.Munmap(data); err != nil {
		return errors.Wrap(err, "vfile: munmap anonymous mapping")
	}
	return nil
}
