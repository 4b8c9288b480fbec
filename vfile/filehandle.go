// Package vfile provides the file-handle and OS-mapping abstraction that
// vmap's region cache builds on. A FileHandle is an opaque, externally-owned
// reference to a randomly-addressable byte sequence of known length; vmap
// borrows it for the lifetime of a vmap.File and never manages its
// lifecycle.
package vfile

import "io"

// AccessMode selects whether a mapping may be written through.
type AccessMode int

const (
	// ReadOnly mappings never permit writes; the OS may share the backing
	// pages more aggressively.
	ReadOnly AccessMode = iota
	// ReadWrite mappings permit writes that are visible to the file per OS
	// memory-mapping semantics once flushed.
	ReadWrite
)

func (m AccessMode) String() string {
	if m == ReadWrite {
		return "read-write"
	}
	return "read-only"
}

// FileHandle is the caller-supplied, externally-owned file. It must outlive
// every vmap.File built on top of it.
type FileHandle interface {
	// Len returns the file's current length in bytes.
	Len() (int64, error)
	// Map returns an OS memory mapping of [start, start+length) in the given
	// access mode. length may extend past the file's current length; in
	// ReadWrite mode this is expected to extend the file.
	Map(start, length int64, mode AccessMode) (MappedBuffer, error)
}

// MappedBuffer is one live OS mapping, addressed by its own interior offset
// in [0, Cap()].
type MappedBuffer interface {
	io.ReaderAt
	io.WriterAt
	// Cap returns the mapping's capacity in bytes. A mapping of capacity 0
	// represents an empty region and is never selected to serve a transfer.
	Cap() int64
	// Flush requests the OS write back any dirty pages (msync or
	// equivalent). It is always safe to call on a ReadOnly mapping.
	Flush() error
	// Unmap releases the OS mapping. After Unmap, the buffer must not be
	// used again.
	Unmap() error
}
