// Package vmap provides a sequential/random-access byte interface over a
// host file that behaves like one contiguous, unbounded-size memory-mapped
// buffer, while in reality only a bounded set of bounded-size OS mappings
// (regions) is kept resident at any instant. The caller positions a logical
// cursor anywhere in the file and issues bulk byte transfers; File
// transparently creates, selects, splits across, and evicts regions to
// satisfy each transfer.
//
// File is single-caller: it carries no locks, makes no atomicity
// guarantees, and must not be used from more than one goroutine at a time.
package vmap

import (
	"github.com/grailbio/base/errorreporter"
	"github.com/grailbio/base/log"
	"github.com/grailbio/vmap/vfile"
)

const (
	// DefaultMinBufferSize is the floor of any individual region's size.
	DefaultMinBufferSize int64 = 64 << 20
	// DefaultMaxBufferSize is the ceiling of any individual region's size.
	DefaultMaxBufferSize int64 = 512 << 20
	// DefaultMaxRegions is the hard cap on simultaneously resident regions.
	DefaultMaxRegions = 16
)

// AccessMode is re-exported from vfile so callers need not import it
// directly to configure a Builder.
type AccessMode = vfile.AccessMode

const (
	// ReadOnly mappings never permit writes.
	ReadOnly = vfile.ReadOnly
	// ReadWrite mappings permit writes that become visible to the file per
	// OS memory-mapping semantics once flushed.
	ReadWrite = vfile.ReadWrite
)

// Stats is a read-only snapshot of a File's region table occupancy.
type Stats struct {
	Used           int
	MaxRegions     int
	ActiveSlot     int
	TotalEvictions uint64
}

// File is the windowed view over a FileHandle. It is not safe for
// concurrent use.
type File struct {
	fh      vfile.FileHandle
	mode    vfile.AccessMode
	cur     cursor
	table   *regionTable
	mapper  *mapper
	evictor *evictor
	engine  *transferEngine
	closed  bool
}

// Position returns the cursor's pending (next-transfer) offset.
func (f *File) Position() int64 { return f.cur.position() }

// SetPosition moves the pending cursor. No mapping occurs until the next
// transfer.
func (f *File) SetPosition(p int64) error {
	if f.closed {
		return newInvalidArgument("SetPosition called on a closed File")
	}
	return f.cur.setPosition(p)
}

// Get transfers length bytes starting at the cursor into
// dst[offset:offset+length], then advances the cursor by length.
func (f *File) Get(dst []byte, offset, length int) error {
	if f.closed {
		return newInvalidArgument("Get called on a closed File")
	}
	return f.engine.get(dst, offset, length)
}

// GetAll is Get(dst, 0, len(dst)).
func (f *File) GetAll(dst []byte) error {
	if f.closed {
		return newInvalidArgument("GetAll called on a closed File")
	}
	return f.engine.getAll(dst)
}

// Put writes a single byte at the cursor (ReadWrite mode only) and advances
// the cursor by one.
func (f *File) Put(b byte) error {
	if f.closed {
		return newInvalidArgument("Put called on a closed File")
	}
	return f.engine.put(b)
}

// Stats reports the current region table occupancy.
func (f *File) Stats() Stats {
	return Stats{
		Used:           f.table.used,
		MaxRegions:     f.table.maxRegions(),
		ActiveSlot:     f.table.active,
		TotalEvictions: f.evictor.total,
	}
}

// Close drains the region table from the last slot to the first, flushing
// then unmapping each region; a failed flush does not skip the unmap. Every
// failure is logged, and the returned error is the first failure recorded
// (github.com/grailbio/base/errorreporter.T keeps only the first error set);
// later failures are not included in it. After Close returns, f must not be
// used again, whether or not it returned an error.
func (f *File) Close() error {
	if f.closed {
		return newInvalidArgument("Close called on an already-closed File")
	}
	f.closed = true

	var errs errorreporter.T
	for i := f.table.used - 1; i >= 0; i-- {
		r := &f.table.regions[i]
		if err := r.buf.Flush(); err != nil {
			log.Error.Printf("vmap: flush region at %d failed: %v", r.start, err)
			errs.Set(wrapIoFlushOrUnmap(err, "close: flush"))
		}
		if err := r.buf.Unmap(); err != nil {
			log.Error.Printf("vmap: unmap region at %d failed: %v", r.start, err)
			errs.Set(wrapIoFlushOrUnmap(err, "close: unmap"))
		}
	}
	f.table.used = 0
	f.table.active = 0
	return errs.Err()
}
