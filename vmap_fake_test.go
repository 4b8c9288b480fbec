package vmap

import (
	"io"

	"github.com/grailbio/vmap/vfile"
)

// fakeHandle is a FileHandle over a plain in-memory byte slice, used by
// tests that want to drive the region cache without touching a real
// mmap(2)/munmap(2) — a test double in the same spirit as the spec's own
// "injected mapper/unmapper double" (spec.md §8, property 5).
type fakeHandle struct {
	data []byte

	mapErr    error // if set, every Map call fails with this error
	flushErr  error // if set, every Flush call fails with this error
	unmapErr  error // if set, every Unmap call fails with this error
	liveMaps  int   // outstanding (mapped, not yet unmapped) buffers
	totalMaps int   // cumulative Map calls, regardless of outcome
}

func (h *fakeHandle) Len() (int64, error) { return int64(len(h.data)), nil }

func (h *fakeHandle) Map(start, length int64, mode vfile.AccessMode) (vfile.MappedBuffer, error) {
	h.totalMaps++
	if h.mapErr != nil {
		return nil, h.mapErr
	}
	end := start + length
	if end > int64(len(h.data)) && mode == vfile.ReadWrite {
		grown := make([]byte, end)
		copy(grown, h.data)
		h.data = grown
	}
	if end > int64(len(h.data)) {
		end = int64(len(h.data))
	}
	var window []byte
	if end > start {
		window = h.data[start:end]
	}
	h.liveMaps++
	return &fakeBuffer{h: h, window: window}, nil
}

// fakeBuffer is a MappedBuffer directly backed by a slice of fakeHandle's
// data — writes through it are immediately visible to the "file" without
// needing an explicit Flush, which matches how a real MAP_SHARED mapping
// behaves well before msync is called.
type fakeBuffer struct {
	h        *fakeHandle
	window   []byte
	unmapped bool
}

func (b *fakeBuffer) Cap() int64 { return int64(len(b.window)) }

func (b *fakeBuffer) ReadAt(p []byte, off int64) (int, error) {
	if off < 0 || off > int64(len(b.window)) {
		return 0, io.EOF
	}
	n := copy(p, b.window[off:])
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}

func (b *fakeBuffer) WriteAt(p []byte, off int64) (int, error) {
	if off < 0 || off > int64(len(b.window)) {
		return 0, io.ErrShortWrite
	}
	n := copy(b.window[off:], p)
	if n < len(p) {
		return n, io.ErrShortWrite
	}
	return n, nil
}

func (b *fakeBuffer) Flush() error {
	if b.h.flushErr != nil {
		return b.h.flushErr
	}
	return nil
}

func (b *fakeBuffer) Unmap() error {
	if b.h.unmapErr != nil {
		return b.h.unmapErr
	}
	if !b.unmapped {
		b.unmapped = true
		b.h.liveMaps--
	}
	return nil
}
