package vfile

import "io"

// sliceIO implements io.ReaderAt/io.WriterAt directly on an mmap'd []byte. It
// is embedded by both the real-file and anonymous-mapping buffers so they
// share the exact same bounds-checked addressing logic.
type sliceIO struct {
	data []byte
}

func (s *sliceIO) Cap() int64 { return int64(len(s.data)) }

func (s *sliceIO) ReadAt(p []byte, off int64) (int, error) {
	if off < 0 || off > int64(len(s.data)) {
		return 0, io.EOF
	}
	n := copy(p, s.data[off:])
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}

func (s *sliceIO) WriteAt(p []byte, off int64) (int, error) {
	if off < 0 || off > int64(len(s.data)) {
		return 0, io.ErrShortWrite
	}
	n := copy(s.data[off:], p)
	if n < len(p) {
		return n, io.ErrShortWrite
	}
	return n, nil
}
