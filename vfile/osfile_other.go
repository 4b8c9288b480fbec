//go:build !unix

package vfile

import (
	"os"

	"github.com/pkg/errors"
)

// OSFile is the non-unix stub: this module's mmap(2)-backed mapping has no
// equivalent on the build target, so Map always fails with IoMapError's
// underlying cause. ReaderAtFile is unavailable here too (see
// readerat_other.go), since its anonymous mapping is also unix-only;
// platforms outside the unix family are not a supported target for vmap.
type OSFile struct {
	f *os.File
}

// NewOSFile wraps f.
func NewOSFile(f *os.File) *OSFile { return &OSFile{f: f} }

// Len implements FileHandle.
func (o *OSFile) Len() (int64, error) {
	st, err := o.f.Stat()
	if err != nil {
		return 0, errors.Wrap(err, "vfile: stat")
	}
	return st.Size(), nil
}

// Map implements FileHandle. Always fails on this platform.
func (o *OSFile) Map(start, length int64, mode AccessMode) (MappedBuffer, error) {
	return nil, errors.New("vfile: mmap is not supported on this platform")
}
