//go:build !unix

package vfile

import "context"

// OpenBlob is unsupported outside the unix family; see osfile_other.go.
func OpenBlob(ctx context.Context, path string, writable bool) (*ReaderAtFile, func() error, error) {
	return nil, nil, errNotSupported
}
