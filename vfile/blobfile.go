//go:build unix

package vfile

import (
	"context"
	"io"

	"github.com/grailbio/base/file"
	"github.com/pkg/errors"
)

// OpenBlob resolves path through github.com/grailbio/base/file — local
// paths, s3://, gs://, and anything else base/file's registered
// implementations handle — and wraps the result as a FileHandle. An
// s3://... path reaches Amazon's SDK (github.com/aws/aws-sdk-go) inside
// base/file; vmap itself never imports the SDK directly.
//
// The concrete reader/writer returned by base/file must also implement
// io.ReaderAt/io.WriterAt for Map to be able to fill an arbitrary window
// without re-reading from the start; this holds for base/file's local and
// S3 backends. writable selects whether the path is also opened for
// writing.
func OpenBlob(ctx context.Context, path string, writable bool) (*ReaderAtFile, func() error, error) {
	info, err := file.Stat(ctx, path)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "vfile: stat %s", path)
	}

	in, err := file.Open(ctx, path)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "vfile: open %s", path)
	}
	r, ok := io.Reader(in.Reader(ctx)).(io.ReaderAt)
	if !ok {
		_ = in.Close(ctx)
		return nil, nil, errors.Errorf("vfile: %s does not support random-access reads", path)
	}

	var w io.WriterAt
	closers := []func(ctx context.Context) error{in.Close}
	if writable {
		out, err := file.Create(ctx, path)
		if err != nil {
			_ = in.Close(ctx)
			return nil, nil, errors.Wrapf(err, "vfile: create %s", path)
		}
		wa, ok := io.Writer(out.Writer(ctx)).(io.WriterAt)
		if !ok {
			_ = in.Close(ctx)
			_ = out.Close(ctx)
			return nil, nil, errors.Errorf("vfile: %s does not support random-access writes", path)
		}
		w = wa
		closers = append(closers, out.Close)
	}

	close := func() error {
		var first error
		for _, c := range closers {
			if err := c(ctx); err != nil && first == nil {
				first = err
			}
		}
		return first
	}
	return NewReaderAtFile(r, w, info.Size()), close, nil
}
