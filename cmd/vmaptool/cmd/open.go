package cmd

import (
	"github.com/grailbio/base/vcontext"
	"github.com/grailbio/vmap"
	"github.com/grailbio/vmap/vfile"
)

// commonFlags is the subset of configuration every subcommand exposes as
// flags, applied on top of vmap's own Builder defaults.
type commonFlags struct {
	minBufferSize *int64
	maxBufferSize *int64
	maxRegions    *int
}

func (f commonFlags) apply(b *vmap.Builder) *vmap.Builder {
	if *f.minBufferSize > 0 {
		b = b.MinBufferSize(*f.minBufferSize)
	}
	if *f.maxBufferSize > 0 {
		b = b.MaxBufferSize(*f.maxBufferSize)
	}
	if *f.maxRegions > 0 {
		b = b.MaxRegions(*f.maxRegions)
	}
	return b
}

// openFile resolves path (local, s3://, gs://, ...) via vfile.OpenBlob and
// builds a read-only vmap.File over it. The returned close func must be
// called once the caller is done; it closes both the vmap.File and the
// underlying blob.
func openFile(f commonFlags, path string, initialPosition int64) (*vmap.File, int64, func() error, error) {
	ctx := vcontext.Background()
	rf, closeBlob, err := vfile.OpenBlob(ctx, path, false)
	if err != nil {
		return nil, 0, nil, err
	}
	length, err := rf.Len()
	if err != nil {
		_ = closeBlob()
		return nil, 0, nil, err
	}

	builder := f.apply(vmap.NewBuilder(rf)).InitialPosition(initialPosition)
	vf, err := builder.Build()
	if err != nil {
		_ = closeBlob()
		return nil, 0, nil, err
	}

	close := func() error {
		errVmap := vf.Close()
		errBlob := closeBlob()
		if errVmap != nil {
			return errVmap
		}
		return errBlob
	}
	return vf, length, close, nil
}
