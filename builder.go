package vmap

import "github.com/grailbio/vmap/vfile"

// Builder is the fluent configuration object that assembles a File. It is
// the spec's "thin external collaborator": every chained setter records
// a value unvalidated, since a chained call can't itself return an error;
// Build runs the parameter-validation wrapper once and, if everything
// checks out, maps the initial region and returns the assembled File.
type Builder struct {
	fh              vfile.FileHandle
	mode            vfile.AccessMode
	minBufferSize   int64
	maxBufferSize   int64
	maxRegions      int
	initialPosition int64
}

// NewBuilder starts a Builder over fh with the spec's defaults: read-only,
// 64MiB/512MiB min/max region size, 16 resident regions, initial position 0.
func NewBuilder(fh vfile.FileHandle) *Builder {
	return &Builder{
		fh:            fh,
		mode:          vfile.ReadOnly,
		minBufferSize: DefaultMinBufferSize,
		maxBufferSize: DefaultMaxBufferSize,
		maxRegions:    DefaultMaxRegions,
	}
}

// AccessMode sets read-only vs read-write. Default ReadOnly.
func (b *Builder) AccessMode(mode AccessMode) *Builder {
	b.mode = mode
	return b
}

// MinBufferSize sets the floor of any individual region's size. Default 64MiB.
func (b *Builder) MinBufferSize(n int64) *Builder {
	b.minBufferSize = n
	return b
}

// MaxBufferSize sets the ceiling of any individual region's size. Default 512MiB.
func (b *Builder) MaxBufferSize(n int64) *Builder {
	b.maxBufferSize = n
	return b
}

// MaxRegions sets the hard cap on simultaneously resident regions. Default 16.
func (b *Builder) MaxRegions(n int) *Builder {
	b.maxRegions = n
	return b
}

// InitialPosition sets the starting cursor. Default 0.
func (b *Builder) InitialPosition(p int64) *Builder {
	b.initialPosition = p
	return b
}

// Build validates the accumulated configuration, maps the initial region at
// InitialPosition, and returns the assembled File.
func (b *Builder) Build() (*File, error) {
	if err := validate(b); err != nil {
		return nil, err
	}

	fileLen, err := b.fh.Len()
	if err != nil {
		return nil, wrapIoSize(err, "Builder.Build: query file length")
	}

	table := newRegionTable(b.maxRegions)
	ev := newEvictor()
	mp := newMapper(b.fh, b.mode, b.minBufferSize, b.maxBufferSize, ev)

	initialSize := clamp(fileLen, b.minBufferSize, b.maxBufferSize)
	buf, err := b.fh.Map(b.initialPosition, initialSize, b.mode)
	if err != nil {
		return nil, wrapIoMap(err, "Builder.Build: map initial region")
	}
	if _, err := table.insert(newRegion(b.initialPosition, buf), b.initialPosition); err != nil {
		_ = buf.Unmap()
		return nil, err
	}
	table.active = 0

	f := &File{
		fh:      b.fh,
		mode:    b.mode,
		cur:     cursor{fcPosition: b.initialPosition, nextFcPosition: b.initialPosition},
		table:   table,
		mapper:  mp,
		evictor: ev,
	}
	f.engine = &transferEngine{fh: b.fh, mode: b.mode, table: table, mapper: mp, cur: &f.cur}
	return f, nil
}

// validate is the parameter-validation wrapper run by Build; the vmaptool
// CLI reaches it only through Build.
func validate(b *Builder) error {
	if b.fh == nil {
		return newInvalidArgument("file handle is required")
	}
	if b.minBufferSize <= 0 {
		return newInvalidArgument("min buffer size must be positive, got %d", b.minBufferSize)
	}
	if b.maxBufferSize < b.minBufferSize {
		return newInvalidArgument("max buffer size %d is less than min buffer size %d", b.maxBufferSize, b.minBufferSize)
	}
	if b.maxRegions < 1 {
		return newInvalidArgument("max regions must be at least 1, got %d", b.maxRegions)
	}
	if b.initialPosition < 0 {
		return newInvalidArgument("initial position %d is negative", b.initialPosition)
	}
	return nil
}
