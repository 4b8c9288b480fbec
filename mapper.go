package vmap

import (
	"github.com/grailbio/base/log"
	"github.com/grailbio/vmap/vfile"
)

// mapper installs a new region covering position p, evicting first if the
// table is full.
type mapper struct {
	fh      vfile.FileHandle
	mode    vfile.AccessMode
	minBuf  int64
	maxBuf  int64
	evictor *evictor
}

func newMapper(fh vfile.FileHandle, mode vfile.AccessMode, minBuf, maxBuf int64, ev *evictor) *mapper {
	return &mapper{fh: fh, mode: mode, minBuf: minBuf, maxBuf: maxBuf, evictor: ev}
}

// mapAt installs a region covering p into table, returning the new region's
// slot. p must not already be covered by any existing region.
func (m *mapper) mapAt(table *regionTable, p, fcPosition int64) (int, error) {
	if table.used == table.maxRegions() {
		if err := m.evictor.evictOne(table); err != nil {
			return 0, err
		}
	}

	span := m.maxBuf
	if afterIdx, ok := table.closestAfter(p, fcPosition); ok {
		span = table.regions[afterIdx].start - p
	}
	size := clamp(span, m.minBuf, m.maxBuf)

	buf, err := m.fh.Map(p, size, m.mode)
	if err != nil {
		return 0, wrapIoMap(err, "mapper: map new region")
	}

	r := newRegion(p, buf)
	slot, err := table.insert(r, fcPosition)
	if err != nil {
		_ = buf.Unmap()
		return 0, err
	}
	log.Debug.Printf("vmap: mapped region start=%d size=%d mode=%v slot=%d", p, size, m.mode, slot)
	return slot, nil
}
