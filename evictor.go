package vmap

import "github.com/grailbio/base/log"

// evictor reclaims a slot under LFU, biased toward the last slot on ties so
// that a full-table eviction under strictly sequential forward access never
// has to shift anything after the removal.
type evictor struct {
	onEvict func(slot int, r *region) // test hook; nil in production
	total   uint64
}

func newEvictor() *evictor { return &evictor{} }

// evictOne flushes, unmaps and removes the least-frequently-used region in
// table. table.used must be > 0.
func (e *evictor) evictOne(table *regionTable) error {
	candidate := table.used - 1
	best := table.regions[candidate].useCount
	for i := candidate - 1; i >= 0; i-- {
		if table.regions[i].useCount < best {
			candidate = i
			best = table.regions[i].useCount
		}
	}

	r := &table.regions[candidate]
	if err := r.buf.Flush(); err != nil {
		return wrapIoFlushOrUnmap(err, "evictor: flush")
	}
	if err := r.buf.Unmap(); err != nil {
		return wrapIoFlushOrUnmap(err, "evictor: unmap")
	}
	if e.onEvict != nil {
		e.onEvict(candidate, r)
	}
	log.Debug.Printf("vmap: evicted region start=%d useCount=%d slot=%d", r.start, r.useCount, candidate)
	table.delete(candidate)
	e.total++
	return nil
}
