package vmap

import (
	"math"

	"github.com/grailbio/vmap/vfile"
)

// clamp projects requested into [min, max]. min <= max is assumed; behavior
// for min > max is unspecified (a request below min returns min and any other
// request returns max, since the lower bound is tested first).
func clamp(requested, min, max int64) int64 {
	if requested < min {
		return min
	}
	if requested > max {
		return max
	}
	return requested
}

// region is an immutable descriptor of one mapped file span, plus a
// saturating use counter that the evictor consults. Once constructed, start,
// end and buf never change; useCount is the only mutable field, and it is
// mutated only by the transfer engine.
type region struct {
	start    int64
	end      int64 // inclusive; equals start when capacity == 0
	buf      vfile.MappedBuffer
	useCount uint64
}

func newRegion(start int64, buf vfile.MappedBuffer) region {
	r := region{start: start, buf: buf}
	if cap := buf.Cap(); cap > 0 {
		r.end = start + cap - 1
	} else {
		r.end = start
	}
	return r
}

func (r *region) capacity() int64 { return r.buf.Cap() }

// encompasses reports whether p falls within this region's mapped span. A
// zero-capacity region never encompasses anything, including its own start.
func (r *region) encompasses(p int64) bool {
	return r.capacity() > 0 && r.start <= p && p <= r.end
}

// isBefore reports whether this region lies strictly before p. A
// zero-capacity region is never "before" a position at or behind its start,
// matching encompasses being false there; for p beyond start it behaves like
// any other region whose end equals start.
func (r *region) isBefore(p int64) bool { return r.end < p }

// isAfter reports whether this region lies strictly after p.
func (r *region) isAfter(p int64) bool { return r.start > p }

// bump increments useCount, saturating at the maximum representable value
// instead of wrapping.
func (r *region) bump() {
	if r.useCount < math.MaxUint64 {
		r.useCount++
	}
}
