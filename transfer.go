package vmap

import (
	"io"

	"github.com/grailbio/vmap/vfile"
)

// cursor tracks where the last transfer landed (fcPosition) and where the
// next one will start (nextFcPosition). nextFcPosition is the publicly
// visible "position"; it may exceed the file length until a transfer is
// attempted.
type cursor struct {
	fcPosition     int64
	nextFcPosition int64
}

// position returns the pending cursor.
func (c *cursor) position() int64 { return c.nextFcPosition }

// setPosition validates and stores a new pending cursor. No mapping occurs
// until the next transfer.
func (c *cursor) setPosition(p int64) error {
	if p < 0 {
		return newInvalidArgument("position %d is negative", p)
	}
	c.nextFcPosition = p
	return nil
}

// transferEngine implements the bulk get/put operations: it chooses the
// region covering the pending cursor (mapping one in if absent), copies as
// many bytes as that region can supply, and loops for the remainder.
type transferEngine struct {
	fh     vfile.FileHandle
	mode   vfile.AccessMode
	table  *regionTable
	mapper *mapper
	cur    *cursor
}

// get transfers length bytes starting at the cursor into dst[offset:offset+length].
func (e *transferEngine) get(dst []byte, offset, length int) error {
	if offset < 0 || length < 0 || offset+length > len(dst) {
		return newInvalidArgument("get: offset=%d length=%d dst.len=%d out of bounds", offset, length, len(dst))
	}
	fileLen, err := e.fh.Len()
	if err != nil {
		return wrapIoSize(err, "transferEngine: get")
	}
	if int64(length) > fileLen-e.cur.nextFcPosition {
		return newUnderflow("get: requested %d bytes at %d exceeds file length %d", length, e.cur.nextFcPosition, fileLen)
	}

	bufOff := offset
	remaining := int64(length)
	for remaining > 0 {
		n, err := e.step(remaining, func(buf vfile.MappedBuffer, regionOff, want int64) (int64, error) {
			read, rerr := buf.ReadAt(dst[bufOff:bufOff+int(want)], regionOff)
			if rerr == io.EOF && int64(read) == want {
				rerr = nil
			}
			return int64(read), rerr
		})
		bufOff += int(n)
		remaining -= n
		if err != nil {
			return err
		}
	}
	return nil
}

// getAll is get(dst, 0, len(dst)).
func (e *transferEngine) getAll(dst []byte) error {
	return e.get(dst, 0, len(dst))
}

// put writes a single byte at the cursor's current interior position (write
// mode only), then advances the cursor by one — symmetric with get, so the
// same bounds/splitting machinery applies to both.
func (e *transferEngine) put(b byte) error {
	if e.mode != vfile.ReadWrite {
		return newInvalidArgument("put: file handle is not open in read-write mode")
	}
	_, err := e.step(1, func(buf vfile.MappedBuffer, regionOff, want int64) (int64, error) {
		written, werr := buf.WriteAt([]byte{b}, regionOff)
		return int64(written), werr
	})
	return err
}

// step maps/selects the region covering the pending cursor, copies up to
// length bytes via copyFn, bumps the region's use count, and advances the
// cursor by however many bytes copyFn actually moved. It returns the number
// of bytes moved even when copyFn fails, since the cursor reflects exactly
// what was copied — a later region's mapping failure does not roll back the
// advance already made by earlier regions in the same get/put call.
func (e *transferEngine) step(length int64, copyFn func(buf vfile.MappedBuffer, regionOff, want int64) (int64, error)) (int64, error) {
	p := e.cur.nextFcPosition
	slot, ok := e.table.findCovering(p, e.cur.fcPosition)
	if !ok {
		s, err := e.mapper.mapAt(e.table, p, e.cur.fcPosition)
		if err != nil {
			return 0, err
		}
		slot = s
	}
	e.cur.fcPosition = p
	e.table.active = slot

	r := &e.table.regions[slot]
	regionOff := p - r.start
	if regionOff < 0 || regionOff > r.capacity() {
		return 0, fatal(newRegionOverflow("region-local offset %d out of [0,%d] for region starting at %d", regionOff, r.capacity(), r.start))
	}
	remaining := r.capacity() - regionOff
	want := length
	if want > remaining {
		want = remaining
	}
	if want == 0 {
		return 0, fatal(newRegionOverflow("region at %d has no remaining capacity to serve position %d", r.start, p))
	}

	moved, err := copyFn(r.buf, regionOff, want)
	r.bump()
	e.cur.fcPosition += moved
	e.cur.nextFcPosition += moved
	if err != nil {
		return moved, wrapIoMap(err, "transferEngine: copy")
	}
	return moved, nil
}
