package vmap

// regionTable is a fixed-capacity, strictly start-ordered sequence of live
// regions. It never reorders slots beyond what insertion/deletion require,
// which keeps the common "active region, or its immediate neighbor" lookup
// a short directional walk instead of a full scan.
type regionTable struct {
	regions []region // len == maxRegions; only [0, used) are live
	used    int
	active  int
}

func newRegionTable(maxRegions int) *regionTable {
	return &regionTable{regions: make([]region, maxRegions)}
}

func (t *regionTable) maxRegions() int { return len(t.regions) }

// findCovering returns the slot whose region encompasses p, biasing the
// search direction from the active slot and the last-committed position:
// forward if p is ahead of fcPosition, backward if behind, or active itself
// on an exact match. Returns (-1, false) if no slot covers p.
func (t *regionTable) findCovering(p, fcPosition int64) (int, bool) {
	if t.used == 0 {
		return -1, false
	}
	switch {
	case p == fcPosition:
		if t.regions[t.active].encompasses(p) {
			return t.active, true
		}
		return -1, false
	case p > fcPosition:
		for i := t.active; i < t.used; i++ {
			if t.regions[i].encompasses(p) {
				return i, true
			}
		}
	default:
		for i := t.active; i >= 0; i-- {
			if t.regions[i].encompasses(p) {
				return i, true
			}
		}
	}
	return -1, false
}

// closestBefore returns the highest-indexed slot whose region lies strictly
// before p: a forward scan (p >= fcPosition) keeps advancing while slots
// test before, stopping at (and discarding) the first non-before slot; a
// backward scan (p < fcPosition) stops and returns on the first before slot
// it sees. Returns (-1, false) if no such slot exists.
func (t *regionTable) closestBefore(p, fcPosition int64) (int, bool) {
	if t.used == 0 {
		return -1, false
	}
	if p >= fcPosition {
		best, found := -1, false
		for i := t.active; i < t.used && t.regions[i].isBefore(p); i++ {
			best, found = i, true
		}
		return best, found
	}
	for i := t.active; i >= 0; i-- {
		if t.regions[i].isBefore(p) {
			return i, true
		}
	}
	return -1, false
}

// closestAfter returns the lowest-indexed slot whose region lies strictly
// after p: a forward scan (p > fcPosition) stops and returns on the first
// after slot it sees; a backward scan (p <= fcPosition) keeps walking while
// slots test after, stopping at (and discarding) the first non-after slot.
// Returns (-1, false) if no such slot exists.
func (t *regionTable) closestAfter(p, fcPosition int64) (int, bool) {
	if t.used == 0 {
		return -1, false
	}
	if p > fcPosition {
		for i := t.active; i < t.used; i++ {
			if t.regions[i].isAfter(p) {
				return i, true
			}
		}
		return -1, false
	}
	best, found := -1, false
	for i := t.active; i >= 0 && t.regions[i].isAfter(p); i-- {
		best, found = i, true
	}
	return best, found
}

// insert places r at the position implied by closestBefore(p)/closestAfter(p)
// (p being r.start), shifting later slots right by one. The table must have
// spare capacity (used < maxRegions) and r must not overlap any existing
// region.
func (t *regionTable) insert(r region, fcPosition int64) (int, error) {
	if t.used >= len(t.regions) {
		return 0, fatal(newInvariantViolation("insert called on a full table (used=%d)", t.used))
	}
	beforeIdx, hasBefore := t.closestBefore(r.start, fcPosition)
	afterIdx, hasAfter := t.closestAfter(r.start, fcPosition)
	if hasBefore && hasAfter && afterIdx != beforeIdx+1 {
		return 0, fatal(newInvariantViolation("non-adjacent neighbors at insertion point: before=%d after=%d", beforeIdx, afterIdx))
	}

	var at int
	switch {
	case hasAfter:
		at = afterIdx
	case hasBefore:
		at = beforeIdx + 1
	default:
		at = 0
	}

	wasEmpty := t.used == 0
	copy(t.regions[at+1:t.used+1], t.regions[at:t.used])
	t.regions[at] = r
	t.used++
	switch {
	case wasEmpty:
		t.active = 0
	case t.active >= at:
		t.active++
	}
	return at, nil
}

// delete removes slot e, shifting later slots left by one.
func (t *regionTable) delete(e int) {
	if t.active == e {
		if e > 0 {
			t.active = e - 1
		} else {
			t.active = 0
		}
	} else if t.active > e {
		t.active--
	}
	copy(t.regions[e:t.used-1], t.regions[e+1:t.used])
	t.regions[t.used-1] = region{}
	t.used--
	if t.active >= t.used && t.used > 0 {
		t.active = t.used - 1
	}
}
