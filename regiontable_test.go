package vmap

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func mkRegion(start, length int64) region {
	return newRegion(start, &fakeBuffer{window: make([]byte, length)})
}

func TestRegionTableInsertOrdering(t *testing.T) {
	tbl := newRegionTable(4)
	_, err := tbl.insert(mkRegion(100, 10), 100)
	require.NoError(t, err)
	require.Equal(t, 1, tbl.used)
	require.Equal(t, 0, tbl.active)

	// Insert a region after the first.
	slot, err := tbl.insert(mkRegion(200, 10), 100)
	require.NoError(t, err)
	require.Equal(t, 1, slot)
	require.Equal(t, int64(100), tbl.regions[0].start)
	require.Equal(t, int64(200), tbl.regions[1].start)

	// Insert a region before both.
	slot, err = tbl.insert(mkRegion(0, 10), 100)
	require.NoError(t, err)
	require.Equal(t, 0, slot)
	require.Equal(t, int64(0), tbl.regions[0].start)
	require.Equal(t, int64(100), tbl.regions[1].start)
	require.Equal(t, int64(200), tbl.regions[2].start)

	// Invariant 1: strictly ordered, non-overlapping.
	for i := 0; i < tbl.used-1; i++ {
		require.True(t, tbl.regions[i].end < tbl.regions[i+1].start)
	}
}

func TestRegionTableInsertMiddle(t *testing.T) {
	tbl := newRegionTable(4)
	_, err := tbl.insert(mkRegion(0, 10), 0)
	require.NoError(t, err)
	_, err = tbl.insert(mkRegion(100, 10), 0)
	require.NoError(t, err)
	slot, err := tbl.insert(mkRegion(50, 10), 0)
	require.NoError(t, err)
	require.Equal(t, 1, slot)
	require.Equal(t, []int64{0, 50, 100}, []int64{tbl.regions[0].start, tbl.regions[1].start, tbl.regions[2].start})
}

func TestRegionTableDeleteAdjustsActive(t *testing.T) {
	tbl := newRegionTable(4)
	_, _ = tbl.insert(mkRegion(0, 10), 0)
	_, _ = tbl.insert(mkRegion(10, 10), 0)
	_, _ = tbl.insert(mkRegion(20, 10), 0)
	tbl.active = 2

	tbl.delete(2) // delete the active slot
	require.Equal(t, 2, tbl.used)
	require.Equal(t, 1, tbl.active) // max(0, e-1)

	tbl.active = 0
	tbl.delete(1) // delete a slot after active: active unaffected
	require.Equal(t, 1, tbl.used)
	require.Equal(t, 0, tbl.active)
}

func TestRegionTableDeleteDecrementsUsedByOne(t *testing.T) {
	tbl := newRegionTable(4)
	for i := int64(0); i < 4; i++ {
		_, err := tbl.insert(mkRegion(i*10, 10), 0)
		require.NoError(t, err)
	}
	before := tbl.used
	tbl.delete(1)
	require.Equal(t, before-1, tbl.used)
	// Ordering preserved after deletion.
	for i := 0; i < tbl.used-1; i++ {
		require.True(t, tbl.regions[i].end < tbl.regions[i+1].start)
	}
}

func TestFindCoveringDirectional(t *testing.T) {
	tbl := newRegionTable(4)
	_, _ = tbl.insert(mkRegion(0, 10), 0)   // [0,9]
	_, _ = tbl.insert(mkRegion(10, 10), 0)  // [10,19]
	_, _ = tbl.insert(mkRegion(20, 10), 0)  // [20,29]
	tbl.active = 1

	slot, ok := tbl.findCovering(25, 10) // forward from active
	require.True(t, ok)
	require.Equal(t, 2, slot)

	slot, ok = tbl.findCovering(5, 10) // backward from active
	require.True(t, ok)
	require.Equal(t, 0, slot)

	slot, ok = tbl.findCovering(15, 15) // exact match against active
	require.True(t, ok)
	require.Equal(t, 1, slot)

	_, ok = tbl.findCovering(100, 10)
	require.False(t, ok)
}

func TestClosestBeforeAfterNoNeighbor(t *testing.T) {
	tbl := newRegionTable(4)
	_, _ = tbl.insert(mkRegion(50, 10), 50) // [50,59]

	// Position before the only region: no "before" neighbor exists.
	_, hasBefore := tbl.closestBefore(10, 50)
	require.False(t, hasBefore)
	idx, hasAfter := tbl.closestAfter(10, 50)
	require.True(t, hasAfter)
	require.Equal(t, 0, idx)

	// Position after the only region: no "after" neighbor exists.
	idx, hasBefore = tbl.closestBefore(100, 50)
	require.True(t, hasBefore)
	require.Equal(t, 0, idx)
	_, hasAfter = tbl.closestAfter(100, 50)
	require.False(t, hasAfter)
}
