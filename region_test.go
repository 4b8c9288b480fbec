package vmap

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// S1 — Clamp table (spec.md §8).
func TestClampTable(t *testing.T) {
	require.Equal(t, int64(20), clamp(10, 20, 30))
	require.Equal(t, int64(20), clamp(20, 20, 30))
	require.Equal(t, int64(25), clamp(25, 20, 30))
	require.Equal(t, int64(30), clamp(30, 20, 30))
	require.Equal(t, int64(30), clamp(40, 20, 30))
}

func TestClampIdempotentAndMonotone(t *testing.T) {
	const min, max = int64(10), int64(100)
	for _, r := range []int64{-5, 0, 10, 50, 100, 1000} {
		c := clamp(r, min, max)
		require.Equal(t, c, clamp(c, min, max), "clamp must be idempotent for r=%d", r)
	}
	prev := clamp(-100, min, max)
	for r := int64(-100); r <= 200; r += 7 {
		cur := clamp(r, min, max)
		require.True(t, cur >= prev, "clamp must be monotone: r=%d gave %d < previous %d", r, cur, prev)
		prev = cur
	}
}

func TestRegionEncompassesBoundaries(t *testing.T) {
	r := newRegion(100, &fakeBuffer{window: make([]byte, 10)}) // [100,109]
	require.True(t, r.encompasses(100))
	require.True(t, r.encompasses(109))
	require.False(t, r.encompasses(110))
	require.False(t, r.encompasses(99))
}

func TestZeroCapacityRegionNeverEncompasses(t *testing.T) {
	r := newRegion(42, &fakeBuffer{window: nil})
	require.Equal(t, int64(42), r.end) // degenerate: end == start when capacity == 0
	for _, p := range []int64{41, 42, 43} {
		require.False(t, r.encompasses(p))
	}
}

func TestBeforeAfterComplementOutsideSpan(t *testing.T) {
	r := newRegion(10, &fakeBuffer{window: make([]byte, 5)}) // [10,14]
	require.True(t, r.isBefore(15))
	require.False(t, r.isAfter(15))
	require.True(t, r.isAfter(9))
	require.False(t, r.isBefore(9))
	// Inside the span neither predicate fires.
	require.False(t, r.isBefore(12))
	require.False(t, r.isAfter(12))
}

func TestUseCountSaturates(t *testing.T) {
	r := newRegion(0, &fakeBuffer{window: make([]byte, 1)})
	r.useCount = ^uint64(0)
	r.bump()
	require.Equal(t, ^uint64(0), r.useCount)
}
