package extent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TraceMyers/Blight/internal/errs"
)

func TestTryInsertRejectsOverlap(t *testing.T) {
	b := New(100)
	require.NoError(t, b.TryInsert(0, 18, "header"))
	err := b.TryInsert(10, 30, "overlap")
	require.Error(t, err)
	eerr, ok := err.(*errs.Error)
	require.True(t, ok)
	assert.Equal(t, errs.OverlappingData, eerr.Kind)
}

func TestTryInsertRejectsPastFileSize(t *testing.T) {
	b := New(100)
	err := b.TryInsert(90, 200, "too far")
	require.Error(t, err)
	eerr, ok := err.(*errs.Error)
	require.True(t, ok)
	assert.Equal(t, errs.UnexpectedEOF, eerr.Kind)
}

func TestTryInsertKeepsEntriesOrdered(t *testing.T) {
	b := New(100)
	require.NoError(t, b.TryInsert(50, 60, "c"))
	require.NoError(t, b.TryInsert(0, 10, "a"))
	require.NoError(t, b.TryInsert(20, 30, "b"))

	entries := b.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, uint32(0), entries[0].Begin)
	assert.Equal(t, uint32(20), entries[1].Begin)
	assert.Equal(t, uint32(50), entries[2].Begin)
}

func TestIsReserved(t *testing.T) {
	b := New(100)
	require.NoError(t, b.TryInsert(10, 20, "block"))
	assert.True(t, b.IsReserved(15, 25))
	assert.False(t, b.IsReserved(20, 30))
}

func TestNextReservedAfter(t *testing.T) {
	b := New(100)
	require.NoError(t, b.TryInsert(0, 18, "header"))
	require.NoError(t, b.TryInsert(50, 70, "footer"))

	assert.Equal(t, uint32(50), b.NextReservedAfter(18))
	assert.Equal(t, uint32(100), b.NextReservedAfter(70))
}

func TestTryInsertCapacityExhausted(t *testing.T) {
	b := New(10000)
	for i := 0; i < maxEntries; i++ {
		begin := uint32(i * 10)
		require.NoError(t, b.TryInsert(begin, begin+5, "fill"))
	}
	err := b.TryInsert(uint32(maxEntries*10), uint32(maxEntries*10+5), "overflow")
	require.Error(t, err)
	eerr, ok := err.(*errs.Error)
	require.True(t, ok)
	assert.Equal(t, errs.OverlappingData, eerr.Kind)
}
