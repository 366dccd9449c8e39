package pixel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocateZeroesBuffer(t *testing.T) {
	c, err := Allocate(RGBA32, 4)
	require.NoError(t, err)
	assert.Equal(t, 16, len(c.Bytes()))
	assert.Equal(t, 4, c.Len())
	assert.False(t, c.Borrowed())
}

func TestAllocateRejectsTagWithNoSize(t *testing.T) {
	_, err := Allocate(Tag(255), 4)
	assert.Error(t, err)
}

func TestAttachBorrowsWithoutCopying(t *testing.T) {
	buf := make([]byte, 8)
	c, err := Attach(R16, buf)
	require.NoError(t, err)
	assert.True(t, c.Borrowed())
	assert.Equal(t, 4, c.Len())

	buf[0] = 0xFF
	assert.Equal(t, byte(0xFF), c.Bytes()[0])
}

func TestAttachRejectsMisalignedBuffer(t *testing.T) {
	_, err := Attach(RGBA32, make([]byte, 6))
	assert.Error(t, err)
}

func TestRowSlicesContiguousRegion(t *testing.T) {
	c, err := Allocate(R8, 6)
	require.NoError(t, err)
	copy(c.Bytes(), []byte{1, 2, 3, 4, 5, 6})

	assert.Equal(t, []byte{1, 2, 3}, c.Row(0, 3))
	assert.Equal(t, []byte{4, 5, 6}, c.Row(1, 3))
}
