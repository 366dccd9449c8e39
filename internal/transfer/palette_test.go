package transfer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TraceMyers/Blight/internal/pixel"
)

func TestExtractIndicesIndex4HighOrderFirst(t *testing.T) {
	packed := []byte{0x12, 0x30}
	indices := ExtractIndices(Index4, packed, 3)
	assert.Equal(t, []uint8{0x1, 0x2, 0x3}, indices)
}

func TestExtractIndicesIndex1(t *testing.T) {
	packed := []byte{0b10110000}
	indices := ExtractIndices(Index1, packed, 4)
	assert.Equal(t, []uint8{1, 0, 1, 1}, indices)
}

func TestWritePaletteIndexRGBA32(t *testing.T) {
	pal, err := pixel.Allocate(pixel.RGBA32, 2)
	require.NoError(t, err)
	copy(pal.Bytes(), []byte{10, 20, 30, 255, 40, 50, 60, 255})

	dst := make([]byte, 4)
	require.NoError(t, WritePaletteIndex(pixel.RGBA32, pal, 1, dst))
	assert.Equal(t, []byte{40, 50, 60, 255}, dst)
}

func TestWritePaletteIndexRejectsOutOfRange(t *testing.T) {
	pal, err := pixel.Allocate(pixel.R8, 2)
	require.NoError(t, err)
	err = WritePaletteIndex(pixel.RGBA32, pal, 5, make([]byte, 4))
	assert.Error(t, err)
}

func TestTransferPaletteRow(t *testing.T) {
	pal, err := pixel.Allocate(pixel.R8, 3)
	require.NoError(t, err)
	copy(pal.Bytes(), []byte{0, 128, 255})

	dst := make([]byte, 12)
	err = TransferPaletteRow(pixel.RGBA32, Index8, []byte{2, 1, 0}, pal, dst, 3)
	require.NoError(t, err)
	assert.Equal(t, []byte{255, 255, 255, 255, 128, 128, 128, 255, 0, 0, 0, 255}, dst)
}
