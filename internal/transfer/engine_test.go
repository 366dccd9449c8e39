package transfer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TraceMyers/Blight/internal/pixel"
)

func TestEngineTransferRowBGRToRGBA32(t *testing.T) {
	e, err := New(pixel.U24_RGB, pixel.RGBA32, 0)
	require.NoError(t, err)

	src := []byte{10, 20, 30, 40, 50, 60} // two BGR pixels
	dst := make([]byte, 8)
	require.NoError(t, e.TransferRow(src, dst, 2))

	assert.Equal(t, []byte{30, 20, 10, 255, 60, 50, 40, 255}, dst)
}

func TestEngineTransferRowColorToGreyscale(t *testing.T) {
	e, err := New(pixel.U24_RGB, pixel.R8, 0)
	require.NoError(t, err)

	src := []byte{0, 0, 255} // BGR -> pure red
	dst := make([]byte, 1)
	require.NoError(t, e.TransferRow(src, dst, 1))

	assert.Equal(t, byte(255/3), dst[0])
}

func TestEngineTransferRowRejectsShortBuffers(t *testing.T) {
	e, err := New(pixel.U24_RGB, pixel.RGBA32, 0)
	require.NoError(t, err)

	err = e.TransferRow([]byte{1, 2}, make([]byte, 4), 1)
	assert.Error(t, err)
}

func TestNewFromInfoMaskedRead(t *testing.T) {
	masks := StandardMasks(16, true, 0) // standard 565
	e, err := NewFromInfo(pixel.U16_RGB, pixel.RGBA32, masks)
	require.NoError(t, err)

	// 0xF800 -> red channel's 5 bits fully on, green/blue off (565 packed,
	// little-endian); a 5-bit max shifts up to 0xF8, not 0xFF.
	src := []byte{0x00, 0xF8}
	dst := make([]byte, 4)
	require.NoError(t, e.TransferRow(src, dst, 1))
	assert.Equal(t, uint8(0xF8), dst[0])
	assert.Equal(t, uint8(0), dst[1])
	assert.Equal(t, uint8(0), dst[2])
}
