package bmp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TraceMyers/Blight/internal/pixel"
)

func greyPalette(t *testing.T, values ...byte) *pixel.Container {
	t.Helper()
	pal, err := pixel.Allocate(pixel.R8, len(values))
	require.NoError(t, err)
	copy(pal.Bytes(), values)
	return pal
}

// TestDecodeRLE8AbsoluteAndRun exercises one encoded (run-length) packet
// followed by one absolute-mode packet and an EOF marker, within a single
// row (spec §4.2 "RLE8 / RLE4 decoding").
func TestDecodeRLE8AbsoluteAndRun(t *testing.T) {
	palette := greyPalette(t, 0, 50, 100, 150, 200)
	data := []byte{
		3, 1, // encoded: 3x index 1
		0, 3, 2, 3, 4, 0, // absolute: indices 2,3,4, padded with a 0 byte
		0, 1, // EOF
	}
	dst, err := pixel.Allocate(pixel.R8, 6)
	require.NoError(t, err)

	err = decodeRLE(data, 8, 6, 1, true, palette, pixel.R8, dst)
	require.NoError(t, err)
	assert.Equal(t, []byte{50, 50, 50, 100, 150, 200}, dst.Bytes())
}

func TestDecodeRLE8DeltaMove(t *testing.T) {
	palette := greyPalette(t, 0, 75)
	data := []byte{
		1, 1, // x=0: index 1
		0, 2, 2, 0, // delta: dx=2, dy=0 -> x=3
		1, 1, // x=3: index 1
		0, 1, // EOF
	}
	dst, err := pixel.Allocate(pixel.R8, 4)
	require.NoError(t, err)

	err = decodeRLE(data, 8, 4, 1, true, palette, pixel.R8, dst)
	require.NoError(t, err)
	assert.Equal(t, []byte{75, 0, 0, 75}, dst.Bytes())
}

func TestDecodeRLETruncatedStreamFails(t *testing.T) {
	palette := greyPalette(t, 0, 75)
	dst, err := pixel.Allocate(pixel.R8, 4)
	require.NoError(t, err)

	err = decodeRLE([]byte{1, 1}, 8, 4, 1, true, palette, pixel.R8, dst)
	assert.Error(t, err)
}
