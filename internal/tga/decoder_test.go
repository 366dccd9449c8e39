package tga

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TraceMyers/Blight/internal/pixel"
	"github.com/TraceMyers/Blight/internal/source"
)

// buildRleTrueColorTGA assembles a minimal V1 (footerless) 24-bit RLE
// true-color TGA: a 1-wide, 2-tall image with a default (bottom-left)
// origin, each row encoded as its own one-pixel raw packet.
func buildRleTrueColorTGA(bottomBGR, topBGR [3]byte) []byte {
	buf := make([]byte, headerLen)
	buf[0] = 0 // IDLength
	buf[1] = 0 // ColorMapType
	buf[2] = byte(ImageTypeRleTrueColor)
	// ColorMapSpec left zero
	buf[8], buf[9] = 0, 0   // OriginX
	buf[10], buf[11] = 0, 0 // OriginY
	buf[12], buf[13] = 1, 0 // Width = 1
	buf[14], buf[15] = 2, 0 // Height = 2
	buf[16] = 24            // Depth
	buf[17] = 0              // Descriptor: bottom-left origin

	// Scan order for a bottom-origin image starts at the bottom row.
	buf = append(buf, 0x00) // raw packet, count=1
	buf = append(buf, bottomBGR[:]...)
	buf = append(buf, 0x00) // raw packet, count=1
	buf = append(buf, topBGR[:]...)
	return buf
}

func TestDecodeRLETrueColor(t *testing.T) {
	red := [3]byte{0, 0, 255}  // BGR on disk -> RGB red
	blue := [3]byte{255, 0, 0} // BGR on disk -> RGB blue
	buf := buildRleTrueColorTGA(red, blue)

	img, err := Decode(source.NewMemSource(buf), nil)
	require.NoError(t, err)
	require.NotNil(t, img)
	assert.Equal(t, pixel.RGBA32, img.Pixels.Tag())
	assert.Equal(t, uint32(1), img.Width)
	assert.Equal(t, uint32(2), img.Height)

	top := img.Pixels.Row(0, 1)
	bottom := img.Pixels.Row(1, 1)
	assert.Equal(t, []byte{0, 0, 255, 255}, top)
	assert.Equal(t, []byte{255, 0, 0, 255}, bottom)
}

func TestDecodeRejectsUnsupportedImageType(t *testing.T) {
	buf := buildRleTrueColorTGA([3]byte{0, 0, 0}, [3]byte{0, 0, 0})
	buf[2] = 42
	_, err := Decode(source.NewMemSource(buf), nil)
	assert.Error(t, err)
}
