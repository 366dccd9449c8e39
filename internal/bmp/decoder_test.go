package bmp

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TraceMyers/Blight/internal/pixel"
	"github.com/TraceMyers/Blight/internal/source"
)

// buildV1BMP assembles a minimal, uncompressed 24-bit BITMAPINFOHEADER BMP.
// rows is given top-to-bottom (row 0 is the logical top of the image). A
// positive stored height means the file itself is bottom-up (rows written
// bottom-first, the BMP default); a negative stored height means top-down
// (spec §4.2 phase 7 "Bidirectional row traversal", §3 "sign of height
// selects read direction").
func buildV1BMP(width, height int, rows [][3]byte, bottomUp bool) []byte {
	rowSize := RowSize(width, 24)
	dataOffset := fileHeaderLen + v1InfoLen
	dataSize := rowSize * height
	buf := make([]byte, dataOffset+dataSize)

	copy(buf[0:2], "BM")
	binary.LittleEndian.PutUint32(buf[2:6], uint32(len(buf)))
	binary.LittleEndian.PutUint32(buf[10:14], uint32(dataOffset))

	binary.LittleEndian.PutUint32(buf[14:18], v1InfoLen)
	binary.LittleEndian.PutUint32(buf[18:22], uint32(width))
	h := int32(height)
	if !bottomUp {
		h = -h
	}
	binary.LittleEndian.PutUint32(buf[22:26], uint32(h))
	binary.LittleEndian.PutUint16(buf[26:28], 1)  // planes
	binary.LittleEndian.PutUint16(buf[28:30], 24) // depth
	// compression (0=RGB) left zero

	fileRows := make([][3]byte, len(rows))
	copy(fileRows, rows)
	if bottomUp {
		for i, j := 0, len(fileRows)-1; i < j; i, j = i+1, j-1 {
			fileRows[i], fileRows[j] = fileRows[j], fileRows[i]
		}
	}

	for y, px := range fileRows {
		off := dataOffset + y*rowSize
		buf[off], buf[off+1], buf[off+2] = px[2], px[1], px[0] // BGR on disk
	}
	return buf
}

func TestDecode24BitBottomUp(t *testing.T) {
	// Logical top row: red, logical bottom row: blue (1-pixel-wide, 2-row
	// image; file stores the bottom row first).
	red := [3]byte{255, 0, 0}
	blue := [3]byte{0, 0, 255}
	buf := buildV1BMP(1, 2, [][3]byte{red, blue}, true)

	img, err := Decode(source.NewMemSource(buf), nil)
	require.NoError(t, err)
	require.NotNil(t, img)
	assert.Equal(t, pixel.RGBA32, img.Pixels.Tag())
	assert.Equal(t, uint32(1), img.Width)
	assert.Equal(t, uint32(2), img.Height)

	top := img.Pixels.Row(0, 1)
	bottom := img.Pixels.Row(1, 1)
	assert.Equal(t, []byte{255, 0, 0, 255}, top)
	assert.Equal(t, []byte{0, 0, 255, 255}, bottom)
}

func TestDecodeTopDownPreservesRowOrder(t *testing.T) {
	red := [3]byte{255, 0, 0}
	blue := [3]byte{0, 0, 255}
	buf := buildV1BMP(1, 2, [][3]byte{red, blue}, false)

	img, err := Decode(source.NewMemSource(buf), nil)
	require.NoError(t, err)

	top := img.Pixels.Row(0, 1)
	bottom := img.Pixels.Row(1, 1)
	assert.Equal(t, []byte{255, 0, 0, 255}, top)
	assert.Equal(t, []byte{0, 0, 255, 255}, bottom)
}

func TestDecodeRejectsShortFile(t *testing.T) {
	_, err := Decode(source.NewMemSource([]byte{'B', 'M'}), nil)
	assert.Error(t, err)
}
