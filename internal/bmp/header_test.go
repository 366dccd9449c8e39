package bmp

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/TraceMyers/Blight/internal/errs"
	"github.com/TraceMyers/Blight/internal/source"
)

// TestInvalidDataOffset covers spec §8 scenario 4: a BMP whose declared
// data_offset is zero or points inside the info-header region fails with
// BmpInvalidBytesInInfoHeader.
func TestInvalidDataOffset(t *testing.T) {
	build := func(dataOffset uint32) []byte {
		buf := make([]byte, fileHeaderLen+v1InfoLen+4)
		copy(buf[0:2], "BM")
		binary.LittleEndian.PutUint32(buf[2:6], uint32(len(buf)))
		binary.LittleEndian.PutUint32(buf[10:14], dataOffset)
		binary.LittleEndian.PutUint32(buf[14:18], v1InfoLen)
		binary.LittleEndian.PutUint32(buf[18:22], 1)
		binary.LittleEndian.PutUint32(buf[22:26], 1)
		binary.LittleEndian.PutUint16(buf[26:28], 1)
		binary.LittleEndian.PutUint16(buf[28:30], 24)
		return buf
	}

	for _, offset := range []uint32{0, fileHeaderLen, fileHeaderLen + v1InfoLen - 1} {
		buf := build(offset)
		_, err := Decode(source.NewMemSource(buf), nil)
		require := assert.New(t)
		require.Error(err)
		berr, ok := err.(*errs.Error)
		require.True(ok, "expected *errs.Error, got %T", err)
		require.Equal(errs.BmpInvalidBytesInInfoHeader, berr.Kind)
	}
}

func TestVariantForRejectsUnknownHeaderSize(t *testing.T) {
	_, _, ok := variantFor(99)
	assert.False(t, ok)
}
