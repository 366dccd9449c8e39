package tga

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TraceMyers/Blight/internal/errs"
	"github.com/TraceMyers/Blight/internal/source"
)

// TestOverlappingExtensionArea covers spec §8 scenario 5: a V2 footer whose
// signature matches but whose extension-area offset points back into the
// header region fails with OverlappingData rather than silently re-reading
// already-claimed bytes.
func TestOverlappingExtensionArea(t *testing.T) {
	const total = 600
	buf := make([]byte, total)

	buf[2] = byte(ImageTypeTrueColor)
	binary.LittleEndian.PutUint16(buf[5:7], extensionAreaLen) // forged size marker inside the header
	binary.LittleEndian.PutUint16(buf[12:14], 1)               // Width
	binary.LittleEndian.PutUint16(buf[14:16], 1)                // Height
	buf[16] = 24                                                 // Depth

	footerOff := total - footerLen
	binary.LittleEndian.PutUint32(buf[footerOff:footerOff+4], 5) // ExtensionAreaOffset -> overlaps header
	copy(buf[footerOff+8:footerOff+footerLen], tgaSignature)

	_, err := Decode(source.NewMemSource(buf), nil)
	require.Error(t, err)
	terr, ok := err.(*errs.Error)
	require.True(t, ok, "expected *errs.Error, got %T", err)
	assert.Equal(t, errs.OverlappingData, terr.Kind)
}
