package transfer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TraceMyers/Blight/internal/errs"
	"github.com/TraceMyers/Blight/internal/pixel"
)

func TestSelectOutputTagPrefersRGBA32ForTrueColorSource(t *testing.T) {
	tag, err := SelectOutputTag(pixel.U24_RGB, nil)
	require.NoError(t, err)
	assert.Equal(t, pixel.RGBA32, tag)
}

func TestSelectOutputTagPrefersRGB16ForU16RGBSource(t *testing.T) {
	tag, err := SelectOutputTag(pixel.U16_RGB, nil)
	require.NoError(t, err)
	assert.Equal(t, pixel.RGB16, tag)
}

func TestSelectOutputTagHonorsAllowedMap(t *testing.T) {
	allowed := map[pixel.Tag]bool{pixel.R8: true}
	tag, err := SelectOutputTag(pixel.U24_RGB, allowed)
	require.NoError(t, err)
	assert.Equal(t, pixel.R8, tag)
}

func TestSelectOutputTagFailsWhenNothingAllowed(t *testing.T) {
	_, err := SelectOutputTag(pixel.U24_RGB, map[pixel.Tag]bool{})
	require.Error(t, err)
	eerr, ok := err.(*errs.Error)
	require.True(t, ok)
	assert.Equal(t, errs.NoImageFormatsAllowed, eerr.Kind)
}

func TestSelectOutputTagGreyscaleSource(t *testing.T) {
	tag, err := SelectOutputTag(pixel.U8_R, nil)
	require.NoError(t, err)
	assert.Equal(t, pixel.R8, tag)
}
