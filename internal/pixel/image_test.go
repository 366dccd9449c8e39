package pixel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateAcceptsMatchingDimensions(t *testing.T) {
	c, err := Allocate(RGBA32, 6)
	require.NoError(t, err)
	img := &Image{Width: 3, Height: 2, Pixels: c}
	assert.NoError(t, img.Validate())
}

func TestValidateRejectsMismatchedByteLength(t *testing.T) {
	c, err := Allocate(RGBA32, 6)
	require.NoError(t, err)
	img := &Image{Width: 4, Height: 2, Pixels: c}
	assert.Error(t, img.Validate())
}

func TestValidateRejectsNonCanonicalOutputTag(t *testing.T) {
	c, err := Allocate(U24_RGB, 2)
	require.NoError(t, err)
	img := &Image{Width: 2, Height: 1, Pixels: c}
	assert.Error(t, img.Validate())
}

func TestEmptyImage(t *testing.T) {
	img := &Image{}
	assert.True(t, img.Empty())
	assert.NoError(t, img.Validate())
}
