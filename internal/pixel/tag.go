// Package pixel holds the pixel type catalog, the owning/borrowed byte
// container, and the decoded Image value that every Blight decoder
// produces (spec §3, §4.1).
package pixel

// Tag names a pixel layout, either one Blight can hand back to a caller
// (canonical output tags and a handful of in-memory pass-through tags) or
// one that only describes how bytes sit in a source file before transfer.
type Tag uint8

const (
	// Canonical output tags: the only layouts a decoded Image may carry.
	RGBA32 Tag = iota // 4x8-bit RGBA
	RGB16             // 5-6-5 packed in one 16-bit word
	R8                // 8-bit greyscale
	R16               // 16-bit greyscale

	// Auxiliary in-memory-only layouts, pass-through only.
	RGBA128F
	RGBA128
	R32F
	RG64F
	BGR24
	BGR32

	// Source-only tags: describe file byte layout prior to transfer.
	U8_R
	U16_R
	U16_RGB   // 565
	U16_RGB15 // 555
	U16_RGBA  // custom mask
	U24_RGB
	U32_RGB
	U32_RGBA
)

var names = [...]string{
	RGBA32: "RGBA32", RGB16: "RGB16", R8: "R8", R16: "R16",
	RGBA128F: "RGBA128F", RGBA128: "RGBA128", R32F: "R32F", RG64F: "RG64F",
	BGR24: "BGR24", BGR32: "BGR32",
	U8_R: "U8_R", U16_R: "U16_R", U16_RGB: "U16_RGB", U16_RGB15: "U16_RGB15",
	U16_RGBA: "U16_RGBA", U24_RGB: "U24_RGB", U32_RGB: "U32_RGB", U32_RGBA: "U32_RGBA",
}

func (t Tag) String() string {
	if int(t) < len(names) && names[t] != "" {
		return names[t]
	}
	return "Tag(invalid)"
}

// Size returns the number of bytes one pixel of this tag occupies.
func (t Tag) Size() int {
	switch t {
	case RGBA32, U32_RGB, U32_RGBA:
		return 4
	case RGB16, R16, U16_R, U16_RGB, U16_RGB15, U16_RGBA:
		return 2
	case R8, U8_R:
		return 1
	case BGR24, U24_RGB:
		return 3
	case BGR32:
		return 4
	case RGBA128F, RGBA128:
		return 16
	case R32F:
		return 4
	case RG64F:
		return 8
	default:
		return 0
	}
}

// IsColor reports whether the tag carries distinct R/G/B channels, as
// opposed to a single greyscale channel.
func (t Tag) IsColor() bool {
	switch t {
	case R8, R16, U8_R, U16_R, R32F:
		return false
	default:
		return true
	}
}

// HasAlpha reports whether the tag carries an alpha channel.
func (t Tag) HasAlpha() bool {
	switch t {
	case RGBA32, RGBA128F, RGBA128, U16_RGBA, U32_RGBA:
		return true
	default:
		return false
	}
}

// CanonicalOutput reports whether t is one of the four tags a decoded
// Image is allowed to carry.
func (t Tag) CanonicalOutput() bool {
	switch t {
	case RGBA32, RGB16, R8, R16:
		return true
	default:
		return false
	}
}
