package bmp

import (
	"github.com/TraceMyers/Blight/internal/errs"
	"github.com/TraceMyers/Blight/internal/pixel"
)

// sourcing describes how to build the Color Transfer Engine for a
// non-palette BMP image: which source Tag to read, and whether the
// engine should be built from the header's explicit channel masks
// (BITFIELDS/ALPHABITFIELDS) or from the standard fixed bit positions.
type sourcing struct {
	tag       pixel.Tag
	fromMasks bool
	alphaMask uint32
}

// sourceTag implements spec §4.7's BMP half of the source-tag selection
// table. Palette-backed depths (1/4/8) are handled by the caller before
// this is consulted.
func sourceTag(info *Info) (sourcing, error) {
	hasAlphaMask := info.Masks.A != 0
	switch info.Depth {
	case 16:
		if info.Compression == CompressionBitFields || info.Compression == CompressionAlphaBitFields {
			if hasAlphaMask {
				return sourcing{tag: pixel.U16_RGBA, fromMasks: true}, nil
			}
			return sourcing{tag: pixel.U16_RGB, fromMasks: true}, nil
		}
		// Standard RGB555 positions (spec §4.2 phase 6).
		return sourcing{tag: pixel.U16_RGB15}, nil
	case 24:
		return sourcing{tag: pixel.U24_RGB}, nil
	case 32:
		if hasAlphaMask {
			if info.Compression == CompressionBitFields || info.Compression == CompressionAlphaBitFields {
				return sourcing{tag: pixel.U32_RGBA, fromMasks: true}, nil
			}
			return sourcing{tag: pixel.U32_RGBA, alphaMask: info.Masks.A}, nil
		}
		if info.Compression == CompressionBitFields || info.Compression == CompressionAlphaBitFields {
			return sourcing{tag: pixel.U32_RGB, fromMasks: true}, nil
		}
		return sourcing{tag: pixel.U32_RGB}, nil
	default:
		return sourcing{}, errs.New(errs.BmpInvalidColorDepth, "bmp: source tag")
	}
}
