package tga

import (
	"github.com/TraceMyers/Blight/internal/errs"
	"github.com/TraceMyers/Blight/internal/pixel"
)

// sourceTag implements spec §4.7's TGA half of the source-tag selection
// table. Color-map images are handled by the caller (the palette itself,
// built in header.go, supplies the source tag).
func sourceTag(h Header) (pixel.Tag, error) {
	switch h.ImageType {
	case ImageTypeTrueColor, ImageTypeRleTrueColor:
		switch h.ImageSpec.Depth {
		case 15:
			return pixel.U16_RGB15, nil
		case 16:
			return pixel.U16_RGB, nil
		case 24:
			return pixel.U24_RGB, nil
		case 32:
			if h.ImageSpec.AlphaBits() > 0 {
				return pixel.U32_RGBA, nil
			}
			return pixel.U32_RGB, nil
		default:
			return 0, errs.New(errs.TgaNonStandardColorDepthUnsupported, "tga: truecolor depth")
		}
	case ImageTypeGreyscale, ImageTypeRleGreyscale:
		switch h.ImageSpec.Depth {
		case 8:
			return pixel.U8_R, nil
		case 15, 16:
			return pixel.U16_R, nil
		default:
			return 0, errs.New(errs.TgaNonStandardColorDepthUnsupported, "tga: greyscale depth")
		}
	case ImageTypeColorMap, ImageTypeRleColorMap:
		if h.ImageSpec.Depth != 8 {
			return 0, errs.New(errs.TgaColorTableImageNot8BitColorDepth, "tga: color map depth")
		}
		return pixel.RGBA32, nil // overridden by the actual palette tag by the caller
	default:
		return 0, errs.New(errs.TgaImageTypeUnsupported, "tga: image type")
	}
}
