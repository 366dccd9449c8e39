package blight

import (
	"image"

	"github.com/TraceMyers/Blight/internal/errs"
)

// AsStdImage adapts img to the standard library's image.Image, grounded in
// how the teacher's decoder hands back image.NewRGBA/image.NewGray results
// (reader.go decodeRGB/decodeNRGBA). RGBA32 and R8 are wrapped without
// copying; RGB16 is expanded once into an *image.RGBA since the standard
// library has no packed-565 model, and R16 is copied once into an
// *image.Gray16 because Gray16 stores samples big-endian while R16 is
// little-endian.
func AsStdImage(img *Image) (image.Image, error) {
	if img == nil || img.Empty() {
		return nil, errs.New(errs.UnexpectedEndOfImageBuffer, "blight: as std image")
	}
	w, h := int(img.Width), int(img.Height)
	rect := image.Rect(0, 0, w, h)
	switch img.Pixels.Tag() {
	case RGBA32:
		return &image.RGBA{Pix: img.Pixels.Bytes(), Stride: w * 4, Rect: rect}, nil
	case R8:
		return &image.Gray{Pix: img.Pixels.Bytes(), Stride: w, Rect: rect}, nil
	case RGB16:
		out := image.NewRGBA(rect)
		src := img.Pixels.Bytes()
		for i := 0; i < w*h; i++ {
			v := uint16(src[2*i]) | uint16(src[2*i+1])<<8
			r := uint8((v>>11)&0x1F) << 3
			g := uint8((v>>5)&0x3F) << 2
			b := uint8(v&0x1F) << 3
			out.Pix[4*i], out.Pix[4*i+1], out.Pix[4*i+2], out.Pix[4*i+3] = r, g, b, 0xFF
		}
		return out, nil
	case R16:
		out := image.NewGray16(rect)
		src := img.Pixels.Bytes()
		for i := 0; i < w*h; i++ {
			v := uint16(src[2*i]) | uint16(src[2*i+1])<<8
			out.Pix[2*i] = uint8(v >> 8)
			out.Pix[2*i+1] = uint8(v)
		}
		return out, nil
	default:
		return nil, errs.New(errs.InvalidFileExtension, "blight: as std image")
	}
}
