package transfer

import "github.com/TraceMyers/Blight/internal/errs"
import "github.com/TraceMyers/Blight/internal/pixel"

// IndexWidth is the bit width of one packed color-table index.
type IndexWidth int

const (
	Index1 IndexWidth = 1
	Index4 IndexWidth = 4
	Index8 IndexWidth = 8
)

// ExtractIndices unpacks count indices of width bits each from packed,
// high-order index first within a byte (spec §4.5
// transfer_color_table_image_row: "unpack the next IndexType ... high-order
// index first within a byte").
func ExtractIndices(width IndexWidth, packed []byte, count int) []uint8 {
	out := make([]uint8, count)
	switch width {
	case Index8:
		copy(out, packed[:count])
	case Index4:
		for i := 0; i < count; i++ {
			b := packed[i/2]
			if i%2 == 0 {
				out[i] = b >> 4
			} else {
				out[i] = b & 0xF
			}
		}
	case Index1:
		for i := 0; i < count; i++ {
			b := packed[i/8]
			bit := 7 - uint(i%8)
			out[i] = (b >> bit) & 1
		}
	}
	return out
}

func paletteColor(palette *pixel.Container, index int) (colorVal, error) {
	if index < 0 || index >= palette.Len() {
		return colorVal{}, errs.New(errs.InvalidColorTableIndex, "transfer: palette lookup")
	}
	switch palette.Tag() {
	case pixel.RGBA32:
		e := palette.Bytes()[index*4 : index*4+4]
		return colorVal{R: e[0], G: e[1], B: e[2], A: e[3]}, nil
	case pixel.R8:
		g := palette.Bytes()[index]
		return colorVal{R: g, G: g, B: g, A: 255}, nil
	default:
		return colorVal{}, errs.New(errs.NoImageTypeAttachedToPixelTag, "transfer: palette tag")
	}
}

// WritePaletteIndex resolves a single palette index to a destination pixel
// of outTag. Used by the BMP RLE state machine, which writes pixels one at
// a time at cursor positions driven by run lengths and delta/absolute
// escapes rather than in a straight row scan (spec §4.2 "RLE8 / RLE4
// decoding").
func WritePaletteIndex(outTag pixel.Tag, palette *pixel.Container, index int, dst []byte) error {
	write, err := writerFor(outTag)
	if err != nil {
		return err
	}
	cv, err := paletteColor(palette, index)
	if err != nil {
		return err
	}
	write(cv, dst)
	return nil
}

// TransferPaletteRow unpacks count palette indices from indexBytes and
// writes count destination pixels of outTag into dst, looking each index
// up in palette (an RGBA32 or R8 container; see spec §4.2 phase 4 for when
// a palette collapses to R8).
func TransferPaletteRow(outTag pixel.Tag, width IndexWidth, indexBytes []byte, palette *pixel.Container, dst []byte, count int) error {
	write, err := writerFor(outTag)
	if err != nil {
		return err
	}
	outSize := outTag.Size()
	if len(dst) < count*outSize {
		return errs.New(errs.UnexpectedEndOfImageBuffer, "transfer: palette row")
	}
	indices := ExtractIndices(width, indexBytes, count)
	for i, idx := range indices {
		cv, err := paletteColor(palette, int(idx))
		if err != nil {
			return err
		}
		write(cv, dst[i*outSize:(i+1)*outSize])
	}
	return nil
}
