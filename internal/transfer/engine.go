// Package transfer implements the Color Transfer Engine (spec §4.5): it
// reads one source pixel from a byte cursor under either standard channel
// positions or custom bitfield masks, and writes one destination pixel in
// one of the four canonical output layouts. It is built as a table of
// closures indexed by (inTag, outTag) rather than monomorphized generics —
// see SPEC_FULL.md §4 for why — and is invoked row-at-a-time by both the
// BMP and TGA decoders.
package transfer

import (
	"encoding/binary"

	"github.com/TraceMyers/Blight/internal/errs"
	"github.com/TraceMyers/Blight/internal/pixel"
)

// colorVal is the engine's internal per-pixel representation: 8-bit RGBA
// channels plus, for genuinely 16-bit greyscale sources, the untruncated
// 16-bit value (so a U16_R -> R16 transfer keeps full precision instead of
// bouncing through an 8-bit intermediate).
type colorVal struct {
	R, G, B, A uint8
	Grey16     uint16
	HasGrey16  bool
}

// Engine reads pixels of InTag and writes pixels of OutTag.
type Engine struct {
	InTag  pixel.Tag
	OutTag pixel.Tag
	read   func(src []byte) colorVal
	write  func(cv colorVal, dst []byte)
}

// New builds an Engine using the standard fixed bit positions for inTag
// (spec §4.5 "Standard" construction mode). alphaMask is 0 when the
// source has no alpha channel, or the channel's mask (e.g. 0xFF000000)
// when it does; it is only consulted for U32_RGBA.
func New(inTag, outTag pixel.Tag, alphaMask uint32) (*Engine, error) {
	read, err := standardReader(inTag, alphaMask)
	if err != nil {
		return nil, err
	}
	write, err := writerFor(outTag)
	if err != nil {
		return nil, err
	}
	return &Engine{InTag: inTag, OutTag: outTag, read: read, write: write}, nil
}

// NewFromInfo builds an Engine that reads inTag using caller-supplied
// BITFIELDS/ALPHABITFIELDS masks (spec §4.5 "FromInfo" construction mode).
func NewFromInfo(inTag, outTag pixel.Tag, masks Masks) (*Engine, error) {
	read, err := maskedReader(inTag, masks)
	if err != nil {
		return nil, err
	}
	write, err := writerFor(outTag)
	if err != nil {
		return nil, err
	}
	return &Engine{InTag: inTag, OutTag: outTag, read: read, write: write}, nil
}

// TransferRow reads count source pixels from src and writes count
// destination pixels into dst.
func (e *Engine) TransferRow(src []byte, dst []byte, count int) error {
	inSize := e.InTag.Size()
	outSize := e.OutTag.Size()
	if len(src) < count*inSize || len(dst) < count*outSize {
		return errs.New(errs.UnexpectedEndOfImageBuffer, "transfer: row")
	}
	for i := 0; i < count; i++ {
		cv := e.read(src[i*inSize : (i+1)*inSize])
		e.write(cv, dst[i*outSize:(i+1)*outSize])
	}
	return nil
}

func standardReader(inTag pixel.Tag, alphaMask uint32) (func([]byte) colorVal, error) {
	switch inTag {
	case pixel.U8_R:
		return func(src []byte) colorVal {
			g := src[0]
			return colorVal{R: g, G: g, B: g, A: 255}
		}, nil
	case pixel.U16_R:
		return func(src []byte) colorVal {
			v := binary.LittleEndian.Uint16(src)
			hi := uint8(v >> 8)
			return colorVal{R: hi, G: hi, B: hi, A: 255, Grey16: v, HasGrey16: true}
		}, nil
	case pixel.U16_RGB:
		ss := newShiftSet(StandardMasks(16, true, 0))
		return func(src []byte) colorVal {
			return ss.read(uint32(binary.LittleEndian.Uint16(src)))
		}, nil
	case pixel.U16_RGB15:
		ss := newShiftSet(StandardMasks(16, false, 0))
		return func(src []byte) colorVal {
			return ss.read(uint32(binary.LittleEndian.Uint16(src)))
		}, nil
	case pixel.U24_RGB:
		return func(src []byte) colorVal {
			// BMP/TGA store 24-bit pixels in BGR order.
			return colorVal{R: src[2], G: src[1], B: src[0], A: 255}
		}, nil
	case pixel.U32_RGB:
		return func(src []byte) colorVal {
			return colorVal{R: src[2], G: src[1], B: src[0], A: 255}
		}, nil
	case pixel.U32_RGBA:
		if alphaMask == 0 {
			return func(src []byte) colorVal {
				return colorVal{R: src[2], G: src[1], B: src[0], A: 255}
			}, nil
		}
		ss := newShiftSet(StandardMasks(32, false, alphaMask))
		return func(src []byte) colorVal {
			return ss.read(binary.LittleEndian.Uint32(src))
		}, nil
	default:
		return nil, errs.New(errs.NoImageTypeAttachedToPixelTag, "transfer: standard reader")
	}
}

func maskedReader(inTag pixel.Tag, masks Masks) (func([]byte) colorVal, error) {
	ss := newShiftSet(masks)
	switch inTag {
	case pixel.U16_RGB, pixel.U16_RGB15, pixel.U16_RGBA:
		return func(src []byte) colorVal {
			return ss.read(uint32(binary.LittleEndian.Uint16(src)))
		}, nil
	case pixel.U32_RGB, pixel.U32_RGBA:
		return func(src []byte) colorVal {
			return ss.read(binary.LittleEndian.Uint32(src))
		}, nil
	default:
		return nil, errs.New(errs.NoImageTypeAttachedToPixelTag, "transfer: masked reader")
	}
}

// grey8 implements the spec §4.5 "Source color → greyscale destination"
// rule: grey = (r+g+b)/3 using widened arithmetic. This also happens to be
// exact for every greyscale source (R==G==B already), so it is used
// uniformly rather than branching on whether the source was color or grey.
func (cv colorVal) grey8() uint8 {
	return uint8((int(cv.R) + int(cv.G) + int(cv.B)) / 3)
}

// grey16 implements the R16-destination half of the same rule: a genuine
// 16-bit greyscale source keeps its full precision, everything else is
// scaled up by 257 to fill the 16-bit range.
func (cv colorVal) grey16() uint16 {
	if cv.HasGrey16 {
		return cv.Grey16
	}
	return uint16(cv.grey8()) * 257
}

func writerFor(outTag pixel.Tag) (func(colorVal, []byte), error) {
	switch outTag {
	case pixel.RGBA32:
		return func(cv colorVal, dst []byte) {
			dst[0], dst[1], dst[2], dst[3] = cv.R, cv.G, cv.B, cv.A
		}, nil
	case pixel.RGB16:
		return func(cv colorVal, dst []byte) {
			v := uint16(cv.R>>3)<<11 | uint16(cv.G>>2)<<5 | uint16(cv.B>>3)
			binary.LittleEndian.PutUint16(dst, v)
		}, nil
	case pixel.R8:
		return func(cv colorVal, dst []byte) {
			dst[0] = cv.grey8()
		}, nil
	case pixel.R16:
		return func(cv colorVal, dst []byte) {
			binary.LittleEndian.PutUint16(dst, cv.grey16())
		}, nil
	default:
		return nil, errs.New(errs.NoImageTypeAttachedToPixelTag, "transfer: writer")
	}
}
