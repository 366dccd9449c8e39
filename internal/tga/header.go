package tga

import (
	"encoding/binary"

	"github.com/TraceMyers/Blight/internal/errs"
	"github.com/TraceMyers/Blight/internal/extent"
	"github.com/TraceMyers/Blight/internal/pixel"
)

const headerLen = 18

func le16(b []byte) uint16 { return binary.LittleEndian.Uint16(b) }
func le32(b []byte) uint32 { return binary.LittleEndian.Uint32(b) }

// parseHeader reads the 18-byte header trio at the start of the file and
// records it as an extent (spec §4.3 phase 2).
func parseHeader(buf []byte, ext *extent.Buffer) (Header, error) {
	if len(buf) < headerLen {
		return Header{}, errs.New(errs.InvalidSizeForFormat, "tga: header")
	}
	h := Header{
		IDLength:     buf[0],
		ColorMapType: buf[1],
		ImageType:    ImageType(buf[2]),
		ColorMapSpec: ColorMapSpec{
			FirstIndex: le16(buf[3:5]),
			Length:     le16(buf[5:7]),
			EntryBits:  buf[7],
		},
		ImageSpec: ImageSpec{
			OriginX:    le16(buf[8:10]),
			OriginY:    le16(buf[10:12]),
			Width:      le16(buf[12:14]),
			Height:     le16(buf[14:16]),
			Depth:      buf[16],
			Descriptor: buf[17],
		},
	}
	if err := ext.TryInsert(0, headerLen, "tga: header extent"); err != nil {
		return Header{}, err
	}
	if h.ImageSpec.Width == 0 || h.ImageSpec.Height == 0 {
		return Header{}, errs.New(errs.TgaNoData, "tga: dimensions")
	}
	if !h.ImageType.supported() {
		return Header{}, errs.New(errs.TgaImageTypeUnsupported, "tga: image type")
	}
	if h.ImageType.isColorMap() && h.ColorMapType != 1 {
		return Header{}, errs.New(errs.TgaColorMapDataInNonColorMapImage, "tga: color map type")
	}
	return h, nil
}

func colorMapEntrySize(entryBits uint8) (int, error) {
	switch entryBits {
	case 15, 16:
		return 2, nil
	case 24:
		return 3, nil
	case 32:
		return 4, nil
	default:
		return 0, errs.New(errs.TgaNonStandardColorTableUnsupported, "tga: color map entry size")
	}
}

// parseColorMap reads the color map (present iff the image type is
// ColorMap or RleColorMap), collapsing to an R8 greyscale palette when
// every entry has r == g == b (spec §3 "Palette").
func parseColorMap(buf []byte, h Header, ext *extent.Buffer) (*pixel.Container, error) {
	if !h.ImageType.isColorMap() {
		return nil, nil
	}
	entrySize, err := colorMapEntrySize(h.ColorMapSpec.EntryBits)
	if err != nil {
		return nil, err
	}
	start := headerLen + int(h.IDLength)
	count := int(h.ColorMapSpec.Length)
	end := start + count*entrySize
	if end > len(buf) {
		return nil, errs.New(errs.UnexpectedEOF, "tga: color map")
	}
	if count > 0 {
		if err := ext.TryInsert(uint32(start), uint32(end), "tga: color map extent"); err != nil {
			return nil, err
		}
	}

	type rgba struct{ r, g, b, a uint8 }
	entries := make([]rgba, count)
	grey := true
	for i := 0; i < count; i++ {
		e := buf[start+i*entrySize:]
		var c rgba
		switch entrySize {
		case 2:
			v := le16(e[:2])
			c = rgba{
				r: uint8((v&0xF800)>>11) << 3,
				g: uint8((v&0x07E0)>>5) << 2,
				b: uint8(v&0x001F) << 3,
				a: 255,
			}
		case 3:
			c = rgba{r: e[2], g: e[1], b: e[0], a: 255}
		case 4:
			c = rgba{r: e[2], g: e[1], b: e[0], a: e[3]}
		}
		entries[i] = c
		if c.r != c.g || c.g != c.b {
			grey = false
		}
	}

	if grey {
		pal, err := pixel.Allocate(pixel.R8, count)
		if err != nil {
			return nil, err
		}
		for i, c := range entries {
			pal.Bytes()[i] = c.r
		}
		return pal, nil
	}
	pal, err := pixel.Allocate(pixel.RGBA32, count)
	if err != nil {
		return nil, err
	}
	for i, c := range entries {
		p := pal.Bytes()[i*4 : i*4+4]
		p[0], p[1], p[2], p[3] = c.r, c.g, c.b, c.a
	}
	return pal, nil
}

// parseImageID reads the IDLength-byte image identification field
// immediately following the header trio.
func parseImageID(buf []byte, h Header, ext *extent.Buffer) ([]byte, error) {
	if h.IDLength == 0 {
		return nil, nil
	}
	start := headerLen
	end := start + int(h.IDLength)
	if end > len(buf) {
		return nil, errs.New(errs.UnexpectedEOF, "tga: image id")
	}
	if err := ext.TryInsert(uint32(start), uint32(end), "tga: image id extent"); err != nil {
		return nil, err
	}
	return append([]byte(nil), buf[start:end]...), nil
}
