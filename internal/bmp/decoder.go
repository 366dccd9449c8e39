package bmp

import (
	"github.com/TraceMyers/Blight/internal/errs"
	"github.com/TraceMyers/Blight/internal/pixel"
	"github.com/TraceMyers/Blight/internal/source"
	"github.com/TraceMyers/Blight/internal/transfer"
)

// Decode runs the full BMP decode pipeline (spec §4.2) against src and
// returns a filled Image using one of the tags allowed permits (nil means
// "allow everything").
func Decode(src source.Source, allowed map[pixel.Tag]bool) (*pixel.Image, error) {
	buf, err := src.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(buf) < fileHeaderLen+4 {
		return nil, errs.New(errs.InvalidSizeForFormat, "bmp: decode")
	}
	_, dataOffset, err := parseFileHeader(buf)
	if err != nil {
		return nil, err
	}

	headerSize := le32(buf[14:18])
	info, afterMasks, err := parseInfoHeader(buf, headerSize)
	if err != nil {
		return nil, err
	}

	var palette *pixel.Container
	paletteEnd := afterMasks
	if info.Depth == 1 || info.Depth == 4 || info.Depth == 8 {
		palette, paletteEnd, err = parsePalette(buf, afterMasks, info)
		if err != nil {
			return nil, err
		}
	}
	minDataOffset := uint32(paletteEnd)
	if dataOffset == 0 || dataOffset < minDataOffset {
		return nil, errs.New(errs.BmpInvalidBytesInInfoHeader, "bmp: data offset")
	}
	if int64(dataOffset) > int64(len(buf)) {
		return nil, errs.New(errs.UnexpectedEOF, "bmp: data offset")
	}

	width := int(info.Width)
	height := int(info.AbsHeight())

	var selectFrom pixel.Tag
	var src16or32 sourcing
	if palette != nil {
		selectFrom = palette.Tag()
	} else {
		src16or32, err = sourceTag(info)
		if err != nil {
			return nil, err
		}
		selectFrom = src16or32.tag
	}
	outTag, err := transfer.SelectOutputTag(selectFrom, allowed)
	if err != nil {
		return nil, err
	}

	pixels, err := pixel.Allocate(outTag, width*height)
	if err != nil {
		return nil, err
	}

	data := buf[dataOffset:]
	switch info.Compression {
	case CompressionRLE4, CompressionRLE8:
		if palette == nil {
			return nil, errs.New(errs.BmpInvalidColorTable, "bmp: rle without palette")
		}
		if err := decodeRLE(data, info.Depth, width, height, info.TopDown, palette, outTag, pixels); err != nil {
			return nil, err
		}
	default:
		var engine *transfer.Engine
		if palette == nil {
			if src16or32.fromMasks {
				engine, err = transfer.NewFromInfo(src16or32.tag, outTag, info.Masks)
			} else {
				engine, err = transfer.New(src16or32.tag, outTag, src16or32.alphaMask)
			}
			if err != nil {
				return nil, err
			}
		}
		if err := decodeRows(data, info, width, height, palette, outTag, engine, pixels); err != nil {
			return nil, err
		}
	}

	img := &pixel.Image{
		Width:    uint32(width),
		Height:   uint32(height),
		Alpha:    alphaPolicy(outTag, info),
		Pixels:   pixels,
		FileInfo: info,
	}
	if err := img.Validate(); err != nil {
		return nil, err
	}
	return img, nil
}

func alphaPolicy(outTag pixel.Tag, info *Info) pixel.Alpha {
	if !outTag.HasAlpha() {
		return pixel.AlphaNone
	}
	if info.Masks.A != 0 {
		return pixel.AlphaNormal
	}
	return pixel.AlphaNone
}

// decodeRows handles every non-RLE compression mode: each row in file
// order is transferred via the Color Transfer Engine (or, for palette
// images, the palette row transfer) into the corresponding destination
// row, chosen once per image by the bottom-up/top-down rule (spec §4.2
// phase 7, §9 "Bidirectional row traversal").
func decodeRows(data []byte, info *Info, width, height int, palette *pixel.Container, outTag pixel.Tag, engine *transfer.Engine, pixels *pixel.Container) error {
	rowSize := RowSize(width, int(info.Depth))
	y, step := height-1, -1
	if info.TopDown {
		y, step = 0, 1
	}

	for r := 0; r < height; r, y = r+1, y+step {
		start := r * rowSize
		if start+rowSize > len(data) {
			return errs.New(errs.UnexpectedEOF, "bmp: pixel data")
		}
		row := data[start : start+rowSize]
		dstRow := pixels.Row(y, width)
		if palette != nil {
			iw := indexWidthFor(info.Depth)
			if err := transfer.TransferPaletteRow(outTag, iw, row, palette, dstRow, width); err != nil {
				return err
			}
			continue
		}
		if err := engine.TransferRow(row, dstRow, width); err != nil {
			return err
		}
	}
	return nil
}

func indexWidthFor(depth uint16) transfer.IndexWidth {
	switch depth {
	case 1:
		return transfer.Index1
	case 4:
		return transfer.Index4
	default:
		return transfer.Index8
	}
}
