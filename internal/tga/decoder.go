package tga

import (
	"github.com/TraceMyers/Blight/internal/errs"
	"github.com/TraceMyers/Blight/internal/extent"
	"github.com/TraceMyers/Blight/internal/pixel"
	"github.com/TraceMyers/Blight/internal/source"
	"github.com/TraceMyers/Blight/internal/transfer"
)

// Decode runs the full TGA decode pipeline (spec §4.3) against src and
// returns a filled Image using one of the tags allowed permits (nil means
// "allow everything").
func Decode(src source.Source, allowed map[pixel.Tag]bool) (*pixel.Image, error) {
	buf, err := src.ReadAll()
	if err != nil {
		return nil, err
	}
	size := int64(len(buf))
	ext := extent.New(size)

	footer, err := parseFooter(buf, ext)
	if err != nil {
		return nil, err
	}
	fileType := FileTypeV1
	if footer != nil {
		fileType = FileTypeV2
	}

	header, err := parseHeader(buf, ext)
	if err != nil {
		return nil, err
	}

	var extArea *ExtensionArea
	var scanlines []uint32
	var colorCorrection [][4]uint16
	if footer != nil && footer.ExtensionAreaOffset != 0 {
		extArea, err = parseExtensionArea(buf, footer.ExtensionAreaOffset, ext)
		if err != nil {
			return nil, err
		}
		if extArea != nil {
			if extArea.ScanLineOffset != 0 {
				scanlines, err = parseScanlineTable(buf, extArea.ScanLineOffset, int(header.ImageSpec.Height), ext)
				if err != nil {
					return nil, err
				}
			}
			if extArea.ColorCorrectionOffset != 0 {
				colorCorrection, err = parseColorCorrectionTable(buf, extArea.ColorCorrectionOffset, ext)
				if err != nil {
					return nil, err
				}
			}
		}
	}

	imageID, err := parseImageID(buf, header, ext)
	if err != nil {
		return nil, err
	}

	palette, err := parseColorMap(buf, header, ext)
	if err != nil {
		return nil, err
	}

	width := int(header.ImageSpec.Width)
	height := int(header.ImageSpec.Height)
	total := width * height

	pixelStart := headerLen + int(header.IDLength)
	if palette != nil {
		entrySize, _ := colorMapEntrySize(header.ColorMapSpec.EntryBits)
		pixelStart += int(header.ColorMapSpec.Length) * entrySize
	}
	pixelEnd := int(ext.NextReservedAfter(uint32(pixelStart)))
	if pixelEnd > len(buf) {
		pixelEnd = len(buf)
	}
	if pixelStart >= pixelEnd {
		return nil, errs.New(errs.TgaNoData, "tga: pixel data")
	}

	var srcTag pixel.Tag
	var selectFrom pixel.Tag
	if palette != nil {
		if header.ImageSpec.Depth != 8 {
			return nil, errs.New(errs.TgaColorTableImageNot8BitColorDepth, "tga: color map depth")
		}
		selectFrom = palette.Tag()
	} else {
		srcTag, err = sourceTag(header)
		if err != nil {
			return nil, err
		}
		selectFrom = srcTag
	}
	outTag, err := transfer.SelectOutputTag(selectFrom, allowed)
	if err != nil {
		return nil, err
	}

	unitSize := srcTag.Size()
	if palette != nil {
		unitSize = 1
	}

	if err := ext.TryInsert(uint32(pixelStart), uint32(pixelEnd), "tga: pixel data extent"); err != nil {
		return nil, err
	}

	region := buf[pixelStart:pixelEnd]
	var scanBuf []byte
	if header.ImageType.rle() {
		scanBuf, err = decodePackets(region, total, unitSize)
		if err != nil {
			return nil, err
		}
	} else {
		need := total * unitSize
		if len(region) < need {
			return nil, errs.New(errs.UnexpectedEOF, "tga: pixel data")
		}
		scanBuf = region[:need]
	}

	pixels, err := pixel.Allocate(outTag, total)
	if err != nil {
		return nil, err
	}

	var engine *transfer.Engine
	if palette == nil {
		alphaMask := uint32(0)
		if srcTag == pixel.U32_RGBA {
			alphaMask = 0xFF000000 // BGRA on disk: alpha is the high byte
		}
		engine, err = transfer.New(srcTag, outTag, alphaMask)
		if err != nil {
			return nil, err
		}
	}
	outSize := outTag.Size()
	originTop := header.ImageSpec.OriginTop()
	originRight := header.ImageSpec.OriginRight()
	for i := 0; i < total; i++ {
		row, col := i/width, i%width
		dstY := row
		if !originTop {
			dstY = height - 1 - row
		}
		dstX := col
		if originRight {
			dstX = width - 1 - col
		}
		dst := pixels.Row(dstY, width)[dstX*outSize : (dstX+1)*outSize]
		srcPx := scanBuf[i*unitSize : (i+1)*unitSize]
		if palette != nil {
			if err := transfer.WritePaletteIndex(outTag, palette, int(srcPx[0]), dst); err != nil {
				return nil, err
			}
			continue
		}
		if err := engine.TransferRow(srcPx, dst, 1); err != nil {
			return nil, err
		}
	}

	alpha := attributeAlpha(extArea, int(header.ImageSpec.Depth))
	if !outTag.HasAlpha() {
		alpha = pixel.AlphaNone
	}

	info := &Info{
		FileType:             fileType,
		FileSize:             size,
		Header:               header,
		Footer:               footer,
		ExtensionArea:        extArea,
		ScanlineTable:        scanlines,
		ColorCorrectionTable: colorCorrection,
		ImageID:              imageID,
		ColorMap:             palette,
		Alpha:                alpha,
	}
	img := &pixel.Image{
		Width:    uint32(width),
		Height:   uint32(height),
		Alpha:    alpha,
		Pixels:   pixels,
		FileInfo: info,
	}
	if err := img.Validate(); err != nil {
		return nil, err
	}
	return img, nil
}
