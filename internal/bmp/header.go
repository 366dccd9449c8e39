// Derived from Go which is licensed as follows:
//
// Copyright (c) 2009 The Go Authors. All rights reserved.
//
// Redistribution and use in source and binary forms, with or without
// modification, are permitted provided that the following conditions are
// met:
//
//   * Redistributions of source code must retain the above copyright
// notice, this list of conditions and the following disclaimer.
//   * Redistributions in binary form must reproduce the above
// copyright notice, this list of conditions and the following disclaimer
// in the documentation and/or other materials provided with the
// distribution.
//   * Neither the name of Google Inc. nor the names of its
// contributors may be used to endorse or promote products derived from
// this software without specific prior written permission.
//
// THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
// "AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
// LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
// A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
// OWNER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
// SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
// LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
// DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
// THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
// (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
// OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

package bmp

import (
	"encoding/binary"

	"github.com/TraceMyers/Blight/internal/errs"
	"github.com/TraceMyers/Blight/internal/pixel"
	"github.com/TraceMyers/Blight/internal/transfer"
)

const (
	fileHeaderLen    = 14
	coreInfoLen      = 12
	v1InfoLen        = 40
	v4InfoLen        = 108
	v5InfoLen        = 124
	minColorMaskLen  = 12 // 3x uint32, BITFIELDS on a BITMAPINFOHEADER
	alphaColorMaskLn = 16 // 4x uint32, ALPHABITFIELDS on a BITMAPINFOHEADER
)

func le16(b []byte) uint16 { return binary.LittleEndian.Uint16(b) }
func le32(b []byte) uint32 { return binary.LittleEndian.Uint32(b) }

// parseFileHeader validates the 14-byte BITMAPFILEHEADER and returns the
// declared file size and pixel-data offset (spec §4.2 phase 2).
func parseFileHeader(buf []byte) (fileSize, dataOffset uint32, err error) {
	if len(buf) < fileHeaderLen+4 {
		return 0, 0, errs.New(errs.InvalidSizeForFormat, "bmp: file header")
	}
	if string(buf[:2]) != "BM" {
		return 0, 0, errs.New(errs.BmpInvalidBytesInFileHeader, "bmp: file header")
	}
	if le32(buf[6:10]) != 0 {
		return 0, 0, errs.New(errs.BmpInvalidBytesInFileHeader, "bmp: file header reserved")
	}
	return le32(buf[2:6]), le32(buf[10:14]), nil
}

// variantFor maps a declared DIB header size to a Variant (spec §4.2
// phase 2: "12 ⇒ Core; 40 ⇒ V1; 108 ⇒ V4; 124 ⇒ V5. Any other value
// fails.").
func variantFor(headerSize uint32) (Variant, int, bool) {
	switch headerSize {
	case coreInfoLen:
		return VariantCore, coreInfoLen, true
	case v1InfoLen:
		return VariantV1, v1InfoLen, true
	case v4InfoLen:
		return VariantV4, v4InfoLen, true
	case v5InfoLen:
		return VariantV5, v5InfoLen, true
	default:
		return 0, 0, false
	}
}

var compressionNames = map[uint32]Compression{
	0: CompressionRGB, 1: CompressionRLE8, 2: CompressionRLE4, 3: CompressionBitFields,
	4: CompressionJPEG, 5: CompressionPNG, 6: CompressionAlphaBitFields,
	7: CompressionCMYK, 8: CompressionCMYKRLE8, 9: CompressionCMYKRLE4,
}

// parseInfoHeader parses the DIB header (whichever variant) and, when
// present, the following channel-mask block. buf must contain at least
// through the end of the info header; buf is indexed from the start of
// the file (offsets match spec §4.2 verbatim).
func parseInfoHeader(buf []byte, headerSize uint32) (*Info, int, error) {
	variant, hlen, ok := variantFor(headerSize)
	if !ok {
		return nil, 0, errs.New(errs.BmpInvalidHeaderSizeOrVersionUnsupported, "bmp: info header")
	}
	if len(buf) < fileHeaderLen+hlen {
		return nil, 0, errs.New(errs.InvalidSizeForFormat, "bmp: info header")
	}
	info := &Info{Variant: variant}
	var colorsUsed uint32
	if variant == VariantCore {
		info.Width = int32(int16(le16(buf[18:20])))
		info.Height = int32(int16(le16(buf[20:22])))
		if le16(buf[22:24]) != 1 {
			return nil, 0, errs.New(errs.BmpInvalidBytesInInfoHeader, "bmp: planes")
		}
		info.Depth = le16(buf[24:26])
		info.Compression = CompressionRGB
	} else {
		info.Width = int32(le32(buf[18:22]))
		info.Height = int32(le32(buf[22:26]))
		if le16(buf[26:28]) != 1 {
			return nil, 0, errs.New(errs.BmpInvalidBytesInInfoHeader, "bmp: planes")
		}
		info.Depth = le16(buf[28:30])
		compRaw := le32(buf[30:34])
		comp, known := compressionNames[compRaw]
		if !known {
			return nil, 0, errs.New(errs.BmpInvalidCompression, "bmp: compression")
		}
		info.Compression = comp
		info.DataSize = le32(buf[34:38])
		colorsUsed = le32(buf[46:50])
	}
	info.ColorCount = colorsUsed

	maskEnd := fileHeaderLen + hlen
	switch variant {
	case VariantV4, VariantV5:
		info.Masks = transfer.Masks{
			R: le32(buf[54:58]),
			G: le32(buf[58:62]),
			B: le32(buf[62:66]),
			A: le32(buf[66:70]),
		}
		info.ColorSpace = le32(buf[70:74])
		if info.ColorSpace == 0 { // LCS_CALIBRATED_RGB: endpoints + gamma are meaningful
			info.CIEXYZ = &CIEXYZTriple{
				RedX: le32(buf[74:78]), RedY: le32(buf[78:82]), RedZ: le32(buf[82:86]),
				GreenX: le32(buf[86:90]), GreenY: le32(buf[90:94]), GreenZ: le32(buf[94:98]),
				BlueX: le32(buf[98:102]), BlueY: le32(buf[102:106]), BlueZ: le32(buf[106:110]),
			}
			info.Gamma = [3]uint32{le32(buf[110:114]), le32(buf[114:118]), le32(buf[118:122])}
		}
		if variant == VariantV5 {
			info.ProfileData.Offset = le32(buf[126:130])
			info.ProfileData.Size = le32(buf[130:134])
			info.ProfileData.Present = info.ProfileData.Size > 0
		}
	case VariantV1:
		if info.Compression == CompressionBitFields || info.Compression == CompressionAlphaBitFields {
			maskLen := minColorMaskLen
			if info.Compression == CompressionAlphaBitFields {
				maskLen = alphaColorMaskLn
			}
			if len(buf) < maskEnd+maskLen {
				return nil, 0, errs.New(errs.InvalidSizeForFormat, "bmp: color masks")
			}
			info.Masks.R = le32(buf[maskEnd : maskEnd+4])
			info.Masks.G = le32(buf[maskEnd+4 : maskEnd+8])
			info.Masks.B = le32(buf[maskEnd+8 : maskEnd+12])
			if maskLen == alphaColorMaskLn {
				info.Masks.A = le32(buf[maskEnd+12 : maskEnd+16])
			}
			maskEnd += maskLen
		}
	}

	if info.Height < 0 {
		info.Height = -info.Height
		info.TopDown = true
	}
	if info.Width <= 0 || info.Height <= 0 {
		return nil, 0, errs.New(errs.BmpInvalidSizeInfo, "bmp: dimensions")
	}
	if !info.Compression.supported() {
		return nil, 0, errs.New(errs.BmpCompressionUnsupported, "bmp: compression")
	}
	switch info.Depth {
	case 1, 4, 8, 16, 24, 32:
	default:
		return nil, 0, errs.New(errs.BmpInvalidColorDepth, "bmp: depth")
	}
	if (info.Compression == CompressionRLE4 && info.Depth != 4) || (info.Compression == CompressionRLE8 && info.Depth != 8) {
		return nil, 0, errs.New(errs.BmpInvalidCompression, "bmp: rle depth mismatch")
	}
	if info.Compression == CompressionBitFields || info.Compression == CompressionAlphaBitFields {
		if info.Depth != 16 && info.Depth != 32 {
			return nil, 0, errs.New(errs.BmpInvalidCompression, "bmp: bitfields depth")
		}
		if !info.Masks.Disjoint() || !info.Masks.FitsWithin(int(info.Depth)) {
			return nil, 0, errs.New(errs.BmpInvalidColorMasks, "bmp: channel masks")
		}
	}
	return info, maskEnd, nil
}

// paletteEntryCount applies spec §4.2 phase 4's count rule: "stated
// color_ct if 2 ≤ ct ≤ 2^depth, else 2^depth".
func paletteEntryCount(depth uint16, declared uint32) uint32 {
	max := uint32(1) << depth
	if declared >= 2 && declared <= max {
		return declared
	}
	return max
}

// parsePalette reads the color table following the info header/mask block
// and collapses it to an R8 greyscale palette when every entry has
// r == g == b (spec §4.2 phase 4).
func parsePalette(buf []byte, off int, info *Info) (*pixel.Container, int, error) {
	if info.Depth != 1 && info.Depth != 4 && info.Depth != 8 {
		return nil, off, nil
	}
	count := paletteEntryCount(info.Depth, info.ColorCount)
	entrySize := 4
	if info.Variant == VariantCore {
		entrySize = 3
	}
	end := off + int(count)*entrySize
	if end > len(buf) {
		return nil, off, errs.New(errs.BmpInvalidColorCount, "bmp: color table")
	}
	grey := true
	for i := uint32(0); i < count; i++ {
		e := buf[off+int(i)*entrySize:]
		if e[0] != e[1] || e[1] != e[2] {
			grey = false
			break
		}
	}
	if grey {
		pal, err := pixel.Allocate(pixel.R8, int(count))
		if err != nil {
			return nil, off, err
		}
		for i := uint32(0); i < count; i++ {
			e := buf[off+int(i)*entrySize:]
			pal.Bytes()[i] = e[0]
		}
		return pal, end, nil
	}
	pal, err := pixel.Allocate(pixel.RGBA32, int(count))
	if err != nil {
		return nil, off, err
	}
	for i := uint32(0); i < count; i++ {
		e := buf[off+int(i)*entrySize:]
		p := pal.Bytes()[i*4 : i*4+4]
		p[0], p[1], p[2], p[3] = e[2], e[1], e[0], 0xFF
	}
	return pal, end, nil
}
