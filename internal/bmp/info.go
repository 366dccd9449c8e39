// Package bmp decodes Windows/OS2 Bitmap files (spec §4.2): the 14-byte
// file header, one of four info-header variants, an optional channel-mask
// block, an optional color table, and row-padded pixel data under RGB,
// BITFIELDS, ALPHABITFIELDS, RLE4 or RLE8 compression.
package bmp

import "github.com/TraceMyers/Blight/internal/transfer"

// Variant names which DIB info-header layout a file uses.
type Variant uint8

const (
	VariantCore Variant = iota // OS/2 1.x, 12-byte header
	VariantV1                  // BITMAPINFOHEADER, 40-byte header
	VariantV4                  // BITMAPV4HEADER, 108-byte header
	VariantV5                  // BITMAPV5HEADER, 124-byte header
)

// Compression names a BMP compression tag. Values mirror the on-disk
// biCompression field (spec §4.2 phase 3); only RGB, RLE8, RLE4,
// BitFields and AlphaBitFields are supported, the rest are recognized so
// Info can distinguish "unsupported" from "invalid".
type Compression uint32

const (
	CompressionRGB Compression = iota
	CompressionRLE8
	CompressionRLE4
	CompressionBitFields
	CompressionJPEG
	CompressionPNG
	CompressionAlphaBitFields
	CompressionCMYK
	CompressionCMYKRLE8
	CompressionCMYKRLE4
)

func (v Variant) String() string {
	switch v {
	case VariantCore:
		return "Core"
	case VariantV1:
		return "V1"
	case VariantV4:
		return "V4"
	case VariantV5:
		return "V5"
	default:
		return "Variant(invalid)"
	}
}

func (c Compression) String() string {
	switch c {
	case CompressionRGB:
		return "RGB"
	case CompressionRLE8:
		return "RLE8"
	case CompressionRLE4:
		return "RLE4"
	case CompressionBitFields:
		return "BitFields"
	case CompressionJPEG:
		return "JPEG"
	case CompressionPNG:
		return "PNG"
	case CompressionAlphaBitFields:
		return "AlphaBitFields"
	case CompressionCMYK:
		return "CMYK"
	case CompressionCMYKRLE8:
		return "CMYKRLE8"
	case CompressionCMYKRLE4:
		return "CMYKRLE4"
	default:
		return "Compression(invalid)"
	}
}

func (c Compression) supported() bool {
	switch c {
	case CompressionRGB, CompressionRLE4, CompressionRLE8, CompressionBitFields, CompressionAlphaBitFields:
		return true
	default:
		return false
	}
}

// CIEXYZTriple holds the optional V4/V5 color-space primaries, stored as
// raw fixed-point 2.30 values (not interpreted further — color management
// is out of scope per spec §1 non-goals).
type CIEXYZTriple struct {
	RedX, RedY, RedZ       uint32
	GreenX, GreenY, GreenZ uint32
	BlueX, BlueY, BlueZ    uint32
}

// Info is the decoded BMP header state (spec §3 "BitmapInfo"). It
// satisfies pixel.FileInfo.
type Info struct {
	FileSize    uint32
	DataOffset  uint32
	Variant     Variant
	Width       int32
	Height      int32 // positive after parsing; a negative stored height sets TopDown
	Depth       uint16
	Compression Compression
	DataSize    uint32
	ColorCount  uint32
	Masks       transfer.Masks
	ColorSpace  uint32
	CIEXYZ      *CIEXYZTriple
	Gamma       [3]uint32
	ProfileData struct {
		Offset, Size uint32
		Present      bool
	}
	TopDown bool
}

func (*Info) isFileInfo() {}

// AbsHeight returns the image height, independent of row direction.
func (i *Info) AbsHeight() int32 {
	if i.Height < 0 {
		return -i.Height
	}
	return i.Height
}

// RowSize returns the byte length of one padded pixel row (spec §4.2
// phase 5): ((width*depth+31)/32)*4.
func RowSize(width int, depth int) int {
	return ((width*depth + 31) / 32) * 4
}
