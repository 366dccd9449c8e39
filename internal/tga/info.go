// Package tga decodes Truevision Targa files (spec §4.3): an optional
// 26-byte V2 footer, the 18-byte header trio, an optional V2 extension
// area and scanline/color-correction tables, an optional image id, an
// optional color map, and pixel data under six image types with and
// without run-length packet encoding.
package tga

import "github.com/TraceMyers/Blight/internal/pixel"

// FileType distinguishes a footerless V1 file from a V2 file carrying the
// "TRUEVISION-XFILE." signature.
type FileType uint8

const (
	FileTypeV1 FileType = iota
	FileTypeV2
)

func (t FileType) String() string {
	if t == FileTypeV2 {
		return "V2"
	}
	return "V1"
}

// ImageType is the on-disk image_type byte (spec §4.3 phase 2).
type ImageType uint8

const (
	ImageTypeNone          ImageType = 0
	ImageTypeColorMap      ImageType = 1
	ImageTypeTrueColor     ImageType = 2
	ImageTypeGreyscale     ImageType = 3
	ImageTypeRleColorMap   ImageType = 9
	ImageTypeRleTrueColor  ImageType = 10
	ImageTypeRleGreyscale  ImageType = 11
)

func (t ImageType) supported() bool {
	switch t {
	case ImageTypeColorMap, ImageTypeTrueColor, ImageTypeGreyscale,
		ImageTypeRleColorMap, ImageTypeRleTrueColor, ImageTypeRleGreyscale:
		return true
	default:
		return false
	}
}

func (t ImageType) rle() bool {
	return t == ImageTypeRleColorMap || t == ImageTypeRleTrueColor || t == ImageTypeRleGreyscale
}

func (t ImageType) isColorMap() bool {
	return t == ImageTypeColorMap || t == ImageTypeRleColorMap
}

// ColorMapSpec is the 5-byte color map specification in the header trio.
type ColorMapSpec struct {
	FirstIndex uint16
	Length     uint16
	EntryBits  uint8
}

// ImageSpec is the 10-byte image specification in the header trio.
type ImageSpec struct {
	OriginX, OriginY uint16
	Width, Height    uint16
	Depth            uint8
	Descriptor       uint8
}

// AlphaBits returns the number of attribute (alpha) bits per pixel coded
// in the low 4 bits of the descriptor byte.
func (s ImageSpec) AlphaBits() int { return int(s.Descriptor & 0x0F) }

// OriginTop reports whether row 0 in the pixel stream is the top of the
// image (descriptor bit 5).
func (s ImageSpec) OriginTop() bool { return s.Descriptor&0x20 != 0 }

// OriginRight reports whether column 0 in the pixel stream is the right
// edge of the image (descriptor bit 4).
func (s ImageSpec) OriginRight() bool { return s.Descriptor&0x10 != 0 }

// Header is the 18-byte header trio.
type Header struct {
	IDLength     uint8
	ColorMapType uint8
	ImageType    ImageType
	ColorMapSpec ColorMapSpec
	ImageSpec    ImageSpec
}

// Footer is the optional 26-byte V2 trailer.
type Footer struct {
	ExtensionAreaOffset uint32
	DeveloperAreaOffset uint32
}

// ExtensionArea is the optional 495-byte V2 metadata block.
type ExtensionArea struct {
	Author               string
	Comments             [4]string
	Year, Month, Day     uint16
	Hour, Minute, Second uint16
	JobName              string
	JobHours, JobMinutes, JobSeconds uint16
	SoftwareID           string
	SoftwareVersion      uint16
	SoftwareVersionLetter byte
	KeyColor             uint32
	AspectRatioNum, AspectRatioDenom uint16
	GammaNum, GammaDenom uint16
	ColorCorrectionOffset uint32
	PostageStampOffset    uint32
	ScanLineOffset        uint32
	AttributeType         uint8
}

// Info is the decoded TGA header state (spec §3 "TgaInfo"). It satisfies
// pixel.FileInfo.
type Info struct {
	FileType              FileType
	FileSize              int64
	Header                Header
	Footer                *Footer
	ExtensionArea         *ExtensionArea
	ScanlineTable         []uint32
	ColorCorrectionTable  [][4]uint16 // ARGB per entry
	ImageID               []byte
	ColorMap              *pixel.Container
	Alpha                 pixel.Alpha
}

func (*Info) isFileInfo() {}
