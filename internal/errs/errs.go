// Package errs defines the closed error taxonomy shared by every Blight
// decoder. Callers are expected to pattern-match on Kind rather than on
// error message text.
package errs

import "fmt"

// Kind identifies one member of Blight's closed error taxonomy. The zero
// value is never returned by a decoder.
type Kind uint16

const (
	_ Kind = iota

	// Path / IO
	FullPathTooLong
	UnexpectedEOF
	PartialRead

	// Policy
	FormatDisabled
	InputFormatDisallowed
	OutputFormatDisallowed
	NoImageFormatsAllowed
	AllocTooLarge

	// Inference
	UnableToInferFormat
	UnableToVerifyFileImageFormat
	InvalidFileExtension

	// Structural
	InvalidSizeForFormat
	OverlappingData
	UnexpectedEndOfImageBuffer
	DimensionTooLarge

	// BMP-specific
	BmpInvalidBytesInFileHeader
	BmpInvalidBytesInInfoHeader
	BmpInvalidHeaderSizeOrVersionUnsupported
	BmpInvalidSizeInfo
	BmpInvalidColorDepth
	BmpInvalidColorCount
	BmpInvalidColorTable
	BmpColorSpaceUnsupported
	BmpCompressionUnsupported
	BmpInvalidCompression
	BmpInvalidColorMasks
	BmpRLECoordinatesOutOfBounds
	BmpInvalidRLEData

	// TGA-specific
	TgaImageTypeUnsupported
	TgaColorMapDataInNonColorMapImage
	TgaNonStandardColorTableUnsupported
	TgaNonStandardColorDepthUnsupported
	TgaNonStandardColorDepthForPixelFormat
	TgaColorTableImageNot8BitColorDepth
	TgaNoData
	TgaFlavorUnsupported

	// Container
	NotEmptyOnCreate
	InactivePixelTag
	NoImageTypeAttachedToPixelTag

	// Color transfer
	InvalidColorTableIndex
)

var kindNames = map[Kind]string{
	FullPathTooLong:                           "FullPathTooLong",
	UnexpectedEOF:                             "UnexpectedEOF",
	PartialRead:                               "PartialRead",
	FormatDisabled:                            "FormatDisabled",
	InputFormatDisallowed:                     "InputFormatDisallowed",
	OutputFormatDisallowed:                    "OutputFormatDisallowed",
	NoImageFormatsAllowed:                     "NoImageFormatsAllowed",
	AllocTooLarge:                             "AllocTooLarge",
	UnableToInferFormat:                       "UnableToInferFormat",
	UnableToVerifyFileImageFormat:             "UnableToVerifyFileImageFormat",
	InvalidFileExtension:                      "InvalidFileExtension",
	InvalidSizeForFormat:                      "InvalidSizeForFormat",
	OverlappingData:                           "OverlappingData",
	UnexpectedEndOfImageBuffer:                "UnexpectedEndOfImageBuffer",
	DimensionTooLarge:                         "DimensionTooLarge",
	BmpInvalidBytesInFileHeader:               "BmpInvalidBytesInFileHeader",
	BmpInvalidBytesInInfoHeader:               "BmpInvalidBytesInInfoHeader",
	BmpInvalidHeaderSizeOrVersionUnsupported:  "BmpInvalidHeaderSizeOrVersionUnsupported",
	BmpInvalidSizeInfo:                        "BmpInvalidSizeInfo",
	BmpInvalidColorDepth:                      "BmpInvalidColorDepth",
	BmpInvalidColorCount:                      "BmpInvalidColorCount",
	BmpInvalidColorTable:                      "BmpInvalidColorTable",
	BmpColorSpaceUnsupported:                  "BmpColorSpaceUnsupported",
	BmpCompressionUnsupported:                 "BmpCompressionUnsupported",
	BmpInvalidCompression:                     "BmpInvalidCompression",
	BmpInvalidColorMasks:                      "BmpInvalidColorMasks",
	BmpRLECoordinatesOutOfBounds:              "BmpRLECoordinatesOutOfBounds",
	BmpInvalidRLEData:                         "BmpInvalidRLEData",
	TgaImageTypeUnsupported:                   "TgaImageTypeUnsupported",
	TgaColorMapDataInNonColorMapImage:         "TgaColorMapDataInNonColorMapImage",
	TgaNonStandardColorTableUnsupported:       "TgaNonStandardColorTableUnsupported",
	TgaNonStandardColorDepthUnsupported:       "TgaNonStandardColorDepthUnsupported",
	TgaNonStandardColorDepthForPixelFormat:    "TgaNonStandardColorDepthForPixelFormat",
	TgaColorTableImageNot8BitColorDepth:       "TgaColorTableImageNot8BitColorDepth",
	TgaNoData:                                 "TgaNoData",
	TgaFlavorUnsupported:                      "TgaFlavorUnsupported",
	NotEmptyOnCreate:                          "NotEmptyOnCreate",
	InactivePixelTag:                          "InactivePixelTag",
	NoImageTypeAttachedToPixelTag:             "NoImageTypeAttachedToPixelTag",
	InvalidColorTableIndex:                    "InvalidColorTableIndex",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", uint16(k))
}

// Error is the concrete error type returned by every Blight decoder. Op
// names the phase or function that raised it ("bmp: info header",
// "tga: extension area", ...). Err, when non-nil, is the lower-level cause
// (typically an I/O error wrapped with github.com/pkg/errors for a stack
// trace) and is reachable through errors.Unwrap.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("blight: %s: %s: %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("blight: %s: %s", e.Op, e.Kind)
}

func (e *Error) Unwrap() error { return e.Err }

// New builds an *Error for a kind that has no underlying cause.
func New(kind Kind, op string) *Error {
	return &Error{Kind: kind, Op: op}
}

// Wrap builds an *Error tagging cause with kind at op.
func Wrap(kind Kind, op string, cause error) *Error {
	if cause == nil {
		return New(kind, op)
	}
	return &Error{Kind: kind, Op: op, Err: cause}
}
