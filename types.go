package blight

import (
	"github.com/TraceMyers/Blight/internal/bmp"
	"github.com/TraceMyers/Blight/internal/errs"
	"github.com/TraceMyers/Blight/internal/pixel"
	"github.com/TraceMyers/Blight/internal/tga"
)

// PixelTag re-exports internal/pixel.Tag so callers never need to import
// internal/pixel directly.
type PixelTag = pixel.Tag

const (
	RGBA32 = pixel.RGBA32
	RGB16  = pixel.RGB16
	R8     = pixel.R8
	R16    = pixel.R16
)

// Alpha re-exports internal/pixel.Alpha.
type Alpha = pixel.Alpha

const (
	AlphaNone          = pixel.AlphaNone
	AlphaNormal        = pixel.AlphaNormal
	AlphaPremultiplied = pixel.AlphaPremultiplied
)

// Image is the uniform decode result every Blight decoder produces.
type Image = pixel.Image

// BitmapInfo is the decoded BMP header state, reachable via
// Image.FileInfo.(*BitmapInfo) after a successful BMP decode.
type BitmapInfo = bmp.Info

// TgaInfo is the decoded TGA header state, reachable via
// Image.FileInfo.(*TgaInfo) after a successful TGA decode.
type TgaInfo = tga.Info

// Kind re-exports internal/errs.Kind, the closed error taxonomy.
type Kind = errs.Kind

const (
	FullPathTooLong               = errs.FullPathTooLong
	UnexpectedEOF                 = errs.UnexpectedEOF
	PartialRead                   = errs.PartialRead
	FormatDisabled                = errs.FormatDisabled
	InputFormatDisallowed         = errs.InputFormatDisallowed
	OutputFormatDisallowed        = errs.OutputFormatDisallowed
	NoImageFormatsAllowed         = errs.NoImageFormatsAllowed
	AllocTooLarge                 = errs.AllocTooLarge
	UnableToInferFormat           = errs.UnableToInferFormat
	UnableToVerifyFileImageFormat = errs.UnableToVerifyFileImageFormat
	InvalidFileExtension          = errs.InvalidFileExtension
	InvalidSizeForFormat          = errs.InvalidSizeForFormat
	OverlappingData               = errs.OverlappingData
	UnexpectedEndOfImageBuffer    = errs.UnexpectedEndOfImageBuffer
	DimensionTooLarge             = errs.DimensionTooLarge
)

// Error re-exports internal/errs.Error, the concrete error type every
// Blight decoder returns.
type Error = errs.Error

// Format names a raster format the dispatcher can infer or be told to
// decode.
type Format uint8

const (
	// Infer tells Load to determine the format from extension/magic bytes
	// rather than from a caller-supplied hint.
	Infer Format = iota
	FormatBmp
	FormatPng
	FormatTga
	FormatJpg
)

func (f Format) String() string {
	switch f {
	case Infer:
		return "Infer"
	case FormatBmp:
		return "Bmp"
	case FormatPng:
		return "Png"
	case FormatTga:
		return "Tga"
	case FormatJpg:
		return "Jpg"
	default:
		return "Format(invalid)"
	}
}
