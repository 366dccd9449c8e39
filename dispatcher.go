package blight

import (
	"bytes"
	"path/filepath"
	"strings"

	"go.uber.org/multierr"

	"github.com/TraceMyers/Blight/internal/bmp"
	"github.com/TraceMyers/Blight/internal/errs"
	"github.com/TraceMyers/Blight/internal/pixel"
	"github.com/TraceMyers/Blight/internal/source"
	"github.com/TraceMyers/Blight/internal/tga"
)

// maxPathLen is a practical bound (Linux PATH_MAX) Load enforces before
// ever touching the filesystem; spec §7 names FullPathTooLong but leaves
// the exact limit to the implementation.
const maxPathLen = 4096

var pngMagic = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

const tgaSignaturePrefix = "TRUEVISION-XFILE"

// extByFormat maps a lowercased trailing file extension to a Format
// (spec §4.1 stage 1).
var extByFormat = map[string]Format{
	"bmp": FormatBmp, "dib": FormatBmp,
	"png": FormatPng,
	"jpg": FormatJpg, "jpeg": FormatJpg,
	"tga": FormatTga, "icb": FormatTga, "vda": FormatTga, "vst": FormatTga, "tpic": FormatTga,
}

// Load opens path/filename, infers or accepts formatHint as the file
// format, and decodes it into an Image (spec §4.1).
func Load(path, filename string, formatHint Format, opts Options) (img *Image, err error) {
	full := filepath.Join(path, filename)
	if !opts.LocalPath {
		abs, aerr := filepath.Abs(full)
		if aerr != nil {
			return nil, errs.Wrap(errs.FullPathTooLong, "blight: load", aerr)
		}
		full = abs
	}
	if len(full) > maxPathLen {
		return nil, errs.New(errs.FullPathTooLong, "blight: load")
	}

	src, oerr := source.Open(full, opts.MaxAllocBytes)
	if oerr != nil {
		return nil, oerr
	}
	defer func() {
		if cerr := source.CloseIfCloser(src); cerr != nil {
			err = multierr.Append(err, cerr)
		}
	}()

	buf, rerr := src.ReadAll()
	if rerr != nil {
		return nil, rerr
	}

	format := formatHint
	if format == Infer {
		f, ferr := inferFormat(filename, buf)
		if ferr != nil {
			return nil, ferr
		}
		format = f
	}
	if !opts.inputAllowed(format) {
		return nil, errs.New(errs.InputFormatDisallowed, "blight: load")
	}

	mem := source.NewMemSource(buf)
	img, derr := decodeByFormat(format, mem, opts.OutputFormatAllowed)
	if derr == nil {
		return img, nil
	}
	if !isExtensionLie(format, derr) {
		return nil, derr
	}

	redirected, ok := inferFromMagic(buf)
	if !ok || redirected == format {
		return nil, derr
	}
	if !opts.inputAllowed(redirected) {
		return nil, errs.New(errs.InputFormatDisallowed, "blight: load (redirect)")
	}
	img, derr = decodeByFormat(redirected, mem, opts.OutputFormatAllowed)
	return img, derr
}

func decodeByFormat(format Format, src source.Source, allowed map[pixel.Tag]bool) (*Image, error) {
	switch format {
	case FormatBmp:
		return bmp.Decode(src, allowed)
	case FormatTga:
		return tga.Decode(src, allowed)
	case FormatPng, FormatJpg:
		return nil, errs.New(errs.FormatDisabled, "blight: decode")
	default:
		return nil, errs.New(errs.UnableToInferFormat, "blight: decode")
	}
}

// inferFormat implements spec §4.1's two-stage inference: extension table
// first, then magic-byte probe.
func inferFormat(filename string, buf []byte) (Format, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	if f, ok := extByFormat[ext]; ok {
		return f, nil
	}
	if f, ok := inferFromMagic(buf); ok {
		return f, nil
	}
	return Infer, errs.New(errs.UnableToInferFormat, "blight: infer format")
}

// inferFromMagic is spec §4.1 stage 2 in isolation, also used by the
// dispatcher's single redirect attempt ("re-infer from content").
func inferFromMagic(buf []byte) (Format, bool) {
	if len(buf) >= 2 && buf[0] == 'B' && buf[1] == 'M' {
		return FormatBmp, true
	}
	if len(buf) >= 8 && bytes.Equal(buf[:8], pngMagic) {
		return FormatPng, true
	}
	if len(buf) >= 26 {
		tail := buf[len(buf)-26:]
		if bytes.HasPrefix(tail[8:], []byte(tgaSignaturePrefix)) {
			return FormatTga, true
		}
	}
	return Infer, false
}

// isExtensionLie reports whether err is the kind of early structural
// failure that means the file's content doesn't match the format the
// dispatcher attempted — i.e. the extension (or hint) lied — and a single
// redirect attempt is worth trying (spec §4.1).
func isExtensionLie(format Format, err error) bool {
	e, ok := err.(*errs.Error)
	if !ok {
		return false
	}
	switch format {
	case FormatBmp:
		switch e.Kind {
		case errs.BmpInvalidBytesInFileHeader, errs.InvalidSizeForFormat:
			return true
		}
	case FormatTga:
		switch e.Kind {
		case errs.InvalidSizeForFormat, errs.TgaImageTypeUnsupported:
			return true
		}
	}
	return false
}
