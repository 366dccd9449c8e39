package pixel

import "github.com/TraceMyers/Blight/internal/errs"

// Alpha describes how a decoded image's alpha channel, if any, should be
// interpreted.
type Alpha uint8

const (
	AlphaNone Alpha = iota
	AlphaNormal
	AlphaPremultiplied
)

// FileInfo is implemented by format-specific decoded header info (BMP's
// Info, TGA's Info). It exists purely so Image can hold either without
// internal/pixel importing internal/bmp or internal/tga (which would
// create an import cycle, since both import internal/pixel).
type FileInfo interface {
	isFileInfo()
}

// Image is the uniform in-memory decode result (spec §3).
type Image struct {
	Width    uint32
	Height   uint32
	Alpha    Alpha
	Pixels   *Container
	FileInfo FileInfo
}

// Empty reports whether this Image holds no pixel buffer.
func (img *Image) Empty() bool {
	return img.Pixels == nil || img.Pixels.Len() == 0
}

// Validate checks the Image invariants from spec §3: byte length equals
// width*height*tag.size(), and the tag is one of the four canonical
// output tags.
func (img *Image) Validate() error {
	if img.Empty() {
		return nil
	}
	if !img.Pixels.Tag().CanonicalOutput() {
		return errs.New(errs.InactivePixelTag, "pixel: validate")
	}
	want := int(img.Width) * int(img.Height) * img.Pixels.Tag().Size()
	if want != len(img.Pixels.Bytes()) {
		return errs.New(errs.UnexpectedEndOfImageBuffer, "pixel: validate")
	}
	return nil
}
