package pixel

import "github.com/TraceMyers/Blight/internal/errs"

// Container is a byte buffer tagged with the Tag describing its layout. A
// Container is either owning (it allocated buf and frees it by simply
// letting Go's GC collect it — there is no manual free step in this
// port, unlike the teacher's Zig-shaped allocator scaffolding) or borrowed
// (buf is a view of a caller-supplied region and Container must not
// outlive it).
type Container struct {
	buf      []byte
	tag      Tag
	borrowed bool
}

// Allocate returns an owning Container of count pixels of tag, zeroed.
func Allocate(tag Tag, count int) (*Container, error) {
	size := tag.Size()
	if size == 0 {
		return nil, errs.New(errs.NoImageTypeAttachedToPixelTag, "pixel: allocate")
	}
	return &Container{buf: make([]byte, size*count), tag: tag}, nil
}

// Attach wraps buf as a borrowed Container of tag without copying.
func Attach(tag Tag, buf []byte) (*Container, error) {
	if tag.Size() == 0 {
		return nil, errs.New(errs.NoImageTypeAttachedToPixelTag, "pixel: attach")
	}
	if len(buf)%tag.Size() != 0 {
		return nil, errs.New(errs.UnexpectedEndOfImageBuffer, "pixel: attach")
	}
	return &Container{buf: buf, tag: tag, borrowed: true}, nil
}

// Bytes returns the raw backing buffer.
func (c *Container) Bytes() []byte { return c.buf }

// Tag returns the pixel layout tag.
func (c *Container) Tag() Tag { return c.tag }

// Len returns the number of pixels stored.
func (c *Container) Len() int {
	if c.tag.Size() == 0 {
		return 0
	}
	return len(c.buf) / c.tag.Size()
}

// Borrowed reports whether this Container is a non-owning view.
func (c *Container) Borrowed() bool { return c.borrowed }

// Row returns the byte slice for pixel row y of a width-wide image, i.e.
// a contiguous slice with no destination-side row padding (Blight's
// canonical output formats are always tightly packed).
func (c *Container) Row(y, width int) []byte {
	stride := width * c.tag.Size()
	return c.buf[y*stride : (y+1)*stride]
}
