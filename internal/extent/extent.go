// Package extent implements the fixed-capacity, overlap-rejecting block
// list the TGA decoder uses to enforce that footer, extension area,
// image-id, color map, optional tables, and pixel data occupy disjoint
// byte ranges of the file (spec §4.3, §4.4).
package extent

import (
	"sort"

	"github.com/TraceMyers/Blight/internal/errs"
)

// maxEntries covers TGA's documented "≤ 10 entries" with headroom; the
// buffer never grows past this, matching the stack-resident requirement
// in spec §5 ("The Extent Tracker is stack-resident (fixed capacity)").
const maxEntries = 16

// Block is a half-open byte range [Begin, End).
type Block struct {
	Begin uint32
	End   uint32
}

func (b Block) overlaps(o Block) bool {
	return b.Begin < o.End && o.Begin < b.End
}

// Buffer is an ordered, overlap-free list of Blocks.
type Buffer struct {
	entries [maxEntries]Block
	n       int
	size    int64
}

// New returns a Buffer that rejects any range extending past fileSize.
func New(fileSize int64) *Buffer {
	return &Buffer{size: fileSize}
}

// TryInsert validates [begin, end) against the file size and every
// previously inserted range, then inserts it keeping the list ordered by
// Begin. It fails with UnexpectedEOF if end exceeds the file size and with
// OverlappingData if the new range intersects any existing one.
func (b *Buffer) TryInsert(begin, end uint32, op string) error {
	if begin >= end {
		return errs.New(errs.OverlappingData, op)
	}
	if int64(end) > b.size {
		return errs.New(errs.UnexpectedEOF, op)
	}
	if b.n >= maxEntries {
		return errs.New(errs.OverlappingData, op)
	}
	nb := Block{Begin: begin, End: end}
	for i := 0; i < b.n; i++ {
		if b.entries[i].overlaps(nb) {
			return errs.New(errs.OverlappingData, op)
		}
	}
	b.entries[b.n] = nb
	b.n++
	sort.Slice(b.entries[:b.n], func(i, j int) bool {
		return b.entries[i].Begin < b.entries[j].Begin
	})
	return nil
}

// IsReserved reports whether [begin, end) intersects any recorded range.
func (b *Buffer) IsReserved(begin, end uint32) bool {
	nb := Block{Begin: begin, End: end}
	for i := 0; i < b.n; i++ {
		if b.entries[i].overlaps(nb) {
			return true
		}
	}
	return false
}

// Entries returns the recorded ranges in ascending Begin order.
func (b *Buffer) Entries() []Block {
	return append([]Block(nil), b.entries[:b.n]...)
}

// NextReservedAfter returns the Begin of the first recorded range whose
// Begin is >= from, or fileSize if there is none. The TGA decoder uses
// this to size the pixel-data region: "from end-of-colormap to the first
// reserved extent beyond it (or EOF)" (spec §4.3 phase 7).
func (b *Buffer) NextReservedAfter(from uint32) uint32 {
	best := uint32(b.size)
	for i := 0; i < b.n; i++ {
		if b.entries[i].Begin >= from && b.entries[i].Begin < best {
			best = b.entries[i].Begin
		}
	}
	return best
}
