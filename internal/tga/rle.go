package tga

import "github.com/TraceMyers/Blight/internal/errs"

// decodePackets expands a TGA RLE packet stream into total*unitSize raw
// bytes in scan order (spec §4.3 phase 8). Packets are not aligned to
// rows: "a run may straddle rows" (spec §9) — this decoder never checks
// row boundaries, only the total pixel count, which is the simplest
// faithful reading of that note.
func decodePackets(data []byte, total, unitSize int) ([]byte, error) {
	out := make([]byte, total*unitSize)
	i := 0
	written := 0
	for written < total {
		if i >= len(data) {
			return nil, errs.New(errs.UnexpectedEOF, "tga: rle packet")
		}
		header := data[i]
		i++
		count := int(header&0x7F) + 1
		if written+count > total {
			count = total - written
		}
		if header&0x80 != 0 {
			// Run-length packet: one pixel value repeated count times.
			if i+unitSize > len(data) {
				return nil, errs.New(errs.UnexpectedEOF, "tga: rle run packet")
			}
			val := data[i : i+unitSize]
			i += unitSize
			for n := 0; n < count; n++ {
				copy(out[(written+n)*unitSize:(written+n+1)*unitSize], val)
			}
		} else {
			// Raw packet: count literal pixel values follow.
			need := count * unitSize
			if i+need > len(data) {
				return nil, errs.New(errs.UnexpectedEOF, "tga: rle raw packet")
			}
			copy(out[written*unitSize:(written+count)*unitSize], data[i:i+need])
			i += need
		}
		written += count
	}
	return out, nil
}
