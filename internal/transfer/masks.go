package transfer

import "math/bits"

// Masks holds the four (possibly zero) BITFIELDS/ALPHABITFIELDS channel
// masks read from a BMP V4/V5 header, or from the BITFIELDS/ALPHABITFIELDS
// block that follows a 40-byte V1 header (spec §4.2 phase 6). A zero mask means "channel absent".
type Masks struct {
	R, G, B, A uint32
}

// Disjoint reports whether the non-zero masks in m share no bits.
func (m Masks) Disjoint() bool {
	union := uint64(0)
	bitCount := 0
	for _, mask := range [...]uint32{m.R, m.G, m.B, m.A} {
		if mask == 0 {
			continue
		}
		union |= uint64(mask)
		bitCount += bits.OnesCount32(mask)
	}
	return bits.OnesCount64(union) == bitCount
}

// FitsWithin reports whether the union of the non-zero masks fits within
// the low depth bits.
func (m Masks) FitsWithin(depth int) bool {
	union := m.R | m.G | m.B | m.A
	if union == 0 {
		return true
	}
	highest := 31 - bits.LeadingZeros32(union)
	return highest < depth
}

// channelShift describes how to pull an 8-bit channel value out of a
// masked source word: shift right by Shift, then either shift right again
// by Down (mask width > 8) or left by Up (mask width < 8) to land on 8
// bits. At most one of Down/Up is non-zero (both are zero for an 8-bit
// mask), mirroring the 5-bit-<<3 /
// 6-bit-<<2 rules in spec §4.5 generalized to arbitrary mask widths (the
// FromInfo construction mode).
type channelShift struct {
	shift uint
	down  uint
	up    uint
	valid bool
}

func newChannelShift(mask uint32) channelShift {
	if mask == 0 {
		return channelShift{}
	}
	shift := uint(bits.TrailingZeros32(mask))
	width := uint(bits.OnesCount32(mask))
	cs := channelShift{shift: shift, valid: true}
	if width >= 8 {
		cs.down = width - 8
	} else {
		cs.up = 8 - width
	}
	return cs
}

func (cs channelShift) extract(raw uint32, mask uint32) uint8 {
	if !cs.valid {
		return 0
	}
	v := (raw & mask) >> cs.shift
	if cs.down != 0 {
		return uint8(v >> cs.down)
	}
	return uint8(v << cs.up)
}

// shiftSet precomputes the four channel shifts for a Masks value.
type shiftSet struct {
	r, g, b, a channelShift
	masks      Masks
}

func newShiftSet(m Masks) shiftSet {
	return shiftSet{
		r:     newChannelShift(m.R),
		g:     newChannelShift(m.G),
		b:     newChannelShift(m.B),
		a:     newChannelShift(m.A),
		masks: m,
	}
}

func (s shiftSet) read(raw uint32) colorVal {
	cv := colorVal{A: 255}
	if s.r.valid {
		cv.R = s.r.extract(raw, s.masks.R)
	}
	if s.g.valid {
		cv.G = s.g.extract(raw, s.masks.G)
	}
	if s.b.valid {
		cv.B = s.b.extract(raw, s.masks.B)
	}
	if s.a.valid {
		cv.A = s.a.extract(raw, s.masks.A)
	}
	return cv
}

// StandardMasks returns the fixed bit positions named in spec §4.2 phase 6
// for the given bit depth and flavor.
func StandardMasks(depth int, rgb565 bool, alphaMask uint32) Masks {
	switch depth {
	case 16:
		if rgb565 {
			return Masks{R: 0xF800, G: 0x07E0, B: 0x001F}
		}
		return Masks{R: 0x7C00, G: 0x03E0, B: 0x001F}
	case 24:
		return Masks{R: 0xFF0000, G: 0x00FF00, B: 0x0000FF}
	case 32:
		return Masks{R: 0xFF0000, G: 0x00FF00, B: 0x0000FF, A: alphaMask}
	default:
		return Masks{}
	}
}
