package tga

import (
	"github.com/TraceMyers/Blight/internal/errs"
	"github.com/TraceMyers/Blight/internal/extent"
	"github.com/TraceMyers/Blight/internal/pixel"
)

const (
	footerLen        = 26
	extensionAreaLen = 495
	tgaSignature     = "TRUEVISION-XFILE.\x00"
)

// parseFooter probes the last 26 bytes of the file (spec §4.3 phase 1).
// It returns (nil, nil) for a V1 file with no footer.
func parseFooter(buf []byte, ext *extent.Buffer) (*Footer, error) {
	if len(buf) < footerLen {
		return nil, nil
	}
	off := len(buf) - footerLen
	sig := buf[off+8 : off+footerLen]
	if string(sig) != tgaSignature {
		return nil, nil
	}
	f := &Footer{
		ExtensionAreaOffset: le32(buf[off : off+4]),
		DeveloperAreaOffset: le32(buf[off+4 : off+8]),
	}
	if err := ext.TryInsert(uint32(off), uint32(len(buf)), "tga: footer extent"); err != nil {
		return nil, err
	}
	return f, nil
}

func cstr(b []byte) string {
	for i, c := range b {
		if c == 0 {
			return string(b[:i])
		}
	}
	return string(b)
}

// parseExtensionArea reads the 495-byte V2 extension area at offset, or
// returns (nil, nil) if the area's self-reported size doesn't match 495
// (spec §8 boundary behavior: "Extension-area length byte ≠ 495 silently
// disables extension parsing").
func parseExtensionArea(buf []byte, offset uint32, ext *extent.Buffer) (*ExtensionArea, error) {
	if offset == 0 {
		return nil, nil
	}
	if int64(offset)+2 > int64(len(buf)) {
		return nil, errs.New(errs.UnexpectedEOF, "tga: extension area size field")
	}
	if le16(buf[offset:offset+2]) != extensionAreaLen {
		return nil, nil
	}
	end := int64(offset) + extensionAreaLen
	if end > int64(len(buf)) {
		return nil, errs.New(errs.UnexpectedEOF, "tga: extension area")
	}
	if err := ext.TryInsert(offset, uint32(end), "tga: extension area extent"); err != nil {
		return nil, err
	}
	b := buf[offset:end]
	ea := &ExtensionArea{
		Author:                cstr(b[2:43]),
		Year:                  le16(b[367:369]),
		Month:                 le16(b[369:371]),
		Day:                   le16(b[371:373]),
		Hour:                  le16(b[373:375]),
		Minute:                le16(b[375:377]),
		Second:                le16(b[377:379]),
		JobName:               cstr(b[379:420]),
		JobHours:              le16(b[420:422]),
		JobMinutes:            le16(b[422:424]),
		JobSeconds:            le16(b[424:426]),
		SoftwareID:            cstr(b[426:467]),
		SoftwareVersion:       le16(b[467:469]),
		SoftwareVersionLetter: b[469],
		KeyColor:              le32(b[470:474]),
		AspectRatioNum:        le16(b[474:476]),
		AspectRatioDenom:      le16(b[476:478]),
		GammaNum:              le16(b[478:480]),
		GammaDenom:            le16(b[480:482]),
		ColorCorrectionOffset: le32(b[482:486]),
		PostageStampOffset:    le32(b[486:490]),
		ScanLineOffset:        le32(b[490:494]),
		AttributeType:         b[494],
	}
	for i := 0; i < 4; i++ {
		ea.Comments[i] = cstr(b[43+i*81 : 43+(i+1)*81])
	}
	return ea, nil
}

// parseScanlineTable reads height little-endian uint32 row offsets (spec
// §4.3 phase 4).
func parseScanlineTable(buf []byte, offset uint32, height int, ext *extent.Buffer) ([]uint32, error) {
	if offset == 0 {
		return nil, nil
	}
	end := int64(offset) + int64(height)*4
	if end > int64(len(buf)) {
		return nil, errs.New(errs.UnexpectedEOF, "tga: scanline table")
	}
	if err := ext.TryInsert(offset, uint32(end), "tga: scanline table extent"); err != nil {
		return nil, err
	}
	table := make([]uint32, height)
	for i := range table {
		table[i] = le32(buf[int(offset)+i*4 : int(offset)+i*4+4])
	}
	return table, nil
}

// parseColorCorrectionTable reads 256 four-channel (ARGB) uint16 entries
// (spec §4.3 phase 4).
func parseColorCorrectionTable(buf []byte, offset uint32, ext *extent.Buffer) ([][4]uint16, error) {
	if offset == 0 {
		return nil, nil
	}
	const count = 256
	end := int64(offset) + int64(count)*8
	if end > int64(len(buf)) {
		return nil, errs.New(errs.UnexpectedEOF, "tga: color correction table")
	}
	if err := ext.TryInsert(offset, uint32(end), "tga: color correction table extent"); err != nil {
		return nil, err
	}
	table := make([][4]uint16, count)
	for i := range table {
		base := int(offset) + i*8
		table[i] = [4]uint16{
			le16(buf[base : base+2]),
			le16(buf[base+2 : base+4]),
			le16(buf[base+4 : base+6]),
			le16(buf[base+6 : base+8]),
		}
	}
	return table, nil
}

// attributeAlpha implements spec §4.3 phase 3's attribute-type semantics.
func attributeAlpha(ea *ExtensionArea, depth int) pixel.Alpha {
	if ea == nil {
		return pixel.AlphaNone
	}
	switch {
	case ea.AttributeType == 3 && depth == 32:
		return pixel.AlphaNormal
	case ea.AttributeType == 4:
		return pixel.AlphaPremultiplied
	default:
		return pixel.AlphaNone
	}
}
