package blight

// Options controls how Load resolves a path and which formats/output
// pixel tags a decode is permitted to use (spec §6).
type Options struct {
	// InputFormatAllowed restricts the input formats Load will decode. A
	// nil map means every format the dispatcher can infer is allowed; a
	// non-nil map allows only the formats mapped to true.
	InputFormatAllowed map[Format]bool

	// OutputFormatAllowed restricts the canonical output pixel tags. A nil
	// map means every canonical tag is allowed; a non-nil map allows only
	// the tags mapped to true. The decoder picks the best allowed match for
	// the source pixel layout (spec §4.6).
	OutputFormatAllowed map[PixelTag]bool

	// Alpha is accepted for forward compatibility with a future Save
	// entry point; Load ignores it, since alpha interpretation on decode
	// is always driven by the source file's own channel masks / attribute
	// type (spec §4.2, §4.3).
	Alpha Alpha

	// LocalPath, when true, opens the joined path as given, so a relative
	// path is resolved by the OS against the current working directory.
	// When false, Load first resolves the joined path to an absolute path
	// with filepath.Abs (spec §4.1: "path may be relative; resolve to
	// absolute once").
	LocalPath bool

	// MaxAllocBytes bounds the size of file Load is willing to read into
	// memory. Zero means unbounded (spec §5: "A decode is bounded by file
	// size, which is checked against max_alloc_sz early").
	MaxAllocBytes int64
}

func (o Options) inputAllowed(f Format) bool {
	return o.InputFormatAllowed == nil || o.InputFormatAllowed[f]
}
