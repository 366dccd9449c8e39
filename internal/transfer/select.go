package transfer

import (
	"github.com/TraceMyers/Blight/internal/errs"
	"github.com/TraceMyers/Blight/internal/pixel"
)

// SelectOutputTag implements spec §4.6: given the source tag s, pick the
// first tag in the preference list allowed is true for (or, if allowed is
// nil, the first in the list at all — a nil map means "allow everything",
// per spec §6's framing that the caller forbids tags rather than opts in).
func SelectOutputTag(s pixel.Tag, allowed map[pixel.Tag]bool) (pixel.Tag, error) {
	var prefs []pixel.Tag
	switch {
	case s.IsColor() && !s.HasAlpha() && s.Size() == 2:
		prefs = []pixel.Tag{pixel.RGB16, pixel.RGBA32, pixel.R8, pixel.R16}
	case s.IsColor():
		prefs = []pixel.Tag{pixel.RGBA32, pixel.RGB16, pixel.R8, pixel.R16}
	case s == pixel.U16_R:
		prefs = []pixel.Tag{pixel.R16, pixel.R8, pixel.RGBA32, pixel.RGB16}
	default:
		prefs = []pixel.Tag{pixel.R8, pixel.R16, pixel.RGBA32, pixel.RGB16}
	}
	for _, t := range prefs {
		if allowed == nil || allowed[t] {
			return t, nil
		}
	}
	return 0, errs.New(errs.NoImageFormatsAllowed, "transfer: select output tag")
}
