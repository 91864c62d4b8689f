package svgscan

import (
	"github.com/codr1/flagcolors/internal/colorspace"
	"github.com/codr1/flagcolors/internal/palette"
)

// Thresholds for telling a deliberate light blue apart from shading
// variations of a single blue. Lightness spread below minBlueSpread
// means one blue rendered at slightly different depths; a brightest
// blue darker than minLightBlueMax is never "light".
const (
	minBlueSpread   = 20.0
	minLightBlueMax = 45.0
)

// disambiguateBlues decides whether a document that classified as blue
// also carries a distinctly lighter blue. It needs the raw triples:
// classification has already collapsed every blue into the single
// canonical entry, which destroys the lightness signal.
func disambiguateBlues(set *palette.Set, blues []colorspace.RGB) {
	if !set.Has(palette.Blue) || len(blues) < 2 {
		return
	}

	min := colorspace.Lightness(blues[0])
	max := min
	for _, c := range blues[1:] {
		l := colorspace.Lightness(c)
		if l < min {
			min = l
		}
		if l > max {
			max = l
		}
	}

	if max-min > minBlueSpread && max > minLightBlueMax {
		set.Add(palette.LightBlue)
	}
}
