// Package palette defines the twelve canonical flag colors and the
// nearest-anchor classifier that maps arbitrary RGB values onto them.
package palette

import (
	"fmt"

	"github.com/codr1/flagcolors/internal/colorspace"
)

// Color is one of the twelve canonical color names. The constants are
// declared in palette order, which is also the order colors are emitted
// in; nothing outside this package can construct a thirteenth value
// through the exported API.
type Color int

const (
	Black Color = iota
	White
	Grey
	Pink
	Red
	Orange
	Yellow
	Green
	Blue
	LightBlue
	Purple
	Brown

	numColors
)

var colorNames = [numColors]string{
	Black:     "black",
	White:     "white",
	Grey:      "grey",
	Pink:      "pink",
	Red:       "red",
	Orange:    "orange",
	Yellow:    "yellow",
	Green:     "green",
	Blue:      "blue",
	LightBlue: "light blue",
	Purple:    "purple",
	Brown:     "brown",
}

func (c Color) String() string {
	if c < 0 || c >= numColors {
		return fmt.Sprintf("Color(%d)", int(c))
	}
	return colorNames[c]
}

// MarshalText emits the canonical name, so records serialize as
// ["black", "red", ...] rather than integers.
func (c Color) MarshalText() ([]byte, error) {
	if c < 0 || c >= numColors {
		return nil, fmt.Errorf("invalid canonical color %d", int(c))
	}
	return []byte(colorNames[c]), nil
}

// anchors are representative RGB values for nearest-neighbor matching,
// not ground truth. Blue sits well below #0000ff and brown well away
// from reds so that the dark navies and bright crimsons common on
// flags land where a person would put them.
var anchors = [numColors]colorspace.RGB{
	Black:     {R: 0x00, G: 0x00, B: 0x00},
	White:     {R: 0xff, G: 0xff, B: 0xff},
	Grey:      {R: 0x80, G: 0x80, B: 0x80},
	Pink:      {R: 0xff, G: 0xc0, B: 0xcb},
	Red:       {R: 0xff, G: 0x00, B: 0x00},
	Orange:    {R: 0xff, G: 0xa5, B: 0x00},
	Yellow:    {R: 0xff, G: 0xd7, B: 0x00},
	Green:     {R: 0x00, G: 0x80, B: 0x00},
	Blue:      {R: 0x00, G: 0x33, B: 0x99},
	LightBlue: {R: 0xad, G: 0xd8, B: 0xe6},
	Purple:    {R: 0x80, G: 0x00, B: 0x80},
	Brown:     {R: 0x8b, G: 0x45, B: 0x13},
}

// Anchor returns the representative RGB value for a canonical color.
func Anchor(c Color) colorspace.RGB {
	return anchors[c]
}

// Closest returns the canonical color whose anchor is nearest to c in
// the RGB cube. Ties resolve to the earliest palette entry, so the
// result is deterministic. It never fails.
func Closest(c colorspace.RGB) Color {
	best := Black
	bestDist := colorspace.Distance(c, anchors[Black])
	for i := White; i < numColors; i++ {
		if d := colorspace.Distance(c, anchors[i]); d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best
}

// Set is a duplicate-free collection of canonical colors.
type Set struct {
	present [numColors]bool
}

// Add inserts a color; adding an already-present color is a no-op.
func (s *Set) Add(c Color) {
	if c >= 0 && c < numColors {
		s.present[c] = true
	}
}

// Remove deletes a color from the set if present.
func (s *Set) Remove(c Color) {
	if c >= 0 && c < numColors {
		s.present[c] = false
	}
}

// Has reports whether the set contains c.
func (s *Set) Has(c Color) bool {
	return c >= 0 && c < numColors && s.present[c]
}

// Len returns the number of colors in the set.
func (s *Set) Len() int {
	n := 0
	for _, p := range s.present {
		if p {
			n++
		}
	}
	return n
}

// Sorted returns the set's colors in palette order.
func (s *Set) Sorted() []Color {
	out := make([]Color, 0, numColors)
	for i := Color(0); i < numColors; i++ {
		if s.present[i] {
			out = append(out, i)
		}
	}
	return out
}

// All returns every canonical color in palette order.
func All() []Color {
	out := make([]Color, numColors)
	for i := range out {
		out[i] = Color(i)
	}
	return out
}
