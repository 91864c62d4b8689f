// Package colorspace parses SVG color tokens into RGB triples and
// provides the small amount of color math the classifier needs.
package colorspace

import (
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// RGB is an 8-bit-per-channel color value.
type RGB struct {
	R, G, B uint8
}

// namedColors covers the color keywords that actually show up in flag
// SVGs. It is deliberately not the full CSS list.
var namedColors = map[string]RGB{
	"black":     {0x00, 0x00, 0x00},
	"white":     {0xff, 0xff, 0xff},
	"red":       {0xff, 0x00, 0x00},
	"green":     {0x00, 0x80, 0x00},
	"blue":      {0x00, 0x00, 0xff},
	"yellow":    {0xff, 0xff, 0x00},
	"orange":    {0xff, 0xa5, 0x00},
	"purple":    {0x80, 0x00, 0x80},
	"pink":      {0xff, 0xc0, 0xcb},
	"brown":     {0xa5, 0x2a, 0x2a},
	"grey":      {0x80, 0x80, 0x80},
	"gray":      {0x80, 0x80, 0x80},
	"silver":    {0xc0, 0xc0, 0xc0},
	"gold":      {0xff, 0xd7, 0x00},
	"navy":      {0x00, 0x00, 0x80},
	"maroon":    {0x80, 0x00, 0x00},
	"olive":     {0x80, 0x80, 0x00},
	"lime":      {0x00, 0xff, 0x00},
	"teal":      {0x00, 0x80, 0x80},
	"aqua":      {0x00, 0xff, 0xff},
	"cyan":      {0x00, 0xff, 0xff},
	"magenta":   {0xff, 0x00, 0xff},
	"fuchsia":   {0xff, 0x00, 0xff},
	"indigo":    {0x4b, 0x00, 0x82},
	"violet":    {0xee, 0x82, 0xee},
	"crimson":   {0xdc, 0x14, 0x3c},
	"coral":     {0xff, 0x7f, 0x50},
	"salmon":    {0xfa, 0x80, 0x72},
	"khaki":     {0xf0, 0xe6, 0x8c},
	"beige":     {0xf5, 0xf5, 0xdc},
	"ivory":     {0xff, 0xff, 0xf0},
	"lavender":  {0xe6, 0xe6, 0xfa},
	"turquoise": {0x40, 0xe0, 0xd0},
	"tan":       {0xd2, 0xb4, 0x8c},
	"chocolate": {0xd2, 0x69, 0x1e},
	"skyblue":   {0x87, 0xce, 0xeb},
	"lightblue": {0xad, 0xd8, 0xe6},
	"lightgrey": {0xd3, 0xd3, 0xd3},
	"lightgray": {0xd3, 0xd3, 0xd3},
	"darkblue":  {0x00, 0x00, 0x8b},
	"darkgreen": {0x00, 0x64, 0x00},
	"darkred":   {0x8b, 0x00, 0x00},
	"darkgrey":  {0xa9, 0xa9, 0xa9},
	"darkgray":  {0xa9, 0xa9, 0xa9},
	"royalblue": {0x41, 0x69, 0xe1},
	"steelblue": {0x46, 0x82, 0xb4},
	"tomato":    {0xff, 0x63, 0x47},
	"orchid":    {0xda, 0x70, 0xd6},
}

// Parse converts a color token from SVG markup into an RGB value.
// It accepts 3/4/6/8-digit hex forms (alpha dropped), rgb()/rgba()
// with integer channels, and common color keywords. Non-paint tokens
// such as "none", "transparent" and url() references report ok=false,
// as does anything unrecognized.
func Parse(s string) (RGB, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return RGB{}, false
	}

	switch s {
	case "none", "transparent", "inherit", "currentcolor":
		return RGB{}, false
	}
	if strings.HasPrefix(s, "url(") {
		return RGB{}, false
	}

	if strings.HasPrefix(s, "#") {
		return parseHex(s[1:])
	}
	if strings.HasPrefix(s, "rgb(") || strings.HasPrefix(s, "rgba(") {
		return parseRGBFunc(s)
	}

	c, ok := namedColors[s]
	return c, ok
}

func parseHex(h string) (RGB, bool) {
	switch len(h) {
	case 4:
		h = h[:3] // drop alpha nibble
		fallthrough
	case 3:
		// #abc is shorthand for #aabbcc
		var b strings.Builder
		for _, r := range h {
			b.WriteRune(r)
			b.WriteRune(r)
		}
		h = b.String()
	case 8:
		h = h[:6] // drop alpha byte
	case 6:
	default:
		return RGB{}, false
	}

	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return RGB{}, false
	}
	return RGB{uint8(v >> 16), uint8(v >> 8), uint8(v)}, true
}

func parseRGBFunc(s string) (RGB, bool) {
	open := strings.IndexByte(s, '(')
	end := strings.IndexByte(s, ')')
	if open < 0 || end < open {
		return RGB{}, false
	}

	parts := strings.Split(s[open+1:end], ",")
	if len(parts) < 3 {
		return RGB{}, false
	}

	var ch [3]uint8
	for i := 0; i < 3; i++ {
		n, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil {
			return RGB{}, false
		}
		ch[i] = clampChannel(n)
	}
	// Alpha, if present, is ignored.
	return RGB{ch[0], ch[1], ch[2]}, true
}

func clampChannel(n int) uint8 {
	if n < 0 {
		return 0
	}
	if n > 255 {
		return 255
	}
	return uint8(n)
}

// Distance is the Euclidean distance between two colors in the
// 0-255 RGB cube. No perceptual weighting.
func Distance(a, b RGB) float64 {
	ca := colorful.Color{R: float64(a.R) / 255, G: float64(a.G) / 255, B: float64(a.B) / 255}
	cb := colorful.Color{R: float64(b.R) / 255, G: float64(b.G) / 255, B: float64(b.B) / 255}
	return ca.DistanceRgb(cb) * 255
}

// Lightness maps a color onto a 0-100 luma scale using the Rec. 601
// coefficients.
func Lightness(c RGB) float64 {
	return (0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)) / 2.55
}

// IsBlueish reports whether the blue channel dominates. This is a
// coarse heuristic for the light-blue disambiguation rule, not a hue
// computation; blue-greens and violet-blues at the margins will be
// misjudged, which the rule tolerates.
func IsBlueish(c RGB) bool {
	return c.B > c.R && c.B > c.G && c.B > 50
}
