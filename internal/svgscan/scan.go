// Package svgscan extracts the painted colors from an SVG document and
// classifies them against the canonical palette. It scans the markup
// with text patterns rather than walking an element tree; for the flat
// SVGs flag sets are made of, that is all that is required.
package svgscan

import (
	"errors"
	"regexp"
	"strings"

	"github.com/codr1/flagcolors/internal/colorspace"
	"github.com/codr1/flagcolors/internal/palette"
)

// ErrNotSVG reports a document that cannot be scanned at all.
var ErrNotSVG = errors.New("document contains no svg markup")

// Result is everything the scan learned about one document.
type Result struct {
	// Colors is the classified, duplicate-free color set in palette
	// order.
	Colors []palette.Color
	// RawCount is the number of color tokens that parsed, before
	// classification collapsed them.
	RawCount int
	// Blues holds the raw blue-ish triples the disambiguation rule
	// was run against.
	Blues []colorspace.RGB
}

var (
	// Containers whose contents are never painted directly. Colors
	// declared only inside them must not be counted.
	nonRenderingRes = []*regexp.Regexp{
		regexp.MustCompile(`(?is)<defs\b[^>]*>.*?</defs\s*>`),
		regexp.MustCompile(`(?is)<clippath\b[^>]*>.*?</clippath\s*>`),
		regexp.MustCompile(`(?is)<mask\b[^>]*>.*?</mask\s*>`),
		regexp.MustCompile(`(?is)<symbol\b[^>]*>.*?</symbol\s*>`),
		regexp.MustCompile(`(?is)<pattern\b[^>]*>.*?</pattern\s*>`),
	}

	colorAttrRe = regexp.MustCompile(`(?i)[\s"'](fill|stroke|stop-color)\s*=\s*["']([^"']*)["']`)
	styleAttrRe = regexp.MustCompile(`(?i)[\s"']style\s*=\s*["']([^"']*)["']`)
	styleDeclRe = regexp.MustCompile(`(?i)(?:^|;)\s*(fill|stroke)\s*:\s*([^;]+)`)

	shapeTagRe    = regexp.MustCompile(`(?is)<(?:path|rect|circle|polygon|ellipse|polyline)\b[^>]*>`)
	groupTagRe    = regexp.MustCompile(`(?is)<(?:svg|g)\b[^>]*>`)
	fillAttrRe    = regexp.MustCompile(`(?i)[\s"']fill\s*=`)
	strokeAttrRe  = regexp.MustCompile(`(?i)[\s"']stroke\s*=`)
	styleFillRe   = regexp.MustCompile(`(?i)(?:^|;)\s*fill\s*:`)
	styleStrokeRe = regexp.MustCompile(`(?i)(?:^|;)\s*stroke\s*:`)
)

// Scan extracts and classifies every painted color in doc. A document
// with no parseable colors is not an error; the caller decides how to
// report the empty result.
func Scan(doc string) (*Result, error) {
	if !strings.Contains(strings.ToLower(doc), "<svg") {
		return nil, ErrNotSVG
	}

	stripped := stripNonRendering(doc)
	raws := collectColors(stripped)
	if inferDefaultBlack(stripped) {
		raws = append(raws, colorspace.RGB{})
	}

	var set palette.Set
	var blues []colorspace.RGB
	for _, c := range raws {
		set.Add(palette.Closest(c))
		if colorspace.IsBlueish(c) {
			blues = append(blues, c)
		}
	}

	// Classification alone never yields "light blue": any pale blue
	// collapses into canonical blue here, and only the disambiguation
	// rule below may add light blue back, from the raw triples.
	if set.Has(palette.LightBlue) {
		set.Remove(palette.LightBlue)
		set.Add(palette.Blue)
	}

	disambiguateBlues(&set, blues)

	return &Result{
		Colors:   set.Sorted(),
		RawCount: len(raws),
		Blues:    blues,
	}, nil
}

func stripNonRendering(doc string) string {
	for _, re := range nonRenderingRes {
		doc = re.ReplaceAllString(doc, "")
	}
	return doc
}

// collectColors gathers every color-bearing declaration: fill, stroke
// and stop-color attributes, plus fill:/stroke: declarations inside
// inline style attributes. Tokens that fail to parse are expected and
// dropped silently.
func collectColors(doc string) []colorspace.RGB {
	var out []colorspace.RGB

	for _, m := range colorAttrRe.FindAllStringSubmatch(doc, -1) {
		if c, ok := colorspace.Parse(m[2]); ok {
			out = append(out, c)
		}
	}

	for _, m := range styleAttrRe.FindAllStringSubmatch(doc, -1) {
		for _, decl := range styleDeclRe.FindAllStringSubmatch(m[1], -1) {
			if c, ok := colorspace.Parse(decl[2]); ok {
				out = append(out, c)
			}
		}
	}

	return out
}

// inferDefaultBlack reports whether the document paints the SVG default
// fill. A shape element carrying neither fill nor stroke paints solid
// black unless some group or the root supplies an inheritable fill.
// The ancestor check is an existence test over the whole document, not
// a cascade resolution; it does not verify the shape actually descends
// from the fill-bearing group and it treats fill="none" as a declared
// fill. One bare shape is sufficient signal.
func inferDefaultBlack(doc string) bool {
	foundBare := false
	for _, tag := range shapeTagRe.FindAllString(doc, -1) {
		if tagDeclaresPaint(tag) {
			continue
		}
		foundBare = true
		break
	}
	if !foundBare {
		return false
	}

	for _, tag := range groupTagRe.FindAllString(doc, -1) {
		if fillAttrRe.MatchString(tag) {
			return false
		}
		if m := styleAttrRe.FindStringSubmatch(tag); m != nil && styleFillRe.MatchString(m[1]) {
			return false
		}
	}
	return true
}

func tagDeclaresPaint(tag string) bool {
	if fillAttrRe.MatchString(tag) || strokeAttrRe.MatchString(tag) {
		return true
	}
	if m := styleAttrRe.FindStringSubmatch(tag); m != nil {
		if styleFillRe.MatchString(m[1]) || styleStrokeRe.MatchString(m[1]) {
			return true
		}
	}
	return false
}
