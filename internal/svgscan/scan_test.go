package svgscan

import (
	"errors"
	"testing"

	"github.com/codr1/flagcolors/internal/palette"
)

func colorsEqual(got []palette.Color, want ...palette.Color) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range want {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

func TestScanRejectsNonSVG(t *testing.T) {
	for _, doc := range []string{"", "<html><body>404</body></html>", "plain text"} {
		if _, err := Scan(doc); !errors.Is(err, ErrNotSVG) {
			t.Errorf("Scan(%q) error = %v, want ErrNotSVG", doc, err)
		}
	}
}

func TestScanSimpleFills(t *testing.T) {
	doc := `<svg xmlns="http://www.w3.org/2000/svg">
		<rect fill="#ff0000" width="10" height="10"/>
		<rect fill="#ffffff" width="10" height="10"/>
		<rect fill="#ff0000" width="10" height="10"/>
	</svg>`
	res, err := Scan(doc)
	if err != nil {
		t.Fatal(err)
	}
	if !colorsEqual(res.Colors, palette.White, palette.Red) {
		t.Errorf("Colors = %v, want [white red]", res.Colors)
	}
	if res.RawCount != 3 {
		t.Errorf("RawCount = %d, want 3", res.RawCount)
	}
}

func TestScanInlineStyles(t *testing.T) {
	doc := `<svg><path style="fill:#ffcc00;stroke:rgb(0,100,0)" d="M0 0h10"/></svg>`
	res, err := Scan(doc)
	if err != nil {
		t.Fatal(err)
	}
	if !colorsEqual(res.Colors, palette.Yellow, palette.Green) {
		t.Errorf("Colors = %v, want [yellow green]", res.Colors)
	}
}

func TestScanGradientStops(t *testing.T) {
	// Gradient declared at the top level renders through its url()
	// reference; the reference itself parses to nothing.
	doc := `<svg>
		<linearGradient id="g"><stop offset="0" stop-color="#ffd700"/></linearGradient>
		<rect fill="url(#g)" width="10" height="10"/>
	</svg>`
	res, err := Scan(doc)
	if err != nil {
		t.Fatal(err)
	}
	if !colorsEqual(res.Colors, palette.Yellow) {
		t.Errorf("Colors = %v, want [yellow]", res.Colors)
	}
}

func TestScanExcludesNonRenderingContainers(t *testing.T) {
	doc := `<svg>
		<defs><rect fill="#ff0000" width="1" height="1"/></defs>
		<clipPath id="c"><path fill="#00ff00" d="M0 0"/></clipPath>
		<rect fill="#ffffff" width="10" height="10"/>
	</svg>`
	res, err := Scan(doc)
	if err != nil {
		t.Fatal(err)
	}
	if !colorsEqual(res.Colors, palette.White) {
		t.Errorf("Colors = %v, want [white]", res.Colors)
	}
}

func TestScanInfersDefaultBlackFill(t *testing.T) {
	doc := `<svg xmlns="http://www.w3.org/2000/svg"><path d="M0 0h10v10z"/></svg>`
	res, err := Scan(doc)
	if err != nil {
		t.Fatal(err)
	}
	if !colorsEqual(res.Colors, palette.Black) {
		t.Errorf("Colors = %v, want [black]", res.Colors)
	}
}

func TestScanNoDefaultBlackWhenAncestorDeclaresFill(t *testing.T) {
	doc := `<svg><g fill="#ff0000"><path d="M0 0h10v10z"/></g></svg>`
	res, err := Scan(doc)
	if err != nil {
		t.Fatal(err)
	}
	if !colorsEqual(res.Colors, palette.Red) {
		t.Errorf("Colors = %v, want [red]", res.Colors)
	}
}

func TestScanZeroColorsIsNotAnError(t *testing.T) {
	doc := `<svg><path fill="none" stroke="none" d="M0 0"/></svg>`
	res, err := Scan(doc)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Colors) != 0 {
		t.Errorf("Colors = %v, want empty", res.Colors)
	}
	if res.RawCount != 0 {
		t.Errorf("RawCount = %d, want 0", res.RawCount)
	}
}

func TestScanAddsLightBlueForDistinctBlues(t *testing.T) {
	doc := `<svg>
		<rect fill="#001f6e" width="10" height="10"/>
		<rect fill="#7fd4ff" width="10" height="10"/>
	</svg>`
	res, err := Scan(doc)
	if err != nil {
		t.Fatal(err)
	}
	if !colorsEqual(res.Colors, palette.Blue, palette.LightBlue) {
		t.Errorf("Colors = %v, want [blue light blue]", res.Colors)
	}
	if len(res.Blues) != 2 {
		t.Errorf("Blues = %v, want 2 triples", res.Blues)
	}
}

func TestScanKeepsSingleBlueForNearbyShades(t *testing.T) {
	doc := `<svg>
		<rect fill="#16305f" width="10" height="10"/>
		<rect fill="#1a3870" width="10" height="10"/>
	</svg>`
	res, err := Scan(doc)
	if err != nil {
		t.Fatal(err)
	}
	if !colorsEqual(res.Colors, palette.Blue) {
		t.Errorf("Colors = %v, want [blue]", res.Colors)
	}
}

func TestScanCollapsesOrphanLightBlue(t *testing.T) {
	// A flag that is only pale blue reports plain blue: light blue
	// never appears without blue.
	doc := `<svg><rect fill="#add8e6" width="10" height="10"/></svg>`
	res, err := Scan(doc)
	if err != nil {
		t.Fatal(err)
	}
	if !colorsEqual(res.Colors, palette.Blue) {
		t.Errorf("Colors = %v, want [blue]", res.Colors)
	}
}

func TestScanLightBlueNeedsTwoBlueishTriples(t *testing.T) {
	// Pale turquoise sits nearest the light-blue anchor but its green
	// channel beats blue, so it is not a blue-ish triple. With only
	// the navy counting as blue-ish, light blue must not survive.
	doc := `<svg>
		<rect fill="rgb(173,230,216)" width="10" height="10"/>
		<rect fill="#003399" width="10" height="10"/>
	</svg>`
	res, err := Scan(doc)
	if err != nil {
		t.Fatal(err)
	}
	if !colorsEqual(res.Colors, palette.Blue) {
		t.Errorf("Colors = %v, want [blue]", res.Colors)
	}
	if len(res.Blues) != 1 {
		t.Errorf("Blues = %v, want the navy triple only", res.Blues)
	}
}

func TestScanOutputIsDeterministic(t *testing.T) {
	doc := `<svg>
		<rect fill="#008000"/><rect fill="#ff0000"/><rect fill="#ffffff"/>
		<path stroke="#000000" d="M0 0"/>
	</svg>`
	first, err := Scan(doc)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 5; i++ {
		again, err := Scan(doc)
		if err != nil {
			t.Fatal(err)
		}
		if !colorsEqual(again.Colors, first.Colors...) {
			t.Fatalf("run %d: Colors = %v, want %v", i, again.Colors, first.Colors)
		}
	}
	// Palette order regardless of discovery order.
	if !colorsEqual(first.Colors, palette.Black, palette.White, palette.Red, palette.Green) {
		t.Errorf("Colors = %v, want palette order [black white red green]", first.Colors)
	}
}
