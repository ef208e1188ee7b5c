package qr

import (
	"bytes"
	"image/color"
	"strings"
	"testing"
)

func TestSVGMergesRuns(t *testing.T) {
	code := &Code{
		Modules: [][]bool{
			{true, true, false},
			{false, false, false},
			{true, false, true},
		},
		cfg: config{moduleSize: 10, border: 1, fg: Black, bg: White},
	}

	svg := string(code.SVG())

	for _, want := range []string{
		`viewBox="0 0 50 50"`,
		`<rect width="50" height="50" fill="#ffffff"/>`,
		`<rect x="10" y="10" width="20" height="10" fill="#000000"/>`,
		`<rect x="10" y="30" width="10" height="10" fill="#000000"/>`,
		`<rect x="30" y="30" width="10" height="10" fill="#000000"/>`,
	} {
		if !strings.Contains(svg, want) {
			t.Errorf("SVG missing %s\n%s", want, svg)
		}
	}
	if n := strings.Count(svg, "<rect"); n != 4 {
		t.Errorf("SVG has %d rects, want 4", n)
	}
}

func TestSVGTransparentBackground(t *testing.T) {
	code := &Code{
		Modules: [][]bool{{true}},
		cfg:     config{moduleSize: 4, fg: color.RGBA{255, 0, 0, 255}, bg: color.RGBA{}},
	}

	svg := string(code.SVG())
	if strings.Count(svg, "<rect") != 1 {
		t.Errorf("transparent SVG should only hold the module rect:\n%s", svg)
	}
	if !strings.Contains(svg, `fill="#ff0000"`) {
		t.Errorf("module fill missing:\n%s", svg)
	}
}

func TestSVGRasterizesBackToCode(t *testing.T) {
	code, err := Generate("vector")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	img, err := RasterizeSVG(bytes.NewReader(code.SVG()), code.Image.Bounds().Dx())
	if err != nil {
		t.Fatalf("RasterizeSVG() error = %v", err)
	}
	if got := readBack(t, img); got != "vector" {
		t.Errorf("decoded %q, want %q", got, "vector")
	}
}
