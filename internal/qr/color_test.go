package qr

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cristianadrielbraun/qrsketch/internal/imageio"
)

func TestParseColor(t *testing.T) {
	def := color.RGBA{1, 2, 3, 255}
	tests := map[string]struct {
		in   string
		want color.RGBA
	}{
		"empty":         {in: "", want: def},
		"hash":          {in: "#ff8000", want: color.RGBA{255, 128, 0, 255}},
		"no hash":       {in: "00ff00", want: color.RGBA{0, 255, 0, 255}},
		"upper":         {in: "#ABCDEF", want: color.RGBA{0xab, 0xcd, 0xef, 255}},
		"transparent":   {in: "Transparent", want: color.RGBA{}},
		"short":         {in: "#fff", want: def},
		"not hex":       {in: "#gg0000", want: def},
		"too long":      {in: "#0000000", want: def},
		"named unknown": {in: "red", want: def},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := ParseColor(tt.in, def); got != tt.want {
				t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeText(t *testing.T) {
	if got, err := NormalizeText("  a b  "); err != nil || got != "a b" {
		t.Errorf("NormalizeText() = %q, %v", got, err)
	}
	if _, err := NormalizeText(""); !errors.Is(err, ErrEmptyText) {
		t.Errorf("NormalizeText(\"\") error = %v", err)
	}
	if _, err := NormalizeText(strings.Repeat("b", MaxTextLength)); err != nil {
		t.Errorf("NormalizeText(max) error = %v", err)
	}
}

const squareSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 20 10">
<rect x="0" y="0" width="20" height="10" fill="#0000ff"/>
</svg>`

func TestRasterizeSVG(t *testing.T) {
	img, err := RasterizeSVG(strings.NewReader(squareSVG), 100)
	if err != nil {
		t.Fatalf("RasterizeSVG() error = %v", err)
	}
	b := img.Bounds()
	if b.Dx() != 100 || b.Dy() != 50 {
		t.Fatalf("RasterizeSVG() = %dx%d, want 100x50", b.Dx(), b.Dy())
	}
	r, g, bl, a := img.At(50, 25).RGBA()
	if r != 0 || g != 0 || bl>>8 != 255 || a>>8 != 255 {
		t.Errorf("center = (%d,%d,%d,%d), want opaque blue", r>>8, g>>8, bl>>8, a>>8)
	}
}

func TestLoadLogo(t *testing.T) {
	dir := t.TempDir()
	svgPath := filepath.Join(dir, "logo.SVG")
	if err := os.WriteFile(svgPath, []byte(squareSVG), 0o600); err != nil {
		t.Fatal(err)
	}

	img, err := LoadLogo(svgPath)
	if err != nil {
		t.Fatalf("LoadLogo(svg) error = %v", err)
	}
	if img.Bounds().Dx() != logoRasterSize {
		t.Errorf("LoadLogo(svg) width = %d, want %d", img.Bounds().Dx(), logoRasterSize)
	}

	pngPath, err := imageio.Save(img, filepath.Join(dir, "logo"), ".png")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := LoadLogo(pngPath); err != nil {
		t.Errorf("LoadLogo(png) error = %v", err)
	}

	if _, err := LoadLogo(filepath.Join(dir, "missing.svg")); err == nil {
		t.Error("LoadLogo(missing) succeeded, want error")
	}
}
