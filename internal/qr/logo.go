package qr

import (
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"github.com/cristianadrielbraun/qrsketch/internal/imageio"
)

// logoRasterSize is the longer side, in pixels, of a rasterized SVG logo.
const logoRasterSize = 256

// LoadLogo reads a logo image for WithLogo. SVG files are rasterized; every
// other file goes through the regular image decoders.
func LoadLogo(path string) (image.Image, error) {
	if !strings.EqualFold(filepath.Ext(path), ".svg") {
		return imageio.Open(path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open logo: %w", err)
	}
	defer f.Close()

	return RasterizeSVG(f, logoRasterSize)
}

// RasterizeSVG draws the SVG document read from r so that its longer side is
// size pixels.
func RasterizeSVG(r io.Reader, size int) (image.Image, error) {
	icon, err := oksvg.ReadIconStream(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", imageio.ErrDecode, err)
	}

	w, h := icon.ViewBox.W, icon.ViewBox.H
	if w <= 0 || h <= 0 {
		w, h = 1, 1
	}
	width, height := size, size
	if w > h {
		height = max(1, int(float64(size)*h/w+0.5))
	} else {
		width = max(1, int(float64(size)*w/h+0.5))
	}

	icon.SetTarget(0, 0, float64(width), float64(height))
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(width, height, scanner), 1)
	return img, nil
}
