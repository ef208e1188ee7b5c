package qr

import (
	"crypto/rand"
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"time"

	"github.com/yeqown/go-qrcode/v2"
	"github.com/yeqown/go-qrcode/writer/standard"

	"github.com/cristianadrielbraun/qrsketch/internal/imageio"
)

// render draws qrc with the configured size, colors and logo.
func render(qrc *qrcode.QRCode, cfg config) (image.Image, error) {
	opts := []standard.ImageOption{
		standard.WithQRWidth(uint8(cfg.moduleSize)),
		standard.WithBorderWidth(cfg.border * cfg.moduleSize),
		standard.WithFgColor(cfg.fg),
		standard.WithBuiltinImageEncoder(standard.PNG_FORMAT),
	}
	opts = append(opts, styleOptions(cfg)...)

	if cfg.bg.A == 0 {
		opts = append(opts, standard.WithBgTransparent())
	} else {
		opts = append(opts, standard.WithBgColor(cfg.bg))
	}

	if cfg.logo != nil {
		// The writer refuses logos wider than a fifth of the symbol.
		side := qrc.Dimension()*cfg.moduleSize/5 - 1
		if side < 1 {
			return nil, fmt.Errorf("%w: symbol too small for a logo", ErrOption)
		}
		opts = append(opts, standard.WithLogoImage(imageio.Thumbnail(cfg.logo, side, side)))
	}

	return writeAndDecode(qrc, "qr", opts...)
}

// extractModules renders qrc at one pixel per module with no quiet zone and
// reads the dark modules back.
func extractModules(qrc *qrcode.QRCode) ([][]bool, error) {
	img, err := writeAndDecode(qrc, "qr_matrix",
		standard.WithQRWidth(1),
		standard.WithBorderWidth(0),
		standard.WithBgColor(White),
		standard.WithFgColor(Black),
		standard.WithBuiltinImageEncoder(standard.PNG_FORMAT),
	)
	if err != nil {
		return nil, err
	}

	b := img.Bounds()
	modules := make([][]bool, b.Dy())
	for y := range modules {
		modules[y] = make([]bool, b.Dx())
		for x := range modules[y] {
			modules[y][x] = isDark(img.At(b.Min.X+x, b.Min.Y+y))
		}
	}
	return modules, nil
}

// writeAndDecode saves qrc through the standard writer into a temporary file
// and decodes it back into memory.
func writeAndDecode(qrc *qrcode.QRCode, prefix string, opts ...standard.ImageOption) (image.Image, error) {
	tmpFile := filepath.Join(os.TempDir(), generateUniqueFilename(prefix, ".png"))
	defer os.Remove(tmpFile)

	writer, err := standard.New(tmpFile, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR writer: %w", err)
	}
	// Save closes the writer.
	if err := qrc.Save(writer); err != nil {
		return nil, fmt.Errorf("failed to generate QR code image: %w", err)
	}

	img, err := imageio.Open(tmpFile)
	if err != nil {
		return nil, err
	}
	return img, nil
}

// generateUniqueFilename returns a temp file name that will not collide with
// concurrent requests.
func generateUniqueFilename(prefix, extension string) string {
	randomBytes := make([]byte, 4)
	_, _ = rand.Read(randomBytes)
	return fmt.Sprintf("%s_%d_%x%s", prefix, time.Now().UnixNano(), randomBytes, extension)
}

// isDark reports whether c is closer to black than to white.
func isDark(c color.Color) bool {
	r, g, b, _ := c.RGBA()
	return r+g+b < 3*0x8000
}
