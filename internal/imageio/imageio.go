// Package imageio reads images into memory and writes them back to disk.
package imageio

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"

	// Extra decoders on top of the JPEG, PNG and GIF ones pulled in by imaging.
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// JPEGQuality is used whenever an image is written as JPEG.
const JPEGQuality = 92

// MaxPixels is the default pixel budget for DecodeLimited.
const MaxPixels = 40_000_000

var (
	// ErrNoPath is returned when no file was selected.
	ErrNoPath = errors.New("no image file selected")
	// ErrDecode wraps every failure to turn bytes into pixels.
	ErrDecode = errors.New("failed to decode image")
	// ErrFormat is returned for an output extension with no encoder.
	ErrFormat = errors.New("unsupported image format")
)

// ErrTooLarge is returned by DecodeLimited for images over the pixel budget.
var ErrTooLarge = errors.New("image is too large")

// Open reads and decodes the image at path, applying any EXIF orientation.
func Open(path string) (image.Image, error) {
	if strings.TrimSpace(path) == "" {
		return nil, ErrNoPath
	}
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("%w %s: %v", ErrDecode, path, err)
	}
	return img, nil
}

// Decode reads an image from r, applying any EXIF orientation.
func Decode(r io.Reader) (image.Image, error) {
	img, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return img, nil
}

// DecodeLimited reads the image header from r and decodes the image only
// when it has at most maxPixels pixels.
func DecodeLimited(r io.ReadSeeker, maxPixels int) (image.Image, error) {
	start, err := r.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	cfg, _, err := image.DecodeConfig(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if int64(cfg.Width)*int64(cfg.Height) > int64(maxPixels) {
		return nil, fmt.Errorf("%w: %dx%d is over %d pixels", ErrTooLarge, cfg.Width, cfg.Height, maxPixels)
	}

	if _, err := r.Seek(start, io.SeekStart); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return Decode(r)
}

// WithDefaultExt returns path with ext appended when path has no extension.
func WithDefaultExt(path, ext string) string {
	if filepath.Ext(path) == "" {
		return path + ext
	}
	return path
}

// Save writes img to path, choosing the encoder from the file extension.
// defaultExt (for example ".png") is appended when path has none. The final
// path is returned.
func Save(img image.Image, path, defaultExt string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", ErrNoPath
	}
	path = WithDefaultExt(path, defaultExt)

	if _, err := imaging.FormatFromFilename(path); err != nil {
		return "", fmt.Errorf("%w: %s", ErrFormat, filepath.Ext(path))
	}
	if err := imaging.Save(img, path, imaging.JPEGQuality(JPEGQuality)); err != nil {
		return "", fmt.Errorf("failed to save image to %s: %w", path, err)
	}
	return path, nil
}

// Encode writes img to w in the named format ("png", "jpg", "jpeg", "gif",
// "bmp", "tif", "tiff").
func Encode(w io.Writer, img image.Image, format string) error {
	f, err := imaging.FormatFromExtension(format)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrFormat, format)
	}
	return imaging.Encode(w, img, f, imaging.JPEGQuality(JPEGQuality))
}

// ContentType returns the MIME type for a format accepted by Encode.
func ContentType(format string) string {
	switch strings.ToLower(strings.TrimPrefix(format, ".")) {
	case "jpg", "jpeg":
		return "image/jpeg"
	case "gif":
		return "image/gif"
	case "bmp":
		return "image/bmp"
	case "tif", "tiff":
		return "image/tiff"
	default:
		return "image/png"
	}
}

// Thumbnail scales img down to fit within maxW×maxH, keeping its aspect
// ratio. Images that already fit are returned as a copy at their own size.
func Thumbnail(img image.Image, maxW, maxH int) image.Image {
	return imaging.Fit(img, maxW, maxH, imaging.Lanczos)
}

// SideBySide places left and right next to each other on a black canvas as
// tall as the taller of the two.
func SideBySide(left, right image.Image) image.Image {
	lb, rb := left.Bounds(), right.Bounds()
	h := max(lb.Dy(), rb.Dy())

	canvas := imaging.New(lb.Dx()+rb.Dx(), h, color.Black)
	canvas = imaging.Paste(canvas, left, image.Pt(0, 0))
	return imaging.Paste(canvas, right, image.Pt(lb.Dx(), 0))
}
