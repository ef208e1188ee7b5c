// Package studio is the request/response surface shared by every front end.
//
// Each generation call returns its artifact to the caller, and each save call
// takes that artifact back explicitly. Nothing is remembered between calls.
// Validation happens before any file is touched, so a failed call leaves the
// file system as it was.
package studio

import (
	"errors"
	"fmt"
	"image"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/cristianadrielbraun/qrsketch/internal/imageio"
	"github.com/cristianadrielbraun/qrsketch/internal/qr"
	"github.com/cristianadrielbraun/qrsketch/internal/sketch"
)

// Default extensions used when a save path has none.
const (
	QRExt     = ".png"
	SketchExt = ".jpg"
)

// PreviewSize bounds each half of the side-by-side comparison.
const PreviewSize = 300

var (
	ErrNoQRCode = errors.New("no QR code generated to save")
	ErrNoSketch = errors.New("no sketch generated to save")
	ErrNoImage  = errors.New("no image selected")
)

// Studio runs the QR and sketch actions. The zero value is ready to use.
type Studio struct {
	// QROptions are applied to every generated QR code.
	QROptions []qr.Option
	// Logger receives one line per completed action. Nil disables logging.
	Logger *log.Logger
}

// New returns a Studio that logs through logger.
func New(logger *log.Logger, opts ...qr.Option) *Studio {
	return &Studio{QROptions: opts, Logger: logger}
}

func (s *Studio) logf(format string, args ...any) {
	if s.Logger != nil {
		s.Logger.Printf(format, args...)
	}
}

// GenerateQR encodes text as a QR code.
func (s *Studio) GenerateQR(text string, opts ...qr.Option) (*qr.Code, error) {
	code, err := qr.Generate(text, append(append([]qr.Option{}, s.QROptions...), opts...)...)
	if err != nil {
		return nil, err
	}
	s.logf("[QR] generated %d modules for %q", code.Dimension(), code.Text)
	return code, nil
}

// SaveQR writes code to path, PNG unless the extension says otherwise. It
// returns the path actually written.
func (s *Studio) SaveQR(code *qr.Code, path string) (string, error) {
	if code == nil {
		return "", ErrNoQRCode
	}
	if strings.TrimSpace(path) == "" {
		return "", imageio.ErrNoPath
	}
	path = imageio.WithDefaultExt(path, QRExt)

	if err := writeFile(path, func(f *os.File) error {
		return code.Encode(f, filepath.Ext(path))
	}); err != nil {
		return "", err
	}
	s.logf("[QR] saved to %s", path)
	return path, nil
}

// OpenImage decodes the image at path.
func (s *Studio) OpenImage(path string) (image.Image, error) {
	if strings.TrimSpace(path) == "" {
		return nil, ErrNoImage
	}
	return imageio.Open(path)
}

// Sketch is the result of ConvertToSketch.
type Sketch struct {
	Original image.Image
	Image    *image.Gray
}

// Compare returns the original and the sketch, each scaled to fit
// PreviewSize×PreviewSize, side by side.
func (sk *Sketch) Compare() image.Image {
	return imageio.SideBySide(
		imageio.Thumbnail(sk.Original, PreviewSize, PreviewSize),
		imageio.Thumbnail(sk.Image, PreviewSize, PreviewSize),
	)
}

// ConvertToSketch renders img as a pencil sketch.
func (s *Studio) ConvertToSketch(img image.Image) (*Sketch, error) {
	if img == nil {
		return nil, ErrNoImage
	}
	out, err := sketch.Convert(img)
	if err != nil {
		return nil, err
	}
	b := out.Bounds()
	s.logf("[SKETCH] converted %dx%d image", b.Dx(), b.Dy())
	return &Sketch{Original: img, Image: out}, nil
}

// SaveSketch writes the sketch to path, JPEG unless the extension says
// otherwise. It returns the path actually written.
func (s *Studio) SaveSketch(sk *Sketch, path string) (string, error) {
	if sk == nil || sk.Image == nil {
		return "", ErrNoSketch
	}
	if strings.TrimSpace(path) == "" {
		return "", imageio.ErrNoPath
	}
	path = imageio.WithDefaultExt(path, SketchExt)

	if err := writeFile(path, func(f *os.File) error {
		return imageio.Encode(f, sk.Image, filepath.Ext(path))
	}); err != nil {
		return "", err
	}
	s.logf("[SKETCH] saved to %s", path)
	return path, nil
}

// writeFile creates path, runs write and removes the file again if anything
// fails.
func writeFile(path string, write func(*os.File) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("failed to close %s: %w", path, cerr)
		}
		if err != nil {
			os.Remove(path)
		}
	}()

	if err := write(f); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
