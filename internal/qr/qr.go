// Package qr renders text as a QR code image.
//
// Encoding is done by github.com/yeqown/go-qrcode; this package fixes the
// rendering parameters and turns the result into PNG, JPEG or SVG output.
package qr

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"io"
	"strings"

	"github.com/yeqown/go-qrcode/v2"

	"github.com/cristianadrielbraun/qrsketch/internal/imageio"
)

// Default rendering parameters.
const (
	DefaultVersion    = 10
	DefaultModuleSize = 8
	DefaultBorder     = 5
	MaxTextLength     = 2048
)

var (
	ErrEmptyText   = errors.New("please enter a valid URL")
	ErrTextTooLong = fmt.Errorf("text is longer than %d bytes", MaxTextLength)
	ErrOption      = errors.New("invalid QR option")
	ErrCapacity    = errors.New("text does not fit in a QR code")
)

var (
	Black = color.RGBA{0, 0, 0, 255}
	White = color.RGBA{255, 255, 255, 255}
)

// Code is a rendered QR code.
type Code struct {
	// Text is the encoded content.
	Text string
	// Image is the raster rendering, quiet zone included.
	Image image.Image
	// Modules holds the dark/light state of each module, row by row,
	// without the quiet zone.
	Modules [][]bool

	cfg config
}

type config struct {
	version    int
	moduleSize int
	border     int
	fg, bg     color.RGBA
	logo       image.Image
	shape      Shape
	gradient   *gradient
}

func defaultConfig() config {
	return config{
		version:    DefaultVersion,
		moduleSize: DefaultModuleSize,
		border:     DefaultBorder,
		fg:         Black,
		bg:         White,
		shape:      ShapeSquare,
	}
}

func (c config) validate() error {
	if c.moduleSize < 1 || c.moduleSize > 255 {
		return fmt.Errorf("%w: module size %d outside 1..255", ErrOption, c.moduleSize)
	}
	if c.border < 0 || c.border > 40 {
		return fmt.Errorf("%w: border %d outside 0..40", ErrOption, c.border)
	}
	if c.version < 1 || c.version > 40 {
		return fmt.Errorf("%w: version %d outside 1..40", ErrOption, c.version)
	}
	if _, ok := shapeBlocks[c.shape]; !ok {
		return fmt.Errorf("%w: unknown shape %q", ErrOption, c.shape)
	}
	return nil
}

// Option customizes Generate.
type Option func(*config)

// WithColors sets the module and background colors. A background with zero
// alpha renders transparent in PNG output.
func WithColors(fg, bg color.RGBA) Option {
	return func(c *config) {
		c.fg = fg
		c.bg = bg
	}
}

// WithModuleSize sets the width in pixels of one module.
func WithModuleSize(px int) Option {
	return func(c *config) { c.moduleSize = px }
}

// WithBorder sets the quiet zone width in modules.
func WithBorder(modules int) Option {
	return func(c *config) { c.border = modules }
}

// WithVersion sets the smallest symbol version to use. Text that does not fit
// gets a larger symbol.
func WithVersion(v int) Option {
	return func(c *config) { c.version = v }
}

// WithLogo places img at the center of the code and raises the error
// correction level so the code stays readable.
func WithLogo(img image.Image) Option {
	return func(c *config) { c.logo = img }
}

// NormalizeText trims s and checks that it can be encoded.
func NormalizeText(s string) (string, error) {
	v := strings.TrimSpace(s)
	if v == "" {
		return "", ErrEmptyText
	}
	if len(v) > MaxTextLength {
		return "", ErrTextTooLong
	}
	return v, nil
}

// Generate encodes text and renders it.
func Generate(text string, opts ...Option) (*Code, error) {
	text, err := NormalizeText(text)
	if err != nil {
		return nil, err
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	qrc, err := encode(text, cfg)
	if err != nil {
		return nil, err
	}

	modules, err := extractModules(qrc)
	if err != nil {
		return nil, err
	}
	img, err := render(qrc, cfg)
	if err != nil {
		return nil, err
	}

	return &Code{Text: text, Image: img, Modules: modules, cfg: cfg}, nil
}

func encode(text string, cfg config) (*qrcode.QRCode, error) {
	level := qrcode.ErrorCorrectionMedium
	if cfg.logo != nil {
		level = qrcode.ErrorCorrectionQuart
	}

	// A fixed version that is too small makes the encoder panic, so let it
	// pick the smallest version that fits and only raise that to the minimum.
	qrc, err := qrcode.NewWith(text, qrcode.WithErrorCorrectionLevel(level))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCapacity, err)
	}
	if versionOf(qrc.Dimension()) >= cfg.version {
		return qrc, nil
	}

	qrc, err = qrcode.NewWith(text,
		qrcode.WithErrorCorrectionLevel(level),
		qrcode.WithVersion(cfg.version),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}
	return qrc, nil
}

// versionOf returns the symbol version for a side of dim modules.
func versionOf(dim int) int {
	return (dim - 17) / 4
}

// Dimension returns the number of modules per side, quiet zone excluded.
func (c *Code) Dimension() int {
	return len(c.Modules)
}

// Encode writes the code to w as "png", "jpg"/"jpeg" or "svg".
func (c *Code) Encode(w io.Writer, format string) error {
	switch strings.ToLower(strings.TrimPrefix(format, ".")) {
	case "svg":
		_, err := w.Write(c.SVG())
		return err
	case "jpg", "jpeg":
		return imageio.Encode(w, c.opaque(), "jpg")
	case "png", "":
		return imageio.Encode(w, c.Image, "png")
	default:
		return fmt.Errorf("%w: %s", imageio.ErrFormat, format)
	}
}

// opaque composites the image onto its background color, or white when the
// background is transparent. JPEG has no alpha channel.
func (c *Code) opaque() image.Image {
	bg := color.RGBA{c.cfg.bg.R, c.cfg.bg.G, c.cfg.bg.B, 255}
	if c.cfg.bg.A == 0 {
		bg = White
	}
	b := c.Image.Bounds()
	out := image.NewRGBA(b)
	draw.Draw(out, b, &image.Uniform{C: bg}, image.Point{}, draw.Src)
	draw.Draw(out, b, c.Image, b.Min, draw.Over)
	return out
}
