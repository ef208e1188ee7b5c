package qr

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/yeqown/go-qrcode/writer/standard"
	"github.com/yeqown/go-qrcode/writer/standard/shapes"
)

// Shape selects how dark modules are drawn in raster output. Finder patterns
// stay square for every shape except ShapeCircle.
type Shape string

const (
	ShapeSquare  Shape = "square"
	ShapeCircle  Shape = "circle"
	ShapeLiquid  Shape = "liquid"
	ShapeChain   Shape = "chain"
	ShapeHStripe Shape = "hstripe"
	ShapeVStripe Shape = "vstripe"
)

// shapeBlocks maps each shape to its data module drawing function. Square and
// circle use the writer's built-in shapes.
var shapeBlocks = map[Shape]func(ctx *standard.DrawContext){
	ShapeSquare:  nil,
	ShapeCircle:  nil,
	ShapeLiquid:  shapes.LiquidBlock(),
	ShapeChain:   shapes.ChainBlock(),
	ShapeHStripe: shapes.HStripeBlock(0.85),
	ShapeVStripe: shapes.VStripeBlock(0.85),
}

// ParseShape maps a parameter to a Shape. The empty string and "rectangle"
// are ShapeSquare.
func ParseShape(s string) (Shape, error) {
	v := Shape(strings.ToLower(strings.TrimSpace(s)))
	switch v {
	case "", "rectangle":
		return ShapeSquare, nil
	}
	if _, ok := shapeBlocks[v]; !ok {
		return "", fmt.Errorf("%w: unknown shape %q", ErrOption, s)
	}
	return v, nil
}

// WithShape sets the module shape of raster output. SVG output always uses
// square modules.
func WithShape(s Shape) Option {
	return func(c *config) { c.shape = s }
}

type gradient struct {
	angle    float64
	from, to color.RGBA
}

// WithGradient paints the modules with a linear gradient from one color to
// another. angle is in degrees: 0 runs left to right, 90 bottom to top.
func WithGradient(angle float64, from, to color.RGBA) Option {
	return func(c *config) { c.gradient = &gradient{angle: angle, from: from, to: to} }
}

// styleOptions returns the writer options for the configured shape and
// gradient.
func styleOptions(cfg config) []standard.ImageOption {
	var opts []standard.ImageOption

	switch cfg.shape {
	case ShapeSquare:
	case ShapeCircle:
		opts = append(opts, standard.WithCircleShape())
	default:
		opts = append(opts, standard.WithCustomShape(
			shapes.Assemble(shapes.SquareFinder(), shapeBlocks[cfg.shape])))
	}

	if g := cfg.gradient; g != nil {
		opts = append(opts, standard.WithFgGradient(standard.NewGradient(g.angle,
			standard.ColorStop{T: 0, Color: g.from},
			standard.ColorStop{T: 1, Color: g.to},
		)))
	}
	return opts
}
