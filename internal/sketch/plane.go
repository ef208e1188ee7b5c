package sketch

import (
	"image"
	"image/color"
	"math"
)

// Plane is a single-channel buffer of fractional intensities, laid out row by
// row. It carries intermediate results that must not be quantized yet.
type Plane struct {
	Width  int
	Height int
	Pix    []float64
}

// NewPlane allocates a zeroed w×h plane.
func NewPlane(w, h int) *Plane {
	return &Plane{Width: w, Height: h, Pix: make([]float64, w*h)}
}

// At returns the value at column x, row y.
func (p *Plane) At(x, y int) float64 {
	return p.Pix[y*p.Width+x]
}

// Set stores v at column x, row y.
func (p *Plane) Set(x, y int, v float64) {
	p.Pix[y*p.Width+x] = v
}

func (p *Plane) sameSize(q *Plane) bool {
	return p.Width == q.Width && p.Height == q.Height
}

// Gray quantizes the plane to 8 bits, rounding to nearest and clamping to
// [0, 255].
func (p *Plane) Gray() *image.Gray {
	dst := image.NewGray(image.Rect(0, 0, p.Width, p.Height))
	for y := 0; y < p.Height; y++ {
		row := dst.Pix[y*dst.Stride : y*dst.Stride+p.Width]
		for x := range row {
			row[x] = clampUint8(math.Round(p.At(x, y)))
		}
	}
	return dst
}

// Luma converts img to a grayscale plane using the weights LumaR, LumaG and
// LumaB. Alpha is ignored: the color channels are read un-premultiplied.
func Luma(img image.Image) *Plane {
	b := img.Bounds()
	p := NewPlane(b.Dx(), b.Dy())

	switch src := img.(type) {
	case *image.NRGBA:
		for y := 0; y < p.Height; y++ {
			off := src.PixOffset(b.Min.X, b.Min.Y+y)
			for x := 0; x < p.Width; x++ {
				s := src.Pix[off+4*x : off+4*x+3 : off+4*x+3]
				p.Set(x, y, weigh(s[0], s[1], s[2]))
			}
		}
	default:
		for y := 0; y < p.Height; y++ {
			for x := 0; x < p.Width; x++ {
				c := color.NRGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
				p.Set(x, y, weigh(c.R, c.G, c.B))
			}
		}
	}
	return p
}

func weigh(r, g, b uint8) float64 {
	return LumaR*float64(r) + LumaG*float64(g) + LumaB*float64(b)
}

// Grayscale returns the 8-bit grayscale form of img, rounded to nearest.
func Grayscale(img image.Image) *image.Gray {
	return Luma(img).Gray()
}

// Invert returns 255 - v for every value of p.
func Invert(p *Plane) *Plane {
	dst := NewPlane(p.Width, p.Height)
	for i, v := range p.Pix {
		dst.Pix[i] = 255 - v
	}
	return dst
}

// Dodge color-dodges the back layer with the front layer:
//
//	result = clamp(trunc(back * 256 / (255 - front + Epsilon)), 0, 255)
//
// A front value of 255 saturates the result instead of dividing by zero.
// Dodge panics if the planes differ in size.
func Dodge(back, front *Plane) *image.Gray {
	if !back.sameSize(front) {
		panic("sketch: dodge layers differ in size")
	}

	dst := image.NewGray(image.Rect(0, 0, back.Width, back.Height))
	for y := 0; y < back.Height; y++ {
		row := dst.Pix[y*dst.Stride : y*dst.Stride+back.Width]
		for x := range row {
			v := back.At(x, y) * 256 / (255 - front.At(x, y) + Epsilon)
			row[x] = clampUint8(math.Trunc(v))
		}
	}
	return dst
}

func clampUint8(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 255:
		return 255
	default:
		return uint8(v)
	}
}
