package sketch

import (
	"image"
	"math"
)

// EqualizeHist spreads the intensities of src over the full [0, 255] range
// using its global cumulative histogram.
//
// The lowest occupied level maps to 0 and the highest to 255. An image with a
// single occupied level is returned unchanged.
func EqualizeHist(src *image.Gray) *image.Gray {
	b := src.Bounds()
	dst := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	if b.Empty() {
		return dst
	}

	var hist [256]int
	for y := b.Min.Y; y < b.Max.Y; y++ {
		off := src.PixOffset(b.Min.X, y)
		for _, v := range src.Pix[off : off+b.Dx()] {
			hist[v]++
		}
	}

	lo := 0
	for hist[lo] == 0 {
		lo++
	}

	var lut [256]uint8
	total := b.Dx() * b.Dy()
	if hist[lo] == total {
		for i := range lut {
			lut[i] = uint8(i)
		}
	} else {
		scale := 255 / float64(total-hist[lo])
		sum := 0
		for i := lo + 1; i < len(lut); i++ {
			sum += hist[i]
			lut[i] = clampUint8(math.RoundToEven(float64(sum) * scale))
		}
	}

	return remap(src, dst, &lut)
}

// ScaleContrast returns clamp(round(alpha*v + beta), 0, 255) for every pixel
// of src.
func ScaleContrast(src *image.Gray, alpha, beta float64) *image.Gray {
	var lut [256]uint8
	for i := range lut {
		lut[i] = clampUint8(math.RoundToEven(alpha*float64(i) + beta))
	}

	b := src.Bounds()
	return remap(src, image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy())), &lut)
}

func remap(src, dst *image.Gray, lut *[256]uint8) *image.Gray {
	b := src.Bounds()
	for y := 0; y < b.Dy(); y++ {
		in := src.Pix[src.PixOffset(b.Min.X, b.Min.Y+y):]
		out := dst.Pix[y*dst.Stride : y*dst.Stride+b.Dx()]
		for x := range out {
			out[x] = lut[in[x]]
		}
	}
	return dst
}
