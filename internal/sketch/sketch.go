// Package sketch turns a color photograph into a pencil-sketch rendering.
//
// The filter is the classic dodge-blend recipe: convert to grayscale, invert,
// blur the inverted copy, color-dodge the grayscale layer with the blurred
// one, then equalize and rescale the result for contrast. Every stage returns
// a new buffer; inputs are never modified and nothing is retained between
// calls.
package sketch

import (
	"errors"
	"image"
)

// Filter constants. They are fixed; callers cannot tune them.
const (
	// Sigma is the standard deviation, in pixels, of the Gaussian blur.
	Sigma = 1.0
	// Epsilon keeps the dodge denominator away from zero.
	Epsilon = 1e-5
	// Contrast is the gain applied after histogram equalization.
	Contrast = 1.4
	// Brightness is the offset applied after histogram equalization.
	Brightness = -50.0
)

// Luma weights for red, green and blue.
const (
	LumaR = 0.2989
	LumaG = 0.5870
	LumaB = 0.1140
)

// ErrEmptyImage is returned when Convert is given a nil or zero-area image.
var ErrEmptyImage = errors.New("sketch: empty image")

// Convert renders img as a pencil sketch. The result has the same width and
// height as img and its bounds start at the origin.
func Convert(img image.Image) (*image.Gray, error) {
	if img == nil || img.Bounds().Empty() {
		return nil, ErrEmptyImage
	}

	gray := Luma(img)
	blurred := GaussianBlur(Invert(gray), Sigma)
	dodged := Dodge(gray, blurred)

	return ScaleContrast(EqualizeHist(dodged), Contrast, Brightness), nil
}
