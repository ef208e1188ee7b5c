package sketch

import "math"

// truncate is the number of standard deviations covered by the kernel.
const truncate = 4.0

// GaussianKernel returns a normalized 1D Gaussian kernel for sigma.
//
// The kernel has 2*r+1 taps with r = round(truncate*sigma). For sigma <= 0 it
// is the identity kernel [1].
func GaussianKernel(sigma float64) []float64 {
	if sigma <= 0 {
		return []float64{1}
	}

	r := int(truncate*sigma + 0.5)
	kernel := make([]float64, 2*r+1)

	twoSigmaSq := 2 * sigma * sigma
	sum := 0.0
	for i := range kernel {
		x := float64(i - r)
		kernel[i] = math.Exp(-(x * x) / twoSigmaSq)
		sum += kernel[i]
	}
	for i := range kernel {
		kernel[i] /= sum
	}
	return kernel
}

// GaussianBlur smooths p with an isotropic Gaussian of standard deviation
// sigma. The kernel is applied separably, rows then columns. Samples outside
// the plane are mirrored about the edge (d c b a | a b c d | d c b a).
func GaussianBlur(p *Plane, sigma float64) *Plane {
	kernel := GaussianKernel(sigma)
	r := len(kernel) / 2

	tmp := NewPlane(p.Width, p.Height)
	for y := 0; y < p.Height; y++ {
		for x := 0; x < p.Width; x++ {
			var acc float64
			for k, w := range kernel {
				acc += w * p.At(reflect(x+k-r, p.Width), y)
			}
			tmp.Set(x, y, acc)
		}
	}

	dst := NewPlane(p.Width, p.Height)
	for y := 0; y < p.Height; y++ {
		for x := 0; x < p.Width; x++ {
			var acc float64
			for k, w := range kernel {
				acc += w * tmp.At(x, reflect(y+k-r, p.Height))
			}
			dst.Set(x, y, acc)
		}
	}
	return dst
}

// reflect maps i onto [0, n) by half-sample symmetric mirroring, which has a
// period of 2n.
func reflect(i, n int) int {
	period := 2 * n
	i %= period
	if i < 0 {
		i += period
	}
	if i >= n {
		i = period - 1 - i
	}
	return i
}
