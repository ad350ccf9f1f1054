package fractal

import (
	"image"
	"image/color"
	"math"

	"github.com/tamjidrahman/mandelzoom/viewport"
)

// MaxIter bounds the escape-time loop and normalizes the color ramp.
const MaxIter = 255

// bailout is the squared escape radius.
const bailout = 4.0

var black = color.RGBA{0, 0, 0, 255}

// Iterate runs z = z*z + c from z = 0. If |z|^2 exceeds 4 it reports the
// 0-based step at which that happened along with |z|^2 at that step.
// Otherwise escaped is false and iterations is maxIter.
func Iterate(c complex128, maxIter uint32) (escaped bool, iterations uint32, normSqr float64) {
	var z complex128
	for i := uint32(0); i < maxIter; i++ {
		z = z*z + c

		normSqr = real(z)*real(z) + imag(z)*imag(z)
		if normSqr > bailout {
			return true, i, normSqr
		}
	}
	return false, maxIter, normSqr
}

// SmoothValue is the continuous escape count of an escaped orbit. Only
// meaningful for normSqr > 4.
func SmoothValue(iterations uint32, normSqr float64) float64 {
	logZn := math.Log(normSqr) / 2
	nu := math.Log(logZn/math.Ln2) / math.Ln2
	return float64(iterations) + 1 - nu
}

// ColorFor evaluates c and colors it with the given strategy. Points that
// do not escape within maxIter steps are opaque black.
func ColorFor(c complex128, maxIter uint32, coloring Coloring) color.RGBA {
	escaped, n, normSqr := Iterate(c, maxIter)
	if !escaped {
		return black
	}
	return coloring.escaped(n, normSqr, maxIter)
}

// Render fills dst row by row, mapping each pixel through vp. It returns
// false without touching dst when dst is empty.
func Render(dst *image.RGBA, vp viewport.Viewport, maxIter uint32, coloring Coloring) bool {
	b := dst.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 {
		return false
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := vp.PixelToComplex(x, y, w, h)
			dst.SetRGBA(b.Min.X+x, b.Min.Y+y, ColorFor(c, maxIter, coloring))
		}
	}
	return true
}
