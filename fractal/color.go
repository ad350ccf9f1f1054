package fractal

import (
	"fmt"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Coloring selects how escaped points are colored. Points inside the set
// are black under every strategy.
type Coloring uint8

const (
	// SmoothHue sweeps the hue wheel along the gamma-compressed smooth
	// escape value.
	SmoothHue Coloring = iota
	// GrayscaleLinear maps the raw step count linearly onto gray levels.
	GrayscaleLinear
)

// gamma compresses the normalized smooth value so that fast escapes
// still cover a visible part of the hue wheel.
const gamma = 0.3

func (c Coloring) String() string {
	switch c {
	case SmoothHue:
		return "smooth"
	case GrayscaleLinear:
		return "gray"
	default:
		return fmt.Sprintf("Coloring(%d)", uint8(c))
	}
}

// Next cycles through the available strategies.
func (c Coloring) Next() Coloring {
	if c == GrayscaleLinear {
		return SmoothHue
	}
	return GrayscaleLinear
}

// ParseColoring accepts the names produced by Coloring.String.
func ParseColoring(s string) (Coloring, error) {
	switch s {
	case "smooth", "hue":
		return SmoothHue, nil
	case "gray", "grey", "grayscale":
		return GrayscaleLinear, nil
	}
	return SmoothHue, fmt.Errorf("unknown coloring %q (want smooth or gray)", s)
}

func (c Coloring) escaped(iterations uint32, normSqr float64, maxIter uint32) color.RGBA {
	switch c {
	case GrayscaleLinear:
		v := float64(iterations) / float64(maxIter)
		r, g, b := colorful.Color{R: v, G: v, B: v}.Clamped().RGB255()
		return color.RGBA{r, g, b, 255}
	default:
		// Orbits that leave far past the bailout on the first step have a
		// negative smooth value; pin them to the start of the ramp.
		mu := math.Max(SmoothValue(iterations, normSqr), 0)
		t := math.Pow(mu/float64(maxIter), gamma)
		r, g, b := HSVToRGB(360*t, 1, 1)
		return color.RGBA{r, g, b, 255}
	}
}

// HSVToRGB converts hue in degrees [0,360] with saturation and value in
// [0,1] to rounded 8-bit channels. Hue 360 is treated as red.
func HSVToRGB(h, s, v float64) (r, g, b uint8) {
	chroma := v * s
	x := chroma * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - chroma

	var rp, gp, bp float64
	switch {
	case h < 60:
		rp, gp, bp = chroma, x, 0
	case h < 120:
		rp, gp, bp = x, chroma, 0
	case h < 180:
		rp, gp, bp = 0, chroma, x
	case h < 240:
		rp, gp, bp = 0, x, chroma
	case h < 300:
		rp, gp, bp = x, 0, chroma
	default:
		rp, gp, bp = chroma, 0, x
	}

	return colorful.Color{R: rp + m, G: gp + m, B: bp + m}.Clamped().RGB255()
}
