package viewport

import (
	"fmt"
	"image"
)

// Viewport is the rectangle of the complex plane mapped onto the output
// pixel grid. From is the top-left corner (minimum re/im), To the
// bottom-right corner (maximum re/im).
type Viewport struct {
	From, To complex128
}

// Default is the full view of the set shown at startup and after a reset.
var Default = Viewport{
	From: complex(-1.7, -1.3),
	To:   complex(1.0, 1.3),
}

func New() Viewport {
	return Default
}

// Valid reports whether the rectangle has positive area.
func (v Viewport) Valid() bool {
	return real(v.To) > real(v.From) && imag(v.To) > imag(v.From)
}

func (v Viewport) Size() complex128 {
	return v.To - v.From
}

func (v Viewport) Center() complex128 {
	return (v.From + v.To) / 2
}

func (v Viewport) String() string {
	return fmt.Sprintf("[%g,%g]x[%g,%g]", real(v.From), real(v.To), imag(v.From), imag(v.To))
}

// PixelToComplex maps pixel (x, y) of a width x height surface to the
// complex plane. A non-positive surface maps everything to From.
func (v Viewport) PixelToComplex(x, y, width, height int) complex128 {
	if width <= 0 || height <= 0 {
		return v.From
	}
	size := v.Size()
	return complex(
		real(v.From)+real(size)*float64(x)/float64(width),
		imag(v.From)+imag(size)*float64(y)/float64(height),
	)
}

// CommitSelection zooms into the screen rectangle spanned by topLeft and
// bottomRight. The new extent is scaled from the current imaginary span on
// both axes, so a square drag on a non-square view changes the aspect
// ratio. It returns false and leaves v untouched if the selection or the
// resulting rectangle is degenerate.
func (v *Viewport) CommitSelection(topLeft, bottomRight image.Point, width, height int) bool {
	if width <= 0 || height <= 0 {
		return false
	}
	dx, dy := bottomRight.X-topLeft.X, bottomRight.Y-topLeft.Y
	if dx <= 0 || dy <= 0 {
		return false
	}

	span := imag(v.Size())
	from := v.PixelToComplex(topLeft.X, topLeft.Y, width, height)
	next := Viewport{
		From: from,
		To: from + complex(
			span*float64(dx)/float64(width),
			span*float64(dy)/float64(height),
		),
	}
	if !next.Valid() {
		return false
	}
	*v = next
	return true
}

// Reset restores the default rectangle.
func (v *Viewport) Reset() {
	*v = Default
}
