package fractal

import "fmt"

// Bounds is the size of the output image in pixels.
type Bounds struct {
	Width  int
	Height int
}

func (b Bounds) String() string {
	return fmt.Sprintf("%dx%d", b.Width, b.Height)
}

// Rectangle is the area of the complex plane covered by the image. The
// imaginary axis decreases downward in pixel space, so
// UpperLeft has the larger imaginary part and LowerRight the larger real
// part.
type Rectangle struct {
	UpperLeft  complex128
	LowerRight complex128
}

func (r Rectangle) planeWidth() float64 {
	return real(r.LowerRight) - real(r.UpperLeft)
}

func (r Rectangle) planeHeight() float64 {
	return imag(r.UpperLeft) - imag(r.LowerRight)
}

// PixelToPoint returns the point on the complex plane corresponding to the
// (column, row) pixel of an image with the given bounds covering rect.
// Column and row are not clamped; passing (Width, Height) yields the lower
// right corner, which is how band sub-rectangles are derived.
func PixelToPoint(bounds Bounds, column int, row int, rect Rectangle) complex128 {
	return complex(
		real(rect.UpperLeft)+float64(column)*rect.planeWidth()/float64(bounds.Width),
		imag(rect.UpperLeft)-float64(row)*rect.planeHeight()/float64(bounds.Height),
	)
}

// CorrectAspect reconciles the rectangle with the pixel aspect ratio. When
// the two ratios differ, the extent of one axis is resized symmetrically
// about its center so the rectangle's width:height ratio matches
// width/height exactly: the imaginary extent when the image is at least as
// wide as it is tall, the real extent otherwise. The returned rectangle is
// the one rendering must use; callers report the new corners when they
// changed.
func (r Rectangle) CorrectAspect(bounds Bounds) Rectangle {
	pixelRatio := float64(bounds.Width) / float64(bounds.Height)
	if r.planeWidth() == pixelRatio*r.planeHeight() {
		return r
	}

	if pixelRatio >= 1 {
		height := r.planeWidth() / pixelRatio
		center := (imag(r.UpperLeft) + imag(r.LowerRight)) / 2
		r.UpperLeft = complex(real(r.UpperLeft), center+height/2)
		r.LowerRight = complex(real(r.LowerRight), center-height/2)
		return r
	}

	width := r.planeHeight() * pixelRatio
	center := (real(r.UpperLeft) + real(r.LowerRight)) / 2
	r.UpperLeft = complex(center-width/2, imag(r.UpperLeft))
	r.LowerRight = complex(center+width/2, imag(r.LowerRight))
	return r
}
