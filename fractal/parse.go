package fractal

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseBounds parses an image size written as "400x600".
func ParseBounds(s string) (Bounds, error) {
	left, right, found := strings.Cut(s, "x")
	if !found {
		return Bounds{}, fmt.Errorf("image size %q must look like 400x600", s)
	}
	width, errW := strconv.Atoi(left)
	height, errH := strconv.Atoi(right)
	if errW != nil || errH != nil {
		return Bounds{}, fmt.Errorf("image size %q must look like 400x600", s)
	}
	return Bounds{Width: width, Height: height}, nil
}

// ParseComplex parses a point on the complex plane written as a
// comma-separated pair, like "0.5,-10.32" for 0.5 - 10.32i.
func ParseComplex(s string) (complex128, error) {
	left, right, found := strings.Cut(s, ",")
	if !found {
		return 0, fmt.Errorf("complex point %q must look like -2.0,1.5", s)
	}
	re, errRe := strconv.ParseFloat(left, 64)
	im, errIm := strconv.ParseFloat(right, 64)
	if errRe != nil || errIm != nil {
		return 0, fmt.Errorf("complex point %q must look like -2.0,1.5", s)
	}
	return complex(re, im), nil
}
