package palette

import (
	"errors"
	"fmt"
	"image/color"
)

// Size is the number of entries in every palette. The interpolant is
// sampled this densely so that neighboring escape counts land on visibly
// smooth color steps.
const Size = 2048

// Knot is one control color for palette construction: a sample position in
// escape-count space and the color the gradient must pass through there.
type Knot struct {
	Position float64
	Color    color.RGBA
}

// Palette is an immutable lookup table of Size colors built once before
// rendering. It is shared read-only by all band workers.
type Palette struct {
	colors [Size]color.RGBA
	min    float64
	max    float64
}

// Build constructs the palette from at least two knots with strictly
// increasing positions. Each RGB channel is interpolated independently
// with the monotone cubic interpolant and sampled at Size positions
// spanning the knot range inclusively. Interpolated values are truncated
// to uint8, matching the gradient tables this program has always
// produced.
func Build(knots []Knot) (*Palette, error) {
	if len(knots) < 2 {
		return nil, errors.New("palette needs at least 2 knots")
	}

	x := make([]float64, len(knots))
	for i, knot := range knots {
		if i > 0 && knot.Position <= x[i-1] {
			return nil, fmt.Errorf("knot positions must be strictly increasing: knot %d at %g after %g", i, knot.Position, x[i-1])
		}
		x[i] = knot.Position
	}

	channels := [3][]float64{}
	for c := range channels {
		channels[c] = make([]float64, len(knots))
	}
	for i, knot := range knots {
		channels[0][i] = float64(knot.Color.R)
		channels[1][i] = float64(knot.Color.G)
		channels[2][i] = float64(knot.Color.B)
	}

	p := &Palette{min: x[0], max: x[len(x)-1]}
	for c, y := range channels {
		m := tangents(x, y)
		for i := 0; i < Size; i++ {
			q := p.min + float64(i)*(p.max-p.min)/(Size-1)
			v := truncate(interpolate(q, x, y, m))
			switch c {
			case 0:
				p.colors[i].R = v
			case 1:
				p.colors[i].G = v
			case 2:
				p.colors[i].B = v
			}
		}
	}
	for i := range p.colors {
		p.colors[i].A = 255
	}
	return p, nil
}

// At returns the palette entry for an escape count. Counts are scaled from
// the knot-position range onto the table and clamped at the ends, so any
// finite count has a well defined color.
func (p *Palette) At(iteration int) color.RGBA {
	q := float64(iteration)
	if q <= p.min {
		return p.colors[0]
	}
	if q >= p.max {
		return p.colors[Size-1]
	}
	return p.colors[int((q-p.min)/(p.max-p.min)*(Size-1))]
}

// The interpolant cannot overshoot the knot values, but the 8-bit
// conversion still guards the edges against stray rounding.
func truncate(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}
