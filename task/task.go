package task

import (
	"fmt"
	"image/color"

	"github.com/bamode/mandelbrot/fractal"
	"github.com/bamode/mandelbrot/palette"
	"github.com/bamode/mandelbrot/render"
)

// Band is the unit of distributed work: one pixel row of the image. The
// coordinator hands out empty bands and workers return them with Pixels
// holding width*3 RGB bytes.
type Band struct {
	ID            uint
	Row           int
	Pixels        []byte
	WorkerAddress string
}

func (b *Band) String() string {
	output := "{Band "
	output += fmt.Sprintf("ID: %d ", b.ID)
	output += fmt.Sprintf("Row: %d ", b.Row)
	output += fmt.Sprintf("Pixel Bytes: %d ", len(b.Pixels))
	output += fmt.Sprintf("Worker: %s}", b.WorkerAddress)
	return output
}

// Knot mirrors palette.Knot with the color unpacked into channel bytes so
// the value round-trips through gob.
type Knot struct {
	Position float64
	R, G, B  uint8
}

// Job carries the full render description from the coordinator to a
// worker. Complex values travel as float pairs because encoding/gob does
// not handle complex128.
type Job struct {
	Width  int
	Height int

	UpperLeftRe  float64
	UpperLeftIm  float64
	LowerRightRe float64
	LowerRightIm float64

	Kind   int
	SeedRe float64
	SeedIm float64

	Knots []Knot
}

// NewJob packs the resolved render inputs for the wire. The knots travel
// instead of the built palette; every worker builds the identical table
// locally.
func NewJob(bounds fractal.Bounds, rect fractal.Rectangle, kind fractal.Kind, seed complex128, knots []palette.Knot) Job {
	job := Job{
		Width:        bounds.Width,
		Height:       bounds.Height,
		UpperLeftRe:  real(rect.UpperLeft),
		UpperLeftIm:  imag(rect.UpperLeft),
		LowerRightRe: real(rect.LowerRight),
		LowerRightIm: imag(rect.LowerRight),
		Kind:         int(kind),
		SeedRe:       real(seed),
		SeedIm:       imag(seed),
	}
	for _, knot := range knots {
		job.Knots = append(job.Knots, Knot{
			Position: knot.Position,
			R:        knot.Color.R,
			G:        knot.Color.G,
			B:        knot.Color.B,
		})
	}
	return job
}

// Settings unpacks the job back into renderer settings, rebuilding the
// palette from the knot table.
func (j *Job) Settings() (render.Settings, error) {
	knots := make([]palette.Knot, len(j.Knots))
	for i, knot := range j.Knots {
		knots[i] = palette.Knot{
			Position: knot.Position,
			Color:    color.RGBA{R: knot.R, G: knot.G, B: knot.B, A: 255},
		}
	}
	pal, err := palette.Build(knots)
	if err != nil {
		return render.Settings{}, err
	}
	return render.Settings{
		Bounds: fractal.Bounds{Width: j.Width, Height: j.Height},
		Rect: fractal.Rectangle{
			UpperLeft:  complex(j.UpperLeftRe, j.UpperLeftIm),
			LowerRight: complex(j.LowerRightRe, j.LowerRightIm),
		},
		Kind:    fractal.Kind(j.Kind),
		Seed:    complex(j.SeedRe, j.SeedIm),
		Palette: pal,
	}, nil
}
