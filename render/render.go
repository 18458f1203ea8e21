package render

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/BrugadaSyndrome/bslogger"
	"golang.org/x/sync/errgroup"

	"github.com/bamode/mandelbrot/fractal"
	"github.com/bamode/mandelbrot/palette"
)

type Settings struct {
	logger bslogger.Logger

	Bounds  fractal.Bounds
	Rect    fractal.Rectangle
	Kind    fractal.Kind
	Seed    complex128
	Palette *palette.Palette
	Workers int
}

func (s *Settings) Verify() error {
	s.logger = bslogger.NewLogger("RenderSettings", bslogger.Normal, nil)

	if s.Bounds.Width < 1 || s.Bounds.Height < 1 {
		return fmt.Errorf("image bounds must be at least 1x1, got %s", s.Bounds)
	}
	if real(s.Rect.LowerRight) < real(s.Rect.UpperLeft) || imag(s.Rect.UpperLeft) < imag(s.Rect.LowerRight) {
		return fmt.Errorf("plane rectangle corners are swapped: upper left %v, lower right %v", s.Rect.UpperLeft, s.Rect.LowerRight)
	}
	if s.Palette == nil {
		return errors.New("no palette supplied")
	}
	if s.Kind == fractal.Julia && s.Seed == 0 {
		s.Seed = fractal.DefaultJuliaSeed
	}
	if s.Workers < 1 {
		s.Workers = runtime.NumCPU()
		s.logger.Debugf("Defaulting to %d workers", s.Workers)
	}

	return nil
}

// Renderer fills one pixel buffer for one fractal kind. The buffer is
// row-major RGB, 3 bytes per pixel, split into one-row bands that are
// computed independently.
type Renderer struct {
	logger   bslogger.Logger
	settings Settings
}

func NewRenderer(settings Settings) (*Renderer, error) {
	if err := settings.Verify(); err != nil {
		return nil, err
	}
	return &Renderer{
		logger:   bslogger.NewLogger(settings.Kind.String(), bslogger.Normal, nil),
		settings: settings,
	}, nil
}

// Render computes the full image. Every band owns a disjoint slice of the
// shared buffer, so the workers need no synchronization beyond the final
// Wait, and the output bytes do not depend on the worker count.
func (r *Renderer) Render() []byte {
	bounds := r.settings.Bounds
	stride := bounds.Width * 3
	pixels := make([]byte, stride*bounds.Height)

	group := new(errgroup.Group)
	group.SetLimit(r.settings.Workers)
	for row := 0; row < bounds.Height; row++ {
		band := pixels[row*stride : (row+1)*stride]
		top := row
		group.Go(func() error {
			r.renderBand(top, 1, band)
			return nil
		})
	}
	// Band computation is pure, the group only fences completion.
	_ = group.Wait()

	return pixels
}

// RenderRow computes a single row band into a fresh slice. Distributed
// workers use this to produce one task result at a time.
func (r *Renderer) RenderRow(row int) []byte {
	band := make([]byte, r.settings.Bounds.Width*3)
	r.renderBand(row, 1, band)
	return band
}

// renderBand fills the band covering pixel rows [top, top+rows). The band
// gets its own plane sub-rectangle so that pixel mapping inside the band
// is identical to mapping against the full image.
func (r *Renderer) renderBand(top int, rows int, band []byte) {
	bounds := r.settings.Bounds
	bandBounds := fractal.Bounds{Width: bounds.Width, Height: rows}
	bandRect := fractal.Rectangle{
		UpperLeft:  fractal.PixelToPoint(bounds, 0, top, r.settings.Rect),
		LowerRight: fractal.PixelToPoint(bounds, bounds.Width, top+rows, r.settings.Rect),
	}

	for row := 0; row < rows; row++ {
		for column := 0; column < bandBounds.Width; column++ {
			point := fractal.PixelToPoint(bandBounds, column, row, bandRect)
			pix := (row*bandBounds.Width + column) * 3

			// Points that never escape are painted black.
			iteration, escaped := fractal.EscapeTime(r.settings.Kind, point, r.settings.Seed, fractal.MaxIterations)
			if !escaped {
				band[pix], band[pix+1], band[pix+2] = 0, 0, 0
				continue
			}
			c := r.settings.Palette.At(iteration)
			band[pix], band[pix+1], band[pix+2] = c.R, c.G, c.B
		}
	}
}
