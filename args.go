package main

import (
	"flag"
	"fmt"

	"github.com/BrugadaSyndrome/bslogger"

	"github.com/bamode/mandelbrot/fractal"
	"github.com/bamode/mandelbrot/palette"
	"github.com/bamode/mandelbrot/render"
)

var (
	colorScheme, coordinatorFile, fractalName, lowerRightArg, outFile, paletteFile, pixelsArg, seedArg, upperLeftArg, workerFile string
	workers                                                                                                                     int
)

func parseArguments() {
	// Render values
	flag.StringVar(&fractalName, "fractal", "mandel", "Fractal to render: mandel, julia or ship")
	flag.StringVar(&outFile, "out", "mandel.png", "Output image file (.png, .jpg, .bmp or .tif)")
	flag.StringVar(&pixelsArg, "pixels", "1000x1000", "Image size, like 1000x750")
	flag.StringVar(&upperLeftArg, "upperLeft", "-2,2", "Upper left corner of the complex plane, like -2.0,2.0 for -2+2i")
	flag.StringVar(&lowerRightArg, "lowerRight", "2,-2", "Lower right corner of the complex plane, like 2.0,-2.0 for 2-2i")
	flag.StringVar(&colorScheme, "color", "wikipedia", fmt.Sprintf("Color scheme, one of %v", palette.Names()))
	flag.StringVar(&paletteFile, "paletteFile", "", "Json file with palette knots (overrides -color)")
	flag.StringVar(&seedArg, "seed", "", "Seed for the julia set, like 0.4,0.6 for 0.4+0.6i")
	flag.IntVar(&workers, "workers", 0, "Concurrent band workers (0 uses all CPUs)")

	// Distributed values
	flag.StringVar(&coordinatorFile, "coordinator", "", "Run as coordinator with this json settings file")
	flag.StringVar(&workerFile, "worker", "", "Run as worker with this json settings file")

	flag.Parse()
}

// resolveSettings turns the raw flag strings into verified renderer
// settings. Every validation failure surfaces here, before any pixel is
// computed.
func resolveSettings(logger bslogger.Logger) (render.Settings, error) {
	bounds, err := fractal.ParseBounds(pixelsArg)
	if err != nil {
		return render.Settings{}, err
	}
	upperLeft, err := fractal.ParseComplex(upperLeftArg)
	if err != nil {
		return render.Settings{}, err
	}
	lowerRight, err := fractal.ParseComplex(lowerRightArg)
	if err != nil {
		return render.Settings{}, err
	}
	kind, err := fractal.ParseKind(fractalName)
	if err != nil {
		return render.Settings{}, err
	}

	seed := fractal.DefaultJuliaSeed
	if seedArg != "" {
		seed, err = fractal.ParseComplex(seedArg)
		if err != nil {
			return render.Settings{}, err
		}
	}

	var knots []palette.Knot
	if paletteFile != "" {
		knots, err = palette.LoadFile(paletteFile)
	} else {
		knots, err = palette.Lookup(colorScheme)
	}
	if err != nil {
		return render.Settings{}, err
	}
	pal, err := palette.Build(knots)
	if err != nil {
		return render.Settings{}, err
	}

	rect := fractal.Rectangle{UpperLeft: upperLeft, LowerRight: lowerRight}
	corrected := rect.CorrectAspect(bounds)
	if corrected != rect {
		logger.Infof("Corrected upper left to %v", corrected.UpperLeft)
		logger.Infof("Corrected lower right to %v", corrected.LowerRight)
	}

	return render.Settings{
		Bounds:  bounds,
		Rect:    corrected,
		Kind:    kind,
		Seed:    seed,
		Palette: pal,
		Workers: workers,
	}, nil
}
