package main

import (
	"time"

	"github.com/BrugadaSyndrome/bslogger"

	"github.com/bamode/mandelbrot/coordinator"
	"github.com/bamode/mandelbrot/misc"
	"github.com/bamode/mandelbrot/render"
	"github.com/bamode/mandelbrot/worker"
)

func main() {
	parseArguments()

	if coordinatorFile != "" {
		coordinator.NewCoordinator(coordinatorFile).Run()
		return
	}
	if workerFile != "" {
		worker.NewWorker(workerFile).Run()
		return
	}

	startRender()
}

func startRender() {
	logger := bslogger.NewLogger("Mandelbrot", bslogger.Normal, nil)

	settings, err := resolveSettings(logger)
	misc.CheckError(err, logger, misc.Fatal)

	renderer, err := render.NewRenderer(settings)
	misc.CheckError(err, logger, misc.Fatal)

	startTime := time.Now()
	pixels := renderer.Render()
	logger.Infof("Rendered %s %s in %s", settings.Kind, settings.Bounds, time.Since(startTime))

	misc.CheckError(render.WriteImage(pixels, settings.Bounds, outFile), logger, misc.Fatal)
	logger.Infof("Saved image to %s", outFile)
}
