package main

import (
	"testing"

	"github.com/BrugadaSyndrome/bslogger"

	"github.com/bamode/mandelbrot/fractal"
)

func setRenderArgs() {
	fractalName = "mandel"
	outFile = "mandel.png"
	pixelsArg = "100x100"
	upperLeftArg = "-2,2"
	lowerRightArg = "2,-2"
	colorScheme = "wikipedia"
	paletteFile = ""
	seedArg = ""
	workers = 1
}

func TestResolveSettings(t *testing.T) {
	setRenderArgs()
	logger := bslogger.NewLogger("test", bslogger.Normal, nil)

	settings, err := resolveSettings(logger)
	if err != nil {
		t.Fatal(err)
	}
	if settings.Bounds != (fractal.Bounds{Width: 100, Height: 100}) {
		t.Errorf("bounds %v", settings.Bounds)
	}
	if settings.Kind != fractal.Mandelbrot {
		t.Errorf("kind %v", settings.Kind)
	}
	if settings.Palette == nil {
		t.Error("palette not built")
	}
}

func TestResolveSettingsAppliesAspectCorrection(t *testing.T) {
	setRenderArgs()
	pixelsArg = "200x100"
	logger := bslogger.NewLogger("test", bslogger.Normal, nil)

	settings, err := resolveSettings(logger)
	if err != nil {
		t.Fatal(err)
	}
	want := fractal.Rectangle{UpperLeft: complex(-2, 1), LowerRight: complex(2, -1)}
	if settings.Rect != want {
		t.Errorf("rect %+v, want %+v", settings.Rect, want)
	}
}

func TestResolveSettingsJuliaSeed(t *testing.T) {
	setRenderArgs()
	fractalName = "julia"
	seedArg = "-0.4,0.6"
	logger := bslogger.NewLogger("test", bslogger.Normal, nil)

	settings, err := resolveSettings(logger)
	if err != nil {
		t.Fatal(err)
	}
	if settings.Seed != complex(-0.4, 0.6) {
		t.Errorf("seed %v", settings.Seed)
	}
}

func TestResolveSettingsRejectsBadInput(t *testing.T) {
	logger := bslogger.NewLogger("test", bslogger.Normal, nil)

	cases := []func(){
		func() { pixelsArg = "100x" },
		func() { upperLeftArg = "-2," },
		func() { lowerRightArg = "" },
		func() { fractalName = "sierpinski" },
		func() { colorScheme = "no-such-palette" },
	}
	for i, corrupt := range cases {
		setRenderArgs()
		corrupt()
		if _, err := resolveSettings(logger); err == nil {
			t.Errorf("case %d: expected an error", i)
		}
	}
}
