package coordinator

import (
	"encoding/json"
	"fmt"

	"github.com/BrugadaSyndrome/bslogger"

	"github.com/bamode/mandelbrot/misc"
)

type settings struct {
	logger bslogger.Logger

	Fractal       string
	LowerRight    string
	OutFile       string
	Palette       string
	PaletteFile   string
	Pixels        string
	Seed          string
	ServerAddress string
	UpperLeft     string
}

func NewSettings(settingsFile string) settings {
	s := settings{
		logger: bslogger.NewLogger("CoordinatorSettings", bslogger.Normal, nil),
	}
	err, fileBytes := misc.ReadFile(settingsFile)
	misc.CheckError(err, s.logger, misc.Fatal)
	misc.CheckError(json.Unmarshal(fileBytes, &s), s.logger, misc.Fatal)
	misc.CheckError(s.Verify(), s.logger, misc.Fatal)
	s.logger.Debug(s.String())
	return s
}

func (s *settings) String() string {
	output := "\nCoordinator settings\n"
	output += fmt.Sprintf("My Address: %s\n", s.ServerAddress)
	output += fmt.Sprintf("Fractal: %s\n", s.Fractal)
	output += fmt.Sprintf("Out File: %s\n", s.OutFile)
	output += fmt.Sprintf("Pixels: %s\n", s.Pixels)
	output += fmt.Sprintf("Upper Left: %s\n", s.UpperLeft)
	output += fmt.Sprintf("Lower Right: %s\n", s.LowerRight)
	output += fmt.Sprintf("Palette: %s\n", s.Palette)
	return output
}

func (s *settings) Verify() error {
	if s.Fractal == "" {
		s.Fractal = "mandel"
	}
	if s.LowerRight == "" {
		s.LowerRight = "2,-2"
	}
	if s.OutFile == "" {
		s.OutFile = "mandel.png"
	}
	if s.Palette == "" && s.PaletteFile == "" {
		s.Palette = "wikipedia"
	}
	if s.Pixels == "" {
		s.Pixels = "1000x1000"
	}
	if s.ServerAddress == "" {
		s.ServerAddress = fmt.Sprintf("%s:%s", misc.GetLocalAddress(), "51000")
	}
	if s.UpperLeft == "" {
		s.UpperLeft = "-2,2"
	}
	return nil
}
