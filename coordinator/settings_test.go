package coordinator

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewSettingsDefaults(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "coordinator.json")
	contents := `{"ServerAddress": "127.0.0.1:51000"}`
	if err := os.WriteFile(fileName, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}

	s := NewSettings(fileName)
	if s.Fractal != "mandel" {
		t.Errorf("Fractal = %q", s.Fractal)
	}
	if s.Palette != "wikipedia" {
		t.Errorf("Palette = %q", s.Palette)
	}
	if s.Pixels != "1000x1000" {
		t.Errorf("Pixels = %q", s.Pixels)
	}
	if s.UpperLeft != "-2,2" || s.LowerRight != "2,-2" {
		t.Errorf("corners = %q, %q", s.UpperLeft, s.LowerRight)
	}
	if s.OutFile != "mandel.png" {
		t.Errorf("OutFile = %q", s.OutFile)
	}
	if s.ServerAddress != "127.0.0.1:51000" {
		t.Errorf("ServerAddress = %q", s.ServerAddress)
	}
}

func TestNewSettingsKeepsExplicitValues(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "coordinator.json")
	contents := `{
		"ServerAddress": "127.0.0.1:51000",
		"Fractal": "ship",
		"OutFile": "ship.bmp",
		"Pixels": "640x480",
		"Palette": "inferno"
	}`
	if err := os.WriteFile(fileName, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}

	s := NewSettings(fileName)
	if s.Fractal != "ship" || s.OutFile != "ship.bmp" || s.Pixels != "640x480" || s.Palette != "inferno" {
		t.Errorf("explicit values overwritten: %+v", s)
	}
}
