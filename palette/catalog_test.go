package palette

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLookup(t *testing.T) {
	for _, name := range Names() {
		knots, err := Lookup(name)
		if err != nil {
			t.Errorf("Lookup(%q): %v", name, err)
			continue
		}
		// Every catalog entry must survive palette construction.
		if _, err := Build(knots); err != nil {
			t.Errorf("Build(%s): %v", name, err)
		}
	}

	if _, err := Lookup("no-such-palette"); err == nil {
		t.Error("expected an error for an unknown palette name")
	}
}

func TestNames(t *testing.T) {
	names := Names()
	if len(names) == 0 {
		t.Fatal("catalog is empty")
	}
	found := false
	for _, name := range names {
		if name == "wikipedia" {
			found = true
		}
	}
	if !found {
		t.Errorf("catalog %v is missing the default palette", names)
	}
}

func TestLoadFile(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "palette.json")
	contents := `[
		{"position": 0, "color": "#000764"},
		{"position": 127.5, "color": "#edffff"},
		{"position": 255, "color": "#ffaa00"}
	]`
	if err := os.WriteFile(fileName, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := LoadFile(fileName)
	if err != nil {
		t.Fatal(err)
	}
	want := []Knot{
		{Position: 0, Color: color.RGBA{R: 0x00, G: 0x07, B: 0x64, A: 255}},
		{Position: 127.5, Color: color.RGBA{R: 0xed, G: 0xff, B: 0xff, A: 255}},
		{Position: 255, Color: color.RGBA{R: 0xff, G: 0xaa, B: 0x00, A: 255}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("knots mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadFileErrors(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected an error for a missing file")
	}

	fileName := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(fileName, []byte(`[{"position": 0, "color": "red"}]`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(fileName); err == nil {
		t.Error("expected an error for an unparseable color")
	}
}
