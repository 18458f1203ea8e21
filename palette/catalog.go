package palette

import (
	"encoding/json"
	"fmt"
	"image/color"
	"sort"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/bamode/mandelbrot/misc"
)

// The catalog of named palettes. Positions live in escape-count space
// (0..255); colors are the control points the gradient passes through.
var catalog = map[string][]Knot{
	// The coloring used for the Mandelbrot images on Wikipedia.
	"wikipedia": {
		{Position: 0, Color: mustHex("#000764")},
		{Position: 40.8, Color: mustHex("#206bcb")},
		{Position: 107.1, Color: mustHex("#edffff")},
		{Position: 163.8, Color: mustHex("#ffaa00")},
		{Position: 218.7, Color: mustHex("#310230")},
		{Position: 255, Color: mustHex("#000200")},
	},
	"vaportest": {
		{Position: 0, Color: mustHex("#2a2139")},
		{Position: 64, Color: mustHex("#b967ff")},
		{Position: 128, Color: mustHex("#ff71ce")},
		{Position: 192, Color: mustHex("#01cdfe")},
		{Position: 255, Color: mustHex("#05ffa1")},
	},
	"inferno": {
		{Position: 0, Color: mustHex("#05000a")},
		{Position: 51, Color: mustHex("#780c28")},
		{Position: 114.75, Color: mustHex("#f03c0a")},
		{Position: 178.5, Color: mustHex("#ffc832")},
		{Position: 255, Color: mustHex("#140200")},
	},
	"frostfire": {
		{Position: 0, Color: mustHex("#001e32")},
		{Position: 89.25, Color: mustHex("#3cbed2")},
		{Position: 165.75, Color: mustHex("#ffffff")},
		{Position: 229.5, Color: mustHex("#ff8c28")},
		{Position: 255, Color: mustHex("#140500")},
	},
	"grayscale": {
		{Position: 0, Color: mustHex("#000000")},
		{Position: 255, Color: mustHex("#ffffff")},
	},
}

// Lookup returns the knot table for a named palette from the catalog.
func Lookup(name string) ([]Knot, error) {
	knots, ok := catalog[name]
	if !ok {
		return nil, fmt.Errorf("unknown palette %q (have %v)", name, Names())
	}
	return knots, nil
}

// Names lists the catalog palettes for usage text.
func Names() []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

type knotFile struct {
	Position float64 `json:"position"`
	Color    string  `json:"color"`
}

// LoadFile reads a user supplied palette: a JSON array of
// {"position": N, "color": "#rrggbb"} objects, ordered by position.
func LoadFile(fileName string) ([]Knot, error) {
	err, fileBytes := misc.ReadFile(fileName)
	if err != nil {
		return nil, err
	}

	var entries []knotFile
	if err := json.Unmarshal(fileBytes, &entries); err != nil {
		return nil, fmt.Errorf("unable to parse palette file %s - %s", fileName, err)
	}

	knots := make([]Knot, len(entries))
	for i, entry := range entries {
		c, err := colorful.Hex(entry.Color)
		if err != nil {
			return nil, fmt.Errorf("bad color %q in palette file %s - %s", entry.Color, fileName, err)
		}
		r, g, b := c.RGB255()
		knots[i] = Knot{
			Position: entry.Position,
			Color:    color.RGBA{R: r, G: g, B: b, A: 255},
		}
	}
	return knots, nil
}

func mustHex(s string) color.RGBA {
	c, err := colorful.Hex(s)
	if err != nil {
		panic("palette catalog: " + err.Error())
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
