package fractal

import "testing"

func TestParseBounds(t *testing.T) {
	good := []struct {
		in   string
		want Bounds
	}{
		{"400x600", Bounds{Width: 400, Height: 600}},
		{"10x20", Bounds{Width: 10, Height: 20}},
	}
	for _, c := range good {
		got, err := ParseBounds(c.in)
		if err != nil || got != c.want {
			t.Errorf("ParseBounds(%q) = (%v, %v), want %v", c.in, got, err, c.want)
		}
	}

	bad := []string{"", "10x", "x10", "10,20", "0.5x1.5", "tenxtwenty"}
	for _, in := range bad {
		if _, err := ParseBounds(in); err == nil {
			t.Errorf("ParseBounds(%q): expected an error", in)
		}
	}
}

func TestParseComplex(t *testing.T) {
	good := []struct {
		in   string
		want complex128
	}{
		{"0.5,-10.32", complex(0.5, -10.32)},
		{"10,20", complex(10, 20)},
		{"-2.0,2.0", complex(-2, 2)},
	}
	for _, c := range good {
		got, err := ParseComplex(c.in)
		if err != nil || got != c.want {
			t.Errorf("ParseComplex(%q) = (%v, %v), want %v", c.in, got, err, c.want)
		}
	}

	bad := []string{"", "0.2,", ",10", "10,", "1;2"}
	for _, in := range bad {
		if _, err := ParseComplex(in); err == nil {
			t.Errorf("ParseComplex(%q): expected an error", in)
		}
	}
}
