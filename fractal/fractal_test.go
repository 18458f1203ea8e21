package fractal

import "testing"

func TestEscapeTimeOutsideRadius(t *testing.T) {
	// Any point on or outside the circle of radius 2 diverges before the
	// first recurrence step, for every kind and any limit.
	points := []complex128{2, -2, complex(0, 2), complex(2, 2), complex(-3, -1)}
	for _, kind := range []Kind{Mandelbrot, Julia, BurningShip} {
		for _, point := range points {
			for _, limit := range []int{1, MaxIterations} {
				iteration, escaped := EscapeTime(kind, point, DefaultJuliaSeed, limit)
				if !escaped || iteration != 0 {
					t.Errorf("%s point %v limit %d: got (%d, %t), want (0, true)", kind, point, limit, iteration, escaped)
				}
			}
		}
	}
}

func TestEscapeTimeOrigin(t *testing.T) {
	// 0 is a fixed point of the Mandelbrot recurrence.
	for _, limit := range []int{1, MaxIterations} {
		if _, escaped := EscapeTime(Mandelbrot, 0, 0, limit); escaped {
			t.Errorf("limit %d: origin escaped", limit)
		}
	}
}

func TestEscapeTimeMandelbrotCounts(t *testing.T) {
	cases := []struct {
		point     complex128
		iteration int
		escaped   bool
	}{
		{3, 0, true},               // already outside
		{1, 1, true},               // 1 -> 2
		{-1, 0, false},             // period two cycle -1 -> 0
		{complex(0, -1), 0, false}, // cycles without escaping
	}
	for _, c := range cases {
		iteration, escaped := EscapeTime(Mandelbrot, c.point, 0, MaxIterations)
		if iteration != c.iteration || escaped != c.escaped {
			t.Errorf("point %v: got (%d, %t), want (%d, %t)", c.point, iteration, escaped, c.iteration, c.escaped)
		}
	}
}

func TestEscapeTimeBurningShipDiffers(t *testing.T) {
	// -i is in the Mandelbrot set but escapes the burning ship recurrence
	// at iteration 2: -i -> -1-i -> -3i.
	if _, escaped := EscapeTime(Mandelbrot, complex(0, -1), 0, MaxIterations); escaped {
		t.Fatal("-i escaped the Mandelbrot recurrence")
	}
	iteration, escaped := EscapeTime(BurningShip, complex(0, -1), 0, MaxIterations)
	if !escaped || iteration != 2 {
		t.Errorf("burning ship at -i: got (%d, %t), want (2, true)", iteration, escaped)
	}
}

func TestEscapeTimeJuliaUsesSeed(t *testing.T) {
	// With seed 0 the Julia recurrence is pure squaring: 1.5 -> 2.25.
	iteration, escaped := EscapeTime(Julia, 1.5, 0, MaxIterations)
	if !escaped || iteration != 1 {
		t.Errorf("julia at 1.5 seed 0: got (%d, %t), want (1, true)", iteration, escaped)
	}
	// Seed 0, point 0 stays put forever.
	if _, escaped := EscapeTime(Julia, 0, 0, MaxIterations); escaped {
		t.Error("julia origin with zero seed escaped")
	}
}

func TestParseKind(t *testing.T) {
	cases := []struct {
		name string
		kind Kind
		ok   bool
	}{
		{"mandel", Mandelbrot, true},
		{"Mandelbrot", Mandelbrot, true},
		{"julia", Julia, true},
		{"ship", BurningShip, true},
		{"burningship", BurningShip, true},
		{"nope", Mandelbrot, false},
	}
	for _, c := range cases {
		kind, err := ParseKind(c.name)
		if c.ok && (err != nil || kind != c.kind) {
			t.Errorf("ParseKind(%q): got (%v, %v), want %v", c.name, kind, err, c.kind)
		}
		if !c.ok && err == nil {
			t.Errorf("ParseKind(%q): expected an error", c.name)
		}
	}
}
