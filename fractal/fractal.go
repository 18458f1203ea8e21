package fractal

import (
	"fmt"
	"math"
	"strings"
)

// MaxIterations is the iteration limit used for every render in this
// program. Escape counts are used as palette positions, so the palette
// catalog is written against this range.
const MaxIterations = 255

// DefaultJuliaSeed is the c parameter used for Julia renders when no seed
// is given on the command line.
const DefaultJuliaSeed = complex(0.4, 0.6)

const (
	Mandelbrot Kind = iota
	Julia
	BurningShip
)

// Kind selects which recurrence EscapeTime iterates. All three share the
// same escape test and limit; only the per-step update differs.
type Kind int

func (k Kind) String() string {
	return []string{
		"Mandelbrot", "Julia", "BurningShip",
	}[k]
}

func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(name) {
	case "mandel", "mandelbrot":
		return Mandelbrot, nil
	case "julia":
		return Julia, nil
	case "ship", "burningship":
		return BurningShip, nil
	}
	return Mandelbrot, fmt.Errorf("unknown fractal kind %q", name)
}

// EscapeTime iterates the recurrence for kind starting from point and
// reports the first 0-based iteration at which |z|^2 reached 4, or
// ok=false if the trajectory stayed bounded for limit iterations. The
// point itself is tested before any recurrence step, so iteration 0 means
// the point was already outside the escape circle.
//
// For Mandelbrot and BurningShip the parameter c is the point under test;
// for Julia the point is the initial z and c is the seed.
func EscapeTime(kind Kind, point complex128, seed complex128, limit int) (int, bool) {
	z, c := point, point
	if kind == Julia {
		c = seed
	}
	for i := 0; i < limit; i++ {
		if real(z)*real(z)+imag(z)*imag(z) >= 4 {
			return i, true
		}
		if kind == BurningShip {
			z = complex(math.Abs(real(z)), -math.Abs(imag(z)))
		}
		z = z*z + c
	}
	return 0, false
}
