package palette

import "math"

// Monotone cubic Hermite interpolation with Fritsch-Carlson tangent
// limiting. Tangents are clamped so the interpolant never overshoots
// between knots where the data is monotone, which is what keeps the
// gradient free of banding artifacts.
// https://en.wikipedia.org/wiki/Monotone_cubic_interpolation

// tangents computes the Hermite tangent at every knot for one color
// channel. x holds the knot positions (strictly increasing) and y the
// channel values at those knots.
func tangents(x []float64, y []float64) []float64 {
	n := len(x)

	slopes := make([]float64, n-1)
	for k := 0; k < n-1; k++ {
		slopes[k] = (y[k+1] - y[k]) / (x[k+1] - x[k])
	}

	// Interior tangents average the adjacent slopes unless they disagree
	// in sign (a local extremum), which forces the tangent to zero.
	// Boundary tangents take the one adjacent slope.
	m := make([]float64, n)
	m[0] = slopes[0]
	m[n-1] = slopes[n-2]
	for k := 1; k < n-1; k++ {
		if slopes[k-1]*slopes[k] < 0 {
			m[k] = 0
		} else {
			m[k] = (slopes[k-1] + slopes[k]) / 2
		}
	}

	// Flat segments keep both endpoint tangents at zero and need no
	// further limiting (and would divide by zero below).
	flat := make([]bool, n-1)
	for k := 0; k < n-1; k++ {
		if slopes[k] == 0 {
			m[k] = 0
			m[k+1] = 0
			flat[k] = true
		}
	}

	for k := 0; k < n-1; k++ {
		if flat[k] {
			continue
		}
		a := m[k] / slopes[k]
		b := m[k+1] / slopes[k]
		if a < 0 {
			// Tangent direction contradicts the interval slope.
			m[k] = 0
		} else if b < 0 {
			m[k+1] = 0
		} else if a*a+b*b > 9 {
			// Fritsch-Carlson circle of radius 3.
			t := 3 / math.Sqrt(a*a+b*b)
			m[k] = t * a * slopes[k]
			m[k+1] = t * b * slopes[k]
		}
	}

	return m
}

// interpolate evaluates the Hermite interpolant at position q. A query at
// or beyond the last knot reuses the final interval's coefficients.
func interpolate(q float64, x []float64, y []float64, m []float64) float64 {
	n := len(x)
	k := n - 2
	for i := 0; i < n-1; i++ {
		if x[i] <= q && q <= x[i+1] {
			k = i
			break
		}
	}
	delta := x[k+1] - x[k]
	t := (q - x[k]) / delta
	return y[k]*h00(t) + delta*m[k]*h10(t) + y[k+1]*h01(t) + delta*m[k+1]*h11(t)
}

func h00(t float64) float64 { return 2*t*t*t - 3*t*t + 1 }
func h10(t float64) float64 { return t*t*t - 2*t*t + t }
func h01(t float64) float64 { return -2*t*t*t + 3*t*t }
func h11(t float64) float64 { return t*t*t - t*t }
