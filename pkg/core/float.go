package core

import "math"

// Epsilon is the tolerance for float comparisons. It is also the distance
// shading points are offset from surfaces to avoid self-intersection.
// Reference color values in tests are rounded to five decimals, so the
// tolerance must sit above their rounding error.
const Epsilon = 1e-4

// Approx reports whether two floats differ by less than Epsilon.
func Approx(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}
