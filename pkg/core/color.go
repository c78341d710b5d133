package core

// Color represents an RGB color with unclamped float channels
type Color struct {
	R, G, B float64
}

// Common colors used by scenes and tests.
var (
	Black = Color{0, 0, 0}
	White = Color{1, 1, 1}
)

// NewColor creates a new Color
func NewColor(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// Add returns the sum of two colors
func (c Color) Add(other Color) Color {
	return Color{c.R + other.R, c.G + other.G, c.B + other.B}
}

// Subtract returns the difference of two colors
func (c Color) Subtract(other Color) Color {
	return Color{c.R - other.R, c.G - other.G, c.B - other.B}
}

// Scale returns the color scaled by a scalar
func (c Color) Scale(scalar float64) Color {
	return Color{c.R * scalar, c.G * scalar, c.B * scalar}
}

// Multiply returns the component-wise (Hadamard) product of two colors
func (c Color) Multiply(other Color) Color {
	return Color{c.R * other.R, c.G * other.G, c.B * other.B}
}

// ApproxEqual reports whether two colors are channel-wise equal within
// Epsilon
func (c Color) ApproxEqual(other Color) bool {
	return Approx(c.R, other.R) && Approx(c.G, other.G) && Approx(c.B, other.B)
}
