package rtmath

// Color represents an RGB color with unclamped float channels. Channels may
// exceed [0,1] during shading; clamping happens only at image serialization.
type Color struct {
	R, G, B float64
}

// Black is the zero color, also the background of every rendered scene.
var Black = Color{0, 0, 0}

// White is full intensity on all channels.
var White = Color{1, 1, 1}

// NewColor creates a new Color.
func NewColor(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// Add returns the componentwise sum of two colors.
func (c Color) Add(other Color) Color {
	return Color{c.R + other.R, c.G + other.G, c.B + other.B}
}

// Subtract returns the componentwise difference of two colors.
func (c Color) Subtract(other Color) Color {
	return Color{c.R - other.R, c.G - other.G, c.B - other.B}
}

// Multiply returns the color scaled by a scalar.
func (c Color) Multiply(scalar float64) Color {
	return Color{c.R * scalar, c.G * scalar, c.B * scalar}
}

// Hadamard returns the componentwise product of two colors, used to filter
// a surface color by a light's intensity.
func (c Color) Hadamard(other Color) Color {
	return Color{c.R * other.R, c.G * other.G, c.B * other.B}
}

// ApproxEq reports whether two colors are equal within Epsilon per channel.
func (c Color) ApproxEq(other Color) bool {
	return ApproxEq(c.R, other.R) && ApproxEq(c.G, other.G) && ApproxEq(c.B, other.B)
}
