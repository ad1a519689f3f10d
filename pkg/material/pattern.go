package material

import (
	"math"

	"github.com/styxx3542/ray-tracer/pkg/rtmath"
)

// Pattern generates a color for a point in pattern space. Each pattern
// carries its own transform (pattern space to object space), so the same
// pattern can be rotated, scaled or translated across a surface.
type Pattern interface {
	// ColorAt evaluates the pattern at a pattern-space point.
	ColorAt(p rtmath.Point) rtmath.Color
	// InverseTransform returns the cached inverse of the pattern transform.
	InverseTransform() rtmath.Matrix
}

// ColorAtObject samples a pattern at a world-space point on an object:
// world space -> object space (via the object's inverse transform) ->
// pattern space (via the pattern's own inverse transform).
func ColorAtObject(pattern Pattern, object SpaceConverter, worldPoint rtmath.Point) rtmath.Color {
	objectPoint := worldPoint
	if object != nil {
		objectPoint = object.WorldToObject(worldPoint)
	}
	patternPoint := pattern.InverseTransform().MulPoint(objectPoint)
	return pattern.ColorAt(patternPoint)
}

// basePattern carries the transform plumbing shared by all pattern kinds.
type basePattern struct {
	transform rtmath.Matrix
	inverse   rtmath.Matrix
}

func newBasePattern() basePattern {
	return basePattern{transform: rtmath.Identity(), inverse: rtmath.Identity()}
}

// SetTransform sets the pattern-to-object transform. A non-invertible
// transform is a construction error.
func (b *basePattern) SetTransform(m rtmath.Matrix) error {
	inv, err := m.Inverse()
	if err != nil {
		return err
	}
	b.transform = m
	b.inverse = inv
	return nil
}

// Transform returns the pattern-to-object transform.
func (b *basePattern) Transform() rtmath.Matrix { return b.transform }

// InverseTransform returns the cached inverse of the pattern transform.
func (b *basePattern) InverseTransform() rtmath.Matrix { return b.inverse }

// SolidPattern is a single color everywhere, for composing with Blended.
type SolidPattern struct {
	basePattern
	Color rtmath.Color
}

// NewSolidPattern creates a pattern with a single color.
func NewSolidPattern(c rtmath.Color) *SolidPattern {
	return &SolidPattern{basePattern: newBasePattern(), Color: c}
}

// ColorAt returns the solid color regardless of position.
func (p *SolidPattern) ColorAt(rtmath.Point) rtmath.Color { return p.Color }

// StripePattern alternates two colors in unit-wide bands along x.
type StripePattern struct {
	basePattern
	A, B rtmath.Color
}

// NewStripePattern creates a stripe pattern alternating between two colors.
func NewStripePattern(a, b rtmath.Color) *StripePattern {
	return &StripePattern{basePattern: newBasePattern(), A: a, B: b}
}

// ColorAt returns A on even floor(x) bands and B on odd ones.
func (p *StripePattern) ColorAt(point rtmath.Point) rtmath.Color {
	if int(math.Floor(point.X))%2 == 0 {
		return p.A
	}
	return p.B
}

// GradientPattern blends linearly from A to B across the fractional part
// of x.
type GradientPattern struct {
	basePattern
	A, B rtmath.Color
}

// NewGradientPattern creates a linear gradient between two colors.
func NewGradientPattern(a, b rtmath.Color) *GradientPattern {
	return &GradientPattern{basePattern: newBasePattern(), A: a, B: b}
}

// ColorAt interpolates between A and B by the distance past floor(x).
func (p *GradientPattern) ColorAt(point rtmath.Point) rtmath.Color {
	distance := p.B.Subtract(p.A)
	fraction := point.X - math.Floor(point.X)
	return p.A.Add(distance.Multiply(fraction))
}

// RingPattern alternates two colors in concentric rings on the xz plane.
type RingPattern struct {
	basePattern
	A, B rtmath.Color
}

// NewRingPattern creates a ring pattern alternating between two colors.
func NewRingPattern(a, b rtmath.Color) *RingPattern {
	return &RingPattern{basePattern: newBasePattern(), A: a, B: b}
}

// ColorAt returns A when the ring index floor(sqrt(x^2+z^2)) is even.
func (p *RingPattern) ColorAt(point rtmath.Point) rtmath.Color {
	if int(math.Floor(math.Sqrt(point.X*point.X+point.Z*point.Z)))%2 == 0 {
		return p.A
	}
	return p.B
}

// CheckerPattern alternates two colors in a 3D checkerboard of unit cubes.
type CheckerPattern struct {
	basePattern
	A, B rtmath.Color
}

// NewCheckerPattern creates a 3D checker pattern alternating two colors.
func NewCheckerPattern(a, b rtmath.Color) *CheckerPattern {
	return &CheckerPattern{basePattern: newBasePattern(), A: a, B: b}
}

// ColorAt returns A when floor(x)+floor(y)+floor(z) is even.
func (p *CheckerPattern) ColorAt(point rtmath.Point) rtmath.Color {
	sum := int(math.Floor(point.X) + math.Floor(point.Y) + math.Floor(point.Z))
	if sum%2 == 0 {
		return p.A
	}
	return p.B
}

// BlendedPattern averages two nested patterns. Each nested pattern is
// evaluated through its own transform, so a blend of two rotated stripes
// makes a plaid.
type BlendedPattern struct {
	basePattern
	A, B Pattern
}

// NewBlendedPattern creates a pattern averaging two sub-patterns.
func NewBlendedPattern(a, b Pattern) *BlendedPattern {
	return &BlendedPattern{basePattern: newBasePattern(), A: a, B: b}
}

// ColorAt averages the two sub-patterns at the given point.
func (p *BlendedPattern) ColorAt(point rtmath.Point) rtmath.Color {
	a := p.A.ColorAt(p.A.InverseTransform().MulPoint(point))
	b := p.B.ColorAt(p.B.InverseTransform().MulPoint(point))
	return a.Add(b).Multiply(0.5)
}
