package rtmath

// Ray represents a ray with an origin and direction. Rays are immutable once
// constructed.
type Ray struct {
	Origin    Point
	Direction Vector
}

// NewRay creates a new ray.
func NewRay(origin Point, direction Vector) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// Position returns the point at parameter t along the ray.
func (r Ray) Position(t float64) Point {
	return r.Origin.Add(r.Direction.Multiply(t))
}

// Transform returns the ray with origin and direction mapped through the
// given matrix. The direction is deliberately not renormalized so that t
// values measured in the transformed space map back to the original ray.
func (r Ray) Transform(m Matrix) Ray {
	return Ray{
		Origin:    m.MulPoint(r.Origin),
		Direction: m.MulVector(r.Direction),
	}
}
