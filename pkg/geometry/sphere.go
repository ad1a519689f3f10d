package geometry

import (
	"math"

	"github.com/styxx3542/ray-tracer/pkg/rtmath"
)

// Sphere is the unit sphere centered at the object-space origin.
type Sphere struct {
	baseShape
}

// NewSphere creates a unit sphere with the identity transform and default
// material.
func NewSphere() *Sphere {
	return &Sphere{baseShape: newBaseShape()}
}

// NewGlassSphere creates a sphere with a fully transparent glass material,
// a common building block for refraction scenes and tests.
func NewGlassSphere() *Sphere {
	s := NewSphere()
	s.mat.Transparency = 1.0
	s.mat.RefractiveIndex = 1.5
	return s
}

// LocalIntersect solves the quadratic from substituting the ray into the
// unit-sphere equation. A negative discriminant is a miss; a tangent ray
// yields two equal roots.
func (s *Sphere) LocalIntersect(ray rtmath.Ray) []float64 {
	sphereToRay := ray.Origin.Subtract(rtmath.NewPoint(0, 0, 0))

	a := ray.Direction.Dot(ray.Direction)
	b := 2 * ray.Direction.Dot(sphereToRay)
	c := sphereToRay.Dot(sphereToRay) - 1

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return nil
	}

	sqrtD := math.Sqrt(discriminant)
	return []float64{
		(-b - sqrtD) / (2 * a),
		(-b + sqrtD) / (2 * a),
	}
}

// LocalNormalAt returns the vector from the center to the point, which for a
// unit sphere is already the surface normal.
func (s *Sphere) LocalNormalAt(point rtmath.Point) rtmath.Vector {
	return point.Subtract(rtmath.NewPoint(0, 0, 0))
}
