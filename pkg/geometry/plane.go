package geometry

import (
	"math"

	"github.com/styxx3542/ray-tracer/pkg/rtmath"
)

// Plane is the infinite xz plane at y=0 in object space.
type Plane struct {
	baseShape
}

// NewPlane creates an xz plane with the identity transform and default
// material.
func NewPlane() *Plane {
	return &Plane{baseShape: newBaseShape()}
}

// LocalIntersect returns the single crossing of the y=0 plane. Rays parallel
// to the plane (including coplanar rays) miss.
func (p *Plane) LocalIntersect(ray rtmath.Ray) []float64 {
	if math.Abs(ray.Direction.Y) < rtmath.Epsilon {
		return nil
	}
	return []float64{-ray.Origin.Y / ray.Direction.Y}
}

// LocalNormalAt returns the constant +y normal.
func (p *Plane) LocalNormalAt(rtmath.Point) rtmath.Vector {
	return rtmath.NewVector(0, 1, 0)
}
