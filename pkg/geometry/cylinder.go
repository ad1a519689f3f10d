package geometry

import (
	"math"
	"sort"

	"github.com/styxx3542/ray-tracer/pkg/rtmath"
)

// Cylinder is the unit-radius cylinder around the object-space y axis,
// infinite by default, optionally truncated to (Minimum, Maximum) and capped.
type Cylinder struct {
	baseShape
	Minimum float64
	Maximum float64
	Closed  bool
}

// NewCylinder creates an infinite open cylinder with the identity transform
// and default material.
func NewCylinder() *Cylinder {
	return &Cylinder{
		baseShape: newBaseShape(),
		Minimum:   math.Inf(-1),
		Maximum:   math.Inf(1),
	}
}

// NewBoundedCylinder creates a cylinder truncated to minimum < y < maximum,
// with end caps when closed is true.
func NewBoundedCylinder(minimum, maximum float64, closed bool) *Cylinder {
	c := NewCylinder()
	c.Minimum = minimum
	c.Maximum = maximum
	c.Closed = closed
	return c
}

// LocalIntersect hits the lateral surface via the 2D quadratic in x and z,
// filters wall hits to the truncation range, then adds cap hits.
func (c *Cylinder) LocalIntersect(ray rtmath.Ray) []float64 {
	var xs []float64

	a := ray.Direction.X*ray.Direction.X + ray.Direction.Z*ray.Direction.Z
	if math.Abs(a) >= rtmath.Epsilon {
		b := 2*ray.Origin.X*ray.Direction.X + 2*ray.Origin.Z*ray.Direction.Z
		cc := ray.Origin.X*ray.Origin.X + ray.Origin.Z*ray.Origin.Z - 1

		discriminant := b*b - 4*a*cc
		if discriminant < 0 {
			return nil
		}

		sqrtD := math.Sqrt(discriminant)
		t0 := (-b - sqrtD) / (2 * a)
		t1 := (-b + sqrtD) / (2 * a)
		if t0 > t1 {
			t0, t1 = t1, t0
		}

		y0 := ray.Origin.Y + t0*ray.Direction.Y
		if c.Minimum < y0 && y0 < c.Maximum {
			xs = append(xs, t0)
		}
		y1 := ray.Origin.Y + t1*ray.Direction.Y
		if c.Minimum < y1 && y1 < c.Maximum {
			xs = append(xs, t1)
		}
	}
	// A ray parallel to the y axis can still strike the caps.

	xs = append(xs, c.capIntersections(ray)...)
	sort.Float64s(xs)
	return xs
}

// capIntersections tests the end-cap planes at y=Minimum and y=Maximum,
// bounded by the unit radius.
func (c *Cylinder) capIntersections(ray rtmath.Ray) []float64 {
	if !c.Closed || math.Abs(ray.Direction.Y) < rtmath.Epsilon {
		return nil
	}

	var xs []float64
	for _, y := range []float64{c.Minimum, c.Maximum} {
		t := (y - ray.Origin.Y) / ray.Direction.Y
		x := ray.Origin.X + t*ray.Direction.X
		z := ray.Origin.Z + t*ray.Direction.Z
		if x*x+z*z <= 1 {
			xs = append(xs, t)
		}
	}
	return xs
}

// LocalNormalAt distinguishes cap points (within the unit radius and at a
// truncation plane) from lateral points.
func (c *Cylinder) LocalNormalAt(point rtmath.Point) rtmath.Vector {
	dist := point.X*point.X + point.Z*point.Z

	switch {
	case dist < 1 && point.Y >= c.Maximum-rtmath.Epsilon:
		return rtmath.NewVector(0, 1, 0)
	case dist < 1 && point.Y <= c.Minimum+rtmath.Epsilon:
		return rtmath.NewVector(0, -1, 0)
	default:
		return rtmath.NewVector(point.X, 0, point.Z)
	}
}
