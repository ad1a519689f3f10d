package geometry

import (
	"math"
	"sort"

	"github.com/styxx3542/ray-tracer/pkg/rtmath"
)

// Cone is the double-napped cone around the object-space y axis, with radius
// equal to |y|. Infinite by default, optionally truncated and capped like a
// cylinder.
type Cone struct {
	baseShape
	Minimum float64
	Maximum float64
	Closed  bool
}

// NewCone creates an infinite open double cone with the identity transform
// and default material.
func NewCone() *Cone {
	return &Cone{
		baseShape: newBaseShape(),
		Minimum:   math.Inf(-1),
		Maximum:   math.Inf(1),
	}
}

// NewBoundedCone creates a cone truncated to minimum < y < maximum, with end
// caps when closed is true.
func NewBoundedCone(minimum, maximum float64, closed bool) *Cone {
	c := NewCone()
	c.Minimum = minimum
	c.Maximum = maximum
	c.Closed = closed
	return c
}

// LocalIntersect solves the cone quadratic, whose leading coefficient can
// vanish when the ray parallels one half of the cone: a≈0, b≈0 means the ray
// runs along the surface (caps only), a≈0 alone degenerates to a linear
// equation with a single wall hit.
func (c *Cone) LocalIntersect(ray rtmath.Ray) []float64 {
	o, d := ray.Origin, ray.Direction

	a := d.X*d.X - d.Y*d.Y + d.Z*d.Z
	b := 2*o.X*d.X - 2*o.Y*d.Y + 2*o.Z*d.Z
	cc := o.X*o.X - o.Y*o.Y + o.Z*o.Z

	var xs []float64
	switch {
	case math.Abs(a) < rtmath.Epsilon && math.Abs(b) < rtmath.Epsilon:
		// Ray parallel to the surface: caps are the only candidates.
	case math.Abs(a) < rtmath.Epsilon:
		xs = append(xs, -cc/(2*b))
	default:
		discriminant := b*b - 4*a*cc
		if discriminant < 0 {
			// No wall hit, but the ray may still pass through a cap.
			break
		}

		sqrtD := math.Sqrt(discriminant)
		t0 := (-b - sqrtD) / (2 * a)
		t1 := (-b + sqrtD) / (2 * a)
		if t0 > t1 {
			t0, t1 = t1, t0
		}

		y0 := o.Y + t0*d.Y
		if c.Minimum < y0 && y0 < c.Maximum {
			xs = append(xs, t0)
		}
		y1 := o.Y + t1*d.Y
		if c.Minimum < y1 && y1 < c.Maximum {
			xs = append(xs, t1)
		}
	}

	xs = append(xs, c.capIntersections(ray)...)
	sort.Float64s(xs)
	return xs
}

// capIntersections tests the end-cap planes; unlike the cylinder, the cap
// radius grows with |y|.
func (c *Cone) capIntersections(ray rtmath.Ray) []float64 {
	if !c.Closed || math.Abs(ray.Direction.Y) < rtmath.Epsilon {
		return nil
	}

	var xs []float64
	for _, y := range []float64{c.Minimum, c.Maximum} {
		t := (y - ray.Origin.Y) / ray.Direction.Y
		x := ray.Origin.X + t*ray.Direction.X
		z := ray.Origin.Z + t*ray.Direction.Z
		if x*x+z*z <= math.Abs(y) {
			xs = append(xs, t)
		}
	}
	return xs
}

// LocalNormalAt distinguishes cap points from lateral points; the lateral
// normal's y component slopes toward the apex.
func (c *Cone) LocalNormalAt(point rtmath.Point) rtmath.Vector {
	dist := point.X*point.X + point.Z*point.Z

	switch {
	case dist < 1 && point.Y >= c.Maximum-rtmath.Epsilon:
		return rtmath.NewVector(0, 1, 0)
	case dist < 1 && point.Y <= c.Minimum+rtmath.Epsilon:
		return rtmath.NewVector(0, -1, 0)
	default:
		y := math.Sqrt(dist)
		if point.Y > 0 {
			y = -y
		}
		return rtmath.NewVector(point.X, y, point.Z)
	}
}
