// Package world assembles shapes and lights into a renderable scene and
// implements the shading pipeline: intersection bookkeeping, Phong shading
// with shadows, and recursive reflection and refraction.
package world

import (
	"math"
	"sort"

	"github.com/styxx3542/ray-tracer/pkg/geometry"
	"github.com/styxx3542/ray-tracer/pkg/rtmath"
)

// Intersection records a ray crossing a shape at distance T along the ray.
type Intersection struct {
	T      float64
	Object geometry.Shape
}

// Intersections is a list of intersections sorted by ascending T.
type Intersections []Intersection

// IntersectShape intersects a world-space ray with a single shape.
func IntersectShape(s geometry.Shape, ray rtmath.Ray) Intersections {
	ts := geometry.Intersect(s, ray)
	if len(ts) == 0 {
		return nil
	}
	xs := make(Intersections, 0, len(ts))
	for _, t := range ts {
		xs = append(xs, Intersection{T: t, Object: s})
	}
	return xs
}

// Hit returns the visible intersection, the one with the smallest
// non-negative T. It returns false when every intersection lies behind the
// ray origin.
func (xs Intersections) Hit() (Intersection, bool) {
	for _, x := range xs {
		if x.T >= 0 {
			return x, true
		}
	}
	return Intersection{}, false
}

func (xs Intersections) sort() {
	sort.SliceStable(xs, func(i, j int) bool { return xs[i].T < xs[j].T })
}

// Computations holds the precomputed state the shading routines need at a
// hit point.
type Computations struct {
	T       float64
	Object  geometry.Shape
	Point   rtmath.Point
	EyeV    rtmath.Vector
	NormalV rtmath.Vector
	Inside  bool
	// OverPoint sits just above the surface along the normal; shadow rays
	// start here so the surface cannot occlude itself.
	OverPoint rtmath.Point
	// UnderPoint sits just below the surface; refracted rays start here.
	UnderPoint rtmath.Point
	ReflectV   rtmath.Vector
	// N1 and N2 are the refractive indices on the incoming and outgoing
	// sides of the surface.
	N1 float64
	N2 float64
}

// PrepareComputations precomputes the shading state for a hit. xs is the
// full sorted intersection list for the ray; it is walked to determine which
// media the ray is passing between at the hit.
func PrepareComputations(hit Intersection, ray rtmath.Ray, xs Intersections) Computations {
	comps := Computations{
		T:      hit.T,
		Object: hit.Object,
	}
	comps.Point = ray.Position(hit.T)
	comps.EyeV = ray.Direction.Negate()
	comps.NormalV = geometry.NormalAt(hit.Object, comps.Point)
	if comps.NormalV.Dot(comps.EyeV) < 0 {
		comps.Inside = true
		comps.NormalV = comps.NormalV.Negate()
	}
	offset := comps.NormalV.Multiply(rtmath.Epsilon)
	comps.OverPoint = comps.Point.Add(offset)
	comps.UnderPoint = comps.Point.SubtractVector(offset)
	comps.ReflectV = ray.Direction.Reflect(comps.NormalV)
	comps.N1, comps.N2 = refractiveIndices(hit, xs)
	return comps
}

// refractiveIndices walks the intersection list up to the hit, tracking which
// shapes contain the ray, and reads off the media on either side of the hit.
// A ray outside every shape travels through a vacuum with index 1.
func refractiveIndices(hit Intersection, xs Intersections) (n1, n2 float64) {
	n1, n2 = 1.0, 1.0
	var containers []geometry.Shape
	for _, x := range xs {
		if x == hit {
			if len(containers) > 0 {
				n1 = containers[len(containers)-1].Material().RefractiveIndex
			}
		}
		if idx := indexOf(containers, x.Object); idx >= 0 {
			containers = append(containers[:idx], containers[idx+1:]...)
		} else {
			containers = append(containers, x.Object)
		}
		if x == hit {
			if len(containers) > 0 {
				n2 = containers[len(containers)-1].Material().RefractiveIndex
			}
			return n1, n2
		}
	}
	return n1, n2
}

func indexOf(shapes []geometry.Shape, s geometry.Shape) int {
	for i, c := range shapes {
		if c == s {
			return i
		}
	}
	return -1
}

// Schlick approximates the Fresnel reflectance at the hit: the fraction of
// light that reflects rather than refracts.
func (c Computations) Schlick() float64 {
	cos := c.EyeV.Dot(c.NormalV)
	if c.N1 > c.N2 {
		n := c.N1 / c.N2
		sin2t := n * n * (1 - cos*cos)
		if sin2t > 1 {
			// Total internal reflection.
			return 1
		}
		cos = math.Sqrt(1 - sin2t)
	}
	r0 := (c.N1 - c.N2) / (c.N1 + c.N2)
	r0 *= r0
	return r0 + (1-r0)*math.Pow(1-cos, 5)
}
