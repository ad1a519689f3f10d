// Package geometry implements the primitive shapes a world is built from.
// Every shape is a unit primitive in its own object space (unit sphere at the
// origin, xz plane at y=0, unit cube, unit-radius cylinder and cone on the y
// axis) positioned in the scene by an affine transform. Intersection and
// normal math runs in object space; the transform plumbing here maps rays and
// normals between the two spaces.
package geometry

import (
	"github.com/styxx3542/ray-tracer/pkg/material"
	"github.com/styxx3542/ray-tracer/pkg/rtmath"
)

// Shape is a primitive that can be intersected by rays. LocalIntersect and
// LocalNormalAt operate in object space; use Intersect and NormalAt for
// world-space queries.
type Shape interface {
	// LocalIntersect returns the t values where an object-space ray crosses
	// the surface, in ascending order. An empty result is a miss.
	LocalIntersect(ray rtmath.Ray) []float64
	// LocalNormalAt returns the (not necessarily unit) surface normal at an
	// object-space point.
	LocalNormalAt(point rtmath.Point) rtmath.Vector
	// Transform returns the object-to-world transform.
	Transform() rtmath.Matrix
	// InverseTransform returns the cached world-to-object transform.
	InverseTransform() rtmath.Matrix
	// Material returns a pointer to the shape's material so callers can
	// modify it in place.
	Material() *material.Material
	// WorldToObject maps a world-space point into object space.
	WorldToObject(point rtmath.Point) rtmath.Point
}

// Intersect intersects a world-space ray with the shape, returning t values
// measured along the original ray, ascending.
func Intersect(s Shape, ray rtmath.Ray) []float64 {
	return s.LocalIntersect(ray.Transform(s.InverseTransform()))
}

// NormalAt returns the unit surface normal at a world-space point on the
// shape. The local normal is carried back to world space through the
// inverse-transpose of the object transform so that non-uniform scaling
// keeps normals perpendicular to the surface.
func NormalAt(s Shape, worldPoint rtmath.Point) rtmath.Vector {
	localPoint := s.WorldToObject(worldPoint)
	localNormal := s.LocalNormalAt(localPoint)
	worldNormal := s.InverseTransform().Transpose().MulVector(localNormal)
	return worldNormal.Normalize()
}

// baseShape carries the transform and material plumbing shared by all shape
// kinds.
type baseShape struct {
	transform rtmath.Matrix
	inverse   rtmath.Matrix
	mat       material.Material
}

func newBaseShape() baseShape {
	return baseShape{
		transform: rtmath.Identity(),
		inverse:   rtmath.Identity(),
		mat:       material.New(),
	}
}

// SetTransform sets the object-to-world transform and caches its inverse.
// A non-invertible transform is a construction error, reported here rather
// than per ray.
func (b *baseShape) SetTransform(m rtmath.Matrix) error {
	inv, err := m.Inverse()
	if err != nil {
		return err
	}
	b.transform = m
	b.inverse = inv
	return nil
}

// Transform returns the object-to-world transform.
func (b *baseShape) Transform() rtmath.Matrix { return b.transform }

// InverseTransform returns the cached world-to-object transform.
func (b *baseShape) InverseTransform() rtmath.Matrix { return b.inverse }

// Material returns a pointer to the shape's material.
func (b *baseShape) Material() *material.Material { return &b.mat }

// SetMaterial replaces the shape's material.
func (b *baseShape) SetMaterial(m material.Material) { b.mat = m }

// WorldToObject maps a world-space point into object space.
func (b *baseShape) WorldToObject(p rtmath.Point) rtmath.Point {
	return b.inverse.MulPoint(p)
}
