// Package rtmath provides the linear algebra primitives for the ray tracer:
// points, vectors, colors, rays and 4x4 affine transforms. Matrices are backed
// by go-gl/mathgl; points and vectors are small value types with explicit
// homogeneous coordinates (w=1 for points, w=0 for vectors) applied when a
// transform is involved.
package rtmath

import "math"

// Epsilon is the tolerance used for floating-point comparisons throughout the
// tracer: shadow/refraction surface offsets, parallel-ray checks and tests.
const Epsilon = 1e-5

// ApproxEq reports whether two scalars are equal within Epsilon.
func ApproxEq(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// Point represents a position in 3D space.
type Point struct {
	X, Y, Z float64
}

// Vector represents a direction and magnitude in 3D space.
type Vector struct {
	X, Y, Z float64
}

// NewPoint creates a new Point.
func NewPoint(x, y, z float64) Point {
	return Point{X: x, Y: y, Z: z}
}

// NewVector creates a new Vector.
func NewVector(x, y, z float64) Vector {
	return Vector{X: x, Y: y, Z: z}
}

// Add returns the point translated by a vector.
func (p Point) Add(v Vector) Point {
	return Point{p.X + v.X, p.Y + v.Y, p.Z + v.Z}
}

// Subtract returns the vector from other to p.
func (p Point) Subtract(other Point) Vector {
	return Vector{p.X - other.X, p.Y - other.Y, p.Z - other.Z}
}

// SubtractVector returns the point translated backwards by a vector.
func (p Point) SubtractVector(v Vector) Point {
	return Point{p.X - v.X, p.Y - v.Y, p.Z - v.Z}
}

// ApproxEq reports whether two points are equal within Epsilon per component.
func (p Point) ApproxEq(other Point) bool {
	return ApproxEq(p.X, other.X) && ApproxEq(p.Y, other.Y) && ApproxEq(p.Z, other.Z)
}

// Add returns the sum of two vectors.
func (v Vector) Add(other Vector) Vector {
	return Vector{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Subtract returns the difference of two vectors.
func (v Vector) Subtract(other Vector) Vector {
	return Vector{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Multiply returns the vector scaled by a scalar.
func (v Vector) Multiply(scalar float64) Vector {
	return Vector{v.X * scalar, v.Y * scalar, v.Z * scalar}
}

// Negate returns the vector pointing the opposite way.
func (v Vector) Negate() Vector {
	return Vector{-v.X, -v.Y, -v.Z}
}

// Length returns the magnitude of the vector.
func (v Vector) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Dot returns the dot product of two vectors.
func (v Vector) Dot(other Vector) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product of two vectors.
func (v Vector) Cross(other Vector) Vector {
	return Vector{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// Normalize returns a unit vector in the same direction.
func (v Vector) Normalize() Vector {
	length := v.Length()
	if length == 0 {
		return Vector{}
	}
	return Vector{v.X / length, v.Y / length, v.Z / length}
}

// Reflect returns the vector reflected about the given normal.
func (v Vector) Reflect(normal Vector) Vector {
	return v.Subtract(normal.Multiply(2 * v.Dot(normal)))
}

// ApproxEq reports whether two vectors are equal within Epsilon per component.
func (v Vector) ApproxEq(other Vector) bool {
	return ApproxEq(v.X, other.X) && ApproxEq(v.Y, other.Y) && ApproxEq(v.Z, other.Z)
}
