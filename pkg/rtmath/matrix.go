package rtmath

import (
	"errors"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Matrix is a 4x4 transform matrix. It wraps mgl64.Mat4 so the canonical
// transform constructors, inversion and transposition come from the
// linear-algebra library rather than hand-rolled code.
type Matrix struct {
	m mgl64.Mat4
}

// ErrNotInvertible is returned when a degenerate (zero-determinant) transform
// is supplied to a shape, pattern or camera.
var ErrNotInvertible = errors.New("matrix is not invertible")

// Identity returns the identity transform.
func Identity() Matrix {
	return Matrix{mgl64.Ident4()}
}

// NewMatrix builds a matrix from 16 values in row-major order.
func NewMatrix(values [16]float64) Matrix {
	var m mgl64.Mat4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			m.Set(row, col, values[row*4+col])
		}
	}
	return Matrix{m}
}

// At returns the element at the given row and column.
func (m Matrix) At(row, col int) float64 {
	return m.m.At(row, col)
}

// Mul returns the matrix product m * other. Applied to a point, the result
// performs other first, then m.
func (m Matrix) Mul(other Matrix) Matrix {
	return Matrix{m.m.Mul4(other.m)}
}

// MulPoint applies the transform to a point (homogeneous w=1).
func (m Matrix) MulPoint(p Point) Point {
	v := m.m.Mul4x1(mgl64.Vec4{p.X, p.Y, p.Z, 1})
	return Point{v[0], v[1], v[2]}
}

// MulVector applies the transform to a vector (homogeneous w=0), ignoring
// translation.
func (m Matrix) MulVector(v Vector) Vector {
	r := m.m.Mul4x1(mgl64.Vec4{v.X, v.Y, v.Z, 0})
	return Vector{r[0], r[1], r[2]}
}

// Transpose returns the transposed matrix.
func (m Matrix) Transpose() Matrix {
	return Matrix{m.m.Transpose()}
}

// Determinant returns the determinant of the matrix.
func (m Matrix) Determinant() float64 {
	return m.m.Det()
}

// Inverse returns the inverted matrix, or ErrNotInvertible for a degenerate
// transform. Invertibility is checked via the determinant because mgl64
// silently returns the zero matrix for singular input.
func (m Matrix) Inverse() (Matrix, error) {
	if math.Abs(m.m.Det()) < 1e-12 {
		return Matrix{}, ErrNotInvertible
	}
	return Matrix{m.m.Inv()}, nil
}

// ApproxEq reports whether two matrices are equal within Epsilon per element.
func (m Matrix) ApproxEq(other Matrix) bool {
	return m.m.ApproxEqualThreshold(other.m, Epsilon)
}

// Translation returns a transform moving points by (x, y, z).
func Translation(x, y, z float64) Matrix {
	return Matrix{mgl64.Translate3D(x, y, z)}
}

// Scaling returns a transform scaling each axis independently.
func Scaling(x, y, z float64) Matrix {
	return Matrix{mgl64.Scale3D(x, y, z)}
}

// RotationX returns a rotation about the x axis by the given angle in radians.
func RotationX(radians float64) Matrix {
	return Matrix{mgl64.HomogRotate3DX(radians)}
}

// RotationY returns a rotation about the y axis by the given angle in radians.
func RotationY(radians float64) Matrix {
	return Matrix{mgl64.HomogRotate3DY(radians)}
}

// RotationZ returns a rotation about the z axis by the given angle in radians.
func RotationZ(radians float64) Matrix {
	return Matrix{mgl64.HomogRotate3DZ(radians)}
}

// Shearing returns a shear transform where each parameter moves one
// coordinate in proportion to another: xy shears x in proportion to y, and
// so on.
func Shearing(xy, xz, yx, yz, zx, zy float64) Matrix {
	m := mgl64.Ident4()
	m.Set(0, 1, xy)
	m.Set(0, 2, xz)
	m.Set(1, 0, yx)
	m.Set(1, 2, yz)
	m.Set(2, 0, zx)
	m.Set(2, 1, zy)
	return Matrix{m}
}

// ViewTransform builds the camera orientation matrix: the world transform
// that moves the eye to the origin looking down -z with up along +y.
func ViewTransform(from, to Point, up Vector) Matrix {
	forward := to.Subtract(from).Normalize()
	left := forward.Cross(up.Normalize())
	trueUp := left.Cross(forward)

	orientation := mgl64.Ident4()
	orientation.Set(0, 0, left.X)
	orientation.Set(0, 1, left.Y)
	orientation.Set(0, 2, left.Z)
	orientation.Set(1, 0, trueUp.X)
	orientation.Set(1, 1, trueUp.Y)
	orientation.Set(1, 2, trueUp.Z)
	orientation.Set(2, 0, -forward.X)
	orientation.Set(2, 1, -forward.Y)
	orientation.Set(2, 2, -forward.Z)

	return Matrix{orientation}.Mul(Translation(-from.X, -from.Y, -from.Z))
}
