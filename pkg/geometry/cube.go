package geometry

import (
	"math"

	"github.com/styxx3542/ray-tracer/pkg/rtmath"
)

// Cube is the axis-aligned cube spanning [-1,1] on each axis in object space.
type Cube struct {
	baseShape
}

// NewCube creates a unit cube with the identity transform and default
// material.
func NewCube() *Cube {
	return &Cube{baseShape: newBaseShape()}
}

// checkAxis computes the entry/exit t values for one slab of the cube. A
// near-zero direction component is scaled by infinity instead of dividing,
// pushing the slab bounds out of reach rather than dividing by zero.
func checkAxis(origin, direction float64) (tmin, tmax float64) {
	tminNumerator := -1 - origin
	tmaxNumerator := 1 - origin

	if math.Abs(direction) >= rtmath.Epsilon {
		tmin = tminNumerator / direction
		tmax = tmaxNumerator / direction
	} else {
		tmin = tminNumerator * math.Inf(1)
		tmax = tmaxNumerator * math.Inf(1)
	}

	if tmin > tmax {
		tmin, tmax = tmax, tmin
	}
	return tmin, tmax
}

// LocalIntersect uses the slab method: the ray is inside the cube wherever
// it is inside all three axis slabs at once.
func (c *Cube) LocalIntersect(ray rtmath.Ray) []float64 {
	xtmin, xtmax := checkAxis(ray.Origin.X, ray.Direction.X)
	ytmin, ytmax := checkAxis(ray.Origin.Y, ray.Direction.Y)
	ztmin, ztmax := checkAxis(ray.Origin.Z, ray.Direction.Z)

	tmin := math.Max(xtmin, math.Max(ytmin, ztmin))
	tmax := math.Min(xtmax, math.Min(ytmax, ztmax))

	if tmin > tmax {
		return nil
	}
	return []float64{tmin, tmax}
}

// LocalNormalAt picks the face whose axis component has the largest absolute
// magnitude. Corner points resolve to the x face first, then y.
func (c *Cube) LocalNormalAt(point rtmath.Point) rtmath.Vector {
	maxc := math.Max(math.Abs(point.X), math.Max(math.Abs(point.Y), math.Abs(point.Z)))

	switch maxc {
	case math.Abs(point.X):
		return rtmath.NewVector(point.X, 0, 0)
	case math.Abs(point.Y):
		return rtmath.NewVector(0, point.Y, 0)
	default:
		return rtmath.NewVector(0, 0, point.Z)
	}
}
