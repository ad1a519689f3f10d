package geometry

import (
	"testing"

	"github.com/styxx3542/ray-tracer/pkg/rtmath"
)

func TestCylinder_LocalIntersect_Misses(t *testing.T) {
	tests := []struct {
		name      string
		origin    rtmath.Point
		direction rtmath.Vector
	}{
		{"on the surface, pointing up", rtmath.NewPoint(1, 0, 0), rtmath.NewVector(0, 1, 0)},
		{"inside, pointing up", rtmath.NewPoint(0, 0, 0), rtmath.NewVector(0, 1, 0)},
		{"askew outside", rtmath.NewPoint(0, 0, -5), rtmath.NewVector(1, 1, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCylinder()
			got := c.LocalIntersect(rtmath.NewRay(tt.origin, tt.direction.Normalize()))
			if len(got) != 0 {
				t.Errorf("got %v, want no intersections", got)
			}
		})
	}
}

func TestCylinder_LocalIntersect_Strikes(t *testing.T) {
	tests := []struct {
		name      string
		origin    rtmath.Point
		direction rtmath.Vector
		want      []float64
	}{
		{"tangent", rtmath.NewPoint(1, 0, -5), rtmath.NewVector(0, 0, 1), []float64{5, 5}},
		{"through the center", rtmath.NewPoint(0, 0, -5), rtmath.NewVector(0, 0, 1), []float64{4, 6}},
		{"at an angle", rtmath.NewPoint(0.5, 0, -5), rtmath.NewVector(0.1, 1, 1), []float64{6.80798, 7.08872}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCylinder()
			got := c.LocalIntersect(rtmath.NewRay(tt.origin, tt.direction.Normalize()))
			assertTValues(t, got, tt.want)
		})
	}
}

func TestCylinder_LocalNormalAt(t *testing.T) {
	tests := []struct {
		point rtmath.Point
		want  rtmath.Vector
	}{
		{rtmath.NewPoint(1, 0, 0), rtmath.NewVector(1, 0, 0)},
		{rtmath.NewPoint(0, 5, -1), rtmath.NewVector(0, 0, -1)},
		{rtmath.NewPoint(0, -2, 1), rtmath.NewVector(0, 0, 1)},
		{rtmath.NewPoint(-1, 1, 0), rtmath.NewVector(-1, 0, 0)},
	}
	c := NewCylinder()
	for _, tt := range tests {
		if got := c.LocalNormalAt(tt.point); !got.ApproxEq(tt.want) {
			t.Errorf("LocalNormalAt(%v) = %v, want %v", tt.point, got, tt.want)
		}
	}
}

func TestCylinder_Truncated(t *testing.T) {
	tests := []struct {
		name      string
		origin    rtmath.Point
		direction rtmath.Vector
		count     int
	}{
		{"diagonal from inside exits through the open end", rtmath.NewPoint(0, 1.5, 0), rtmath.NewVector(0.1, 1, 0), 0},
		{"above the top", rtmath.NewPoint(0, 3, -5), rtmath.NewVector(0, 0, 1), 0},
		{"below the bottom", rtmath.NewPoint(0, 0, -5), rtmath.NewVector(0, 0, 1), 0},
		{"exactly at the top bound", rtmath.NewPoint(0, 2, -5), rtmath.NewVector(0, 0, 1), 0},
		{"exactly at the bottom bound", rtmath.NewPoint(0, 1, -5), rtmath.NewVector(0, 0, 1), 0},
		{"through the middle", rtmath.NewPoint(0, 1.5, -2), rtmath.NewVector(0, 0, 1), 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewBoundedCylinder(1, 2, false)
			got := c.LocalIntersect(rtmath.NewRay(tt.origin, tt.direction.Normalize()))
			if len(got) != tt.count {
				t.Errorf("got %d intersections (%v), want %d", len(got), got, tt.count)
			}
		})
	}
}

func TestCylinder_Capped(t *testing.T) {
	tests := []struct {
		name      string
		origin    rtmath.Point
		direction rtmath.Vector
		count     int
	}{
		{"through both caps from above", rtmath.NewPoint(0, 3, 0), rtmath.NewVector(0, -1, 0), 2},
		{"diagonal through cap and wall", rtmath.NewPoint(0, 3, -2), rtmath.NewVector(0, -1, 2), 2},
		{"diagonal exiting at a cap edge", rtmath.NewPoint(0, 4, -2), rtmath.NewVector(0, -1, 1), 2},
		{"diagonal up through cap and wall", rtmath.NewPoint(0, 0, -2), rtmath.NewVector(0, 1, 2), 2},
		{"diagonal up exiting at a cap edge", rtmath.NewPoint(0, -1, -2), rtmath.NewVector(0, 1, 1), 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewBoundedCylinder(1, 2, true)
			got := c.LocalIntersect(rtmath.NewRay(tt.origin, tt.direction.Normalize()))
			if len(got) != tt.count {
				t.Errorf("got %d intersections (%v), want %d", len(got), got, tt.count)
			}
		})
	}
}

func TestCylinder_CapNormals(t *testing.T) {
	tests := []struct {
		point rtmath.Point
		want  rtmath.Vector
	}{
		{rtmath.NewPoint(0, 1, 0), rtmath.NewVector(0, -1, 0)},
		{rtmath.NewPoint(0.5, 1, 0), rtmath.NewVector(0, -1, 0)},
		{rtmath.NewPoint(0, 1, 0.5), rtmath.NewVector(0, -1, 0)},
		{rtmath.NewPoint(0, 2, 0), rtmath.NewVector(0, 1, 0)},
		{rtmath.NewPoint(0.5, 2, 0), rtmath.NewVector(0, 1, 0)},
		{rtmath.NewPoint(0, 2, 0.5), rtmath.NewVector(0, 1, 0)},
	}
	c := NewBoundedCylinder(1, 2, true)
	for _, tt := range tests {
		if got := c.LocalNormalAt(tt.point); !got.ApproxEq(tt.want) {
			t.Errorf("LocalNormalAt(%v) = %v, want %v", tt.point, got, tt.want)
		}
	}
}
