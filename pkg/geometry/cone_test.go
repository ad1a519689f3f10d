package geometry

import (
	"math"
	"testing"

	"github.com/styxx3542/ray-tracer/pkg/rtmath"
)

func TestCone_LocalIntersect(t *testing.T) {
	tests := []struct {
		name      string
		origin    rtmath.Point
		direction rtmath.Vector
		want      []float64
	}{
		{"through the apex region", rtmath.NewPoint(0, 0, -5), rtmath.NewVector(0, 0, 1), []float64{5, 5}},
		{"diagonal", rtmath.NewPoint(0, 0, -5), rtmath.NewVector(1, 1, 1), []float64{8.66025, 8.66025}},
		{"askew", rtmath.NewPoint(1, 1, -5), rtmath.NewVector(-0.5, -1, 1), []float64{4.55006, 49.44994}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCone()
			got := c.LocalIntersect(rtmath.NewRay(tt.origin, tt.direction.Normalize()))
			assertTValues(t, got, tt.want)
		})
	}
}

func TestCone_LocalIntersect_ParallelToHalf(t *testing.T) {
	c := NewCone()
	direction := rtmath.NewVector(0, 1, 1).Normalize()
	got := c.LocalIntersect(rtmath.NewRay(rtmath.NewPoint(0, 0, -1), direction))
	assertTValues(t, got, []float64{0.35355})
}

func TestCone_Capped(t *testing.T) {
	tests := []struct {
		name      string
		origin    rtmath.Point
		direction rtmath.Vector
		count     int
	}{
		{"parallel miss", rtmath.NewPoint(0, 0, -5), rtmath.NewVector(0, 1, 0), 0},
		{"through a cap and a wall", rtmath.NewPoint(0, 0, -0.25), rtmath.NewVector(0, 1, 1), 2},
		{"up the axis through both caps", rtmath.NewPoint(0, 0, -0.25), rtmath.NewVector(0, 1, 0), 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewBoundedCone(-0.5, 0.5, true)
			got := c.LocalIntersect(rtmath.NewRay(tt.origin, tt.direction.Normalize()))
			if len(got) != tt.count {
				t.Errorf("got %d intersections (%v), want %d", len(got), got, tt.count)
			}
		})
	}
}

func TestCone_LocalNormalAt(t *testing.T) {
	tests := []struct {
		point rtmath.Point
		want  rtmath.Vector
	}{
		{rtmath.NewPoint(0, 0, 0), rtmath.NewVector(0, 0, 0)},
		{rtmath.NewPoint(1, 1, 1), rtmath.NewVector(1, -math.Sqrt2, 1)},
		{rtmath.NewPoint(-1, -1, 0), rtmath.NewVector(-1, 1, 0)},
	}
	c := NewCone()
	for _, tt := range tests {
		if got := c.LocalNormalAt(tt.point); !got.ApproxEq(tt.want) {
			t.Errorf("LocalNormalAt(%v) = %v, want %v", tt.point, got, tt.want)
		}
	}
}
