package rtmath

import (
	"math"
	"testing"
)

func TestVector_AddSubtract(t *testing.T) {
	p := NewPoint(3, -2, 5)
	v := NewVector(-2, 3, 1)
	if got := p.Add(v); !got.ApproxEq(NewPoint(1, 1, 6)) {
		t.Errorf("Point.Add = %v, want (1, 1, 6)", got)
	}

	p1 := NewPoint(3, 2, 1)
	p2 := NewPoint(5, 6, 7)
	if got := p1.Subtract(p2); !got.ApproxEq(NewVector(-2, -4, -6)) {
		t.Errorf("Point.Subtract = %v, want (-2, -4, -6)", got)
	}

	if got := p1.SubtractVector(NewVector(5, 6, 7)); !got.ApproxEq(NewPoint(-2, -4, -6)) {
		t.Errorf("Point.SubtractVector = %v, want (-2, -4, -6)", got)
	}

	v1 := NewVector(3, 2, 1)
	v2 := NewVector(5, 6, 7)
	if got := v1.Subtract(v2); !got.ApproxEq(NewVector(-2, -4, -6)) {
		t.Errorf("Vector.Subtract = %v, want (-2, -4, -6)", got)
	}
}

func TestVector_Length(t *testing.T) {
	tests := []struct {
		v    Vector
		want float64
	}{
		{NewVector(1, 0, 0), 1},
		{NewVector(0, 1, 0), 1},
		{NewVector(0, 0, 1), 1},
		{NewVector(1, 2, 3), math.Sqrt(14)},
		{NewVector(-1, -2, -3), math.Sqrt(14)},
	}
	for _, tt := range tests {
		if got := tt.v.Length(); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Length(%v) = %v, want %v", tt.v, got, tt.want)
		}
	}
}

func TestVector_Normalize(t *testing.T) {
	v := NewVector(4, 0, 0)
	if got := v.Normalize(); !got.ApproxEq(NewVector(1, 0, 0)) {
		t.Errorf("Normalize(4,0,0) = %v, want (1,0,0)", got)
	}

	n := NewVector(1, 2, 3).Normalize()
	if math.Abs(n.Length()-1.0) > 1e-9 {
		t.Errorf("normalized vector has length %v, want 1", n.Length())
	}
}

func TestVector_DotCross(t *testing.T) {
	a := NewVector(1, 2, 3)
	b := NewVector(2, 3, 4)

	if got := a.Dot(b); got != 20 {
		t.Errorf("Dot = %v, want 20", got)
	}
	if got := a.Cross(b); !got.ApproxEq(NewVector(-1, 2, -1)) {
		t.Errorf("a x b = %v, want (-1, 2, -1)", got)
	}
	if got := b.Cross(a); !got.ApproxEq(NewVector(1, -2, 1)) {
		t.Errorf("b x a = %v, want (1, -2, 1)", got)
	}
}

func TestVector_Reflect(t *testing.T) {
	tests := []struct {
		name   string
		v      Vector
		normal Vector
		want   Vector
	}{
		{
			name:   "approaching at 45 degrees",
			v:      NewVector(1, -1, 0),
			normal: NewVector(0, 1, 0),
			want:   NewVector(1, 1, 0),
		},
		{
			name:   "off a slanted surface",
			v:      NewVector(0, -1, 0),
			normal: NewVector(math.Sqrt2/2, math.Sqrt2/2, 0),
			want:   NewVector(1, 0, 0),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.Reflect(tt.normal); !got.ApproxEq(tt.want) {
				t.Errorf("Reflect = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestColor_Operations(t *testing.T) {
	c1 := NewColor(0.9, 0.6, 0.75)
	c2 := NewColor(0.7, 0.1, 0.25)

	if got := c1.Add(c2); !got.ApproxEq(NewColor(1.6, 0.7, 1.0)) {
		t.Errorf("Add = %v, want (1.6, 0.7, 1.0)", got)
	}
	if got := c1.Subtract(c2); !got.ApproxEq(NewColor(0.2, 0.5, 0.5)) {
		t.Errorf("Subtract = %v, want (0.2, 0.5, 0.5)", got)
	}
	if got := NewColor(0.2, 0.3, 0.4).Multiply(2); !got.ApproxEq(NewColor(0.4, 0.6, 0.8)) {
		t.Errorf("Multiply = %v, want (0.4, 0.6, 0.8)", got)
	}
	if got := NewColor(1, 0.2, 0.4).Hadamard(NewColor(0.9, 1, 0.1)); !got.ApproxEq(NewColor(0.9, 0.2, 0.04)) {
		t.Errorf("Hadamard = %v, want (0.9, 0.2, 0.04)", got)
	}
}
