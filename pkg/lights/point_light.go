// Package lights defines the light sources a world can hold.
package lights

import "github.com/styxx3542/ray-tracer/pkg/rtmath"

// PointLight is a light source with no size: all light radiates from a single
// position with constant intensity and no falloff.
type PointLight struct {
	Position  rtmath.Point
	Intensity rtmath.Color
}

// NewPointLight creates a new point light.
func NewPointLight(position rtmath.Point, intensity rtmath.Color) PointLight {
	return PointLight{Position: position, Intensity: intensity}
}
