// Package material implements the Phong reflectance model and the procedural
// patterns that can replace a material's flat color.
package material

import (
	"math"

	"github.com/styxx3542/ray-tracer/pkg/lights"
	"github.com/styxx3542/ray-tracer/pkg/rtmath"
)

// SpaceConverter maps world-space points into an object's local space.
// Shapes implement it; patterns use it so a pattern sticks to the surface it
// is applied to regardless of how the object is transformed.
type SpaceConverter interface {
	WorldToObject(p rtmath.Point) rtmath.Point
}

// Material holds the surface reflectance parameters for a shape.
type Material struct {
	Color           rtmath.Color
	Ambient         float64
	Diffuse         float64
	Specular        float64
	Shininess       float64
	Reflective      float64
	Transparency    float64
	RefractiveIndex float64
	Pattern         Pattern // optional; overrides Color when set
}

// New returns the default material: white, matte-ish, fully opaque.
func New() Material {
	return Material{
		Color:           rtmath.White,
		Ambient:         0.1,
		Diffuse:         0.9,
		Specular:        0.9,
		Shininess:       200.0,
		Reflective:      0.0,
		Transparency:    0.0,
		RefractiveIndex: 1.0,
	}
}

// Lighting computes the color of a point on a surface using the Phong model.
// The object is the shape the material belongs to (used for pattern space
// resolution; may be nil when the material is not attached to a shape). The
// ambient term always contributes; in shadow, diffuse and specular are
// dropped. The result is an unclamped color sum.
func (m Material) Lighting(object SpaceConverter, light lights.PointLight, point rtmath.Point, eye, normal rtmath.Vector, inShadow bool) rtmath.Color {
	surfaceColor := m.Color
	if m.Pattern != nil {
		surfaceColor = ColorAtObject(m.Pattern, object, point)
	}

	effectiveColor := surfaceColor.Hadamard(light.Intensity)
	ambient := effectiveColor.Multiply(m.Ambient)
	if inShadow {
		return ambient
	}

	lightv := light.Position.Subtract(point).Normalize()
	lightDotNormal := lightv.Dot(normal)
	if lightDotNormal < 0 {
		// Light is on the other side of the surface.
		return ambient
	}

	diffuse := effectiveColor.Multiply(m.Diffuse * lightDotNormal)

	reflectv := lightv.Negate().Reflect(normal)
	reflectDotEye := reflectv.Dot(eye)
	if reflectDotEye <= 0 {
		// Reflection points away from the eye.
		return ambient.Add(diffuse)
	}

	specular := light.Intensity.Multiply(m.Specular * math.Pow(reflectDotEye, m.Shininess))
	return ambient.Add(diffuse).Add(specular)
}
