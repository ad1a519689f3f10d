package world

import (
	"math"

	"github.com/styxx3542/ray-tracer/pkg/geometry"
	"github.com/styxx3542/ray-tracer/pkg/lights"
	"github.com/styxx3542/ray-tracer/pkg/rtmath"
)

// DefaultMaxDepth caps the reflection and refraction recursion.
const DefaultMaxDepth = 5

// World is a collection of shapes and point lights to render.
type World struct {
	Shapes []geometry.Shape
	Lights []lights.PointLight
	// MaxDepth bounds the recursive reflection/refraction bounces.
	MaxDepth int
}

// New returns an empty world.
func New() *World {
	return &World{MaxDepth: DefaultMaxDepth}
}

// Default returns the two-sphere reference world used throughout the shading
// tests: an outer green-tinted sphere, an inner half-size sphere and a single
// white light up and to the left.
func Default() *World {
	s1 := geometry.NewSphere()
	s1.Material().Color = rtmath.NewColor(0.8, 1.0, 0.6)
	s1.Material().Diffuse = 0.7
	s1.Material().Specular = 0.2

	s2 := geometry.NewSphere()
	if err := s2.SetTransform(rtmath.Scaling(0.5, 0.5, 0.5)); err != nil {
		panic(err)
	}

	w := New()
	w.Shapes = []geometry.Shape{s1, s2}
	w.Lights = []lights.PointLight{
		lights.NewPointLight(rtmath.NewPoint(-10, 10, -10), rtmath.White),
	}
	return w
}

// AddShape appends a shape to the world.
func (w *World) AddShape(s geometry.Shape) {
	w.Shapes = append(w.Shapes, s)
}

// Intersect intersects the ray with every shape in the world and returns the
// combined list sorted by ascending t.
func (w *World) Intersect(ray rtmath.Ray) Intersections {
	var xs Intersections
	for _, s := range w.Shapes {
		xs = append(xs, IntersectShape(s, ray)...)
	}
	xs.sort()
	return xs
}

// ColorAt traces the ray into the world and returns the color it sees, black
// on a miss.
func (w *World) ColorAt(ray rtmath.Ray) rtmath.Color {
	depth := w.MaxDepth
	if depth <= 0 {
		depth = DefaultMaxDepth
	}
	return w.colorAt(ray, depth)
}

func (w *World) colorAt(ray rtmath.Ray, remaining int) rtmath.Color {
	xs := w.Intersect(ray)
	hit, ok := xs.Hit()
	if !ok {
		return rtmath.Black
	}
	comps := PrepareComputations(hit, ray, xs)
	return w.shadeHit(comps, remaining)
}

// shadeHit shades a precomputed hit: the Phong contribution of every light,
// plus the reflected and refracted colors. When a surface is both reflective
// and transparent the two secondary colors are blended with the Schlick
// reflectance.
func (w *World) shadeHit(comps Computations, remaining int) rtmath.Color {
	m := comps.Object.Material()

	surface := rtmath.Black
	for _, light := range w.Lights {
		shadowed := w.IsShadowed(comps.OverPoint, light)
		surface = surface.Add(m.Lighting(comps.Object, light, comps.OverPoint, comps.EyeV, comps.NormalV, shadowed))
	}

	reflected := w.reflectedColor(comps, remaining)
	refracted := w.refractedColor(comps, remaining)

	if m.Reflective > 0 && m.Transparency > 0 {
		reflectance := comps.Schlick()
		return surface.
			Add(reflected.Multiply(reflectance)).
			Add(refracted.Multiply(1 - reflectance))
	}
	return surface.Add(reflected).Add(refracted)
}

// IsShadowed reports whether the point is occluded from the light: a ray
// from the point toward the light hits something closer than the light.
func (w *World) IsShadowed(point rtmath.Point, light lights.PointLight) bool {
	toLight := light.Position.Subtract(point)
	distance := toLight.Length()
	ray := rtmath.NewRay(point, toLight.Normalize())
	if hit, ok := w.Intersect(ray).Hit(); ok && hit.T < distance {
		return true
	}
	return false
}

// reflectedColor traces the reflection ray and scales the result by the
// material's reflectivity. Returns black on a non-reflective surface or when
// the bounce budget is spent.
func (w *World) reflectedColor(comps Computations, remaining int) rtmath.Color {
	if remaining <= 0 {
		return rtmath.Black
	}
	m := comps.Object.Material()
	if m.Reflective == 0 {
		return rtmath.Black
	}
	reflectRay := rtmath.NewRay(comps.OverPoint, comps.ReflectV)
	return w.colorAt(reflectRay, remaining-1).Multiply(m.Reflective)
}

// refractedColor traces the refraction ray through the surface per Snell's
// law and scales the result by the material's transparency. Returns black on
// an opaque surface, on total internal reflection, or when the bounce budget
// is spent.
func (w *World) refractedColor(comps Computations, remaining int) rtmath.Color {
	if remaining <= 0 {
		return rtmath.Black
	}
	m := comps.Object.Material()
	if m.Transparency == 0 {
		return rtmath.Black
	}

	nRatio := comps.N1 / comps.N2
	cosI := comps.EyeV.Dot(comps.NormalV)
	sin2T := nRatio * nRatio * (1 - cosI*cosI)
	if sin2T > 1 {
		return rtmath.Black
	}

	cosT := math.Sqrt(1 - sin2T)
	direction := comps.NormalV.Multiply(nRatio*cosI - cosT).
		Subtract(comps.EyeV.Multiply(nRatio))
	refractRay := rtmath.NewRay(comps.UnderPoint, direction)
	return w.colorAt(refractRay, remaining-1).Multiply(m.Transparency)
}
