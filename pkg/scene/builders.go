package scene

import (
	"fmt"
	"math"

	"github.com/styxx3542/ray-tracer/pkg/geometry"
	"github.com/styxx3542/ray-tracer/pkg/lights"
	"github.com/styxx3542/ray-tracer/pkg/material"
	"github.com/styxx3542/ray-tracer/pkg/renderer"
	"github.com/styxx3542/ray-tracer/pkg/rtmath"
	"github.com/styxx3542/ray-tracer/pkg/world"
)

// buildDefault is the two-sphere reference world viewed from the front.
func buildDefault(width, height int) (*Scene, error) {
	w := world.Default()
	camera, err := renderer.NewCamera(width, height, math.Pi/2, rtmath.ViewTransform(
		rtmath.NewPoint(0, 0, -5),
		rtmath.NewPoint(0, 0, 0),
		rtmath.NewVector(0, 1, 0),
	))
	if err != nil {
		return nil, fmt.Errorf("build default scene: %w", err)
	}
	return &Scene{World: w, Camera: camera}, nil
}

// buildRoom is three spheres in a room of matte planes with a checkered
// floor and a reflective middle sphere.
func buildRoom(width, height int) (*Scene, error) {
	floor := geometry.NewPlane()
	floor.Material().Specular = 0
	floor.Material().Reflective = 0.1
	checker := material.NewCheckerPattern(
		rtmath.NewColor(0.85, 0.85, 0.85),
		rtmath.NewColor(0.25, 0.25, 0.25),
	)
	floor.Material().Pattern = checker

	backWall := geometry.NewPlane()
	backWall.Material().Color = rtmath.NewColor(0.9, 0.9, 0.95)
	backWall.Material().Specular = 0
	if err := backWall.SetTransform(
		rtmath.Translation(0, 0, 6).Mul(rtmath.RotationX(math.Pi / 2)),
	); err != nil {
		return nil, fmt.Errorf("build room scene: %w", err)
	}

	middle := geometry.NewSphere()
	middle.Material().Color = rtmath.NewColor(0.1, 1, 0.5)
	middle.Material().Diffuse = 0.7
	middle.Material().Specular = 0.3
	middle.Material().Reflective = 0.3
	if err := middle.SetTransform(rtmath.Translation(-0.5, 1, 0.5)); err != nil {
		return nil, fmt.Errorf("build room scene: %w", err)
	}

	right := geometry.NewSphere()
	right.Material().Color = rtmath.NewColor(0.5, 1, 0.1)
	right.Material().Diffuse = 0.7
	right.Material().Specular = 0.3
	stripes := material.NewStripePattern(
		rtmath.NewColor(0.5, 1, 0.1),
		rtmath.NewColor(1, 1, 1),
	)
	if err := stripes.SetTransform(
		rtmath.Scaling(0.25, 0.25, 0.25).Mul(rtmath.RotationZ(math.Pi / 4)),
	); err != nil {
		return nil, fmt.Errorf("build room scene: %w", err)
	}
	right.Material().Pattern = stripes
	if err := right.SetTransform(
		rtmath.Translation(1.5, 0.5, -0.5).Mul(rtmath.Scaling(0.5, 0.5, 0.5)),
	); err != nil {
		return nil, fmt.Errorf("build room scene: %w", err)
	}

	left := geometry.NewSphere()
	left.Material().Color = rtmath.NewColor(1, 0.8, 0.1)
	left.Material().Diffuse = 0.7
	left.Material().Specular = 0.3
	gradient := material.NewGradientPattern(
		rtmath.NewColor(1, 0.8, 0.1),
		rtmath.NewColor(1, 0.2, 0.2),
	)
	left.Material().Pattern = gradient
	if err := left.SetTransform(
		rtmath.Translation(-1.5, 0.33, -0.75).Mul(rtmath.Scaling(0.33, 0.33, 0.33)),
	); err != nil {
		return nil, fmt.Errorf("build room scene: %w", err)
	}

	w := world.New()
	w.Shapes = []geometry.Shape{floor, backWall, middle, right, left}
	w.Lights = []lights.PointLight{
		lights.NewPointLight(rtmath.NewPoint(-10, 10, -10), rtmath.White),
	}

	camera, err := renderer.NewCamera(width, height, math.Pi/3, rtmath.ViewTransform(
		rtmath.NewPoint(0, 1.5, -5),
		rtmath.NewPoint(0, 1, 0),
		rtmath.NewVector(0, 1, 0),
	))
	if err != nil {
		return nil, fmt.Errorf("build room scene: %w", err)
	}
	return &Scene{World: w, Camera: camera}, nil
}

// buildGlass is a glass sphere with an air bubble inside, hovering over a
// checkered floor, lit from above.
func buildGlass(width, height int) (*Scene, error) {
	floor := geometry.NewPlane()
	floor.Material().Specular = 0
	floor.Material().Pattern = material.NewCheckerPattern(
		rtmath.NewColor(0.8, 0.8, 0.8),
		rtmath.NewColor(0.2, 0.2, 0.2),
	)
	if err := floor.SetTransform(rtmath.Translation(0, -10, 0)); err != nil {
		return nil, fmt.Errorf("build glass scene: %w", err)
	}

	outer := geometry.NewGlassSphere()
	outer.Material().Color = rtmath.NewColor(0.05, 0.05, 0.05)
	outer.Material().Diffuse = 0.1
	outer.Material().Specular = 1
	outer.Material().Shininess = 300
	outer.Material().Reflective = 0.9

	bubble := geometry.NewGlassSphere()
	bubble.Material().Color = rtmath.NewColor(0.05, 0.05, 0.05)
	bubble.Material().Diffuse = 0.1
	bubble.Material().Specular = 1
	bubble.Material().Shininess = 300
	bubble.Material().Reflective = 0.9
	bubble.Material().RefractiveIndex = 1.0000034
	if err := bubble.SetTransform(rtmath.Scaling(0.5, 0.5, 0.5)); err != nil {
		return nil, fmt.Errorf("build glass scene: %w", err)
	}

	w := world.New()
	w.Shapes = []geometry.Shape{floor, outer, bubble}
	w.Lights = []lights.PointLight{
		lights.NewPointLight(rtmath.NewPoint(20, 10, 0), rtmath.NewColor(0.7, 0.7, 0.7)),
	}

	camera, err := renderer.NewCamera(width, height, math.Pi/3, rtmath.ViewTransform(
		rtmath.NewPoint(0, 2.5, 0),
		rtmath.NewPoint(0, 0, 0),
		rtmath.NewVector(0, 0, 1),
	))
	if err != nil {
		return nil, fmt.Errorf("build glass scene: %w", err)
	}
	return &Scene{World: w, Camera: camera}, nil
}

// buildShapes shows one of each primitive on a ringed floor: a cube, a
// capped cylinder, a cone and a striped sphere.
func buildShapes(width, height int) (*Scene, error) {
	floor := geometry.NewPlane()
	floor.Material().Specular = 0.1
	floor.Material().Reflective = 0.05
	floor.Material().Pattern = material.NewRingPattern(
		rtmath.NewColor(0.6, 0.6, 0.65),
		rtmath.NewColor(0.3, 0.3, 0.35),
	)

	cube := geometry.NewCube()
	cube.Material().Color = rtmath.NewColor(0.9, 0.2, 0.2)
	if err := cube.SetTransform(
		rtmath.Translation(-2.5, 0.5, 1).
			Mul(rtmath.RotationY(math.Pi / 6)).
			Mul(rtmath.Scaling(0.5, 0.5, 0.5)),
	); err != nil {
		return nil, fmt.Errorf("build shapes scene: %w", err)
	}

	cylinder := geometry.NewBoundedCylinder(0, 1.5, true)
	cylinder.Material().Color = rtmath.NewColor(0.2, 0.4, 0.9)
	cylinder.Material().Reflective = 0.2
	if err := cylinder.SetTransform(
		rtmath.Translation(0, 0, 1.5).Mul(rtmath.Scaling(0.6, 1, 0.6)),
	); err != nil {
		return nil, fmt.Errorf("build shapes scene: %w", err)
	}

	cone := geometry.NewBoundedCone(-1, 0, true)
	cone.Material().Color = rtmath.NewColor(0.9, 0.7, 0.1)
	if err := cone.SetTransform(
		rtmath.Translation(2.5, 1, 1).Mul(rtmath.Scaling(0.6, 1, 0.6)),
	); err != nil {
		return nil, fmt.Errorf("build shapes scene: %w", err)
	}

	ball := geometry.NewSphere()
	stripes := material.NewStripePattern(
		rtmath.NewColor(0.2, 0.8, 0.4),
		rtmath.NewColor(0.9, 0.9, 0.9),
	)
	if err := stripes.SetTransform(rtmath.Scaling(0.3, 0.3, 0.3)); err != nil {
		return nil, fmt.Errorf("build shapes scene: %w", err)
	}
	ball.Material().Pattern = stripes
	if err := ball.SetTransform(
		rtmath.Translation(0.8, 0.5, -1).Mul(rtmath.Scaling(0.5, 0.5, 0.5)),
	); err != nil {
		return nil, fmt.Errorf("build shapes scene: %w", err)
	}

	w := world.New()
	w.Shapes = []geometry.Shape{floor, cube, cylinder, cone, ball}
	w.Lights = []lights.PointLight{
		lights.NewPointLight(rtmath.NewPoint(-8, 8, -6), rtmath.White),
		lights.NewPointLight(rtmath.NewPoint(6, 4, -4), rtmath.NewColor(0.3, 0.3, 0.3)),
	}

	camera, err := renderer.NewCamera(width, height, math.Pi/3, rtmath.ViewTransform(
		rtmath.NewPoint(0, 2.5, -6),
		rtmath.NewPoint(0, 0.7, 0),
		rtmath.NewVector(0, 1, 0),
	))
	if err != nil {
		return nil, fmt.Errorf("build shapes scene: %w", err)
	}
	return &Scene{World: w, Camera: camera}, nil
}
