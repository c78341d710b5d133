package scene

import (
	"math"

	"github.com/regexPattern/raytracer/pkg/core"
	"github.com/regexPattern/raytracer/pkg/geometry"
	"github.com/regexPattern/raytracer/pkg/lights"
	"github.com/regexPattern/raytracer/pkg/material"
	"github.com/regexPattern/raytracer/pkg/renderer"
)

// NewReflectionsScene creates three spheres on a checkered floor, the
// middle one strongly reflective, lit by a single point light.
func NewReflectionsScene(width, height int) (*Scene, error) {
	world := renderer.NewWorld()

	floor := geometry.NewPlane()
	floor.Material().Texture = material.NewChecker(
		core.NewColor(0.85, 0.85, 0.85),
		core.NewColor(0.15, 0.25, 0.35),
	)
	floor.Material().Specular = 0
	floor.Material().Reflectivity = 0.1
	world.AddObject(floor)

	middle := geometry.NewSphere()
	middle.SetTransform(core.Translation(-0.5, 1, 0.5))
	middle.Material().Texture = material.NewSolid(core.NewColor(0.1, 0.2, 0.6))
	middle.Material().Diffuse = 0.6
	middle.Material().Specular = 0.9
	middle.Material().Shininess = 300
	middle.Material().Reflectivity = 0.6
	world.AddObject(middle)

	right := geometry.NewSphere()
	right.SetTransform(core.Translation(1.5, 0.5, -0.5).
		Mul(core.Must(core.Scaling(0.5, 0.5, 0.5))))
	right.Material().Texture = material.NewSolid(core.NewColor(0.8, 0.3, 0.3))
	right.Material().Reflectivity = 0.2
	world.AddObject(right)

	left := geometry.NewSphere()
	left.SetTransform(core.Translation(-1.5, 0.33, -0.75).
		Mul(core.Must(core.Scaling(0.33, 0.33, 0.33))))
	left.Material().Texture = material.NewGradient(
		core.NewColor(0.9, 0.7, 0.1),
		core.NewColor(0.9, 0.2, 0.1),
	)
	world.AddObject(left)

	world.AddLight(lights.NewPointLight(
		core.NewVec3(-10, 10, -10),
		core.White,
	))

	view, err := core.ViewTransform(
		core.NewVec3(0, 1.5, -5),
		core.NewVec3(0, 1, 0),
		core.NewVec3(0, 1, 0),
	)
	if err != nil {
		return nil, err
	}

	camera, err := renderer.NewCamera(width, height, math.Pi/3, view)
	if err != nil {
		return nil, err
	}

	return &Scene{World: world, Camera: camera}, nil
}
