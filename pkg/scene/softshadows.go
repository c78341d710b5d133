package scene

import (
	"math"

	"github.com/regexPattern/raytracer/pkg/core"
	"github.com/regexPattern/raytracer/pkg/geometry"
	"github.com/regexPattern/raytracer/pkg/lights"
	"github.com/regexPattern/raytracer/pkg/material"
	"github.com/regexPattern/raytracer/pkg/renderer"
)

// NewSoftShadowsScene creates a cube and a capped cylinder on a plane, lit
// by a rectangular area light so shadow edges fall off gradually.
func NewSoftShadowsScene(width, height int) (*Scene, error) {
	world := renderer.NewWorld()

	floor := geometry.NewPlane()
	floor.Material().Texture = material.NewSolid(core.NewColor(1, 1, 0.9))
	floor.Material().Ambient = 0.025
	floor.Material().Diffuse = 0.67
	floor.Material().Specular = 0
	world.AddObject(floor)

	cube := geometry.NewCube()
	cube.SetTransform(core.Translation(1.2, 0.5, 0).
		Mul(core.Must(core.Scaling(0.5, 0.5, 0.5))).
		Mul(core.RotationY(math.Pi / 6)))
	cube.Material().Texture = material.NewSolid(core.NewColor(1, 0.5, 0))
	cube.Material().Ambient = 0.1
	cube.Material().Specular = 0
	cube.Material().Diffuse = 0.6
	world.AddObject(cube)

	cylinder := geometry.NewClosedCylinder(0, 1.2)
	cylinder.SetTransform(core.Translation(-1, 0, 0.5).
		Mul(core.Must(core.Scaling(0.5, 1, 0.5))))
	cylinder.Material().Texture = material.NewSolid(core.NewColor(0.5, 0.5, 1))
	cylinder.Material().Ambient = 0.1
	cylinder.Material().Specular = 0
	cylinder.Material().Diffuse = 0.6
	world.AddObject(cylinder)

	world.AddLight(lights.NewAreaLight(
		core.NewVec3(-1, 2, 4),
		core.NewVec3(2, 0, 0), 8,
		core.NewVec3(0, 2, 0), 8,
		core.NewColor(1.5, 1.5, 1.5),
	))

	view, err := core.ViewTransform(
		core.NewVec3(-3, 1, 2.5),
		core.NewVec3(0, 0.5, 0),
		core.NewVec3(0, 1, 0),
	)
	if err != nil {
		return nil, err
	}

	camera, err := renderer.NewCamera(width, height, math.Pi/4, view)
	if err != nil {
		return nil, err
	}

	return &Scene{World: world, Camera: camera}, nil
}
