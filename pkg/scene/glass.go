package scene

import (
	"math"

	"github.com/regexPattern/raytracer/pkg/core"
	"github.com/regexPattern/raytracer/pkg/geometry"
	"github.com/regexPattern/raytracer/pkg/lights"
	"github.com/regexPattern/raytracer/pkg/material"
	"github.com/regexPattern/raytracer/pkg/renderer"
)

// NewGlassScene creates a hollow glass sphere over a checkered floor beside
// a grouped cluster of small metal spheres. The cluster is subdivided so
// its bounding boxes carry the intersection cost.
func NewGlassScene(width, height int) (*Scene, error) {
	world := renderer.NewWorld()

	floor := geometry.NewPlane()
	floor.SetTransform(core.Translation(0, -1.01, 0))
	floor.Material().Texture = material.NewChecker(
		core.NewColor(0.9, 0.9, 0.9),
		core.NewColor(0.1, 0.1, 0.1),
	)
	floor.Material().Specular = 0
	world.AddObject(floor)

	// Outer glass shell with an air pocket inside. The inner sphere's index
	// of 1 makes the shell hollow rather than solid.
	outer := geometry.NewSphere()
	outer.Material().Texture = material.NewSolid(core.NewColor(0.05, 0.05, 0.05))
	outer.Material().Ambient = 0
	outer.Material().Diffuse = 0.1
	outer.Material().Specular = 0.9
	outer.Material().Shininess = 300
	outer.Material().Reflectivity = 0.9
	outer.Material().Transparency = 0.9
	outer.Material().RefractiveIndex = 1.5
	world.AddObject(outer)

	inner := geometry.NewSphere()
	inner.SetTransform(core.Must(core.Scaling(0.5, 0.5, 0.5)))
	inner.Material().Texture = material.NewSolid(core.White)
	inner.Material().Ambient = 0
	inner.Material().Diffuse = 0
	inner.Material().Specular = 0.9
	inner.Material().Shininess = 300
	inner.Material().Reflectivity = 0.9
	inner.Material().Transparency = 0.9
	inner.Material().RefractiveIndex = 1
	world.AddObject(inner)

	world.AddObject(metalCluster())

	world.AddLight(lights.NewPointLight(
		core.NewVec3(2, 10, -5),
		core.NewColor(0.9, 0.9, 0.9),
	))

	view, err := core.ViewTransform(
		core.NewVec3(0, 0, -4),
		core.NewVec3(0, 0, 0),
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

// metalCluster builds a subdivided group of small reflective spheres
// arranged on a ring behind the glass sphere.
func metalCluster() *geometry.Group {
	group := geometry.NewGroup(core.Translation(0, 0, 4))

	const count = 12
	for i := 0; i < count; i++ {
		angle := 2 * math.Pi * float64(i) / count

		s := geometry.NewSphere()
		s.SetTransform(core.Translation(2*math.Cos(angle), 2*math.Sin(angle), 0).
			Mul(core.Must(core.Scaling(0.25, 0.25, 0.25))))
		s.Material().Texture = material.NewSolid(core.NewColor(0.7, 0.7, 0.8))
		s.Material().Diffuse = 0.4
		s.Material().Specular = 0.9
		s.Material().Shininess = 200
		s.Material().Reflectivity = 0.6
		group.AddChild(s)
	}

	group.Divide(4)
	return group
}
