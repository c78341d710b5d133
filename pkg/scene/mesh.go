package scene

import (
	"math"

	"github.com/regexPattern/raytracer/pkg/core"
	"github.com/regexPattern/raytracer/pkg/geometry"
	"github.com/regexPattern/raytracer/pkg/lights"
	"github.com/regexPattern/raytracer/pkg/loaders"
	"github.com/regexPattern/raytracer/pkg/material"
	"github.com/regexPattern/raytracer/pkg/renderer"
)

// Subdivision threshold for loaded meshes. Meshes run to thousands of
// triangles, so deep bounding-box trees pay for themselves quickly.
const meshDivideThreshold = 8

// NewMeshScene loads a Wavefront OBJ file and places it on a reflective
// floor. The mesh is wrapped in a group and subdivided for faster ray
// tests.
func NewMeshScene(objPath string, width, height int) (*Scene, error) {
	mesh, err := loaders.LoadOBJ(objPath)
	if err != nil {
		return nil, err
	}
	mesh.Divide(meshDivideThreshold)

	world := renderer.NewWorld()

	floor := geometry.NewPlane()
	floor.Material().Texture = material.NewChecker(
		core.NewColor(0.8, 0.8, 0.8),
		core.NewColor(0.4, 0.4, 0.4),
	)
	floor.Material().Specular = 0
	floor.Material().Reflectivity = 0.05
	world.AddObject(floor)

	holder := geometry.NewGroup(core.Must(core.Scaling(0.5, 0.5, 0.5)))
	holder.AddChild(mesh)
	world.AddObject(holder)

	world.AddLight(lights.NewPointLight(
		core.NewVec3(-8, 12, -10),
		core.White,
	))

	view, err := core.ViewTransform(
		core.NewVec3(0, 3, -8),
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
