// Package renderer holds the scene-level shading engine: the world that
// aggregates shapes and lights, the camera that maps pixels to primary
// rays, the canvas pixels land on, and the parallel render loop that ties
// them together.
package renderer

import (
	"math"

	"github.com/regexPattern/raytracer/pkg/core"
	"github.com/regexPattern/raytracer/pkg/geometry"
	"github.com/regexPattern/raytracer/pkg/lights"
)

// World is the complete scene: every shape and every light. Shading walks
// these slices directly; a World is immutable once a render starts.
type World struct {
	Objects []geometry.Shape
	Lights  []lights.Light
}

// NewWorld creates an empty world
func NewWorld() *World {
	return &World{}
}

// AddObject adds a shape to the world
func (w *World) AddObject(s geometry.Shape) {
	w.Objects = append(w.Objects, s)
}

// AddLight adds a light to the world
func (w *World) AddLight(l lights.Light) {
	w.Lights = append(w.Lights, l)
}

// ColorAt traces a ray into the world and returns the color it sees.
// remaining bounds the reflection/refraction recursion; a ray with no
// remaining bounces, or one that hits nothing, contributes black.
func (w *World) ColorAt(ray core.Ray, remaining int) core.Color {
	xs := w.intersect(ray)

	hit, ok := geometry.Hit(xs)
	if !ok {
		return core.Black
	}

	comps := hit.Prepare(ray, xs)
	return w.shadeHit(comps, remaining)
}

// intersect collects the intersections of a ray with every object in the
// world, sorted by ascending t.
func (w *World) intersect(ray core.Ray) []geometry.Intersection {
	var xs []geometry.Intersection
	for _, obj := range w.Objects {
		xs = append(xs, geometry.Intersect(obj, ray)...)
	}
	geometry.SortIntersections(xs)
	return xs
}

// shadeHit computes the color at a prepared hit: the Phong contribution of
// every light plus the reflected and refracted colors. When the surface is
// both reflective and transparent the two secondary colors are blended by
// the Schlick reflectance.
func (w *World) shadeHit(comps geometry.Computations, remaining int) core.Color {
	m := comps.Object.Material()
	shapeInverse := comps.Object.Transform().Inverse()

	surface := core.Black
	for _, light := range w.Lights {
		intensity := light.IntensityAt(w, comps.OverPoint)
		surface = surface.Add(m.Lighting(shapeInverse, light, comps.OverPoint, comps.Eye, comps.Normal, intensity))
	}

	reflected := w.reflectedColor(comps, remaining)
	refracted := w.refractedColor(comps, remaining)

	if m.Reflectivity > 0 && m.Transparency > 0 {
		reflectance := comps.Schlick()
		return surface.
			Add(reflected.Scale(reflectance)).
			Add(refracted.Scale(1 - reflectance))
	}
	return surface.Add(reflected).Add(refracted)
}

// reflectedColor traces the reflection ray off a hit and scales the result
// by the surface's reflectivity. Black when the surface is not reflective
// or the recursion budget is spent.
func (w *World) reflectedColor(comps geometry.Computations, remaining int) core.Color {
	if remaining <= 0 {
		return core.Black
	}

	reflectivity := comps.Object.Material().Reflectivity
	if reflectivity == 0 {
		return core.Black
	}

	reflectRay := core.Ray{Origin: comps.OverPoint, Direction: comps.Reflect}
	return w.ColorAt(reflectRay, remaining-1).Scale(reflectivity)
}

// refractedColor traces the refraction ray through a hit and scales the
// result by the surface's transparency. Black when the surface is opaque,
// the recursion budget is spent, or the ray is totally internally
// reflected.
func (w *World) refractedColor(comps geometry.Computations, remaining int) core.Color {
	if remaining <= 0 {
		return core.Black
	}

	transparency := comps.Object.Material().Transparency
	if transparency == 0 {
		return core.Black
	}

	// Snell's law: past the critical angle sin2T exceeds 1 and all light
	// reflects instead.
	nRatio := comps.N1 / comps.N2
	cosI := comps.Eye.Dot(comps.Normal)
	sin2T := nRatio * nRatio * (1 - cosI*cosI)
	if sin2T > 1 {
		return core.Black
	}

	cosT := math.Sqrt(1 - sin2T)
	direction := comps.Normal.Multiply(nRatio*cosI - cosT).
		Subtract(comps.Eye.Multiply(nRatio))

	refractRay := core.Ray{Origin: comps.UnderPoint, Direction: direction}
	return w.ColorAt(refractRay, remaining-1).Scale(transparency)
}

// IsShadowed reports whether any object blocks the segment between a point
// and a light sample position. It satisfies lights.Occluder.
func (w *World) IsShadowed(lightPosition, point core.Vec3) bool {
	toLight := lightPosition.Subtract(point)
	distance := toLight.Length()

	shadowRay := core.Ray{Origin: point, Direction: toLight.Normalize()}
	xs := w.intersect(shadowRay)

	hit, ok := geometry.Hit(xs)
	return ok && hit.T < distance
}
