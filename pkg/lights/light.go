// Package lights provides the light sources a world can hold: point lights
// and rectangular area lights. Area lights approximate soft shadows by
// averaging occlusion over a grid of sample positions.
package lights

import (
	"github.com/regexPattern/raytracer/pkg/core"
)

// Occluder answers shadow queries. The world implements this; taking an
// interface here keeps the light package free of a dependency on the scene
// graph.
type Occluder interface {
	// IsShadowed reports whether anything blocks the segment from point to
	// lightPosition.
	IsShadowed(lightPosition, point core.Vec3) bool
}

// Light is a light source. The renderer only needs its sample positions,
// its intensity, and a visibility fraction at a point.
type Light interface {
	// Samples returns the world-space positions shadow rays are cast toward.
	// A point light has exactly one.
	Samples() []core.Vec3

	// Intensity returns the light's color intensity
	Intensity() core.Color

	// IntensityAt returns the fraction of the light's samples visible from
	// the point, in [0, 1].
	IntensityAt(occluder Occluder, point core.Vec3) float64
}

// PointLight is a light at a single position
type PointLight struct {
	Position  core.Vec3
	Color     core.Color
}

// NewPointLight creates a new point light
func NewPointLight(position core.Vec3, intensity core.Color) PointLight {
	return PointLight{Position: position, Color: intensity}
}

// Samples returns the light position as the only sample
func (l PointLight) Samples() []core.Vec3 {
	return []core.Vec3{l.Position}
}

// Intensity returns the light's color intensity
func (l PointLight) Intensity() core.Color {
	return l.Color
}

// IntensityAt returns 1 when the point can see the light, 0 when shadowed
func (l PointLight) IntensityAt(occluder Occluder, point core.Vec3) float64 {
	if occluder.IsShadowed(l.Position, point) {
		return 0
	}
	return 1
}

// AreaLight is a rectangular light spanned by two edge vectors, divided into
// a grid of cells. Shadow rays target each cell center, so visibility is a
// fraction rather than a binary.
type AreaLight struct {
	corner core.Vec3
	uvec   core.Vec3
	usteps int
	vvec   core.Vec3
	vsteps int
	color  core.Color
}

// NewAreaLight creates an area light with its lower corner at corner,
// spanned by the full horizontal and vertical edge vectors, divided into
// hcells x vcells sample cells.
func NewAreaLight(corner, horizontal core.Vec3, hcells int, vertical core.Vec3, vcells int, intensity core.Color) AreaLight {
	return AreaLight{
		corner: corner,
		uvec:   horizontal.Multiply(1 / float64(hcells)),
		usteps: hcells,
		vvec:   vertical.Multiply(1 / float64(vcells)),
		vsteps: vcells,
		color:  intensity,
	}
}

// SampleCount returns the number of grid cells
func (l AreaLight) SampleCount() int {
	return l.usteps * l.vsteps
}

// Samples returns the center of every grid cell
func (l AreaLight) Samples() []core.Vec3 {
	samples := make([]core.Vec3, 0, l.SampleCount())
	for v := 0; v < l.vsteps; v++ {
		for u := 0; u < l.usteps; u++ {
			samples = append(samples, l.pointOnLight(u, v))
		}
	}
	return samples
}

// Intensity returns the light's color intensity
func (l AreaLight) Intensity() core.Color {
	return l.color
}

// IntensityAt returns the fraction of grid cells whose centers are visible
// from the point
func (l AreaLight) IntensityAt(occluder Occluder, point core.Vec3) float64 {
	total := 0.0
	for v := 0; v < l.vsteps; v++ {
		for u := 0; u < l.usteps; u++ {
			if !occluder.IsShadowed(l.pointOnLight(u, v), point) {
				total++
			}
		}
	}
	return total / float64(l.SampleCount())
}

// pointOnLight returns the center of cell (u, v)
func (l AreaLight) pointOnLight(u, v int) core.Vec3 {
	return l.corner.
		Add(l.uvec.Multiply(float64(u) + 0.5)).
		Add(l.vvec.Multiply(float64(v) + 0.5))
}
