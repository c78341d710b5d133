// Package geometry implements the closed set of intersectable shapes, the
// aggregate group with its bounding-volume pruning, and the ray-shape
// intersection machinery.
//
// Every shape is defined in its own object space; the chokepoints Intersect
// and NormalAt translate between world and object space using the shape's
// cached inverse transform. The shape set is closed: adding a variant means
// touching the two chokepoints, which is intentional for this domain.
package geometry

import (
	"github.com/regexPattern/raytracer/pkg/core"
	"github.com/regexPattern/raytracer/pkg/material"
)

// Shape is one of the closed set of scene primitives: Sphere, Plane, Cube,
// Cylinder, Triangle, SmoothTriangle or Group. The interface is sealed by
// its unexported methods; only this package defines variants.
type Shape interface {
	// Material returns the shape's material. The pointer resolves to the
	// shape's own storage so scene-construction mutations are uniformly
	// visible.
	Material() *material.Material

	// Transform returns the shape's transform with its cached inverse
	Transform() core.Transform

	// SetTransform replaces the shape's transform and cached inverse as one
	// operation. Do not call once the shape belongs to a group or a render
	// is in flight.
	SetTransform(core.Transform)

	// localIntersect intersects an object-space ray with the shape
	localIntersect(ray core.Ray) []Intersection

	// localNormalAt returns the object-space normal at an object-space
	// point. The hit carries barycentric coordinates for smooth triangles.
	localNormalAt(point core.Vec3, hit Intersection) core.Vec3

	// localBounds returns the shape's bounding box in object space
	localBounds() core.AABB
}

// base carries the state every primitive shares: a material and a transform
// whose inverse is recomputed atomically on every set.
type base struct {
	material  material.Material
	transform core.Transform
}

func newBase() base {
	return base{material: material.Default(), transform: core.Identity()}
}

// Material returns the shape's material for reading and mutation
func (b *base) Material() *material.Material {
	return &b.material
}

// SetMaterial replaces the shape's material
func (b *base) SetMaterial(m material.Material) {
	b.material = m
}

// Transform returns the shape's transform
func (b *base) Transform() core.Transform {
	return b.transform
}

// SetTransform replaces the shape's transform. The transform value already
// carries its inverse, so the two can never disagree.
func (b *base) SetTransform(t core.Transform) {
	b.transform = t
}

// Intersect casts a world-space ray at a shape and returns every hit, each
// tagged with the exact primitive hit. Group hits recurse into children and
// never report the group itself.
func Intersect(s Shape, worldRay core.Ray) []Intersection {
	if g, ok := s.(*Group); ok {
		// Group transforms are composed into the children when they are
		// added, so the ray is passed through unchanged.
		return g.intersect(worldRay)
	}
	objectRay := worldRay.Transform(s.Transform().Inverse())
	return s.localIntersect(objectRay)
}

// NormalAt returns the world-space surface normal of the hit shape at a
// world-space point. The point is mapped into object space with the inverse
// transform and the resulting normal back out with the inverse-transpose.
func NormalAt(s Shape, worldPoint core.Vec3, hit Intersection) core.Vec3 {
	objectPoint := s.Transform().Inverse().ApplyPoint(worldPoint)
	objectNormal := s.localNormalAt(objectPoint, hit)
	return s.Transform().NormalToWorld(objectNormal)
}

// Bounds returns the shape's bounding box in the space of its parent, i.e.
// its object-space box carried through its transform.
func Bounds(s Shape) core.AABB {
	if g, ok := s.(*Group); ok {
		return g.bounds
	}
	return s.localBounds().Transform(s.Transform())
}
