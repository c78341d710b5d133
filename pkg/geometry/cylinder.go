package geometry

import (
	"math"

	"github.com/regexPattern/raytracer/pkg/core"
)

// Cylinder is the unit-radius cylinder around the y axis of its object
// space. Min and Max bound it along y (default unbounded); Closed adds end
// caps at the bounds.
type Cylinder struct {
	base
	Min    float64
	Max    float64
	Closed bool
}

// NewCylinder creates an unbounded open cylinder with the default material
func NewCylinder() *Cylinder {
	return &Cylinder{
		base: newBase(),
		Min:  math.Inf(-1),
		Max:  math.Inf(1),
	}
}

// NewClosedCylinder creates a capped cylinder truncated to [min, max] on y
func NewClosedCylinder(min, max float64) *Cylinder {
	return &Cylinder{base: newBase(), Min: min, Max: max, Closed: true}
}

func (cy *Cylinder) localIntersect(ray core.Ray) []Intersection {
	a := ray.Direction.X*ray.Direction.X + ray.Direction.Z*ray.Direction.Z

	// A ray parallel to the y axis can only hit the caps.
	if core.Approx(a, 0) {
		return cy.intersectCaps(ray, nil)
	}

	b := 2*ray.Origin.X*ray.Direction.X + 2*ray.Origin.Z*ray.Direction.Z
	c := ray.Origin.X*ray.Origin.X + ray.Origin.Z*ray.Origin.Z - 1

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return nil
	}

	sqrtD := math.Sqrt(discriminant)
	t0 := (-b - sqrtD) / (2 * a)
	t1 := (-b + sqrtD) / (2 * a)
	if t0 > t1 {
		t0, t1 = t1, t0
	}

	var xs []Intersection

	y0 := ray.Origin.Y + t0*ray.Direction.Y
	if cy.Min < y0 && y0 < cy.Max {
		xs = append(xs, Intersection{T: t0, Object: cy})
	}

	y1 := ray.Origin.Y + t1*ray.Direction.Y
	if cy.Min < y1 && y1 < cy.Max {
		xs = append(xs, Intersection{T: t1, Object: cy})
	}

	return cy.intersectCaps(ray, xs)
}

// intersectCaps appends intersections with the end caps, if any
func (cy *Cylinder) intersectCaps(ray core.Ray, xs []Intersection) []Intersection {
	if !cy.Closed || core.Approx(ray.Direction.Y, 0) {
		return xs
	}

	for _, y := range [2]float64{cy.Min, cy.Max} {
		t := (y - ray.Origin.Y) / ray.Direction.Y
		x := ray.Origin.X + t*ray.Direction.X
		z := ray.Origin.Z + t*ray.Direction.Z
		if x*x+z*z <= 1 {
			xs = append(xs, Intersection{T: t, Object: cy})
		}
	}

	return xs
}

func (cy *Cylinder) localNormalAt(point core.Vec3, _ Intersection) core.Vec3 {
	dist := point.X*point.X + point.Z*point.Z

	switch {
	case dist < 1 && point.Y >= cy.Max-core.Epsilon:
		return core.NewVec3(0, 1, 0)
	case dist < 1 && point.Y <= cy.Min+core.Epsilon:
		return core.NewVec3(0, -1, 0)
	default:
		return core.NewVec3(point.X, 0, point.Z)
	}
}

func (cy *Cylinder) localBounds() core.AABB {
	return core.NewAABB(
		core.NewVec3(-1, cy.Min, -1),
		core.NewVec3(1, cy.Max, 1),
	)
}
