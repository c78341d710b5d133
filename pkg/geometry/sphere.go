package geometry

import (
	"math"

	"github.com/regexPattern/raytracer/pkg/core"
)

// Sphere is the unit sphere centered at the origin of its object space
type Sphere struct {
	base
}

// NewSphere creates a unit sphere with the default material
func NewSphere() *Sphere {
	return &Sphere{base: newBase()}
}

func (s *Sphere) localIntersect(ray core.Ray) []Intersection {
	// Quadratic in t for |origin + t*direction|^2 = 1.
	oc := ray.Origin
	a := ray.Direction.Dot(ray.Direction)
	b := 2 * ray.Direction.Dot(oc)
	c := oc.Dot(oc) - 1

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return nil
	}

	// A tangent ray yields two equal roots.
	sqrtD := math.Sqrt(discriminant)
	t1 := (-b - sqrtD) / (2 * a)
	t2 := (-b + sqrtD) / (2 * a)

	return []Intersection{
		{T: t1, Object: s},
		{T: t2, Object: s},
	}
}

func (s *Sphere) localNormalAt(point core.Vec3, _ Intersection) core.Vec3 {
	return point
}

func (s *Sphere) localBounds() core.AABB {
	return core.NewAABB(core.NewVec3(-1, -1, -1), core.NewVec3(1, 1, 1))
}
