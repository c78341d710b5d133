package geometry

import (
	"math"

	"github.com/regexPattern/raytracer/pkg/core"
)

// Plane is the infinite x/z plane at y=0 in its object space
type Plane struct {
	base
}

// NewPlane creates a plane with the default material
func NewPlane() *Plane {
	return &Plane{base: newBase()}
}

func (p *Plane) localIntersect(ray core.Ray) []Intersection {
	// A ray parallel to the plane never hits. This includes a ray lying
	// exactly in the plane, which by convention reports no intersection
	// rather than infinitely many.
	if math.Abs(ray.Direction.Y) < core.Epsilon {
		return nil
	}

	t := -ray.Origin.Y / ray.Direction.Y
	return []Intersection{{T: t, Object: p}}
}

func (p *Plane) localNormalAt(core.Vec3, Intersection) core.Vec3 {
	return core.NewVec3(0, 1, 0)
}

func (p *Plane) localBounds() core.AABB {
	return core.NewAABB(
		core.NewVec3(math.Inf(-1), 0, math.Inf(-1)),
		core.NewVec3(math.Inf(1), 0, math.Inf(1)),
	)
}
