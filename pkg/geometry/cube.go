package geometry

import (
	"math"

	"github.com/regexPattern/raytracer/pkg/core"
)

// Cube is the axis-aligned unit cube [-1,1]^3 in its object space
type Cube struct {
	base
}

// NewCube creates a unit cube with the default material
func NewCube() *Cube {
	return &Cube{base: newBase()}
}

func (c *Cube) localIntersect(ray core.Ray) []Intersection {
	tmin, tmax, ok := c.localBounds().IntersectT(ray)
	if !ok {
		return nil
	}
	return []Intersection{
		{T: tmin, Object: c},
		{T: tmax, Object: c},
	}
}

func (c *Cube) localNormalAt(point core.Vec3, _ Intersection) core.Vec3 {
	// The normal points along the axis of the face the point lies on, which
	// is the one with the largest absolute coordinate.
	ax, ay, az := math.Abs(point.X), math.Abs(point.Y), math.Abs(point.Z)
	maxc := math.Max(ax, math.Max(ay, az))

	switch {
	case maxc == ax:
		return core.NewVec3(point.X, 0, 0)
	case maxc == ay:
		return core.NewVec3(0, point.Y, 0)
	default:
		return core.NewVec3(0, 0, point.Z)
	}
}

func (c *Cube) localBounds() core.AABB {
	return core.NewAABB(core.NewVec3(-1, -1, -1), core.NewVec3(1, 1, 1))
}
