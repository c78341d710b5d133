package core

import "math"

// AABB represents an axis-aligned bounding box as a min/max corner pair.
// The zero value is not useful; use EmptyAABB or NewAABB.
type AABB struct {
	Min Vec3
	Max Vec3
}

// EmptyAABB returns the box containing no points. It is the identity
// element under Union.
func EmptyAABB() AABB {
	return AABB{
		Min: NewVec3(math.Inf(1), math.Inf(1), math.Inf(1)),
		Max: NewVec3(math.Inf(-1), math.Inf(-1), math.Inf(-1)),
	}
}

// NewAABB creates a new AABB from min and max corners
func NewAABB(min, max Vec3) AABB {
	return AABB{Min: min, Max: max}
}

// NewAABBFromPoints creates an AABB that bounds all given points
func NewAABBFromPoints(points ...Vec3) AABB {
	box := EmptyAABB()
	for _, point := range points {
		box = box.AddPoint(point)
	}
	return box
}

// AddPoint returns the box grown to contain the given point
func (b AABB) AddPoint(point Vec3) AABB {
	return AABB{
		Min: Vec3{
			X: math.Min(b.Min.X, point.X),
			Y: math.Min(b.Min.Y, point.Y),
			Z: math.Min(b.Min.Z, point.Z),
		},
		Max: Vec3{
			X: math.Max(b.Max.X, point.X),
			Y: math.Max(b.Max.Y, point.Y),
			Z: math.Max(b.Max.Z, point.Z),
		},
	}
}

// Union returns a box that bounds both this box and another
func (b AABB) Union(other AABB) AABB {
	return b.AddPoint(other.Min).AddPoint(other.Max)
}

// IsEmpty reports whether the box contains no points
func (b AABB) IsEmpty() bool {
	return b.Min.X > b.Max.X || b.Min.Y > b.Max.Y || b.Min.Z > b.Max.Z
}

// ContainsPoint reports whether the point lies in the box, borders included
func (b AABB) ContainsPoint(p Vec3) bool {
	return p.X >= b.Min.X-Epsilon && p.X <= b.Max.X+Epsilon &&
		p.Y >= b.Min.Y-Epsilon && p.Y <= b.Max.Y+Epsilon &&
		p.Z >= b.Min.Z-Epsilon && p.Z <= b.Max.Z+Epsilon
}

// ContainsBox reports whether the other box lies entirely inside this one
func (b AABB) ContainsBox(other AABB) bool {
	return b.ContainsPoint(other.Min) && b.ContainsPoint(other.Max)
}

// Transform returns a new axis-aligned box enclosing this box after the
// given transform. All eight corners are transformed and re-bounded, so the
// result may be looser than the exact transformed volume.
func (b AABB) Transform(t Transform) AABB {
	corners := [8]Vec3{
		b.Min,
		{b.Min.X, b.Min.Y, b.Max.Z},
		{b.Min.X, b.Max.Y, b.Min.Z},
		{b.Min.X, b.Max.Y, b.Max.Z},
		{b.Max.X, b.Min.Y, b.Min.Z},
		{b.Max.X, b.Min.Y, b.Max.Z},
		{b.Max.X, b.Max.Y, b.Min.Z},
		b.Max,
	}

	box := EmptyAABB()
	for _, corner := range corners {
		box = box.AddPoint(t.ApplyPoint(corner))
	}
	return box
}

// IntersectT runs the slab test and returns the entry and exit distances
// along the ray. ok is false when the ray misses the box. Negative distances
// still count as hits: intersections behind the ray origin matter for
// refraction bookkeeping, so pruning must not drop them.
func (b AABB) IntersectT(ray Ray) (tmin, tmax float64, ok bool) {
	tmin, tmax = math.Inf(-1), math.Inf(1)

	for axis := 0; axis < 3; axis++ {
		var min, max, origin, direction float64
		switch axis {
		case 0:
			min, max, origin, direction = b.Min.X, b.Max.X, ray.Origin.X, ray.Direction.X
		case 1:
			min, max, origin, direction = b.Min.Y, b.Max.Y, ray.Origin.Y, ray.Direction.Y
		case 2:
			min, max, origin, direction = b.Min.Z, b.Max.Z, ray.Origin.Z, ray.Direction.Z
		}

		if math.Abs(direction) < Epsilon {
			// Parallel to this slab: a miss unless the origin lies between
			// the planes.
			if origin < min || origin > max {
				return 0, 0, false
			}
			continue
		}

		t1 := (min - origin) / direction
		t2 := (max - origin) / direction
		if t1 > t2 {
			t1, t2 = t2, t1
		}

		tmin = math.Max(tmin, t1)
		tmax = math.Min(tmax, t2)
		if tmin > tmax {
			return 0, 0, false
		}
	}

	return tmin, tmax, true
}

// Hit reports whether the ray intersects the box
func (b AABB) Hit(ray Ray) bool {
	_, _, ok := b.IntersectT(ray)
	return ok
}

// Split halves the box at the spatial midpoint of its longest axis and
// returns the two halves. Splitting at the midpoint guarantees each half is
// strictly smaller than the whole, so recursive partitioning terminates.
// An unbounded axis yields NaN midpoints, which fail every containment test
// and leave children unpartitioned.
func (b AABB) Split() (left, right AABB) {
	dx := b.Max.X - b.Min.X
	dy := b.Max.Y - b.Min.Y
	dz := b.Max.Z - b.Min.Z

	x0, y0, z0 := b.Min.X, b.Min.Y, b.Min.Z
	x1, y1, z1 := b.Max.X, b.Max.Y, b.Max.Z

	largest := math.Max(dx, math.Max(dy, dz))
	switch {
	case Approx(largest, dx):
		x0 = x0 + dx/2
		x1 = x0
	case Approx(largest, dy):
		y0 = y0 + dy/2
		y1 = y0
	default:
		z0 = z0 + dz/2
		z1 = z0
	}

	left = AABB{Min: b.Min, Max: NewVec3(x1, y1, z1)}
	right = AABB{Min: NewVec3(x0, y0, z0), Max: b.Max}
	return left, right
}
