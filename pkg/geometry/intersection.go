package geometry

import (
	"math"
	"sort"

	"github.com/regexPattern/raytracer/pkg/core"
)

// Intersection is one hit along a ray: the signed distance t and the exact
// shape hit. U/V are the barycentric coordinates of the hit and are set
// (HasUV) only for smooth triangles.
type Intersection struct {
	T      float64
	Object Shape
	U, V   float64
	HasUV  bool
}

// SortIntersections orders intersections by ascending t. The sort is stable
// so ties keep their input order.
func SortIntersections(xs []Intersection) {
	sort.SliceStable(xs, func(i, j int) bool {
		return xs[i].T < xs[j].T
	})
}

// Hit returns the nearest visible intersection: the first with t >= 0 once
// sorted. No epsilon bias is applied here; shadow acne is handled by the
// shading engine's over/under points. ok is false when every t is negative
// or xs is empty.
func Hit(xs []Intersection) (Intersection, bool) {
	for _, i := range xs {
		if i.T >= 0 {
			return i, true
		}
	}
	return Intersection{}, false
}

// Computations is everything the shading engine needs about a hit: the hit
// point, epsilon-offset points for secondary rays, the eye, normal and
// reflection vectors, and the refractive indices on either side of the
// surface.
type Computations struct {
	Intersection
	Point      core.Vec3
	OverPoint  core.Vec3
	UnderPoint core.Vec3
	Eye        core.Vec3
	Normal     core.Vec3
	Reflect    core.Vec3
	Inside     bool
	N1, N2     float64
}

// Prepare derives the shading computations for this intersection. xs must
// be the full sorted intersection list of the same ray; it is walked to
// determine which media the ray is leaving and entering (N1/N2) for
// refraction.
func (i Intersection) Prepare(ray core.Ray, xs []Intersection) Computations {
	point := ray.At(i.T)
	eye := ray.Direction.Negate()

	normal := NormalAt(i.Object, point, i)
	inside := normal.Dot(eye) < 0
	if inside {
		normal = normal.Negate()
	}

	comps := Computations{
		Intersection: i,
		Point:        point,
		OverPoint:    point.Add(normal.Multiply(core.Epsilon)),
		UnderPoint:   point.Subtract(normal.Multiply(core.Epsilon)),
		Eye:          eye,
		Normal:       normal,
		Reflect:      ray.Direction.Reflect(normal),
		Inside:       inside,
		N1:           1,
		N2:           1,
	}

	// Walk the intersections in ray order, tracking which objects the ray
	// is currently inside of. At the hit itself, the innermost container
	// before entry gives n1 and after entry gives n2.
	var containers []Shape
	for _, x := range xs {
		atHit := x.Object == i.Object && x.T == i.T

		if atHit {
			if len(containers) > 0 {
				comps.N1 = containers[len(containers)-1].Material().RefractiveIndex
			}
		}

		if idx := indexOfShape(containers, x.Object); idx >= 0 {
			containers = append(containers[:idx], containers[idx+1:]...)
		} else {
			containers = append(containers, x.Object)
		}

		if atHit {
			if len(containers) > 0 {
				comps.N2 = containers[len(containers)-1].Material().RefractiveIndex
			}
			break
		}
	}

	return comps
}

func indexOfShape(shapes []Shape, s Shape) int {
	for i, candidate := range shapes {
		if candidate == s {
			return i
		}
	}
	return -1
}

// Schlick approximates the Fresnel reflectance at this hit: the fraction of
// light that reflects rather than refracts. Returns 1 under total internal
// reflection.
func (c Computations) Schlick() float64 {
	cos := c.Eye.Dot(c.Normal)

	if c.N1 > c.N2 {
		n := c.N1 / c.N2
		sin2T := n * n * (1 - cos*cos)
		if sin2T > 1 {
			return 1
		}
		cos = math.Sqrt(1 - sin2T)
	}

	r0 := (c.N1 - c.N2) / (c.N1 + c.N2)
	r0 *= r0
	return r0 + (1-r0)*math.Pow(1-cos, 5)
}
