package geometry

import (
	"errors"
	"math"

	"github.com/regexPattern/raytracer/pkg/core"
)

// ErrDegenerateTriangle is returned when a triangle's vertices are collinear
// or coincident. Degenerate triangles are rejected at construction so the
// intersection engine never sees one.
var ErrDegenerateTriangle = errors.New("triangle vertices are collinear")

// Triangle is a flat triangle defined by three object-space vertices. Edge
// vectors and the face normal are precomputed at construction.
type Triangle struct {
	base
	V0, V1, V2 core.Vec3
	e0, e1     core.Vec3
	normal     core.Vec3
}

// NewTriangle creates a triangle from three vertices. Returns
// ErrDegenerateTriangle when the vertices do not span a plane.
func NewTriangle(v0, v1, v2 core.Vec3) (*Triangle, error) {
	e0 := v1.Subtract(v0)
	e1 := v2.Subtract(v0)

	cross := e1.Cross(e0)
	if cross.Length() < core.Epsilon {
		return nil, ErrDegenerateTriangle
	}

	return &Triangle{
		base:   newBase(),
		V0:     v0,
		V1:     v1,
		V2:     v2,
		e0:     e0,
		e1:     e1,
		normal: cross.Normalize(),
	}, nil
}

// mollerTrumbore runs the edge-vector ray/triangle test, returning the
// distance and barycentric coordinates of the hit
func mollerTrumbore(v0, e0, e1 core.Vec3, ray core.Ray) (t, u, v float64, ok bool) {
	dirCrossE1 := ray.Direction.Cross(e1)
	det := e0.Dot(dirCrossE1)

	// Near-zero determinant: the ray lies in the triangle's plane.
	if math.Abs(det) < core.Epsilon {
		return 0, 0, 0, false
	}

	f := 1 / det
	v0ToOrigin := ray.Origin.Subtract(v0)
	u = f * v0ToOrigin.Dot(dirCrossE1)
	if u < 0 || u > 1 {
		return 0, 0, 0, false
	}

	originCrossE0 := v0ToOrigin.Cross(e0)
	v = f * ray.Direction.Dot(originCrossE0)
	if v < 0 || u+v > 1 {
		return 0, 0, 0, false
	}

	t = f * e1.Dot(originCrossE0)
	return t, u, v, true
}

func (tr *Triangle) localIntersect(ray core.Ray) []Intersection {
	t, _, _, ok := mollerTrumbore(tr.V0, tr.e0, tr.e1, ray)
	if !ok {
		return nil
	}
	return []Intersection{{T: t, Object: tr}}
}

func (tr *Triangle) localNormalAt(core.Vec3, Intersection) core.Vec3 {
	return tr.normal
}

func (tr *Triangle) localBounds() core.AABB {
	return core.NewAABBFromPoints(tr.V0, tr.V1, tr.V2)
}

// SmoothTriangle is a triangle with per-vertex normals, interpolated across
// the face with the barycentric coordinates stored on its intersections.
type SmoothTriangle struct {
	Triangle
	N0, N1, N2 core.Vec3
}

// NewSmoothTriangle creates a smooth triangle from three vertices and their
// normals. Returns ErrDegenerateTriangle for collinear vertices.
func NewSmoothTriangle(v0, v1, v2, n0, n1, n2 core.Vec3) (*SmoothTriangle, error) {
	tr, err := NewTriangle(v0, v1, v2)
	if err != nil {
		return nil, err
	}
	return &SmoothTriangle{Triangle: *tr, N0: n0, N1: n1, N2: n2}, nil
}

func (st *SmoothTriangle) localIntersect(ray core.Ray) []Intersection {
	t, u, v, ok := mollerTrumbore(st.V0, st.e0, st.e1, ray)
	if !ok {
		return nil
	}
	return []Intersection{{T: t, Object: st, U: u, V: v, HasUV: true}}
}

func (st *SmoothTriangle) localNormalAt(_ core.Vec3, hit Intersection) core.Vec3 {
	// n = n1*u + n2*v + n0*(1-u-v)
	return st.N1.Multiply(hit.U).
		Add(st.N2.Multiply(hit.V)).
		Add(st.N0.Multiply(1 - hit.U - hit.V))
}
