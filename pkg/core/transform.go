package core

import (
	"errors"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// ErrSingularTransform is returned when a transform matrix cannot be
// inverted. Every intersection depends on the inverse, so this is rejected
// when the transform is built, never during rendering.
var ErrSingularTransform = errors.New("transform matrix is not invertible")

// ErrParallelUpVector is returned by ViewTransform when the up vector is
// collinear with the viewing direction.
var ErrParallelUpVector = errors.New("up vector is parallel to the viewing direction")

// Transform is an affine transform paired with its cached inverse. The two
// matrices are only ever set together, so the inverse can never go stale.
type Transform struct {
	mat mgl64.Mat4
	inv mgl64.Mat4
}

// Identity returns the identity transform
func Identity() Transform {
	return Transform{mat: mgl64.Ident4(), inv: mgl64.Ident4()}
}

// NewTransform builds a Transform from a 4x4 matrix, computing and caching
// its inverse. Returns ErrSingularTransform if the matrix is not invertible.
func NewTransform(mat mgl64.Mat4) (Transform, error) {
	if Approx(mat.Det(), 0) {
		return Transform{}, ErrSingularTransform
	}
	return Transform{mat: mat, inv: mat.Inv()}, nil
}

// Must panics if err is non-nil and returns the transform otherwise. It is
// intended for transform literals in scene construction and tests, in the
// manner of template.Must.
func Must(t Transform, err error) Transform {
	if err != nil {
		panic(err)
	}
	return t
}

// Translation returns a translation transform
func Translation(x, y, z float64) Transform {
	mat := mgl64.Translate3D(x, y, z)
	return Transform{mat: mat, inv: mgl64.Translate3D(-x, -y, -z)}
}

// Scaling returns a scaling transform. A zero scale factor yields
// ErrSingularTransform.
func Scaling(x, y, z float64) (Transform, error) {
	return NewTransform(mgl64.Scale3D(x, y, z))
}

// RotationX returns a rotation about the x axis by the given angle in radians
func RotationX(radians float64) Transform {
	mat := mgl64.HomogRotate3DX(radians)
	return Transform{mat: mat, inv: mat.Transpose()}
}

// RotationY returns a rotation about the y axis by the given angle in radians
func RotationY(radians float64) Transform {
	mat := mgl64.HomogRotate3DY(radians)
	return Transform{mat: mat, inv: mat.Transpose()}
}

// RotationZ returns a rotation about the z axis by the given angle in radians
func RotationZ(radians float64) Transform {
	mat := mgl64.HomogRotate3DZ(radians)
	return Transform{mat: mat, inv: mat.Transpose()}
}

// Shearing returns a shear transform where each parameter is the amount a
// coordinate moves in proportion to another, e.g. xy shears x in proportion
// to y.
func Shearing(xy, xz, yx, yz, zx, zy float64) Transform {
	// mgl64.Mat4 is column-major.
	mat := mgl64.Mat4{
		1, yx, zx, 0,
		xy, 1, zy, 0,
		xz, yz, 1, 0,
		0, 0, 0, 1,
	}
	return Transform{mat: mat, inv: mat.Inv()}
}

// ViewTransform builds the world-to-camera transform for an eye at from,
// looking at to, with the given up hint. Returns ErrParallelUpVector when up
// and the gaze direction are collinear, since no camera basis exists then.
func ViewTransform(from, to, up Vec3) (Transform, error) {
	forward := to.Subtract(from).Normalize()
	if forward.Cross(up.Normalize()).Length() < Epsilon {
		return Transform{}, ErrParallelUpVector
	}

	mat := mgl64.LookAtV(
		mgl64.Vec3{from.X, from.Y, from.Z},
		mgl64.Vec3{to.X, to.Y, to.Z},
		mgl64.Vec3{up.X, up.Y, up.Z},
	)
	return Transform{mat: mat, inv: mat.Inv()}, nil
}

// Mul composes two transforms. The result applies other first, then t.
func (t Transform) Mul(other Transform) Transform {
	return Transform{
		mat: t.mat.Mul4(other.mat),
		inv: other.inv.Mul4(t.inv),
	}
}

// Inverse returns the inverse transform. This is a swap of the cached
// matrices, not a recomputation.
func (t Transform) Inverse() Transform {
	return Transform{mat: t.inv, inv: t.mat}
}

// ApplyPoint transforms a point (homogeneous w=1), so translation applies
func (t Transform) ApplyPoint(p Vec3) Vec3 {
	out := t.mat.Mul4x1(mgl64.Vec4{p.X, p.Y, p.Z, 1})
	return Vec3{out[0], out[1], out[2]}
}

// ApplyVector transforms a direction (homogeneous w=0), ignoring translation
func (t Transform) ApplyVector(v Vec3) Vec3 {
	out := t.mat.Mul4x1(mgl64.Vec4{v.X, v.Y, v.Z, 0})
	return Vec3{out[0], out[1], out[2]}
}

// NormalToWorld converts an object-space normal to world space using the
// inverse-transpose, dropping the homogeneous component and renormalizing.
// This keeps normals perpendicular under non-uniform scaling.
func (t Transform) NormalToWorld(normal Vec3) Vec3 {
	out := t.inv.Transpose().Mul4x1(mgl64.Vec4{normal.X, normal.Y, normal.Z, 0})
	return Vec3{out[0], out[1], out[2]}.Normalize()
}

// ApproxEqual reports whether two transforms have the same matrix within
// Epsilon
func (t Transform) ApproxEqual(other Transform) bool {
	for i := range t.mat {
		if math.Abs(t.mat[i]-other.mat[i]) >= Epsilon {
			return false
		}
	}
	return true
}
