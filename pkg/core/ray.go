package core

// Ray represents a ray with an origin point and a direction vector, both
// expressed in whatever space the ray currently lives in
type Ray struct {
	Origin    Vec3
	Direction Vec3
}

// NewRay creates a new ray
func NewRay(origin, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}

// Transform returns the ray transformed by t. The origin transforms as a
// point and the direction as a vector, so translation moves the origin but
// leaves the direction untouched. The direction is deliberately not
// renormalized: the scale it picks up keeps t values meaningful across
// spaces.
func (r Ray) Transform(t Transform) Ray {
	return Ray{
		Origin:    t.ApplyPoint(r.Origin),
		Direction: t.ApplyVector(r.Direction),
	}
}
