package material

import (
	"math"

	"github.com/regexPattern/raytracer/pkg/core"
)

// Texture resolves a surface color at a point in pattern space. It is a
// closed set: a solid color or one of the procedural patterns below. Each
// pattern carries its own transform mapping pattern space to object space,
// independent of the owning shape's transform.
type Texture interface {
	// colorAt evaluates the texture at a pattern-space point
	colorAt(point core.Vec3) core.Color

	// transform returns the pattern's own transform
	transform() core.Transform
}

// ColorAt evaluates a texture at a world-space point on a shape. The point
// is mapped world -> object with the shape's inverse transform, then
// object -> pattern with the texture's own inverse.
func ColorAt(tex Texture, shapeInverse core.Transform, worldPoint core.Vec3) core.Color {
	objectPoint := shapeInverse.ApplyPoint(worldPoint)
	patternPoint := tex.transform().Inverse().ApplyPoint(objectPoint)
	return tex.colorAt(patternPoint)
}

// Solid is a texture with a single color everywhere
type Solid struct {
	Color core.Color
}

// NewSolid creates a solid color texture
func NewSolid(c core.Color) Solid {
	return Solid{Color: c}
}

func (s Solid) colorAt(core.Vec3) core.Color { return s.Color }
func (s Solid) transform() core.Transform    { return core.Identity() }

// Stripe alternates two colors in unit-wide bands along the x axis
type Stripe struct {
	A, B      core.Color
	Transform core.Transform
}

// NewStripe creates a stripe pattern with an identity transform
func NewStripe(a, b core.Color) Stripe {
	return Stripe{A: a, B: b, Transform: core.Identity()}
}

func (p Stripe) colorAt(point core.Vec3) core.Color {
	if math.Mod(math.Floor(point.X), 2) == 0 {
		return p.A
	}
	return p.B
}

func (p Stripe) transform() core.Transform { return p.Transform }

// Gradient blends linearly from A to B over each unit of x
type Gradient struct {
	A, B      core.Color
	Transform core.Transform
}

// NewGradient creates a gradient pattern with an identity transform
func NewGradient(a, b core.Color) Gradient {
	return Gradient{A: a, B: b, Transform: core.Identity()}
}

func (p Gradient) colorAt(point core.Vec3) core.Color {
	fraction := point.X - math.Floor(point.X)
	return p.A.Add(p.B.Subtract(p.A).Scale(fraction))
}

func (p Gradient) transform() core.Transform { return p.Transform }

// Ring alternates two colors in concentric rings on the x/z plane
type Ring struct {
	A, B      core.Color
	Transform core.Transform
}

// NewRing creates a ring pattern with an identity transform
func NewRing(a, b core.Color) Ring {
	return Ring{A: a, B: b, Transform: core.Identity()}
}

func (p Ring) colorAt(point core.Vec3) core.Color {
	if math.Mod(math.Floor(math.Hypot(point.X, point.Z)), 2) == 0 {
		return p.A
	}
	return p.B
}

func (p Ring) transform() core.Transform { return p.Transform }

// Checker alternates two colors in a 3D checkerboard of unit cubes
type Checker struct {
	A, B      core.Color
	Transform core.Transform
}

// NewChecker creates a checker pattern with an identity transform
func NewChecker(a, b core.Color) Checker {
	return Checker{A: a, B: b, Transform: core.Identity()}
}

func (p Checker) colorAt(point core.Vec3) core.Color {
	sum := math.Floor(point.X) + math.Floor(point.Y) + math.Floor(point.Z)
	if math.Mod(sum, 2) == 0 {
		return p.A
	}
	return p.B
}

func (p Checker) transform() core.Transform { return p.Transform }
