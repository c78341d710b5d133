package material

import (
	"testing"

	"github.com/regexPattern/raytracer/pkg/core"
)

func TestStripe_AlternatesAlongX(t *testing.T) {
	p := NewStripe(core.White, core.Black)

	tests := []struct {
		point    core.Vec3
		expected core.Color
	}{
		{core.NewVec3(0, 0, 0), core.White},
		{core.NewVec3(0.9, 0, 0), core.White},
		{core.NewVec3(1, 0, 0), core.Black},
		{core.NewVec3(-0.1, 0, 0), core.Black},
		{core.NewVec3(-1, 0, 0), core.Black},
		{core.NewVec3(-1.1, 0, 0), core.White},
		// Constant in y and z.
		{core.NewVec3(0, 1, 0), core.White},
		{core.NewVec3(0, 0, 2), core.White},
	}

	for _, tt := range tests {
		if got := ColorAt(p, core.Identity(), tt.point); !got.ApproxEqual(tt.expected) {
			t.Errorf("Expected %v at %v, got %v", tt.expected, tt.point, got)
		}
	}
}

func TestGradient_InterpolatesAlongX(t *testing.T) {
	p := NewGradient(core.White, core.Black)

	tests := []struct {
		point    core.Vec3
		expected core.Color
	}{
		{core.NewVec3(0, 0, 0), core.White},
		{core.NewVec3(0.25, 0, 0), core.NewColor(0.75, 0.75, 0.75)},
		{core.NewVec3(0.5, 0, 0), core.NewColor(0.5, 0.5, 0.5)},
		{core.NewVec3(0.75, 0, 0), core.NewColor(0.25, 0.25, 0.25)},
	}

	for _, tt := range tests {
		if got := ColorAt(p, core.Identity(), tt.point); !got.ApproxEqual(tt.expected) {
			t.Errorf("Expected %v at %v, got %v", tt.expected, tt.point, got)
		}
	}
}

func TestRing_ExtendsInXAndZ(t *testing.T) {
	p := NewRing(core.White, core.Black)

	tests := []struct {
		point    core.Vec3
		expected core.Color
	}{
		{core.NewVec3(0, 0, 0), core.White},
		{core.NewVec3(1, 0, 0), core.Black},
		{core.NewVec3(0, 0, 1), core.Black},
		{core.NewVec3(0.708, 0, 0.708), core.Black},
	}

	for _, tt := range tests {
		if got := ColorAt(p, core.Identity(), tt.point); !got.ApproxEqual(tt.expected) {
			t.Errorf("Expected %v at %v, got %v", tt.expected, tt.point, got)
		}
	}
}

func TestChecker_RepeatsInAllDimensions(t *testing.T) {
	p := NewChecker(core.White, core.Black)

	tests := []struct {
		point    core.Vec3
		expected core.Color
	}{
		{core.NewVec3(0, 0, 0), core.White},
		{core.NewVec3(0.99, 0, 0), core.White},
		{core.NewVec3(1.01, 0, 0), core.Black},
		{core.NewVec3(0, 0.99, 0), core.White},
		{core.NewVec3(0, 1.01, 0), core.Black},
		{core.NewVec3(0, 0, 0.99), core.White},
		{core.NewVec3(0, 0, 1.01), core.Black},
	}

	for _, tt := range tests {
		if got := ColorAt(p, core.Identity(), tt.point); !got.ApproxEqual(tt.expected) {
			t.Errorf("Expected %v at %v, got %v", tt.expected, tt.point, got)
		}
	}
}

func TestColorAt_RespectsTransforms(t *testing.T) {
	t.Run("shape transform", func(t *testing.T) {
		p := NewStripe(core.White, core.Black)
		shapeInverse := core.Must(core.Scaling(2, 2, 2)).Inverse()

		if got := ColorAt(p, shapeInverse, core.NewVec3(1.5, 0, 0)); !got.ApproxEqual(core.White) {
			t.Errorf("Expected white, got %v", got)
		}
	})

	t.Run("pattern transform", func(t *testing.T) {
		p := NewStripe(core.White, core.Black)
		p.Transform = core.Must(core.Scaling(2, 2, 2))

		if got := ColorAt(p, core.Identity(), core.NewVec3(1.5, 0, 0)); !got.ApproxEqual(core.White) {
			t.Errorf("Expected white, got %v", got)
		}
	})

	t.Run("both transforms", func(t *testing.T) {
		p := NewStripe(core.White, core.Black)
		p.Transform = core.Translation(0.5, 0, 0)
		shapeInverse := core.Must(core.Scaling(2, 2, 2)).Inverse()

		if got := ColorAt(p, shapeInverse, core.NewVec3(2.5, 0, 0)); !got.ApproxEqual(core.White) {
			t.Errorf("Expected white, got %v", got)
		}
	})
}
