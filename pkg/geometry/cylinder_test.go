package geometry

import (
	"testing"

	"github.com/regexPattern/raytracer/pkg/core"
)

func TestCylinder_Intersect(t *testing.T) {
	cy := NewCylinder()

	tests := []struct {
		name      string
		origin    core.Vec3
		direction core.Vec3
		expected  []float64
	}{
		{"miss beside", core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0), nil},
		{"miss along axis", core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), nil},
		{"miss skewed", core.NewVec3(0, 0, -5), core.NewVec3(1, 1, 1), nil},
		{"tangent", core.NewVec3(1, 0, -5), core.NewVec3(0, 0, 1), []float64{5, 5}},
		{"through center", core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1), []float64{4, 6}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			xs := Intersect(cy, core.NewRay(tt.origin, tt.direction.Normalize()))
			assertDistances(t, xs, tt.expected)
		})
	}
}

func TestCylinder_Intersect_Oblique(t *testing.T) {
	cy := NewCylinder()

	ray := core.NewRay(core.NewVec3(0.5, 0, -5), core.NewVec3(0.1, 1, 1).Normalize())
	xs := Intersect(cy, ray)
	if len(xs) != 2 {
		t.Fatalf("Expected 2 intersections, got %d", len(xs))
	}
	if !core.Approx(xs[0].T, 6.80798) || !core.Approx(xs[1].T, 7.08872) {
		t.Errorf("Expected distances (6.80798, 7.08872), got (%v, %v)", xs[0].T, xs[1].T)
	}
}

func TestCylinder_Intersect_Truncated(t *testing.T) {
	cy := NewCylinder()
	cy.Min, cy.Max = 1, 2

	tests := []struct {
		name      string
		origin    core.Vec3
		direction core.Vec3
		count     int
	}{
		{"diagonal escape", core.NewVec3(0, 1.5, 0), core.NewVec3(0.1, 1, 0), 0},
		{"above", core.NewVec3(0, 3, -5), core.NewVec3(0, 0, 1), 0},
		{"below", core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1), 0},
		{"exactly at max", core.NewVec3(0, 2, -5), core.NewVec3(0, 0, 1), 0},
		{"exactly at min", core.NewVec3(0, 1, -5), core.NewVec3(0, 0, 1), 0},
		{"through middle", core.NewVec3(0, 1.5, -2), core.NewVec3(0, 0, 1), 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			xs := Intersect(cy, core.NewRay(tt.origin, tt.direction.Normalize()))
			if len(xs) != tt.count {
				t.Errorf("Expected %d intersections, got %d", tt.count, len(xs))
			}
		})
	}
}

func TestCylinder_Intersect_Capped(t *testing.T) {
	cy := NewClosedCylinder(1, 2)

	tests := []struct {
		name      string
		origin    core.Vec3
		direction core.Vec3
		count     int
	}{
		{"through both caps along axis", core.NewVec3(0, 3, 0), core.NewVec3(0, -1, 0), 2},
		{"cap and wall from above", core.NewVec3(0, 3, -2), core.NewVec3(0, -1, 2), 2},
		{"cap then corner exit", core.NewVec3(0, 4, -2), core.NewVec3(0, -1, 1), 2},
		{"cap and wall from below", core.NewVec3(0, 0, -2), core.NewVec3(0, 1, 2), 2},
		{"corner entry", core.NewVec3(0, -1, -2), core.NewVec3(0, 1, 1), 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			xs := Intersect(cy, core.NewRay(tt.origin, tt.direction.Normalize()))
			if len(xs) != tt.count {
				t.Errorf("Expected %d intersections, got %d", tt.count, len(xs))
			}
		})
	}
}

func TestCylinder_NormalAt(t *testing.T) {
	cy := NewCylinder()

	tests := []struct {
		point    core.Vec3
		expected core.Vec3
	}{
		{core.NewVec3(1, 0, 0), core.NewVec3(1, 0, 0)},
		{core.NewVec3(0, 5, -1), core.NewVec3(0, 0, -1)},
		{core.NewVec3(0, -2, 1), core.NewVec3(0, 0, 1)},
		{core.NewVec3(-1, 1, 0), core.NewVec3(-1, 0, 0)},
	}

	for _, tt := range tests {
		if got := NormalAt(cy, tt.point, Intersection{}); !got.ApproxEqual(tt.expected) {
			t.Errorf("Expected normal %v at %v, got %v", tt.expected, tt.point, got)
		}
	}
}

func TestCylinder_NormalAt_Caps(t *testing.T) {
	cy := NewClosedCylinder(1, 2)

	tests := []struct {
		point    core.Vec3
		expected core.Vec3
	}{
		{core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0)},
		{core.NewVec3(0.5, 1, 0), core.NewVec3(0, -1, 0)},
		{core.NewVec3(0, 1, 0.5), core.NewVec3(0, -1, 0)},
		{core.NewVec3(0, 2, 0), core.NewVec3(0, 1, 0)},
		{core.NewVec3(0.5, 2, 0), core.NewVec3(0, 1, 0)},
		{core.NewVec3(0, 2, 0.5), core.NewVec3(0, 1, 0)},
	}

	for _, tt := range tests {
		if got := NormalAt(cy, tt.point, Intersection{}); !got.ApproxEqual(tt.expected) {
			t.Errorf("Expected normal %v at %v, got %v", tt.expected, tt.point, got)
		}
	}
}
