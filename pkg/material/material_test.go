package material

import (
	"math"
	"testing"

	"github.com/regexPattern/raytracer/pkg/core"
	"github.com/regexPattern/raytracer/pkg/lights"
)

func TestMaterial_Default(t *testing.T) {
	m := Default()

	if !core.Approx(m.Ambient, 0.1) || !core.Approx(m.Diffuse, 0.9) ||
		!core.Approx(m.Specular, 0.9) || !core.Approx(m.Shininess, 200) {
		t.Errorf("Unexpected default Phong parameters: %+v", m)
	}
	if m.Reflectivity != 0 || m.Transparency != 0 || !core.Approx(m.RefractiveIndex, 1) {
		t.Errorf("Expected opaque non-reflective defaults, got %+v", m)
	}
	if got := ColorAt(m.Texture, core.Identity(), core.NewVec3(0, 0, 0)); !got.ApproxEqual(core.White) {
		t.Errorf("Expected white default texture, got %v", got)
	}
}

func TestMaterial_Lighting(t *testing.T) {
	m := Default()
	point := core.NewVec3(0, 0, 0)
	normal := core.NewVec3(0, 0, -1)
	sqrt2over2 := math.Sqrt(2) / 2

	tests := []struct {
		name     string
		eye      core.Vec3
		lightPos core.Vec3
		expected core.Color
	}{
		{
			name:     "eye between light and surface",
			eye:      core.NewVec3(0, 0, -1),
			lightPos: core.NewVec3(0, 0, -10),
			expected: core.NewColor(1.9, 1.9, 1.9),
		},
		{
			name:     "eye offset 45 degrees",
			eye:      core.NewVec3(0, sqrt2over2, -sqrt2over2),
			lightPos: core.NewVec3(0, 0, -10),
			expected: core.NewColor(1.0, 1.0, 1.0),
		},
		{
			name:     "light offset 45 degrees",
			eye:      core.NewVec3(0, 0, -1),
			lightPos: core.NewVec3(0, 10, -10),
			expected: core.NewColor(0.7364, 0.7364, 0.7364),
		},
		{
			name:     "eye in the reflection path",
			eye:      core.NewVec3(0, -sqrt2over2, -sqrt2over2),
			lightPos: core.NewVec3(0, 10, -10),
			expected: core.NewColor(1.6364, 1.6364, 1.6364),
		},
		{
			name:     "light behind the surface",
			eye:      core.NewVec3(0, 0, -1),
			lightPos: core.NewVec3(0, 0, 10),
			expected: core.NewColor(0.1, 0.1, 0.1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			light := lights.NewPointLight(tt.lightPos, core.White)
			got := m.Lighting(core.Identity(), light, point, tt.eye, normal, 1)
			if !got.ApproxEqual(tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestMaterial_Lighting_SurfacePoint(t *testing.T) {
	// Shading a point off the origin: the diffuse term follows the true
	// incidence angle, ambient 0.1 + diffuse 0.9*(9/sqrt(281)). The glancing
	// specular highlight decays to zero at shininess 200.
	m := Default()
	light := lights.NewPointLight(core.NewVec3(-10, 10, -10), core.White)

	got := m.Lighting(
		core.Identity(),
		light,
		core.NewVec3(0, 0, -1),
		core.NewVec3(0, 0, -1),
		core.NewVec3(0, 0, -1),
		1,
	)
	if !got.ApproxEqual(core.NewColor(0.58321, 0.58321, 0.58321)) {
		t.Errorf("Expected (0.58321, 0.58321, 0.58321), got %v", got)
	}
}

func TestMaterial_Lighting_Shadowed(t *testing.T) {
	m := Default()
	light := lights.NewPointLight(core.NewVec3(0, 0, -10), core.White)

	// Zero intensity leaves only the ambient term.
	got := m.Lighting(
		core.Identity(),
		light,
		core.NewVec3(0, 0, 0),
		core.NewVec3(0, 0, -1),
		core.NewVec3(0, 0, -1),
		0,
	)
	if !got.ApproxEqual(core.NewColor(0.1, 0.1, 0.1)) {
		t.Errorf("Expected ambient-only (0.1, 0.1, 0.1), got %v", got)
	}
}

func TestMaterial_Lighting_PartialIntensity(t *testing.T) {
	m := Default()
	m.Ambient = 0.1
	m.Diffuse = 0.9
	m.Specular = 0
	light := lights.NewPointLight(core.NewVec3(0, 0, -10), core.White)

	point := core.NewVec3(0, 0, -1)
	eye := core.NewVec3(0, 0, -1)
	normal := core.NewVec3(0, 0, -1)

	tests := []struct {
		intensity float64
		expected  core.Color
	}{
		{1.0, core.NewColor(1, 1, 1)},
		{0.5, core.NewColor(0.55, 0.55, 0.55)},
		{0.0, core.NewColor(0.1, 0.1, 0.1)},
	}

	for _, tt := range tests {
		got := m.Lighting(core.Identity(), light, point, eye, normal, tt.intensity)
		if !got.ApproxEqual(tt.expected) {
			t.Errorf("Intensity %v: expected %v, got %v", tt.intensity, tt.expected, got)
		}
	}
}

func TestMaterial_Lighting_StripeTexture(t *testing.T) {
	m := Default()
	m.Texture = NewStripe(core.White, core.Black)
	m.Ambient = 1
	m.Diffuse = 0
	m.Specular = 0
	light := lights.NewPointLight(core.NewVec3(0, 0, -10), core.White)

	eye := core.NewVec3(0, 0, -1)
	normal := core.NewVec3(0, 0, -1)

	c1 := m.Lighting(core.Identity(), light, core.NewVec3(0.9, 0, 0), eye, normal, 1)
	c2 := m.Lighting(core.Identity(), light, core.NewVec3(1.1, 0, 0), eye, normal, 1)

	if !c1.ApproxEqual(core.White) {
		t.Errorf("Expected white inside first stripe, got %v", c1)
	}
	if !c2.ApproxEqual(core.Black) {
		t.Errorf("Expected black inside second stripe, got %v", c2)
	}
}
