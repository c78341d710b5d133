// Package material implements the Phong surface model and the procedural
// textures a surface color can be sampled from.
package material

import (
	"math"

	"github.com/regexPattern/raytracer/pkg/core"
	"github.com/regexPattern/raytracer/pkg/lights"
)

// Material holds the Phong shading parameters of a surface plus its texture
type Material struct {
	Ambient         float64
	Diffuse         float64
	Specular        float64
	Shininess       float64
	Reflectivity    float64
	Transparency    float64
	RefractiveIndex float64
	Texture         Texture
}

// Default returns the standard material: white, ambient 0.1, diffuse 0.9,
// specular 0.9, shininess 200, opaque and non-reflective, refractive index
// of air.
func Default() Material {
	return Material{
		Ambient:         0.1,
		Diffuse:         0.9,
		Specular:        0.9,
		Shininess:       200,
		Reflectivity:    0,
		Transparency:    0,
		RefractiveIndex: 1,
		Texture:         NewSolid(core.White),
	}
}

// Lighting computes the local Phong illumination at a point for one light.
// intensity is the light visibility fraction in [0, 1] (0 for a fully
// shadowed point). Diffuse and specular terms are averaged over the light's
// sample positions so area lights shade smoothly; the ambient term is
// unconditional.
func (m Material) Lighting(shapeInverse core.Transform, light lights.Light, point, eye, normal core.Vec3, intensity float64) core.Color {
	color := ColorAt(m.Texture, shapeInverse, point)
	effective := color.Multiply(light.Intensity())

	ambient := effective.Scale(m.Ambient)
	if intensity == 0 {
		return ambient
	}

	samples := light.Samples()
	sum := core.Black

	for _, samplePos := range samples {
		lightv := samplePos.Subtract(point).Normalize()

		lightDotNormal := lightv.Dot(normal)
		if lightDotNormal < 0 {
			// Surface faces away from this sample.
			continue
		}

		diffuse := effective.Scale(m.Diffuse * lightDotNormal)
		sum = sum.Add(diffuse)

		reflectDotEye := lightv.Negate().Reflect(normal).Dot(eye)
		if reflectDotEye > 0 {
			factor := math.Pow(reflectDotEye, m.Shininess)
			specular := light.Intensity().Scale(m.Specular * factor)
			sum = sum.Add(specular)
		}
	}

	avg := sum.Scale(1 / float64(len(samples)))
	return ambient.Add(avg.Scale(intensity))
}
