package renderer

import (
	"image"
	"image/color"
	"math"

	"github.com/regexPattern/raytracer/pkg/core"
)

// Canvas is a grid of unclamped float colors. Shading writes raw values;
// clamping and quantization happen only on export.
type Canvas struct {
	width  int
	height int
	pixels []core.Color
}

// NewCanvas creates a canvas of the given size with every pixel black
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		width:  width,
		height: height,
		pixels: make([]core.Color, width*height),
	}
}

// Width returns the canvas width in pixels
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the canvas height in pixels
func (c *Canvas) Height() int {
	return c.height
}

// WritePixel sets the color of pixel (x, y). Out-of-bounds writes are
// ignored.
func (c *Canvas) WritePixel(x, y int, col core.Color) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	c.pixels[y*c.width+x] = col
}

// PixelAt returns the color of pixel (x, y)
func (c *Canvas) PixelAt(x, y int) core.Color {
	return c.pixels[y*c.width+x]
}

// ToImage converts the canvas to an 8-bit RGBA image, clamping each channel
// to [0, 1] before quantization.
func (c *Canvas) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.width, c.height))
	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			p := c.PixelAt(x, y)
			img.Set(x, y, color.RGBA{
				R: quantize(p.R),
				G: quantize(p.G),
				B: quantize(p.B),
				A: 255,
			})
		}
	}
	return img
}

func quantize(channel float64) uint8 {
	clamped := math.Max(0, math.Min(1, channel))
	return uint8(math.Round(clamped * 255))
}
