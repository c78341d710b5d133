package renderer

import (
	"errors"
	"fmt"
	"math"

	"github.com/regexPattern/raytracer/pkg/core"
)

// ErrInvalidDimensions is returned when a camera is built with a
// non-positive pixel width or height.
var ErrInvalidDimensions = errors.New("camera dimensions must be positive")

// ErrInvalidFieldOfView is returned when a camera's field of view is not
// positive or is a multiple of pi, which would make the pixel grid
// degenerate or mirrored.
var ErrInvalidFieldOfView = errors.New("field of view must be positive and not a multiple of pi")

// Camera maps pixel coordinates to primary rays. The canvas is modeled as a
// unit-distance plane at z = -1 in camera space; pixel size and half
// extents are derived once from the field of view and aspect ratio.
type Camera struct {
	width      int
	height     int
	fov        float64
	transform  core.Transform
	pixelSize  float64
	halfWidth  float64
	halfHeight float64
}

// NewCamera creates a camera rendering width x height pixels with the given
// vertical-or-horizontal field of view in radians (the field of view spans
// the larger canvas dimension). The transform positions the camera in the
// world; use core.ViewTransform to build it.
func NewCamera(width, height int, fov float64, transform core.Transform) (*Camera, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if fov <= 0 || core.Approx(math.Mod(fov, math.Pi), 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFieldOfView, fov)
	}

	halfView := math.Tan(fov / 2)
	aspect := float64(width) / float64(height)

	c := &Camera{
		width:     width,
		height:    height,
		fov:       fov,
		transform: transform,
	}
	if aspect >= 1 {
		c.halfWidth = halfView
		c.halfHeight = halfView / aspect
	} else {
		c.halfWidth = halfView * aspect
		c.halfHeight = halfView
	}
	c.pixelSize = c.halfWidth * 2 / float64(width)

	return c, nil
}

// Width returns the canvas width in pixels
func (c *Camera) Width() int {
	return c.width
}

// Height returns the canvas height in pixels
func (c *Camera) Height() int {
	return c.height
}

// RayForPixel returns the world-space ray through the center of pixel
// (x, y). Pixel (0, 0) is the canvas's top-left corner.
func (c *Camera) RayForPixel(x, y int) core.Ray {
	// Offset from the canvas edge to the pixel center.
	xOffset := (float64(x) + 0.5) * c.pixelSize
	yOffset := (float64(y) + 0.5) * c.pixelSize

	// Untransformed canvas coordinates: +x is left of the camera because
	// the camera looks down -z.
	worldX := c.halfWidth - xOffset
	worldY := c.halfHeight - yOffset

	inv := c.transform.Inverse()
	pixel := inv.ApplyPoint(core.Vec3{X: worldX, Y: worldY, Z: -1})
	origin := inv.ApplyPoint(core.Vec3{})
	direction := pixel.Subtract(origin).Normalize()

	return core.Ray{Origin: origin, Direction: direction}
}
