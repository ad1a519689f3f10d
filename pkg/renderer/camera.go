// Package renderer turns a world into pixels: a pinhole camera maps pixels
// to rays, a canvas accumulates colors, and the render loop walks the image
// sequentially or across a worker pool.
package renderer

import (
	"fmt"
	"math"

	"github.com/styxx3542/ray-tracer/pkg/rtmath"
)

// Camera is a pinhole camera. The image plane sits one unit in front of the
// eye; FieldOfView is the angle subtended by the plane's larger dimension.
type Camera struct {
	HSize       int
	VSize       int
	FieldOfView float64

	transform rtmath.Matrix
	inverse   rtmath.Matrix

	halfWidth  float64
	halfHeight float64
	pixelSize  float64
}

// NewCamera builds a camera for an hsize by vsize image. The transform is
// the world-to-camera view transform, typically from rtmath.ViewTransform.
func NewCamera(hsize, vsize int, fieldOfView float64, transform rtmath.Matrix) (*Camera, error) {
	if hsize <= 0 || vsize <= 0 {
		return nil, fmt.Errorf("camera dimensions must be positive, got %dx%d", hsize, vsize)
	}
	inv, err := transform.Inverse()
	if err != nil {
		return nil, fmt.Errorf("camera transform: %w", err)
	}

	c := &Camera{
		HSize:       hsize,
		VSize:       vsize,
		FieldOfView: fieldOfView,
		transform:   transform,
		inverse:     inv,
	}

	halfView := math.Tan(fieldOfView / 2)
	aspect := float64(hsize) / float64(vsize)
	if aspect >= 1 {
		c.halfWidth = halfView
		c.halfHeight = halfView / aspect
	} else {
		c.halfWidth = halfView * aspect
		c.halfHeight = halfView
	}
	c.pixelSize = c.halfWidth * 2 / float64(hsize)
	return c, nil
}

// Transform returns the world-to-camera view transform.
func (c *Camera) Transform() rtmath.Matrix { return c.transform }

// PixelSize returns the world-space side length of one pixel on the image
// plane.
func (c *Camera) PixelSize() float64 { return c.pixelSize }

// RayForPixel returns the world-space ray through the center of pixel
// (px, py). Pixel (0, 0) is the top left corner of the image.
func (c *Camera) RayForPixel(px, py int) rtmath.Ray {
	xOffset := (float64(px) + 0.5) * c.pixelSize
	yOffset := (float64(py) + 0.5) * c.pixelSize

	worldX := c.halfWidth - xOffset
	worldY := c.halfHeight - yOffset

	pixel := c.inverse.MulPoint(rtmath.NewPoint(worldX, worldY, -1))
	origin := c.inverse.MulPoint(rtmath.NewPoint(0, 0, 0))
	direction := pixel.Subtract(origin).Normalize()
	return rtmath.NewRay(origin, direction)
}
