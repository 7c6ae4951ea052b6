package renderer

import (
	"fmt"

	"github.com/LucasKurosei/ray-tracing/pkg/core"
)

// Camera generates primary rays for pixel sub-samples
type Camera struct {
	origin         core.Point
	pixel00        core.Point // top-left corner of the viewport
	du             core.Vec3  // one pixel to the right
	dv             core.Vec3  // one pixel down
	samplesPerAxis int
}

// NewCamera creates a camera for a width×height image sampled on an S×S grid
func NewCamera(config CameraConfig, width, height, samplesPerPixel int) (*Camera, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("image size must be positive, got %dx%d", width, height)
	}
	if config.FocalLength <= 0 || config.ViewportHeight <= 0 {
		return nil, fmt.Errorf("focal length and viewport height must be positive, got %g and %g",
			config.FocalLength, config.ViewportHeight)
	}
	s := SamplesPerAxis(samplesPerPixel)
	if s < 1 || s*s != samplesPerPixel {
		return nil, fmt.Errorf("samples per pixel must be a positive perfect square, got %d", samplesPerPixel)
	}

	viewportHeight := config.ViewportHeight
	viewportWidth := viewportHeight * float64(width) / float64(height)

	horizontal := core.NewVec3(viewportWidth, 0, 0)
	vertical := core.NewVec3(0, -viewportHeight, 0)
	pixel00 := config.Origin.
		Add(core.NewVec3(0, 0, config.FocalLength)).
		Add(core.NewVec3(-viewportWidth*0.5, viewportHeight*0.5, 0))

	return &Camera{
		origin:         config.Origin,
		pixel00:        pixel00,
		du:             horizontal.Divide(float64(width)),
		dv:             vertical.Divide(float64(height)),
		samplesPerAxis: s,
	}, nil
}

// SamplesPerAxis returns S of the S×S grid
func (c *Camera) SamplesPerAxis() int {
	return c.samplesPerAxis
}

// SamplesPerPixel returns S²
func (c *Camera) SamplesPerPixel() int {
	return c.samplesPerAxis * c.samplesPerAxis
}

// GetRay returns the primary ray for sub-sample (k, l) of pixel (row, col).
// k steps across the pixel, l steps down it; sub-samples sit at cell centers.
// The ray starts neutral with a scatter potential of S².
func (c *Camera) GetRay(row, col, k, l int) (core.Ray, error) {
	s := float64(c.samplesPerAxis)
	target := c.pixel00.
		Add(c.du.Multiply(float64(col) + (float64(k)+0.5)/s)).
		Add(c.dv.Multiply(float64(row) + (float64(l)+0.5)/s))

	direction := target.Subtract(c.origin)
	if direction.IsZero() {
		return core.Ray{}, fmt.Errorf("pixel (%d, %d) sample (%d, %d): %w", row, col, k, l, core.ErrDegenerateDirection)
	}

	return core.NewRay(c.origin, direction, core.White(), c.SamplesPerPixel()), nil
}
