package renderer

import (
	"fmt"
	"math"

	"github.com/LucasKurosei/ray-tracing/pkg/core"
)

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	Width           int    `json:"width,omitempty"`           // Image width in pixels
	Height          int    `json:"height,omitempty"`          // Image height in pixels
	SamplesPerPixel int    `json:"samplesPerPixel,omitempty"` // S×S antialiasing grid, must be a perfect square
	MaxDepth        int    `json:"maxDepth,omitempty"`        // Diffuse branching budget per primary ray
	Background      string `json:"background,omitempty"`      // "horizon" or "gradient"
	TileSize        int    `json:"tileSize,omitempty"`        // Rows per work item
	Seed            int64  `json:"seed,omitempty"`            // Base seed for per-tile random generators
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		Width:           256,
		Height:          256,
		SamplesPerPixel: 16,
		MaxDepth:        4,
		Background:      "horizon",
		TileSize:        8,
		Seed:            42,
	}
}

// MergeSamplingConfig fills zero fields of override from base
func MergeSamplingConfig(base, override SamplingConfig) SamplingConfig {
	result := base
	if override.Width != 0 {
		result.Width = override.Width
	}
	if override.Height != 0 {
		result.Height = override.Height
	}
	if override.SamplesPerPixel != 0 {
		result.SamplesPerPixel = override.SamplesPerPixel
	}
	if override.MaxDepth != 0 {
		result.MaxDepth = override.MaxDepth
	}
	if override.Background != "" {
		result.Background = override.Background
	}
	if override.TileSize != 0 {
		result.TileSize = override.TileSize
	}
	if override.Seed != 0 {
		result.Seed = override.Seed
	}
	return result
}

// Validate checks that the configuration describes a renderable image
func (c SamplingConfig) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("image size must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.SamplesPerPixel <= 0 {
		return fmt.Errorf("samples per pixel must be positive, got %d", c.SamplesPerPixel)
	}
	if s := SamplesPerAxis(c.SamplesPerPixel); s*s != c.SamplesPerPixel {
		return fmt.Errorf("samples per pixel must be a perfect square, got %d", c.SamplesPerPixel)
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("max depth must not be negative, got %d", c.MaxDepth)
	}
	if c.TileSize <= 0 {
		return fmt.Errorf("tile size must be positive, got %d", c.TileSize)
	}
	return nil
}

// SamplesPerAxis returns S for an S×S sample grid (rounded down for non-squares)
func SamplesPerAxis(samplesPerPixel int) int {
	s := int(math.Sqrt(float64(samplesPerPixel)))
	for (s+1)*(s+1) <= samplesPerPixel {
		s++
	}
	for s*s > samplesPerPixel {
		s--
	}
	return s
}

// CameraConfig places the pinhole and the viewport
type CameraConfig struct {
	Origin         core.Point // Camera position
	FocalLength    float64    // Distance from origin to the viewport along +Z
	ViewportHeight float64    // Viewport height in world units; width follows the image aspect
}

// DefaultCameraConfig returns the camera at the origin looking down +Z
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		Origin:         core.NewVec3(0, 0, 0),
		FocalLength:    1.0,
		ViewportHeight: 2.0,
	}
}
