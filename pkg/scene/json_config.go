package scene

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/LucasKurosei/ray-tracing/pkg/core"
	"github.com/LucasKurosei/ray-tracing/pkg/geometry"
	"github.com/LucasKurosei/ray-tracing/pkg/material"
	"github.com/LucasKurosei/ray-tracing/pkg/renderer"
)

// SceneCfg is the JSON form of a scene file
type SceneCfg struct {
	Name        string      `json:"name"`
	Description string      `json:"description,omitempty"`
	Camera      CameraCfg   `json:"camera"`
	Sampling    SamplingCfg `json:"sampling"`
	Spheres     []SphereCfg `json:"spheres"`
}

// SamplingCfg is the JSON form of the sampling options. Missing fields take
// the defaults; maxDepth and seed are pointers so an explicit 0 is kept.
type SamplingCfg struct {
	Width           int    `json:"width,omitempty"`
	Height          int    `json:"height,omitempty"`
	SamplesPerPixel int    `json:"samplesPerPixel,omitempty"`
	MaxDepth        *int   `json:"maxDepth,omitempty"`
	Background      string `json:"background,omitempty"`
	TileSize        int    `json:"tileSize,omitempty"`
	Seed            *int64 `json:"seed,omitempty"`
}

// Build fills the missing fields from the defaults
func (c SamplingCfg) Build() renderer.SamplingConfig {
	config := renderer.MergeSamplingConfig(renderer.DefaultSamplingConfig(), renderer.SamplingConfig{
		Width:           c.Width,
		Height:          c.Height,
		SamplesPerPixel: c.SamplesPerPixel,
		Background:      c.Background,
		TileSize:        c.TileSize,
	})
	if c.MaxDepth != nil {
		config.MaxDepth = *c.MaxDepth
	}
	if c.Seed != nil {
		config.Seed = *c.Seed
	}
	return config
}

// CameraCfg places the camera. Zero lengths fall back to the defaults.
type CameraCfg struct {
	Origin         core.Point `json:"origin"`
	FocalLength    float64    `json:"focalLength,omitempty"`
	ViewportHeight float64    `json:"viewportHeight,omitempty"`
}

// SphereCfg describes one sphere; rule is "diffuse" (default) or "specular"
type SphereCfg struct {
	Center core.Point           `json:"center"`
	Radius float64              `json:"radius"`
	Color  core.Color           `json:"color"`
	Rule   material.ScatterRule `json:"rule"`
}

// Build validates and constructs the runtime sphere (no defaults).
func (c SphereCfg) Build() (geometry.Sphere, error) {
	sphere := geometry.NewSphere(c.Center, c.Radius, material.Texture{BaseColor: c.Color, Rule: c.Rule})
	if err := sphere.Validate(); err != nil {
		return geometry.Sphere{}, err
	}
	return sphere, nil
}

// Build fills defaults and validates the camera
func (c CameraCfg) Build() (renderer.CameraConfig, error) {
	config := renderer.DefaultCameraConfig()
	config.Origin = c.Origin
	if c.FocalLength != 0 {
		config.FocalLength = c.FocalLength
	}
	if c.ViewportHeight != 0 {
		config.ViewportHeight = c.ViewportHeight
	}
	if config.FocalLength < 0 || config.ViewportHeight < 0 {
		return renderer.CameraConfig{}, fmt.Errorf("camera lengths must be positive, got focal length %g and viewport height %g",
			config.FocalLength, config.ViewportHeight)
	}
	return config, nil
}

// Build turns the file contents into a validated scene
func (c SceneCfg) Build() (*Scene, error) {
	if len(c.Spheres) == 0 {
		return nil, fmt.Errorf("scene %q has no spheres", c.Name)
	}

	s := NewScene(c.Name)
	s.Description = c.Description
	s.SamplingConfig = c.Sampling.Build()

	camera, err := c.Camera.Build()
	if err != nil {
		return nil, fmt.Errorf("scene %q: %w", c.Name, err)
	}
	s.CameraConfig = camera

	for i, sc := range c.Spheres {
		sphere, err := sc.Build()
		if err != nil {
			return nil, fmt.Errorf("scene %q: sphere %d: %w", c.Name, i, err)
		}
		s.Spheres = append(s.Spheres, sphere)
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// ParseScene decodes and builds a scene from JSON
func ParseScene(data []byte) (*Scene, error) {
	var cfg SceneCfg
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse scene: %w", err)
	}
	return cfg.Build()
}

// LoadScene reads a scene file. A file without a name is named after the file.
func LoadScene(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg SceneCfg
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse scene %s: %w", path, err)
	}
	if cfg.Name == "" {
		cfg.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return cfg.Build()
}
