package scene

import (
	"fmt"

	"github.com/LucasKurosei/ray-tracing/pkg/core"
	"github.com/LucasKurosei/ray-tracing/pkg/geometry"
	"github.com/LucasKurosei/ray-tracing/pkg/material"
	"github.com/LucasKurosei/ray-tracing/pkg/renderer"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Name           string
	Description    string
	Spheres        geometry.World // Objects in the scene, in hit-test order
	CameraConfig   renderer.CameraConfig
	SamplingConfig renderer.SamplingConfig
}

// NewScene creates an empty scene with the default camera and sampling
func NewScene(name string) *Scene {
	return &Scene{
		Name:           name,
		Spheres:        make(geometry.World, 0),
		CameraConfig:   renderer.DefaultCameraConfig(),
		SamplingConfig: renderer.DefaultSamplingConfig(),
	}
}

// AddSphere appends a sphere to the scene
func (s *Scene) AddSphere(center core.Point, radius float64, texture material.Texture) {
	s.Spheres = append(s.Spheres, geometry.NewSphere(center, radius, texture))
}

// World returns the spheres to hand to the renderer
func (s *Scene) World() geometry.World {
	return s.Spheres
}

// Validate checks the spheres and the sampling configuration
func (s *Scene) Validate() error {
	if err := s.Spheres.Validate(); err != nil {
		return fmt.Errorf("scene %q: %w", s.Name, err)
	}
	if err := s.SamplingConfig.Validate(); err != nil {
		return fmt.Errorf("scene %q: %w", s.Name, err)
	}
	return nil
}

// NewRaytracer builds a renderer for the scene
func (s *Scene) NewRaytracer(logger core.Logger) (*renderer.Raytracer, error) {
	return renderer.NewRaytracer(s.World(), s.CameraConfig, s.SamplingConfig, logger)
}
