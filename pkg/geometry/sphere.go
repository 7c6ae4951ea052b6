package geometry

import (
	"fmt"
	"math"

	"github.com/LucasKurosei/ray-tracing/pkg/core"
	"github.com/LucasKurosei/ray-tracing/pkg/material"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center  core.Point
	Radius  float64
	Texture material.Texture
}

// NewSphere creates a new sphere
func NewSphere(center core.Point, radius float64, texture material.Texture) Sphere {
	return Sphere{
		Center:  center,
		Radius:  radius,
		Texture: texture,
	}
}

// Validate rejects spheres the intersection code cannot handle and base
// colors outside [0, 1]
func (s Sphere) Validate() error {
	if !(s.Radius > 0) || math.IsInf(s.Radius, 0) {
		return fmt.Errorf("sphere at %v: radius must be positive and finite, got %g", s.Center, s.Radius)
	}
	if err := s.Texture.BaseColor.Validate(); err != nil {
		return fmt.Errorf("sphere at %v: base color: %w", s.Center, err)
	}
	return nil
}

// Hit tests if a ray intersects with the sphere. Only the near root is
// considered, so a ray starting inside the sphere never hits it.
func (s Sphere) Hit(ray core.Ray, tMin, tMax float64) (HitRecord, bool) {
	// Vector from ray origin to sphere center
	oc := s.Center.Subtract(ray.Origin)

	// Half-angle form of the quadratic
	a := ray.Direction.LengthSquared()
	h := ray.Direction.Dot(oc)
	c := oc.LengthSquared() - s.Radius*s.Radius

	discriminant := h*h - a*c
	if discriminant < 0 {
		return HitRecord{}, false
	}

	root := (h - math.Sqrt(discriminant)) / a
	if root < tMin || root > tMax {
		return HitRecord{}, false
	}

	point := ray.At(root)
	return HitRecord{
		Point:  point,
		Normal: point.Subtract(s.Center).Divide(s.Radius),
		T:      root,
		Object: s,
	}, true
}
