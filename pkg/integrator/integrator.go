package integrator

import (
	"github.com/LucasKurosei/ray-tracing/pkg/core"
	"github.com/LucasKurosei/ray-tracing/pkg/geometry"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor resolves the color seen along ray, spending at most depth
	// levels of diffuse branching
	RayColor(ray core.Ray, world geometry.World, sampler core.Sampler, depth int) (core.Color, error)
}
