package integrator

import (
	"fmt"

	"github.com/LucasKurosei/ray-tracing/pkg/core"
	"github.com/LucasKurosei/ray-tracing/pkg/geometry"
)

const (
	// DefaultTMin keeps scattered rays from re-hitting their own surface
	DefaultTMin = 0.001
	// DefaultTMax is effectively unbounded for the scenes we render
	DefaultTMax = 100000.0
)

// Estimator is the recursive radiance estimator. Each hit attenuates the
// ray's carried color by the surface base color and then by the mean color
// returned by the surface's child rays.
type Estimator struct {
	background Background
	tMin, tMax float64
}

// NewEstimator creates an estimator with the given background policy
func NewEstimator(background Background) *Estimator {
	if background == nil {
		background = NewHorizonBackground()
	}
	return &Estimator{
		background: background,
		tMin:       DefaultTMin,
		tMax:       DefaultTMax,
	}
}

// RayColor implements Integrator
func (e *Estimator) RayColor(ray core.Ray, world geometry.World, sampler core.Sampler, depth int) (core.Color, error) {
	hit, isHit := world.Hit(ray, e.tMin, e.tMax)
	if !isHit {
		return e.background.Color(ray), nil
	}

	attenuated := ray.WithColor(ray.Color.Multiply(hit.Object.Texture.BaseColor))

	scattered := hit.Object.Texture.Scatter(attenuated, hit.Point, hit.Normal, sampler)
	illumination, err := e.gatherIllumination(scattered, world, sampler, depth)
	if err != nil {
		return core.Color{}, err
	}

	color := attenuated.Color.Multiply(illumination.ToColor())
	if err := color.Validate(); err != nil {
		return core.Color{}, fmt.Errorf("hit at %v on sphere %v: %w", hit.Point, hit.Object.Center, err)
	}
	return color, nil
}

// gatherIllumination averages the colors of the child rays. No children
// means the point receives no light.
func (e *Estimator) gatherIllumination(scattered []core.Ray, world geometry.World, sampler core.Sampler, depth int) (core.Vec3, error) {
	if len(scattered) == 0 {
		return core.Vec3{}, nil
	}

	var sum core.Vec3
	for _, child := range scattered {
		// Out of budget: the child may still resolve one more hit or miss,
		// but it may not branch again
		if depth <= 0 {
			child = child.WithScatterPotential(0)
		}
		color, err := e.RayColor(child, world, sampler, depth-1)
		if err != nil {
			return core.Vec3{}, err
		}
		sum = sum.Add(color.ToVec3())
	}
	return sum.Divide(float64(len(scattered))), nil
}
