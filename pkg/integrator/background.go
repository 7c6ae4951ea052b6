package integrator

import (
	"fmt"
	"strings"

	"github.com/LucasKurosei/ray-tracing/pkg/core"
)

// Background decides what a ray that escapes the scene sees
type Background interface {
	Color(ray core.Ray) core.Color
}

// HorizonBackground is a directional sky: rays pointing above the horizon
// return their carried color, everything else is black.
type HorizonBackground struct {
	Up core.Vec3
}

// NewHorizonBackground creates a horizon cutoff with +Y as up
func NewHorizonBackground() *HorizonBackground {
	return &HorizonBackground{Up: core.NewVec3(0, 1, 0)}
}

// Color implements Background
func (h *HorizonBackground) Color(ray core.Ray) core.Color {
	if ray.Direction.Normalize().Dot(h.Up) > 0 {
		return ray.Color
	}
	return core.Black()
}

// GradientBackground blends from BottomColor to TopColor by ray elevation,
// attenuated by the ray's carried color.
type GradientBackground struct {
	TopColor    core.Color
	BottomColor core.Color
}

// NewGradientBackground creates the white-to-sky-blue gradient
func NewGradientBackground() *GradientBackground {
	return &GradientBackground{
		TopColor:    core.NewColor(0.5, 0.7, 1.0),
		BottomColor: core.White(),
	}
}

// Color implements Background
func (g *GradientBackground) Color(ray core.Ray) core.Color {
	unitDirection := ray.Direction.Normalize()

	// Use the y-component to create a gradient (map from -1,1 to 0,1)
	t := 0.5 * (unitDirection.Y + 1.0)

	sky := g.BottomColor.ToVec3().Multiply(1.0 - t).Add(g.TopColor.ToVec3().Multiply(t))
	return ray.Color.Multiply(sky.ToColor())
}

// NewBackground builds a background policy by name ("horizon" or "gradient")
func NewBackground(name string) (Background, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "horizon":
		return NewHorizonBackground(), nil
	case "gradient":
		return NewGradientBackground(), nil
	default:
		return nil, fmt.Errorf("unknown background %q (want horizon or gradient)", name)
	}
}
