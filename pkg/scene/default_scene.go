package scene

import (
	"github.com/LucasKurosei/ray-tracing/pkg/core"
	"github.com/LucasKurosei/ray-tracing/pkg/material"
	"github.com/LucasKurosei/ray-tracing/pkg/renderer"
)

// NewDefaultScene creates the five-sphere scene: a violet ball in the back,
// a mirror ball on the right, two small balls in front and a huge grey ball
// acting as the ground
func NewDefaultScene(samplingOverrides ...renderer.SamplingConfig) *Scene {
	s := NewScene("default")
	s.Description = "Four spheres and a mirror ball on a grey ground sphere"

	if len(samplingOverrides) > 0 {
		s.SamplingConfig = renderer.MergeSamplingConfig(s.SamplingConfig, samplingOverrides[0])
	}

	// Create textures
	violet := material.NewDiffuse(core.NewColor(0.5, 0, 1))
	mirror := material.NewSpecular(core.White())
	ground := material.NewDiffuse(core.NewColor(0.7, 0.7, 0.7))
	white := material.NewDiffuse(core.White())
	red := material.NewDiffuse(core.NewColor(0.95, 0.2, 0.2))

	s.AddSphere(core.NewVec3(0, 1, 3), 0.5, violet)
	s.AddSphere(core.NewVec3(1, 0, 2), 0.5, mirror)
	s.AddSphere(core.NewVec3(0, -500.5, 0), 500, ground)
	s.AddSphere(core.NewVec3(0.25, -0.25, 1.25), 0.25, white)
	s.AddSphere(core.NewVec3(-1.125, -0.36, 1.75), 0.125, red)

	return s
}
