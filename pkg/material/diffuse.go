package material

import (
	"github.com/LucasKurosei/ray-tracing/pkg/core"
)

// DiffuseJitter scales the unit-ball offset added to the normal
const DiffuseJitter = 0.5

// scatterDiffuse spawns rayIn.ScatterPotential rays around the normal.
// Children carry a neutral color and a potential of 1.
func scatterDiffuse(rayIn core.Ray, point core.Point, normal core.Vec3, sampler core.Sampler) []core.Ray {
	if rayIn.ScatterPotential <= 0 {
		return nil
	}

	scattered := make([]core.Ray, 0, rayIn.ScatterPotential)
	for i := 0; i < rayIn.ScatterPotential; i++ {
		offset := core.SamplePointInUnitBall(sampler).Multiply(DiffuseJitter)
		scattered = append(scattered, core.NewRay(point, normal.Add(offset), core.White(), 1))
	}
	return scattered
}
