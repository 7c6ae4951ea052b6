package material

import (
	"github.com/LucasKurosei/ray-tracing/pkg/core"
)

// scatterSpecular mirrors the incoming ray, or absorbs it when it has no potential left
func scatterSpecular(rayIn core.Ray, point core.Point, normal core.Vec3) []core.Ray {
	if rayIn.ScatterPotential < 1 {
		return nil
	}
	return []core.Ray{rayIn.Reflect(normal, point)}
}

