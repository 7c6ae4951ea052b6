package geometry

import "github.com/LucasKurosei/ray-tracing/pkg/core"

var (
	_ Shape = Sphere{}
	_ Shape = World(nil)
)

// World is the ordered, read-only list of spheres of a render pass
type World []Sphere

// Hit returns the nearest intersection within [tMin, tMax]. Every sphere is
// tested against the same window; on equal t the earlier sphere wins.
func (w World) Hit(ray core.Ray, tMin, tMax float64) (HitRecord, bool) {
	var closest HitRecord
	hitAnything := false

	for _, sphere := range w {
		hit, isHit := sphere.Hit(ray, tMin, tMax)
		if !isHit {
			continue
		}
		if !hitAnything || hit.T < closest.T {
			closest = hit
			hitAnything = true
		}
	}

	return closest, hitAnything
}

// Validate checks every sphere in the world
func (w World) Validate() error {
	for _, sphere := range w {
		if err := sphere.Validate(); err != nil {
			return err
		}
	}
	return nil
}
