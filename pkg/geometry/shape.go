package geometry

import "github.com/LucasKurosei/ray-tracing/pkg/core"

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point  core.Point // Point of intersection
	Normal core.Vec3  // Unit normal pointing away from the sphere center
	T      float64    // Parameter t along the ray
	Object Sphere     // Copy of the surface that was hit
}

// Shape interface for objects that can be hit by rays
type Shape interface {
	Hit(ray core.Ray, tMin, tMax float64) (HitRecord, bool)
}
