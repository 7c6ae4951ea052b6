package core

// Ray is a half-line carrying the attenuation accumulated so far and the
// number of diffuse child rays it may spawn at its next hit.
type Ray struct {
	Origin           Point
	Direction        Vec3
	Color            Color
	ScatterPotential int
}

// NewRay creates a new ray
func NewRay(origin Point, direction Vec3, color Color, scatterPotential int) Ray {
	return Ray{
		Origin:           origin,
		Direction:        direction,
		Color:            color,
		ScatterPotential: scatterPotential,
	}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Point {
	return r.Origin.Add(r.Direction.Multiply(t))
}

// WithColor returns a copy of the ray carrying a different color
func (r Ray) WithColor(color Color) Ray {
	r.Color = color
	return r
}

// WithScatterPotential returns a copy of the ray with a different scatter potential
func (r Ray) WithScatterPotential(potential int) Ray {
	r.ScatterPotential = potential
	return r
}

// Reflect mirrors the ray about normal, starting a new neutral ray at origin.
// The scatter potential is inherited.
func (r Ray) Reflect(normal Vec3, origin Point) Ray {
	normalComponent := normal.Dot(r.Direction)
	return Ray{
		Origin:           origin,
		Direction:        r.Direction.Subtract(normal.Multiply(2 * normalComponent)),
		Color:            White(),
		ScatterPotential: r.ScatterPotential,
	}
}
