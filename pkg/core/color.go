package core

import (
	"fmt"
	"math"
)

// Color is a linear RGB light intensity, nominally in [0,1] per channel
type Color struct {
	R, G, B float64
}

// NewColor creates a new Color
func NewColor(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// White is the neutral attenuation carried by freshly spawned rays
func White() Color {
	return Color{1, 1, 1}
}

// Black is the absence of light
func Black() Color {
	return Color{0, 0, 0}
}

// Multiply attenuates the color by another color channel by channel
func (c Color) Multiply(other Color) Color {
	return Color{c.R * other.R, c.G * other.G, c.B * other.B}
}

// Scale dims (or brightens) all channels by a scalar
func (c Color) Scale(s float64) Color {
	return Color{c.R * s, c.G * s, c.B * s}
}

// ToVec3 reinterprets the color as a vector for accumulation
func (c Color) ToVec3() Vec3 {
	return Vec3{X: c.R, Y: c.G, Z: c.B}
}

// Validate checks that every channel lies in [0, 1]. A channel above 1 means
// some texture or scatter rule amplified light instead of attenuating it.
func (c Color) Validate() error {
	channels := [3]struct {
		name  string
		value float64
	}{{"red", c.R}, {"green", c.G}, {"blue", c.B}}
	for _, ch := range channels {
		if ch.value < 0 {
			return fmt.Errorf("%w: %s channel is %g in %v", ErrNegativeColor, ch.name, ch.value, c)
		}
		// NaN fails this comparison as well
		if !(ch.value <= 1) {
			return fmt.Errorf("%w: %s channel is %g in %v", ErrEnergyConservation, ch.name, ch.value, c)
		}
	}
	return nil
}

// Encode gamma-encodes (square root) each channel and quantizes it to [0,255]
func (c Color) Encode() (r, g, b int) {
	return encodeChannel(c.R), encodeChannel(c.G), encodeChannel(c.B)
}

func encodeChannel(v float64) int {
	if v <= 0 {
		return 0
	}
	q := int(math.Sqrt(v) * 255.999)
	return min(q, 255)
}

// String formats the color the way it appears in a P3 pixel line
func (c Color) String() string {
	r, g, b := c.Encode()
	return fmt.Sprintf("%d %d %d", r, g, b)
}
